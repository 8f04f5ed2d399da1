package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

func TestWorkerPoolRunsEveryJob(t *testing.T) {
	const n = 100
	wp := NewWorkerPool[int, int](4, 8)
	wp.Start(func(job int) int {
		return job * job
	})

	g := errgroup.Group{}
	g.Go(func() error {
		for i := 0; i < n; i++ {
			wp.AddJob(i)
		}
		wp.Close()
		wp.Wait()
		return nil
	})

	got := make([]int, 0, n)
	for r := range wp.CollectResults() {
		got = append(got, r)
	}
	assert.NoError(t, g.Wait())

	sort.Ints(got)
	assert.Len(t, got, n)
	for i, v := range got {
		assert.Equal(t, i*i, v)
	}
}

func TestWorkerPoolClampsWorkers(t *testing.T) {
	wp := NewWorkerPool[int, int](0, 1)
	assert.Equal(t, 1, wp.NumWorkers())
}
