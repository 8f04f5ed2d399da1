// Package concurrent runs independent jobs on a fixed number of goroutines.
package concurrent

import (
	"sync"
)

type JobFunc[J any, R any] func(job J) R

// WorkerPool fans jobs out to numWorkers goroutines. Results come back in completion order.
// Usage: Start, AddJob..., Close, then drain CollectResults while Wait runs.
type WorkerPool[J any, R any] struct {
	numWorkers int
	jobQueue   chan J
	results    chan R
	wg         sync.WaitGroup
}

func NewWorkerPool[J any, R any](numWorkers, jobQueueSize int) *WorkerPool[J, R] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[J, R]{
		numWorkers: numWorkers,
		jobQueue:   make(chan J, jobQueueSize),
		results:    make(chan R, jobQueueSize),
	}
}

func (wp *WorkerPool[J, R]) worker(jobFunc JobFunc[J, R]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

func (wp *WorkerPool[J, R]) Start(jobFunc JobFunc[J, R]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// Wait blocks until every worker exits, then closes the results channel.
func (wp *WorkerPool[J, R]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[J, R]) AddJob(job J) {
	wp.jobQueue <- job
}

func (wp *WorkerPool[J, R]) CollectResults() <-chan R {
	return wp.results
}

// Close stops accepting jobs. Workers finish what is queued.
func (wp *WorkerPool[J, R]) Close() {
	close(wp.jobQueue)
}

func (wp *WorkerPool[J, R]) NumWorkers() int {
	return wp.numWorkers
}
