package animation

import (
	"testing"
	"time"

	"github.com/lintang-b-s/mazex/pkg/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDisplay struct {
	frames []string
}

func (r *recordingDisplay) Display(text string) {
	r.frames = append(r.frames, text)
}

func TestStepRendersEveryFrame(t *testing.T) {
	g, err := maze.NewBaseGrid(3, 2)
	require.NoError(t, err)
	d := &recordingDisplay{}
	a := NewAnimator(d, 0, WithStyled(false))

	for i := 0; i < 3; i++ {
		a.Step(g)
	}
	require.Len(t, d.frames, 3)
	assert.Equal(t, 3, a.Frames())
	for _, f := range d.frames {
		assert.Equal(t, g.Render(false, maze.PlainStyler{}), f)
	}
}

func TestStepIsPaced(t *testing.T) {
	g, err := maze.NewBaseGrid(1, 1)
	require.NoError(t, err)
	d := &recordingDisplay{}
	a := NewAnimator(d, 50)

	begin := time.Now()
	for i := 0; i < 4; i++ {
		a.Step(g)
	}
	// burst of 1: the first token is free, the next three cost 20ms each
	assert.GreaterOrEqual(t, time.Since(begin), 50*time.Millisecond)
	assert.Len(t, d.frames, 4)
}

func TestNilAnimatorIsNoop(t *testing.T) {
	g, err := maze.NewBaseGrid(1, 1)
	require.NoError(t, err)
	var a *Animator
	assert.NotPanics(t, func() {
		a.Step(g)
		a.Show(g, true)
	})
	assert.Equal(t, 0, a.Frames())
}
