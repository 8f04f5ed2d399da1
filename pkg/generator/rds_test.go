package generator

import (
	"strings"
	"testing"

	"github.com/lintang-b-s/mazex/pkg/animation"
	"github.com/lintang-b-s/mazex/pkg/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func newTestRDS(seed uint64) *RDS {
	return NewRDS(zap.NewNop(), rand.New(rand.NewSource(seed)), nil)
}

func TestGenerateIsPerfect(t *testing.T) {
	testCases := []struct {
		name          string
		width, height int
	}{
		{name: "1x1", width: 1, height: 1},
		{name: "1x6", width: 1, height: 6},
		{name: "6x1", width: 6, height: 1},
		{name: "2x2", width: 2, height: 2},
		{name: "5x5", width: 5, height: 5},
		{name: "17x9", width: 17, height: 9},
		{name: "40x25", width: 40, height: 25},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(1); seed <= 10; seed++ {
				gen := newTestRDS(seed)
				g, err := gen.Generate(tt.width, tt.height)
				require.NoError(t, err)

				cells := tt.width * tt.height
				assert.Equal(t, cells, g.Graph().NumberOfNodes())
				assert.Equal(t, cells-1, maze.Passages(g), "seed %d", seed)
				assert.Equal(t, cells, maze.Reachable(g, g.StartNode()), "seed %d", seed)
				assert.True(t, maze.IsPerfect(g))
				assert.Equal(t, 2*cells-1, gen.NumSteps())
			}
		})
	}
}

// Removing any single passage must disconnect the maze, otherwise it had a cycle.
func TestGenerateEveryPassageIsABridge(t *testing.T) {
	g, err := newTestRDS(42).Generate(7, 6)
	require.NoError(t, err)
	cells := 7 * 6

	for _, e := range g.Graph().Edges() {
		if e.GetValue().IsWall() {
			continue
		}
		e.GetValue().SetWall(true)
		assert.Less(t, maze.Reachable(g, g.StartNode()), cells)
		e.GetValue().SetWall(false)
	}
	assert.Equal(t, cells, maze.Reachable(g, g.StartNode()))
}

func TestGenerateIsDeterministicForASeed(t *testing.T) {
	a, err := newTestRDS(7).Generate(12, 8)
	require.NoError(t, err)
	b, err := newTestRDS(7).Generate(12, 8)
	require.NoError(t, err)
	assert.Equal(t, a.Render(false, nil), b.Render(false, nil))
}

func TestGenerateRejectsBadSize(t *testing.T) {
	_, err := newTestRDS(1).Generate(0, 4)
	assert.Error(t, err)
}

func TestRunLeavesNoHeadAndResetsWalls(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)
	g.SetAllWalls(false)

	require.NoError(t, newTestRDS(3).Run(g))
	assert.True(t, maze.IsPerfect(g))
	for _, n := range g.Graph().Nodes() {
		c := n.GetValue()
		assert.False(t, c.IsHead())
		assert.True(t, c.IsVisited())
	}
	// the final pop of every cell finds no unvisited neighbour
	trails := 0
	for _, n := range g.Graph().Nodes() {
		if n.GetValue().IsTrail() {
			trails++
		}
	}
	assert.Equal(t, 16, trails)
}

type recordingDisplay struct {
	frames []string
}

func (r *recordingDisplay) Display(text string) {
	r.frames = append(r.frames, text)
}

func TestRunAnimatesEveryStep(t *testing.T) {
	d := &recordingDisplay{}
	anim := animation.NewAnimator(d, 0)
	gen := NewRDS(zap.NewNop(), rand.New(rand.NewSource(9)), anim)

	g, err := gen.Generate(3, 3)
	require.NoError(t, err)
	require.Len(t, d.frames, 2*9-1)
	heads := 0
	for _, f := range d.frames {
		if strings.Contains(f, maze.GlyphHead.Shape()) {
			heads++
		}
	}
	assert.Positive(t, heads)
	assert.True(t, maze.IsPerfect(g))
}

func TestCellGlyphPriority(t *testing.T) {
	c := NewCell(0, 0)
	assert.Equal(t, maze.GlyphBlank, c.Glyph(true))
	c.visited = true
	assert.Equal(t, maze.GlyphVisited, c.Glyph(true))
	c.trail = true
	assert.Equal(t, maze.GlyphTrail, c.Glyph(true))
	c.head = true
	assert.Equal(t, maze.GlyphHead, c.Glyph(true))
	assert.Equal(t, maze.GlyphBlank, c.Glyph(false))
	c.SetStart(true)
	assert.Equal(t, maze.GlyphStart, c.Glyph(true))
}

func TestRunTwiceOnSameGridStaysPerfect(t *testing.T) {
	g, err := NewGrid(5, 5)
	require.NoError(t, err)

	gen := newTestRDS(3)
	for i := 0; i < 2; i++ {
		require.NoError(t, gen.Run(g))
		assert.Equal(t, 24, maze.Passages(g), "run %d", i)
		assert.True(t, maze.IsPerfect(g), "run %d", i)
		assert.Equal(t, 2*25-1, gen.NumSteps())
	}
}
