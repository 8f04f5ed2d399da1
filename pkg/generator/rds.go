// Package generator carves perfect mazes out of a fully walled grid.
package generator

import (
	"github.com/lintang-b-s/mazex/pkg/animation"
	da "github.com/lintang-b-s/mazex/pkg/datastructure"
	"github.com/lintang-b-s/mazex/pkg/maze"
	"github.com/lintang-b-s/mazex/pkg/util"
	"go.uber.org/zap"
)

// RandomSource is the slice of a PRNG the carver needs. *rand.Rand from x/exp/rand fits.
type RandomSource interface {
	Intn(n int) int
}

type Grid = maze.Grid[*Cell, *maze.Wall]

// RDS is a randomized depth-first search ("recursive backtracker") with an explicit stack.
type RDS struct {
	logger   *zap.Logger
	rnd      RandomSource
	animator *animation.Animator

	numSteps int
}

// NewRDS creates the carver. animator may be nil to skip visualization.
func NewRDS(logger *zap.Logger, rnd RandomSource, animator *animation.Animator) *RDS {
	return &RDS{
		logger:   logger,
		rnd:      rnd,
		animator: animator,
	}
}

// NewGrid builds a fully walled carving grid.
func NewGrid(width, height int) (*Grid, error) {
	return maze.NewGrid(width, height, NewCell, maze.NewWall)
}

// Generate builds a W×H perfect maze and returns it in the base payload shape.
func (r *RDS) Generate(width, height int) (*maze.Grid[*maze.Cell, *maze.Wall], error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if err := r.Run(grid); err != nil {
		return nil, err
	}
	return maze.Normalize(grid), nil
}

// Run carves grid in place. Every wall and carving marker is reset first, so the outcome
// depends only on the random source.
func (r *RDS) Run(grid *Grid) error {
	if grid == nil {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "grid must not be nil")
	}
	grid.SetAllWalls(true)
	r.numSteps = 0

	nodes := grid.Graph().Nodes()
	for _, n := range nodes {
		n.GetValue().reset()
	}
	seed := nodes[r.rnd.Intn(len(nodes))]

	stack := make([]*da.Node[*Cell], 0, len(nodes))
	stack = append(stack, seed)

	unvisited := make([]*da.Node[*Cell], 0, 4)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cell := node.GetValue()

		cell.visited = true
		cell.head = true
		r.animator.Step(grid)
		cell.head = false
		r.numSteps++

		unvisited = unvisited[:0]
		grid.Graph().ForEdgesOf(node, func(_ *da.Edge[*Cell, *maze.Wall], other *da.Node[*Cell]) {
			if !other.GetValue().visited {
				unvisited = append(unvisited, other)
			}
		})

		if len(unvisited) == 0 {
			cell.trail = true
			continue
		}

		selected := unvisited[r.rnd.Intn(len(unvisited))]
		link, ok := grid.LinkEdge(node, selected)
		util.AssertPanic(ok, "structural neighbours must share an edge")
		link.GetValue().SetWall(false)

		selected.GetValue().visited = true
		stack = append(stack, node, selected)
	}

	r.logger.Debug("maze carved",
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()),
		zap.Int("steps", r.numSteps),
		zap.Int("passages", maze.Passages(grid)),
	)
	return nil
}

// NumSteps is the number of stack pops of the last run.
func (r *RDS) NumSteps() int {
	return r.numSteps
}
