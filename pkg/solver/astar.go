// Package solver finds the shortest start-to-end route through a carved maze.
package solver

import (
	"github.com/lintang-b-s/mazex/pkg/animation"
	da "github.com/lintang-b-s/mazex/pkg/datastructure"
	"github.com/lintang-b-s/mazex/pkg/maze"
	"github.com/lintang-b-s/mazex/pkg/util"
	"go.uber.org/zap"
)

type Grid = maze.Grid[*Cell, *maze.Wall]

// Result of one search. Path runs from start to end and is empty when Found is false.
type Result struct {
	Grid  *Grid
	Path  []*da.Node[*Cell]
	Found bool

	NumSettledNodes int
}

// Hops is the number of moves on the path, or -1 without a path.
func (r *Result) Hops() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// AStar searches with the Manhattan heuristic over unit-cost passages. There is no closed
// set: a settled cell is reopened if a cheaper g shows up, which cannot happen with a
// consistent heuristic.
type AStar struct {
	logger   *zap.Logger
	animator *animation.Animator

	grid *Grid
	pq   *da.MinHeap[*da.Node[*Cell]]

	// pending and already popped queue entries, by node handle
	queueNodes map[da.Index]*da.PriorityQueueNode[*da.Node[*Cell]]
	parent     map[da.Index]*da.Node[*Cell]

	numSettledNodes int
}

func NewAStar(logger *zap.Logger, animator *animation.Animator) *AStar {
	return &AStar{
		logger:   logger,
		animator: animator,
	}
}

// NewGrid converts a base maze into a fresh search grid.
func NewGrid(base *maze.Grid[*maze.Cell, *maze.Wall]) *Grid {
	return maze.CloneWith(base, FromBase, maze.CopyWall[*maze.Wall],
		da.WithEdgeFactory[*Cell, *maze.Wall](maze.NewWall))
}

// Solve clones base and searches it. base itself is never touched.
func (as *AStar) Solve(base *maze.Grid[*maze.Cell, *maze.Wall]) (*Result, error) {
	if base == nil {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "maze must not be nil")
	}
	return as.Run(NewGrid(base))
}

// Run searches grid in place. Search state left by an earlier run is cleared first.
func (as *AStar) Run(grid *Grid) (*Result, error) {
	start, end, err := findStartEnd(grid)
	if err != nil {
		return nil, err
	}
	for _, n := range grid.Graph().Nodes() {
		n.GetValue().reset()
	}

	as.grid = grid
	as.pq = da.NewFourAryHeap[*da.Node[*Cell]]()
	as.pq.Preallocate(grid.Width() + grid.Height())
	as.queueNodes = make(map[da.Index]*da.PriorityQueueNode[*da.Node[*Cell]])
	as.parent = make(map[da.Index]*da.Node[*Cell])
	as.numSettledNodes = 0

	sc := start.GetValue()
	sc.g = 0
	as.setHeuristic(sc, end.GetValue())

	sItem := da.NewPriorityQueueNode(float64(sc.F()), start)
	as.queueNodes[start.GetID()] = sItem
	as.pq.Insert(sItem)

	found := false
	for !as.pq.IsEmpty() {
		as.animator.Step(grid)
		if as.graphSearch(end) {
			found = true
			break
		}
	}

	res := &Result{
		Grid:            grid,
		Found:           found,
		NumSettledNodes: as.numSettledNodes,
	}
	if !found {
		as.logger.Info("no path between start and end",
			zap.Int("width", grid.Width()),
			zap.Int("height", grid.Height()),
			zap.Int("settled", as.numSettledNodes),
		)
		return res, nil
	}

	res.Path = as.reconstructPath(start, end)
	as.logger.Debug("path found",
		zap.Int("hops", res.Hops()),
		zap.Int("settled", as.numSettledNodes),
	)
	return res, nil
}

// graphSearch settles the frontier minimum and relaxes its passages. Returns true once the
// end is popped.
func (as *AStar) graphSearch(end *da.Node[*Cell]) bool {
	item, err := as.pq.ExtractMin()
	util.AssertPanic(err == nil, "frontier must not be empty")
	as.numSettledNodes++

	u := item.GetItem()
	if u == end {
		return true
	}
	uc := u.GetValue()

	as.grid.ForPassagesOf(u, func(v *da.Node[*Cell]) {
		vc := v.GetValue()
		newG := uc.g + 1
		if newG >= vc.g {
			return
		}

		as.parent[v.GetID()] = u
		vc.g = newG
		if !vc.hSet {
			as.setHeuristic(vc, end.GetValue())
		}

		priority := float64(vc.F())
		vItem, seen := as.queueNodes[v.GetID()]
		if seen && vItem.InQueue() {
			err := as.pq.DecreaseKey(vItem, priority)
			util.AssertPanic(err == nil, "improved g must lower the key")
			return
		}

		if !seen {
			vItem = da.NewPriorityQueueNode(priority, v)
			as.queueNodes[v.GetID()] = vItem
		} else {
			vItem.SetRank(priority)
		}
		vc.candidate = true
		as.pq.Insert(vItem)
	})

	return false
}

func (as *AStar) setHeuristic(c, end *Cell) {
	c.h = util.Manhattan(c.X(), c.Y(), end.X(), end.Y())
	c.hSet = true
}

// reconstructPath walks predecessors back from end, flagging intermediate cells and
// rendering one frame per step.
func (as *AStar) reconstructPath(start, end *da.Node[*Cell]) []*da.Node[*Cell] {
	path := []*da.Node[*Cell]{end}
	cur := end
	for cur != start {
		prev, ok := as.parent[cur.GetID()]
		util.AssertPanic(ok, "every reached node except the start has a predecessor")
		if prev != start {
			prev.GetValue().path = true
		}
		path = append(path, prev)
		cur = prev
		as.animator.Step(as.grid)
	}
	return util.ReverseG(path)
}

// findStartEnd looks the endpoints up at their fixed positions.
func findStartEnd(grid *Grid) (start, end *da.Node[*Cell], err error) {
	if grid == nil {
		return nil, nil, util.WrapErrorf(nil, util.ErrBadParamInput, "maze must not be nil")
	}
	start, end = grid.StartNode(), grid.EndNode()
	if !start.GetValue().IsStart() || !end.GetValue().IsEnd() {
		return nil, nil, util.WrapErrorf(nil, util.ErrNoStartEnd, "maze has no start or end cell")
	}
	return start, end, nil
}
