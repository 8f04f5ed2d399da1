// Package maze holds the grid graph a maze lives on, the phase payloads' common base and the
// box-drawing renderer.
package maze

import (
	da "github.com/lintang-b-s/mazex/pkg/datastructure"
	"github.com/lintang-b-s/mazex/pkg/util"
)

// Grid is a W×H orthogonal lattice on top of a Graph. The matrix gives O(1) lookup by
// coordinate independent of the graph's node order.
type Grid[N CellData, E WallData] struct {
	width  int
	height int

	graph  *da.Graph[N, E]
	matrix [][]*da.Node[N] // matrix[y][x]
}

// StartColumn is the column of the start cell on row 0.
func StartColumn(width int) int {
	return min(1, width-1)
}

// EndColumn is the column of the end cell on the last row.
func EndColumn(width int) int {
	return max(width-2, 0)
}

// NewGrid builds every cell in one row-major pass, linking each new cell to its top and
// left neighbours only, so each of the 2WH-W-H edges is created exactly once.
func NewGrid[N CellData, E WallData](width, height int, newCell func(x, y int) N, newWall func() E) (*Grid[N, E], error) {
	if width <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "width must be greater than zero, got %d", width)
	}
	if height <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "height must be greater than zero, got %d", height)
	}
	if newCell == nil || newWall == nil {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "cell and wall factories are required")
	}

	numEdges := 2*width*height - width - height
	graph := da.NewGraph[N, E](
		da.WithCapacity[N, E](width*height, numEdges),
		da.WithEdgeFactory[N, E](newWall),
	)

	matrix := make([][]*da.Node[N], height)
	for y := 0; y < height; y++ {
		matrix[y] = make([]*da.Node[N], width)
		for x := 0; x < width; x++ {
			n := graph.AddNode(newCell(x, y))
			if y > 0 {
				_, err := graph.LinkNodes(n, matrix[y-1][x])
				util.AssertPanic(err == nil, "linking freshly built cells must not fail")
			}
			if x > 0 {
				_, err := graph.LinkNodes(n, matrix[y][x-1])
				util.AssertPanic(err == nil, "linking freshly built cells must not fail")
			}
			matrix[y][x] = n
		}
	}

	matrix[0][StartColumn(width)].GetValue().SetStart(true)
	matrix[height-1][EndColumn(width)].GetValue().SetEnd(true)

	return &Grid[N, E]{
		width:  width,
		height: height,
		graph:  graph,
		matrix: matrix,
	}, nil
}

func (g *Grid[N, E]) Width() int {
	return g.width
}

func (g *Grid[N, E]) Height() int {
	return g.height
}

func (g *Grid[N, E]) Graph() *da.Graph[N, E] {
	return g.graph
}

func (g *Grid[N, E]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Node returns the node at (x,y), or nil when out of bounds.
func (g *Grid[N, E]) Node(x, y int) *da.Node[N] {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.matrix[y][x]
}

func (g *Grid[N, E]) StartNode() *da.Node[N] {
	return g.matrix[0][StartColumn(g.width)]
}

func (g *Grid[N, E]) EndNode() *da.Node[N] {
	return g.matrix[g.height-1][EndColumn(g.width)]
}

// Cell implements Layout.
func (g *Grid[N, E]) Cell(x, y int) CellData {
	return g.matrix[y][x].GetValue()
}

// LinkEdge returns the edge between two grid nodes.
func (g *Grid[N, E]) LinkEdge(a, b *da.Node[N]) (*da.Edge[N, E], bool) {
	return g.graph.GetLinkEdge(a, b)
}

// HasWall implements Layout. Cells without a joining edge count as walled.
func (g *Grid[N, E]) HasWall(x1, y1, x2, y2 int) bool {
	a, b := g.Node(x1, y1), g.Node(x2, y2)
	if a == nil || b == nil {
		return true
	}
	e, ok := g.graph.GetLinkEdge(a, b)
	if !ok {
		return true
	}
	return e.GetValue().IsWall()
}

// SetAllWalls sets the wall flag of every edge.
func (g *Grid[N, E]) SetAllWalls(wall bool) {
	for _, e := range g.graph.Edges() {
		e.GetValue().SetWall(wall)
	}
}

// ForPassagesOf calls handle for every neighbour reachable from n through an open edge.
func (g *Grid[N, E]) ForPassagesOf(n *da.Node[N], handle func(next *da.Node[N])) {
	g.graph.ForEdgesOf(n, func(e *da.Edge[N, E], other *da.Node[N]) {
		if !e.GetValue().IsWall() {
			handle(other)
		}
	})
}

// Render draws the current state. Nothing is cached between calls.
func (g *Grid[N, E]) Render(styled bool, st Styler) string {
	return Render(g, styled, st)
}

// Show renders the grid to the display.
func (g *Grid[N, E]) Show(d Display, st Styler, styled bool) {
	d.Display(g.Render(styled, st))
}

// CloneWith copies the grid structure, converting every payload. The clone shares no node,
// edge or payload with the source; transient phase state is whatever the converters keep.
// opts configure the cloned graph; pass da.WithEdgeFactory to allow LinkNodes on the clone.
func CloneWith[N CellData, E WallData, N2 CellData, E2 WallData](src *Grid[N, E],
	convertCell func(N) N2, convertWall func(E) E2, opts ...da.GraphOption[N2, E2]) *Grid[N2, E2] {

	opts = append([]da.GraphOption[N2, E2]{
		da.WithCapacity[N2, E2](src.graph.NumberOfNodes(), src.graph.NumberOfEdges()),
	}, opts...)
	graph := da.NewGraph[N2, E2](opts...)

	// old handle -> new node
	nodeMap := make(map[da.Index]*da.Node[N2], src.width*src.height)
	matrix := make([][]*da.Node[N2], src.height)
	for y, row := range src.matrix {
		matrix[y] = make([]*da.Node[N2], src.width)
		for x, n := range row {
			clone := graph.AddNode(convertCell(n.GetValue()))
			matrix[y][x] = clone
			nodeMap[n.GetID()] = clone
		}
	}

	for _, e := range src.graph.Edges() {
		n1 := nodeMap[e.GetNode1().GetID()]
		n2 := nodeMap[e.GetNode2().GetID()]
		_, err := graph.AddEdge(n1, n2, convertWall(e.GetValue()))
		util.AssertPanic(err == nil, "cloned edge endpoints must exist in the clone")
	}

	return &Grid[N2, E2]{
		width:  src.width,
		height: src.height,
		graph:  graph,
		matrix: matrix,
	}
}

// Normalize clones any phase grid into the base Cell/Wall shape.
func Normalize[N CellData, E WallData](src *Grid[N, E]) *Grid[*Cell, *Wall] {
	return CloneWith(src, CopyCell[N], CopyWall[E], da.WithEdgeFactory[*Cell, *Wall](NewWall))
}

// NewBaseGrid builds a fully walled grid of base payloads.
func NewBaseGrid(width, height int) (*Grid[*Cell, *Wall], error) {
	return NewGrid(width, height, NewCell, NewWall)
}
