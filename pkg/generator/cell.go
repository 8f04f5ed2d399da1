package generator

import "github.com/lintang-b-s/mazex/pkg/maze"

// Cell is the node payload while carving.
type Cell struct {
	maze.Cell
	visited bool
	trail   bool // backtracked past
	head    bool // being processed in the current frame
}

func NewCell(x, y int) *Cell {
	return &Cell{Cell: *maze.NewCell(x, y)}
}

// reset clears every carving marker.
func (c *Cell) reset() {
	c.visited = false
	c.trail = false
	c.head = false
}

func (c *Cell) IsVisited() bool {
	return c.visited
}

func (c *Cell) IsTrail() bool {
	return c.trail
}

func (c *Cell) IsHead() bool {
	return c.head
}

func (c *Cell) Glyph(styled bool) maze.Glyph {
	if g, ok := c.RoleGlyph(); ok {
		return g
	}
	if !styled {
		return maze.GlyphBlank
	}
	switch {
	case c.head:
		return maze.GlyphHead
	case c.trail:
		return maze.GlyphTrail
	case c.visited:
		return maze.GlyphVisited
	}
	return maze.GlyphBlank
}
