package solver

import (
	"math"

	"github.com/lintang-b-s/mazex/pkg/maze"
)

// Unreached is the g value of a cell no path has reached yet.
const Unreached = math.MaxInt32

// Cell is the node payload while searching.
type Cell struct {
	maze.Cell
	g    int
	h    int
	hSet bool

	candidate bool // has been queued at least once
	path      bool // on the reconstructed path
}

func NewCell(x, y int) *Cell {
	return &Cell{Cell: *maze.NewCell(x, y), g: Unreached}
}

// FromBase copies the base payload and resets every search field.
func FromBase(c *maze.Cell) *Cell {
	return &Cell{Cell: c.Role(), g: Unreached}
}

// reset puts every search field back to its unreached state.
func (c *Cell) reset() {
	c.g = Unreached
	c.h = 0
	c.hSet = false
	c.candidate = false
	c.path = false
}

func (c *Cell) G() int {
	return c.g
}

func (c *Cell) H() int {
	return c.h
}

// F is g+h, saturating at Unreached.
func (c *Cell) F() int {
	if c.g >= Unreached {
		return Unreached
	}
	return c.g + c.h
}

func (c *Cell) IsCandidate() bool {
	return c.candidate
}

func (c *Cell) IsPath() bool {
	return c.path
}

func (c *Cell) Glyph(styled bool) maze.Glyph {
	if g, ok := c.RoleGlyph(); ok {
		return g
	}
	if !styled {
		return maze.GlyphBlank
	}
	switch {
	case c.path:
		return maze.GlyphPath
	case c.candidate:
		return maze.GlyphCandidate
	}
	return maze.GlyphBlank
}
