package maze

// Glyph identifies what a cell shows. Its shape is fixed here; colors belong to a Styler.
type Glyph uint8

const (
	GlyphBlank Glyph = iota
	GlyphStart
	GlyphEnd
	GlyphVisited
	GlyphTrail
	GlyphHead
	GlyphCandidate
	GlyphPath
)

var glyphShapes = [...]string{
	GlyphBlank:     " ",
	GlyphStart:     "●",
	GlyphEnd:       "●",
	GlyphVisited:   "·",
	GlyphTrail:     "·",
	GlyphHead:      "*",
	GlyphCandidate: "·",
	GlyphPath:      "·",
}

func (g Glyph) Shape() string {
	if int(g) >= len(glyphShapes) {
		return glyphShapes[GlyphBlank]
	}
	return glyphShapes[g]
}

func (g Glyph) String() string {
	switch g {
	case GlyphStart:
		return "start"
	case GlyphEnd:
		return "end"
	case GlyphVisited:
		return "visited"
	case GlyphTrail:
		return "trail"
	case GlyphHead:
		return "head"
	case GlyphCandidate:
		return "candidate"
	case GlyphPath:
		return "path"
	default:
		return "blank"
	}
}

// CellData is the node payload contract shared by every phase.
type CellData interface {
	X() int
	Y() int
	IsStart() bool
	IsEnd() bool
	SetStart(start bool)
	SetEnd(end bool)
	// Role returns a copy of the phase independent part of the payload.
	Role() Cell
	// Glyph picks the cell glyph; transient phase markers only show when styled.
	Glyph(styled bool) Glyph
}

// WallData is the edge payload contract.
type WallData interface {
	IsWall() bool
	SetWall(wall bool)
}

// Cell is the base node payload: a position plus the fixed start/end roles.
type Cell struct {
	x, y  int
	start bool
	end   bool
}

func NewCell(x, y int) *Cell {
	return &Cell{x: x, y: y}
}

func (c *Cell) X() int {
	return c.x
}

func (c *Cell) Y() int {
	return c.y
}

func (c *Cell) IsStart() bool {
	return c.start
}

func (c *Cell) IsEnd() bool {
	return c.end
}

func (c *Cell) SetStart(start bool) {
	c.start = start
}

func (c *Cell) SetEnd(end bool) {
	c.end = end
}

func (c *Cell) Role() Cell {
	return *c
}

// RoleGlyph returns the end/start marker, or false when the cell has no fixed role.
func (c *Cell) RoleGlyph() (Glyph, bool) {
	if c.end {
		return GlyphEnd, true
	}
	if c.start {
		return GlyphStart, true
	}
	return GlyphBlank, false
}

func (c *Cell) Glyph(styled bool) Glyph {
	g, _ := c.RoleGlyph()
	return g
}

// Wall is the edge payload. A fresh wall blocks movement.
type Wall struct {
	wall bool
}

func NewWall() *Wall {
	return &Wall{wall: true}
}

func (w *Wall) IsWall() bool {
	return w.wall
}

func (w *Wall) SetWall(wall bool) {
	w.wall = wall
}

// CopyCell converts any phase payload back to a base Cell.
func CopyCell[N CellData](n N) *Cell {
	c := n.Role()
	return &c
}

// CopyWall converts any wall payload to a base Wall.
func CopyWall[E WallData](e E) *Wall {
	return &Wall{wall: e.IsWall()}
}
