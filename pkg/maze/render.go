package maze

import (
	"fmt"
	"strings"
)

// junction bit weights, taking as center the grid-line intersection below-right of a cell
const (
	NORTH = 1 << iota
	SOUTH
	EAST
	WEST
)

var junctionGlyphs = [16]rune{
	' ', '│', '│', '│', '─', '└', '┌', '├',
	'─', '┘', '┐', '┤', '─', '┴', '┬', '┼',
}

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderTopTee      = "┬"
	borderBottomTee   = "┴"
	borderLeftTee     = "├"
	borderRightTee    = "┤"
	lineHorizontal    = "─"
	lineVertical      = "│"
	noLine            = " "
)

// Layout is what the renderer reads: dimensions, cell payloads and wall state.
type Layout interface {
	Width() int
	Height() int
	Cell(x, y int) CellData
	HasWall(x1, y1, x2, y2 int) bool
}

// Styler paints glyphs for a target. Shapes are decided before styling.
type Styler interface {
	Header(text string) string
	Paint(g Glyph) string
}

// Display is the collaborator that receives finished frames.
type Display interface {
	Display(text string)
}

// PlainStyler returns bare shapes. Its output is byte-stable, which tests rely on.
type PlainStyler struct{}

func (PlainStyler) Header(text string) string {
	return text
}

func (PlainStyler) Paint(g Glyph) string {
	return g.Shape()
}

// JunctionGlyph resolves an interior intersection from the walls around it.
func JunctionGlyph(north, south, east, west bool) rune {
	index := 0
	if north {
		index |= NORTH
	}
	if south {
		index |= SOUTH
	}
	if east {
		index |= EAST
	}
	if west {
		index |= WEST
	}
	return junctionGlyphs[index]
}

// Header is the first line of every frame.
func Header(width, height int) string {
	return fmt.Sprintf("Maze Generator (%dx%d)", height, width)
}

// Render draws the header, top border, 2H-1 body and divider lines and the bottom border.
// Every maze line is 2W+1 glyphs wide.
func Render(l Layout, styled bool, st Styler) string {
	if st == nil {
		st = PlainStyler{}
	}
	w, h := l.Width(), l.Height()

	var sb strings.Builder
	sb.Grow((h*2 + 3) * (w*2 + 1) * 4)

	sb.WriteString(st.Header(Header(w, h)))
	sb.WriteByte('\n')

	renderTopRow(&sb, l)
	renderBody(&sb, l, styled, st)
	renderBottomRow(&sb, l)

	return sb.String()
}

func renderTopRow(sb *strings.Builder, l Layout) {
	w := l.Width()
	sb.WriteString(borderTopLeft)
	for x := 0; x < w; x++ {
		if l.Cell(x, 0).IsStart() {
			sb.WriteString(noLine)
		} else {
			sb.WriteString(lineHorizontal)
		}
		if x < w-1 {
			if l.HasWall(x, 0, x+1, 0) {
				sb.WriteString(borderTopTee)
			} else {
				sb.WriteString(lineHorizontal)
			}
		}
	}
	sb.WriteString(borderTopRight)
	sb.WriteByte('\n')
}

func renderBottomRow(sb *strings.Builder, l Layout) {
	w, h := l.Width(), l.Height()
	sb.WriteString(borderBottomLeft)
	for x := 0; x < w; x++ {
		if l.Cell(x, h-1).IsEnd() {
			sb.WriteString(noLine)
		} else {
			sb.WriteString(lineHorizontal)
		}
		if x < w-1 {
			if l.HasWall(x, h-1, x+1, h-1) {
				sb.WriteString(borderBottomTee)
			} else {
				sb.WriteString(lineHorizontal)
			}
		}
	}
	sb.WriteString(borderBottomRight)
	sb.WriteByte('\n')
}

func renderBody(sb *strings.Builder, l Layout, styled bool, st Styler) {
	w, h := l.Width(), l.Height()

	for y := 0; y < h; y++ {
		sb.WriteString(lineVertical)
		for x := 0; x < w; x++ {
			sb.WriteString(st.Paint(l.Cell(x, y).Glyph(styled)))
			if x == w-1 || l.HasWall(x, y, x+1, y) {
				sb.WriteString(lineVertical)
			} else {
				sb.WriteString(noLine)
			}
		}
		sb.WriteByte('\n')

		if y == h-1 {
			break
		}

		if l.HasWall(0, y, 0, y+1) {
			sb.WriteString(borderLeftTee)
		} else {
			sb.WriteString(lineVertical)
		}
		for x := 0; x < w; x++ {
			west := l.HasWall(x, y, x, y+1)
			if west {
				sb.WriteString(lineHorizontal)
			} else {
				sb.WriteString(noLine)
			}
			if x < w-1 {
				sb.WriteRune(JunctionGlyph(
					l.HasWall(x, y, x+1, y),
					l.HasWall(x, y+1, x+1, y+1),
					l.HasWall(x+1, y, x+1, y+1),
					west,
				))
			}
		}
		if l.HasWall(w-1, y, w-1, y+1) {
			sb.WriteString(borderRightTee)
		} else {
			sb.WriteString(lineVertical)
		}
		sb.WriteByte('\n')
	}
}
