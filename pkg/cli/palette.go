// Package cli holds the terminal side of the program: colors, screen output, prompts and
// the interactive menus.
package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lintang-b-s/mazex/pkg/maze"
)

// ANSI 16-color palette, matching what most terminals theme consistently.
var (
	ColorRed          = lipgloss.Color("1")
	ColorGreen        = lipgloss.Color("2")
	ColorYellow       = lipgloss.Color("3")
	ColorCyan         = lipgloss.Color("6")
	ColorBrightRed    = lipgloss.Color("9")
	ColorBrightGreen  = lipgloss.Color("10")
	ColorBrightBlue   = lipgloss.Color("12")
	ColorBrightYellow = lipgloss.Color("11")
)

// Palette is the lipgloss Styler used on a real terminal.
type Palette struct {
	header lipgloss.Style
	glyphs map[maze.Glyph]lipgloss.Style
}

func NewPalette() *Palette {
	return &Palette{
		header: lipgloss.NewStyle().Bold(true),
		glyphs: map[maze.Glyph]lipgloss.Style{
			maze.GlyphStart:     lipgloss.NewStyle().Foreground(ColorBrightGreen).Bold(true),
			maze.GlyphEnd:       lipgloss.NewStyle().Foreground(ColorBrightBlue).Bold(true),
			maze.GlyphVisited:   lipgloss.NewStyle().Foreground(ColorCyan).Bold(true),
			maze.GlyphTrail:     lipgloss.NewStyle().Foreground(ColorYellow).Bold(true),
			maze.GlyphHead:      lipgloss.NewStyle().Foreground(ColorBrightRed).Bold(true),
			maze.GlyphCandidate: lipgloss.NewStyle().Foreground(ColorGreen),
			maze.GlyphPath:      lipgloss.NewStyle().Foreground(ColorRed).Bold(true),
		},
	}
}

func (p *Palette) Header(text string) string {
	return p.header.Render(text)
}

func (p *Palette) Paint(g maze.Glyph) string {
	style, ok := p.glyphs[g]
	if !ok {
		return g.Shape()
	}
	return style.Render(g.Shape())
}
