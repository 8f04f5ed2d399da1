package maze

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJunctionGlyphTable(t *testing.T) {
	testCases := []struct {
		north, south, east, west bool
		want                     rune
	}{
		{false, false, false, false, ' '},
		{true, false, false, false, '│'},
		{false, true, false, false, '│'},
		{true, true, false, false, '│'},
		{false, false, true, false, '─'},
		{true, false, true, false, '└'},
		{false, true, true, false, '┌'},
		{true, true, true, false, '├'},
		{false, false, false, true, '─'},
		{true, false, false, true, '┘'},
		{false, true, false, true, '┐'},
		{true, true, false, true, '┤'},
		{false, false, true, true, '─'},
		{true, false, true, true, '┴'},
		{false, true, true, true, '┬'},
		{true, true, true, true, '┼'},
	}

	for _, tt := range testCases {
		name := string(tt.want)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, string(tt.want), string(JunctionGlyph(tt.north, tt.south, tt.east, tt.west)))
		})
	}
}

func TestRenderOneByOne(t *testing.T) {
	g, err := NewBaseGrid(1, 1)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Maze Generator (1x1)",
		"╭ ╮",
		"│●│",
		"╰ ╯",
		"",
	}, "\n")
	assert.Equal(t, want, g.Render(true, PlainStyler{}))
	assert.Equal(t, 0, Passages(g))
}

func TestRenderFullyWalled(t *testing.T) {
	g, err := NewBaseGrid(2, 2)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Maze Generator (2x2)",
		"╭─┬ ╮",
		"│ │●│",
		"├─┼─┤",
		"│●│ │",
		"╰ ┴─╯",
		"",
	}, "\n")
	assert.Equal(t, want, g.Render(false, PlainStyler{}))
}

func TestRenderThreeByThree(t *testing.T) {
	g, err := NewBaseGrid(3, 3)
	require.NoError(t, err)
	for _, p := range [][4]int{
		{0, 0, 1, 0}, {1, 0, 2, 0}, {0, 0, 0, 1}, {0, 1, 0, 2},
		{0, 2, 1, 2}, {1, 2, 2, 2}, {2, 2, 2, 1}, {2, 1, 1, 1},
	} {
		openPassage(t, g, p[0], p[1], p[2], p[3])
	}
	require.True(t, IsPerfect(g))

	want := strings.Join([]string{
		"Maze Generator (3x3)",
		"╭── ──╮",
		"│  ●  │",
		"│ ┌───┤",
		"│ │   │",
		"│ └── │",
		"│  ●  │",
		"╰── ──╯",
		"",
	}, "\n")
	assert.Equal(t, want, g.Render(true, PlainStyler{}))
}

func TestRenderLineWidths(t *testing.T) {
	testCases := []struct {
		name          string
		width, height int
	}{
		{name: "1x5", width: 1, height: 5},
		{name: "7x2", width: 7, height: 2},
		{name: "12x9", width: 12, height: 9},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewBaseGrid(tt.width, tt.height)
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSuffix(g.Render(true, nil), "\n"), "\n")

			// header + top + 2H-1 + bottom
			require.Len(t, lines, 1+1+2*tt.height-1+1)
			assert.Equal(t, Header(tt.width, tt.height), lines[0])
			for _, line := range lines[1:] {
				assert.Equal(t, 2*tt.width+1, utf8.RuneCountInString(line), "line %q", line)
			}
		})
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	g, err := NewBaseGrid(6, 4)
	require.NoError(t, err)
	openPassage(t, g, 2, 2, 3, 2)

	first := g.Render(true, PlainStyler{})
	second := g.Render(true, PlainStyler{})
	assert.Equal(t, []byte(first), []byte(second))

	// no memoization: a wall change shows up in the next frame
	openPassage(t, g, 4, 1, 4, 2)
	assert.NotEqual(t, first, g.Render(true, PlainStyler{}))
}

func TestRenderCellPriority(t *testing.T) {
	c := &markedCell{Cell: Cell{x: 0, y: 0}, marked: true}
	assert.Equal(t, GlyphVisited, c.Glyph(true))
	assert.Equal(t, GlyphBlank, c.Glyph(false))

	c.SetStart(true)
	assert.Equal(t, GlyphStart, c.Glyph(true))
	c.SetEnd(true)
	assert.Equal(t, GlyphEnd, c.Glyph(true))
	assert.Equal(t, GlyphEnd, c.Glyph(false))
}

type recordingDisplay struct {
	frames []string
}

func (r *recordingDisplay) Display(text string) {
	r.frames = append(r.frames, text)
}

func TestShowSendsFrame(t *testing.T) {
	g, err := NewBaseGrid(2, 2)
	require.NoError(t, err)
	d := &recordingDisplay{}
	g.Show(d, PlainStyler{}, true)
	require.Len(t, d.frames, 1)
	assert.Equal(t, g.Render(true, PlainStyler{}), d.frames[0])
}
