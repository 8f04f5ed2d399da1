package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
)

const clearScreen = "\x1b[H\x1b[2J"

// TerminalDisplay writes whole frames, optionally clearing the screen and reprinting a
// banner above each one.
type TerminalDisplay struct {
	out    io.Writer
	clear  bool
	banner string
}

func NewTerminalDisplay(out io.Writer, clear bool, banner string) *TerminalDisplay {
	return &TerminalDisplay{out: out, clear: clear, banner: banner}
}

func (d *TerminalDisplay) Display(text string) {
	if d.clear {
		fmt.Fprint(d.out, clearScreen)
	}
	if d.banner != "" {
		fmt.Fprint(d.out, d.banner)
	}
	fmt.Fprint(d.out, text)
}

// Clear wipes the screen when clearing is enabled.
func (d *TerminalDisplay) Clear() {
	if d.clear {
		fmt.Fprint(d.out, clearScreen)
	}
}

// TerminalSize returns the stdout size in columns and rows, or (0, 0) when stdout is not
// a terminal.
func TerminalSize() (cols, rows int) {
	cols, rows, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		return 0, 0
	}
	return cols, rows
}

// MaxMazeSize is the largest maze that fits a cols×rows terminal with room for the
// banner. 0 means unknown.
func MaxMazeSize(cols, rows int) (maxWidth, maxHeight int) {
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return max(cols/2-10, 1), max(rows/2-10, 1)
}
