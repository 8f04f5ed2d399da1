package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/lintang-b-s/mazex/pkg/util"
	"github.com/mattn/go-isatty"
)

// Prompter asks the user for input.
type Prompter interface {
	ReadInt(prompt string) (int, error)
	ReadBool(prompt string, def bool) (bool, error)
	// Choose returns the zero-based index of the selected option.
	Choose(title string, options []string) (int, error)
}

// NewPrompter returns interactive forms on a terminal and plain line prompts otherwise
// (piped input, CI).
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return &FormPrompter{}
	}
	return NewLinePrompter(in, out)
}

// LinePrompter reads answers one line at a time.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadInt prompts until the answer parses as an integer.
func (p *LinePrompter) ReadInt(prompt string) (int, error) {
	for {
		fmt.Fprint(p.out, prompt)
		line, err := p.readLine()
		if err != nil {
			return 0, util.WrapErrorf(err, util.ErrBadParamInput, "no integer read")
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintf(p.out, "%q is not a number\n", line)
	}
}

// ReadBool shows "[Y/n]" or "[y/N]"; an empty answer picks def, anything starting with y
// is yes.
func (p *LinePrompter) ReadBool(prompt string, def bool) (bool, error) {
	y, n := "y", "N"
	if def {
		y, n = "Y", "n"
	}
	fmt.Fprintf(p.out, "%s [%s/%s] ", prompt, y, n)
	line, err := p.readLine()
	if err != nil {
		return def, util.WrapErrorf(err, util.ErrBadParamInput, "no answer read")
	}
	if line == "" {
		return def, nil
	}
	return strings.ToLower(line)[0] == 'y', nil
}

// Choose prints a numbered menu and prompts until a listed number is entered.
func (p *LinePrompter) Choose(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, util.WrapErrorf(nil, util.ErrBadParamInput, "menu %q has no options", title)
	}
	fmt.Fprintln(p.out, title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}
	for {
		n, err := p.ReadInt("> ")
		if err != nil {
			return 0, err
		}
		if n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintf(p.out, "choose between 1 and %d\n", len(options))
	}
}

// FormPrompter renders each question as a huh form field.
type FormPrompter struct{}

func (FormPrompter) ReadInt(prompt string) (int, error) {
	var value string
	err := huh.NewInput().
		Title(prompt).
		Value(&value).
		Validate(func(s string) error {
			if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
				return fmt.Errorf("enter a whole number")
			}
			return nil
		}).
		Run()
	if err != nil {
		return 0, util.WrapErrorf(err, util.ErrBadParamInput, "prompt aborted")
	}
	return strconv.Atoi(strings.TrimSpace(value))
}

func (FormPrompter) ReadBool(prompt string, def bool) (bool, error) {
	value := def
	err := huh.NewConfirm().
		Title(prompt).
		Affirmative("Yes").
		Negative("No").
		Value(&value).
		Run()
	if err != nil {
		return def, util.WrapErrorf(err, util.ErrBadParamInput, "prompt aborted")
	}
	return value, nil
}

func (FormPrompter) Choose(title string, options []string) (int, error) {
	opts := make([]huh.Option[int], 0, len(options))
	for i, o := range options {
		opts = append(opts, huh.NewOption(o, i))
	}
	var choice int
	err := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&choice).
		Run()
	if err != nil {
		return 0, util.WrapErrorf(err, util.ErrBadParamInput, "prompt aborted")
	}
	return choice, nil
}
