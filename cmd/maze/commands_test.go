package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lintang-b-s/mazex/pkg/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestGenerateCommandPrintsMaze(t *testing.T) {
	out, err := execute(t, "generate", "--width", "6", "--height", "3", "--seed", "21",
		"--animate=false", "--styled=false")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 1+1+2*3-1+1)
	assert.Equal(t, maze.Header(6, 3), lines[0])
}

func TestSolveCommandIsReproducible(t *testing.T) {
	args := []string{"solve", "--width", "7", "--height", "5", "--seed", "8", "--animate=false", "--styled=true"}
	first, err := execute(t, args...)
	require.NoError(t, err)
	second, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, maze.GlyphPath.Shape())
}
