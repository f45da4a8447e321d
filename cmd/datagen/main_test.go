package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerateCSVToStdout(t *testing.T) {
	out, _, err := execute(t, "generate", "-m", "2", "-n", "5", "--seed", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2*2*5+1)
	assert.Equal(t, "x,y,label,mode", lines[0])
}

func TestGenerateIsReproducibleWithSeed(t *testing.T) {
	a, _, err := execute(t, "generate", "-m", "3", "-n", "4", "--seed", "8", "-f", "json")
	require.NoError(t, err)
	b, _, err := execute(t, "generate", "-m", "3", "-n", "4", "--seed", "8", "-f", "json")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		modes   string
		samples string
		want    string
	}{
		{"modes above range", "11", "5", "Input Error: Please enter a number of modes between 1 and 10 (11 is above the maximum)."},
		{"samples below range", "3", "0", "Input Error: Please enter a number of samples between 1 and 100 (0 is below the minimum)."},
		{"not a number", "three", "5", "Input Error: Please enter a whole number for the number of modes"},
		{"missing samples", "3", "", "Input Error: Please enter a whole number for the number of samples"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, err := execute(t, "generate", "--modes", tt.modes, "--samples", tt.samples)
			require.ErrorIs(t, err, errInput)
			assert.Empty(t, out)
			assert.True(t, strings.HasPrefix(errOut, tt.want), errOut)
		})
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	_, errOut, err := execute(t, "generate", "-m", "1", "-n", "1", "-f", "xml")
	require.ErrorIs(t, err, errInput)
	assert.Equal(t, "Input Error: unknown format \"xml\", use csv, json or centers\n", errOut)
}

func TestPlotRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero width", []string{"--width", "0"}, "Input Error: plot size must be positive, got 0x5\n"},
		{"zero bins", []string{"--bins", "0"}, "Input Error: bins must be at least 1, got 0\n"},
		{"smoothing without size", []string{"--smooth", "--smooth-size", "0"}, "Input Error: smoothing needs a positive sigma and size\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "samples.png")
			args := append([]string{"plot", "-m", "2", "-n", "5", "-o", path}, tt.args...)

			_, errOut, err := execute(t, args...)
			require.ErrorIs(t, err, errInput)
			assert.Equal(t, tt.want, errOut)
			assert.NoFileExists(t, path)
		})
	}
}

func TestPlotWritesFiles(t *testing.T) {
	dir := t.TempDir()
	plotPath := filepath.Join(dir, "samples.png")
	densityPath := filepath.Join(dir, "density.png")

	_, _, err := execute(t, "plot", "-m", "3", "-n", "30",
		"-o", plotPath, "--density", densityPath, "--smooth", "--bins", "24")
	require.NoError(t, err)

	for _, p := range []string{plotPath, densityPath} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestStats(t *testing.T) {
	out, _, err := execute(t, "stats", "-m", "2", "-n", "10", "--seed", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5)
}
