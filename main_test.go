package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-solver/render"
	"github.com/beka-birhanu/vinom-solver/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMaze(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze1.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestSolveFile(t *testing.T) {
	path := writeMaze(t, "A  \n## \nB  \n")

	t.Run("text report and image", func(t *testing.T) {
		outDir := t.TempDir()
		var out, errOut bytes.Buffer
		err := solveFile(context.Background(), &out, &errOut, path, &solveOptions{
			strategy: "astar", outDir: outDir, format: render.FormatText, print: true, trace: true,
		})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(out.String(), "Solving...\n"))
		assert.Contains(t, out.String(), "States explored: 7")
		assert.Contains(t, out.String(), "A**\n--*\nB**\n")
		assert.Equal(t, 7, strings.Count(errOut.String(), "explore "))
		assert.FileExists(t, filepath.Join(outDir, "maze1.png"))
	})

	t.Run("json report stays clean", func(t *testing.T) {
		var out, errOut bytes.Buffer
		err := solveFile(context.Background(), &out, &errOut, path, &solveOptions{
			strategy: "bfs", outDir: t.TempDir(), format: render.FormatJSON,
		})
		require.NoError(t, err)

		var report render.Report
		require.NoError(t, json.Unmarshal(out.Bytes(), &report))
		assert.Equal(t, "maze1", report.Maze)
		assert.Equal(t, 6, report.PathLength)
		assert.Contains(t, errOut.String(), "Solving...")
	})

	t.Run("errors", func(t *testing.T) {
		opts := &solveOptions{strategy: "astar", outDir: t.TempDir()}
		var out bytes.Buffer

		err := solveFile(context.Background(), &out, &out, filepath.Join(t.TempDir(), "missing.txt"), opts)
		assert.Error(t, err)

		err = solveFile(context.Background(), &out, &out, writeMaze(t, "A #\n  #\n  #B"), opts)
		assert.ErrorIs(t, err, search.ErrNoSolution)

		err = solveFile(context.Background(), &out, &out, path, &solveOptions{strategy: "greedy"})
		assert.ErrorIs(t, err, search.ErrUnknownStrategy)

		err = solveFile(context.Background(), &out, &out, path, &solveOptions{strategy: "bfs", outDir: t.TempDir(), format: "xml"})
		assert.ErrorIs(t, err, render.ErrUnknownFormat)
	})
}

func TestRootCommandArgs(t *testing.T) {
	for _, args := range [][]string{{}, {"a.txt", "b.txt"}} {
		cmd := newRootCmd()
		cmd.SetArgs(args)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		assert.Error(t, cmd.Execute(), "args %v", args)
	}

	path := writeMaze(t, "AB")
	outDir := t.TempDir()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--strategy", "dfs", "--out-dir", outDir, path})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "States explored: 2")
	assert.FileExists(t, filepath.Join(outDir, "maze1.png"))
}

func TestRootCommandHelp(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--help"})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "any other character a wall")
	assert.NotContains(t, out.String(), "'#' is a wall")
}
