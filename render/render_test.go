package render

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/search"
)

func solved(t *testing.T, text string, strategy search.Strategy) (*maze.Grid, *search.Solution) {
	t.Helper()
	g, err := maze.Parse(text)
	require.NoError(t, err)
	sol, err := search.Solve(context.Background(), g, search.WithStrategy(strategy))
	require.NoError(t, err)
	return g, sol
}

func TestText(t *testing.T) {
	g, sol := solved(t, "A  \n## \nB  ", search.BreadthFirst)

	t.Run("with solution", func(t *testing.T) {
		assert.Equal(t, "A**\n--*\nB**\n", Text(g, sol))
	})

	t.Run("without solution", func(t *testing.T) {
		assert.Equal(t, "A  \n-- \nB  \n", Text(g, nil))
	})

	t.Run("round trip", func(t *testing.T) {
		for _, text := range []string{
			"A  \n-- \nB  ",
			"A     \n #### \n      \n #### \n     B",
			"###########\n#A    #   #\n# ### # # #\n#   #   #B#\n###########",
			"A█  \n   █\n█  B",
		} {
			for _, strategy := range []search.Strategy{search.DepthFirst, search.BreadthFirst, search.AStar} {
				g, sol := solved(t, text, strategy)
				want := append([]maze.Cell{}, sol.Cells[:len(sol.Cells)-1]...) // goal renders as B
				assert.ElementsMatch(t, want, PathCells(Text(g, sol)))
			}
		}
	})
}

func TestPathCells(t *testing.T) {
	assert.Equal(t, []maze.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}}, PathCells("█*\n*B\n"))
	assert.Empty(t, PathCells("A-\n B\n"))
}

func TestImage(t *testing.T) {
	g, sol := solved(t, "A  \n## \nB  ", search.BreadthFirst)

	img := Image(g, sol, ImageOptions{ShowSolution: true, ShowExplored: true})
	require.Equal(t, 150, img.Bounds().Dx())
	require.Equal(t, 150, img.Bounds().Dy())

	at := func(row, col int) any {
		return img.At(col*defaultCellSize+defaultCellSize/2, row*defaultCellSize+defaultCellSize/2)
	}
	assertRGBA := func(want any, got any) {
		t.Helper()
		wr, wg, wb, wa := want.(interface{ RGBA() (r, g, b, a uint32) }).RGBA()
		gr, gg, gb, ga := got.(interface{ RGBA() (r, g, b, a uint32) }).RGBA()
		assert.Equal(t, []uint32{wr, wg, wb, wa}, []uint32{gr, gg, gb, ga})
	}

	assertRGBA(StartColor, at(0, 0))
	assertRGBA(PathColor, at(0, 1))
	assertRGBA(WallColor, at(1, 0))
	assertRGBA(GoalColor, at(2, 0))
	assertRGBA(BackgroundColor, img.At(0, 0))
}

func TestCellColor(t *testing.T) {
	g, sol := solved(t, "A   \n    \n   B", search.BreadthFirst)
	// Breadth first explores (0,1) but walks along column 0.
	explored := maze.Cell{Row: 0, Col: 1}
	require.True(t, sol.IsExplored(explored))
	require.False(t, sol.OnPath(explored))

	assert.Equal(t, ExploredColor, CellColor(g, sol, explored, ImageOptions{ShowExplored: true}))
	assert.Equal(t, OpenColor, CellColor(g, sol, explored, ImageOptions{}))
	assert.Equal(t, PathColor, CellColor(g, sol, maze.Cell{Row: 1, Col: 0}, ImageOptions{ShowSolution: true}))
	assert.Equal(t, OpenColor, CellColor(g, sol, maze.Cell{Row: 1, Col: 0}, ImageOptions{}))
	assert.Equal(t, OpenColor, CellColor(g, nil, maze.Cell{Row: 1, Col: 0}, ImageOptions{ShowSolution: true, ShowExplored: true}))
}

func TestSavePNG(t *testing.T) {
	g, sol := solved(t, "A  \n## \nB  ", search.AStar)
	path := filepath.Join(t.TempDir(), "output", "maze1.png")

	require.NoError(t, SavePNG(path, g, sol, ImageOptions{ShowSolution: true, CellSize: 10}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestReport(t *testing.T) {
	g, sol := solved(t, "A  \n## \nB  ", search.AStar)
	report := NewReport("maze1", g, sol)

	assert.Equal(t, "astar", report.Strategy)
	assert.Equal(t, 6, report.PathLength)
	assert.Equal(t, Position{Row: 2, Col: 0}, report.Goal)

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, report.Write(&buf, FormatText))
		assert.Contains(t, buf.String(), "States explored: 7")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, report.Write(&buf, FormatJSON))
		var decoded Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, report, decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, report.Write(&buf, FormatYAML))
		assert.Contains(t, buf.String(), "explored_count: 7")
		var decoded Report
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, report.Cells, decoded.Cells)
	})

	t.Run("unknown", func(t *testing.T) {
		assert.ErrorIs(t, report.Write(&bytes.Buffer{}, "xml"), ErrUnknownFormat)
	})
}
