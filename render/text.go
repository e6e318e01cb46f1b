// Package render turns a maze and its solution into text, images and reports.
package render

import (
	"strings"

	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/search"
)

const (
	wallGlyph  = '-'
	startGlyph = 'A'
	goalGlyph  = 'B'
	pathGlyph  = '*'
	openGlyph  = ' '
)

// Text draws the grid one row per line. sol may be nil.
func Text(g *maze.Grid, sol *search.Solution) string {
	onPath := pathSet(sol)

	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			c := maze.Cell{Row: row, Col: col}
			switch {
			case g.IsWall(c):
				sb.WriteByte(wallGlyph)
			case c == g.Start():
				sb.WriteByte(startGlyph)
			case c == g.Goal():
				sb.WriteByte(goalGlyph)
			case contains(onPath, c):
				sb.WriteByte(pathGlyph)
			default:
				sb.WriteByte(openGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PathCells returns the positions of every path glyph in a Text rendering,
// in row-major order.
func PathCells(text string) []maze.Cell {
	var cells []maze.Cell
	for row, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		for col, r := range []rune(line) {
			if r == pathGlyph {
				cells = append(cells, maze.Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

func pathSet(sol *search.Solution) map[maze.Cell]struct{} {
	if sol == nil {
		return nil
	}
	return sol.PathSet()
}

func contains(set map[maze.Cell]struct{}, c maze.Cell) bool {
	_, ok := set[c]
	return ok
}
