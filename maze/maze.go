/*
Package maze provides the grid model used by the solver.

A maze is read from plain text where every line is one row. The character 'A'
marks the start, 'B' marks the goal, a space is an open cell and anything else
is a wall. Lines shorter than the widest line are padded with open cells.

Once parsed, a Grid never changes. It answers bound and wall queries and
enumerates the neighbors of a cell in a fixed order.
*/
package maze

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	startMarker = 'A'
	goalMarker  = 'B'
	openMarker  = ' '
)

var (
	ErrMalformedMaze = errors.New("malformed maze")
)

// Grid is an immutable wall map with a single start and goal.
type Grid struct {
	width  int      // Width of the maze in characters (longest line)
	height int      // Height of the maze (number of lines)
	walls  [][]bool // walls[row][col] is true for blocked cells
	start  Cell
	goal   Cell
}

// Load reads the file at path and parses it as a maze.
func Load(path string) (*Grid, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading maze %s: %w", path, err)
	}
	return Parse(string(contents))
}

// Parse builds a Grid from its text form.
func Parse(text string) (*Grid, error) {
	if n := strings.Count(text, string(startMarker)); n != 1 {
		return nil, fmt.Errorf("%w: expected exactly one start point, found %d", ErrMalformedMaze, n)
	}
	if n := strings.Count(text, string(goalMarker)); n != 1 {
		return nil, fmt.Errorf("%w: expected exactly one goal point, found %d", ErrMalformedMaze, n)
	}

	lines := splitLines(text)
	height := len(lines)
	rows := make([][]rune, height)
	width := 0
	for i, line := range lines {
		rows[i] = []rune(line)
		width = max(width, len(rows[i]))
	}

	g := &Grid{
		width:  width,
		height: height,
		walls:  make([][]bool, height),
	}

	for i, row := range rows {
		g.walls[i] = make([]bool, width)
		for j, r := range row {
			switch r {
			case startMarker:
				g.start = Cell{Row: i, Col: j}
			case goalMarker:
				g.goal = Cell{Row: i, Col: j}
			case openMarker:
			default:
				g.walls[i][j] = true
			}
		}
	}

	return g, nil
}

// splitLines splits on line boundaries without producing an empty trailing row.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Start returns the start cell.
func (g *Grid) Start() Cell {
	return g.start
}

// Goal returns the goal cell.
func (g *Grid) Goal() Cell {
	return g.goal
}

// InBound reports whether c lies inside the grid.
func (g *Grid) InBound(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// IsWall reports whether c is blocked. Out of bound cells are not walls.
func (g *Grid) IsWall(c Cell) bool {
	return g.InBound(c) && g.walls[c.Row][c.Col]
}

// Neighbors finds all open cells reachable in one move from c.
// The order follows Directions and decides tie-breaks during search.
func (g *Grid) Neighbors(c Cell) []Step {
	result := make([]Step, 0, len(Directions))
	for _, dir := range Directions {
		next := Cell{Row: c.Row + dir.Delta.Row, Col: c.Col + dir.Delta.Col}
		if g.InBound(next) && !g.walls[next.Row][next.Col] {
			result = append(result, Step{Action: dir.Action, To: next})
		}
	}
	return result
}

// String provides a textual representation of the maze using '#' for walls.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			c := Cell{Row: row, Col: col}
			switch {
			case c == g.start:
				sb.WriteByte(startMarker)
			case c == g.goal:
				sb.WriteByte(goalMarker)
			case g.walls[row][col]:
				sb.WriteByte('#')
			default:
				sb.WriteByte(openMarker)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
