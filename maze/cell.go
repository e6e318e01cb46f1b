package maze

import "fmt"

// Cell represents the position of a single cell in the maze grid.
type Cell struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Action names the move taken from one cell to a neighbor.
type Action string

// Actions in the order neighbors are evaluated.
// The labels do not follow screen geometry: Up increases the row index.
const (
	Up    Action = "up"
	Down  Action = "down"
	Left  Action = "left"
	Right Action = "right"
)

// Directions maps every action to the delta it applies to a cell.
var Directions = []struct {
	Action Action
	Delta  Cell
}{
	{Up, Cell{Row: 1, Col: 0}},
	{Down, Cell{Row: -1, Col: 0}},
	{Left, Cell{Row: 0, Col: -1}},
	{Right, Cell{Row: 0, Col: 1}},
}

// Step is a reachable neighbor together with the action that reaches it.
type Step struct {
	Action Action
	To     Cell
}

// Manhattan returns the grid distance between a and b.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
