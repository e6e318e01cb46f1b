package search

import "github.com/beka-birhanu/vinom-solver/maze"

// Node is one discovered state in the search tree.
// Parent links point towards the start node only.
type Node struct {
	State  maze.Cell
	Parent *Node
	Action maze.Action // Empty for the start node
	G      int         // Cost from start
	H      int         // Heuristic estimate to goal
	F      int         // G + H when searching informed
}

// backtrace follows parent links from n to the root and returns the actions
// and cells in start-to-goal order. The root cell itself is excluded.
func backtrace(n *Node) ([]maze.Action, []maze.Cell) {
	var (
		actions []maze.Action
		cells   []maze.Cell
	)
	for ; n.Parent != nil; n = n.Parent {
		actions = append(actions, n.Action)
		cells = append(cells, n.State)
	}

	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
		cells[i], cells[j] = cells[j], cells[i]
	}
	return actions, cells
}
