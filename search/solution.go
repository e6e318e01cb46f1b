package search

import (
	"fmt"

	"github.com/beka-birhanu/vinom-solver/maze"
)

// Solution is the outcome of a successful search.
type Solution struct {
	Strategy      Strategy
	Actions       []maze.Action          // Moves in start-to-goal order
	Cells         []maze.Cell            // Cells reached by each move; start excluded
	Explored      map[maze.Cell]struct{} // Cells removed from the frontier, goal included
	ExploredCount int                    // Number of frontier removals
}

// Len returns the number of moves in the path.
func (s *Solution) Len() int {
	return len(s.Actions)
}

// PathSet returns the path cells as a set.
func (s *Solution) PathSet() map[maze.Cell]struct{} {
	set := make(map[maze.Cell]struct{}, len(s.Cells))
	for _, c := range s.Cells {
		set[c] = struct{}{}
	}
	return set
}

// OnPath reports whether c is one of the path cells.
// Callers checking many cells should use PathSet.
func (s *Solution) OnPath(c maze.Cell) bool {
	for _, cell := range s.Cells {
		if cell == c {
			return true
		}
	}
	return false
}

// IsExplored reports whether c was expanded during the search.
func (s *Solution) IsExplored(c maze.Cell) bool {
	_, ok := s.Explored[c]
	return ok
}

// Validate checks that the path is a chain of adjacent open cells from start
// to goal whose moves match the recorded actions.
func (s *Solution) Validate(g *maze.Grid) error {
	if len(s.Actions) != len(s.Cells) {
		return fmt.Errorf("%d actions for %d cells", len(s.Actions), len(s.Cells))
	}

	prev := g.Start()
	for i, cell := range s.Cells {
		matched := false
		for _, step := range g.Neighbors(prev) {
			if step.To == cell && step.Action == s.Actions[i] {
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("move %d: %s does not lead from %s to %s", i, s.Actions[i], prev, cell)
		}
		prev = cell
	}

	if prev != g.Goal() {
		return fmt.Errorf("path ends at %s, goal is %s", prev, g.Goal())
	}
	return nil
}
