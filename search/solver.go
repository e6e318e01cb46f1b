/*
Package search finds a path between the start and goal of a maze.Grid.

A Solver runs one graph search skeleton over a pluggable Frontier:

  - DepthFirst uses a stack frontier.
  - BreadthFirst uses a queue frontier.
  - AStar uses a min-F priority frontier with the Manhattan heuristic.

A neighbor is only discovered once. When A* later finds a cheaper route to a
cell that is already waiting or explored, the cheaper route is ignored unless
WithDecreaseKey is given, in which case waiting cells take the cheaper parent.
*/
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-solver/maze"
)

var (
	ErrNoSolution      = fmt.Errorf("no solution: %w", ErrEmptyFrontier)
	ErrExpansionLimit  = errors.New("expansion limit reached")
	ErrUnknownStrategy = errors.New("unknown search strategy")
)

// Strategy selects the frontier discipline.
type Strategy string

const (
	DepthFirst   Strategy = "dfs"
	BreadthFirst Strategy = "bfs"
	AStar        Strategy = "astar"
)

// ParseStrategy converts a user supplied name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "stack":
		return DepthFirst, nil
	case "bfs", "queue":
		return BreadthFirst, nil
	case "astar", "a*":
		return AStar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool {
	return s == DepthFirst || s == BreadthFirst || s == AStar
}

// Informed reports whether the strategy uses the heuristic.
func (s Strategy) Informed() bool {
	return s == AStar
}

// NewFrontier returns an empty frontier for the strategy.
func (s Strategy) NewFrontier() Frontier {
	switch s {
	case DepthFirst:
		return NewStackFrontier()
	case AStar:
		return NewPriorityFrontier()
	default:
		return NewQueueFrontier()
	}
}

// Options defines parameters for the search.
type Options struct {
	Strategy       Strategy
	ExpansionLimit int        // 0 means unlimited
	Observer       func(Node) // Called for every node removed from the frontier
	DecreaseKey    bool       // AStar only: re-parent waiting nodes on a cheaper route
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithStrategy sets the frontier discipline.
func WithStrategy(strategy Strategy) Option {
	return func(options *Options) { options.Strategy = strategy }
}

// WithExpansionLimit aborts the search after limit frontier removals.
func WithExpansionLimit(limit int) Option {
	return func(options *Options) { options.ExpansionLimit = limit }
}

// WithDecreaseKey lets AStar move a waiting node to a cheaper parent.
// Without it the first discovered route to a cell is kept, which can yield a
// longer path than breadth-first search.
func WithDecreaseKey() Option {
	return func(options *Options) { options.DecreaseKey = true }
}

// WithObserver registers a callback for every removed node.
func WithObserver(observer func(Node)) Option {
	return func(options *Options) { options.Observer = observer }
}

// Solver runs a single search strategy over a grid.
type Solver struct {
	grid *maze.Grid
	opts Options
}

// NewSolver creates a solver for grid. The default strategy is AStar.
func NewSolver(grid *maze.Grid, options ...Option) *Solver {
	opts := Options{Strategy: AStar}
	for _, option := range options {
		option(&opts)
	}
	if opts.ExpansionLimit < 0 {
		opts.ExpansionLimit = 0
	}

	return &Solver{grid: grid, opts: opts}
}

// Strategy returns the configured strategy.
func (s *Solver) Strategy() Strategy {
	return s.opts.Strategy
}

// Solve searches from start to goal.
// It returns ErrNoSolution when the goal is unreachable and the context error
// when ctx is cancelled between expansions.
func (s *Solver) Solve(ctx context.Context) (*Solution, error) {
	strategy := s.opts.Strategy
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	goal := s.grid.Goal()

	frontier := strategy.NewFrontier()
	start := &Node{State: s.grid.Start()}
	if strategy.Informed() {
		start.H = maze.Manhattan(start.State, goal)
		start.F = start.H
	}
	frontier.Add(start)

	explored := make(map[maze.Cell]struct{})
	exploredCount := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		node, err := frontier.Remove()
		if errors.Is(err, ErrEmptyFrontier) {
			return nil, ErrNoSolution
		}
		if err != nil {
			return nil, err
		}
		exploredCount++
		explored[node.State] = struct{}{}

		if s.opts.Observer != nil {
			s.opts.Observer(*node)
		}

		if node.State == goal {
			actions, cells := backtrace(node)
			return &Solution{
				Strategy:      strategy,
				Actions:       actions,
				Cells:         cells,
				Explored:      explored,
				ExploredCount: exploredCount,
			}, nil
		}

		if s.opts.ExpansionLimit > 0 && exploredCount >= s.opts.ExpansionLimit {
			return nil, fmt.Errorf("%w after %d states", ErrExpansionLimit, exploredCount)
		}

		for _, step := range s.grid.Neighbors(node.State) {
			if _, seen := explored[step.To]; seen {
				continue
			}

			child := &Node{State: step.To, Parent: node, Action: step.Action}
			if strategy.Informed() {
				child.G = node.G + 1
				child.H = maze.Manhattan(step.To, goal)
				child.F = child.G + child.H
			}

			if frontier.ContainsState(step.To) {
				if improver, ok := frontier.(interface{ Improve(*Node) bool }); ok && s.opts.DecreaseKey {
					improver.Improve(child)
				}
				continue
			}
			frontier.Add(child)
		}
	}
}

// Solve is a shortcut for NewSolver(grid, options...).Solve(ctx).
func Solve(ctx context.Context, grid *maze.Grid, options ...Option) (*Solution, error) {
	return NewSolver(grid, options...).Solve(ctx)
}
