package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/search"
	"github.com/google/uuid"
)

// SolveResult is a solved maze together with the grid it was solved on.
type SolveResult struct {
	Grid     *maze.Grid
	Solution *search.Solution
	Digest   string
	Cached   bool
}

// MazeSolver solves mazes and keeps per-user history.
type MazeSolver interface {
	// Solve parses text and searches it with the named strategy.
	// An empty strategy selects the configured default.
	Solve(ctx context.Context, text, strategy string) (*SolveResult, error)

	// SolveAndSave solves text and stores the result for ownerID.
	SolveAndSave(ctx context.Context, ownerID uuid.UUID, name, text, strategy string) (*dmn.SolveRecord, error)

	// Record returns one of the owner's records.
	Record(ctx context.Context, ownerID, id uuid.UUID) (*dmn.SolveRecord, error)

	// Records lists the owner's records.
	Records(ctx context.Context, ownerID uuid.UUID) ([]*dmn.SolveRecord, error)
}
