package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/search"
	"github.com/beka-birhanu/vinom-solver/service/i"
	"github.com/google/uuid"
)

const (
	defaultStrategy     = search.AStar
	defaultMaxMazeBytes = 1 << 20
	defaultHistoryLimit = 100
	solutionKeyFmt      = "%s:solution:%s:%s"
	defaultPrefix       = "mazesolver"
)

var (
	ErrMazeTooLarge = errors.New("maze exceeds the size limit")
)

// Options tunes a SolverService.
type Options struct {
	Prefix          string        // Cache key prefix
	DefaultStrategy string        // Strategy used when a request names none
	ExpansionLimit  int           // Maximum frontier removals; 0 is unlimited
	MaxMazeBytes    int           // Largest accepted maze text
	Timeout         time.Duration // Upper bound for one search; 0 is none
	HistoryLimit    int64         // Records returned by Records
}

// SolverService solves mazes, caches the solutions and keeps user history.
type SolverService struct {
	records  i.SolveRecordRepo
	cache    i.SolutionCache
	logger   i.Logger
	opts     *Options
	strategy search.Strategy
}

// NewSolverService creates a SolverService. cache may be nil to disable caching.
func NewSolverService(records i.SolveRecordRepo, cache i.SolutionCache, logger i.Logger, opts *Options) (*SolverService, error) {
	if logger == nil {
		return nil, errors.New("solver service requires a logger")
	}
	if opts == nil {
		opts = &Options{}
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}

	if opts.MaxMazeBytes <= 0 {
		opts.MaxMazeBytes = defaultMaxMazeBytes
	}

	if opts.ExpansionLimit < 0 {
		opts.ExpansionLimit = 0
	}

	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = defaultHistoryLimit
	}

	strategy := defaultStrategy
	if opts.DefaultStrategy != "" {
		parsed, err := search.ParseStrategy(opts.DefaultStrategy)
		if err != nil {
			return nil, err
		}
		strategy = parsed
	}

	return &SolverService{
		records:  records,
		cache:    cache,
		logger:   logger,
		opts:     opts,
		strategy: strategy,
	}, nil
}

// Solve parses text and searches it, serving repeated mazes from the cache.
func (s *SolverService) Solve(ctx context.Context, text, strategyName string) (*i.SolveResult, error) {
	strategy := s.strategy
	if strategyName != "" {
		parsed, err := search.ParseStrategy(strategyName)
		if err != nil {
			return nil, err
		}
		strategy = parsed
	}

	if len(text) > s.opts.MaxMazeBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrMazeTooLarge, len(text), s.opts.MaxMazeBytes)
	}

	grid, err := maze.Parse(text)
	if err != nil {
		solvesTotal.WithLabelValues(string(strategy), resultMalformed).Inc()
		return nil, err
	}

	digest := dmn.MazeDigest(text)
	key := s.solutionKey(digest, strategy)

	if sol, ok := s.cached(ctx, key); ok {
		solvesTotal.WithLabelValues(string(strategy), resultSolved).Inc()
		return &i.SolveResult{Grid: grid, Solution: sol, Digest: digest, Cached: true}, nil
	}

	if s.cache != nil {
		unlock, err := s.cache.Lock(ctx, key+":lock")
		if err != nil {
			s.logger.Warning("Solving without lock", "key", key, "error", err)
		} else {
			defer unlock()
			// Another instance may have finished while we waited.
			if sol, ok := s.cached(ctx, key); ok {
				solvesTotal.WithLabelValues(string(strategy), resultSolved).Inc()
				return &i.SolveResult{Grid: grid, Solution: sol, Digest: digest, Cached: true}, nil
			}
		}
	}

	sol, err := s.search(ctx, grid, strategy)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, sol)
	return &i.SolveResult{Grid: grid, Solution: sol, Digest: digest}, nil
}

func (s *SolverService) search(ctx context.Context, grid *maze.Grid, strategy search.Strategy) (*search.Solution, error) {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	sol, err := search.Solve(ctx, grid,
		search.WithStrategy(strategy),
		search.WithExpansionLimit(s.opts.ExpansionLimit),
	)
	solveDuration.WithLabelValues(string(strategy)).Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, search.ErrNoSolution):
		solvesTotal.WithLabelValues(string(strategy), resultNoSolution).Inc()
		return nil, err
	case err != nil:
		solvesTotal.WithLabelValues(string(strategy), resultError).Inc()
		s.logger.Error("Search failed", "strategy", strategy, "error", err)
		return nil, err
	}

	solvesTotal.WithLabelValues(string(strategy), resultSolved).Inc()
	exploredStates.WithLabelValues(string(strategy)).Observe(float64(sol.ExploredCount))
	s.logger.Info("Maze solved", "strategy", strategy, "explored", sol.ExploredCount, "length", sol.Len())
	return sol, nil
}

// SolveAndSave solves text and stores the result in the owner's history.
func (s *SolverService) SolveAndSave(ctx context.Context, ownerID uuid.UUID, name, text, strategy string) (*dmn.SolveRecord, error) {
	if s.records == nil {
		return nil, errors.New("solve history is not configured")
	}

	result, err := s.Solve(ctx, text, strategy)
	if err != nil {
		return nil, err
	}

	record := newSolveRecord(ownerID, name, text, result)
	if err := s.records.Save(ctx, record); err != nil {
		s.logger.Error("Saving solve record failed", "owner", ownerID, "error", err)
		return nil, err
	}

	s.logger.Info("Solve record saved", "id", record.ID, "owner", ownerID)
	return record, nil
}

// Record returns one of the owner's records.
func (s *SolverService) Record(ctx context.Context, ownerID, id uuid.UUID) (*dmn.SolveRecord, error) {
	if s.records == nil {
		return nil, dmn.ErrRecordNotFound
	}
	return s.records.ByID(ctx, ownerID, id)
}

// Records lists the owner's most recent records.
func (s *SolverService) Records(ctx context.Context, ownerID uuid.UUID) ([]*dmn.SolveRecord, error) {
	if s.records == nil {
		return nil, nil
	}
	return s.records.ByOwner(ctx, ownerID, s.opts.HistoryLimit)
}

func (s *SolverService) solutionKey(digest string, strategy search.Strategy) string {
	return fmt.Sprintf(solutionKeyFmt, s.opts.Prefix, digest, strategy)
}

func (s *SolverService) cached(ctx context.Context, key string) (*search.Solution, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		cacheLookups.WithLabelValues("error").Inc()
		s.logger.Warning("Reading solution cache failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		cacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}

	sol, err := decodeSolution(raw)
	if err != nil {
		cacheLookups.WithLabelValues("error").Inc()
		s.logger.Warning("Discarding unreadable cached solution", "key", key, "error", err)
		return nil, false
	}

	cacheLookups.WithLabelValues("hit").Inc()
	return sol, true
}

func (s *SolverService) store(ctx context.Context, key string, sol *search.Solution) {
	if s.cache == nil {
		return
	}

	raw, err := encodeSolution(sol)
	if err != nil {
		s.logger.Warning("Encoding solution failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, raw); err != nil {
		s.logger.Warning("Writing solution cache failed", "key", key, "error", err)
	}
}

// cachedSolution is the cache encoding of a search.Solution.
type cachedSolution struct {
	Strategy      search.Strategy `json:"strategy"`
	Actions       []maze.Action   `json:"actions"`
	Cells         []maze.Cell     `json:"cells"`
	Explored      []maze.Cell     `json:"explored"`
	ExploredCount int             `json:"explored_count"`
}

func encodeSolution(sol *search.Solution) ([]byte, error) {
	explored := make([]maze.Cell, 0, len(sol.Explored))
	for c := range sol.Explored {
		explored = append(explored, c)
	}
	return json.Marshal(cachedSolution{
		Strategy:      sol.Strategy,
		Actions:       sol.Actions,
		Cells:         sol.Cells,
		Explored:      explored,
		ExploredCount: sol.ExploredCount,
	})
}

func decodeSolution(raw []byte) (*search.Solution, error) {
	var c cachedSolution
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}

	explored := make(map[maze.Cell]struct{}, len(c.Explored))
	for _, cell := range c.Explored {
		explored[cell] = struct{}{}
	}
	return &search.Solution{
		Strategy:      c.Strategy,
		Actions:       c.Actions,
		Cells:         c.Cells,
		Explored:      explored,
		ExploredCount: c.ExploredCount,
	}, nil
}

func newSolveRecord(ownerID uuid.UUID, name, text string, result *i.SolveResult) *dmn.SolveRecord {
	sol := result.Solution
	actions := make([]string, 0, len(sol.Actions))
	for _, a := range sol.Actions {
		actions = append(actions, string(a))
	}
	cells := make([]dmn.Position, 0, len(sol.Cells))
	for _, c := range sol.Cells {
		cells = append(cells, dmn.Position{Row: c.Row, Col: c.Col})
	}

	return &dmn.SolveRecord{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          name,
		Digest:        result.Digest,
		Maze:          text,
		Strategy:      string(sol.Strategy),
		Actions:       actions,
		Cells:         cells,
		ExploredCount: sol.ExploredCount,
		CreatedAt:     time.Now().UTC(),
	}
}
