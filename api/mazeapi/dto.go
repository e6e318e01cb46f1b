package mazeapi

import (
	"sort"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/render"
	"github.com/beka-birhanu/vinom-solver/service/i"
)

// SolveRequest carries a maze in the text format.
type SolveRequest struct {
	Maze            string `json:"maze" binding:"required"`
	Strategy        string `json:"strategy"`
	Name            string `json:"name"`
	IncludeExplored bool   `json:"include_explored"`
}

// SolutionResponse describes a solved maze.
type SolutionResponse struct {
	Strategy      string         `json:"strategy"`
	Digest        string         `json:"digest"`
	Cached        bool           `json:"cached"`
	PathLength    int            `json:"path_length"`
	ExploredCount int            `json:"explored_count"`
	Actions       []string       `json:"actions"`
	Cells         []dmn.Position `json:"cells"`
	Explored      []dmn.Position `json:"explored,omitempty"`
	Rendering     string         `json:"rendering"`
}

func toSolutionResponse(result *i.SolveResult, includeExplored bool) *SolutionResponse {
	sol := result.Solution

	actions := make([]string, 0, len(sol.Actions))
	for _, a := range sol.Actions {
		actions = append(actions, string(a))
	}

	resp := &SolutionResponse{
		Strategy:      string(sol.Strategy),
		Digest:        result.Digest,
		Cached:        result.Cached,
		PathLength:    sol.Len(),
		ExploredCount: sol.ExploredCount,
		Actions:       actions,
		Cells:         toPositions(sol.Cells),
		Rendering:     render.Text(result.Grid, sol),
	}

	if includeExplored {
		explored := make([]maze.Cell, 0, len(sol.Explored))
		for c := range sol.Explored {
			explored = append(explored, c)
		}
		sort.Slice(explored, func(a, b int) bool {
			if explored[a].Row != explored[b].Row {
				return explored[a].Row < explored[b].Row
			}
			return explored[a].Col < explored[b].Col
		})
		resp.Explored = toPositions(explored)
	}

	return resp
}

func toPositions(cells []maze.Cell) []dmn.Position {
	positions := make([]dmn.Position, 0, len(cells))
	for _, c := range cells {
		positions = append(positions, dmn.Position{Row: c.Row, Col: c.Col})
	}
	return positions
}
