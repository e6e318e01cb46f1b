package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/search"
)

var (
	ErrUnknownFormat = errors.New("unknown report format")
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Position is the serialized form of a maze cell.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Report summarizes a solved maze.
type Report struct {
	Maze          string        `json:"maze,omitempty" yaml:"maze,omitempty"`
	Strategy      string        `json:"strategy" yaml:"strategy"`
	Width         int           `json:"width" yaml:"width"`
	Height        int           `json:"height" yaml:"height"`
	Start         Position      `json:"start" yaml:"start"`
	Goal          Position      `json:"goal" yaml:"goal"`
	ExploredCount int           `json:"explored_count" yaml:"explored_count"`
	PathLength    int           `json:"path_length" yaml:"path_length"`
	Actions       []maze.Action `json:"actions" yaml:"actions"`
	Cells         []Position    `json:"cells" yaml:"cells"`
}

// NewReport builds a Report for a solved grid.
func NewReport(name string, g *maze.Grid, sol *search.Solution) Report {
	cells := make([]Position, 0, len(sol.Cells))
	for _, c := range sol.Cells {
		cells = append(cells, toPosition(c))
	}

	return Report{
		Maze:          name,
		Strategy:      string(sol.Strategy),
		Width:         g.Width(),
		Height:        g.Height(),
		Start:         toPosition(g.Start()),
		Goal:          toPosition(g.Goal()),
		ExploredCount: sol.ExploredCount,
		PathLength:    sol.Len(),
		Actions:       sol.Actions,
		Cells:         cells,
	}
}

func toPosition(c maze.Cell) Position {
	return Position{Row: c.Row, Col: c.Col}
}

// Write encodes the report in the requested format.
func (r Report) Write(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		_, err := fmt.Fprintf(w, "Strategy: %s\nStates explored: %d\nPath length: %d\n", r.Strategy, r.ExploredCount, r.PathLength)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
