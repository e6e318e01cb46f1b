package render

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/search"
)

const (
	defaultCellSize   = 50
	defaultCellBorder = 2
)

// Cell colors of the raster output.
var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	WallColor       = color.RGBA{40, 40, 40, 255}
	StartColor      = color.RGBA{255, 0, 0, 255}
	GoalColor       = color.RGBA{0, 171, 28, 255}
	PathColor       = color.RGBA{220, 235, 115, 255}
	ExploredColor   = color.RGBA{212, 97, 85, 255}
	OpenColor       = color.RGBA{237, 240, 252, 255}
)

// ImageOptions controls what Image draws.
type ImageOptions struct {
	ShowSolution bool
	ShowExplored bool
	CellSize     int // Pixels per cell side; defaults to 50
	CellBorder   int // Gap in pixels around each cell; defaults to 2
}

func (o ImageOptions) withDefaults() ImageOptions {
	if o.CellSize <= 0 {
		o.CellSize = defaultCellSize
	}
	if o.CellBorder < 0 || 2*o.CellBorder >= o.CellSize {
		o.CellBorder = min(defaultCellBorder, (o.CellSize-1)/2)
	}
	return o
}

// CellColor picks the fill of a single cell.
func CellColor(g *maze.Grid, sol *search.Solution, c maze.Cell, opts ImageOptions) color.RGBA {
	return cellColor(g, sol, pathSet(sol), c, opts)
}

func cellColor(g *maze.Grid, sol *search.Solution, onPath map[maze.Cell]struct{}, c maze.Cell, opts ImageOptions) color.RGBA {
	switch {
	case g.IsWall(c):
		return WallColor
	case c == g.Start():
		return StartColor
	case c == g.Goal():
		return GoalColor
	case sol != nil && opts.ShowSolution && contains(onPath, c):
		return PathColor
	case sol != nil && opts.ShowExplored && sol.IsExplored(c):
		return ExploredColor
	default:
		return OpenColor
	}
}

// Image rasterizes the grid with one square per cell.
func Image(g *maze.Grid, sol *search.Solution, opts ImageOptions) image.Image {
	opts = opts.withDefaults()
	size, border := opts.CellSize, opts.CellBorder

	onPath := pathSet(sol)

	dc := gg.NewContext(g.Width()*size, g.Height()*size)
	dc.SetColor(BackgroundColor)
	dc.Clear()

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			dc.SetColor(cellColor(g, sol, onPath, maze.Cell{Row: row, Col: col}, opts))
			dc.DrawRectangle(
				float64(col*size+border),
				float64(row*size+border),
				float64(size-2*border),
				float64(size-2*border),
			)
			dc.Fill()
		}
	}

	return dc.Image()
}

// SavePNG writes the Image rendering to path, creating its directory.
func SavePNG(path string, g *maze.Grid, sol *search.Solution, opts ImageOptions) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := gg.SavePNG(path, Image(g, sol, opts)); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
