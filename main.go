package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beka-birhanu/vinom-solver/config"
	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/beka-birhanu/vinom-solver/render"
	"github.com/beka-birhanu/vinom-solver/search"
	"github.com/spf13/cobra"
)

// solveOptions holds the flags of the root command.
type solveOptions struct {
	strategy       string
	outDir         string
	showExplored   bool
	format         string
	print          bool
	trace          bool
	decreaseKey    bool
	expansionLimit int
}

func newRootCmd() *cobra.Command {
	defaults := config.LoadSolver()
	opts := &solveOptions{}

	rootCmd := &cobra.Command{
		Use:   "vinom-solver [flags] <maze.txt>",
		Short: "Solve a text maze with depth first, breadth first or A* search",
		Long: `vinom-solver reads a maze where 'A' is the start, 'B' the goal, a space
an open cell and any other character a wall. It searches the maze and writes
the solution as a PNG image.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return solveFile(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.strategy, "strategy", "s", defaults.Strategy, "search strategy: dfs, bfs or astar")
	flags.StringVarP(&opts.outDir, "out-dir", "o", "output", "directory the PNG is written to")
	flags.BoolVar(&opts.showExplored, "show-explored", true, "shade explored cells in the image")
	flags.StringVarP(&opts.format, "format", "f", render.FormatText, "report format: text, json or yaml")
	flags.BoolVarP(&opts.print, "print", "p", false, "print the solved maze as text")
	flags.BoolVar(&opts.trace, "trace", false, "print every state as it leaves the frontier")
	flags.BoolVar(&opts.decreaseKey, "decrease-key", false, "let A* re-parent waiting states on cheaper routes")
	flags.IntVar(&opts.expansionLimit, "limit", defaults.ExpansionLimit, "maximum states to explore, 0 for no limit")

	rootCmd.AddCommand(newServeCmd())
	return rootCmd
}

// solveFile solves the maze at path. Progress lines go to out for text
// reports and to errOut for JSON and YAML.
func solveFile(ctx context.Context, out, errOut io.Writer, path string, opts *solveOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	status := out
	if f := strings.ToLower(opts.format); f != "" && f != render.FormatText {
		status = errOut
	}

	strategy, err := search.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}

	grid, err := maze.Load(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(status, "Solving...")

	options := []search.Option{
		search.WithStrategy(strategy),
		search.WithExpansionLimit(opts.expansionLimit),
	}
	if opts.decreaseKey {
		options = append(options, search.WithDecreaseKey())
	}
	if opts.trace {
		options = append(options, search.WithObserver(func(n search.Node) {
			fmt.Fprintf(errOut, "explore %s g=%d h=%d f=%d\n", n.State, n.G, n.H, n.F)
		}))
	}

	sol, err := search.Solve(ctx, grid, options...)
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := render.NewReport(name, grid, sol).Write(out, opts.format); err != nil {
		return err
	}

	if opts.print {
		fmt.Fprint(status, render.Text(grid, sol))
	}

	imagePath := filepath.Join(opts.outDir, name+".png")
	imageOpts := render.ImageOptions{ShowSolution: true, ShowExplored: opts.showExplored}
	if err := render.SavePNG(imagePath, grid, sol, imageOpts); err != nil {
		return err
	}
	fmt.Fprintf(status, "Image saved to %s\n", imagePath)

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
