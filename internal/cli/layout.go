package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/graph"
	edgevizio "github.com/edgeviz/edgeviz/pkg/io"
	"github.com/edgeviz/edgeviz/pkg/layout"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	output     string
	algorithm  string
	seed       uint64
	scale      float64
	iterations int
	noCache    bool
}

// layoutCommand creates the layout command for computing node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOpts

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute node positions for a graph",
		Long: `Compute node positions for a graph.

The layout command takes a graph document and computes positions with the
selected algorithm. The output is a layout JSON file that 'render --layout'
and the HTTP render endpoint accept, so expensive layouts (the Graphviz
engines in particular) run once and render many times.

Results are cached locally, keyed by graph content and layout options.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "layout algorithm: spring (default), circular, grid, random, dot, neato, fdp, sfdp, circo, twopi")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for random and spring layouts")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "half-extent of the layout area (default 100)")
	cmd.Flags().IntVar(&opts.iterations, "iterations", 0, "spring relaxation rounds (default 50)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runLayout loads the graph, computes positions, and writes the layout
// file.
func (c *CLI) runLayout(ctx context.Context, input string, opts *layoutOpts) error {
	g, doc, err := graph.ReadFile(input)
	if err != nil {
		return err
	}

	algo := layout.Algorithm(opts.algorithm)
	if !algo.Valid() {
		return errors.New(errors.ErrCodeInvalidLayout,
			"unknown layout algorithm: %q", opts.algorithm)
	}
	display := algo
	if display == "" {
		display = layout.Spring
	}
	lopts := layout.Options{
		Seed:       opts.seed,
		Scale:      opts.scale,
		Iterations: opts.iterations,
	}

	ca := c.newCache(ctx, opts.noCache)
	defer ca.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", display))
	spinner.Start()

	l, cacheHit, err := computeLayout(ctx, ca, doc, g, algo, lopts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := opts.output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := edgevizio.WriteLayoutFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath, "")
	printStats(g.NodeCount(), g.EdgeCount(), cacheHit)
	printNewline()
	printNextStep("Render", fmt.Sprintf("%s render %s --layout %s", appName, input, outputPath))

	return nil
}
