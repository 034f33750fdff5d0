package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/edgeviz/edgeviz/pkg/cache"
	"github.com/edgeviz/edgeviz/pkg/canvas"
	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/graph"
	edgevizio "github.com/edgeviz/edgeviz/pkg/io"
	"github.com/edgeviz/edgeviz/pkg/layout"
	"github.com/edgeviz/edgeviz/pkg/plot"
	"github.com/edgeviz/edgeviz/pkg/render"
	"github.com/edgeviz/edgeviz/pkg/style"
)

// renderOpts holds the command-line flags for the render command.
// Unset numeric flags carry sentinels so config-file defaults apply;
// see applyConfigDefaults.
type renderOpts struct {
	output      string   // output file path (single format) or base path (multiple)
	formats     []string // output formats: svg, png, html, dot, pdf, json
	layoutFile  string   // precomputed layout JSON, skips position computation
	optionsFile string   // options JSON merged over the defaults
	algorithm   string   // layout algorithm when no layout file is given
	seed        uint64   // PRNG seed for random and spring layouts
	width       float64  // canvas width in pixels
	height      float64  // canvas height in pixels
	noCache     bool     // disable the layout cache
	pickStyle   bool     // interactive line-style and colormap picker

	// Edge drawing flags. Empty strings and negative numbers mean unset.
	edgeColor  string
	edgeWidth  string
	lineStyle  string
	alpha      float64
	colormap   string
	vmin, vmax string
	noArrows   bool
	rectArrows bool
	fraction   float64
	label      string

	// Node drawing flags.
	nodeSize   float64
	nodeColor  string
	nodeBorder string
	labels     bool
}

// validFormats is the set of supported output formats. json exports the
// computed layout rather than pixels, so a later render can reuse it.
var validFormats = map[string]bool{
	"svg": true, "png": true, "html": true, "dot": true, "pdf": true, "json": true,
}

// renderCommand creates the render command for drawing graphs.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		alpha:    -1,
		fraction: -1,
	}

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Draw a graph as SVG, PNG, HTML, DOT, PDF, or layout JSON",
		Long: `Draw a graph as SVG, PNG, HTML, DOT, PDF, or layout JSON.

The input is a graph document with "nodes" and "edges" arrays. Positions
come from --layout when given, otherwise they are computed with the
selected --algorithm (cached locally, keyed by graph content).

Multiple formats render concurrently into sibling files:

  edgeviz render graph.json -f svg,png,html

Colors accept names ("red", "k"), hex ("#ff8800"), comma-separated lists
cycled over edges, or numeric values mapped through --colormap.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, html, dot, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.layoutFile, "layout", "l", "", "layout JSON file with precomputed positions")
	cmd.Flags().StringVar(&opts.optionsFile, "options", "", "options JSON file merged over the defaults")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "layout algorithm: spring (default), circular, grid, random, dot, neato, fdp, sfdp, circo, twopi")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for random and spring layouts")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width (default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout cache")
	cmd.Flags().BoolVar(&opts.pickStyle, "pick-style", false, "pick line style and colormap interactively")

	cmd.Flags().StringVar(&opts.edgeColor, "edge-color", "", "edge color(s): name, hex, list, or numbers for the colormap")
	cmd.Flags().StringVar(&opts.edgeWidth, "edge-width", "", "line width(s), cycled over edges (comma-separated)")
	cmd.Flags().StringVar(&opts.lineStyle, "style", "", "line style: solid, dashed, dashdot, dotted")
	cmd.Flags().Float64Var(&opts.alpha, "alpha", opts.alpha, "opacity override in [0,1]")
	cmd.Flags().StringVar(&opts.colormap, "colormap", "", "colormap for numeric edge colors")
	cmd.Flags().StringVar(&opts.vmin, "vmin", "", "lower colormap bound (default: autoscale)")
	cmd.Flags().StringVar(&opts.vmax, "vmax", "", "upper colormap bound (default: autoscale)")
	cmd.Flags().BoolVar(&opts.noArrows, "no-arrows", false, "suppress arrowheads on directed graphs")
	cmd.Flags().BoolVar(&opts.rectArrows, "rect-arrows", false, "rectangular head stubs instead of triangles")
	cmd.Flags().Float64Var(&opts.fraction, "fraction", opts.fraction, "head position along the edge: 0 tip, 1 source")
	cmd.Flags().StringVar(&opts.label, "label", "", "legend label for the edge collection")

	cmd.Flags().Float64Var(&opts.nodeSize, "node-size", 0, "node marker radius")
	cmd.Flags().StringVar(&opts.nodeColor, "node-color", "", "node fill color")
	cmd.Flags().StringVar(&opts.nodeBorder, "node-border", "", "node outline color")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw node labels")

	return cmd
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %s (must be svg, png, html, dot, pdf, or json)", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output has a
// known format extension, that extension is stripped. Used when writing
// multiple files (graph.svg, graph.png, ...).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the graph, resolves positions and options, and renders
// every requested format concurrently.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	prog := newProgress(c.Logger)

	g, doc, err := graph.ReadFile(input)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	drawOpts, nodeOpts, err := c.buildDrawOptions(opts)
	if err != nil {
		return err
	}

	lay, cacheHit, err := c.resolveLayout(ctx, doc, g, opts)
	if err != nil {
		return err
	}

	width, height := opts.width, opts.height
	if width <= 0 {
		width = float64(c.cfg.Render.Width)
	}
	if height <= 0 {
		height = float64(c.cfg.Render.Height)
	}

	base := basePath(opts.output, input)
	type artifact struct {
		path string
		size int
	}
	artifacts := make([]artifact, len(opts.formats))

	grp, gctx := errgroup.WithContext(ctx)
	for i, format := range opts.formats {
		grp.Go(func() error {
			data, err := renderFormat(gctx, g, lay, format, drawOpts, nodeOpts, width, height)
			if err != nil {
				return fmt.Errorf("%s: %w", format, err)
			}
			path := outputPath(base, format, opts)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			artifacts[i] = artifact{path: path, size: len(data)}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d format(s)", len(opts.formats)))
	printSuccess("Render complete")
	for _, a := range artifacts {
		printFile(a.path, humanize.Bytes(uint64(a.size)))
	}
	printStats(g.NodeCount(), g.EdgeCount(), cacheHit)
	return nil
}

// outputPath builds the file path for one rendered format. A single
// format honors --output verbatim; multiple formats share the base.
func outputPath(base, format string, opts *renderOpts) string {
	if len(opts.formats) == 1 && opts.output != "" {
		return opts.output
	}
	return base + "." + format
}

// resolveLayout returns positions for the graph: from --layout when
// given, otherwise computed with the selected algorithm through the
// layout cache. The bool reports a cache hit.
func (c *CLI) resolveLayout(ctx context.Context, doc graph.Document, g *graph.Graph, opts *renderOpts) (*layout.Layout, bool, error) {
	if opts.layoutFile != "" {
		l, err := edgevizio.ReadLayoutFile(opts.layoutFile)
		return l, false, err
	}

	algo := layout.Algorithm(opts.algorithm)
	if !algo.Valid() {
		return nil, false, errors.New(errors.ErrCodeInvalidLayout,
			"unknown layout algorithm: %q", opts.algorithm)
	}
	lopts := layout.Options{Seed: opts.seed}

	ca := c.newCache(ctx, opts.noCache)
	defer ca.Close()

	l, hit, err := computeLayout(ctx, ca, doc, g, algo, lopts)
	return l, hit, err
}

// computeLayout runs the layout algorithm behind the cache: identical
// graph content and options reuse the stored positions.
func computeLayout(ctx context.Context, ca cache.Cache, doc graph.Document, g *graph.Graph, algo layout.Algorithm, lopts layout.Options) (*layout.Layout, bool, error) {
	key := layoutCacheKey(doc, algo, lopts)
	if key != "" {
		if data, ok, err := ca.Get(ctx, key); err == nil && ok {
			var l layout.Layout
			if err := json.Unmarshal(data, &l); err == nil {
				return &l, true, nil
			}
		}
	}

	l, err := layout.Compute(ctx, g, algo, lopts)
	if err != nil {
		return nil, false, err
	}

	if key != "" {
		if data, err := json.Marshal(l); err == nil {
			_ = ca.Set(ctx, key, data, cache.TTLLayout)
		}
	}
	return l, false, nil
}

// layoutCacheKey derives the cache key for one layout computation.
// Returns "" when the graph cannot be hashed, which disables caching
// for that call.
func layoutCacheKey(doc graph.Document, algo layout.Algorithm, lopts layout.Options) string {
	data, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	keyer := cache.NewDefaultKeyer()
	return keyer.LayoutKey(cache.Hash(data), cache.LayoutKeyOpts{
		Algorithm:  string(algo),
		Scale:      lopts.Scale,
		CenterX:    lopts.Center.X,
		CenterY:    lopts.Center.Y,
		Seed:       lopts.Seed,
		Iterations: lopts.Iterations,
		K:          lopts.K,
	})
}

// buildDrawOptions turns config defaults, an optional options file, and
// the command-line flags into concrete drawing options, in that
// precedence order.
func (c *CLI) buildDrawOptions(opts *renderOpts) (plot.Options, plot.NodeOptions, error) {
	drawOpts := plot.DefaultOptions()
	drawOpts.Fraction = c.cfg.Render.Fraction
	drawOpts.Style = style.LineStyle(c.cfg.Render.Style)
	drawOpts.Colormap = style.Colormap(c.cfg.Render.Colormap)
	nodeOpts := plot.DefaultNodeOptions()

	if opts.optionsFile != "" {
		if err := edgevizio.ReadOptionsFile(opts.optionsFile, &drawOpts, &nodeOpts); err != nil {
			return drawOpts, nodeOpts, err
		}
	}

	if opts.edgeColor != "" {
		spec, err := parseColorFlag(opts.edgeColor)
		if err != nil {
			return drawOpts, nodeOpts, err
		}
		drawOpts.EdgeColor = spec
	}
	if opts.edgeWidth != "" {
		widths, err := parseWidthFlag(opts.edgeWidth)
		if err != nil {
			return drawOpts, nodeOpts, err
		}
		drawOpts.Width = widths
	}
	if opts.lineStyle != "" {
		ls, err := style.ParseLineStyle(opts.lineStyle)
		if err != nil {
			return drawOpts, nodeOpts, err
		}
		drawOpts.Style = ls
	}
	if opts.alpha >= 0 {
		a := opts.alpha
		drawOpts.Alpha = &a
	}
	if opts.colormap != "" {
		cm := style.Colormap(opts.colormap)
		if !cm.Valid() {
			return drawOpts, nodeOpts, errors.New(errors.ErrCodeInvalidColor,
				"unknown colormap: %q", opts.colormap)
		}
		drawOpts.Colormap = cm
	}
	if opts.vmin != "" {
		v, err := strconv.ParseFloat(opts.vmin, 64)
		if err != nil {
			return drawOpts, nodeOpts, errors.New(errors.ErrCodeInvalidInput, "bad --vmin: %q", opts.vmin)
		}
		drawOpts.VMin = &v
	}
	if opts.vmax != "" {
		v, err := strconv.ParseFloat(opts.vmax, 64)
		if err != nil {
			return drawOpts, nodeOpts, errors.New(errors.ErrCodeInvalidInput, "bad --vmax: %q", opts.vmax)
		}
		drawOpts.VMax = &v
	}
	if opts.noArrows {
		drawOpts.Arrows = false
	}
	if opts.rectArrows {
		drawOpts.Triangular = false
	}
	if opts.fraction >= 0 {
		drawOpts.Fraction = opts.fraction
	}
	if opts.label != "" {
		drawOpts.Label = opts.label
	}

	if opts.nodeSize > 0 {
		nodeOpts.Size = opts.nodeSize
	}
	if opts.nodeColor != "" {
		nodeOpts.Color = opts.nodeColor
	}
	if opts.nodeBorder != "" {
		nodeOpts.Border = opts.nodeBorder
	}
	if opts.labels {
		nodeOpts.Labels = true
	}

	if opts.pickStyle {
		ls, cm, err := pickStyle(drawOpts.Style, drawOpts.Colormap)
		if err != nil {
			return drawOpts, nodeOpts, err
		}
		drawOpts.Style = ls
		drawOpts.Colormap = cm
	}

	return drawOpts, nodeOpts, nil
}

// parseColorFlag interprets the --edge-color flag. A list where every
// entry parses as a number becomes a by-value spec for the colormap;
// anything else is a color name list cycled over edges.
func parseColorFlag(s string) (style.ColorSpec, error) {
	parts := splitList(s)
	if len(parts) == 0 {
		return style.ColorSpec{}, errors.New(errors.ErrCodeInvalidColor, "empty edge color")
	}

	values := make([]float64, len(parts))
	numeric := true
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			numeric = false
			break
		}
		values[i] = v
	}
	if numeric {
		return style.ByValue(values...), nil
	}
	if len(parts) == 1 {
		return style.Uniform(parts[0]), nil
	}
	return style.PerEdge(parts...), nil
}

// parseWidthFlag parses the --edge-width flag into stroke widths.
func parseWidthFlag(s string) (style.Widths, error) {
	parts := splitList(s)
	widths := make(style.Widths, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "bad width: %q", p)
		}
		widths[i] = v
	}
	return widths, nil
}

// renderFormat produces the bytes for one output format.
func renderFormat(ctx context.Context, g *graph.Graph, lay *layout.Layout, format string, drawOpts plot.Options, nodeOpts plot.NodeOptions, width, height float64) ([]byte, error) {
	switch format {
	case "svg", "pdf":
		data, err := renderCanvas(ctx, canvas.NewSVG(canvas.WithSize(width, height)), g, lay, drawOpts, nodeOpts)
		if err != nil || format == "svg" {
			return data, err
		}
		return render.ToPDF(data)
	case "png":
		return renderCanvas(ctx, canvas.NewPNG(canvas.WithSize(width, height)), g, lay, drawOpts, nodeOpts)
	case "dot":
		dot, err := render.ToDOT(g, lay, render.Options{Labels: nodeOpts.Labels, NodeColor: nodeOpts.Color})
		if err != nil {
			return nil, err
		}
		return []byte(dot), nil
	case "html":
		var buf bytes.Buffer
		err := render.EChartsHTML(&buf, g, lay, render.Options{Labels: nodeOpts.Labels, NodeColor: nodeOpts.Color})
		return buf.Bytes(), err
	case "json":
		var buf bytes.Buffer
		if err := edgevizio.WriteLayout(lay, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

// renderCanvas draws edges then nodes onto c and returns the rendered
// bytes.
func renderCanvas(ctx context.Context, c canvas.Canvas, g *graph.Graph, lay *layout.Layout, drawOpts plot.Options, nodeOpts plot.NodeOptions) ([]byte, error) {
	if _, err := plot.DrawEdges(ctx, c, g, lay, drawOpts); err != nil {
		return nil, err
	}
	if _, err := plot.DrawNodes(ctx, c, g, lay, nodeOpts); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
