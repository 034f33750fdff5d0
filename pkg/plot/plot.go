package plot

import (
	"context"
	"time"

	"github.com/edgeviz/edgeviz/pkg/canvas"
	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/layout"
	"github.com/edgeviz/edgeviz/pkg/observability"
	"github.com/edgeviz/edgeviz/pkg/style"
)

// stubWidthScale thickens rectangular head stubs relative to the edge
// line width so they read as solid blocks.
const stubWidthScale = 10.0

// arrowOutline is the fixed stroke color around triangular heads.
var arrowOutline, _ = style.ParseColor("brown")

// Options is the full configuration surface for [DrawEdges]. The zero
// value draws nothing useful; start from [DefaultOptions].
type Options struct {
	// Edges restricts drawing to a subset. Nil means every edge of the
	// graph; an explicit empty slice draws nothing.
	Edges []graph.Edge `json:"edges,omitempty"`

	// Width holds the stroke width, scalar or per-edge with cyclic reuse.
	Width style.Widths `json:"width,omitempty"`

	// EdgeColor picks the line and arrow colors.
	EdgeColor style.ColorSpec `json:"edge_color,omitempty"`

	// Style selects the dash pattern. Both long names and the short
	// codes ("-", "--", ":", "-.") are accepted.
	Style style.LineStyle `json:"style,omitempty"`

	// Alpha overrides the opacity of every resolved color when set.
	Alpha *float64 `json:"alpha,omitempty"`

	// Colormap, VMin and VMax control how numeric edge colors map to
	// concrete colors. Unset bounds autoscale to the value range.
	Colormap style.Colormap `json:"colormap,omitempty"`
	VMin     *float64       `json:"vmin,omitempty"`
	VMax     *float64       `json:"vmax,omitempty"`

	// Arrows enables arrowheads. They are only drawn when the graph is
	// directed.
	Arrows bool `json:"arrows"`

	// Triangular picks filled triangular heads; false draws thick
	// rectangular stubs instead.
	Triangular bool `json:"triangular"`

	// Fraction positions the head along the edge: 0 at the tip, 1 at
	// the source.
	Fraction float64 `json:"fraction"`

	// Label tags the produced collections for legends.
	Label string `json:"label,omitempty"`
}

// DefaultOptions returns the standard drawing configuration: every edge,
// width 1, black solid lines, triangular arrowheads at 0.15 from the tip.
func DefaultOptions() Options {
	return Options{
		Arrows:     true,
		Triangular: true,
		Fraction:   geom.DefaultFraction,
	}
}

// DrawEdges draws the edges of g onto c at the positions in l and
// returns the edge-line collection handle.
//
// Every edge gets a full-length line. When the graph is directed and
// arrows are enabled, each non-degenerate edge additionally gets a
// head: a filled triangle or a thick stub, aligned to its edge's color
// by index even when degenerate edges left gaps. The canvas bounds grow
// to the edge extents plus 5% padding per axis.
//
// An empty edge list is a no-op returning (nil, nil). All other
// failures happen before anything is added to the canvas: a missing
// canvas reports MISSING_DEPENDENCY, a nil graph or layout reports
// INVALID_GRAPH or INVALID_LAYOUT, unknown positions report
// INVALID_INPUT, and bad color or style input reports INVALID_COLOR or
// INVALID_STYLE.
func DrawEdges(ctx context.Context, c canvas.Canvas, g *graph.Graph, l *layout.Layout, opts Options) (*canvas.LineCollection, error) {
	if c == nil {
		return nil, errors.New(errors.ErrCodeMissingDependency,
			"no canvas provided: construct one with canvas.NewSVG or canvas.NewPNG")
	}
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "graph is nil")
	}
	if l == nil {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "layout is nil")
	}

	edges := opts.Edges
	if edges == nil {
		edges = g.Edges()
	}
	if len(edges) == 0 {
		return nil, nil
	}

	start := time.Now()
	observability.Plot().OnDrawStart(ctx, len(edges))
	lc, arrowCount, err := drawEdges(c, g, l, edges, opts)
	observability.Plot().OnDrawComplete(ctx, len(edges), arrowCount, time.Since(start), err)
	return lc, err
}

func drawEdges(c canvas.Canvas, g *graph.Graph, l *layout.Layout, edges []graph.Edge, opts Options) (*canvas.LineCollection, int, error) {
	lineStyle, err := style.ParseLineStyle(string(opts.Style))
	if err != nil {
		return nil, 0, err
	}
	colors, err := opts.EdgeColor.Resolve(len(edges), style.ResolveOptions{
		Colormap: opts.Colormap,
		VMin:     opts.VMin,
		VMax:     opts.VMax,
		Alpha:    opts.Alpha,
	})
	if err != nil {
		return nil, 0, err
	}
	segs, err := l.SegmentsFor(edges)
	if err != nil {
		return nil, 0, err
	}

	// Validation is done; everything below only appends to the canvas.
	lines := &canvas.LineCollection{
		Segments: segs,
		Colors:   colors,
		Widths:   []float64(opts.Width),
		Dashes:   lineStyle.Dashes(),
		ZOrder:   canvas.ZEdges,
		Label:    opts.Label,
	}
	c.AddLines(lines)

	var arrowCount int
	if g.Directed() && opts.Arrows {
		arrowCount = drawHeads(c, segs, colors, opts)
	}

	if min, max, ok := geom.Extent(segs); ok {
		pad := geom.Point{X: 0.05 * (max.X - min.X), Y: 0.05 * (max.Y - min.Y)}
		c.ExpandBounds(min.Sub(pad), max.Add(pad))
	}
	return lines, arrowCount, nil
}

// drawHeads appends one arrowhead per non-degenerate edge and returns
// how many were produced.
func drawHeads(c canvas.Canvas, segs []geom.Segment, colors []style.Color, opts Options) int {
	shape := geom.HeadRect
	if opts.Triangular {
		shape = geom.HeadTriangle
	}
	arrows := geom.ComputeArrows(segs, geom.Config{
		Widths:   []float64(opts.Width),
		Fraction: opts.Fraction,
		Shape:    shape,
	})
	if len(arrows) == 0 {
		return 0
	}

	faces := make([]style.Color, len(arrows))
	for i, a := range arrows {
		faces[i] = colorFor(colors, a.Index)
	}

	if opts.Triangular {
		polys := make([][]geom.Point, len(arrows))
		for i, a := range arrows {
			polys[i] = a.Head[:]
		}
		c.AddPolys(&canvas.PolyCollection{
			Polygons:   polys,
			FaceColors: faces,
			EdgeColors: []style.Color{arrowOutline},
			LineWidth:  1,
			ZOrder:     canvas.ZArrows,
			Label:      opts.Label,
		})
		return len(arrows)
	}

	stubs := make([]geom.Segment, len(arrows))
	widths := make([]float64, len(arrows))
	for i, a := range arrows {
		stubs[i] = a.Stub
		widths[i] = stubWidthScale * a.Width
	}
	c.AddLines(&canvas.LineCollection{
		Segments: stubs,
		Colors:   faces,
		Widths:   widths,
		ZOrder:   canvas.ZArrows,
		Label:    opts.Label,
	})
	return len(arrows)
}

// colorFor aligns a resolved color list to an edge index: a single
// resolved color applies to every edge, a full list is indexed directly.
func colorFor(colors []style.Color, i int) style.Color {
	if len(colors) == 1 {
		return colors[0]
	}
	return colors[i]
}
