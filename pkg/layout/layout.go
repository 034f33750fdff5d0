package layout

import (
	"context"
	"math"
	"time"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/observability"
)

// Algorithm names a position-assignment strategy.
type Algorithm string

const (
	// Built-in generators.
	Circular Algorithm = "circular"
	Grid     Algorithm = "grid"
	Random   Algorithm = "random"
	Spring   Algorithm = "spring"

	// Graphviz engines.
	Dot   Algorithm = "dot"
	Neato Algorithm = "neato"
	FDP   Algorithm = "fdp"
	SFDP  Algorithm = "sfdp"
	Circo Algorithm = "circo"
	Twopi Algorithm = "twopi"
)

// Algorithms lists every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{Circular, Grid, Random, Spring, Dot, Neato, FDP, SFDP, Circo, Twopi}
}

// Valid reports whether the algorithm name is known. The empty string is
// valid and means [Spring].
func (a Algorithm) Valid() bool {
	if a == "" {
		return true
	}
	for _, known := range Algorithms() {
		if a == known {
			return true
		}
	}
	return false
}

// IsGraphviz reports whether the algorithm delegates to Graphviz.
func (a Algorithm) IsGraphviz() bool {
	switch a {
	case Dot, Neato, FDP, SFDP, Circo, Twopi:
		return true
	}
	return false
}

// Options tunes position generation. The zero value is usable; see the
// package documentation for defaults.
type Options struct {
	Scale      float64    // half-extent of the layout area, default 100
	Center     geom.Point // midpoint of the layout area
	Seed       uint64     // PRNG seed for random and spring starts
	Iterations int        // spring relaxation rounds, default 50
	K          float64    // spring optimal edge length, 0 derives from node count
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 100
	}
	if o.Iterations <= 0 {
		o.Iterations = 50
	}
	return o
}

// Layout maps node IDs to their computed positions.
type Layout struct {
	Positions map[string]geom.Point `json:"positions" bson:"positions"`
}

// Bounds returns the tight bounding box over all positions. ok is false
// for an empty layout.
func (l *Layout) Bounds() (min, max geom.Point, ok bool) {
	if l == nil || len(l.Positions) == 0 {
		return geom.Point{}, geom.Point{}, false
	}
	first := true
	for _, p := range l.Positions {
		if first {
			min, max = p, p
			first = false
			continue
		}
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max, true
}

// Segments converts graph edges to positioned line segments, in edge
// order. Returns an INVALID_INPUT error naming the first node that has no
// position; a partial plot would silently misalign positional styles, so
// nothing is returned in that case.
func (l *Layout) Segments(g *graph.Graph) ([]geom.Segment, error) {
	return l.SegmentsFor(g.Edges())
}

// SegmentsFor converts the given edges to positioned line segments, in
// input order, with the same missing-position behavior as [Layout.Segments].
func (l *Layout) SegmentsFor(edges []graph.Edge) ([]geom.Segment, error) {
	segs := make([]geom.Segment, len(edges))
	for i, e := range edges {
		from, ok := l.Positions[e.From]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "no position for node %q", e.From)
		}
		to, ok := l.Positions[e.To]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "no position for node %q", e.To)
		}
		segs[i] = geom.Segment{From: from, To: to}
	}
	return segs, nil
}

// Compute assigns positions to every node of g using the named algorithm.
// An empty algorithm means [Spring]. The context is honored by the
// Graphviz engines; built-in generators complete quickly and ignore it.
func Compute(ctx context.Context, g *graph.Graph, algo Algorithm, opts Options) (*Layout, error) {
	if algo == "" {
		algo = Spring
	}
	start := time.Now()
	observability.Plot().OnLayoutStart(ctx, string(algo), g.NodeCount())
	l, err := compute(ctx, g, algo, opts.withDefaults())
	observability.Plot().OnLayoutComplete(ctx, string(algo), time.Since(start), err)
	return l, err
}

func compute(ctx context.Context, g *graph.Graph, algo Algorithm, opts Options) (*Layout, error) {
	switch algo {
	case Circular:
		return circular(g, opts), nil
	case Grid:
		return grid(g, opts), nil
	case Random:
		return random(g, opts), nil
	case Spring:
		return spring(g, opts), nil
	}
	if algo.IsGraphviz() {
		return graphvizLayout(ctx, g, algo)
	}
	return nil, errors.New(errors.ErrCodeInvalidLayout, "unknown layout algorithm: %q", string(algo))
}
