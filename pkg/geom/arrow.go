package geom

import "math"

// ===================================================================
// Arrowhead geometry
// ===================================================================

// HeadShape selects the arrowhead construction used by [ComputeArrows].
type HeadShape string

const (
	// HeadTriangle builds a filled three-vertex head per edge.
	HeadTriangle HeadShape = "triangle"

	// HeadRect builds a short thick stub segment per edge instead of a
	// polygon. The stub is stroked, not filled.
	HeadRect HeadShape = "rect"
)

const (
	// DefaultFraction is the standard head position along the shaft,
	// measured from the target endpoint toward the source.
	DefaultFraction = 0.15

	// baseHeadFraction is the share of a reference-length edge reserved
	// for the arrow region before length scaling kicks in.
	baseHeadFraction = 0.25

	// refEdgeLength is the edge length at which the arrow region occupies
	// exactly half of baseHeadFraction.
	refEdgeLength = 100.0

	// headWidthScale converts a line width into the nominal head width.
	headWidthScale = 2.0

	// stubOvershoot stretches the rectangular stub slightly past its
	// anchor so it stays visible at small widths.
	stubOvershoot = 1.05

	// slopeEpsilon stands in for a zero denominator when the orthogonal
	// slope sums to exactly -1, keeping the division finite for perfect
	// diagonal edges.
	slopeEpsilon = 1e-14
)

// Config carries the style inputs for [ComputeArrows].
type Config struct {
	// Widths holds per-edge line widths. Edge i uses Widths[i mod
	// len(Widths)], so a single element applies one width to every edge.
	// An empty slice means width 1 throughout.
	Widths []float64

	// Fraction positions the head along the shaft: 0 places the tip at
	// the target endpoint, larger values slide the whole head toward the
	// source by that share of the edge length.
	Fraction float64

	// Shape picks the head construction. The zero value falls back to
	// [HeadTriangle].
	Shape HeadShape
}

// Arrow is the derived geometry for one edge. Fields that do not apply to
// the configured shape are zero.
type Arrow struct {
	// Index is the position of the source edge in the input sequence.
	// Because degenerate edges produce no Arrow, indices in a result may
	// have gaps; renderers use Index to keep per-edge styles aligned.
	Index int

	// Shaft runs from the edge source to the point where the arrow
	// region begins.
	Shaft Segment

	// Head holds the triangular head vertices in draw order: the two
	// base wings followed by the tip. Only set for [HeadTriangle].
	Head [3]Point

	// Stub is the thick segment approximating a rectangular head. Only
	// set for [HeadRect].
	Stub Segment

	// Width is the line width resolved for this edge after cycling.
	Width float64
}

// ShaftScale returns the fraction of an edge, measured from its source, at
// which the arrow region begins. The reserved share starts at
// baseHeadFraction and shrinks as the edge grows relative to
// refEdgeLength, so long edges keep compact heads:
//
//	scale = 1 - 0.25/(2*length/100)
//
// A 100-unit edge yields 0.875 and a 50-unit edge yields 0.75. Lengths at
// or below 12.5 yield zero or negative scales; callers feeding such edges
// get heads that cover the whole edge.
func ShaftScale(length float64) float64 {
	return 1.0 - baseHeadFraction/(headWidthScale*length/refEdgeLength)
}

// ComputeArrows derives arrow geometry for every edge in segs. The result
// holds one [Arrow] per non-degenerate edge, in input order. Edges whose
// endpoints coincide are skipped; the gap is observable through
// [Arrow.Index]. A nil or empty input returns nil.
//
// The function is pure and never mutates its inputs, so callers may share
// segs and cfg across concurrent calls.
func ComputeArrows(segs []Segment, cfg Config) []Arrow {
	if len(segs) == 0 {
		return nil
	}
	widths := cfg.Widths
	if len(widths) == 0 {
		widths = []float64{1}
	}
	shape := cfg.Shape
	if shape == "" {
		shape = HeadTriangle
	}

	arrows := make([]Arrow, 0, len(segs))
	for i, seg := range segs {
		dx, dy := seg.Delta()
		d := math.Hypot(dx, dy)
		if d == 0 {
			// Coincident endpoints have no direction to point at.
			continue
		}
		p := ShaftScale(d)
		base := seg.Lerp(p)

		a := Arrow{
			Index: i,
			Shaft: Segment{From: seg.From, To: base},
			Width: widths[i%len(widths)],
		}
		switch shape {
		case HeadRect:
			a.Stub = rectStub(seg, d, p)
		default:
			a.Head = triangleHead(seg, base, d, p, a.Width, cfg.Fraction)
		}
		arrows = append(arrows, a)
	}
	return arrows
}

// triangleHead builds the three vertices of a triangular head for one edge.
// base is the shaft endpoint at parameter p, d the edge length, width the
// resolved line width and fraction the head position along the shaft.
func triangleHead(seg Segment, base Point, d, p, width, fraction float64) [3]Point {
	hx := seg.To.X - base.X
	hy := seg.To.Y - base.Y
	du := p * headWidthScale * width

	// Slide the whole head toward the source by fraction of the edge.
	ux := (seg.To.X - seg.From.X) / d
	uy := (seg.To.Y - seg.From.Y) / d
	shift := Point{X: fraction * d * ux, Y: fraction * d * uy}

	// A horizontal edge wants a vertical base line, which the slope form
	// below cannot express. Offset the wings straight up and down instead.
	if hy == 0 {
		return [3]Point{
			{X: base.X - shift.X, Y: base.Y + du - shift.Y},
			{X: base.X - shift.X, Y: base.Y - du - shift.Y},
			{X: seg.To.X - shift.X, Y: seg.To.Y - shift.Y},
		}
	}

	// Slope of the line through base orthogonal to the remaining shaft
	// direction.
	ortho := -hx / hy

	// Half-width of the head base, solved from the distance along the
	// orthogonal line. Steep negative slopes drive the radicand below
	// zero; those fall back to half the magnitude so the head collapses
	// smoothly instead of failing.
	denom := 1 + ortho
	if denom == 0 {
		denom = slopeEpsilon
	}
	radicand := du * du / denom
	var half float64
	if radicand < 0 {
		half = 0.5 * math.Sqrt(-radicand)
	} else {
		half = math.Sqrt(radicand)
	}

	return [3]Point{
		{X: base.X + half - shift.X, Y: base.Y + ortho*half - shift.Y},
		{X: base.X - half - shift.X, Y: base.Y - ortho*half - shift.Y},
		{X: seg.To.X - shift.X, Y: seg.To.Y - shift.Y},
	}
}

// rectStub builds the stub segment for a rectangular head. The stub starts
// at parameter p*p along the edge and overshoots it by stubOvershoot,
// independent of the head position fraction.
func rectStub(seg Segment, d, p float64) Segment {
	pp := p * p
	return Segment{
		From: seg.Lerp(pp),
		To:   seg.Lerp(stubOvershoot * pp),
	}
}
