// Package canvas provides drawable surfaces for graph plots.
//
// # Overview
//
// A [Canvas] accumulates drawing collections in data coordinates and
// renders them to an output format once. Two implementations are
// provided:
//
//   - [SVG]: vector output via the svgo library
//   - [PNG]: raster output via the gg library
//
// Collections come in three kinds:
//
//   - [LineCollection]: stroked segments with per-segment colors and widths
//   - [PolyCollection]: filled polygons with per-polygon face colors
//   - [MarkerCollection]: circular markers with optional center labels
//
// Collections carry a z-order; lower values render first (further back).
// Adding a collection grows the data bounds to cover its geometry, and
// [Canvas.ExpandBounds] grows them explicitly, which plotting code uses
// to add view padding around the data.
//
// # Coordinate Mapping
//
// Data coordinates follow the mathematical convention (y grows upward).
// At render time the accumulated bounds are fitted to the pixel surface
// with a uniform scale, centered, and flipped vertically. Stroke widths,
// dash patterns, and marker radii are in pixels and do not scale with
// the data range.
//
// Basic usage:
//
//	c := canvas.NewSVG(canvas.WithSize(640, 480))
//	c.AddLines(&canvas.LineCollection{Segments: segs})
//	err := c.Render(w)
package canvas
