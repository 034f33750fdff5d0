// Package style normalizes user-facing style inputs into concrete per-edge
// values before any drawing happens.
//
// # Overview
//
// Edge colors arrive in three shapes: one color for every edge, an explicit
// per-edge list, or per-edge numbers mapped through a [Colormap]. The
// [ColorSpec] variant type captures which shape the caller meant and
// [ColorSpec.Resolve] turns it into a flat []Color, failing fast on mixed
// lists and length mismatches so invalid input never reaches a canvas.
//
// Color strings accept matplotlib-style single-letter codes ("k", "r"),
// common color names, hex in #rgb/#rrggbb/#rrggbbaa form, and grayscale
// floats ("0.5"). Wire payloads may also carry [r,g,b] or [r,g,b,a]
// component tuples; [FromAny] folds those into the same representation.
//
// [Widths] and [LineStyle] cover the remaining per-edge style concerns:
// cyclic width broadcasting and named dash patterns.
package style
