// Package geom computes arrowhead geometry for directed graph edges.
//
// # Overview
//
// Given a sequence of edges (ordered pairs of 2D endpoints) and a small set
// of style inputs (line widths, arrowhead position fraction, head shape),
// the package derives the coordinates a renderer needs to decorate each edge
// with an arrow:
//
//   - the shaft endpoint where the arrow region begins, placed at a
//     length-dependent fraction of the edge
//   - a three-vertex triangular head, or
//   - a short thick stub approximating a rectangular head
//
// The computation is a single pure pass over the edge list. Each edge yields
// one immutable [Arrow] record; edges whose endpoints coincide yield nothing
// and are simply absent from the result (their index gap is visible through
// [Arrow.Index], which renderers use to keep per-edge colors aligned).
//
// # Shaft Scaling
//
// The arrow region does not grow linearly with the edge. The base fraction
// of 0.25 is shrunk as the edge gets longer, normalized against a 100-unit
// reference edge, so short edges get prominent arrows while long edges keep
// them compact. See [ShaftScale] for the exact policy.
//
// # Coordinate System
//
// The package is agnostic about axis orientation and units; it only assumes
// a Cartesian plane. Callers using a top-left origin (SVG, raster images)
// get mirrored geometry for free since every formula is linear in the
// coordinates.
//
// No rendering happens here. The [plot] package turns Arrow records into
// canvas collections.
//
// [plot]: github.com/edgeviz/edgeviz/pkg/plot
package geom
