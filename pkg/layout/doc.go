// Package layout computes 2D node positions for graphs.
//
// # Overview
//
// A [Layout] maps node IDs to points. [Compute] dispatches on an
// [Algorithm]: the built-in generators (circular, grid, random, spring)
// run in-process and are fully deterministic for a given seed, while the
// Graphviz engines (dot, neato, fdp, sfdp, circo, twopi) delegate to the
// embedded Graphviz runtime and parse positions out of its output.
//
// # Coordinates
//
// Generators emit positions centered on Options.Center spanning roughly
// [-Scale, +Scale] on both axes. The default scale of 100 lines up with the
// arrowhead policy's reference edge length, so default layouts produce
// edges whose arrows have sensible proportions. Graphviz engines emit
// positions in points with Graphviz's own bottom-left origin; canvases
// autoscale, so no further normalization is needed.
//
// # Options
//
//   - Scale: half-extent of the layout area (default 100)
//   - Center: midpoint of the layout area
//   - Seed: PRNG seed for random and spring starts
//   - Iterations: spring relaxation rounds (default 50)
//   - K: spring optimal edge length (default derived from node count)
package layout
