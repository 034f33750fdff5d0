// Package render turns whole graphs into shareable artifacts.
//
// # Overview
//
// Where the [plot] package draws individual collections onto a canvas,
// this package produces complete documents in one call:
//
//   - Graphviz DOT text ([ToDOT]) and its rendered forms
//     ([GraphvizSVG], [GraphvizPNG])
//   - an interactive HTML page backed by Apache ECharts ([EChartsHTML])
//   - format conversion of any SVG to PDF or scaled PNG
//     ([ToPDF], [ToPNGScaled])
//
// # Graphviz Path
//
// ToDOT serializes a graph, pinning node positions when a layout is
// supplied so the exported diagram matches the plotted one. The DOT text
// renders through the embedded Graphviz engine without external binaries:
//
//	dot, err := render.ToDOT(g, l, render.Options{Labels: true})
//	svg, err := render.GraphvizSVG(ctx, dot)
//
// # Format Conversion
//
// [ToPDF] and [ToPNGScaled] convert SVG bytes with the external
// rsvg-convert tool (from librsvg). A missing binary surfaces as a
// MISSING_DEPENDENCY error carrying install instructions; nothing in this
// package shells out before that check passes.
//
// # Interactive HTML
//
// [EChartsHTML] writes a standalone page with a draggable, zoomable graph.
// With a layout the nodes are fixed at their computed positions; without
// one the browser runs a force simulation.
//
// [plot]: github.com/edgeviz/edgeviz/pkg/plot
package render
