// Package plot turns a positioned graph into canvas collections.
//
// # Overview
//
// [DrawEdges] is the drawing entry point: it strokes one line per edge
// and, for directed graphs, adds an arrowhead per non-degenerate edge
// using the geometry from [geom.ComputeArrows]. [DrawNodes] adds the
// circular node markers that sit above the edges.
//
// Drawing is all-or-nothing. Every input is validated and every style
// resolved before the first collection reaches the canvas, so a failed
// call leaves the canvas untouched.
//
// # Options
//
// [Options] covers the full configuration surface: an edge subset,
// scalar-or-list widths, the color specification (named colors, hex,
// component tuples, or numbers through a colormap), dash style, alpha,
// arrowhead shape and position, and a legend label. Start from
// [DefaultOptions] and override fields:
//
//	opts := plot.DefaultOptions()
//	opts.EdgeColor = style.ByValue(weights...)
//	opts.Colormap = style.Plasma
//	lc, err := plot.DrawEdges(ctx, c, g, l, opts)
//
// The returned [canvas.LineCollection] is the handle the canvas holds,
// so callers may restyle it before rendering.
//
// [geom.ComputeArrows]: github.com/edgeviz/edgeviz/pkg/geom.ComputeArrows
// [canvas.LineCollection]: github.com/edgeviz/edgeviz/pkg/canvas.LineCollection
package plot
