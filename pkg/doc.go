// Package pkg provides the core libraries for Edgeviz graph plotting.
//
// # Overview
//
// Edgeviz draws the edges of a graph as styled line segments with
// optional arrowheads, the way network plots render directed
// relationships. The pkg directory is organized into four main areas:
//
//  1. Domain: [graph], [geom], [layout], [style], [plot]
//  2. Output: [canvas], [render], [io]
//  3. Infrastructure: [cache], [store], [config], [errors], [observability]
//  4. Build metadata: [buildinfo]
//
// # Architecture
//
// The typical data flow through Edgeviz:
//
//	Graph document (JSON)
//	         ↓
//	    [graph] package (validate + build)
//	         ↓
//	    [layout] package (node positions)
//	         ↓
//	    [plot] package (edges, arrowheads, markers)
//	         ↓
//	    [canvas] / [render] packages
//	         ↓
//	    SVG/PNG/PDF/DOT/HTML output
//
// # Quick Start
//
// Load a graph, compute positions, and draw it:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/edgeviz/edgeviz/pkg/canvas"
//	    "github.com/edgeviz/edgeviz/pkg/graph"
//	    "github.com/edgeviz/edgeviz/pkg/layout"
//	    "github.com/edgeviz/edgeviz/pkg/plot"
//	)
//
//	// 1. Load the graph
//	g, _, err := graph.ReadFile("graph.json")
//
//	// 2. Compute positions
//	l, err := layout.Compute(context.Background(), g, layout.Spring, layout.Options{})
//
//	// 3. Draw edges and nodes
//	c := canvas.NewSVG()
//	_, err = plot.DrawEdges(context.Background(), c, g, l, plot.DefaultOptions())
//	_, err = plot.DrawNodes(context.Background(), c, g, l, plot.DefaultNodeOptions())
//
//	// 4. Render
//	err = c.Render(os.Stdout)
//
// # Main Packages
//
// ## Domain
//
// [graph] - Graph structure with string node IDs plus the JSON document
// form. Directed and undirected graphs, self-loops, and parallel edges.
//
// [geom] - Points, segments, and the arrowhead geometry: triangular and
// rectangular head construction with shaft shortening.
//
// [layout] - Node positioning. Native circular, grid, random, and
// spring algorithms plus the Graphviz family (dot, neato, fdp, sfdp,
// circo, twopi) through goccy/go-graphviz.
//
// [style] - Colors, colormaps, line styles, and per-edge broadcasting
// of color and width specs.
//
// [plot] - The drawing layer: edge lines, arrowheads, and node markers
// composed onto a canvas.
//
// ## Output
//
// [canvas] - Drawing surfaces. SVG (ajstarks/svgo) and PNG
// (fogleman/gg) backends behind one interface.
//
// [render] - Format conversion: DOT export, PDF via Graphviz, and
// interactive HTML through go-echarts.
//
// [io] - Layout and options files: the JSON forms shared by the CLI
// and the HTTP API.
//
// ## Infrastructure
//
// [cache] - Layout and artifact caching. File, Redis, and null
// backends with content-hash keys.
//
// [store] - Named plot persistence. Memory and MongoDB backends.
//
// [config] - TOML configuration with defaults, validation, and
// rotating-file log routing.
//
// [errors] - Coded errors shared across the CLI and the HTTP API.
//
// [observability] - Pluggable hooks for cache and plot
// instrumentation.
//
// # Common Workflows
//
// Reuse positions across renders:
//
//	l, _ := layout.Compute(ctx, g, layout.Spring, layout.Options{Seed: 42})
//	_ = io.WriteLayoutFile(l, "graph.layout.json")
//
// Color edges by value through a colormap:
//
//	opts := plot.DefaultOptions()
//	opts.EdgeColor = style.ByValue(0.2, 0.5, 0.9)
//	opts.Colormap = style.Plasma
//
// Serve plots over HTTP with caching:
//
//	ca, _ := cache.NewFileCache(dir)
//	st := store.NewMemoryStore()
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/plot/...               # Specific package
//	go test -run Example                 # Examples only
//	go test -tags integration ./pkg/...  # Include integration tests
//
// [graph]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/graph
// [geom]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/geom
// [layout]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/layout
// [style]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/style
// [plot]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/plot
// [canvas]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/canvas
// [render]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/render
// [io]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/io
// [cache]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/cache
// [store]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/store
// [config]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/config
// [errors]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/errors
// [observability]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/edgeviz/edgeviz/pkg/buildinfo
package pkg
