package plot_test

import (
	"context"
	"fmt"

	"github.com/edgeviz/edgeviz/pkg/canvas"
	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/layout"
	"github.com/edgeviz/edgeviz/pkg/plot"
)

func ExampleDrawEdges() {
	g := graph.New(nil)
	g.AddNode(graph.Node{ID: "src"})
	g.AddNode(graph.Node{ID: "dst"})
	g.AddEdge(graph.Edge{From: "src", To: "dst"})

	l := &layout.Layout{Positions: map[string]geom.Point{
		"src": {X: 0, Y: 0},
		"dst": {X: 100, Y: 0},
	}}

	c := canvas.NewSVG()
	lc, err := plot.DrawEdges(context.Background(), c, g, l, plot.DefaultOptions())
	if err != nil {
		fmt.Println("draw failed:", err)
		return
	}

	min, max, _ := c.Bounds()
	fmt.Println("segments:", len(lc.Segments))
	fmt.Printf("bounds: (%g, %g) to (%g, %g)\n", min.X, min.Y, max.X, max.Y)
	// Output:
	// segments: 1
	// bounds: (-5, -1.75) to (105, 1.75)
}
