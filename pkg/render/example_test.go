package render_test

import (
	"context"
	"fmt"

	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/render"
)

func ExampleToDOT() {
	g := graph.New(nil)
	_ = g.AddNode(graph.Node{ID: "a"})
	_ = g.AddNode(graph.Node{ID: "b"})
	_ = g.AddEdge(graph.Edge{From: "a", To: "b"})

	dot, err := render.ToDOT(g, nil, render.Options{})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(dot)
	// Output:
	// digraph G {
	//   rankdir=TB;
	//   bgcolor="transparent";
	//   node [shape=circle, style=filled, fillcolor="#1f78b4", fontsize=12];
	//   edge [color="#000000"];
	//
	//   "a" [label="a"];
	//   "b" [label="b"];
	//
	//   "a" -> "b";
	// }
}

func ExampleGraphvizSVG() {
	g := graph.New(nil)
	_ = g.AddNode(graph.Node{ID: "web"})
	_ = g.AddNode(graph.Node{ID: "api"})
	_ = g.AddEdge(graph.Edge{From: "web", To: "api"})

	dot, err := render.ToDOT(g, nil, render.Options{})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	svg, err := render.GraphvizSVG(context.Background(), dot)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Generated SVG (%d bytes)\n", len(svg))
	// Output varies with the Graphviz build
}
