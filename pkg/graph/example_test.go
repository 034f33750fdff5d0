package graph_test

import (
	"fmt"
	"os"

	"github.com/edgeviz/edgeviz/pkg/graph"
)

func ExampleGraph() {
	g := graph.New(nil)
	g.AddNode(graph.Node{ID: "web"})
	g.AddNode(graph.Node{ID: "api"})
	g.AddNode(graph.Node{ID: "db"})
	g.AddEdge(graph.Edge{From: "web", To: "api"})
	g.AddEdge(graph.Edge{From: "api", To: "db"})

	fmt.Println("nodes:", g.NodeCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("api feeds:", g.Successors("api"))
	// Output:
	// nodes: 3
	// edges: 2
	// api feeds: [db]
}

func ExampleFromGraph() {
	g := graph.New(nil)
	g.AddNode(graph.Node{ID: "b"})
	g.AddNode(graph.Node{ID: "a"})
	g.AddEdge(graph.Edge{From: "a", To: "b", Weight: 3})

	doc := graph.FromGraph(g)
	graph.Write(doc, os.Stdout)
	// Output:
	// {
	//   "directed": true,
	//   "nodes": [
	//     {
	//       "id": "a"
	//     },
	//     {
	//       "id": "b"
	//     }
	//   ],
	//   "edges": [
	//     {
	//       "from": "a",
	//       "to": "b",
	//       "weight": 3
	//     }
	//   ]
	// }
}
