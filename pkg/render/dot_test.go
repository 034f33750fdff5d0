package render

import (
	"strings"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/layout"
)

func TestToDOT_Basic(t *testing.T) {
	g := graph.New(nil)
	g.AddNode(graph.Node{ID: "a"})
	g.AddNode(graph.Node{ID: "b"})
	g.AddEdge(graph.Edge{From: "a", To: "b"})

	dot, err := ToDOT(g, nil, Options{})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `"a" [label="a"]`) {
		t.Error("ToDOT() output missing node a")
	}
	if !strings.Contains(dot, `"a" -> "b"`) {
		t.Error("ToDOT() output missing edge")
	}
	if !strings.Contains(dot, `fillcolor="#1f78b4"`) {
		t.Error("ToDOT() output missing default node fill")
	}
}

func TestToDOT_Undirected(t *testing.T) {
	g := graph.New(nil)
	g.SetDirected(false)
	g.AddNode(graph.Node{ID: "a"})
	g.AddNode(graph.Node{ID: "b"})
	g.AddEdge(graph.Edge{From: "a", To: "b"})

	dot, err := ToDOT(g, nil, Options{})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("ToDOT() undirected should open with graph G, got %q", dot[:20])
	}
	if !strings.Contains(dot, `"a" -- "b"`) {
		t.Error("ToDOT() undirected output missing -- edge")
	}
	if strings.Contains(dot, "->") {
		t.Error("ToDOT() undirected output contains directed edge operator")
	}
}

func TestToDOT_PinnedPositions(t *testing.T) {
	g := graph.New(nil)
	g.AddNode(graph.Node{ID: "a"})
	g.AddNode(graph.Node{ID: "b"})
	g.AddEdge(graph.Edge{From: "a", To: "b"})
	l := &layout.Layout{Positions: map[string]geom.Point{
		"a": {X: 10, Y: 20},
		"b": {X: 30, Y: 40},
	}}

	dot, err := ToDOT(g, l, Options{})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}

	if !strings.Contains(dot, `layout="neato"`) {
		t.Error("ToDOT() pinned output missing neato engine selection")
	}
	if !strings.Contains(dot, `pos="10,20!"`) {
		t.Error("ToDOT() output missing pinned position for a")
	}
	if strings.Contains(dot, "rankdir") {
		t.Error("ToDOT() pinned output should not set rankdir")
	}
}

func TestToDOT_Labels(t *testing.T) {
	g := graph.New(nil)
	g.AddNode(graph.Node{ID: "db", Label: "PostgreSQL"})

	dot, err := ToDOT(g, nil, Options{Labels: true})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}
	if !strings.Contains(dot, `label="PostgreSQL"`) {
		t.Error("ToDOT() labeled output missing display label")
	}

	dot, err = ToDOT(g, nil, Options{})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}
	if !strings.Contains(dot, `label="db"`) {
		t.Error("ToDOT() unlabeled output should fall back to the ID")
	}
}

func TestToDOT_Title(t *testing.T) {
	g := graph.New(nil)
	g.AddNode(graph.Node{ID: "a"})

	dot, err := ToDOT(g, nil, Options{Title: "deploy graph"})
	if err != nil {
		t.Fatalf("ToDOT() error: %v", err)
	}
	if !strings.Contains(dot, `label="deploy graph"`) || !strings.Contains(dot, `labelloc="t"`) {
		t.Error("ToDOT() output missing graph title")
	}
}

func TestToDOT_BadColor(t *testing.T) {
	g := graph.New(nil)
	g.AddNode(graph.Node{ID: "a"})

	_, err := ToDOT(g, nil, Options{NodeColor: "zzz"})
	if errors.GetCode(err) != errors.ErrCodeInvalidColor {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidColor)
	}
}

func TestToDOT_MissingPosition(t *testing.T) {
	g := graph.New(nil)
	g.AddNode(graph.Node{ID: "a"})
	g.AddNode(graph.Node{ID: "b"})
	l := &layout.Layout{Positions: map[string]geom.Point{"a": {X: 1, Y: 1}}}

	_, err := ToDOT(g, l, Options{})
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestToDOT_NilGraph(t *testing.T) {
	_, err := ToDOT(nil, nil, Options{})
	if errors.GetCode(err) != errors.ErrCodeInvalidGraph {
		t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidGraph)
	}
}
