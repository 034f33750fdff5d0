package graph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with
	// the same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From
	// node does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To
	// node does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidEdgeEndpoint is returned by [Graph.Validate] when an edge
	// references a node that doesn't exist. This indicates corruption,
	// typically from a hand-edited document.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")
)

// Metadata stores arbitrary key-value pairs attached to nodes, edges, or
// the graph itself. Metadata maps are never nil after AddNode/AddEdge -
// they are automatically initialized to empty maps when needed.
type Metadata map[string]any

// Node is a vertex in the graph. The zero value is not usable - ID must be
// set before adding to a Graph.
type Node struct {
	ID    string   `json:"id" bson:"id"`
	Label string   `json:"label,omitempty" bson:"label,omitempty"` // display label, defaults to ID
	Meta  Metadata `json:"meta,omitempty" bson:"meta,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed connection between two nodes. Weight is free for
// callers to interpret; plotting maps it through colormaps when edges are
// colored by number.
type Edge struct {
	From   string   `json:"from" bson:"from"`
	To     string   `json:"to" bson:"to"`
	Weight float64  `json:"weight,omitempty" bson:"weight,omitempty"`
	Meta   Metadata `json:"meta,omitempty" bson:"meta,omitempty"`
}

// Graph is a graph with string node IDs. Cycles, self-loops, and parallel
// edges are all permitted. Edges always store a From and To endpoint; the
// directed flag records whether that orientation is meaningful, which
// plotting uses to decide arrowhead drawing.
//
// The zero value is not usable - use New. Graph is not safe for concurrent
// mutation without external synchronization; read-only use from multiple
// goroutines is fine.
type Graph struct {
	nodes    map[string]*Node
	edges    []Edge
	outgoing map[string][]string
	incoming map[string][]string
	meta     Metadata
	directed bool
}

// New creates an empty directed graph with optional graph-level metadata,
// which is typically used to carry plot options alongside the topology. A
// nil meta gets an empty map.
func New(meta Metadata) *Graph {
	if meta == nil {
		meta = Metadata{}
	}
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		meta:     meta,
		directed: true,
	}
}

// Meta returns the graph-level metadata map. Never nil.
func (g *Graph) Meta() Metadata { return g.meta }

// Directed reports whether edge orientation is meaningful.
func (g *Graph) Directed() bool { return g.directed }

// SetDirected marks the graph as directed or undirected. Edge storage is
// unchanged either way.
func (g *Graph) SetDirected(directed bool) { g.directed = directed }

// AddNode adds a node to the graph. Returns ErrInvalidNodeID if the node
// ID is empty, or ErrDuplicateNodeID if the ID is already in use. The
// node's Meta field is initialized to an empty map if nil.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	node := &n
	g.nodes[node.ID] = node
	return nil
}

// AddEdge adds a directed edge between two existing nodes. Returns
// ErrUnknownSourceNode or ErrUnknownTargetNode when an endpoint is
// missing. Self-loops and parallel edges are allowed; a self-loop plots as
// a zero-length edge, which the arrow pass skips.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if e.Meta == nil {
		e.Meta = Metadata{}
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// RemoveEdge removes every edge from→to. No error is returned if no such
// edge exists.
func (g *Graph) RemoveEdge(from, to string) {
	g.edges = slices.DeleteFunc(g.edges, func(e Edge) bool { return e.From == from && e.To == to })
	g.outgoing[from] = slices.DeleteFunc(g.outgoing[from], func(s string) bool { return s == to })
	g.incoming[to] = slices.DeleteFunc(g.incoming[to], func(s string) bool { return s == from })
}

// Nodes returns all nodes sorted by ID. Sorting makes every downstream
// consumer (layouts, serialization, DOT export) deterministic. The slice
// contains pointers to the live node structs.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	slices.SortFunc(nodes, func(a, b *Node) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return nodes
}

// NodeIDs returns all node IDs sorted ascending.
func (g *Graph) NodeIDs() []string {
	ids := slices.Sorted(maps.Keys(g.nodes))
	return ids
}

// Edges returns a copy of all edges in insertion order. Positional styles
// (colors, widths) rely on this order being stable.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the node with the given ID and true, or nil and false.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Successors returns the IDs this node has edges to. The returned slice is
// a read-only view; nil if the node has no successors or doesn't exist.
func (g *Graph) Successors(id string) []string { return g.outgoing[id] }

// Predecessors returns the IDs that have edges to this node. The returned
// slice is a read-only view; nil if none exist.
func (g *Graph) Predecessors(id string) []string { return g.incoming[id] }

// OutDegree returns the number of outgoing edges from the node, 0 if the
// node doesn't exist.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of incoming edges to the node, 0 if the
// node doesn't exist.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// Sources returns nodes with no incoming edges, sorted by ID.
func (g *Graph) Sources() []*Node {
	var sources []*Node
	for _, n := range g.Nodes() {
		if len(g.incoming[n.ID]) == 0 {
			sources = append(sources, n)
		}
	}
	return sources
}

// Sinks returns nodes with no outgoing edges, sorted by ID.
func (g *Graph) Sinks() []*Node {
	var sinks []*Node
	for _, n := range g.Nodes() {
		if len(g.outgoing[n.ID]) == 0 {
			sinks = append(sinks, n)
		}
	}
	return sinks
}

// Validate checks that every edge references existing nodes. Returns
// ErrInvalidEdgeEndpoint on the first violation, nil otherwise. Use this
// after bulk operations that bypass AddEdge.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if _, ok := g.nodes[e.From]; !ok {
			return ErrInvalidEdgeEndpoint
		}
		if _, ok := g.nodes[e.To]; !ok {
			return ErrInvalidEdgeEndpoint
		}
	}
	return nil
}

// HasCycles reports whether the graph contains a directed cycle.
// Self-loops count as cycles. Runs in O(N+E) using depth-first search
// with white/gray/black coloring.
func (g *Graph) HasCycles() bool {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.nodes))
	var found bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, next := range g.outgoing[id] {
			switch color[next] {
			case white:
				dfs(next)
			case gray:
				found = true
				return
			}
			if found {
				return
			}
		}
		color[id] = black
	}

	for id := range g.nodes {
		if color[id] == white {
			dfs(id)
			if found {
				return true
			}
		}
	}
	return false
}

// Weights returns the weight of every edge in insertion order. Handy as
// the numeric input for colormap-driven edge coloring.
func (g *Graph) Weights() []float64 {
	ws := make([]float64, len(g.edges))
	for i, e := range g.edges {
		ws[i] = e.Weight
	}
	return ws
}
