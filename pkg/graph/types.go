package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Document - Canonical Serialization Format
// =============================================================================

// Document is the canonical serialization format for graphs. It is used
// for API payloads, storage, caching, and hand-written input files.
//
// The format is human-readable and designed for round-trip fidelity:
// import → plot → export → re-import produces identical results. Nodes are
// sorted by ID; edges keep their insertion order.
type Document struct {
	Directed bool     `json:"directed" bson:"directed"`
	Nodes    []Node   `json:"nodes" bson:"nodes"`
	Edges    []Edge   `json:"edges" bson:"edges"`
	Meta     Metadata `json:"meta,omitempty" bson:"meta,omitempty"`
}

// FromGraph converts a graph to its serialization format. Nodes are sorted
// by ID for deterministic output; node and edge metadata is copied so later
// graph mutations don't leak into the document.
func FromGraph(g *Graph) Document {
	nodes := g.Nodes()
	doc := Document{
		Directed: g.Directed(),
		Nodes:    make([]Node, len(nodes)),
		Edges:    g.Edges(),
		Meta:     copyMeta(g.Meta()),
	}
	for i, n := range nodes {
		doc.Nodes[i] = Node{ID: n.ID, Label: n.Label, Meta: copyMeta(n.Meta)}
	}
	for i := range doc.Edges {
		doc.Edges[i].Meta = copyMeta(doc.Edges[i].Meta)
	}
	return doc
}

// Build converts a document back into a graph. Returns the first node or
// edge error encountered, wrapped with the offending ID, so a hand-edited
// file points at its own mistake.
func (doc Document) Build() (*Graph, error) {
	g := New(copyMeta(doc.Meta))
	g.SetDirected(doc.Directed)
	for _, n := range doc.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("add node %q: %w", n.ID, err)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e); err != nil {
			return nil, fmt.Errorf("add edge %s→%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// Clone returns a deep copy of the document. Node, edge, and graph
// metadata maps are copied, so mutating the clone never leaks into the
// original. Stores use this to hand out plots without aliasing.
func (doc Document) Clone() Document {
	out := doc
	out.Nodes = make([]Node, len(doc.Nodes))
	for i, n := range doc.Nodes {
		out.Nodes[i] = Node{ID: n.ID, Label: n.Label, Meta: copyMeta(n.Meta)}
	}
	out.Edges = make([]Edge, len(doc.Edges))
	for i, e := range doc.Edges {
		out.Edges[i] = e
		out.Edges[i].Meta = copyMeta(e.Meta)
	}
	out.Meta = copyMeta(doc.Meta)
	return out
}

// copyMeta creates a shallow copy of metadata to avoid aliasing. Nil in,
// nil out.
func copyMeta(m Metadata) Metadata {
	if m == nil {
		return nil
	}
	result := make(Metadata, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// =============================================================================
// JSON Encoding
// =============================================================================

// Marshal converts a document to indented JSON bytes.
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes JSON bytes into a Document.
func Unmarshal(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Write encodes a document as indented JSON to w.
func Write(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a JSON document from r. Use [Document.Build] on the result
// to obtain a live graph.
func Read(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}

// WriteFile writes a document to a JSON file created with 0644 permissions.
func WriteFile(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(doc, f)
}

// ReadFile reads a JSON file and builds the graph it describes. Returns
// decode errors for malformed JSON and build errors for structural
// problems such as edges referencing unknown nodes.
func ReadFile(path string) (*Graph, Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Read(f)
	if err != nil {
		return nil, Document{}, err
	}
	g, err := doc.Build()
	if err != nil {
		return nil, Document{}, err
	}
	return g, doc, nil
}
