package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/layout"
	"github.com/edgeviz/edgeviz/pkg/style"
)

// Options configures the whole-graph renderers. The zero value draws
// node IDs in the default palette.
type Options struct {
	// Title is shown as the page or diagram heading where the target
	// format has one.
	Title string
	// Labels switches node text from raw IDs to display labels.
	Labels bool
	// NodeColor fills node shapes. Accepts any form [style.ParseColor]
	// does; empty keeps the default blue.
	NodeColor string
	// EdgeColor strokes edges and arrowheads. Empty means black.
	EdgeColor string
}

// defaultNodeColor matches the node fill the plot package defaults to.
const defaultNodeColor = "#1f78b4"

// colors resolves the option colors, falling back to the defaults for
// empty fields.
func (o Options) colors() (node, edge style.Color, err error) {
	nodeName := o.NodeColor
	if nodeName == "" {
		nodeName = defaultNodeColor
	}
	node, err = style.ParseColor(nodeName)
	if err != nil {
		return node, edge, err
	}
	edgeName := o.EdgeColor
	if edgeName == "" {
		edgeName = "k"
	}
	edge, err = style.ParseColor(edgeName)
	return node, edge, err
}

// ToDOT serializes the graph to Graphviz DOT. With a layout the node
// positions are pinned (neato's "!" suffix) so the rendered diagram keeps
// them; without one the default dot engine arranges the graph top to
// bottom. Render the result with [GraphvizSVG] or [GraphvizPNG].
func ToDOT(g *graph.Graph, l *layout.Layout, opts Options) (string, error) {
	if g == nil {
		return "", errors.New(errors.ErrCodeInvalidGraph, "no graph provided")
	}
	nodeColor, edgeColor, err := opts.colors()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if g.Directed() {
		buf.WriteString("digraph G {\n")
	} else {
		buf.WriteString("graph G {\n")
	}
	if l != nil {
		buf.WriteString("  layout=\"neato\";\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%q, fontsize=12];\n", nodeColor.Hex())
	fmt.Fprintf(&buf, "  edge [color=%q];\n", edgeColor.Hex())
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
		buf.WriteString("  labelloc=\"t\";\n")
	}
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", nodeText(n, opts.Labels))}
		if l != nil {
			p, ok := l.Positions[n.ID]
			if !ok {
				return "", errors.New(errors.ErrCodeInvalidInput, "no position for node %q", n.ID)
			}
			attrs = append(attrs, fmt.Sprintf("pos=\"%g,%g!\"", p.X, p.Y))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	conn := " -> "
	if !g.Directed() {
		conn = " -- "
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q%s%q;\n", e.From, conn, e.To)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func nodeText(n *graph.Node, labels bool) string {
	if labels {
		return n.DisplayLabel()
	}
	return n.ID
}
