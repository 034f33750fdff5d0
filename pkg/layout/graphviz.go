package layout

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/graph"
)

// graphvizLayout delegates position assignment to a Graphviz engine. The
// graph is serialized to DOT with the engine pinned via the layout graph
// attribute, rendered back to attributed DOT, and node centers are parsed
// out of the pos attributes. Positions are in points with Graphviz's
// bottom-left origin; canvases autoscale, so they are used as-is.
func graphvizLayout(ctx context.Context, g *graph.Graph, algo Algorithm) (*Layout, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	dot := layoutDOT(g, algo)
	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.Format("dot"), &buf); err != nil {
		return nil, fmt.Errorf("graphviz %s: %w", algo, err)
	}

	positions := parsePositions(buf.Bytes())
	l := &Layout{Positions: make(map[string]geom.Point, g.NodeCount())}
	for _, id := range g.NodeIDs() {
		p, ok := positions[id]
		if !ok {
			return nil, fmt.Errorf("graphviz %s produced no position for node %q", algo, id)
		}
		l.Positions[id] = p
	}
	return l, nil
}

// layoutDOT serializes the graph for position assignment only: labels are
// kept so node sizes (and therefore spacing) match a labeled rendering,
// everything else stays default.
func layoutDOT(g *graph.Graph, algo Algorithm) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  layout=%q;\n", string(algo))
	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, n.DisplayLabel())
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}
	buf.WriteString("}\n")
	return buf.String()
}

var (
	// nodeStmtRe matches one node statement: an ID (quoted or bare)
	// followed by an attribute list. Edge statements don't match because
	// an arrow, not a bracket, follows their first ID.
	nodeStmtRe = regexp.MustCompile(`(?m)^\s*("(?:[^"\\]|\\.)*"|[A-Za-z0-9_.]+)\s*\[([^\]]*)\]`)

	posAttrRe = regexp.MustCompile(`\bpos="([-0-9.eE+]+),([-0-9.eE+]+)"`)
)

// parsePositions extracts node centers from attributed DOT output.
func parsePositions(out []byte) map[string]geom.Point {
	// Graphviz wraps long lines with backslash-newline continuations.
	out = bytes.ReplaceAll(out, []byte("\\\r\n"), nil)
	out = bytes.ReplaceAll(out, []byte("\\\n"), nil)

	positions := make(map[string]geom.Point)
	for _, m := range nodeStmtRe.FindAllSubmatch(out, -1) {
		raw := string(m[1])
		id := dotUnquote(raw)
		// Bare keywords are attribute-default statements, not nodes. A
		// node whose ID collides with a keyword comes out quoted.
		if raw == id && isDotKeyword(id) {
			continue
		}
		pos := posAttrRe.FindSubmatch(m[2])
		if pos == nil {
			continue
		}
		x, errX := strconv.ParseFloat(string(pos[1]), 64)
		y, errY := strconv.ParseFloat(string(pos[2]), 64)
		if errX != nil || errY != nil {
			continue
		}
		positions[id] = geom.Point{X: x, Y: y}
	}
	return positions
}

// dotUnquote strips DOT string quoting from an ID.
func dotUnquote(s string) string {
	if len(s) < 2 || s[0] != '"' {
		return s
	}
	s = s[1 : len(s)-1]
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}

func isDotKeyword(s string) bool {
	switch strings.ToLower(s) {
	case "graph", "node", "edge", "digraph", "subgraph", "strict":
		return true
	}
	return false
}
