package plot

import (
	"context"

	"github.com/edgeviz/edgeviz/pkg/canvas"
	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/layout"
	"github.com/edgeviz/edgeviz/pkg/style"
)

// NodeOptions configures [DrawNodes]. Start from [DefaultNodeOptions].
type NodeOptions struct {
	// Nodes restricts drawing to a subset of node IDs. Nil means every
	// node of the graph, sorted by ID.
	Nodes []string `json:"nodes,omitempty"`

	// Size is the marker radius in pixels.
	Size float64 `json:"size,omitempty"`

	// Color fills the markers; Border strokes their outline. Both take
	// any color form [style.ParseColor] accepts.
	Color  string `json:"color,omitempty"`
	Border string `json:"border,omitempty"`

	// Alpha overrides marker opacity when set. Labels stay opaque.
	Alpha *float64 `json:"alpha,omitempty"`

	// Labels draws each node's display label centered on its marker.
	Labels bool `json:"labels"`

	// Label tags the produced collection for legends.
	Label string `json:"label,omitempty"`
}

// DefaultNodeOptions returns the standard marker configuration.
func DefaultNodeOptions() NodeOptions {
	return NodeOptions{
		Size:   8,
		Color:  "#1f78b4",
		Border: "k",
	}
}

// DrawNodes draws circular markers for the nodes of g onto c and
// returns the marker collection handle. Markers render above edges and
// arrowheads. An empty node list is a no-op returning (nil, nil);
// failures mirror [DrawEdges] and happen before anything is added.
func DrawNodes(ctx context.Context, c canvas.Canvas, g *graph.Graph, l *layout.Layout, opts NodeOptions) (*canvas.MarkerCollection, error) {
	if c == nil {
		return nil, errors.New(errors.ErrCodeMissingDependency,
			"no canvas provided: construct one with canvas.NewSVG or canvas.NewPNG")
	}
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "graph is nil")
	}
	if l == nil {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "layout is nil")
	}

	ids := opts.Nodes
	if ids == nil {
		ids = g.NodeIDs()
	}
	if len(ids) == 0 {
		return nil, nil
	}

	defaults := DefaultNodeOptions()
	if opts.Size <= 0 {
		opts.Size = defaults.Size
	}
	if opts.Color == "" {
		opts.Color = defaults.Color
	}
	if opts.Border == "" {
		opts.Border = defaults.Border
	}

	face, err := style.ParseColor(opts.Color)
	if err != nil {
		return nil, err
	}
	border, err := style.ParseColor(opts.Border)
	if err != nil {
		return nil, err
	}
	if opts.Alpha != nil {
		face = face.WithAlpha(*opts.Alpha)
		border = border.WithAlpha(*opts.Alpha)
	}

	centers := make([]geom.Point, len(ids))
	var texts []string
	if opts.Labels {
		texts = make([]string, len(ids))
	}
	for i, id := range ids {
		p, ok := l.Positions[id]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "no position for node %q", id)
		}
		centers[i] = p
		if opts.Labels {
			n, ok := g.Node(id)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "unknown node %q", id)
			}
			texts[i] = n.DisplayLabel()
		}
	}

	markers := &canvas.MarkerCollection{
		Centers:    centers,
		Sizes:      []float64{opts.Size},
		FaceColors: []style.Color{face},
		EdgeColors: []style.Color{border},
		LineWidth:  1,
		Texts:      texts,
		ZOrder:     canvas.ZMarkers,
		Label:      opts.Label,
	}
	c.AddMarkers(markers)
	return markers, nil
}
