// Package store persists named plots for the HTTP server.
//
// A stored plot bundles everything needed to re-render it: the graph
// document, an optional precomputed layout, and the drawing options.
// Two backends implement the Store interface:
//   - memory: in-process storage for development and tests
//   - mongo: MongoDB-backed storage for deployments that keep plots
//     across restarts and share them between instances
//
// # Architecture
//
// Plots are immutable once created: handlers create, fetch, list, and
// delete them, but never update in place. Saving again under the same
// name produces a new plot with a fresh ID, so older versions stay
// retrievable until they are deleted.
//
// The Store interface supports:
//   - Create with server-assigned UUIDs and creation timestamps
//   - Get/Delete by ID, reporting PLOT_NOT_FOUND for unknown IDs
//   - List, newest first
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// Production
//	st, err := store.NewMongoStore(ctx, store.MongoOptions{
//	    URI: "mongodb://localhost:27017",
//	})
//
// Manage plots:
//
//	p, err := store.NewPlot("deps-overview", doc, lay, opts)
//	if err != nil {
//	    return err
//	}
//	if err := st.Create(ctx, p); err != nil {
//	    return err
//	}
//
//	got, err := st.Get(ctx, p.ID)
//	if errors.GetCode(err) == errors.ErrCodePlotNotFound {
//	    // Deleted in the meantime.
//	}
package store

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/layout"
	"github.com/edgeviz/edgeviz/pkg/plot"
)

// Plot is a named, persistent rendering job: a graph, an optional
// precomputed layout, and the drawing options to apply when it is
// rendered again.
type Plot struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	Graph     graph.Document `json:"graph"`
	Layout    *layout.Layout `json:"layout,omitempty"`
	Options   plot.Options   `json:"options"`
}

// NewPlot builds a plot with a fresh UUID and creation time. The name
// is validated up front; it later appears in URLs and log lines.
func NewPlot(name string, doc graph.Document, lay *layout.Layout, opts plot.Options) (*Plot, error) {
	if err := errors.ValidatePlotName(name); err != nil {
		return nil, err
	}
	return &Plot{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Graph:     doc,
		Layout:    lay,
		Options:   opts,
	}, nil
}

// Clone returns a copy that shares no mutable state with p: the graph
// document, layout positions, and option slices are all copied.
func (p *Plot) Clone() *Plot {
	out := *p
	out.Graph = p.Graph.Clone()
	if p.Layout != nil {
		pos := make(map[string]geom.Point, len(p.Layout.Positions))
		for id, pt := range p.Layout.Positions {
			pos[id] = pt
		}
		out.Layout = &layout.Layout{Positions: pos}
	}
	out.Options.Edges = slices.Clone(p.Options.Edges)
	out.Options.Width = slices.Clone(p.Options.Width)
	return &out
}

// Store is the interface for plot storage backends.
type Store interface {
	// Create stores a new plot. A missing ID is assigned, a zero
	// CreatedAt is stamped, and the name is validated.
	Create(ctx context.Context, p *Plot) error

	// Get retrieves a plot by ID. Returns a PLOT_NOT_FOUND error when
	// no plot has that ID.
	Get(ctx context.Context, id string) (*Plot, error)

	// List returns every stored plot, newest first.
	List(ctx context.Context) ([]*Plot, error)

	// Delete removes a plot by ID, with the same PLOT_NOT_FOUND
	// behavior as Get.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// normalize applies the Create-time defaults and validation shared by
// every backend.
func normalize(p *Plot) error {
	if p == nil {
		return errors.New(errors.ErrCodeInvalidInput, "plot is nil")
	}
	if err := errors.ValidatePlotName(p.Name); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return nil
}

func notFound(id string) error {
	return errors.New(errors.ErrCodePlotNotFound, "plot %q not found", id)
}

// sortNewestFirst orders plots by creation time, newest first, with the
// ID as a deterministic tie-break.
func sortNewestFirst(plots []*Plot) {
	slices.SortFunc(plots, func(a, b *Plot) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
