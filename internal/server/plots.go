package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/layout"
	"github.com/edgeviz/edgeviz/pkg/plot"
	"github.com/edgeviz/edgeviz/pkg/store"
)

// createPlotRequest is the POST /api/plots payload. The server assigns
// the ID and creation time.
type createPlotRequest struct {
	Name    string          `json:"name"`
	Graph   graph.Document  `json:"graph"`
	Layout  *layout.Layout  `json:"layout,omitempty"`
	Options json.RawMessage `json:"options,omitempty"`
}

func (s *Server) handleCreatePlot(w http.ResponseWriter, r *http.Request) {
	var req createPlotRequest
	body := http.MaxBytesReader(w, r.Body, maxRenderBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "parse request: %v", err))
		return
	}

	// Reject graphs that cannot build now rather than at render time.
	if _, err := req.Graph.Build(); err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidGraph, "build graph: %v", err))
		return
	}

	opts := plot.DefaultOptions()
	if len(req.Options) > 0 {
		if err := json.Unmarshal(req.Options, &opts); err != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "parse options: %v", err))
			return
		}
	}

	p, err := store.NewPlot(req.Name, req.Graph, req.Layout, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Create(r.Context(), p); err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("plot stored", "id", p.ID, "name", p.Name)
	w.Header().Set("Location", "/api/plots/"+p.ID)
	s.writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleListPlots(w http.ResponseWriter, r *http.Request) {
	plots, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, plots)
}

func (s *Server) handleGetPlot(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePlot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("plot deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
