package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/edgeviz/edgeviz/pkg/cache"
	"github.com/edgeviz/edgeviz/pkg/canvas"
	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/layout"
	"github.com/edgeviz/edgeviz/pkg/observability"
	"github.com/edgeviz/edgeviz/pkg/plot"
	"github.com/edgeviz/edgeviz/pkg/render"
	"github.com/edgeviz/edgeviz/pkg/style"
)

// maxRenderBody caps the request payload. Graphs bigger than this do
// not belong in a JSON API call.
const maxRenderBody = 32 << 20

// renderRequest is the POST /api/render payload. Options and Nodes are
// raw JSON overlaid onto the server's render defaults, so a partial
// object keeps the defaults for everything it omits. A missing layout
// is computed with Algorithm and Seed.
type renderRequest struct {
	Graph     graph.Document  `json:"graph"`
	Layout    *layout.Layout  `json:"layout,omitempty"`
	Algorithm string          `json:"algorithm,omitempty"`
	Seed      uint64          `json:"seed,omitempty"`
	Format    string          `json:"format,omitempty"`
	Width     int             `json:"width,omitempty"`
	Height    int             `json:"height,omitempty"`
	Options   json.RawMessage `json:"options,omitempty"`
	Nodes     json.RawMessage `json:"nodes,omitempty"`
}

// contentTypes maps render formats to their response Content-Type.
var contentTypes = map[string]string{
	"svg":  "image/svg+xml",
	"png":  "image/png",
	"html": "text/html; charset=utf-8",
	"dot":  "text/vnd.graphviz",
	"pdf":  "application/pdf",
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	var req renderRequest
	body := http.MaxBytesReader(w, r.Body, maxRenderBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "parse request: %v", err))
		return
	}

	format := req.Format
	if format == "" {
		format = "svg"
	}
	contentType, ok := contentTypes[format]
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeInvalidFormat,
			"unknown format %q (want svg, png, html, dot, or pdf)", format))
		return
	}

	g, err := req.Graph.Build()
	if err != nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidGraph, "build graph: %v", err))
		return
	}
	if len(req.Graph.Nodes) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidGraph, "graph has no nodes"))
		return
	}

	opts, nodeOpts, err := s.renderOptions(req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	width, height := req.Width, req.Height
	if width <= 0 {
		width = s.cfg.Render.Width
	}
	if height <= 0 {
		height = s.cfg.Render.Height
	}

	lay := req.Layout
	if lay == nil {
		algo := layout.Algorithm(req.Algorithm)
		if !algo.Valid() {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput,
				"unknown layout algorithm %q", req.Algorithm))
			return
		}
		lay, err = layout.Compute(ctx, g, algo, layout.Options{Seed: req.Seed})
		if err != nil {
			s.writeError(w, err)
			return
		}
	}

	key := s.artifactKey(req.Graph, lay, format, opts, nodeOpts, width, height)
	if key != "" {
		if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, key)
			s.notifyRender(format, g, true, time.Since(start))
			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", contentType)
			w.Write(data)
			return
		}
		observability.Cache().OnCacheMiss(ctx, key)
	}

	data, err := s.renderArtifact(r, format, g, lay, opts, nodeOpts, width, height)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			s.logger.Debug("cache set failed", "key", key, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, key, len(data))
		}
	}

	s.notifyRender(format, g, false, time.Since(start))
	w.Header().Set("X-Cache", "MISS")
	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}

// renderOptions seeds the drawing options from the configured defaults
// and overlays whatever the request supplies.
func (s *Server) renderOptions(req renderRequest) (plot.Options, plot.NodeOptions, error) {
	opts := plot.DefaultOptions()
	opts.Fraction = s.cfg.Render.Fraction
	opts.Style = style.LineStyle(s.cfg.Render.Style)
	opts.Colormap = style.Colormap(s.cfg.Render.Colormap)
	if len(req.Options) > 0 {
		if err := json.Unmarshal(req.Options, &opts); err != nil {
			return plot.Options{}, plot.NodeOptions{},
				errors.New(errors.ErrCodeInvalidInput, "parse options: %v", err)
		}
	}

	nodeOpts := plot.DefaultNodeOptions()
	if len(req.Nodes) > 0 {
		if err := json.Unmarshal(req.Nodes, &nodeOpts); err != nil {
			return plot.Options{}, plot.NodeOptions{},
				errors.New(errors.ErrCodeInvalidInput, "parse node options: %v", err)
		}
	}
	return opts, nodeOpts, nil
}

func (s *Server) renderArtifact(r *http.Request, format string, g *graph.Graph, lay *layout.Layout,
	opts plot.Options, nodeOpts plot.NodeOptions, width, height int) ([]byte, error) {

	ctx := r.Context()
	switch format {
	case "svg", "png", "pdf":
		var c canvas.Canvas
		size := canvas.WithSize(float64(width), float64(height))
		if format == "png" {
			c = canvas.NewPNG(size)
		} else {
			c = canvas.NewSVG(size)
		}
		if _, err := plot.DrawEdges(ctx, c, g, lay, opts); err != nil {
			return nil, err
		}
		if _, err := plot.DrawNodes(ctx, c, g, lay, nodeOpts); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := c.Render(&buf); err != nil {
			return nil, err
		}
		if format == "pdf" {
			return render.ToPDF(buf.Bytes())
		}
		return buf.Bytes(), nil

	case "dot":
		dot, err := render.ToDOT(g, lay, render.Options{
			Labels:    nodeOpts.Labels,
			NodeColor: nodeOpts.Color,
		})
		if err != nil {
			return nil, err
		}
		return []byte(dot), nil

	case "html":
		var buf bytes.Buffer
		err := render.EChartsHTML(&buf, g, lay, render.Options{
			Labels:    nodeOpts.Labels,
			NodeColor: nodeOpts.Color,
		})
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
}

// artifactKey derives the cache key from everything that affects the
// artifact bytes. Hashing the canonical forms keeps the key stable
// across clients that order JSON fields differently. An empty key
// means the request is not cacheable.
func (s *Server) artifactKey(doc graph.Document, lay *layout.Layout, format string,
	opts plot.Options, nodeOpts plot.NodeOptions, width, height int) string {

	input, err := json.Marshal(struct {
		Graph  graph.Document `json:"graph"`
		Layout *layout.Layout `json:"layout"`
	}{doc, lay})
	if err != nil {
		return ""
	}
	params, err := json.Marshal(struct {
		Options plot.Options     `json:"options"`
		Nodes   plot.NodeOptions `json:"nodes"`
		Width   int              `json:"width"`
		Height  int              `json:"height"`
	}{opts, nodeOpts, width, height})
	if err != nil {
		return ""
	}
	return s.keyer.ArtifactKey(cache.Hash(input), cache.ArtifactKeyOpts{
		Format:  format,
		Options: string(params),
	})
}

func (s *Server) notifyRender(format string, g *graph.Graph, cached bool, elapsed time.Duration) {
	s.hub.broadcast(renderEvent{
		Type:    "render",
		Format:  format,
		Nodes:   len(g.NodeIDs()),
		Edges:   len(g.Edges()),
		Cached:  cached,
		Elapsed: elapsed.Round(time.Millisecond).String(),
	})
}
