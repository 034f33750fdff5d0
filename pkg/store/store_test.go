package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/layout"
	"github.com/edgeviz/edgeviz/pkg/plot"
	"github.com/edgeviz/edgeviz/pkg/style"
)

func samplePlot(t *testing.T, name string) *Plot {
	t.Helper()
	doc := graph.Document{
		Directed: true,
		Nodes:    []graph.Node{{ID: "a"}, {ID: "b"}},
		Edges:    []graph.Edge{{From: "a", To: "b"}},
	}
	lay := &layout.Layout{Positions: map[string]geom.Point{
		"a": {X: 0, Y: 0},
		"b": {X: 100, Y: 50},
	}}
	p, err := NewPlot(name, doc, lay, plot.DefaultOptions())
	if err != nil {
		t.Fatalf("NewPlot: %v", err)
	}
	return p
}

func TestNewPlot(t *testing.T) {
	p := samplePlot(t, "deps-overview")
	if p.ID == "" {
		t.Error("NewPlot should assign an ID")
	}
	if p.CreatedAt.IsZero() {
		t.Error("NewPlot should stamp CreatedAt")
	}

	tests := []struct {
		name     string
		plotName string
	}{
		{"empty", ""},
		{"path separator", "a/b"},
		{"traversal", "../etc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlot(tt.plotName, graph.Document{}, nil, plot.Options{})
			if errors.GetCode(err) != errors.ErrCodeInvalidName {
				t.Errorf("NewPlot(%q) code = %v, want INVALID_NAME", tt.plotName, errors.GetCode(err))
			}
		})
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	defer st.Close(ctx)

	p := samplePlot(t, "first")
	if err := st.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := st.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "first" {
		t.Errorf("Name = %q, want %q", got.Name, "first")
	}
	if len(got.Graph.Edges) != 1 || got.Graph.Edges[0].From != "a" {
		t.Errorf("Graph edges not preserved: %+v", got.Graph.Edges)
	}
	if got.Layout == nil || got.Layout.Positions["b"].X != 100 {
		t.Error("Layout positions not preserved")
	}
	if !got.Options.Arrows || !got.Options.Triangular {
		t.Errorf("Options not preserved: %+v", got.Options)
	}

	if err := st.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Get(ctx, p.ID); errors.GetCode(err) != errors.ErrCodePlotNotFound {
		t.Errorf("Get after Delete code = %v, want PLOT_NOT_FOUND", errors.GetCode(err))
	}
	if err := st.Delete(ctx, p.ID); errors.GetCode(err) != errors.ErrCodePlotNotFound {
		t.Errorf("second Delete code = %v, want PLOT_NOT_FOUND", errors.GetCode(err))
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	_, err := st.Get(ctx, "no-such-id")
	if errors.GetCode(err) != errors.ErrCodePlotNotFound {
		t.Errorf("Get code = %v, want PLOT_NOT_FOUND", errors.GetCode(err))
	}
	if msg := err.Error(); msg == "" {
		t.Error("not-found error should carry a message")
	}
}

func TestMemoryStoreListOrder(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"oldest", "middle", "newest"} {
		p := samplePlot(t, name)
		p.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if err := st.Create(ctx, p); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	plots, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(plots) != 3 {
		t.Fatalf("List returned %d plots, want 3", len(plots))
	}
	want := []string{"newest", "middle", "oldest"}
	for i, p := range plots {
		if p.Name != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, p.Name, want[i])
		}
	}
}

func TestMemoryStoreCreateAssignsID(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	p := &Plot{Name: "anonymous"}
	if err := st.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == "" {
		t.Error("Create should assign an ID to the caller's plot")
	}
	if p.CreatedAt.IsZero() {
		t.Error("Create should stamp CreatedAt")
	}
	if _, err := st.Get(ctx, p.ID); err != nil {
		t.Errorf("Get assigned ID: %v", err)
	}
}

func TestMemoryStoreDuplicateID(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	p := samplePlot(t, "dup")
	if err := st.Create(ctx, p); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	err := st.Create(ctx, p)
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("duplicate Create code = %v, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	p := samplePlot(t, "isolated")
	if err := st.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Mutations through a returned plot must not reach the store.
	got, err := st.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	got.Graph.Nodes[0].ID = "mangled"
	got.Layout.Positions["a"] = geom.Point{X: -999, Y: -999}

	again, err := st.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if again.Graph.Nodes[0].ID != "a" {
		t.Errorf("stored node ID = %q, want %q", again.Graph.Nodes[0].ID, "a")
	}
	if pt := again.Layout.Positions["a"]; pt.X != 0 || pt.Y != 0 {
		t.Errorf("stored position = %+v, want origin", pt)
	}

	// Same for mutations of the input after Create.
	p.Graph.Edges[0].From = "mangled"
	final, err := st.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("third Get: %v", err)
	}
	if final.Graph.Edges[0].From != "a" {
		t.Errorf("stored edge From = %q, want %q", final.Graph.Edges[0].From, "a")
	}
}

func TestEncodeDecodePlot(t *testing.T) {
	color, err := style.FromAny([]any{"red", "green"})
	if err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	p := samplePlot(t, "encoded")
	p.Options.EdgeColor = color
	p.Options.Width = style.Widths{1, 2.5}

	doc, err := encodePlot(p)
	if err != nil {
		t.Fatalf("encodePlot: %v", err)
	}
	if doc.ID != p.ID || doc.Name != "encoded" {
		t.Errorf("doc identity = (%q, %q), want (%q, %q)", doc.ID, doc.Name, p.ID, "encoded")
	}
	if len(doc.Options) == 0 {
		t.Fatal("encodePlot should serialize options")
	}

	back, err := decodePlot(doc)
	if err != nil {
		t.Fatalf("decodePlot: %v", err)
	}

	// The options survive as canonical JSON, so compare that form.
	wantJSON, err := json.Marshal(p.Options)
	if err != nil {
		t.Fatalf("marshal original options: %v", err)
	}
	gotJSON, err := json.Marshal(back.Options)
	if err != nil {
		t.Fatalf("marshal decoded options: %v", err)
	}
	if string(gotJSON) != string(wantJSON) {
		t.Errorf("options round trip = %s, want %s", gotJSON, wantJSON)
	}
	if back.Layout == nil || back.Layout.Positions["b"].Y != 50 {
		t.Error("layout not preserved through document encoding")
	}
}
