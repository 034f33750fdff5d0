package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/layout"
	"github.com/edgeviz/edgeviz/pkg/plot"
)

func sampleLayout() *layout.Layout {
	return &layout.Layout{Positions: map[string]geom.Point{
		"a": {X: 0, Y: 100},
		"b": {X: -87, Y: -50},
		"c": {X: 87, Y: -50},
	}}
}

func TestLayoutRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLayout(sampleLayout(), &buf); err != nil {
		t.Fatalf("WriteLayout() error: %v", err)
	}

	got, err := ReadLayout(&buf)
	if err != nil {
		t.Fatalf("ReadLayout() error: %v", err)
	}
	want := sampleLayout()
	if len(got.Positions) != len(want.Positions) {
		t.Fatalf("got %d positions, want %d", len(got.Positions), len(want.Positions))
	}
	for id, p := range want.Positions {
		if got.Positions[id] != p {
			t.Errorf("position[%q] = %v, want %v", id, got.Positions[id], p)
		}
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.layout.json")
	if err := WriteLayoutFile(sampleLayout(), path); err != nil {
		t.Fatalf("WriteLayoutFile() error: %v", err)
	}

	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile() error: %v", err)
	}
	if len(got.Positions) != 3 {
		t.Errorf("got %d positions, want 3", len(got.Positions))
	}
}

func TestReadLayoutErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed JSON", `{"positions": `},
		{"unknown key", `{"postions": {"a": {"x": 0, "y": 0}}}`},
		{"empty positions", `{"positions": {}}`},
		{"missing positions", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadLayout(strings.NewReader(tt.input))
			if err == nil {
				t.Errorf("ReadLayout(%q) expected error, got nil", tt.input)
			}
		})
	}
}

func TestReadLayoutEmptyCode(t *testing.T) {
	_, err := ReadLayout(strings.NewReader(`{"positions": {}}`))
	if errors.GetCode(err) != errors.ErrCodeInvalidLayout {
		t.Errorf("code = %v, want INVALID_LAYOUT", errors.GetCode(err))
	}
}

func TestWriteLayoutNil(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLayout(nil, &buf); err == nil {
		t.Error("WriteLayout(nil) expected error, got nil")
	}
}

func TestReadLayoutFileMissing(t *testing.T) {
	_, err := ReadLayoutFile(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "open") {
		t.Errorf("error %q should name the open failure", err)
	}
}

func TestDecodeOptionsMergesOntoDefaults(t *testing.T) {
	opts := plot.DefaultOptions()
	nodeOpts := plot.DefaultNodeOptions()

	input := `{"options": {"style": "dashed", "fraction": 0.4}, "nodes": {"labels": true}}`
	if err := DecodeOptions(strings.NewReader(input), &opts, &nodeOpts); err != nil {
		t.Fatalf("DecodeOptions() error: %v", err)
	}

	if opts.Style != "dashed" {
		t.Errorf("Style = %q, want dashed", opts.Style)
	}
	if opts.Fraction != 0.4 {
		t.Errorf("Fraction = %v, want 0.4", opts.Fraction)
	}
	// Untouched fields keep their defaults.
	if !opts.Arrows || !opts.Triangular {
		t.Errorf("Arrows/Triangular = %v/%v, want defaults preserved", opts.Arrows, opts.Triangular)
	}
	if !nodeOpts.Labels {
		t.Error("node Labels = false, want true")
	}
	if nodeOpts.Size != plot.DefaultNodeOptions().Size {
		t.Errorf("node Size = %v, want default preserved", nodeOpts.Size)
	}
}

func TestDecodeOptionsEmptyDoc(t *testing.T) {
	opts := plot.DefaultOptions()
	nodeOpts := plot.DefaultNodeOptions()

	if err := DecodeOptions(strings.NewReader(`{}`), &opts, &nodeOpts); err != nil {
		t.Fatalf("DecodeOptions() error: %v", err)
	}
	want := plot.DefaultOptions()
	if opts.Arrows != want.Arrows || opts.Fraction != want.Fraction {
		t.Errorf("empty doc should leave defaults untouched, got %+v", opts)
	}
}

func TestOptionsFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")

	out := plot.DefaultOptions()
	out.Style = "dotted"
	out.Fraction = 0.25
	outNodes := plot.DefaultNodeOptions()
	outNodes.Size = 12

	if err := WriteOptionsFile(path, out, outNodes); err != nil {
		t.Fatalf("WriteOptionsFile() error: %v", err)
	}

	opts := plot.DefaultOptions()
	nodeOpts := plot.DefaultNodeOptions()
	if err := ReadOptionsFile(path, &opts, &nodeOpts); err != nil {
		t.Fatalf("ReadOptionsFile() error: %v", err)
	}

	if opts.Style != "dotted" || opts.Fraction != 0.25 {
		t.Errorf("options = %+v, want dotted/0.25", opts)
	}
	if nodeOpts.Size != 12 {
		t.Errorf("node Size = %v, want 12", nodeOpts.Size)
	}
}
