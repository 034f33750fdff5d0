package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/layout"
)

// ReadLayout decodes a layout from r. Unknown keys are rejected, and a
// layout without positions reports INVALID_LAYOUT; both usually mean a
// hand-edited file went wrong.
//
// ReadLayout does not close r.
func ReadLayout(r io.Reader) (*layout.Layout, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var l layout.Layout
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(l.Positions) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "layout has no positions")
	}
	return &l, nil
}

// ReadLayoutFile reads a layout JSON file at path.
func ReadLayoutFile(path string) (*layout.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLayout(f)
}

// WriteLayout encodes a layout as indented JSON to w. The output can be
// re-read with [ReadLayout] and fed directly to a render request.
func WriteLayout(l *layout.Layout, w io.Writer) error {
	if l == nil || len(l.Positions) == 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "layout has no positions")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteLayoutFile writes a layout to a JSON file created with 0644
// permissions.
func WriteLayoutFile(l *layout.Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(l, f)
}
