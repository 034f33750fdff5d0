package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/edgeviz/edgeviz/pkg/plot"
)

// optionsDoc is the on-disk shape of an options file. Both sections are
// optional; raw messages let present fields overwrite and absent ones
// keep whatever the caller seeded.
type optionsDoc struct {
	Options json.RawMessage `json:"options,omitempty"`
	Nodes   json.RawMessage `json:"nodes,omitempty"`
}

// DecodeOptions reads an options document from r and merges it onto
// opts and nodeOpts in place. Callers seed both with defaults first:
//
//	opts := plot.DefaultOptions()
//	nodeOpts := plot.DefaultNodeOptions()
//	err := io.DecodeOptions(f, &opts, &nodeOpts)
//
// DecodeOptions does not close r.
func DecodeOptions(r io.Reader, opts *plot.Options, nodeOpts *plot.NodeOptions) error {
	var doc optionsDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if doc.Options != nil {
		if err := json.Unmarshal(doc.Options, opts); err != nil {
			return fmt.Errorf("options: %w", err)
		}
	}
	if doc.Nodes != nil {
		if err := json.Unmarshal(doc.Nodes, nodeOpts); err != nil {
			return fmt.Errorf("nodes: %w", err)
		}
	}
	return nil
}

// ReadOptionsFile reads an options JSON file at path and merges it onto
// opts and nodeOpts, with the same semantics as [DecodeOptions].
func ReadOptionsFile(path string, opts *plot.Options, nodeOpts *plot.NodeOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeOptions(f, opts, nodeOpts)
}

// WriteOptionsFile writes the options document to a JSON file. The
// output reads back with [ReadOptionsFile].
func WriteOptionsFile(path string, opts plot.Options, nodeOpts plot.NodeOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	optsRaw, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("options: %w", err)
	}
	nodesRaw, err := json.Marshal(nodeOpts)
	if err != nil {
		return fmt.Errorf("nodes: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(optionsDoc{Options: optsRaw, Nodes: nodesRaw}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
