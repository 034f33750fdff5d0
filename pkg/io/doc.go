// Package io provides JSON import and export for layouts and drawing
// options.
//
// # Overview
//
// Graph documents carry their own codecs in [pkg/graph]; this package
// covers the two remaining file formats the CLI and server exchange:
//
//   - Layout files: positions computed by the layout command, reusable
//     across renders so expensive Graphviz runs happen once
//   - Options files: drawing and node options, applied on top of the
//     built-in defaults so a file only needs the fields it changes
//
// # Layout Format
//
// A layout file is the JSON form of [layout.Layout]:
//
//	{
//	  "positions": {
//	    "app":   {"x": 0, "y": 100},
//	    "lib-a": {"x": -87, "y": -50},
//	    "lib-b": {"x": 87, "y": -50}
//	  }
//	}
//
// Decoding is strict: unknown top-level keys are rejected so a typo in a
// hand-edited file fails loudly instead of producing an empty layout.
//
// # Options Format
//
// An options file carries edge options under "options" and node options
// under "nodes", both optional:
//
//	{
//	  "options": {"edge_color": ["red", "green"], "style": "dashed"},
//	  "nodes":   {"size": 12, "labels": true}
//	}
//
// [DecodeOptions] merges onto whatever the caller passes in, so omitted
// fields keep their defaults. The same shapes travel in render requests
// to the HTTP server.
package io
