// Package graph provides the directed graph model the rest of the module
// plots: nodes with string IDs, an ordered edge list, and adjacency indices.
//
// # Overview
//
// A [Graph] is built incrementally with [Graph.AddNode] and [Graph.AddEdge]
// and queried through adjacency accessors ([Graph.Successors],
// [Graph.Predecessors], degree counts, [Graph.Sources], [Graph.Sinks]).
// Unlike layered dependency graphs, cycles and self-loops are allowed; use
// [Graph.HasCycles] when a caller cares.
//
// Edge order is insertion order and is significant: plotting assigns
// per-edge colors and widths positionally, so [Graph.Edges] always returns
// edges in the order they were added.
//
// # Serialization
//
// [Document] is the canonical JSON/BSON form, with nodes sorted by ID for
// deterministic output. [FromGraph] and [Document.Build] convert between the
// two representations; [ReadFile] and [WriteFile] handle files.
package graph
