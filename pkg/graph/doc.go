// Package graph provides serialization for the simple undirected graphs
// diskmap maps onto the grid.
//
// # Overview
//
// The package sits at the serialization boundary between gonum's in-memory
// representation (*simple.UndirectedGraph) and the node-link JSON format used
// for input files, cached artifacts, and cross-tool interoperability:
//
//	{
//	  "nodes": [{"id": 0}, {"id": 1}, {"id": 2}],
//	  "edges": [{"source": 0, "target": 1}, {"source": 1, "target": 2}]
//	}
//
// Common operations:
//
//	g, _ := graph.ReadFile("graph.json")    // File → gonum graph
//	graph.WriteFile(g, "out.json")          // gonum graph → file
//	data, _ := graph.Marshal(g)             // gonum graph → []byte
//	g, _ = graph.Unmarshal(data)            // []byte → gonum graph
//
// Output is deterministic: nodes are sorted by ID and edges by normalized
// (source < target) endpoint pairs.
//
// Decoding validates the input: duplicate node IDs, self loops, and edges
// referencing unknown nodes fail with structured errors rather than the
// panics gonum's mutators would raise.
//
// # Concurrency
//
// All functions are safe for concurrent use on distinct graphs; gonum graphs
// themselves are not safe for concurrent mutation.
package graph
