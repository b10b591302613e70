// Package pkg provides the core libraries for diskmap unit-disk mapping.
//
// # Overview
//
// diskmap turns an arbitrary simple undirected graph into a geometric layout
// of T-shaped copy lines on a 2-D grid, where adjacency in the source graph
// becomes derivable from line crossings. The pkg directory is organized as:
//
//   - [udm] - Domain logic (copy lines, crossing lattice, geometry emitter)
//   - [graph] - Node-link JSON serialization over gonum graphs
//   - [render] - Unit-disk DOT/SVG/PNG rendering
//   - [pipeline] - Orchestration (load → build → emit → render)
//   - [cache], [observability], [errors], [buildinfo] - Infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	node-link JSON
//	      ↓
//	 [graph] package (decode to gonum graph)
//	      ↓
//	 [udm] package (copy lines → crossing lattice → grid nodes)
//	      ↓
//	 [render] package (unit-disk DOT → SVG/PNG)
package pkg
