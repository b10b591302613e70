// Package udm implements unit-disk mapping: encoding an arbitrary simple
// undirected graph as a geometric arrangement of T-shaped "copy lines" on a
// 2-D grid, such that adjacency in the source graph becomes derivable from
// line crossings.
//
// # Overview
//
// Each vertex of the source graph is assigned one [CopyLine], a T-shaped path
// described in a small n×n slot coordinate system (n = vertex count). In the
// default construction every line sits on the diagonal of the slot grid and
// spans the full width and height, which guarantees that every pair of lines
// crosses exactly once at a coordinate derivable purely from their slots.
//
// The [CrossingLattice] is a read-only view over a finished set of copy lines
// plus the source graph. Querying a slot coordinate yields a [Block]: which
// vertex's line touches the coordinate from each of the four sides, and
// whether the two lines crossing there correspond to an edge of the source
// graph. The lattice is a faithful geometric encoding of the adjacency
// matrix, with crossings standing in for matrix cells.
//
// [Trace] expands one copy line from slot coordinates into weighted grid
// nodes, following the line's vertical run, turn, and horizontal run. Weights
// encode structural roles (1 at free ends, 2 mid-path and at the turn, arm
// count at the center) which downstream embedding layers rely on.
//
// # Usage
//
//	g := simple.NewUndirectedGraph()
//	// ... add nodes and edges ...
//	lattice, err := udm.Build(g, []int64{0, 1, 2})
//	if err != nil {
//	    return err
//	}
//	block, err := lattice.At(2, 1)      // inspect one crossing
//	nodes := udm.Trace(udm.Weighted, lattice.Lines()[0], 0)
//
// # Concurrency
//
// Everything in this package is immutable after construction. Lattice queries
// and node tracing are pure functions of their inputs, so independent calls
// are safe to run concurrently without synchronization.
package udm
