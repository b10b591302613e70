package udm

import (
	"fmt"

	"gonum.org/v1/gonum/graph"

	"github.com/diskmap/diskmap/pkg/errors"
)

// Graph is the read-only adjacency surface the mapper needs from the source
// graph. It is a narrow subset of gonum's graph interfaces, so
// *simple.UndirectedGraph satisfies it directly. The graph must outlive any
// lattice built on top of it.
type Graph interface {
	// Node returns the node with the given ID, or nil if it does not exist.
	Node(id int64) graph.Node

	// Nodes returns an iterator over all nodes in the graph.
	Nodes() graph.Nodes

	// HasEdgeBetween reports whether an edge exists between x and y.
	HasEdgeBetween(xid, yid int64) bool
}

// CopyLine describes one vertex's T-shaped path footprint in slot
// coordinates. Slots are 1-based indices into the n×n slot grid; no pixel
// geometry is involved yet. A CopyLine is immutable once built.
//
// The vertical segment occupies column VSlot from row VStart to VStop. The
// horizontal segment occupies row HSlot from column VSlot to HStop; there is
// no hstart, the horizontal run always begins at the vertical segment.
//
// For a line to be queried correctly the construction must satisfy
// VStart ≤ HSlot ≤ VStop and VSlot ≤ HStop. [NewCopyLines] verifies this at
// the factory boundary; everything downstream treats CopyLine as a verified
// value type and does not re-check.
type CopyLine struct {
	Vertex int64 // vertex ID in the source graph
	VSlot  int   // column of the vertical segment
	HSlot  int   // row of the horizontal segment
	VStart int   // first row of the vertical segment (inclusive)
	VStop  int   // last row of the vertical segment (inclusive)
	HStop  int   // last column of the horizontal segment (inclusive)
}

// String renders the line's footprint for diagnostics.
func (c CopyLine) String() string {
	return fmt.Sprintf("CopyLine %d: vslot → [%d:%d,%d], hslot → [%d,%d:%d]",
		c.Vertex, c.VStart, c.VStop, c.VSlot, c.HSlot, c.VSlot, c.HStop)
}

// validate checks the slot invariants against a slot grid of size n.
func (c CopyLine) validate(n int) error {
	if c.VSlot < 1 || c.VSlot > n || c.HSlot < 1 || c.HSlot > n {
		return errors.New(errors.ErrCodeInvalidLine,
			"line %d: slots (%d,%d) outside 1..%d", c.Vertex, c.VSlot, c.HSlot, n)
	}
	if c.VStart > c.HSlot || c.HSlot > c.VStop {
		return errors.New(errors.ErrCodeInvalidLine,
			"line %d: horizontal slot %d outside vertical span [%d,%d]", c.Vertex, c.HSlot, c.VStart, c.VStop)
	}
	if c.HStop < c.VSlot {
		return errors.New(errors.ErrCodeInvalidLine,
			"line %d: hstop %d before vslot %d", c.Vertex, c.HStop, c.VSlot)
	}
	return nil
}

// NewCopyLines builds one copy line per vertex using the diagonal full-span
// construction: the i-th vertex in order sits at slot (i+1, i+1) with its
// vertical segment spanning rows 1..n and its horizontal segment spanning
// columns i+1..n. Every ordered pair of lines crosses at most once and the
// crossing coordinate is derivable purely from the two slots, independent of
// which pairs are actually edges.
//
// The order must be a permutation of the graph's vertex IDs. A length
// mismatch, a duplicate, or an ID not present in the graph fails with an
// ErrCodeInvalidOrder error.
func NewCopyLines(g Graph, order []int64) ([]CopyLine, error) {
	n := g.Nodes().Len()
	if len(order) != n {
		return nil, errors.New(errors.ErrCodeInvalidOrder,
			"order has %d vertices, graph has %d", len(order), n)
	}

	seen := make(map[int64]struct{}, len(order))
	for _, v := range order {
		if _, dup := seen[v]; dup {
			return nil, errors.New(errors.ErrCodeInvalidOrder, "duplicate vertex %d in order", v)
		}
		seen[v] = struct{}{}
		if g.Node(v) == nil {
			return nil, errors.New(errors.ErrCodeInvalidOrder, "vertex %d not in graph", v)
		}
	}

	lines := make([]CopyLine, len(order))
	for i, v := range order {
		lines[i] = CopyLine{
			Vertex: v,
			VSlot:  i + 1,
			HSlot:  i + 1,
			VStart: 1,
			VStop:  n,
			HStop:  n,
		}
		if err := lines[i].validate(n); err != nil {
			return nil, err
		}
	}
	return lines, nil
}
