package udm

// Spacing is the pixel-grid expansion factor: slot coordinates are spread
// four grid units apart so that copy-line arms have room for their node
// chains between crossings.
const Spacing = 4

// Node is one weighted grid point emitted while tracing a copy line. Nodes
// have no identity beyond their coordinates; duplicates across different
// copy lines are possible and are the caller's concern.
type Node struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Weight int `json:"weight"`
}

// WeightKind selects whether traced nodes carry structural weights or are
// flattened to unit weight.
type WeightKind int

const (
	// Weighted carries the computed structural weight on every node.
	Weighted WeightKind = iota
	// Unweighted pins every node's weight to 1.
	Unweighted
)

// String returns the kind name.
func (k WeightKind) String() string {
	if k == Unweighted {
		return "unweighted"
	}
	return "weighted"
}

func newNode(kind WeightKind, row, col, weight int) Node {
	if kind == Unweighted {
		weight = 1
	}
	return Node{Row: row, Col: col, Weight: weight}
}

// Center returns the line's pixel-grid center (I, J) for the given padding.
func (c CopyLine) Center(padding int) (i, j int) {
	return Spacing*(c.HSlot-1) + padding + 2, Spacing*(c.VSlot-1) + padding + 1
}

// Trace expands one copy line into its ordered weighted node list on the
// pixel grid. The emission order is fixed and callers may rely on it to
// follow the path:
//
//  1. Upward run from the center toward VStart. The node at the free end
//     gets weight 1, every other node weight 2.
//  2. Downward run from the center toward VStop. The first step emits the
//     turn corner at (I+1, J+1) with weight 2, where the vertical arm meets
//     the horizontal one; subsequent nodes follow the same end/mid-path
//     weight convention.
//  3. Rightward run from J+2 toward HStop, same convention.
//  4. The center node at (I, J+1), weighted by the number of arms actually
//     grown (0-3) so that downstream per-site weight sums see how many arms
//     meet there.
//
// A run is skipped entirely when its span is degenerate (the line covers
// only its own row or column in that direction). Trace is a pure function of
// its inputs and assumes the line came out of [NewCopyLines]; a line
// violating VStart ≤ HSlot ≤ VStop produces malformed runs silently.
func Trace(kind WeightKind, c CopyLine, padding int) []Node {
	nline := 0
	I, J := c.Center(padding)
	var nodes []Node

	// Grow up.
	start := I + Spacing*(c.VStart-c.HSlot) + 1
	if c.VStart < c.HSlot {
		nline++
	}
	for i := I; i >= start; i-- {
		weight := 2
		if i == start {
			weight = 1 // half weight at the free end
		}
		nodes = append(nodes, newNode(kind, i, J, weight))
	}

	// Grow down.
	stop := I + Spacing*(c.VStop-c.HSlot) - 1
	if c.VStop > c.HSlot {
		nline++
	}
	for i := I; i <= stop; i++ {
		if i == I {
			nodes = append(nodes, newNode(kind, i+1, J+1, 2)) // turn corner
			continue
		}
		weight := 2
		if i == stop {
			weight = 1
		}
		nodes = append(nodes, newNode(kind, i, J, weight))
	}

	// Grow right.
	stop = J + Spacing*(c.HStop-c.VSlot) - 1
	if c.HStop > c.VSlot {
		nline++
	}
	for j := J + 2; j <= stop; j++ {
		weight := 2
		if j == stop {
			weight = 1
		}
		nodes = append(nodes, newNode(kind, I, j, weight))
	}

	nodes = append(nodes, newNode(kind, I, J+1, nline))
	return nodes
}

// TraceAll traces every line in sequence and returns the concatenated node
// list, preserving per-line emission order.
func TraceAll(kind WeightKind, lines []CopyLine, padding int) []Node {
	var nodes []Node
	for _, c := range lines {
		nodes = append(nodes, Trace(kind, c, padding)...)
	}
	return nodes
}
