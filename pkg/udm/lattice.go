package udm

import (
	"strings"

	"github.com/diskmap/diskmap/pkg/errors"
)

// NoLine is the sentinel vertex ID marking a block side no line touches.
const NoLine int64 = -1

// Connectivity is the tri-state crossing classification of a block.
type Connectivity int8

const (
	// ConnNotApplicable means no horizontal/vertical line pair crosses here.
	ConnNotApplicable Connectivity = iota
	// ConnDisconnected means two lines cross here but their vertices are not
	// adjacent in the source graph.
	ConnDisconnected
	// ConnConnected means two lines cross here and their vertices are
	// adjacent in the source graph.
	ConnConnected
)

// String returns a human-readable name for the connectivity state.
func (c Connectivity) String() string {
	switch c {
	case ConnDisconnected:
		return "disconnected"
	case ConnConnected:
		return "connected"
	default:
		return "n/a"
	}
}

// Block is a 3×3 symbolic snapshot of one slot-grid intersection: the vertex
// whose line touches the coordinate from each side ([NoLine] if none), and
// whether the crossing corresponds to an edge of the source graph. Blocks are
// computed on demand by [CrossingLattice.At] and never stored.
type Block struct {
	Top    int64
	Bottom int64
	Left   int64
	Right  int64

	// Connected is meaningful only when both a horizontal-bearing and a
	// vertical-bearing line are present at the coordinate.
	Connected Connectivity
}

// symbolFor maps a vertex ID to its single-character display symbol:
// digits for 0-9, letters from 'a' for larger IDs, '⋅' for the sentinel.
func symbolFor(id int64) string {
	switch {
	case id == NoLine:
		return "⋅"
	case id < 10:
		return string(rune('0' + id))
	default:
		return string(rune('a' + (id - 10)))
	}
}

// RowStrings returns the block's three-row textual representation. The middle
// row shows the crossing state: '●' connected, '○' disconnected, '⋅' when no
// crossing applies.
func (b Block) RowStrings() [3]string {
	conn := "⋅"
	switch b.Connected {
	case ConnConnected:
		conn = "●"
	case ConnDisconnected:
		conn = "○"
	}
	return [3]string{
		" ⋅ " + symbolFor(b.Top) + " ⋅",
		" " + symbolFor(b.Left) + " " + conn + " " + symbolFor(b.Right),
		" ⋅ " + symbolFor(b.Bottom) + " ⋅",
	}
}

// String renders the block as three lines.
func (b Block) String() string {
	rows := b.RowStrings()
	return strings.Join(rows[:], "\n")
}

// CrossingLattice is the queryable 2-D view over a finished copy-line set and
// the source graph. It holds no cache: every [CrossingLattice.At] call
// recomputes its block from scratch, which is acceptable because the slot
// grid is small in practice. The lattice is read-only for its entire
// lifetime and safe for concurrent queries.
type CrossingLattice struct {
	width  int
	height int
	lines  []CopyLine
	g      Graph
}

// NewCrossingLattice builds a lattice view over lines and their source
// graph. The slot grid is square with side len(lines).
func NewCrossingLattice(g Graph, lines []CopyLine) *CrossingLattice {
	n := len(lines)
	return &CrossingLattice{width: n, height: n, lines: lines, g: g}
}

// Build is the common construction path: copy lines from the vertex order,
// then the lattice over them. The order must be a permutation of the graph's
// vertex IDs (see [NewCopyLines]).
func Build(g Graph, order []int64) (*CrossingLattice, error) {
	lines, err := NewCopyLines(g, order)
	if err != nil {
		return nil, err
	}
	return NewCrossingLattice(g, lines), nil
}

// Width returns the number of slot columns.
func (l *CrossingLattice) Width() int { return l.width }

// Height returns the number of slot rows.
func (l *CrossingLattice) Height() int { return l.height }

// Shape returns (height, width).
func (l *CrossingLattice) Shape() (height, width int) { return l.height, l.width }

// Lines returns the copy lines backing this lattice. The caller must not
// mutate the returned slice.
func (l *CrossingLattice) Lines() []CopyLine { return l.lines }

// At derives the block at slot coordinate (i, j), both 1-based. It scans
// every copy line and classifies its relation to the coordinate along the
// two axes independently:
//
//   - A line whose vertical segment sits in column j contributes its vertex
//     as the bottom neighbor at its start row, the top neighbor at its stop
//     row, and both when passing straight through. A line covering only its
//     own row contributes nothing vertically.
//   - A line whose horizontal segment sits in row i mirrors this for
//     left/right, with the pure-column case contributing nothing.
//
// If a coordinate ends up with both a horizontal-bearing and a
// vertical-bearing vertex, Connected reflects whether those two vertices are
// adjacent in the source graph; otherwise it is [ConnNotApplicable].
//
// Out-of-bounds coordinates fail with an ErrCodeOutOfBounds error. The scan
// is O(number of lines) and side-effect-free.
func (l *CrossingLattice) At(i, j int) (Block, error) {
	if i < 1 || i > l.height || j < 1 || j > l.width {
		return Block{}, errors.New(errors.ErrCodeOutOfBounds,
			"block (%d,%d) outside %d×%d lattice", i, j, l.height, l.width)
	}

	b := Block{Top: NoLine, Bottom: NoLine, Left: NoLine, Right: NoLine, Connected: ConnNotApplicable}

	for _, line := range l.lines {
		if line.VSlot == j {
			switch {
			case line.VStart == line.VStop && line.VStart == i:
				// Degenerate row: no vertical reach.
			case line.VStart == i:
				b.Bottom = line.Vertex
			case line.VStop == i:
				b.Top = line.Vertex
			case line.VStart < i && i < line.VStop:
				b.Top = line.Vertex
				b.Bottom = line.Vertex
			}
		}

		if line.HSlot == i {
			switch {
			case line.VSlot == line.HStop && line.VSlot == j:
				// Degenerate column: no horizontal reach.
			case line.VSlot == j:
				b.Right = line.Vertex
			case line.HStop == j:
				b.Left = line.Vertex
			case line.VSlot < j && j < line.HStop:
				b.Left = line.Vertex
				b.Right = line.Vertex
			}
		}
	}

	h := b.Left
	if h == NoLine {
		h = b.Right
	}
	v := b.Top
	if v == NoLine {
		v = b.Bottom
	}
	if h != NoLine && v != NoLine {
		if l.g.HasEdgeBetween(h, v) {
			b.Connected = ConnConnected
		} else {
			b.Connected = ConnDisconnected
		}
	}

	return b, nil
}

// String renders the whole lattice: three text rows per lattice row, one
// 3×3 block per column, blocks separated by a space. Diagnostic output, not
// a machine format.
func (l *CrossingLattice) String() string {
	var sb strings.Builder
	for i := 1; i <= l.height; i++ {
		for k := 0; k < 3; k++ {
			for j := 1; j <= l.width; j++ {
				if j > 1 {
					sb.WriteByte(' ')
				}
				b, _ := l.At(i, j)
				sb.WriteString(b.RowStrings()[k])
			}
			if i < l.height || k < 2 {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
