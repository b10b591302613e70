package graph

import (
	"bytes"
	"cmp"
	"encoding/json"
	"io"
	"os"
	"slices"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/diskmap/diskmap/pkg/errors"
)

// Node is the serialized form of one vertex.
type Node struct {
	ID int64 `json:"id"`
}

// Edge is the serialized form of one undirected edge.
type Edge struct {
	Source int64 `json:"source"`
	Target int64 `json:"target"`
}

// Graph is the node-link wire format for a simple undirected graph.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// FromUndirected converts a gonum graph to its wire format.
// Nodes are sorted by ID and edges by normalized endpoint pairs, so the
// result is deterministic for a given graph.
func FromUndirected(g *simple.UndirectedGraph) Graph {
	var out Graph

	for _, n := range gonumgraph.NodesOf(g.Nodes()) {
		out.Nodes = append(out.Nodes, Node{ID: n.ID()})
	}
	slices.SortFunc(out.Nodes, func(a, b Node) int { return cmp.Compare(a.ID, b.ID) })

	for _, e := range gonumgraph.EdgesOf(g.Edges()) {
		u, v := e.From().ID(), e.To().ID()
		if u > v {
			u, v = v, u
		}
		out.Edges = append(out.Edges, Edge{Source: u, Target: v})
	}
	slices.SortFunc(out.Edges, func(a, b Edge) int {
		if c := cmp.Compare(a.Source, b.Source); c != 0 {
			return c
		}
		return cmp.Compare(a.Target, b.Target)
	})

	return out
}

// ToUndirected builds a gonum graph from the wire format.
// Duplicate node IDs, self loops, and edges referencing unknown nodes fail
// with ErrCodeInvalidGraph errors.
func (wire Graph) ToUndirected() (*simple.UndirectedGraph, error) {
	g := simple.NewUndirectedGraph()

	seen := make(map[int64]struct{}, len(wire.Nodes))
	for _, n := range wire.Nodes {
		if _, dup := seen[n.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "duplicate node ID %d", n.ID)
		}
		seen[n.ID] = struct{}{}
		g.AddNode(simple.Node(n.ID))
	}

	for _, e := range wire.Edges {
		if e.Source == e.Target {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "self loop on node %d", e.Source)
		}
		if _, ok := seen[e.Source]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "edge references unknown node %d", e.Source)
		}
		if _, ok := seen[e.Target]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidGraph, "edge references unknown node %d", e.Target)
		}
		g.SetEdge(simple.Edge{F: simple.Node(e.Source), T: simple.Node(e.Target)})
	}

	return g, nil
}

// SortedIDs returns the graph's vertex IDs in ascending order. This is the
// default vertex order when the caller does not supply one.
func SortedIDs(g *simple.UndirectedGraph) []int64 {
	nodes := gonumgraph.NodesOf(g.Nodes())
	ids := make([]int64, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID())
	}
	slices.Sort(ids)
	return ids
}

// Marshal converts a gonum graph to indented JSON bytes.
func Marshal(g *simple.UndirectedGraph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a gonum graph.
func Unmarshal(data []byte) (*simple.UndirectedGraph, error) {
	return readFrom(bytes.NewReader(data))
}

// Write encodes a gonum graph as JSON to w.
func Write(g *simple.UndirectedGraph, w io.Writer) error {
	return writeTo(g, w)
}

// Read decodes a JSON graph from r.
func Read(r io.Reader) (*simple.UndirectedGraph, error) {
	return readFrom(r)
}

// WriteFile writes a gonum graph to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(g *simple.UndirectedGraph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	defer f.Close()
	return writeTo(g, f)
}

// ReadFile reads a JSON file and returns the decoded gonum graph.
func ReadFile(path string) (*simple.UndirectedGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return readFrom(f)
}

func writeTo(g *simple.UndirectedGraph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromUndirected(g)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode graph")
	}
	return nil
}

func readFrom(r io.Reader) (*simple.UndirectedGraph, error) {
	var wire Graph
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "decode graph")
	}
	return wire.ToUndirected()
}
