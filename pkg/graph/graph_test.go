package graph

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/diskmap/diskmap/pkg/errors"
)

func newPath3() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < 3; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	return g
}

func TestFromUndirectedDeterministic(t *testing.T) {
	g := simple.NewUndirectedGraph()
	for _, id := range []int64{5, 1, 3} {
		g.AddNode(simple.Node(id))
	}
	g.SetEdge(simple.Edge{F: simple.Node(5), T: simple.Node(1)})
	g.SetEdge(simple.Edge{F: simple.Node(3), T: simple.Node(5)})

	wire := FromUndirected(g)

	assert.Equal(t, []Node{{ID: 1}, {ID: 3}, {ID: 5}}, wire.Nodes)
	assert.Equal(t, []Edge{{Source: 1, Target: 5}, {Source: 3, Target: 5}}, wire.Edges)
}

func TestRoundTrip(t *testing.T) {
	g := newPath3()

	data, err := Marshal(g)
	require.NoError(t, err)

	back, err := Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, 3, back.Nodes().Len())
	assert.True(t, back.HasEdgeBetween(0, 1))
	assert.True(t, back.HasEdgeBetween(1, 2))
	assert.False(t, back.HasEdgeBetween(0, 2))
}

func TestToUndirectedValidation(t *testing.T) {
	tests := []struct {
		name string
		wire Graph
	}{
		{
			"duplicate node",
			Graph{Nodes: []Node{{ID: 1}, {ID: 1}}},
		},
		{
			"self loop",
			Graph{Nodes: []Node{{ID: 1}}, Edges: []Edge{{Source: 1, Target: 1}}},
		},
		{
			"unknown source",
			Graph{Nodes: []Node{{ID: 1}}, Edges: []Edge{{Source: 9, Target: 1}}},
		},
		{
			"unknown target",
			Graph{Nodes: []Node{{ID: 1}}, Edges: []Edge{{Source: 1, Target: 9}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.wire.ToUndirected()
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidGraph, errors.GetCode(err))
		})
	}
}

func TestSortedIDs(t *testing.T) {
	g := simple.NewUndirectedGraph()
	for _, id := range []int64{7, 0, 3, 5} {
		g.AddNode(simple.Node(id))
	}

	assert.Equal(t, []int64{0, 3, 5, 7}, SortedIDs(g))
}

func TestReadInvalidJSON(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("{not json")))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidGraph, errors.GetCode(err))
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	require.NoError(t, WriteFile(newPath3(), path))

	back, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, back.Nodes().Len())
	assert.True(t, back.HasEdgeBetween(0, 1))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileNotFound, errors.GetCode(err))
}
