package pipeline

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/diskmap/diskmap/pkg/errors"
	"github.com/diskmap/diskmap/pkg/graph"
	"github.com/diskmap/diskmap/pkg/udm"
)

func path3() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < 3; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	return g
}

func TestOptionsSetDefaults(t *testing.T) {
	var opts Options
	opts.SetDefaults()

	assert.Equal(t, DefaultRadius, opts.Radius)
	assert.Equal(t, []string{FormatText}, opts.Formats)

	// Explicit values survive.
	opts = Options{Radius: 2.5, Formats: []string{FormatDOT}}
	opts.SetDefaults()
	assert.Equal(t, 2.5, opts.Radius)
	assert.Equal(t, []string{FormatDOT}, opts.Formats)
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"valid", Options{Radius: 1.5, Formats: []string{FormatText, FormatSVG}}, ""},
		{"negative padding", Options{Padding: -1}, errors.ErrCodeInvalidInput},
		{"negative radius", Options{Radius: -1}, errors.ErrCodeInvalidInput},
		{"unknown format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.code == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestWeightKind(t *testing.T) {
	assert.Equal(t, udm.Weighted, Options{}.weightKind())
	assert.Equal(t, udm.Unweighted, Options{Unweighted: true}.weightKind())
}

func TestRunnerLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	require.NoError(t, graph.WriteFile(path3(), path))

	r := NewRunner(nil, nil)
	g, err := r.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Nodes().Len())
}

func TestRunnerBuildDefaultOrder(t *testing.T) {
	r := NewRunner(nil, nil)
	lattice, err := r.Build(context.Background(), path3(), Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, lattice.Width())
	lines := lattice.Lines()
	require.Len(t, lines, 3)
	for i, line := range lines {
		assert.Equal(t, int64(i), line.Vertex, "default order is ascending IDs")
	}
}

func TestRunnerBuildExplicitOrder(t *testing.T) {
	r := NewRunner(nil, nil)
	lattice, err := r.Build(context.Background(), path3(), Options{Order: []int64{2, 0, 1}})
	require.NoError(t, err)

	lines := lattice.Lines()
	assert.Equal(t, int64(2), lines[0].Vertex)
	assert.Equal(t, int64(0), lines[1].Vertex)
	assert.Equal(t, int64(1), lines[2].Vertex)
}

func TestRunnerBuildBadOrder(t *testing.T) {
	r := NewRunner(nil, nil)
	_, err := r.Build(context.Background(), path3(), Options{Order: []int64{0, 1}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidOrder, errors.GetCode(err))
}

func TestRunnerEmit(t *testing.T) {
	r := NewRunner(nil, nil)
	ctx := context.Background()

	lattice, err := r.Build(ctx, path3(), Options{})
	require.NoError(t, err)

	nodes := r.Emit(ctx, lattice, Options{})
	assert.Equal(t, udm.TraceAll(udm.Weighted, lattice.Lines(), 0), nodes)

	flat := r.Emit(ctx, lattice, Options{Unweighted: true})
	require.Len(t, flat, len(nodes))
	for _, n := range flat {
		assert.Equal(t, 1, n.Weight)
	}
}

func TestExecuteTextJSONDOT(t *testing.T) {
	r := NewRunner(nil, nil)
	result, err := r.Execute(context.Background(), path3(), Options{
		Formats: []string{FormatText, FormatJSON, FormatDOT},
	})
	require.NoError(t, err)

	assert.NotNil(t, result.Lattice)
	assert.NotEmpty(t, result.Nodes)

	text := string(result.Artifacts[FormatText])
	assert.Contains(t, text, "●", "adjacent crossings render filled")

	var nodes []udm.Node
	require.NoError(t, json.Unmarshal(result.Artifacts[FormatJSON], &nodes))
	assert.Equal(t, result.Nodes, nodes)

	dot := string(result.Artifacts[FormatDOT])
	assert.True(t, strings.HasPrefix(dot, "graph G {"))

	for _, f := range []string{FormatText, FormatJSON, FormatDOT} {
		assert.False(t, result.FromCache[f], "cheap formats are never cached")
	}
}

func TestExecuteRejectsBadOptions(t *testing.T) {
	r := NewRunner(nil, nil)

	_, err := r.Execute(context.Background(), path3(), Options{Padding: -2})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))

	_, err = r.Execute(context.Background(), path3(), Options{Formats: []string{"gif"}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidFormat, errors.GetCode(err))
}
