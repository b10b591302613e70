package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/diskmap/diskmap/pkg/errors"
	"github.com/diskmap/diskmap/pkg/udm"
)

// DefaultRadius is the default unit-disk radius in grid units. It covers
// orthogonal and diagonal neighbors (distance 1 and √2) but not nodes two
// grid steps apart.
const DefaultRadius = 1.5

// Options configures unit-disk diagram generation.
type Options struct {
	// Radius is the unit-disk radius in grid units. Zero means DefaultRadius.
	Radius float64

	// Labels adds the node weight as a label. When false nodes are drawn as
	// unlabeled points.
	Labels bool
}

// ToDOT converts a traced node list to Graphviz DOT for unit-disk
// visualization. Every grid node is pinned to its (col, -row) position so
// the neato engine reproduces the grid geometry; an edge is drawn between
// every pair of nodes within the disk radius.
//
// Adjacency is derived by pairwise distance comparison, O(n²) over the node
// list. Node lists are small (a few nodes per slot), so no spatial index is
// needed.
func ToDOT(nodes []udm.Node, opts Options) string {
	radius := opts.Radius
	if radius == 0 {
		radius = DefaultRadius
	}
	r2 := radius * radius

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Labels {
		buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fixedsize=true, width=0.45];\n")
	} else {
		buf.WriteString("  node [shape=point, width=0.12];\n")
	}
	buf.WriteString("\n")

	for k, n := range nodes {
		label := ""
		if opts.Labels {
			label = fmt.Sprintf(", label=\"%d\"", n.Weight)
		}
		fmt.Fprintf(&buf, "  n%d [pos=\"%d,%d!\"%s];\n", k, n.Col, -n.Row, label)
	}

	buf.WriteString("\n")
	for a := 0; a < len(nodes); a++ {
		for b := a + 1; b < len(nodes); b++ {
			dr := float64(nodes[a].Row - nodes[b].Row)
			dc := float64(nodes[a].Col - nodes[b].Col)
			if dr*dr+dc*dc <= r2 {
				fmt.Fprintf(&buf, "  n%d -- n%d;\n", a, b)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders a DOT graph to SVG using the in-process Graphviz engine.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// PNG renders a DOT graph to PNG using the in-process Graphviz engine.
func PNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return buf.Bytes(), nil
}
