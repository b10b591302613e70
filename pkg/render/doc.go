// Package render draws the mapped grid as a unit-disk graph.
//
// # Overview
//
// The geometry emitter produces weighted grid nodes; this package derives
// the unit-disk adjacency over them (two nodes are neighbors when their
// Euclidean distance is at most the disk radius) and produces Graphviz DOT
// with every node pinned to its grid position. The DOT source can be:
//
//   - Rendered in-process to SVG or PNG via [github.com/goccy/go-graphviz]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// # Usage
//
//	dot := render.ToDOT(nodes, render.Options{Radius: render.DefaultRadius})
//	svg, err := render.SVG(ctx, dot)
//	png, err := render.PNG(ctx, dot)
//
// The neato engine is used so that the pinned pos attributes are honored and
// the drawing reproduces the grid geometry exactly.
package render
