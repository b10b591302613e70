package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/diskmap/diskmap/pkg/cache"
	"github.com/diskmap/diskmap/pkg/errors"
	"github.com/diskmap/diskmap/pkg/graph"
	"github.com/diskmap/diskmap/pkg/observability"
	"github.com/diskmap/diskmap/pkg/render"
	"github.com/diskmap/diskmap/pkg/udm"
)

// Runner executes pipeline stages with shared cache and logger.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil cache disables artifact
// caching; a nil logger falls back to the default logger.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{cache: c, logger: logger}
}

// Load reads a node-link JSON graph from disk.
func (r *Runner) Load(path string) (*simple.UndirectedGraph, error) {
	g, err := graph.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("loaded graph", "path", path, "vertices", g.Nodes().Len())
	return g, nil
}

// Build constructs the crossing lattice from the graph and the vertex order
// in opts (ascending IDs when nil).
func (r *Runner) Build(ctx context.Context, g *simple.UndirectedGraph, opts Options) (*udm.CrossingLattice, error) {
	order := opts.Order
	if order == nil {
		order = graph.SortedIDs(g)
	}

	n := g.Nodes().Len()
	observability.Pipeline().OnBuildStart(ctx, n)
	start := time.Now()

	lattice, err := udm.Build(g, order)

	observability.Pipeline().OnBuildComplete(ctx, n, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("built crossing lattice", "vertices", n, "elapsed", time.Since(start))
	return lattice, nil
}

// Emit traces every copy line of the lattice into grid nodes.
func (r *Runner) Emit(ctx context.Context, lattice *udm.CrossingLattice, opts Options) []udm.Node {
	lines := lattice.Lines()
	observability.Pipeline().OnEmitStart(ctx, len(lines))
	start := time.Now()

	nodes := udm.TraceAll(opts.weightKind(), lines, opts.Padding)

	observability.Pipeline().OnEmitComplete(ctx, len(nodes), time.Since(start), nil)
	r.logger.Debug("traced copy lines", "lines", len(lines), "nodes", len(nodes))
	return nodes
}

// Render produces the requested artifacts. SVG and PNG renders go through
// the artifact cache keyed by the graph hash and every option affecting the
// output; text, JSON, and DOT are cheap and always recomputed.
func (r *Runner) Render(ctx context.Context, g *simple.UndirectedGraph, lattice *udm.CrossingLattice, nodes []udm.Node, opts Options) (map[string][]byte, map[string]bool, error) {
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	fromCache := make(map[string]bool)

	var graphHash string
	if data, err := graph.Marshal(g); err == nil {
		graphHash = cache.Hash(data)
	}

	var renderErr error
	for _, format := range opts.Formats {
		data, cached, err := r.renderOne(ctx, format, graphHash, lattice, nodes, opts)
		if err != nil {
			renderErr = err
			break
		}
		artifacts[format] = data
		fromCache[format] = cached
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), renderErr)
	if renderErr != nil {
		return nil, nil, renderErr
	}
	return artifacts, fromCache, nil
}

func (r *Runner) renderOne(ctx context.Context, format, graphHash string, lattice *udm.CrossingLattice, nodes []udm.Node, opts Options) (data []byte, cached bool, err error) {
	dotOpts := render.Options{Radius: opts.Radius, Labels: opts.Labels}

	switch format {
	case FormatText:
		return []byte(lattice.String() + "\n"), false, nil

	case FormatJSON:
		data, err = json.MarshalIndent(nodes, "", "  ")
		if err != nil {
			return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "encode nodes")
		}
		return append(data, '\n'), false, nil

	case FormatDOT:
		return []byte(render.ToDOT(nodes, dotOpts)), false, nil

	case FormatSVG, FormatPNG:
		key := cache.ArtifactKey(graphHash, format, opts.Padding, opts.Unweighted, opts.Radius)
		if graphHash != "" {
			if hit, ok, _ := r.cache.Get(ctx, key); ok {
				observability.Cache().OnCacheHit(ctx, "artifact")
				return hit, true, nil
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}

		dot := render.ToDOT(nodes, dotOpts)
		if format == FormatSVG {
			data, err = render.SVG(ctx, dot)
		} else {
			data, err = render.PNG(ctx, dot)
		}
		if err != nil {
			return nil, false, err
		}

		if graphHash != "" {
			if err := r.cache.Set(ctx, key, data, DefaultArtifactTTL); err == nil {
				observability.Cache().OnCacheSet(ctx, "artifact", len(data))
			}
		}
		return data, false, nil

	default:
		return nil, false, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
}

// Execute runs the complete pipeline: build, emit, render.
func (r *Runner) Execute(ctx context.Context, g *simple.UndirectedGraph, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	lattice, err := r.Build(ctx, g, opts)
	if err != nil {
		return nil, err
	}

	nodes := r.Emit(ctx, lattice, opts)

	artifacts, fromCache, err := r.Render(ctx, g, lattice, nodes, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		Lattice:   lattice,
		Nodes:     nodes,
		Artifacts: artifacts,
		FromCache: fromCache,
	}, nil
}
