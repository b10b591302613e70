// Package pipeline provides the core mapping pipeline for diskmap.
//
// This package implements the complete load → build → emit → render flow so
// CLI and library consumers share one code path:
//
//  1. Load: decode a node-link JSON graph
//  2. Build: copy lines + crossing lattice from the vertex order
//  3. Emit: trace every copy line into weighted grid nodes
//  4. Render: produce output artifacts (text, JSON, DOT, SVG, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{Formats: []string{pipeline.FormatSVG}}
//	opts.SetDefaults()
//	result, err := runner.Execute(ctx, g, opts)
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"time"

	"github.com/diskmap/diskmap/pkg/errors"
	"github.com/diskmap/diskmap/pkg/render"
	"github.com/diskmap/diskmap/pkg/udm"
)

// Default values shared by CLI and library consumers.
const (
	// DefaultPadding is the default grid padding around the mapped region.
	DefaultPadding = 0

	// DefaultRadius is the default unit-disk radius for rendering.
	DefaultRadius = render.DefaultRadius

	// DefaultArtifactTTL is how long rendered artifacts stay cached.
	DefaultArtifactTTL = 7 * 24 * time.Hour
)

// Format constants for output formats.
const (
	FormatText = "text" // textual crossing-lattice dump
	FormatJSON = "json" // traced grid nodes as JSON
	FormatDOT  = "dot"  // unit-disk graph as Graphviz DOT
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// Options configures a pipeline run.
type Options struct {
	// Order is the vertex order for the copy-line construction. Nil means
	// ascending vertex IDs. The order is caller input; the pipeline never
	// invents a heuristic.
	Order []int64

	// Padding is the grid padding passed to the geometry emitter.
	Padding int

	// Unweighted pins every traced node's weight to 1.
	Unweighted bool

	// Radius is the unit-disk radius for DOT/SVG/PNG artifacts.
	Radius float64

	// Labels adds weight labels to rendered nodes.
	Labels bool

	// Formats selects which artifacts Render produces.
	Formats []string
}

// SetDefaults fills in zero values with pipeline defaults.
func (o *Options) SetDefaults() {
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
}

// Validate checks the options for consistency.
func (o *Options) Validate() error {
	if err := errors.ValidatePadding(o.Padding); err != nil {
		return err
	}
	if o.Radius != 0 {
		if err := errors.ValidateRadius(o.Radius); err != nil {
			return err
		}
	}
	for _, f := range o.Formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", f)
		}
	}
	return nil
}

// weightKind maps the option flag to the emitter's kind.
func (o Options) weightKind() udm.WeightKind {
	if o.Unweighted {
		return udm.Unweighted
	}
	return udm.Weighted
}

// Result holds the outputs of a pipeline run.
type Result struct {
	// Lattice is the queryable crossing lattice.
	Lattice *udm.CrossingLattice

	// Nodes is the concatenated traced node list, in per-line emission order.
	Nodes []udm.Node

	// Artifacts maps format name to rendered bytes.
	Artifacts map[string][]byte

	// FromCache marks artifacts that were served from the cache.
	FromCache map[string]bool
}
