package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diskmap/diskmap/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	order      string
	output     string
	format     string
	padding    int
	unweighted bool
	radius     float64
	labels     bool
	noCache    bool
}

// renderCommand creates the render command: produce DOT, SVG, or PNG
// drawings of the mapped grid.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		padding:    c.Config.Padding,
		unweighted: c.Config.Unweighted,
		radius:     c.Config.Radius,
		noCache:    c.Config.NoCache,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph's unit-disk layout",
		Long: `Render maps a node-link JSON graph onto the grid and draws the result.
Grid nodes are pinned to their coordinates and edges connect every pair of
nodes within the unit-disk radius. SVG and PNG renders are cached keyed by
the graph content and the render options.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.order, "order", "", "vertex order, comma-separated IDs (default: ascending)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or base name (default: input name)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output formats, comma-separated: dot, svg, png (default: "+c.Config.Format+")")
	cmd.Flags().IntVar(&opts.padding, "padding", opts.padding, "grid padding around the mapped region")
	cmd.Flags().BoolVar(&opts.unweighted, "unweighted", opts.unweighted, "emit unit weights instead of structural weights")
	cmd.Flags().Float64Var(&opts.radius, "radius", opts.radius, "unit-disk radius for drawing edges")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "label nodes with their weights")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", opts.noCache, "bypass the artifact cache")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	order, err := parseOrder(opts.order)
	if err != nil {
		return err
	}
	formats := parseFormats(opts.format, c.Config.Format)

	runner := c.newRunner(opts.noCache)
	g, err := runner.Load(path)
	if err != nil {
		return err
	}

	ctx := withLogger(cmd.Context(), c.Logger)
	p := newProgress(loggerFromContext(ctx))

	spinner := newSpinnerWithContext(ctx, "Rendering layout...")
	spinner.Start()
	result, err := runner.Execute(ctx, g, pipeline.Options{
		Order:      order,
		Padding:    opts.padding,
		Unweighted: opts.unweighted,
		Radius:     opts.radius,
		Labels:     opts.labels,
		Formats:    formats,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	p.done(fmt.Sprintf("Rendered %d grid nodes", len(result.Nodes)))
	for _, format := range formats {
		out := outputPath(opts.output, path, format, len(formats) > 1)
		if err := os.WriteFile(out, result.Artifacts[format], 0644); err != nil {
			return err
		}
		printFile(out)
		if result.FromCache[format] {
			printDetail("%s from cache", format)
		}
	}
	return nil
}

// outputPath derives the output file name for a format. An explicit output
// is used verbatim for a single format and as a base name for several; the
// default base is the input name with its extension stripped.
func outputPath(output, input, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}
	return fmt.Sprintf("%s.%s", base, format)
}
