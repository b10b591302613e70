package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diskmap/diskmap/pkg/pipeline"
)

// mapOpts holds the command-line flags for the map command.
type mapOpts struct {
	order      string // explicit vertex order, comma-separated
	output     string // output file path (default: stdout)
	padding    int    // grid padding
	unweighted bool   // pin all node weights to 1
}

// mapCommand creates the map command: trace a graph's copy lines into the
// weighted grid node list consumed by embedding layers.
func (c *CLI) mapCommand() *cobra.Command {
	opts := mapOpts{
		padding:    c.Config.Padding,
		unweighted: c.Config.Unweighted,
	}

	cmd := &cobra.Command{
		Use:   "map [file]",
		Short: "Map a graph to weighted grid nodes",
		Long: `Map reads a node-link JSON graph, builds one T-shaped copy line per
vertex, and emits the weighted grid node list as JSON. The vertex order
defaults to ascending IDs; pass --order to supply one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMap(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.order, "order", "", "vertex order, comma-separated IDs (default: ascending)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&opts.padding, "padding", opts.padding, "grid padding around the mapped region")
	cmd.Flags().BoolVar(&opts.unweighted, "unweighted", opts.unweighted, "emit unit weights instead of structural weights")

	return cmd
}

func (c *CLI) runMap(cmd *cobra.Command, path string, opts mapOpts) error {
	order, err := parseOrder(opts.order)
	if err != nil {
		return err
	}

	runner := c.newRunner(true) // JSON output never hits the artifact cache
	g, err := runner.Load(path)
	if err != nil {
		return err
	}

	p := newProgress(c.Logger)
	result, err := runner.Execute(cmd.Context(), g, pipeline.Options{
		Order:      order,
		Padding:    opts.padding,
		Unweighted: opts.unweighted,
		Formats:    []string{pipeline.FormatJSON},
	})
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Mapped %d vertices to %d grid nodes", g.Nodes().Len(), len(result.Nodes)))

	data := result.Artifacts[pipeline.FormatJSON]
	if opts.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return err
	}
	printSuccess("Wrote %d grid nodes", len(result.Nodes))
	printFile(opts.output)
	return nil
}
