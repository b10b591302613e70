package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diskmap/diskmap/pkg/errors"
	"github.com/diskmap/diskmap/pkg/pipeline"
	"github.com/diskmap/diskmap/pkg/udm"
)

// latticeCommand creates the lattice command: print the crossing lattice or
// inspect one block.
func (c *CLI) latticeCommand() *cobra.Command {
	var orderSpec, blockSpec string

	cmd := &cobra.Command{
		Use:   "lattice [file]",
		Short: "Print a graph's crossing lattice",
		Long: `Lattice builds the crossing lattice for a node-link JSON graph and
prints it as text: three rows per lattice row, one 3×3 block per column.
Filled centers (●) mark crossings whose vertices are adjacent in the
source graph, hollow ones (○) crossings that are not.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLattice(cmd, args[0], orderSpec, blockSpec)
		},
	}

	cmd.Flags().StringVar(&orderSpec, "order", "", "vertex order, comma-separated IDs (default: ascending)")
	cmd.Flags().StringVar(&blockSpec, "block", "", "inspect a single block, as \"row,col\"")

	return cmd
}

func (c *CLI) runLattice(cmd *cobra.Command, path, orderSpec, blockSpec string) error {
	order, err := parseOrder(orderSpec)
	if err != nil {
		return err
	}

	runner := c.newRunner(true)
	g, err := runner.Load(path)
	if err != nil {
		return err
	}

	lattice, err := runner.Build(cmd.Context(), g, pipeline.Options{Order: order})
	if err != nil {
		return err
	}

	if blockSpec == "" {
		fmt.Println(lattice.String())
		return nil
	}

	i, j, err := parseBlockSpec(blockSpec)
	if err != nil {
		return err
	}
	block, err := lattice.At(i, j)
	if err != nil {
		return err
	}

	printInfo("Block (%d,%d)", i, j)
	for _, row := range block.RowStrings() {
		fmt.Println("  " + StyleValue.Render(row))
	}
	printDetail("top: %s  bottom: %s  left: %s  right: %s",
		vertexName(block.Top), vertexName(block.Bottom), vertexName(block.Left), vertexName(block.Right))
	fmt.Println("  " + StyleDim.Render("crossing: ") + styledConnectivity(block.Connected))
	return nil
}

// styledConnectivity renders a connectivity state in its status color.
func styledConnectivity(conn udm.Connectivity) string {
	switch conn {
	case udm.ConnConnected:
		return StyleSuccess.Render(conn.String())
	case udm.ConnDisconnected:
		return StyleWarning.Render(conn.String())
	default:
		return StyleDim.Render(conn.String())
	}
}

// parseBlockSpec parses a "row,col" flag value into 1-based coordinates.
func parseBlockSpec(spec string) (i, j int, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "block must be \"row,col\", got %q", spec)
	}
	i, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse block row %q", parts[0])
	}
	j, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse block column %q", parts[1])
	}
	return i, j, nil
}

// vertexName renders a block side for detail output.
func vertexName(id int64) string {
	if id == udm.NoLine {
		return "-"
	}
	return strconv.FormatInt(id, 10)
}
