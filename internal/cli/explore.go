package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diskmap/diskmap/pkg/pipeline"
	"github.com/diskmap/diskmap/pkg/udm"
)

// exploreCommand creates the explore command: an interactive lattice browser.
func (c *CLI) exploreCommand() *cobra.Command {
	var orderSpec string

	cmd := &cobra.Command{
		Use:   "explore [file]",
		Short: "Interactively browse a crossing lattice",
		Long: `Explore opens an interactive view of the crossing lattice. Move the
cursor with the arrow keys (or hjkl) to inspect each block: which copy
lines cross there and whether the crossing encodes a graph edge.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := parseOrder(orderSpec)
			if err != nil {
				return err
			}
			runner := c.newRunner(true)
			g, err := runner.Load(args[0])
			if err != nil {
				return err
			}
			lattice, err := runner.Build(cmd.Context(), g, pipeline.Options{Order: order})
			if err != nil {
				return err
			}
			p := tea.NewProgram(newExploreModel(lattice))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&orderSpec, "order", "", "vertex order, comma-separated IDs (default: ascending)")

	return cmd
}

// exploreModel is the bubbletea model for the lattice browser.
type exploreModel struct {
	lattice *udm.CrossingLattice
	row     int // cursor, 1-based
	col     int
}

func newExploreModel(lattice *udm.CrossingLattice) exploreModel {
	return exploreModel{lattice: lattice, row: 1, col: 1}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.row > 1 {
			m.row--
		}
	case "down", "j":
		if m.row < m.lattice.Height() {
			m.row++
		}
	case "left", "h":
		if m.col > 1 {
			m.col--
		}
	case "right", "l":
		if m.col < m.lattice.Width() {
			m.col++
		}
	}
	return m, nil
}

var (
	styleCursorBlock = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	stylePanel       = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("crossing lattice") + "\n\n")
	b.WriteString(m.gridView())
	b.WriteString("\n")
	b.WriteString(stylePanel.Render(m.blockView()))
	b.WriteString("\n" + StyleDim.Render("arrows/hjkl move · q quits") + "\n")
	return b.String()
}

// gridView renders one character per block: the crossing symbol, with the
// cursor block highlighted.
func (m exploreModel) gridView() string {
	var b strings.Builder
	for i := 1; i <= m.lattice.Height(); i++ {
		for j := 1; j <= m.lattice.Width(); j++ {
			block, err := m.lattice.At(i, j)
			if err != nil {
				continue
			}
			sym := crossingSymbol(block.Connected)
			if i == m.row && j == m.col {
				b.WriteString(styleCursorBlock.Render(sym))
			} else {
				b.WriteString(StyleDim.Render(sym))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// blockView renders the detail panel for the cursor block.
func (m exploreModel) blockView() string {
	block, err := m.lattice.At(m.row, m.col)
	if err != nil {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(StyleHighlight.Render(fmt.Sprintf("block (%d,%d)", m.row, m.col)) + "\n\n")
	for _, row := range block.RowStrings() {
		b.WriteString(StyleValue.Render(row) + "\n")
	}
	fmt.Fprintf(&b, "\ntop %s  bottom %s  left %s  right %s\n",
		vertexName(block.Top), vertexName(block.Bottom), vertexName(block.Left), vertexName(block.Right))
	b.WriteString("crossing: " + styledConnectivity(block.Connected))
	return b.String()
}

func crossingSymbol(c udm.Connectivity) string {
	switch c {
	case udm.ConnConnected:
		return "●"
	case udm.ConnDisconnected:
		return "○"
	default:
		return "·"
	}
}
