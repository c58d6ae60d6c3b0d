package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tahx-org/tahx/internal/bento"
	"github.com/tahx-org/tahx/widgets"
)

var (
	layoutColumns int
	layoutMoves   []string
)

var errBadMove = errors.New("move must be source:target")

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the grid layout",
	Long: `Packs the default tiles onto a grid and prints each placement.

Moves are applied in order before printing, exactly as a drop of source onto
target would apply them in the deck:

  tahx layout --move entry:quote --move arch:main`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if layoutColumns < 1 {
			return fmt.Errorf("--columns must be at least 1, got %d", layoutColumns)
		}
		reg, err := bento.NewRegistry(bento.DefaultTiles()...)
		if err != nil {
			return err
		}
		moved, err := applyMoves(reg, layoutMoves)
		if err != nil {
			return err
		}
		return printLayout(cmd.OutOrStdout(), reg, layoutColumns, moved)
	},
}

// parseMove splits "source:target".
func parseMove(s string) (source, target string, err error) {
	source, target, ok := strings.Cut(s, ":")
	source, target = strings.TrimSpace(source), strings.TrimSpace(target)
	if !ok || source == "" || target == "" {
		return "", "", fmt.Errorf("%w: %q", errBadMove, s)
	}
	return source, target, nil
}

// applyMoves runs each move against reg and returns the ids that moved.
// Moves naming unknown tiles leave the order untouched.
func applyMoves(reg *bento.Registry, moves []string) (map[string]bool, error) {
	moved := make(map[string]bool)
	for _, m := range moves {
		src, dst, err := parseMove(m)
		if err != nil {
			return nil, err
		}
		if reg.MoveBefore(src, dst) {
			moved[src] = true
		} else if logger != nil {
			logger.Debug("move ignored", zap.String("source", src), zap.String("target", dst))
		}
	}
	return moved, nil
}

// printLayout writes the tile order, a cell map and a placement table.
func printLayout(w io.Writer, reg *bento.Registry, columns int, moved map[string]bool) error {
	placements := bento.Pack(reg.Tiles(), columns)
	head := color.New(color.Bold).SprintFunc()
	hot := color.New(color.FgCyan, color.Bold).SprintFunc()

	ids := reg.IDs()
	for i, id := range ids {
		if moved[id] {
			ids[i] = hot(id)
		}
	}
	if _, err := fmt.Fprintf(w, "%s %s\n\n", head("order:"), strings.Join(ids, " → ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, cellMap(placements, columns)); err != nil {
		return err
	}

	rows := make([][]string, len(placements))
	for i, p := range placements {
		rows[i] = []string{
			strconv.Itoa(i),
			p.ID,
			strconv.Itoa(p.Col),
			strconv.Itoa(p.Row),
			fmt.Sprintf("%dx%d", p.ColSpan, p.RowSpan),
		}
	}
	table := widgets.Table{
		Headers:     []string{"#", "tile", "col", "row", "span"},
		Rows:        rows,
		HeaderStyle: lipgloss.NewStyle().Bold(true),
	}
	_, err := fmt.Fprintln(w, table.Render(80, len(rows)+1))
	return err
}

const mapCell = 10

// cellMap draws the occupied grid cells, one tile id per cell.
func cellMap(placements []bento.Placement, columns int) string {
	rows := bento.Rows(placements)
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, columns)
		for c := range grid[r] {
			grid[r][c] = "."
		}
	}
	for _, p := range placements {
		for r := p.Row; r < p.Row+p.RowSpan && r < rows; r++ {
			for c := p.Col; c < p.Col+p.ColSpan && c < columns; c++ {
				grid[r][c] = p.ID
			}
		}
	}
	var b strings.Builder
	for r, row := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, id := range row {
			if len(id) > mapCell-1 {
				id = id[:mapCell-1]
			}
			if c < len(row)-1 {
				id += strings.Repeat(" ", mapCell-len(id))
			}
			b.WriteString(id)
		}
	}
	return b.String()
}
