package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Table aligns rows into columns sized to their widest cell.
type Table struct {
	Headers     []string
	Rows        [][]string
	HeaderStyle lipgloss.Style
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 || len(t.Headers) == 0 {
		return ""
	}
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], ansi.StringWidth(row[i]))
		}
	}
	line := func(cells []string) string {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = padRight(cell, widths[i])
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}
	lines := []string{t.HeaderStyle.Render(line(t.Headers))}
	for _, row := range t.Rows {
		lines = append(lines, line(row))
	}
	return Text(strings.Join(lines, "\n")).Render(width, height)
}
