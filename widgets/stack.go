package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Section is a block of fixed height inside a Stack.
type Section struct {
	Widget Widget
	Rows   int
}

// Stack places sections top to bottom, Gap blank lines apart. Each section
// gets exactly its rows; sections past the first that no longer fit are
// dropped along with everything after them.
type Stack struct {
	Sections []Section
	Gap      int
}

func (s Stack) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := make([]string, 0, height)
	for i, sec := range s.Sections {
		rows := max(1, sec.Rows)
		if i == 0 {
			rows = min(rows, height)
		} else {
			if len(lines)+s.Gap+rows > height {
				break
			}
			for range s.Gap {
				lines = append(lines, "")
			}
		}
		block := strings.Split(sec.Widget.Render(width, rows), "\n")
		for len(block) < rows {
			block = append(block, "")
		}
		lines = append(lines, block[:rows]...)
	}
	return strings.Join(lines, "\n")
}

// Columns sets widgets side by side in equal columns, Gap cells apart.
type Columns struct {
	Widgets []Widget
	Gap     int
}

func (c Columns) Render(width, height int) string {
	n := len(c.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	colW := max(1, (width-c.Gap*(n-1))/n)
	cell := lipgloss.NewStyle().Width(colW)
	parts := make([]string, 0, 2*n-1)
	for i, w := range c.Widgets {
		if i > 0 && c.Gap > 0 {
			parts = append(parts, strings.Repeat(" ", c.Gap))
		}
		parts = append(parts, cell.Render(w.Render(colW, height)))
	}
	return Text(lipgloss.JoinHorizontal(lipgloss.Top, parts...)).Render(width, height)
}

// padRight clips s to width and pads it with spaces.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
