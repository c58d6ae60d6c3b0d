package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Blank returns a width x height canvas of spaces.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// RenderPopup centres popup, wrapped in card, over base.
func RenderPopup(base, popup string, card lipgloss.Style, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseCanvas := fitCanvas(base, width, height)
	framed := card.Render(popup)
	lines := splitToLines(framed, 0)
	w, h := maxLineWidth(lines), len(lines)
	if w <= 0 || h <= 0 {
		return baseCanvas
	}
	return OverlayAt(baseCanvas, framed, max(0, (width-w)/2), max(0, (height-h)/2), width, height)
}

// RenderCorner pins overlay to the bottom-right corner of base, inset by
// right columns and bottom rows.
func RenderCorner(base, overlay string, right, bottom, width, height int) string {
	lines := splitToLines(overlay, 0)
	x := max(0, width-maxLineWidth(lines)-right)
	y := max(0, height-len(lines)-bottom)
	return OverlayAt(fitCanvas(base, width, height), overlay, x, y, width, height)
}

// OverlayAt composites overlay onto base with its top-left corner at (x, y).
// Cells of overlay falling outside width x height are clipped.
func OverlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayLines := splitToLines(overlay, 0)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		line = padRightANSI(line, overlayWidth)
		if x < 0 {
			line = dropColumns(line, -x)
		}
		col := max(0, x)
		if col >= width {
			continue
		}
		line = ansi.Truncate(line, width-col, "")

		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, col, "")
		pos := col + ansi.StringWidth(line)
		right := dropColumns(target, pos)
		baseLines[row] = padRightANSI(left+line+right, width)
	}
	return strings.Join(baseLines, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, ansi.StringWidth(line))
	}
	return widest
}

// dropColumns removes the first cols visible columns of s, keeping escapes.
func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
