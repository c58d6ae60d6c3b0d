package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// GripGlyph marks the drag handle in the bottom-right corner of a Box.
const GripGlyph = "⠿⠿"

// Box is tile chrome: a titled border drawn at exactly the requested size.
type Box struct {
	Title   string
	Content string
	Grip    bool
	Thick   bool

	BorderStyle  lipgloss.Style
	TitleStyle   lipgloss.Style
	ContentStyle lipgloss.Style
	GripStyle    lipgloss.Style
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	width = max(width, 4)
	height = max(height, 3)

	border := lipgloss.RoundedBorder()
	if b.Thick {
		border = lipgloss.ThickBorder()
	}
	bs := b.BorderStyle
	inner := width - 2
	contentW := inner - 2

	titleText := ""
	if t := strings.TrimSpace(b.Title); t != "" && inner > 3 {
		titleText = " " + ansi.Truncate(t, inner-3, "…") + " "
	}
	dashes := max(0, inner-ansi.StringWidth(titleText)-1)
	top := bs.Render(border.TopLeft+border.Top) +
		b.TitleStyle.Render(titleText) +
		bs.Render(strings.Repeat(border.Top, dashes)+border.TopRight)

	rows := make([]string, 0, height)
	rows = append(rows, top)
	lines := strings.Split(b.Content, "\n")
	side := bs.Render(border.Left)
	sideR := bs.Render(border.Right)
	for i := 0; i < height-2; i++ {
		if contentW <= 0 {
			rows = append(rows, side+strings.Repeat(" ", inner)+sideR)
			continue
		}
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], contentW, "")
		}
		rows = append(rows, side+" "+padRight(b.ContentStyle.Render(line), contentW)+" "+sideR)
	}

	bottom := bs.Render(border.BottomLeft + strings.Repeat(border.Bottom, inner) + border.BottomRight)
	if b.Grip && inner >= ansi.StringWidth(GripGlyph) {
		gw := ansi.StringWidth(GripGlyph)
		bottom = bs.Render(border.BottomLeft+strings.Repeat(border.Bottom, inner-gw)) +
			b.GripStyle.Render(GripGlyph) +
			bs.Render(border.BottomRight)
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}
