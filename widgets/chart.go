package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Bar is one labelled value in a Bars chart.
type Bar struct {
	Label string
	Value float64
}

// Bars draws horizontal bars scaled against Max (or the largest value).
type Bars struct {
	Data       []Bar
	Max        float64
	LabelStyle lipgloss.Style
	BarStyle   lipgloss.Style
}

func (c Bars) Render(width, height int) string {
	if width <= 0 || height <= 0 || len(c.Data) == 0 {
		return ""
	}
	top := c.Max
	labelW := 0
	for _, b := range c.Data {
		top = max(top, b.Value)
		labelW = max(labelW, ansi.StringWidth(b.Label))
	}
	if top <= 0 {
		top = 1
	}
	labelW = min(labelW, width/3)
	track := max(1, width-labelW-6)

	lines := make([]string, 0, min(height, len(c.Data)))
	for _, b := range c.Data {
		if len(lines) >= height {
			break
		}
		n := int(b.Value / top * float64(track))
		n = min(max(n, 0), track)
		label := padRight(ansi.Truncate(b.Label, labelW, ""), labelW)
		bar := c.BarStyle.Render(strings.Repeat("█", n)) + strings.Repeat("░", track-n)
		lines = append(lines, fmt.Sprintf("%s %s %3.0f", c.LabelStyle.Render(label), bar, b.Value))
	}
	return strings.Join(lines, "\n")
}
