package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget renders itself into a width x height box.
type Widget interface {
	Render(width, height int) string
}

// Text is pre-rendered content clipped to the box.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(string(t), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}
