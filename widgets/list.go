package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// List is a titled bullet list.
type List struct {
	Title      string
	Items      []string
	Bullet     string
	TitleStyle lipgloss.Style
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	bullet := l.Bullet
	if bullet == "" {
		bullet = "•"
	}
	rows := make([]string, 0, len(l.Items)+1)
	if l.Title != "" {
		rows = append(rows, l.TitleStyle.Render(l.Title))
	}
	for _, item := range l.Items {
		rows = append(rows, bullet+" "+item)
	}
	return Text(strings.Join(rows, "\n")).Render(width, height)
}
