package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the rendered styles for one palette.
type Styles struct {
	Name Name

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Label    lipgloss.Style

	// Tile border colors by state.
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardLifted   lipgloss.Style
	CardTarget   lipgloss.Style
	Grip         lipgloss.Style

	Modal  lipgloss.Style
	Footer lipgloss.Style
	Status lipgloss.Style
}

// NewStyles builds the styles for n.
func NewStyles(n Name) Styles {
	p := n.Palette()
	text := lipgloss.NewStyle().Foreground(p.Text)
	return Styles{
		Name:     n,
		Title:    text.Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(p.Muted).Italic(p.Serif),
		Text:     text,
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Accent:   lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(p.Muted).Bold(true),

		Card:         lipgloss.NewStyle().Foreground(p.Border),
		CardSelected: lipgloss.NewStyle().Foreground(p.Secondary),
		CardLifted:   lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		CardTarget:   lipgloss.NewStyle().Foreground(p.Accent),
		Grip:         lipgloss.NewStyle().Foreground(p.Accent),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Foreground(p.Text).
			Padding(1, 2),
		Footer: lipgloss.NewStyle().Foreground(p.Muted),
		Status: lipgloss.NewStyle().Foreground(p.Secondary),
	}
}
