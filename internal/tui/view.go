package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tahx-org/tahx/internal/bento"
	"github.com/tahx-org/tahx/widgets"
)

func (a *App) View() string {
	w, h := a.width, a.height
	if w <= 0 || h <= 0 {
		return ""
	}
	canvas := widgets.Blank(w, h)
	canvas = widgets.OverlayAt(canvas, a.renderHeader(), 0, 0, w, h)
	canvas = a.renderGrid(canvas)
	canvas = widgets.OverlayAt(canvas, a.renderFooter(), 0, h-footerRows, w, h)
	canvas = widgets.RenderCorner(canvas, a.renderCorner(), 1, footerRows, w, h)
	if a.modal != modalNone {
		canvas = widgets.RenderPopup(canvas, a.renderModal(), a.styles.Modal, w, h)
	}
	return canvas
}

func (a *App) renderHeader() string {
	title := a.styles.Accent.Render("◆ "+a.t("heroTitle")) + "  " + a.styles.Title.Render(a.t("heroSubtitle"))
	badge := a.styles.Muted.Render(string(a.settings.Theme) + " · " + string(a.settings.Lang))
	gap := max(1, a.width-ansi.StringWidth(title)-ansi.StringWidth(badge)-2)
	line1 := " " + title + strings.Repeat(" ", gap) + badge
	line2 := " " + a.styles.Subtitle.Render(a.t("heroTagline"))
	return line1 + "\n" + line2
}

func (a *App) renderFooter() string {
	status := a.styles.Status.Render(" " + a.status)
	var hints string
	if _, dragging := a.board.Session(); dragging {
		hints = a.help.View(dragKeys{a.keys})
	} else {
		hints = a.help.View(a.keys)
	}
	return status + "\n " + hints
}

// renderGrid paints tiles in painter order, so the lifted tile lands on top.
func (a *App) renderGrid(canvas string) string {
	ids := a.board.Registry().IDs()
	session, dragging := a.board.Session()
	for _, s := range a.board.Surfaces() {
		idx := a.board.Registry().Index(s.ID)
		border := a.styles.Card
		switch {
		case s.Lifted:
			border = a.styles.CardLifted
		case dragging && a.target >= 0 && a.target < len(ids) && ids[a.target] == s.ID && s.ID != session.TileID:
			border = a.styles.CardTarget
		case !dragging && idx == a.cursor:
			border = a.styles.CardSelected
		}
		box := widgets.Box{
			Title:        a.tileTitle(s.ID),
			Content:      a.tileBody(s.ID, s.Rect.W-4, s.Rect.H-2),
			Grip:         a.settings.Grips,
			Thick:        s.Lifted,
			BorderStyle:  border,
			TitleStyle:   a.styles.Title,
			ContentStyle: a.styles.Text,
			GripStyle:    a.styles.Grip,
		}
		canvas = widgets.OverlayAt(canvas, box.Render(s.Rect.W, s.Rect.H), s.Rect.X, s.Rect.Y, a.width, a.height)
	}
	return canvas
}

// renderCorner stacks the assistant panel, when open, above the orb.
func (a *App) renderCorner() string {
	orb := a.styles.Accent.Render("( ◉ )")
	if a.elapsed/a.settings.Tick%2 == 1 {
		orb = a.styles.Accent.Render("(( ◉ ))")
	}
	if a.chat == chatClosed {
		return orb
	}
	panel := a.renderChat()
	return panel + "\n" + lipgloss.PlaceHorizontal(lipgloss.Width(panel), lipgloss.Right, orb)
}

func (a *App) renderChat() string {
	width := min(36, max(20, a.width/3))
	lines := []string{
		a.styles.Accent.Render(a.t("aiTitle")),
		"",
		wrap(a.t("aiGreeting"), width-4),
		"",
	}
	switch a.chat {
	case chatGreeting:
		lines = append(lines, a.styles.Title.Render("[ "+a.t("aiBtn")+" ]")+" "+a.styles.Muted.Render("↵"))
	case chatTyping:
		lines = append(lines, a.styles.Muted.Render(a.t("aiYes")), a.spinner.View()+" "+a.t("aiTyping"))
	}
	return a.styles.Modal.Padding(0, 1).Width(width).Render(strings.Join(lines, "\n"))
}

func (a *App) renderHelp() string {
	h := help.New()
	h.Styles = a.help.Styles
	h.ShowAll = true
	return strings.Join([]string{
		a.styles.Accent.Render(a.t("helpTitle")),
		"",
		a.t("helpDrag"),
		a.t("helpKeys"),
		a.t("helpToggles"),
		"",
		h.View(a.keys),
	}, "\n")
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

// Surfaces exposes the painted tiles, for tests and the static layout.
func (a *App) Surfaces() bento.Surfaces { return a.board.Surfaces() }
