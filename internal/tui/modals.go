package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tahx-org/tahx/internal/theme"
	"github.com/tahx-org/tahx/widgets"
)

// modalWidth is the content width of a popup on the current terminal.
func (a *App) modalWidth() int {
	return max(20, min(72, a.width-10))
}

func (a *App) modalHeight() int {
	return max(6, a.height-8)
}

func (a *App) renderModal() string {
	w, h := a.modalWidth(), a.modalHeight()
	var body string
	switch a.modal {
	case modalPhilosophy:
		body = a.philosophyView(w)
	case modalBeta:
		body = a.betaView(w)
	case modalPrivacy:
		body = a.privacyView(w)
	case modalArch:
		body = a.archView(w)
	case modalRoadmap:
		body = a.roadmapView(w)
	case modalDimension:
		body = a.dimensionView(w)
	case modalHelp:
		body = a.renderHelp()
	case modalOrb:
		body = a.orbView(w)
	}
	return widgets.Text(body).Render(w, h)
}

// philosophyMarkdown assembles the philosophy page from the catalog.
func (a *App) philosophyMarkdown() string {
	stages := a.catalog.Lifecycle(a.settings.Lang)
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n*%s*\n\n", a.t("philTitle"), a.t("philSubtitle"))
	for _, s := range [][2]string{
		{"philConceptTitle", "philConceptDesc"},
		{"philArchTitle", "philArchDesc"},
		{"philDashTitle", "philDashDesc"},
		{"philInteractTitle", "philInteractDesc"},
	} {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", a.t(s[0]), a.t(s[1]))
	}
	fmt.Fprintf(&b, "## %s\n\n`%s`\n\n", a.t("philLifeCycle"), strings.Join(stages, " → "))
	fmt.Fprintf(&b, "## %s\n\n%s\n", a.t("philDeepTitle"), strings.TrimSpace(a.t("philDeepBody")))
	return b.String()
}

func (a *App) philosophyView(w int) string {
	md := a.philosophyMarkdown()
	r, err := a.markdownRenderer(w)
	if err != nil {
		a.log.Debug("markdown renderer unavailable", zap.Error(err))
		return wrap(md, w)
	}
	out, err := r.Render(md)
	if err != nil {
		a.log.Debug("markdown render failed", zap.Error(err))
		return wrap(md, w)
	}
	return strings.Trim(out, "\n")
}

// markdownRenderer caches a glamour renderer per width and palette.
func (a *App) markdownRenderer(w int) (*glamour.TermRenderer, error) {
	if a.md != nil && a.mdWidth == w && a.mdTheme == a.settings.Theme {
		return a.md, nil
	}
	style := "dark"
	if a.settings.Theme.Light() {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(w),
	)
	if err != nil {
		return nil, fmt.Errorf("glamour renderer: %w", err)
	}
	a.md, a.mdWidth, a.mdTheme = r, w, a.settings.Theme
	return r, nil
}

func (a *App) betaView(w int) string {
	discord := lipgloss.NewStyle().Foreground(theme.ColorDiscord).Bold(true)
	return strings.Join([]string{
		a.styles.Accent.Render(a.t("betaModalTitle")),
		a.styles.Muted.Render(a.t("betaModalSubtitle")),
		"",
		wrap(a.t("betaDesc"), w),
		"",
		a.styles.Label.Render(a.t("wechatLabel")) + "  " + a.styles.Muted.Render("▣ "+a.t("wechatScan")),
		"",
		discord.Render(a.t("discordLabel")),
		wrap(a.t("discordDesc"), w),
		discord.Render("[ " + a.t("discordBtn") + " ]"),
	}, "\n")
}

func (a *App) privacyView(w int) string {
	lines := []string{
		a.styles.Accent.Render(a.t("legalTitle")),
		"",
		wrap(a.t("legalIntro"), w),
	}
	for i := 1; i <= 4; i++ {
		lines = append(lines, "",
			a.styles.Title.Render(a.t(fmt.Sprintf("legalSection%dTitle", i))),
			wrap(a.t(fmt.Sprintf("legalSection%dDesc", i)), w))
	}
	return strings.Join(append(lines, "", a.styles.Muted.Render(a.t("legalContact"))), "\n")
}

func (a *App) archView(w int) string {
	lines := []string{a.styles.Accent.Render(a.t("cardArch")), a.styles.Muted.Render(a.t("cardArchDesc"))}
	for i := 1; i <= 3; i++ {
		lines = append(lines, "",
			a.styles.Title.Render(a.t(fmt.Sprintf("archLayer%d", i))),
			wrap(a.t(fmt.Sprintf("archLayer%dDesc", i)), w))
	}
	return strings.Join(lines, "\n")
}

func (a *App) roadmapView(w int) string {
	rm := a.catalog.Roadmap(a.settings.Lang)
	column := func(titleKey string, items []string, bullet string) widgets.Widget {
		return widgets.List{Title: a.t(titleKey), Items: items, Bullet: bullet, TitleStyle: a.styles.Label}
	}
	cols := widgets.Columns{
		Widgets: []widgets.Widget{
			column("roadmapCol1", rm.Todo, "○"),
			column("roadmapCol2", rm.Doing, "◐"),
			column("roadmapCol3", rm.Done, "●"),
		},
		Gap: 2,
	}
	rows := 1 + max(len(rm.Todo), len(rm.Doing), len(rm.Done))
	return a.styles.Accent.Render(a.t("roadmapTitle")) + "\n\n" + cols.Render(w, rows)
}

func (a *App) dimensionView(w int) string {
	p := a.settings.Theme.Palette()
	bars := make([]widgets.Bar, len(radarValues))
	for i, v := range radarValues {
		bars[i] = widgets.Bar{Label: a.t(radarKeys[i]), Value: v}
	}
	radar := widgets.Radar{
		Values:    radarValues,
		Max:       100,
		AxisStyle: lipgloss.NewStyle().Foreground(p.Border),
		LineStyle: lipgloss.NewStyle().Foreground(p.Accent),
		DotStyle:  lipgloss.NewStyle().Foreground(p.Secondary),
	}
	chart := widgets.Bars{
		Data:       bars,
		Max:        100,
		LabelStyle: a.styles.Label,
		BarStyle:   lipgloss.NewStyle().Foreground(p.Accent),
	}
	return a.styles.Accent.Render(a.t("dimTitle")) + "\n\n" +
		radar.Render(min(w, 31), 11) + "\n\n" +
		chart.Render(w, len(bars))
}

func (a *App) orbView(w int) string {
	a.orb.Width = max(10, w-4)
	return strings.Join([]string{
		a.styles.Accent.Render(a.t("orbTitle")),
		a.styles.Muted.Render(a.t("orbHint")),
		"",
		a.orb.View(),
		"",
		a.styles.Muted.Render("↵ " + a.t("orbProcess") + " · esc"),
	}, "\n")
}
