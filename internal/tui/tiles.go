package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tahx-org/tahx/internal/theme"
	"github.com/tahx-org/tahx/widgets"
)

const fuelLevel = 0.65

// radarValues are the Life Radar mock readings, in dimension order.
var radarValues = []float64{80, 60, 90, 40, 70}

var radarKeys = []string{"dimBody", "dimMind", "dimSoul", "dimWealth", "dimSystem"}

var tileTitles = map[string]string{
	"main":       "cardMain",
	"entry":      "cardEntry",
	"body":       "cardBody",
	"quote":      "cardQuote",
	"arch":       "cardArch",
	"roadmap":    "cardMap",
	"philosophy": "cardPhil",
	"legal":      "cardLegal",
}

var tileBlurbs = map[string]string{
	"arch":       "cardArchDesc",
	"roadmap":    "cardMapDesc",
	"philosophy": "cardPhilDesc",
	"legal":      "cardLegalDesc",
}

type ticket struct {
	kind, title, date string
}

var memoryLane = []ticket{
	{"Movie", "Oppenheimer", "Jul 21"},
	{"Music", "Coldplay", "Jan 24"},
	{"Art", "MOMA", "Oct 12"},
}

func (a *App) tileTitle(id string) string {
	if key, ok := tileTitles[id]; ok {
		return a.t(key)
	}
	return id
}

// tileBody renders the inside of a tile for a w x h content area.
func (a *App) tileBody(id string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	switch id {
	case "main":
		return a.mainBody(w, h)
	case "entry":
		return a.entryBody(w, h)
	case "body":
		return a.radarBody(w, h)
	case "quote":
		return a.quoteBody(w, h)
	}
	if key, ok := tileBlurbs[id]; ok {
		return a.styles.Muted.Render(wrap(a.t(key), w))
	}
	return ""
}

func (a *App) mainBody(w, h int) string {
	a.fuel.Width = max(4, w-6)
	fuel := a.styles.Label.Render(a.t("mainFuel")) + "\n" +
		a.fuel.ViewAs(fuelLevel) + " " + a.styles.Accent.Render(fmt.Sprintf("%d%%", int(fuelLevel*100))) + "\n" +
		a.styles.Muted.Render(a.t("mainFuelCaption"))
	budget := a.styles.Label.Render(a.t("mainBudget")) + "\n" +
		a.t("mainBudgetSpent") + " · " + a.t("mainBudgetLimit") + "\n" +
		a.styles.Muted.Render(a.t("mainBudgetHorizon"))
	pain := a.styles.Label.Render(a.t("mainPain")) + "\n" +
		ticker(a.t("mainPainTicker"), w, int(a.elapsed/a.settings.Tick))
	habit := a.styles.Label.Render(a.t("mainHabit")) + " " + a.styles.Muted.Render(a.t("mainHabitItem")) + "\n" +
		a.heatmapView(w)
	memory := a.styles.Label.Render(a.t("mainMemory")) + "\n" + memoryView(w)

	perRow := heatPerRow(w)
	return widgets.Stack{
		Sections: []widgets.Section{
			{Widget: widgets.Text(fuel), Rows: 3},
			{Widget: widgets.Text(budget), Rows: 3},
			{Widget: widgets.Text(pain), Rows: 2},
			{Widget: widgets.Text(habit), Rows: 1 + (heatCells+perRow-1)/perRow},
			{Widget: widgets.Text(memory), Rows: 2},
		},
		Gap: 1,
	}.Render(w, h)
}

func (a *App) heatmapView(w int) string {
	perRow := heatPerRow(w)
	on := lipgloss.NewStyle().Foreground(theme.ColorHabitOn)
	half := lipgloss.NewStyle().Foreground(theme.ColorHabitHalf)
	var rows []string
	var b strings.Builder
	for i, v := range a.heatmap {
		if i > 0 && i%perRow == 0 {
			rows = append(rows, b.String())
			b.Reset()
		}
		switch v {
		case 2:
			b.WriteString(on.Render("●") + " ")
		case 1:
			b.WriteString(half.Render("●") + " ")
		default:
			b.WriteString(a.styles.Muted.Render("·") + " ")
		}
	}
	rows = append(rows, b.String())
	return strings.Join(rows, "\n")
}

func heatPerRow(w int) int {
	return max(1, min(14, w/2))
}

func memoryView(w int) string {
	parts := make([]string, len(memoryLane))
	for i, t := range memoryLane {
		parts[i] = fmt.Sprintf("[%s] %s %s", t.kind, t.title, t.date)
	}
	return ansi.Truncate(strings.Join(parts, "  "), w, "…")
}

// ticker scrolls s leftwards by step cells inside width.
func ticker(s string, width, step int) string {
	if width <= 0 {
		return ""
	}
	loop := []rune(s + "   ·   ")
	n := len(loop)
	offset := ((step % n) + n) % n
	rotated := string(loop[offset:]) + string(loop[:offset])
	for ansi.StringWidth(rotated) < width {
		rotated += string(loop)
	}
	return ansi.Truncate(rotated, width, "")
}

func (a *App) entryBody(w, h int) string {
	examples := a.catalog.AIExamples(a.settings.Lang)
	line := ""
	if len(examples) > 0 {
		line = examples[rotation(a.elapsed, entryEvery, len(examples))]
	}
	stages := a.catalog.Lifecycle(a.settings.Lang)
	return strings.Join([]string{
		a.styles.Muted.Render(wrap(a.t("cardEntryDesc"), w)),
		"",
		a.styles.Accent.Render("›") + " " + wrap(line, w-2),
		"",
		a.styles.Muted.Render(wrap(strings.Join(stages, " → "), w)),
	}, "\n")
}

func (a *App) radarBody(w, h int) string {
	p := a.settings.Theme.Palette()
	radar := widgets.Radar{
		Values:    radarValues,
		Max:       100,
		AxisStyle: lipgloss.NewStyle().Foreground(p.Border),
		LineStyle: lipgloss.NewStyle().Foreground(p.Accent),
		DotStyle:  lipgloss.NewStyle().Foreground(p.Secondary),
	}
	caption := a.styles.Muted.Render(ansi.Truncate(a.t("cardBodyDesc"), w, "…"))
	if h < 4 {
		return caption
	}
	return radar.Render(w, h-1) + "\n" + caption
}

func (a *App) quoteBody(w, h int) string {
	quotes := a.catalog.Quotes(a.settings.Lang)
	if len(quotes) == 0 {
		return ""
	}
	current := rotation(a.elapsed, quoteEvery, len(quotes))
	text := a.styles.Subtitle.Render(wrap("“"+quotes[current]+"”", w))
	dots := make([]string, len(quotes))
	for i := range quotes {
		if i == current {
			dots[i] = a.styles.Accent.Render("━")
		} else {
			dots[i] = a.styles.Muted.Render("·")
		}
	}
	lines := strings.Split(text, "\n")
	if len(lines) > h-2 {
		lines = lines[:max(1, h-2)]
	}
	return strings.Join(lines, "\n") + "\n\n" + strings.Join(dots, " ")
}

// fuelColor grades the fuel gauge from green to red.
func fuelColor(level float64) lipgloss.Color {
	switch {
	case level < 0.5:
		return theme.ColorFuelLow
	case level < 0.8:
		return theme.ColorFuelMid
	default:
		return theme.ColorFuelHigh
	}
}
