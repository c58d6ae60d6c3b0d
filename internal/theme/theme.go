// Package theme holds the four deck palettes and the lipgloss styles derived
// from them.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"
)

// Name identifies a palette.
type Name string

const (
	Cyber      Name = "cyber"
	Panyuliang Name = "panyuliang"
	Pancanvas  Name = "pancanvas"
	Panjade    Name = "panjade"
)

// Default is the palette used when nothing is configured.
const Default = Pancanvas

// Names lists the palettes in cycling order.
var Names = []Name{Cyber, Panyuliang, Pancanvas, Panjade}

var ErrUnknownTheme = errors.New("unknown theme")

// ---------------------------------------------------------------------------
// Palettes, true-color hex values
// ---------------------------------------------------------------------------

// Palette is one theme's colors.
type Palette struct {
	Background lipgloss.Color
	Card       lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Serif      bool
}

var palettes = map[Name]Palette{
	Cyber: {
		Background: "#050505",
		Card:       "#0a0a0a",
		Border:     "#1f1f1f",
		Accent:     "#00f0ff",
		Secondary:  "#7000ff",
		Text:       "#ffffff",
		Muted:      "#888888",
	},
	Panyuliang: {
		Background: "#2E243C",
		Card:       "#453655",
		Border:     "#5E4B70",
		Accent:     "#E8B4B8",
		Secondary:  "#A899B5",
		Text:       "#F2E9E4",
		Muted:      "#A899B5",
		Serif:      true,
	},
	Pancanvas: {
		Background: "#F2E9E4",
		Card:       "#F9F4EF",
		Border:     "#E0D5C9",
		Accent:     "#C9ADA7",
		Secondary:  "#9A8C98",
		Text:       "#222222",
		Muted:      "#666666",
		Serif:      true,
	},
	Panjade: {
		Background: "#D8E2DC",
		Card:       "#F3F6F4",
		Border:     "#B8C6BF",
		Accent:     "#2A9D8F",
		Secondary:  "#84A98C",
		Text:       "#264653",
		Muted:      "#5C6B73",
		Serif:      true,
	},
}

// Fixed accents shared by every palette.
const (
	ColorFuelLow   lipgloss.Color = "#20c997"
	ColorFuelMid   lipgloss.Color = "#ffc107"
	ColorFuelHigh  lipgloss.Color = "#dc3545"
	ColorHabitOn   lipgloss.Color = "#22c55e"
	ColorHabitHalf lipgloss.Color = "#15803d"
	ColorDiscord   lipgloss.Color = "#5865F2"
)

// Palette returns the colors for n, falling back to Default.
func (n Name) Palette() Palette {
	if p, ok := palettes[n]; ok {
		return p
	}
	return palettes[Default]
}

// Light reports whether n is a light-background palette.
func (n Name) Light() bool {
	return n == Pancanvas || n == Panjade
}

// Next returns the palette after n in cycling order.
func (n Name) Next() Name {
	for i, name := range Names {
		if name == n {
			return Names[(i+1)%len(Names)]
		}
	}
	return Default
}

// Parse resolves a theme name. Unknown names report the closest match.
func Parse(s string) (Name, error) {
	norm := Name(strings.ToLower(strings.TrimSpace(s)))
	if norm == "" {
		return Default, nil
	}
	if _, ok := palettes[norm]; ok {
		return norm, nil
	}
	return Default, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownTheme, s, Suggest(string(norm)))
}

// Suggest returns the palette name closest to s by edit distance.
func Suggest(s string) Name {
	best, bestDist := Default, -1
	for _, name := range Names {
		d := levenshtein.ComputeDistance(s, string(name))
		if bestDist < 0 || d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// AllPaletteColors returns every palette color for validation.
func AllPaletteColors() []lipgloss.Color {
	var out []lipgloss.Color
	for _, name := range Names {
		p := palettes[name]
		out = append(out, p.Background, p.Card, p.Border, p.Accent, p.Secondary, p.Text, p.Muted)
	}
	return append(out, ColorFuelLow, ColorFuelMid, ColorFuelHigh, ColorHabitOn, ColorHabitHalf, ColorDiscord)
}
