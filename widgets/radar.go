package widgets

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/charmbracelet/lipgloss"
)

// Radar plots values in [0, Max] on evenly spaced spokes, first spoke up.
type Radar struct {
	Values    []float64
	Max       float64
	AxisStyle lipgloss.Style
	LineStyle lipgloss.Style
	DotStyle  lipgloss.Style
}

func (r Radar) Render(width, height int) string {
	if width < 3 || height < 3 || len(r.Values) < 3 {
		return ""
	}
	top := r.Max
	if top <= 0 {
		top = 100
	}
	c := canvas.New(width, height)
	cx, cy := (width-1)/2, (height-1)/2
	rx, ry := float64(cx), float64(cy)
	n := len(r.Values)

	spoke := func(k int, scale float64) canvas.Point {
		a := -math.Pi/2 + 2*math.Pi*float64(k)/float64(n)
		return canvas.Point{
			X: cx + int(math.Round(rx*scale*math.Cos(a))),
			Y: cy + int(math.Round(ry*scale*math.Sin(a))),
		}
	}
	centre := canvas.Point{X: cx, Y: cy}
	for k := 0; k < n; k++ {
		plotLine(&c, centre, spoke(k, 1), '·', r.AxisStyle)
	}
	vertices := make([]canvas.Point, n)
	for k, v := range r.Values {
		vertices[k] = spoke(k, math.Min(math.Max(v/top, 0), 1))
	}
	for k := range vertices {
		plotLine(&c, vertices[k], vertices[(k+1)%n], '•', r.LineStyle)
	}
	for _, p := range vertices {
		c.SetRuneWithStyle(p, '●', r.DotStyle)
	}
	return c.View()
}

// plotLine marks every cell on the line from a to b.
func plotLine(c *canvas.Model, a, b canvas.Point, glyph rune, style lipgloss.Style) {
	for _, p := range graph.GetLinePoints(a, b) {
		c.SetRuneWithStyle(p, glyph, style)
	}
}
