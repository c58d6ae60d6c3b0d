package widgets

import (
	"strings"
	"testing"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestColumnsSplitEvenly(t *testing.T) {
	c := Columns{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Gap: 1}
	lines := strings.Split(ansi.Strip(c.Render(20, 1)), "\n")
	require.Len(t, lines, 1)
	require.Equal(t, 10, strings.Index(lines[0], "B"))
	require.Equal(t, 19, ansi.StringWidth(lines[0]))
}

func TestColumnsPadShortColumns(t *testing.T) {
	c := Columns{Widgets: []Widget{fixedWidget{"a\nb\nc"}, fixedWidget{"x"}}, Gap: 2}
	lines := strings.Split(ansi.Strip(c.Render(10, 3)), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "b", strings.TrimSpace(lines[1]))
}

func TestStackGivesSectionsTheirRows(t *testing.T) {
	s := Stack{
		Sections: []Section{
			{Widget: fixedWidget{"top"}, Rows: 1},
			{Widget: fixedWidget{"mid"}, Rows: 2},
			{Widget: fixedWidget{"bottom"}, Rows: 3},
		},
		Gap: 1,
	}
	require.Equal(t, []string{"top", "", "mid", ""}, strings.Split(s.Render(10, 5), "\n"))
	require.Equal(t, []string{"top", "", "mid", "", "", "bottom", "", ""}, strings.Split(s.Render(10, 8), "\n"))
}

func TestStackClipsFirstSection(t *testing.T) {
	s := Stack{Sections: []Section{{Widget: fixedWidget{"a\nb\nc"}, Rows: 3}}}
	require.Equal(t, "a\nb", s.Render(10, 2))
	require.Empty(t, s.Render(10, 0))
}

func TestBoxIsExactSize(t *testing.T) {
	for _, size := range [][2]int{{20, 6}, {41, 13}, {4, 3}} {
		out := Box{Title: "A very long tile title", Content: "one\ntwo\nthree", Grip: true}.Render(size[0], size[1])
		lines := strings.Split(out, "\n")
		require.Len(t, lines, size[1])
		for _, line := range lines {
			require.Equal(t, size[0], ansi.StringWidth(line), "line %q", line)
		}
	}
}

func TestBoxGripInBottomRightCorner(t *testing.T) {
	out := Box{Title: "main", Grip: true}.Render(12, 4)
	lines := strings.Split(ansi.Strip(out), "\n")
	require.True(t, strings.HasSuffix(lines[3], GripGlyph+"╯"), lines[3])
	require.Contains(t, lines[0], " main ")

	thick := ansi.Strip(Box{Thick: true}.Render(6, 3))
	require.True(t, strings.HasPrefix(thick, "┏"))
}

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	card := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	out := RenderPopup(base, "Popup", card, 20, 9)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 9)
	require.Contains(t, out, "Popup")
	require.Contains(t, lines[0], "row-0")
	require.Contains(t, lines[8], "row-8")
}

func TestOverlayAtClipsToCanvas(t *testing.T) {
	base := Blank(10, 3)
	out := OverlayAt(base, "abcd\nefgh", 8, 2, 10, 3)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "        ab", lines[2])

	out = OverlayAt(base, "abcd", -2, 0, 10, 3)
	require.Equal(t, "cd        ", strings.Split(out, "\n")[0])

	out = OverlayAt("0123456789", "XY", 3, 0, 10, 1)
	require.Equal(t, "012XY56789", out)
}

func TestRenderCorner(t *testing.T) {
	out := RenderCorner(Blank(10, 4), "()", 1, 1, 10, 4)
	lines := strings.Split(out, "\n")
	require.Equal(t, "       () ", lines[2])
}

func TestBarsScale(t *testing.T) {
	out := ansi.Strip(Bars{Data: []Bar{{"mind", 50}, {"soul", 100}}, Max: 100}.Render(30, 5))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, strings.Count(lines[1], "█"), 2*strings.Count(lines[0], "█"))
	require.True(t, strings.HasSuffix(lines[1], "100"))
}

func TestTableAligns(t *testing.T) {
	out := Table{
		Headers: []string{"#", "tile"},
		Rows:    [][]string{{"1", "main"}, {"10", "philosophy"}},
	}.Render(40, 5)
	require.Equal(t, "#   tile\n1   main\n10  philosophy", ansi.Strip(out))
}

func TestRadarPlotsEveryVertex(t *testing.T) {
	out := ansi.Strip(Radar{Values: []float64{80, 60, 90, 40, 70}}.Render(21, 11))
	require.Equal(t, 5, strings.Count(out, "●"))
	require.Empty(t, Radar{Values: []float64{1, 2}}.Render(21, 11))
}

func TestPlotLineCoversBothEnds(t *testing.T) {
	c := canvas.New(5, 3)
	plotLine(&c, canvas.Point{X: 4, Y: 2}, canvas.Point{X: 0, Y: 0}, 'x', lipgloss.NewStyle())
	out := ansi.Strip(c.View())
	require.Equal(t, 5, strings.Count(out, "x"))
	lines := strings.Split(out, "\n")
	require.Equal(t, 'x', []rune(lines[0])[0])
	require.Equal(t, 'x', []rune(lines[2])[4])
}

func TestTextClips(t *testing.T) {
	require.Equal(t, "abc\nde", Text("abcdef\nde\nxyz").Render(3, 2))
}
