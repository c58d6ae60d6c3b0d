// Package tui is the interactive deck: a hero header over the reorderable
// bento grid, with modals, the assistant teaser and the record orb.
package tui

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/tahx-org/tahx/internal/bento"
	"github.com/tahx-org/tahx/internal/i18n"
	"github.com/tahx-org/tahx/internal/theme"
)

// Settings are the presentation settings threaded into rendering. The grid
// core never sees them.
type Settings struct {
	Theme theme.Name
	Lang  i18n.Language
	Grips bool
	Tick  time.Duration
}

// SettingsMsg replaces the running settings, for example after the config
// file changed on disk.
type SettingsMsg Settings

type tickMsg time.Time

type chatAnswerMsg struct{}

type modalKind string

const (
	modalNone       modalKind = ""
	modalPhilosophy modalKind = "philosophy"
	modalBeta       modalKind = "beta"
	modalPrivacy    modalKind = "privacy"
	modalArch       modalKind = "arch"
	modalRoadmap    modalKind = "roadmap"
	modalDimension  modalKind = "dimension"
	modalHelp       modalKind = "help"
	modalOrb        modalKind = "orb"
)

// tileModals maps the tiles that open something on click.
var tileModals = map[string]modalKind{
	"body":       modalDimension,
	"arch":       modalArch,
	"roadmap":    modalRoadmap,
	"philosophy": modalPhilosophy,
	"legal":      modalPrivacy,
}

type chatPhase int

const (
	chatClosed chatPhase = iota
	chatGreeting
	chatTyping
)

const (
	entryEvery = 4 * time.Second
	quoteEvery = 5 * time.Second
	chatDelay  = 1500 * time.Millisecond

	headerRows = 3
	footerRows = 2
	heatCells  = 28
)

// App is the bubbletea model for the deck.
type App struct {
	board    *bento.Board
	catalog  *i18n.Catalog
	log      *zap.Logger
	settings Settings
	styles   theme.Styles

	keys    keyMap
	help    help.Model
	fuel    progress.Model
	spinner spinner.Model
	orb     textinput.Model

	width   int
	height  int
	elapsed time.Duration
	modal   modalKind
	chat    chatPhase
	status  string
	heatmap []int

	// keyboard reorder
	cursor int
	target int

	md      *glamour.TermRenderer
	mdWidth int
	mdTheme theme.Name
}

// New builds the deck around board. log may be nil.
func New(board *bento.Board, catalog *i18n.Catalog, settings Settings, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	if settings.Tick <= 0 {
		settings.Tick = time.Second
	}

	orb := textinput.New()
	orb.CharLimit = 120

	a := &App{
		board:    board,
		catalog:  catalog,
		log:      log,
		keys:     defaultKeys(),
		help:     help.New(),
		fuel:     progress.New(progress.WithoutPercentage()),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		orb:      orb,
		heatmap:  habitCells(heatCells, 7),
		target:   -1,
		width:    80,
		height:   24,
		settings: settings,
	}
	a.applySettings(settings)
	a.resize(a.width, a.height)
	return a
}

// Settings returns the current presentation settings.
func (a *App) Settings() Settings { return a.settings }

func (a *App) Init() tea.Cmd {
	return tick(a.settings.Tick)
}

func tick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (a *App) applySettings(s Settings) {
	if s.Tick <= 0 {
		s.Tick = a.settings.Tick
	}
	a.settings = s
	a.styles = theme.NewStyles(s.Theme)
	p := s.Theme.Palette()
	a.fuel = progress.New(
		progress.WithoutPercentage(),
		progress.WithSolidFill(string(fuelColor(fuelLevel))),
	)
	a.fuel.EmptyColor = string(p.Border)
	a.spinner.Style = a.styles.Accent
	a.help.Styles.ShortKey = a.styles.Accent
	a.help.Styles.ShortDesc = a.styles.Muted
	a.help.Styles.FullKey = a.styles.Accent
	a.help.Styles.FullDesc = a.styles.Muted
	a.orb.Placeholder = a.t("orbPlaceholder")
	a.board.SetGrips(s.Grips)
}

// resize recomputes the grid geometry for a width x height terminal. Moves
// can change the packed row count, so it also runs after every reorder.
func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	a.help.Width = width
	columns := bento.Columns(width)
	gap := 1
	cellW := max(8, (width-2-gap*(columns-1))/columns)
	rows := max(1, bento.Rows(bento.Pack(a.board.Registry().Tiles(), columns)))
	avail := height - headerRows - footerRows - gap*(rows-1)
	cellH := min(max(3, avail/rows), 12)
	a.board.SetViewport(bento.Geometry{
		OriginX: 1,
		OriginY: headerRows,
		CellW:   cellW,
		CellH:   cellH,
		Gap:     gap,
	}, columns)
}

func (a *App) t(key string) string {
	return a.catalog.T(a.settings.Lang, key)
}

// habitCells is the seeded habit heatmap: 0 idle, 1 half, 2 done.
func habitCells(n int, seed uint64) []int {
	r := rand.New(rand.NewPCG(seed, seed))
	out := make([]int, n)
	for i := range out {
		if r.Float64() > 0.6 {
			out[i] = 1
			if r.Float64() > 0.5 {
				out[i] = 2
			}
		}
	}
	return out
}

func rotation(elapsed, every time.Duration, n int) int {
	if n == 0 {
		return 0
	}
	return int(elapsed/every) % n
}
