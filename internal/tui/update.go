package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/tahx-org/tahx/internal/bento"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case tickMsg:
		a.elapsed += a.settings.Tick
		return a, tick(a.settings.Tick)
	case SettingsMsg:
		a.applySettings(Settings(msg))
		a.log.Info("settings applied",
			zap.String("theme", string(msg.Theme)),
			zap.String("lang", string(msg.Lang)))
		return a, nil
	case chatAnswerMsg:
		if a.chat != chatTyping {
			return a, nil
		}
		a.chat = chatClosed
		a.openModal(modalBeta)
		return a, nil
	case tea.BlurMsg:
		if a.cancelDrag() {
			a.status = a.t("statusCancelled")
		}
		return a, nil
	case spinner.TickMsg:
		if a.chat != chatTyping {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case tea.KeyMsg:
		if a.modal == modalOrb {
			return a.handleOrbKey(msg)
		}
		if a.modal != modalNone {
			return a.handleModalKey(msg)
		}
		if _, dragging := a.board.Session(); dragging {
			return a.handleDragKey(msg)
		}
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.modal != modalNone {
		return a, nil
	}
	p := bento.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		if a.board.PointerDown(p) {
			a.status = ""
		}
	case tea.MouseActionMotion:
		if _, ok := a.board.Session(); ok {
			a.board.PointerMove(p)
		}
	case tea.MouseActionRelease:
		a.settle(a.board.PointerUp(p))
	}
	return a, nil
}

// settle reports a finished gesture and opens the clicked tile's modal.
func (a *App) settle(res bento.DropResult) {
	switch {
	case res.Clicked:
		if i := a.board.Registry().Index(res.SourceID); i >= 0 {
			a.cursor = i
		}
		if m, ok := tileModals[res.SourceID]; ok {
			a.openModal(m)
		}
	case res.Moved:
		a.resize(a.width, a.height)
		a.cursor = a.board.Registry().Index(res.SourceID)
		a.status = a.t("statusMoved") + ": " + res.SourceID + " → " + res.TargetID
	case res.SessionID != "":
		a.status = a.t("statusSnapBack")
	}
	a.target = -1
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.chat == chatGreeting && msg.String() == "enter" {
		a.chat = chatTyping
		return a, tea.Batch(a.spinner.Tick, tea.Tick(chatDelay, func(time.Time) tea.Msg { return chatAnswerMsg{} }))
	}
	n := a.board.Registry().Len()
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Close):
		a.chat = chatClosed
		a.status = ""
	case key.Matches(msg, a.keys.Theme):
		s := a.settings
		s.Theme = s.Theme.Next()
		a.applySettings(s)
	case key.Matches(msg, a.keys.Language):
		s := a.settings
		s.Lang = s.Lang.Next()
		a.applySettings(s)
	case key.Matches(msg, a.keys.Philosophy):
		a.openModal(modalPhilosophy)
	case key.Matches(msg, a.keys.Beta):
		a.openModal(modalBeta)
	case key.Matches(msg, a.keys.Help):
		a.openModal(modalHelp)
	case key.Matches(msg, a.keys.Assistant):
		if a.chat == chatClosed {
			a.chat = chatGreeting
		} else {
			a.chat = chatClosed
		}
	case key.Matches(msg, a.keys.Orb):
		a.openModal(modalOrb)
		a.orb.SetValue("")
		return a, a.orb.Focus()
	case key.Matches(msg, a.keys.Next):
		if n > 0 {
			a.cursor = (a.cursor + 1) % n
		}
	case key.Matches(msg, a.keys.Prev):
		if n > 0 {
			a.cursor = (a.cursor - 1 + n) % n
		}
	case key.Matches(msg, a.keys.Grab):
		ids := a.board.Registry().IDs()
		if a.cursor < 0 || a.cursor >= len(ids) {
			return a, nil
		}
		if err := a.board.Grab(ids[a.cursor]); err != nil {
			a.log.Debug("grab refused", zap.Error(err))
			return a, nil
		}
		a.target = a.cursor
		a.status = a.t("statusGrabbed") + ": " + ids[a.cursor]
	case key.Matches(msg, a.keys.Open):
		ids := a.board.Registry().IDs()
		if a.cursor >= 0 && a.cursor < len(ids) {
			if m, ok := tileModals[ids[a.cursor]]; ok {
				a.openModal(m)
			}
		}
	}
	return a, nil
}

// handleDragKey moves the drop target while a tile is grabbed.
func (a *App) handleDragKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ids := a.board.Registry().IDs()
	n := len(ids)
	if n == 0 {
		a.board.Cancel()
		return a, nil
	}
	switch {
	case msg.String() == "ctrl+c":
		a.board.Cancel()
		return a, tea.Quit
	case key.Matches(msg, a.keys.Close):
		a.cancelDrag()
		a.status = a.t("statusCancelled")
	case key.Matches(msg, a.keys.Drop):
		target := ""
		if a.target >= 0 && a.target < n {
			target = ids[a.target]
		}
		a.settle(a.board.DropOn(target))
	case key.Matches(msg, a.keys.Next):
		a.target = (a.target + 1) % n
	case key.Matches(msg, a.keys.Prev):
		a.target = (a.target - 1 + n) % n
	}
	return a, nil
}

// openModal shows m. A drag in progress is abandoned first, since the modal
// swallows the release that would have ended it.
func (a *App) openModal(m modalKind) {
	a.cancelDrag()
	a.modal = m
}

// cancelDrag drops any armed session and reports whether there was one.
func (a *App) cancelDrag() bool {
	_, active := a.board.Session()
	a.board.Cancel()
	a.target = -1
	return active
}

func (a *App) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return a, tea.Quit
	case key.Matches(msg, a.keys.Close), msg.String() == "q", key.Matches(msg, a.keys.Open):
		a.modal = modalNone
	}
	return a, nil
}

func (a *App) handleOrbKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.orb.Blur()
		a.modal = modalNone
		return a, nil
	case "enter":
		if v := a.orb.Value(); v != "" {
			a.status = a.t("orbRecorded") + ": " + v
			a.log.Debug("orb input recorded", zap.Int("chars", len(v)))
		}
		a.orb.SetValue("")
		a.orb.Blur()
		a.modal = modalNone
		return a, nil
	}
	var cmd tea.Cmd
	a.orb, cmd = a.orb.Update(msg)
	return a, cmd
}
