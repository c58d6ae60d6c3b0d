package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Theme      key.Binding
	Language   key.Binding
	Philosophy key.Binding
	Beta       key.Binding
	Assistant  key.Binding
	Orb        key.Binding
	Help       key.Binding
	Quit       key.Binding

	Next   key.Binding
	Prev   key.Binding
	Arrows key.Binding
	Grab   key.Binding
	Open   key.Binding
	Drop   key.Binding
	Close  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Language:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
		Philosophy: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "philosophy")),
		Beta:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "beta")),
		Assistant:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "assistant")),
		Orb:        key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "record")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Next:   key.NewBinding(key.WithKeys("tab", "right", "down"), key.WithHelp("tab", "next tile")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "up"), key.WithHelp("shift+tab", "prev tile")),
		Arrows: key.NewBinding(key.WithKeys("left", "right", "up", "down"), key.WithHelp("←→", "target")),
		Grab:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "grab")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Drop:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Grab, k.Open, k.Theme, k.Language, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Grab, k.Open},
		{k.Theme, k.Language, k.Philosophy, k.Beta},
		{k.Assistant, k.Orb, k.Help, k.Quit},
	}
}

// dragKeys is shown while a tile is grabbed from the keyboard.
type dragKeys struct{ keyMap }

func (k dragKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Arrows, k.Drop, k.Close}
}

func (k dragKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
