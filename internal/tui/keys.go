package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Export key.Binding
	Stats  key.Binding
	Help   key.Binding
	Skip   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Stats: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "session stats"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Skip: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "skip setup"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// forceQuit works while the setup form owns the keyboard.
var forceQuit = key.NewBinding(
	key.WithKeys("ctrl+c"),
	key.WithHelp("ctrl+c", "quit"),
)

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Stats, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Stats, k.Export},
		{k.Skip, k.Help, k.Quit},
	}
}
