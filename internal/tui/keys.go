package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the terminal viewer.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding

	NextCategory key.Binding
	NextField    key.Binding

	// Search input.
	SearchActivate key.Binding
	SearchClear    key.Binding

	Quit key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	NextCategory: key.NewBinding(
		key.WithKeys("tab", "c"),
		key.WithHelp("tab", "category"),
	),
	NextField: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "field"),
	),
	SearchActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	SearchClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp is the one-line help shown under the results.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.SearchActivate, keys.NextCategory, keys.NextField, keys.Up, keys.Down, keys.Quit}
}
