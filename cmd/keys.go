package cmd

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the application. It satisfies key.Map so
// it can be passed directly to bubbles/help.Model for automatic rendering.
type keyMap struct {
	Chart   key.Binding
	Reports key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Chart, k.Reports, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view (columns).
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Chart, k.Reports}, // first column
		{k.Help, k.Quit},     // second column
	}
}

// keys is the set of key bindings used across the app.
var keys = keyMap{
	Chart: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "chart view"),
	),
	Reports: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "saved reports"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
