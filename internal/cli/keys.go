package cli

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Cycle   key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.Confirm, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Cycle: key.NewBinding(
		key.WithKeys(" ", "s"),
		key.WithHelp("space/s", "short press"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter", "l"),
		key.WithHelp("enter/l", "long press"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
