package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"multiselect/internal/ui/dropdown"
)

// KeyMap holds the bindings handled by the host rather than the dropdown
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	History   key.Binding
}

// DefaultKeyMap returns the default host key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		History: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "history"),
		),
	}
}

// footerKeys merges the dropdown's bindings with the host's for the help bar
type footerKeys struct {
	dropdown *dropdown.Model
	host     KeyMap
}

var _ help.KeyMap = footerKeys{}

func (f footerKeys) ShortHelp() []key.Binding {
	bindings := f.dropdown.ShortHelp()
	if f.dropdown.IsOpen() {
		return bindings
	}
	return append(bindings, f.host.History, f.host.Help, f.host.Quit)
}

func (f footerKeys) FullHelp() [][]key.Binding {
	return append(f.dropdown.FullHelp(), []key.Binding{f.host.History, f.host.Help, f.host.Quit})
}
