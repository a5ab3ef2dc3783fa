package dropdown

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the widget's key bindings
type KeyMap struct {
	Open       key.Binding
	Close      key.Binding
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Pick       key.Binding
	Toggle     key.Binding
	SelectAll  key.Binding
	Add        key.Binding
	ChipLeft   key.Binding
	ChipRight  key.Binding
	RemoveChip key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " ", "down"),
			key.WithHelp("enter", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select / add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "select"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all"),
		),
		Add: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "add"),
		),
		ChipLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "focus chip"),
		),
		ChipRight: key.NewBinding(
			key.WithKeys("right"),
		),
		RemoveChip: key.NewBinding(
			key.WithKeys("x", "delete", "backspace"),
			key.WithHelp("x", "remove chip"),
		),
	}
}

// ShortHelp returns the bindings relevant to the current menu state
func (m *Model) ShortHelp() []key.Binding {
	if !m.open {
		return []key.Binding{m.keys.Open, m.keys.ChipLeft, m.keys.RemoveChip}
	}
	bindings := []key.Binding{m.keys.Up, m.keys.Pick, m.keys.Close}
	if m.showSelectAll() {
		bindings = append(bindings, m.keys.SelectAll)
	}
	if m.cfg.EnableAdd {
		bindings = append(bindings, m.keys.Add)
	}
	return bindings
}

// FullHelp returns all bindings grouped by menu state
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Open, m.keys.ChipLeft, m.keys.RemoveChip},
		{m.keys.Up, m.keys.Pick, m.keys.Toggle, m.keys.Close},
		{m.keys.SelectAll, m.keys.Add},
	}
}
