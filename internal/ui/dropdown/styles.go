package dropdown

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the widget
type Styles struct {
	Header       lipgloss.Style
	HeaderOpen   lipgloss.Style
	Placeholder  lipgloss.Style
	Arrow        lipgloss.Style
	Chip         lipgloss.Style
	ChipFocused  lipgloss.Style
	ChipRemove   lipgloss.Style
	More         lipgloss.Style
	Menu         lipgloss.Style
	SearchIcon   lipgloss.Style
	AddEnabled   lipgloss.Style
	AddDisabled  lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Cursor       lipgloss.Style
	Checkmark    lipgloss.Style
	SelectAll    lipgloss.Style
	Scroll       lipgloss.Style
	NoResults    lipgloss.Style
	Hint         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		HeaderOpen: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Arrow:       lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("61")).
			PaddingLeft(1),
		ChipFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("214")).
			PaddingLeft(1),
		ChipRemove: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Background(lipgloss.Color("61")).
			Padding(0, 1),
		More: lipgloss.NewStyle().Faint(true),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchIcon:   lipgloss.NewStyle(),
		AddEnabled:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		AddDisabled:  lipgloss.NewStyle().Faint(true),
		Item:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Cursor:       lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Checkmark:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		SelectAll:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		NoResults:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Hint:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}
