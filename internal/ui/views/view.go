package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusKind selects the colour of the status line
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Title         string
	Subtitle      string
	Dropdown      string
	Summary       string
	StatusMessage string
	StatusKind    StatusKind
	Help          string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

func (r *Renderer) header(state ViewState) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.styles.Title.Render(state.Title),
		r.styles.Subtitle.Render(state.Subtitle),
	)
}

// DropdownOrigin returns the screen cell where the dropdown's top-left
// corner is drawn
func (r *Renderer) DropdownOrigin(state ViewState) (int, int) {
	x := r.styles.Main.GetPaddingLeft()
	y := r.styles.Main.GetPaddingTop() + lipgloss.Height(r.header(state))
	return x, y
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.header(state))
	content.WriteString("\n")
	content.WriteString(state.Dropdown)

	if state.Summary != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.Summary))
	}

	if state.StatusMessage != "" {
		style := r.styles.Dim
		switch state.StatusKind {
		case StatusSuccess:
			style = r.styles.StatusSuccess
		case StatusWarning:
			style = r.styles.StatusWarning
		case StatusError:
			style = r.styles.StatusError
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	if state.Help != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.Help))
	}

	return r.styles.Main.Render(content.String())
}
