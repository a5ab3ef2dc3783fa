package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"multiselect/internal/domain"
)

// HelpRenderer renders the content shown in the pager
type HelpRenderer struct {
	titleStyle   lipgloss.Style
	sectionStyle lipgloss.Style
	keyStyle     lipgloss.Style
	descStyle    lipgloss.Style
	dimStyle     lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		sectionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		keyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		descStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		dimStyle:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

type helpEntry struct {
	keys string
	desc string
}

func (r *HelpRenderer) writeSection(b *strings.Builder, title string, entries []helpEntry) {
	b.WriteString(r.sectionStyle.Render(title))
	b.WriteString("\n")
	for _, e := range entries {
		fmt.Fprintf(b, "  %s %s\n", r.keyStyle.Render(fmt.Sprintf("%-14s", e.keys)), r.descStyle.Render(e.desc))
	}
}

// RenderHelpContent generates the key reference for the pager
func (r *HelpRenderer) RenderHelpContent(single, searchable, enableAdd bool) string {
	var help strings.Builder

	help.WriteString(r.titleStyle.Render("Multi-Select Dropdown Help"))
	help.WriteString("\n")

	r.writeSection(&help, "Closed", []helpEntry{
		{"Enter/Space/↓", "Open the menu"},
		{"←/→", "Focus a chip"},
		{"x/Del/Bksp", "Remove the focused chip"},
		{"Esc", "Clear chip focus"},
	})

	open := []helpEntry{
		{"↑/↓", "Move the highlight"},
		{"PgUp/PgDn", "Move a page"},
		{"Enter", "Select the highlighted row"},
		{"Tab", "Select the highlighted row"},
		{"Esc", "Close the menu"},
	}
	if !single {
		open = append(open, helpEntry{"Ctrl+A", "Select or deselect all matching"})
	}
	if searchable {
		open = append(open, helpEntry{"type", "Filter options by label"})
	}
	if enableAdd {
		open = append(open,
			helpEntry{"Enter", "Add the search text when nothing matches"},
			helpEntry{"Ctrl+N", "Add the search text"},
		)
	}
	r.writeSection(&help, "Menu open", open)

	r.writeSection(&help, "Mouse", []helpEntry{
		{"click header", "Open or close the menu"},
		{"click ×", "Remove a chip"},
		{"click row", "Select or deselect"},
		{"click [+]", "Add the search text"},
		{"click outside", "Close the menu"},
	})

	if single {
		help.WriteString(r.dimStyle.Render("  Single-selection mode: picking an item replaces the selection and closes the menu"))
		help.WriteString("\n")
	}

	r.writeSection(&help, "Other", []helpEntry{
		{"H", "Show selection history"},
		{"?", "Show this help"},
		{"q", "Quit"},
		{"Ctrl+C", "Quit from anywhere"},
	})

	return strings.TrimRight(help.String(), "\n")
}

// RenderHistoryContent lists the selection history, oldest first
func (r *HelpRenderer) RenderHistoryContent(options []domain.Option, history []string) string {
	var b strings.Builder

	b.WriteString(r.titleStyle.Render("Selection History"))
	b.WriteString("\n")

	if len(history) == 0 {
		b.WriteString(r.dimStyle.Render("  No selections recorded yet"))
		return b.String()
	}

	for i, id := range history {
		label := r.dimStyle.Render("(unknown option)")
		if opt, ok := domain.FindOption(options, id); ok {
			label = r.descStyle.Render(opt.DisplayLabel())
		}
		fmt.Fprintf(&b, "%4d. %s %s\n", i+1, label, r.dimStyle.Render("["+id+"]"))
	}
	return strings.TrimRight(b.String(), "\n")
}

// PagerOps shows text in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
