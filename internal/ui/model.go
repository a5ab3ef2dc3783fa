package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/config"
	"multiselect/internal/eventbus"
	"multiselect/internal/state"
	"multiselect/internal/ui/dropdown"
	"multiselect/internal/ui/views"
)

const (
	title    = "Multi-Select Dropdown"
	subtitle = "Search, select, and add custom categories!"

	maxDropdownWidth = 72
	statusTimeout    = 3 * time.Second
)

// Model is the host screen around the dropdown
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	manager *state.Manager

	dropdown *dropdown.Model
	renderer *views.Renderer
	helpText *HelpRenderer
	help     help.Model
	keys     KeyMap

	width         int
	height        int
	statusMessage string
	statusKind    views.StatusKind
	inPagerMode   bool // tracks if we're currently in pager mode
	err           error

	// Program reference for terminal management
	program *tea.Program
	pager   *PagerOps
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, manager *state.Manager) *Model {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	m := &Model{
		bus:      bus,
		config:   cfg,
		manager:  manager,
		dropdown: dropdown.New(manager, DropdownConfig(cfg.Dropdown)),
		renderer: views.NewRenderer(),
		helpText: NewHelpRenderer(),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		pager:    NewPagerOps(nil),
	}
	m.dropdown.SetOrigin(m.renderer.DropdownOrigin(m.viewState()))
	return m
}

// DropdownConfig maps the file configuration onto the widget's
func DropdownConfig(c config.DropdownConfig) dropdown.Config {
	return dropdown.Config{
		Placeholder:       c.Placeholder,
		SearchPlaceholder: c.SearchPlaceholder,
		Searchable:        c.Searchable,
		EnableAdd:         c.EnableAdd,
		SingleSelection:   c.SingleSelection,
		EnableSelectAll:   c.EnableSelectAll,
		ShowCheckbox:      c.ShowCheckbox,
		MaxVisible:        c.MaxVisible,
		Width:             dropdown.DefaultConfig().Width,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Err returns the error that stopped the program, if any
func (m *Model) Err() error {
	return m.err
}

// Dropdown exposes the embedded widget
func (m *Model) Dropdown() *dropdown.Model {
	return m.dropdown
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.dropdown.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		width := msg.Width - 4
		if width > maxDropdownWidth {
			width = maxDropdownWidth
		}
		m.dropdown.SetWidth(width)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		// With the menu open every printable key belongs to the search field
		if !m.dropdown.IsOpen() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				d := m.dropdown.Config()
				return m, m.showPager("help", m.helpText.RenderHelpContent(d.SingleSelection, d.Searchable, d.EnableAdd))
			case key.Matches(msg, m.keys.History):
				return m, m.showPager("history", m.helpText.RenderHistoryContent(m.manager.Options(), m.manager.History()))
			}
		}
		return m, m.dropdown.Update(msg)

	case tea.MouseMsg:
		return m, m.dropdown.Update(msg)

	case dropdown.StorageErrorMsg:
		log.Printf("Storage write failed, quitting: %v", msg.Err)
		m.err = fmt.Errorf("failed to persist selection: %w", msg.Err)
		m.bus.Publish(eventbus.ErrorEvent{Message: "Failed to save selection", Err: msg.Err})
		return m, tea.Quit

	case dropdown.OptionAddedMsg:
		return m, m.setStatus(fmt.Sprintf("Added %q", msg.Label), views.StatusSuccess)

	case dropdown.MenuToggledMsg:
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case pagerMsg:
		if msg.err != nil {
			log.Printf("%s pager failed: %v", msg.title, msg.err)
			// Comes back through the event channel as an error status
			m.bus.Publish(eventbus.ErrorEvent{
				Message: fmt.Sprintf("Could not open %s: %v", msg.title, msg.err),
				Err:     msg.err,
			})
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	// Cursor blinks and other component messages
	return m, m.dropdown.Update(msg)
}

// handleEvent reflects forwarded domain events in the status line
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.StorageFallbackEvent:
		// A missing entry is the normal first-run case
		if e.Err == nil {
			return nil
		}
		return m.setStatus(fmt.Sprintf("Stored %s could not be read, using defaults", e.Key), views.StatusWarning)
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message, views.StatusError)
	}
	return nil
}

func (m *Model) setStatus(message string, kind views.StatusKind) tea.Cmd {
	m.statusMessage = message
	m.statusKind = kind
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// showPager returns a command that shows content using ov pager
func (m *Model) showPager(name, content string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{title: name, err: err}
	}
}

func (m *Model) summary() string {
	selected := m.manager.SelectedOptions()
	switch len(selected) {
	case 0:
		return "Nothing selected"
	case 1:
		return "1 item selected"
	default:
		return fmt.Sprintf("%d items selected", len(selected))
	}
}

func (m *Model) viewState() views.ViewState {
	return views.ViewState{
		Width:         m.width,
		Title:         title,
		Subtitle:      subtitle,
		Summary:       m.summary(),
		StatusMessage: m.statusMessage,
		StatusKind:    m.statusKind,
	}
}

// View renders the screen
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	vs := m.viewState()
	vs.Dropdown = m.dropdown.View()
	vs.Help = m.help.View(footerKeys{dropdown: m.dropdown, host: m.keys})
	m.dropdown.SetOrigin(m.renderer.DropdownOrigin(vs))
	return m.renderer.Render(vs)
}
