// Package dropdown implements a searchable multi-select dropdown widget.
//
// The widget keeps only ephemeral state (open/closed, search text, cursor,
// chip focus). Selection changes and new options are forwarded to a
// StateManager, which owns and persists the data.
package dropdown

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect/internal/domain"
	"multiselect/internal/state"
	"multiselect/internal/ui/logic"
)

// StateManager is the persistence-backed store the widget reports intents to
type StateManager interface {
	Options() []domain.Option
	SelectedIDs() []string
	HandleSelectionChange(newIDs []string) error
	HandleAddOption(option domain.Option) error
}

// Model is the dropdown widget
type Model struct {
	cfg     Config
	manager StateManager
	keys    KeyMap
	styles  *Styles

	filter *logic.SearchFilter
	nav    *logic.Navigator
	search textinput.Model
	newID  func() string

	open        bool
	focusedChip int // index into the rendered chips, -1 when none

	// Screen position of the top-left corner, for mouse hit-testing
	originX int
	originY int
}

// New creates a dropdown bound to manager
func New(manager StateManager, cfg Config) *Model {
	cfg = cfg.normalized()

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = cfg.SearchPlaceholder
	ti.Width = cfg.Width - 16

	m := &Model{
		cfg:         cfg,
		manager:     manager,
		keys:        DefaultKeyMap(),
		styles:      NewStyles(),
		filter:      logic.NewSearchFilter(cfg.Searchable, cfg.EnableAdd),
		nav:         logic.NewNavigator(cfg.MaxVisible),
		search:      ti,
		newID:       state.TimestampIDs(nil),
		focusedChip: -1,
	}
	m.syncNav(true)
	return m
}

// SetIDGenerator replaces the id source for ad-hoc options
func (m *Model) SetIDGenerator(fn func() string) {
	m.newID = fn
}

// SetOrigin tells the widget where its top-left corner is drawn
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// SetWidth changes the rendered width
func (m *Model) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	m.cfg.Width = width
	m.search.Width = width - 16
}

// Width returns the rendered width
func (m *Model) Width() int {
	return m.cfg.Width
}

// IsOpen reports whether the menu is shown
func (m *Model) IsOpen() bool {
	return m.open
}

// SearchValue returns the current search text
func (m *Model) SearchValue() string {
	return m.search.Value()
}

// Config returns the effective configuration
func (m *Model) Config() Config {
	return m.cfg
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key and mouse messages
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.open {
			return m.handleOpenKey(msg)
		}
		return m.handleClosedKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if m.open && m.cfg.Searchable {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleClosedKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ChipLeft):
		m.moveChipFocus(-1)
		return nil
	case key.Matches(msg, m.keys.ChipRight):
		m.moveChipFocus(1)
		return nil
	case key.Matches(msg, m.keys.RemoveChip):
		return m.removeFocusedChip()
	case key.Matches(msg, m.keys.Close):
		m.focusedChip = -1
		return nil
	case key.Matches(msg, m.keys.Open):
		return m.toggle()
	}
	return nil
}

func (m *Model) handleOpenKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		return m.close()
	case key.Matches(msg, m.keys.SelectAll):
		if m.showSelectAll() {
			return m.toggleAll()
		}
		return nil
	case key.Matches(msg, m.keys.Up):
		m.nav.Move(-1)
		return nil
	case key.Matches(msg, m.keys.Down):
		m.nav.Move(1)
		return nil
	case key.Matches(msg, m.keys.PageUp):
		m.nav.PageUp()
		return nil
	case key.Matches(msg, m.keys.PageDown):
		m.nav.PageDown()
		return nil
	case key.Matches(msg, m.keys.Add):
		return m.addFromSearch()
	case key.Matches(msg, m.keys.Pick):
		if m.canAdd() {
			return m.addFromSearch()
		}
		return m.activate(m.nav.Cursor())
	case key.Matches(msg, m.keys.Toggle):
		return m.activate(m.nav.Cursor())
	}

	if !m.cfg.Searchable {
		if msg.Type == tea.KeySpace {
			return m.activate(m.nav.Cursor())
		}
		return nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.syncNav(true)
	}
	return cmd
}

// toggle flips the menu between open and closed, as a header click does
func (m *Model) toggle() tea.Cmd {
	if m.open {
		return m.close()
	}
	return m.openMenu()
}

func (m *Model) openMenu() tea.Cmd {
	m.open = true
	m.focusedChip = -1
	m.syncNav(true)
	cmds := []tea.Cmd{toggledCmd(true)}
	if m.cfg.Searchable {
		cmds = append(cmds, m.search.Focus(), textinput.Blink)
	}
	return tea.Batch(cmds...)
}

func (m *Model) close() tea.Cmd {
	if !m.open {
		return nil
	}
	m.open = false
	m.search.Blur()
	return toggledCmd(false)
}

// activate performs the action of the menu row at index
func (m *Model) activate(index int) tea.Cmd {
	rows := m.rows()
	if index < 0 || index >= len(rows) {
		return nil
	}
	row := rows[index]
	if row.kind == rowSelectAll {
		return m.toggleAll()
	}
	return m.pick(row.option.ID)
}

// pick applies a click on the option with id
func (m *Model) pick(id string) tea.Cmd {
	outcome := logic.PickItem(m.manager.SelectedIDs(), id, m.cfg.SingleSelection)
	if !outcome.Changed {
		return nil
	}

	var cmds []tea.Cmd
	if err := m.manager.HandleSelectionChange(outcome.Selected); err != nil {
		cmds = append(cmds, storageErrCmd(err))
	}
	if outcome.CloseMenu {
		cmds = append(cmds, m.close())
	}
	if m.cfg.Searchable {
		m.search.SetValue("")
	}
	m.syncNav(false)
	return tea.Batch(cmds...)
}

func (m *Model) toggleAll() tea.Cmd {
	options := m.manager.Options()
	selected := m.manager.SelectedIDs()
	query := m.search.Value()

	relevant := m.filter.RelevantOptions(options, query)
	all := m.filter.AllSelected(options, selected, query)
	if err := m.manager.HandleSelectionChange(logic.ToggleAll(selected, relevant, all)); err != nil {
		return storageErrCmd(err)
	}
	return nil
}

// addFromSearch creates an option from the search text when allowed
func (m *Model) addFromSearch() tea.Cmd {
	if !m.canAdd() {
		return nil
	}
	option := domain.Option{
		ID:    m.newID(),
		Label: strings.TrimSpace(m.search.Value()),
	}

	var cmds []tea.Cmd
	if err := m.manager.HandleAddOption(option); err != nil {
		cmds = append(cmds, storageErrCmd(err))
	} else {
		cmds = append(cmds, func() tea.Msg {
			return OptionAddedMsg{ID: option.ID, Label: option.Label}
		})
	}
	m.search.SetValue("")
	cmds = append(cmds, m.search.Focus())
	m.syncNav(true)
	return tea.Batch(cmds...)
}

// removeChip deselects id, as the chip's remove button does
func (m *Model) removeChip(id string) tea.Cmd {
	if err := m.manager.HandleSelectionChange(logic.Without(m.manager.SelectedIDs(), id)); err != nil {
		return storageErrCmd(err)
	}
	m.syncNav(false)
	return nil
}

func (m *Model) removeFocusedChip() tea.Cmd {
	chips := m.manager.Options()
	selected := m.selectedOptions(chips)
	if m.focusedChip < 0 || m.focusedChip >= len(selected) {
		return nil
	}
	cmd := m.removeChip(selected[m.focusedChip].ID)
	remaining := len(selected) - 1
	if m.focusedChip >= remaining {
		m.focusedChip = remaining - 1
	}
	return cmd
}

func (m *Model) moveChipFocus(delta int) {
	count := len(m.selectedOptions(m.manager.Options()))
	if count == 0 {
		m.focusedChip = -1
		return
	}
	switch {
	case m.focusedChip < 0 && delta < 0:
		m.focusedChip = count - 1
	case m.focusedChip < 0:
		m.focusedChip = 0
	default:
		m.focusedChip += delta
	}
	if m.focusedChip < 0 {
		m.focusedChip = 0
	}
	if m.focusedChip >= count {
		m.focusedChip = -1
	}
}

// Derived state

func (m *Model) filteredOptions() []domain.Option {
	return m.filter.FilterOptions(m.manager.Options(), m.search.Value())
}

func (m *Model) canAdd() bool {
	return m.filter.CanAdd(m.manager.Options(), m.search.Value())
}

func (m *Model) allSelected() bool {
	return m.filter.AllSelected(m.manager.Options(), m.manager.SelectedIDs(), m.search.Value())
}

func (m *Model) showSelectAll() bool {
	return !m.cfg.SingleSelection && m.cfg.EnableSelectAll && len(m.manager.Options()) > 0
}

// selectedOptions returns the chips to render, in option order
func (m *Model) selectedOptions(options []domain.Option) []domain.Option {
	selected := m.manager.SelectedIDs()
	var out []domain.Option
	for _, opt := range options {
		if domain.ContainsID(selected, opt.ID) {
			out = append(out, opt)
		}
	}
	return out
}

type rowKind int

const (
	rowSelectAll rowKind = iota
	rowOption
)

type menuRow struct {
	kind   rowKind
	option domain.Option
}

// rows lists the navigable menu rows
func (m *Model) rows() []menuRow {
	var rows []menuRow
	if m.showSelectAll() {
		rows = append(rows, menuRow{kind: rowSelectAll})
	}
	for _, opt := range m.filteredOptions() {
		rows = append(rows, menuRow{kind: rowOption, option: opt})
	}
	return rows
}

// syncNav refreshes the row count; reset moves the cursor to the first option
func (m *Model) syncNav(reset bool) {
	m.nav.SetTotal(len(m.rows()))
	if reset {
		m.nav.Reset()
		if m.showSelectAll() && len(m.filteredOptions()) > 0 {
			m.nav.SetCursor(1)
		}
	}
}

func storageErrCmd(err error) tea.Cmd {
	log.Printf("Failed to persist dropdown state: %v", err)
	return func() tea.Msg {
		return StorageErrorMsg{Err: err}
	}
}

func toggledCmd(open bool) tea.Cmd {
	return func() tea.Msg {
		return MenuToggledMsg{Open: open}
	}
}
