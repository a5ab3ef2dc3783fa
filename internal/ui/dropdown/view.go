package dropdown

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"multiselect/internal/domain"
	"multiselect/internal/ui/logic"
)

const (
	arrowClosed = "▾"
	arrowOpen   = "▴"
	removeGlyph = "×"
	addGlyph    = "[+]"

	// Border plus one column of padding
	contentInset = 2
	headerHeight = 3
)

// span is a half-open column range
type span struct {
	start, end int
}

func (s span) contains(x int) bool {
	return x >= s.start && x < s.end
}

type chipRegion struct {
	id     string
	body   span
	remove span
}

// layout records where interactive parts were drawn, relative to the
// widget's top-left corner
type layout struct {
	width   int
	height  int
	chips   []chipRegion
	addY    int
	add     span
	rowAtY  map[int]int
	hasMenu bool
}

// View renders the widget
func (m *Model) View() string {
	view, _ := m.render()
	return view
}

func (m *Model) render() (string, layout) {
	lay := layout{
		width:  m.cfg.Width,
		addY:   -1,
		rowAtY: make(map[int]int),
	}

	header := m.renderHeader(&lay)
	if !m.open {
		lay.height = lipgloss.Height(header)
		return header, lay
	}

	menu := m.renderMenu(&lay)
	lay.hasMenu = true
	view := lipgloss.JoinVertical(lipgloss.Left, header, menu)
	lay.height = lipgloss.Height(view)
	return view, lay
}

func (m *Model) innerWidth() int {
	return m.cfg.Width - 2*contentInset
}

func (m *Model) renderHeader(lay *layout) string {
	s := m.styles
	arrow := arrowClosed
	style := s.Header
	if m.open {
		arrow = arrowOpen
		style = s.HeaderOpen
	}

	avail := m.innerWidth() - 2
	content := m.renderChips(lay, avail)
	if content == "" {
		content = s.Placeholder.Render(truncate(m.cfg.Placeholder, avail))
	}
	content = pad(content, avail) + " " + s.Arrow.Render(arrow)

	return style.Width(m.cfg.Width - 2).Render(content)
}

// renderChips lays out chips left to right, collapsing the ones that do not
// fit into a "+N" counter
func (m *Model) renderChips(lay *layout, avail int) string {
	chips := m.selectedOptions(m.manager.Options())
	if len(chips) == 0 {
		return ""
	}
	s := m.styles

	total := 0
	for i, opt := range chips {
		if i > 0 {
			total++
		}
		total += chipWidth(opt)
	}
	allFit := total <= avail

	var b strings.Builder
	x := contentInset
	used := 0
	hidden := 0
	for i, opt := range chips {
		sep := 0
		if i > 0 {
			sep = 1
		}
		reserve := 0
		if rest := len(chips) - i - 1; !allFit && rest > 0 {
			reserve = len(fmt.Sprintf(" +%d", rest))
		}
		w := chipWidth(opt)
		if used+sep+w+reserve > avail {
			hidden = len(chips) - i
			break
		}

		if sep > 0 {
			b.WriteString(" ")
			x++
		}
		body := s.Chip
		if i == m.focusedChip {
			body = s.ChipFocused
		}
		label := opt.DisplayLabel()
		b.WriteString(body.Render(label))
		b.WriteString(s.ChipRemove.Render(removeGlyph))

		labelW := 1 + lipgloss.Width(label)
		lay.chips = append(lay.chips, chipRegion{
			id:     opt.ID,
			body:   span{x, x + labelW},
			remove: span{x + labelW, x + w},
		})
		x += w
		used += sep + w
	}

	if hidden > 0 {
		more := fmt.Sprintf("+%d", hidden)
		if used > 0 {
			more = " " + more
		}
		b.WriteString(s.More.Render(more))
	}
	return b.String()
}

// chipWidth is the rendered width of a chip: padded label plus " × "
func chipWidth(opt domain.Option) int {
	return 1 + lipgloss.Width(opt.DisplayLabel()) + 3
}

func (m *Model) renderMenu(lay *layout) string {
	s := m.styles
	inner := m.innerWidth()

	var lines []string
	// Menu content starts below the header and the menu's top border
	y := headerHeight + 1

	if m.cfg.Searchable {
		prefix := s.SearchIcon.Render("🔍") + " "
		button := ""
		if m.cfg.EnableAdd {
			style := s.AddDisabled
			if m.canAdd() {
				style = s.AddEnabled
			}
			button = " " + style.Render(addGlyph)
		}
		field := pad(m.search.View(), inner-lipgloss.Width(prefix)-lipgloss.Width(button))
		if button != "" {
			start := contentInset + lipgloss.Width(prefix+field) + 1
			lay.addY = y
			lay.add = span{start, start + len(addGlyph)}
		}
		lines = append(lines, prefix+field+button)
		y++
	}

	rows := m.rows()
	filtered := m.filteredOptions()
	start, end := m.nav.VisibleRange()
	if end > len(rows) {
		end = len(rows)
	}

	if start > 0 {
		lines = append(lines, s.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
		y++
	}
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(rows[i], i == m.nav.Cursor(), inner))
		lay.rowAtY[y] = i
		y++
	}
	if end < len(rows) {
		lines = append(lines, s.Scroll.Render(fmt.Sprintf("↓ %d more", len(rows)-end)))
		y++
	}

	if len(filtered) == 0 {
		lines = append(lines, m.emptyState()...)
	}

	return s.Menu.Width(m.cfg.Width - 2).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderRow(row menuRow, highlighted bool, width int) string {
	s := m.styles
	var text string

	switch row.kind {
	case rowSelectAll:
		all := m.allSelected()
		label := "Select All"
		if all {
			label = "Deselect All"
		}
		if m.cfg.ShowCheckbox {
			label = checkbox(all) + label
		}
		text = s.SelectAll.Render(label)

	default:
		selected := domain.ContainsID(m.manager.SelectedIDs(), row.option.ID)
		label := row.option.DisplayLabel()
		if m.cfg.ShowCheckbox {
			label = checkbox(selected) + label
		}
		if selected {
			text = s.ItemSelected.Render(label) + " " + s.Checkmark.Render("✓")
		} else {
			text = s.Item.Render(label)
		}
	}

	text = pad(text, width)
	if highlighted {
		return s.Cursor.Render(text)
	}
	return text
}

func (m *Model) emptyState() []string {
	s := m.styles
	query := m.search.Value()

	if !m.cfg.Searchable {
		if len(m.manager.Options()) == 0 {
			return []string{s.NoResults.Render("No options available")}
		}
		return nil
	}
	// The search field is the only content until something is typed
	if !m.filter.IsSearching(query) {
		return nil
	}

	lines := []string{s.NoResults.Render("No results found")}
	if m.canAdd() {
		lines = append(lines, s.Hint.Render(fmt.Sprintf("Press + or Enter to add \"%s\"", query)))
	}
	if suggestion, ok := logic.Suggest(m.manager.Options(), query); ok {
		lines = append(lines, s.Hint.Render(fmt.Sprintf("Did you mean \"%s\"?", suggestion)))
	}
	return lines
}

// handleMouse maps a left click onto the part of the widget under it
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	_, lay := m.render()
	x := msg.X - m.originX
	y := msg.Y - m.originY

	if x < 0 || y < 0 || x >= lay.width || y >= lay.height {
		return m.close()
	}

	if y < headerHeight {
		if y == 1 {
			for _, chip := range lay.chips {
				if chip.remove.contains(x) {
					return m.removeChip(chip.id)
				}
				if chip.body.contains(x) {
					return nil
				}
			}
		}
		return m.toggle()
	}

	if !lay.hasMenu {
		return nil
	}
	if y == lay.addY && lay.add.contains(x) {
		return m.addFromSearch()
	}
	if idx, ok := lay.rowAtY[y]; ok {
		m.nav.SetCursor(idx)
		return m.activate(idx)
	}
	return nil
}

func checkbox(checked bool) string {
	if checked {
		return "[x] "
	}
	return "[ ] "
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
