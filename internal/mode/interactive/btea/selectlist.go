// ABOUTME: SelectListModel is a Bubble Tea leaf for filterable scrollable lists
// ABOUTME: Filters labels with pkg/tui/fuzzy and underlines the matched runes

package btea

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/dsviz/pkg/tui/fuzzy"
	"github.com/mauromedda/dsviz/pkg/tui/theme"
	"github.com/mauromedda/dsviz/pkg/tui/width"
)

// ListItem represents a single entry in the select list.
type ListItem struct {
	ID          string
	Icon        string
	Label       string
	Description string
	// Disabled items are listed but dimmed.
	Disabled bool
}

// visibleItem is a list item that passed the filter.
type visibleItem struct {
	ListItem
	matched []int
}

// SelectListModel is a filterable, scrollable list of items.
// Implements tea.Model with value semantics (no mutex needed).
type SelectListModel struct {
	items     []ListItem
	visible   []visibleItem
	selected  int
	scrollOff int
	maxHeight int
	filter    string
	width     int
}

// NewSelectListModel creates a SelectListModel with the given items.
func NewSelectListModel(items []ListItem) SelectListModel {
	m := SelectListModel{
		items:     items,
		maxHeight: 100,
	}
	m.applyFilter()
	return m
}

// Init returns nil; no commands needed at startup.
func (m SelectListModel) Init() tea.Cmd {
	return nil
}

// Update handles key and window-size messages.
func (m SelectListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp:
			m.moveUp()
		case tea.KeyDown:
			m.moveDown()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the visible items with scrolling viewport.
func (m SelectListModel) View() string {
	if len(m.visible) == 0 {
		return ""
	}

	s := Styles()
	end := min(m.scrollOff+m.maxHeight, len(m.visible))
	var b strings.Builder

	for i := m.scrollOff; i < end; i++ {
		if i > m.scrollOff {
			b.WriteByte('\n')
		}
		b.WriteString(m.formatItem(s, m.visible[i], i == m.selected))
	}

	return b.String()
}

// SetFilter sets the fuzzy filter string and refilters. Returns a new model.
func (m SelectListModel) SetFilter(f string) SelectListModel {
	m.filter = f
	m.selected = 0
	m.scrollOff = 0
	m.applyFilter()
	return m
}

// Filter returns the current filter string.
func (m SelectListModel) Filter() string {
	return m.filter
}

// SetItems replaces the item list and resets selection. Returns a new model.
func (m SelectListModel) SetItems(items []ListItem) SelectListModel {
	m.items = items
	m.selected = 0
	m.scrollOff = 0
	m.applyFilter()
	return m
}

// SetMaxHeight limits the number of visible rows. Returns a new model.
func (m SelectListModel) SetMaxHeight(h int) SelectListModel {
	m.maxHeight = max(h, 1)
	m.adjustScroll()
	return m
}

// SelectedItem returns the currently selected item and whether there is one.
func (m SelectListModel) SelectedItem() (ListItem, bool) {
	if len(m.visible) == 0 {
		return ListItem{}, false
	}
	return m.visible[m.selected].ListItem, true
}

// SelectedIndex returns the index within the visible (filtered) items.
func (m SelectListModel) SelectedIndex() int {
	return m.selected
}

// VisibleItems returns the currently filtered items, best match first.
func (m SelectListModel) VisibleItems() []ListItem {
	out := make([]ListItem, len(m.visible))
	for i, v := range m.visible {
		out[i] = v.ListItem
	}
	return out
}

func (m *SelectListModel) moveUp() {
	if m.selected > 0 {
		m.selected--
		m.adjustScroll()
	}
}

func (m *SelectListModel) moveDown() {
	if m.selected < len(m.visible)-1 {
		m.selected++
		m.adjustScroll()
	}
}

func (m *SelectListModel) adjustScroll() {
	if m.selected < m.scrollOff {
		m.scrollOff = m.selected
	}
	if m.selected >= m.scrollOff+m.maxHeight {
		m.scrollOff = m.selected - m.maxHeight + 1
	}
}

func (m *SelectListModel) applyFilter() {
	matches := fuzzy.Filter(m.filter, m.items, func(it ListItem) string { return it.Label })
	m.visible = make([]visibleItem, len(matches))
	for i, match := range matches {
		m.visible[i] = visibleItem{ListItem: match.Item, matched: match.MatchedIndexes}
	}
}

func (m SelectListModel) formatItem(s theme.Styles, item visibleItem, selected bool) string {
	prefix := "  "
	if item.Icon != "" {
		prefix += item.Icon + " "
	}
	suffix := ""
	if item.Disabled {
		suffix = " (coming soon)"
	}
	desc := ""
	if item.Description != "" {
		desc = "  " + item.Description
	}

	plain := prefix + item.Label + desc + suffix
	if m.width > 0 && width.VisibleWidth(plain) > m.width {
		plain = width.Truncate(plain, m.width)
		if selected {
			return s.Selected.Render(plain)
		}
		return s.Muted.Render(plain)
	}

	switch {
	case selected:
		return s.Selected.Render(plain)
	case item.Disabled:
		return s.Muted.Render(prefix+item.Label+desc) + s.Subtle.Render(suffix)
	}
	label := highlightMatches(item.Label, item.matched, s.Accent.Underline(true))
	return prefix + label + s.Muted.Render(desc)
}

// highlightMatches styles the runes of label at the byte offsets in idx.
func highlightMatches(label string, idx []int, st lipgloss.Style) string {
	if len(idx) == 0 {
		return label
	}
	var b strings.Builder
	for i, r := range label {
		if slices.Contains(idx, i) {
			b.WriteString(st.Render(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
