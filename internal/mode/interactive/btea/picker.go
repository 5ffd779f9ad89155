// ABOUTME: PickerModel is the start screen: a fuzzy-filtered list of catalog items
// ABOUTME: Enter opens an available structure; the rest report they are coming soon

package btea

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/dsviz/internal/catalog"
	"github.com/mauromedda/dsviz/internal/viz"
)

// PickerModel lists the catalog and filters it as the user types.
type PickerModel struct {
	cat    *catalog.Catalog
	list   SelectListModel
	filter InputModel
	total  int
}

// NewPickerModel creates a picker over every catalog item.
func NewPickerModel(cat *catalog.Catalog) PickerModel {
	items := make([]ListItem, 0, len(cat.Items()))
	for _, it := range cat.Items() {
		items = append(items, ListItem{
			ID:          it.ID,
			Icon:        it.Icon,
			Label:       it.Name,
			Description: it.Description,
			Disabled:    !it.Available,
		})
	}
	return PickerModel{
		cat:    cat,
		list:   NewSelectListModel(items),
		filter: NewInputModel("Search: ").SetPlaceholder("type to filter"),
		total:  len(items),
	}
}

// Init returns nil; no commands needed at startup.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation, filtering and selection.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l, _ := m.list.Update(msg)
		m.list = l.(SelectListModel).SetMaxHeight(msg.Height - 8)
		f, _ := m.filter.Update(msg)
		m.filter = f.(InputModel)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp, tea.KeyDown:
			l, _ := m.list.Update(msg)
			m.list = l.(SelectListModel)
		case tea.KeyEnter:
			return m, m.choose()
		case tea.KeyEsc:
			m.filter = m.filter.Reset()
			m.list = m.list.SetFilter("")
		default:
			f, _ := m.filter.Update(msg)
			m.filter = f.(InputModel)
			if v := m.filter.Value(); v != m.list.Filter() {
				m.list = m.list.SetFilter(v)
			}
		}
	}
	return m, nil
}

func (m PickerModel) choose() tea.Cmd {
	sel, ok := m.list.SelectedItem()
	if !ok {
		return nil
	}
	it, ok := m.cat.Lookup(sel.ID)
	if !ok {
		return nil
	}
	if !it.Available {
		return emit(NoticeMsg{Notice: viz.Notice{
			Level: viz.LevelInfo,
			Text:  fmt.Sprintf("%s is coming soon", it.Name),
		}})
	}
	return emit(OpenMsg{Item: it})
}

// Selected returns the highlighted item, if any.
func (m PickerModel) Selected() (ListItem, bool) {
	return m.list.SelectedItem()
}

// View renders the title, filter, list and a count line.
func (m PickerModel) View() string {
	return m.Render("")
}

// Render draws the picker with an optional toast above the hint line.
func (m PickerModel) Render(toast string) string {
	s := Styles()
	var b strings.Builder
	b.WriteString(s.Title.Render("dsviz") + "  " + s.Muted.Render("data structure visualizer") + "\n\n")
	b.WriteString(m.filter.View() + "\n\n")

	if list := m.list.View(); list != "" {
		b.WriteString(list + "\n")
	} else {
		b.WriteString(s.Muted.Render("  no match") + "\n")
	}
	b.WriteString("\n")
	if toast != "" {
		b.WriteString(toast + "\n")
	}
	shown := len(m.list.VisibleItems())
	b.WriteString(s.Muted.Render(fmt.Sprintf("%d of %d · ↑/↓ move · enter open · esc clear · ctrl+c quit", shown, m.total)))
	return b.String()
}
