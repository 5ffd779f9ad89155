// ABOUTME: FooterModel is a Bubble Tea leaf that renders a two-line status bar
// ABOUTME: Line one shows structure, history position and play state; line two the key hints

package btea

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/tui/width"
)

// FooterModel renders a two-line status bar at the bottom of the terminal.
type FooterModel struct {
	title     string
	pos       viz.Position
	playing   bool
	animating bool
	order     string
	hints     string
	width     int
}

// NewFooterModel creates a FooterModel with the key hint line set.
func NewFooterModel(hints string) FooterModel {
	return FooterModel{hints: hints}
}

// Init returns nil; no commands needed for a leaf model.
func (m FooterModel) Init() tea.Cmd {
	return nil
}

// Update handles messages relevant to the footer.
func (m FooterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
	}
	return m, nil
}

// WithTitle returns a FooterModel with the structure title set.
func (m FooterModel) WithTitle(t string) FooterModel {
	m.title = t
	return m
}

// WithPosition returns a FooterModel with the history position set.
func (m FooterModel) WithPosition(p viz.Position) FooterModel {
	m.pos = p
	return m
}

// WithPlaying returns a FooterModel with the playback flag set.
func (m FooterModel) WithPlaying(playing bool) FooterModel {
	m.playing = playing
	return m
}

// WithAnimating returns a FooterModel with the animation flag set.
func (m FooterModel) WithAnimating(animating bool) FooterModel {
	m.animating = animating
	return m
}

// WithOrder returns a FooterModel showing the traversal order tab selects.
func (m FooterModel) WithOrder(order string) FooterModel {
	m.order = order
	return m
}

// View renders the two-line footer.
func (m FooterModel) View() string {
	s := Styles()

	var parts []string
	if m.title != "" {
		parts = append(parts, s.Title.Render(m.title))
	}
	if m.pos.Len > 0 {
		back, fwd := s.Muted.Render("◀"), s.Muted.Render("▶")
		if m.pos.CanBackward {
			back = s.Accent.Render("◀")
		}
		if m.pos.CanForward {
			fwd = s.Accent.Render("▶")
		}
		parts = append(parts, fmt.Sprintf("%s step %d/%d %s", back, m.pos.Cursor+1, m.pos.Len, fwd))
	}
	switch {
	case m.playing:
		parts = append(parts, s.Success.Render("▶ playing"))
	case m.animating:
		parts = append(parts, s.Info.Render("● animating"))
	}
	if m.order != "" {
		parts = append(parts, s.Subtle.Render("order: "+m.order))
	}

	line1 := strings.Join(parts, s.Muted.Render("  "))
	line2 := s.Muted.Render(m.hints)

	if m.width > 0 {
		if width.VisibleWidth(line1) > m.width {
			line1 = width.Truncate(width.StripANSI(line1), m.width)
		}
		if width.VisibleWidth(line2) > m.width {
			line2 = s.Muted.Render(width.Truncate(m.hints, m.width))
		}
	}

	return line1 + "\n" + line2
}
