// ABOUTME: Tests for FooterModel Bubble Tea leaf component
// ABOUTME: Verifies position, play state, order, hints, and width truncation

package btea

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/dsviz/internal/viz"
	"github.com/mauromedda/dsviz/pkg/tui/width"
)

func TestFooterModel_View(t *testing.T) {
	m := NewFooterModel("←/→ step").
		WithTitle("Stack").
		WithPosition(viz.Position{Cursor: 1, Len: 4, CanForward: true, CanBackward: true}).
		WithPlaying(true)

	view := width.StripANSI(m.View())
	for _, want := range []string{"Stack", "◀ step 2/4 ▶", "playing", "←/→ step"} {
		if !strings.Contains(view, want) {
			t.Errorf("footer missing %q:\n%s", want, view)
		}
	}
	if n := strings.Count(view, "\n"); n != 1 {
		t.Errorf("footer has %d line breaks; want 1", n)
	}
}

func TestFooterModel_AnimatingAndOrder(t *testing.T) {
	view := width.StripANSI(NewFooterModel("").WithAnimating(true).WithOrder("postorder").View())
	if !strings.Contains(view, "animating") || !strings.Contains(view, "order: postorder") {
		t.Errorf("view = %q", view)
	}
}

func TestFooterModel_Truncates(t *testing.T) {
	r, _ := NewFooterModel(strings.Repeat("x", 50)).
		WithTitle("Binary Search Tree").
		WithPosition(viz.Position{Cursor: 9, Len: 10}).
		Update(tea.WindowSizeMsg{Width: 20})
	for _, line := range strings.Split(r.(FooterModel).View(), "\n") {
		if w := width.VisibleWidth(line); w > 20 {
			t.Errorf("line %q is %d columns", line, w)
		}
	}
}
