// ABOUTME: Tests for derived lipgloss styles
// ABOUTME: Verifies the lit style draws on the highlight background

package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStyles_UsePalette(t *testing.T) {
	t.Parallel()

	th := Builtin("dark")
	s := th.Styles()

	if got := s.Lit.GetBackground(); got != lipgloss.TerminalColor(th.Palette.Highlight) {
		t.Errorf("Lit background = %v; want %v", got, th.Palette.Highlight)
	}
	if got := s.Error.GetForeground(); got != lipgloss.TerminalColor(th.Palette.Error) {
		t.Errorf("Error foreground = %v", got)
	}
	if !s.Title.GetBold() {
		t.Error("Title should be bold")
	}
}

func TestStyles_RenderKeepsText(t *testing.T) {
	t.Parallel()

	s := Builtin("light").Styles()
	if out := s.Cell.Render("42"); out == "" {
		t.Error("Render returned empty string")
	}
}
