// ABOUTME: Pre-sets the lipgloss background before bubbletea's init() sends OSC queries
// ABOUTME: Must be imported (with _) before any package that imports bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// bubbletea's init() calls lipgloss.HasDarkBackground(); with an
	// explicit background already set, the OSC 10/11 query is skipped.
	// This package must not import bubbletea, directly or transitively.
	lipgloss.SetHasDarkBackground(true)
}

// Apply records the background implied by a theme name and returns the
// matching glamour style for info panels.
func Apply(themeName string) string {
	if themeName == "light" {
		lipgloss.SetHasDarkBackground(false)
		return "light"
	}
	lipgloss.SetHasDarkBackground(true)
	if themeName == "monochrome" {
		return "notty"
	}
	return "dark"
}
