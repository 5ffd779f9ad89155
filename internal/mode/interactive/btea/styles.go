// ABOUTME: Styles of the active theme for every view in the TUI
// ABOUTME: Built once per theme.Set, so views may call Styles() on each render

package btea

import "github.com/mauromedda/dsviz/pkg/tui/theme"

// Styles returns the styles of the current theme.
func Styles() theme.Styles {
	return theme.CurrentStyles()
}
