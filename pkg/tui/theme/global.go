// ABOUTME: Process-wide active theme with its styles built once per Set
// ABOUTME: Readers never lock; Set swaps theme and styles together

package theme

import "sync/atomic"

type active struct {
	theme  *Theme
	styles Styles
}

var current atomic.Pointer[active]

func init() {
	Set(&Theme{Name: "dark", Palette: DefaultPalette()})
}

// Current returns the active theme. Never returns nil.
func Current() *Theme {
	return current.Load().theme
}

// CurrentStyles returns the styles of the active theme.
func CurrentStyles() Styles {
	return current.Load().styles
}

// Set installs t and builds its styles.
func Set(t *Theme) {
	current.Store(&active{theme: t, styles: t.Styles()})
}
