// ABOUTME: Dependency injection struct for the Bubble Tea interactive app
// ABOUTME: Carries controller options, the catalog, key bindings and markdown style

package btea

import (
	"github.com/mauromedda/dsviz/internal/catalog"
	"github.com/mauromedda/dsviz/internal/keybindings"
	"github.com/mauromedda/dsviz/internal/viz"
)

// AppDeps bundles all dependencies for the Bubble Tea interactive app.
type AppDeps struct {
	Options viz.Options
	Catalog *catalog.Catalog
	Keys    *keybindings.Manager
	// Structure opens a visualizer directly, skipping the picker.
	Structure viz.Kind
	// MarkdownStyle is the glamour style for info panels; empty picks one
	// from the terminal background.
	MarkdownStyle string
	Version       string
}
