// ABOUTME: Markdown renderer for the info panel, delegating to the catalog's glamour renderer
// ABOUTME: Caches rendered results keyed by content hash + width

package btea

import (
	"crypto/sha256"
	"fmt"

	"github.com/mauromedda/dsviz/internal/catalog"
	"github.com/mauromedda/dsviz/internal/log"
)

// MarkdownRenderer renders complexity sheets with caching.
type MarkdownRenderer struct {
	style string
	cache map[string]string // "hash:width" -> rendered
}

// NewMarkdownRenderer creates a MarkdownRenderer for a glamour style.
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	return &MarkdownRenderer{
		style: style,
		cache: make(map[string]string),
	}
}

// Render returns the terminal-styled rendering of md. Failures fall back
// to the raw markdown.
func (r *MarkdownRenderer) Render(md string, width int) string {
	if md == "" {
		return ""
	}

	key := cacheKey(md, width)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	rendered, err := catalog.Render(md, width, r.style)
	if err != nil {
		log.Warn("info panel: %v", err)
		return md
	}

	r.cache[key] = rendered
	return rendered
}

// cacheKey produces a string key from content hash and width.
func cacheKey(content string, width int) string {
	h := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%x:%d", h[:8], width)
}
