// ABOUTME: Complexity sheets as markdown, rendered for the terminal through glamour
// ABOUTME: Used by the TUI info panel and the info command

package catalog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown formats the sheet of it. Items without a sheet get a short note.
func Markdown(it Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", it.Name)
	if it.Sheet == nil {
		fmt.Fprintf(&b, "%s\n\n_No visualizer yet._\n", it.Description)
		return b.String()
	}
	s := it.Sheet
	fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(s.Summary))

	b.WriteString("## Time complexity\n\n| Operation | Complexity |\n|---|---|\n")
	for _, c := range s.Time {
		fmt.Fprintf(&b, "| %s | %s |\n", c.Operation, c.Cost)
	}
	fmt.Fprintf(&b, "\n## Space complexity\n\n%s\n", s.Space)

	if len(s.UseCases) > 0 {
		b.WriteString("\n## Use cases\n\n")
		for _, u := range s.UseCases {
			fmt.Fprintf(&b, "- %s\n", u)
		}
	}
	if s.Example != "" {
		fmt.Fprintf(&b, "\n## Example\n\n```go\n%s```\n", s.Example)
	}
	return b.String()
}

// Render turns markdown into styled terminal text wrapped at width. style
// is a glamour standard style name ("dark", "light", "notty"); empty
// picks one from the terminal background.
func Render(md string, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimRight(out, "\n "), nil
}
