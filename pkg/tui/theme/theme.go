// ABOUTME: Semantic color theme types: Palette maps roles to lipgloss colors
// ABOUTME: Styles derives the ready-to-use lipgloss styles the views render with

package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds all semantic colors for a theme. Values are anything
// lipgloss.Color accepts: "#ff8800", "208", or "" for the terminal default.
type Palette struct {
	// Text
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color

	// Semantic
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Structure cells
	Cell      lipgloss.Color
	Highlight lipgloss.Color
	OnLit     lipgloss.Color
	Pointer   lipgloss.Color

	// UI
	Border    lipgloss.Color
	Selection lipgloss.Color
	Prompt    lipgloss.Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// DefaultPalette returns the dark-background palette used when nothing is
// configured.
func DefaultPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("15"),
		Secondary: lipgloss.Color("245"),
		Muted:     lipgloss.Color("240"),
		Accent:    lipgloss.Color("214"),

		Success: lipgloss.Color("114"),
		Warning: lipgloss.Color("221"),
		Error:   lipgloss.Color("203"),
		Info:    lipgloss.Color("117"),

		Cell:      lipgloss.Color("111"),
		Highlight: lipgloss.Color("221"),
		OnLit:     lipgloss.Color("16"),
		Pointer:   lipgloss.Color("183"),

		Border:    lipgloss.Color("240"),
		Selection: lipgloss.Color("236"),
		Prompt:    lipgloss.Color("214"),
	}
}

// Styles are lipgloss styles derived from a palette.
type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Cell     lipgloss.Style
	Lit      lipgloss.Style
	Pointer  lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Selected lipgloss.Style
	Prompt   lipgloss.Style
	Panel    lipgloss.Style
}

// Styles builds the style set for t.
func (t *Theme) Styles() Styles {
	p := t.Palette
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	return Styles{
		Title:    fg(p.Accent).Bold(true),
		Subtle:   fg(p.Secondary),
		Muted:    fg(p.Muted),
		Accent:   fg(p.Accent),
		Cell:     fg(p.Cell),
		Lit:      fg(p.OnLit).Background(p.Highlight).Bold(true),
		Pointer:  fg(p.Pointer),
		Success:  fg(p.Success),
		Warning:  fg(p.Warning),
		Error:    fg(p.Error).Bold(true),
		Info:     fg(p.Info),
		Selected: fg(p.Primary).Background(p.Selection).Bold(true),
		Prompt:   fg(p.Prompt).Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
	}
}
