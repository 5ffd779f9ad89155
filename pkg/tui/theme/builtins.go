// ABOUTME: Built-in themes: dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import "github.com/charmbracelet/lipgloss"

var builtins = map[string]*Theme{
	"dark": {
		Name:    "dark",
		Palette: DefaultPalette(),
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Primary:   lipgloss.Color("0"),
			Secondary: lipgloss.Color("242"),
			Muted:     lipgloss.Color("249"),
			Accent:    lipgloss.Color("166"),

			Success: lipgloss.Color("28"),
			Warning: lipgloss.Color("130"),
			Error:   lipgloss.Color("160"),
			Info:    lipgloss.Color("25"),

			Cell:      lipgloss.Color("25"),
			Highlight: lipgloss.Color("220"),
			OnLit:     lipgloss.Color("0"),
			Pointer:   lipgloss.Color("91"),

			Border:    lipgloss.Color("249"),
			Selection: lipgloss.Color("254"),
			Prompt:    lipgloss.Color("166"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Primary:   lipgloss.Color("15"),
			Secondary: lipgloss.Color("250"),
			Muted:     lipgloss.Color("244"),
			Accent:    lipgloss.Color("15"),

			Success: lipgloss.Color("15"),
			Warning: lipgloss.Color("15"),
			Error:   lipgloss.Color("15"),
			Info:    lipgloss.Color("250"),

			Cell:      lipgloss.Color("15"),
			Highlight: lipgloss.Color("15"),
			OnLit:     lipgloss.Color("0"),
			Pointer:   lipgloss.Color("250"),

			Border:    lipgloss.Color("244"),
			Selection: lipgloss.Color("238"),
			Prompt:    lipgloss.Color("15"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"dark", "light", "monochrome"}
}
