// ABOUTME: YAML theme file loading with default fallback, and name-or-path resolution
// ABOUTME: Unset palette fields inherit from DefaultPalette to ensure completeness

package theme

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// filePalette is the on-disk representation of a Palette.
type filePalette struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Muted     string `yaml:"muted"`
	Accent    string `yaml:"accent"`

	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
	Info    string `yaml:"info"`

	Cell      string `yaml:"cell"`
	Highlight string `yaml:"highlight"`
	OnLit     string `yaml:"on_lit"`
	Pointer   string `yaml:"pointer"`

	Border    string `yaml:"border"`
	Selection string `yaml:"selection"`
	Prompt    string `yaml:"prompt"`
}

type fileTheme struct {
	Name    string      `yaml:"name"`
	Palette filePalette `yaml:"palette"`
}

// LoadFile reads a YAML theme file. Missing palette fields fall back to
// DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var ft fileTheme
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}
	if ft.Name == "" {
		ft.Name = path
	}

	return &Theme{
		Name:    ft.Name,
		Palette: convertPalette(ft.Palette, DefaultPalette()),
	}, nil
}

// Resolve returns the builtin theme called name, or loads name as a file
// when it looks like a path.
func Resolve(name string) (*Theme, error) {
	if t := Builtin(name); t != nil {
		return t, nil
	}
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return LoadFile(name)
	}
	return nil, fmt.Errorf("unknown theme %q (builtin: %s)", name, strings.Join(BuiltinNames(), ", "))
}

// convertPalette maps filePalette fields onto a Palette by field name,
// keeping base for empty fields.
func convertPalette(fp filePalette, base Palette) Palette {
	p := base

	fv := reflect.ValueOf(fp)
	pv := reflect.ValueOf(&p).Elem()
	ft := fv.Type()

	for i := range ft.NumField() {
		val := fv.Field(i).String()
		if val == "" {
			continue
		}
		pf := pv.FieldByName(ft.Field(i).Name)
		if pf.IsValid() && pf.CanSet() {
			pf.Set(reflect.ValueOf(lipgloss.Color(val)))
		}
	}

	return p
}
