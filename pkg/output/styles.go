package output

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Semantic style names
const (
	StyleTitle    = "Title"
	StylePrompt   = "Prompt"
	StyleOption   = "Option"
	StyleResult   = "Result"
	StyleError    = "Error"
	StyleMuted    = "Muted"
	StyleHeader   = "Header"
	StyleCategory = "Category"
	StyleFormula  = "Formula"
)

//go:embed embedded/styles.yaml
var defaultStyles []byte

// ColorDef is an adaptive color in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// StyleSheet is the parsed styles file
type StyleSheet struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// ParseStyleSheet decodes a YAML style sheet and checks that every color
// reference resolves
func ParseStyleSheet(data []byte) (*StyleSheet, error) {
	var sheet StyleSheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}
	for name, def := range sheet.Styles {
		for _, ref := range []string{def.Foreground, def.Background} {
			if ref == "" {
				continue
			}
			if _, ok := sheet.Colors[ref]; !ok {
				return nil, fmt.Errorf("style %s references unknown color %q", name, ref)
			}
		}
	}
	return &sheet, nil
}

// DefaultStyleSheet returns the embedded style sheet
func DefaultStyleSheet() *StyleSheet {
	sheet, err := ParseStyleSheet(defaultStyles)
	if err != nil {
		panic(fmt.Sprintf("embedded styles are invalid: %v", err))
	}
	return sheet
}

// build binds every style in the sheet to r
func (s *StyleSheet) build(r *lipgloss.Renderer) map[string]lipgloss.Style {
	colors := make(map[string]lipgloss.AdaptiveColor, len(s.Colors))
	for name, def := range s.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	styles := make(map[string]lipgloss.Style, len(s.Styles))
	for name, def := range s.Styles {
		style := r.NewStyle()
		if def.Bold {
			style = style.Bold(true)
		}
		if def.Italic {
			style = style.Italic(true)
		}
		if def.Underline {
			style = style.Underline(true)
		}
		if def.Foreground != "" {
			style = style.Foreground(colors[def.Foreground])
		}
		if def.Background != "" {
			style = style.Background(colors[def.Background])
		}
		styles[name] = style
	}
	return styles
}
