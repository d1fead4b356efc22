package argon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme maps style categories to style descriptor strings ("bold dark_cyan",
// "#ff8700 italic"). The engine treats descriptors as opaque; interpreting
// them is the rendering backend's job. A missing key always falls back to the
// default theme, never a hard failure.
type Theme map[StyleCategory]string

// DefaultTheme returns the static default style mapping. Callers get a fresh
// copy; there is no shared mutable theme state.
func DefaultTheme() Theme {
	return Theme{
		CategoryArg:     "dark_cyan",
		CategoryDefault: "white italic",
		CategoryGroup:   "dark_orange bold",
		CategoryHelp:    "grey74",
		CategoryMetavar: "dark_green",
		CategoryText:    "grey74",
		CategoryProg:    "grey42",
		CategorySyntax:  "white italic bold",
	}
}

// Merge returns a new theme with override entries taking precedence per key.
// Neither receiver nor argument is modified.
func (t Theme) Merge(override Theme) Theme {
	merged := make(Theme, len(t)+len(override))
	for category, style := range t {
		merged[category] = style
	}
	for category, style := range override {
		merged[category] = style
	}
	return merged
}

// Style resolves one category, falling back to the default theme for
// unspecified keys. Categories unknown to both resolve to the empty
// descriptor (rendered unstyled).
func (t Theme) Style(category StyleCategory) string {
	if style, ok := t[category]; ok {
		return style
	}
	if style, ok := DefaultTheme()[category]; ok {
		return style
	}
	return ""
}

// themeFile mirrors the on-disk YAML layout:
//
//	theme:
//	  arg: dark_cyan
//	  group: dark_orange bold
type themeFile struct {
	Theme map[string]string `yaml:"theme"`
}

// LoadThemeFile reads theme overrides from a YAML file. Unknown category
// names are kept; they serve caller-defined categories bound to custom
// patterns.
func LoadThemeFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTheme, path, err)
	}

	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTheme, path, err)
	}
	if len(file.Theme) == 0 {
		return nil, fmt.Errorf("%w: %s: no theme mapping found", ErrInvalidTheme, path)
	}

	theme := make(Theme, len(file.Theme))
	for category, style := range file.Theme {
		theme[StyleCategory(category)] = style
	}
	return theme, nil
}
