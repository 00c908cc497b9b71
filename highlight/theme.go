package highlight

import (
	"maps"
	"slices"
	"strings"

	"github.com/iw2rmb/quire/ui"
)

// Theme maps capture names to colors.
//
// A capture without an exact entry falls back to its dotted prefixes, so
// "function.builtin.static" tries "function.builtin" and then "function".
type Theme struct {
	colors map[string]ui.Color
}

// NewTheme returns a theme holding a copy of colors.
func NewTheme(colors map[string]ui.Color) *Theme {
	return &Theme{colors: maps.Clone(colors)}
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() *Theme {
	return NewTheme(map[string]ui.Color{
		"attribute":      ui.NewColor(0xff, 0x00, 0x00),
		"comment":        ui.NewColor(0x4e, 0x4e, 0x4e),
		"constant":       ui.NewColor(0x00, 0x87, 0x87),
		"escape":         ui.NewColor(0xff, 0xd7, 0x00),
		"function":       ui.NewColor(0xff, 0x87, 0x00),
		"function.macro": ui.NewColor(0xff, 0x00, 0x00),
		"keyword":        ui.NewColor(0xff, 0xff, 0x00),
		"label":          ui.NewColor(0xff, 0xff, 0x00),
		"number":         ui.NewColor(0x00, 0x87, 0x87),
		"operator":       ui.NewColor(0xff, 0xff, 0x00),
		"string":         ui.NewColor(0x5f, 0x87, 0xd7),
		"type":           ui.NewColor(0x00, 0xff, 0x00),
	})
}

// With returns a copy of t where name maps to color.
func (t *Theme) With(name string, color ui.Color) *Theme {
	colors := maps.Clone(t.colors)
	if colors == nil {
		colors = make(map[string]ui.Color, 1)
	}
	colors[name] = color
	return &Theme{colors: colors}
}

// Names returns the capture names with an explicit entry, sorted.
func (t *Theme) Names() []string {
	return slices.Sorted(maps.Keys(t.colors))
}

// Resolve returns the color for a capture name and the theme entry that
// matched it. ok is false when neither the name nor any of its dotted
// prefixes has an entry.
func (t *Theme) Resolve(name string) (color ui.Color, matched string, ok bool) {
	for candidate := name; ; {
		if c, found := t.colors[candidate]; found {
			return c, candidate, true
		}
		i := strings.LastIndexByte(candidate, '.')
		if i < 0 {
			return ui.Color{}, "", false
		}
		candidate = candidate[:i]
	}
}
