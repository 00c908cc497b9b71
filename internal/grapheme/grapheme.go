// Package grapheme measures text in terminal cells.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// ClusterWidth returns the cell width of a single grapheme cluster.
//
// Tabs and other control characters take one cell, the way ui.Screen stores
// them; tabs are not expanded.
func ClusterWidth(cluster string) int {
	if isControl(cluster) {
		return 1
	}
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		// runewidth reports 0 for some emoji sequences that uniseg sizes correctly.
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// Width returns the cell width of text.
func Width(text string) int {
	if text == "" {
		return 0
	}
	total := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		total += ClusterWidth(g.Str())
	}
	return total
}

func isControl(cluster string) bool {
	for _, r := range cluster {
		if r >= 0x20 && r != 0x7f {
			return false
		}
	}
	return true
}
