// internal/platform/ui/colors.go
package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Palette used by the terminal renderers.
var (
	// EmberOrange - group counts
	EmberOrange = pterm.NewRGB(255, 107, 53)

	// MoltenGold - highlighted URL fragments
	MoltenGold = pterm.NewRGB(255, 182, 39)

	// GhostCyan - facet values
	GhostCyan = pterm.NewRGB(0, 206, 209)

	// AshGray - secondary text (kind labels, "more" markers)
	AshGray = pterm.NewRGB(128, 128, 128)
)

// Theme maps text roles to styling functions. The zero-colour theme returns text unchanged.
type Theme struct {
	Count     func(a ...interface{}) string
	Value     func(a ...interface{}) string
	Secondary func(a ...interface{}) string
	Highlight func(a ...interface{}) string
}

// NewTheme returns the palette theme, or a plain one when color is false.
func NewTheme(color bool) Theme {
	if !color {
		plain := func(a ...interface{}) string { return fmt.Sprint(a...) }
		return Theme{Count: plain, Value: plain, Secondary: plain, Highlight: plain}
	}
	return Theme{
		Count:     EmberOrange.Sprint,
		Value:     GhostCyan.Sprint,
		Secondary: AshGray.Sprint,
		Highlight: func(a ...interface{}) string { return pterm.Bold.Sprint(MoltenGold.Sprint(a...)) },
	}
}

// Mark adapts the highlight style to a string marker.
func (t Theme) Mark(s string) string {
	return t.Highlight(s)
}
