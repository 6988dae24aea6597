// Package theme holds the colours used by the editor window and by exported
// renders.
package theme

import (
	"fmt"
	"image/color"
)

// Theme defines the colour palette for the editor.
type Theme struct {
	Name string

	Background color.RGBA // Window background around the drawing
	Foreground color.RGBA // Main text colour

	// Drawing
	Canvas    color.RGBA // Paper colour behind the shapes
	Highlight color.RGBA // Stroke colour of the selected shape
	Shadow    color.RGBA // Tint of the drop shadow on export

	// Status bar
	StatusBar    color.RGBA
	StatusText   color.RGBA
	StatusAccent color.RGBA // Active tool and unsaved marker
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:         "Default",
		Background:   color.RGBA{220, 220, 220, 255},
		Foreground:   color.RGBA{0, 0, 0, 255},
		Canvas:       color.RGBA{255, 255, 255, 255},
		Highlight:    color.RGBA{255, 255, 0, 255},
		Shadow:       color.RGBA{0, 0, 0, 255},
		StatusBar:    color.RGBA{200, 200, 200, 255},
		StatusText:   color.RGBA{0, 0, 0, 255},
		StatusAccent: color.RGBA{0, 90, 200, 255},
	}
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
