package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions for the HUD
var (
	RgbLabel      = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBar  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbHeldKey    = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbDeath      = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbMuted      = tcell.NewRGBColor(120, 120, 120) // Gray
)

// Gradient endpoints for attribute levels
var (
	levelLow  = colorful.Color{R: 0.90, G: 0.20, B: 0.20}
	levelHigh = colorful.Color{R: 0.25, G: 0.85, B: 0.35}
)

// LevelColor maps an attribute in [0,100] onto the low-high gradient
// Out of range values pin to the endpoints
func LevelColor(value int) tcell.Color {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	c := levelLow.BlendHcl(levelHigh, float64(value)/100).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
