package theme

import (
	"image/color"
)

// Theme defines the color palette for the application UI.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background around the canvas
	Canvas     color.RGBA // Sketch surface
	Ink        color.RGBA // Default marker and sticker color

	// Toolbar
	ToolbarBackground        color.RGBA
	ButtonBackground         color.RGBA
	ButtonBackgroundHover    color.RGBA
	ButtonBackgroundPress    color.RGBA
	ButtonBackgroundDisabled color.RGBA
	ButtonText               color.RGBA
	ButtonTextDisabled       color.RGBA
	ButtonBorder             color.RGBA

	// Status bar
	StatusBackground color.RGBA
	StatusText       color.RGBA
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                     "Default",
		Background:               color.RGBA{220, 220, 220, 255},
		Canvas:                   color.RGBA{255, 255, 255, 255},
		Ink:                      color.RGBA{0, 0, 0, 255},
		ToolbarBackground:        color.RGBA{220, 220, 220, 255},
		ButtonBackground:         color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover:    color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress:    color.RGBA{150, 150, 150, 255},
		ButtonBackgroundDisabled: color.RGBA{225, 225, 225, 255},
		ButtonText:               color.RGBA{0, 0, 0, 255},
		ButtonTextDisabled:       color.RGBA{160, 160, 160, 255},
		ButtonBorder:             color.RGBA{0, 0, 0, 255},
		StatusBackground:         color.RGBA{220, 220, 220, 255},
		StatusText:               color.RGBA{0, 0, 0, 255},
	}
}
