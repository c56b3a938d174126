package theme

import (
	"image/color"
)

// Theme defines the colour palette of the editor window.
type Theme struct {
	Name string

	// Window
	Background color.RGBA // Area around the image
	Foreground color.RGBA // Welcome text

	// Status bar
	StatusBackground color.RGBA
	StatusText       color.RGBA
	StatusMessage    color.RGBA // Transient messages
	StatusBorder     color.RGBA

	// Canvas
	CheckerLight  color.RGBA // Shown through transparent image pixels
	CheckerDark   color.RGBA
	CursorOutline color.RGBA // Pen and pan cursor outline
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:             "Default",
		Background:       color.RGBA{220, 220, 220, 255},
		Foreground:       color.RGBA{0, 0, 0, 255},
		StatusBackground: color.RGBA{236, 236, 236, 255},
		StatusText:       color.RGBA{0, 0, 0, 255},
		StatusMessage:    color.RGBA{0, 0, 128, 255},
		StatusBorder:     color.RGBA{180, 180, 180, 255},
		CheckerLight:     color.RGBA{220, 220, 220, 255},
		CheckerDark:      color.RGBA{192, 192, 192, 255},
		CursorOutline:    color.RGBA{0, 0, 0, 255},
	}
}
