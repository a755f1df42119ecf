package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the wizard framework.
type Theme struct {
	TextColor       sdl.Color // Default text color
	HintColor       sdl.Color // Help text, footer hints
	BackgroundColor sdl.Color // Screen background color
	AccentColor     sdl.Color // Current-page progress markers, arrows
	ReachedColor    sdl.Color // Progress markers up to the furthest page reached
	OutlineColor    sdl.Color // Wireframe progress marker outlines
	FontPath        string    // Path to the primary UI font
}

var currentTheme Theme

// DefaultTheme returns the built-in theme used when the host application
// does not install its own.
func DefaultTheme() Theme {
	return Theme{
		TextColor:       sdl.Color{R: 255, G: 255, B: 255, A: 255},
		HintColor:       sdl.Color{R: 180, G: 180, B: 180, A: 255},
		BackgroundColor: sdl.Color{R: 0, G: 0, B: 0, A: 255},
		AccentColor:     sdl.Color{R: 147, G: 112, B: 219, A: 255},
		ReachedColor:    sdl.Color{R: 220, G: 220, B: 220, A: 255},
		OutlineColor:    sdl.Color{R: 120, G: 120, B: 120, A: 255},
		FontPath:        "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}
}

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value to an opaque SDL color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
