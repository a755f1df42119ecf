package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the fonts used across the framework, opened once at init.
type FontSet struct {
	LargeFont  *ttf.Font // Page titles
	MediumFont *ttf.Font // Body text, option labels
	SmallFont  *ttf.Font // Footer hints, progress bar labels
}

// FontSizes configures the point sizes for the three font slots.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

// DefaultFontSizes are tuned for 1024x768 and scale acceptably on
// handheld displays.
var DefaultFontSizes = FontSizes{Large: 40, Medium: 28, Small: 20}

// Fonts is the active font set. Valid after Init.
var Fonts FontSet

func initFonts(sizes FontSizes) {
	path := GetTheme().FontPath

	Fonts = FontSet{
		LargeFont:  openFontOrNil(path, sizes.Large),
		MediumFont: openFontOrNil(path, sizes.Medium),
		SmallFont:  openFontOrNil(path, sizes.Small),
	}
}

func openFontOrNil(path string, size int) *ttf.Font {
	font, err := ttf.OpenFont(path, size)
	if err != nil {
		GetInternalLogger().Error("Failed to open font", "path", path, "size", size, "error", err)
		return nil
	}
	return font
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}
