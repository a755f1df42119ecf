// Package internal contains the core infrastructure for the sfoglia wizard
// framework: SDL initialization, window and font management, theming, and
// logging. Types and functions in this package are not part of the public API.
package internal

import (
	"os"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func Init(title string, winOpts WindowOptions) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		os.Exit(1)
	}

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Borderless: true, Resizable: true}
		} else {
			winOpts = WindowOptions{Resizable: true}
		}
	}

	window = initWindow(title, winOpts)

	initFonts(DefaultFontSizes)
}

func SDLCleanup() {
	window.closeWindow()
	closeFonts()
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
