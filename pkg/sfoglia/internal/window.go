package internal

import (
	"os"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer with frame timing state.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

func initWindow(title string, winOpts WindowOptions) *Window {
	x, y := int32(0), int32(0)
	var width, height int32

	if constants.IsDevMode() {
		winOpts.Borderless = false

		x, y = int32(50), int32(50)
		cfg := loadDevWindowConfig()
		width, height = cfg.Width, cfg.Height
	} else {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			GetInternalLogger().Error("Failed to get display mode!", "error", err)
			os.Exit(1)
		}
		width, height = displayMode.W, displayMode.H
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetInternalLogger().Error("Failed to create renderer!", "error", err)
		os.Exit(1)
	}

	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   sdlWindow,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}
}

func (w *Window) closeWindow() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
