// Package sfoglia provides a guarded multi-page wizard component for SDL
// applications on embedded Linux devices.
//
// The navigation rules live in the pages subpackage: every page carries an
// enter and a leave guard, and the pages.Controller decides which
// transitions are allowed, which pages are skimmed, and where navigation
// falls back to when a guard vetoes. This package supplies the rendering on
// top: a progress indicator mirroring the controller state, wizard page
// drawing, and input handling including optional hardware page-turn keys.
package sfoglia

import (
	"log/slog"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
)

// Options configures sfoglia initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	Theme                *internal.Theme        // Custom theme; nil uses the built-in default
	PrimaryThemeColorHex uint32                 // Custom accent color applied over the theme
	LogPath              string                 // Full path for log file including filename (creates parent directories)
}

// Init initializes the SDL subsystems, theming, and fonts.
// Must be called before any other sfoglia functions.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	theme := internal.DefaultTheme()
	if options.Theme != nil {
		theme = *options.Theme
	}
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	internal.Init(options.WindowTitle, options.WindowOptions)
}

// Close releases all SDL resources and shuts down the framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g. "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
