// Package constants defines shared constants and configuration values used
// throughout the sfoglia wizard framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// WindowWidthEnvVar is the environment variable name for the dev-mode window width.
const WindowWidthEnvVar = "WINDOW_WIDTH"

// WindowHeightEnvVar is the environment variable name for the dev-mode window height.
const WindowHeightEnvVar = "WINDOW_HEIGHT"

// PageKeyDeviceEnvVar is the environment variable name for the hardware
// page-key input device path.
const PageKeyDeviceEnvVar = "PAGE_KEY_DEVICE"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// DefaultInputDelay is the debounce delay between input events.
const DefaultInputDelay = 20 * time.Millisecond
