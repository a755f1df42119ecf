package internal

import (
	"github.com/caarlos0/env/v11"
)

// devWindowConfig holds the dev-mode window geometry, read from the
// environment. On device the window always matches the display mode.
type devWindowConfig struct {
	Width  int32 `env:"WINDOW_WIDTH" envDefault:"1024"`
	Height int32 `env:"WINDOW_HEIGHT" envDefault:"768"`
}

func loadDevWindowConfig() devWindowConfig {
	cfg, err := env.ParseAs[devWindowConfig]()
	if err != nil {
		GetInternalLogger().Warn("Invalid window geometry in environment; using defaults", "error", err)
		return devWindowConfig{Width: 1024, Height: 768}
	}
	return cfg
}
