package sfoglia

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// ProgressMode selects how a progress layer is drawn.
type ProgressMode string

const (
	ProgressModeWireframe ProgressMode = "wireframe" // Outlines only
	ProgressModeFilled    ProgressMode = "filled"    // Solid markers and connectors
)

// ProgressLayerStyle configures one of the three progress bar layers.
type ProgressLayerStyle struct {
	Colour string       `toml:"colour"` // "#RRGGBB"; empty falls back to the theme
	Mode   ProgressMode `toml:"mode"`
	Theta  float64      `toml:"theta"` // Connector taper angle in degrees
}

// ProgressStyle configures the appearance of a ProgressBar. The three
// layers draw largest to smallest: the outer outline for every page, the
// reached layer up to the furthest page entered, and the current layer up
// to the displayed page.
type ProgressStyle struct {
	// Ratios scale the marker radius per layer (outer, reached, current).
	Ratios    []float64          `toml:"ratios"`
	BarLabels bool               `toml:"bar_labels"` // Draw page labels under the markers
	Arrows    bool               `toml:"arrows"`     // Draw clickable back/forward chevrons
	Outer     ProgressLayerStyle `toml:"outer"`
	Reached   ProgressLayerStyle `toml:"reached"`
	Current   ProgressLayerStyle `toml:"current"`
}

// DefaultProgressStyle returns the built-in progress bar appearance.
func DefaultProgressStyle() ProgressStyle {
	return ProgressStyle{
		Ratios:    []float64{7.0 / 9.0, 5.0 / 9.0, 1.0 / 3.0},
		BarLabels: false,
		Outer:     ProgressLayerStyle{Mode: ProgressModeWireframe, Theta: 30},
		Reached:   ProgressLayerStyle{Mode: ProgressModeFilled, Theta: 25},
		Current:   ProgressLayerStyle{Mode: ProgressModeFilled, Theta: 10},
	}
}

// LoadProgressStyle reads a progress style from a TOML file. Fields not
// present in the file keep their default values.
func LoadProgressStyle(path string) (ProgressStyle, error) {
	style := DefaultProgressStyle()
	if _, err := toml.DecodeFile(path, &style); err != nil {
		return ProgressStyle{}, NewInfrastructureError("load_style", err)
	}
	if err := style.validate(); err != nil {
		return ProgressStyle{}, NewInfrastructureError("load_style", err)
	}
	return style, nil
}

func (s ProgressStyle) validate() error {
	if len(s.Ratios) != 3 {
		return fmt.Errorf("ratios needs exactly 3 entries, got %d", len(s.Ratios))
	}
	for i, r := range s.Ratios {
		if r <= 0 || r > 1 {
			return fmt.Errorf("ratio %d out of range (0, 1]: %v", i, r)
		}
	}
	for _, layer := range []ProgressLayerStyle{s.Outer, s.Reached, s.Current} {
		switch layer.Mode {
		case ProgressModeWireframe, ProgressModeFilled:
		default:
			return fmt.Errorf("unknown progress mode %q", layer.Mode)
		}
		if layer.Colour != "" {
			if _, err := parseHexColour(layer.Colour); err != nil {
				return err
			}
		}
	}
	return nil
}

// colour resolves the layer colour, falling back to the given theme colour.
func (l ProgressLayerStyle) colour(fallback sdl.Color) sdl.Color {
	if l.Colour == "" {
		return fallback
	}
	c, err := parseHexColour(l.Colour)
	if err != nil {
		return fallback
	}
	return c
}

func parseHexColour(s string) (sdl.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return sdl.Color{}, fmt.Errorf("colour %q is not #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("colour %q is not #RRGGBB: %w", s, err)
	}
	return sdl.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
