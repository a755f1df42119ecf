package sfoglia

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FooterHelpItem pairs a button name with its action for the help footer.
type FooterHelpItem struct {
	ButtonName string // e.g. "A", "←/→"
	HelpText   string // e.g. "Next"
}

// renderFooter draws the help items centered along the bottom edge.
func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []FooterHelpItem, marginBottom int32) {
	if font == nil || len(items) == 0 {
		return
	}

	theme := internal.GetTheme()
	window := internal.GetWindow()

	const gap = int32(40)
	const pairGap = int32(12)

	totalWidth := -gap
	for _, item := range items {
		totalWidth += internal.TextWidth(font, item.ButtonName) + pairGap +
			internal.TextWidth(font, item.HelpText) + gap
	}

	x := (window.GetWidth() - totalWidth) / 2
	y := window.GetHeight() - marginBottom - int32(font.Height())

	for _, item := range items {
		x += internal.RenderText(renderer, item.ButtonName, font, x, y, theme.AccentColor) + pairGap
		x += internal.RenderText(renderer, item.HelpText, font, x, y, theme.HintColor) + gap
	}
}
