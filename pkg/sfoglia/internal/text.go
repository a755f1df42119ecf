package internal

import (
	"strings"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText draws a single line of text at (x, y) and returns its width.
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, x, y int32, color sdl.Color) int32 {
	if text == "" || font == nil {
		return 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0
	}
	defer texture.Destroy()

	rect := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	renderer.Copy(texture, nil, &rect)
	return surface.W
}

// TextWidth returns the rendered width of text, or 0 on measurement failure.
func TextWidth(font *ttf.Font, text string) int32 {
	if font == nil {
		return 0
	}
	width, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(width)
}

// WrapText splits text into lines no wider than maxWidth. Explicit
// newlines are preserved; words longer than maxWidth get a line of
// their own.
func WrapText(font *ttf.Font, text string, maxWidth int32) []string {
	var wrapped []string

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			wrapped = append(wrapped, "")
			continue
		}

		currentLine := ""
		for _, word := range strings.Fields(line) {
			testLine := currentLine
			if testLine != "" {
				testLine += " "
			}
			testLine += word

			if TextWidth(font, testLine) > maxWidth && currentLine != "" {
				wrapped = append(wrapped, currentLine)
				currentLine = word
			} else {
				currentLine = testLine
			}
		}
		if currentLine != "" {
			wrapped = append(wrapped, currentLine)
		}
	}

	return wrapped
}

// RenderMultilineText word-wraps text to maxWidth and draws it starting at
// y, aligned relative to x (left edge, center, or right edge depending on
// align). Returns the total height drawn.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font,
	maxWidth, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	if font == nil {
		return 0
	}

	lineHeight := int32(font.Height())
	lineSpacing := lineHeight / 5

	currentY := y
	for _, line := range WrapText(font, text, maxWidth) {
		if line != "" {
			lineX := x
			switch align {
			case constants.TextAlignCenter:
				lineX = x - TextWidth(font, line)/2
			case constants.TextAlignRight:
				lineX = x - TextWidth(font, line)
			}
			RenderText(renderer, line, font, lineX, currentY, color)
		}
		currentY += lineHeight + lineSpacing
	}

	return currentY - y
}
