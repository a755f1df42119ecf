package sfoglia

import (
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// Chevron shapes for the progress bar navigation arrows, drawn on a
// 24x24 viewbox. The fill colour is substituted per theme before
// rasterization.
const (
	leftChevronSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<path fill="%s" d="M15.41 7.41 14 6l-6 6 6 6 1.41-1.41L10.83 12z"/></svg>`
	rightChevronSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<path fill="%s" d="M8.59 16.59 10 18l6-6-6-6-1.41 1.41L13.17 12z"/></svg>`
)

type arrowSet struct {
	left  *sdl.Texture
	right *sdl.Texture
}

func newArrowSet(renderer *sdl.Renderer, size int32, colour sdl.Color) (*arrowSet, error) {
	fill := fmt.Sprintf("#%02x%02x%02x", colour.R, colour.G, colour.B)

	left, err := rasterizeSVG(renderer, fmt.Sprintf(leftChevronSVG, fill), size, size)
	if err != nil {
		return nil, err
	}
	right, err := rasterizeSVG(renderer, fmt.Sprintf(rightChevronSVG, fill), size, size)
	if err != nil {
		left.Destroy()
		return nil, err
	}
	return &arrowSet{left: left, right: right}, nil
}

func (a *arrowSet) destroy() {
	a.left.Destroy()
	a.right.Destroy()
}

// rasterizeSVG renders SVG markup into an SDL texture of the given size.
func rasterizeSVG(renderer *sdl.Renderer, svg string, w, h int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, NewInfrastructureError("parse_svg", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	scanner := rasterx.NewScannerGV(int(w), int(h), rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(int(w), int(h), scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]), w, h, 32, w*4, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, NewInfrastructureError("svg_surface", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, NewInfrastructureError("svg_texture", err)
	}
	return texture, nil
}
