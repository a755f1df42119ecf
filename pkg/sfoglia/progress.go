package sfoglia

import (
	"fmt"
	"math"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
)

// ProgressBar mirrors a pages.Controller as a row of page markers joined by
// connectors. Three layers draw largest to smallest: an outline for every
// page, a "reached" layer up to the furthest page entered, and a "current"
// layer up to the displayed page. Register it on the controller with
// pages.WithObserver.
//
// ProgressBar belongs to the render goroutine; observer callbacks arrive
// synchronously from controller calls made there.
type ProgressBar struct {
	style    ProgressStyle
	bounds   sdl.Rect
	numPages int
	current  int
	upTo     int
	labels   []string
	cache    *internal.TextureCache
	arrows   *arrowSet
}

type marker struct {
	x, y float64
}

// NewProgressBar creates a progress bar with the given style. Call
// SetBounds before rendering.
func NewProgressBar(style ProgressStyle) *ProgressBar {
	if len(style.Ratios) != 3 {
		style.Ratios = DefaultProgressStyle().Ratios
	}
	return &ProgressBar{
		style:   style,
		current: -1,
		upTo:    -1,
		cache:   internal.NewTextureCache(),
	}
}

// SetBounds places the bar within the window.
func (pb *ProgressBar) SetBounds(bounds sdl.Rect) {
	pb.bounds = bounds
}

// SetLabels sets the per-page labels drawn under the markers when the
// style enables bar labels.
func (pb *ProgressBar) SetLabels(labels []string) {
	pb.labels = labels
}

// PageCountChanged implements pages.Observer.
func (pb *ProgressBar) PageCountChanged(count int) {
	pb.numPages = count
}

// PageChanged implements pages.Observer.
func (pb *ProgressBar) PageChanged(current, upTo int) {
	pb.current = current
	pb.upTo = upTo
}

// Destroy releases cached textures.
func (pb *ProgressBar) Destroy() {
	pb.cache.Destroy()
	if pb.arrows != nil {
		pb.arrows.destroy()
		pb.arrows = nil
	}
}

// Render draws the bar into its bounds.
func (pb *ProgressBar) Render(renderer *sdl.Renderer) {
	if pb.numPages == 0 {
		return
	}

	theme := internal.GetTheme()
	markers, maxR := pb.layout()

	if pb.style.BarLabels {
		pb.drawLabels(renderer, markers, theme)
	}

	pb.drawLayer(renderer, markers, maxR*pb.style.Ratios[0], pb.style.Outer, theme.OutlineColor)

	reached := pb.upTo
	if reached < 0 || reached >= pb.numPages {
		// No ceiling recorded: every page counts as reachable.
		reached = pb.numPages - 1
	}
	pb.drawLayer(renderer, markers[:reached+1], maxR*pb.style.Ratios[1], pb.style.Reached, theme.ReachedColor)

	if current := min(pb.current, pb.numPages-1); current >= 0 {
		pb.drawLayer(renderer, markers[:current+1], maxR*pb.style.Ratios[2], pb.style.Current, theme.AccentColor)
	}

	if pb.style.Arrows {
		pb.drawArrows(renderer, theme)
	}
}

// HitTest maps window coordinates to the page marker under them, or -1.
func (pb *ProgressBar) HitTest(x, y int32) int {
	if pb.numPages == 0 {
		return -1
	}
	markers, maxR := pb.layout()
	rsq := math.Pow(maxR*pb.style.Ratios[0], 2)
	for i, m := range markers {
		if distSq(m.x, m.y, float64(x), float64(y)) <= rsq {
			return i
		}
	}
	return -1
}

// ArrowHitTest reports a click on the navigation chevrons: -1 for back,
// +1 for forward, 0 for neither.
func (pb *ProgressBar) ArrowHitTest(x, y int32) int {
	if !pb.style.Arrows {
		return 0
	}
	point := sdl.Point{X: x, Y: y}
	left, right := pb.arrowRects()
	if point.InRect(&left) {
		return -1
	}
	if point.InRect(&right) {
		return 1
	}
	return 0
}

// layout spreads the page markers evenly across the marker area and
// returns them with the largest usable radius.
func (pb *ProgressBar) layout() ([]marker, float64) {
	area := pb.markerArea()
	y := float64(area.Y) + float64(area.H)/2
	spacing := float64(area.W) / float64(pb.numPages)

	markers := make([]marker, pb.numPages)
	x := float64(area.X) + spacing/2
	for i := range markers {
		markers[i] = marker{x: x, y: y}
		x += spacing
	}

	maxR := math.Min(float64(area.H)/2, spacing/2) * 0.9
	return markers, maxR
}

// markerArea is the bounds minus the chevron squares at either edge.
func (pb *ProgressBar) markerArea() sdl.Rect {
	area := pb.bounds
	if pb.style.Arrows {
		inset := area.H
		area.X += inset
		area.W -= 2 * inset
	}
	return area
}

func (pb *ProgressBar) arrowRects() (left, right sdl.Rect) {
	size := pb.bounds.H
	left = sdl.Rect{X: pb.bounds.X, Y: pb.bounds.Y, W: size, H: size}
	right = sdl.Rect{X: pb.bounds.X + pb.bounds.W - size, Y: pb.bounds.Y, W: size, H: size}
	return left, right
}

func (pb *ProgressBar) drawLayer(renderer *sdl.Renderer, markers []marker, r float64, layer ProgressLayerStyle, fallback sdl.Color) {
	if len(markers) == 0 {
		return
	}
	colour := layer.colour(fallback)

	if len(markers) == 1 {
		pb.drawMarker(renderer, markers[0], r, layer, markerSingle, colour)
		return
	}

	theta := layer.Theta * math.Pi / 180
	rct := r * math.Cos(theta)
	rst := r * math.Sin(theta)

	for i := 0; i < len(markers)-1; i++ {
		pb.drawConnector(renderer, markers[i], markers[i+1], rct, rst, layer.Mode, colour)
	}
	for i, m := range markers {
		pos := markerMiddle
		switch i {
		case 0:
			pos = markerFirst
		case len(markers) - 1:
			pos = markerLast
		}
		pb.drawMarker(renderer, m, r, layer, pos, colour)
	}
}

type markerPos int

const (
	markerSingle markerPos = iota // No connectors
	markerFirst                   // Connector on the right only
	markerMiddle                  // Connectors on both sides
	markerLast                    // Connector on the left only
)

func (pb *ProgressBar) drawConnector(renderer *sdl.Renderer, a, b marker, rct, rst float64, mode ProgressMode, colour sdl.Color) {
	x1 := int32(a.x + rct)
	x2 := int32(b.x - rct)
	yTop := int32(a.y - rst)
	yBottom := int32(a.y + rst)

	if mode == ProgressModeWireframe {
		gfx.LineColor(renderer, x1, yTop, x2, yTop, colour)
		gfx.LineColor(renderer, x1, yBottom, x2, yBottom, colour)
		return
	}
	gfx.BoxColor(renderer, x1, yTop, x2, yBottom, colour)
}

// drawMarker draws one page circle. Wireframe markers leave arc gaps where
// connectors attach so outlines read as a continuous track.
func (pb *ProgressBar) drawMarker(renderer *sdl.Renderer, m marker, r float64, layer ProgressLayerStyle, pos markerPos, colour sdl.Color) {
	x, y, rad := int32(m.x), int32(m.y), int32(r)

	if layer.Mode == ProgressModeFilled {
		gfx.FilledCircleColor(renderer, x, y, rad, colour)
		gfx.AACircleColor(renderer, x, y, rad, colour)
		return
	}

	theta := int32(layer.Theta)
	switch pos {
	case markerSingle:
		gfx.AACircleColor(renderer, x, y, rad, colour)
	case markerFirst:
		gfx.ArcColor(renderer, x, y, rad, theta, 360-theta, colour)
	case markerLast:
		gfx.ArcColor(renderer, x, y, rad, 180+theta, 180-theta, colour)
	case markerMiddle:
		gfx.ArcColor(renderer, x, y, rad, theta, 180-theta, colour)
		gfx.ArcColor(renderer, x, y, rad, 180+theta, 360-theta, colour)
	}
}

func (pb *ProgressBar) drawLabels(renderer *sdl.Renderer, markers []marker, theme internal.Theme) {
	font := internal.Fonts.SmallFont
	if font == nil || len(pb.labels) == 0 || len(pb.labels) > len(markers) {
		return
	}

	labelY := pb.bounds.Y + pb.bounds.H - int32(font.Height())

	for i, label := range pb.labels {
		if label == "" {
			continue
		}
		key := fmt.Sprintf("label:%d:%s", i, label)
		texture := pb.cache.GetOrCreate(key, func() *sdl.Texture {
			surface, err := font.RenderUTF8Blended(label, theme.HintColor)
			if err != nil {
				return nil
			}
			defer surface.Free()
			texture, err := renderer.CreateTextureFromSurface(surface)
			if err != nil {
				return nil
			}
			return texture
		})
		if texture == nil {
			continue
		}
		_, _, w, h, err := texture.Query()
		if err != nil {
			continue
		}
		rect := sdl.Rect{X: int32(markers[i].x) - w/2, Y: labelY, W: w, H: h}
		renderer.Copy(texture, nil, &rect)
	}
}

func (pb *ProgressBar) drawArrows(renderer *sdl.Renderer, theme internal.Theme) {
	left, right := pb.arrowRects()

	if pb.arrows == nil {
		arrows, err := newArrowSet(renderer, left.H, theme.AccentColor)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to rasterize navigation arrows", "error", err)
			pb.style.Arrows = false
			return
		}
		pb.arrows = arrows
	}

	if pb.current > 0 {
		renderer.Copy(pb.arrows.left, nil, &left)
	}
	if pb.current >= 0 && pb.current < pb.numPages-1 {
		renderer.Copy(pb.arrows.right, nil, &right)
	}
}

func distSq(x1, y1, x2, y2 float64) float64 {
	return (x2-x1)*(x2-x1) + (y2-y1)*(y2-y1)
}
