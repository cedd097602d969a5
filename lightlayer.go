package tileshade

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Light is a point light in a LightLayer. Position and radius are in tile
// units so lights stay attached to the map while the display scrolls.
type Light struct {
	// X and Y are the light's center in tile coordinates.
	X, Y float64
	// Radius is the lit radius in tiles.
	Radius float64
	// Intensity controls brightness in [0, 1].
	Intensity float64
	// Enabled determines whether this light is drawn during Redraw.
	Enabled bool
	// Color tints the lit area. Zero value or white means no tint.
	Color Color
}

// LightLayer renders ambient darkness with feathered holes punched out at
// each light, typically composited over the scene after the shadow filter.
// It pairs with DayCycle: feed AmbientDarkness into SetAmbient each frame
// and night scenes darken while lights keep their surroundings visible.
type LightLayer struct {
	image        *ebiten.Image
	w, h         int
	tileW, tileH int
	lights       []*Light
	ambient      float64
	circleCache  map[int]*ebiten.Image // feathered circles keyed by pixel radius
	imgOp        ebiten.DrawImageOptions
}

// NewLightLayer creates a light layer covering (w x h) pixels over a map
// with the given tile dimensions.
func NewLightLayer(w, h, tileW, tileH int) *LightLayer {
	return &LightLayer{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
		tileW: tileW,
		tileH: tileH,
	}
}

// AddLight adds a light to the layer.
func (ll *LightLayer) AddLight(l *Light) {
	ll.lights = append(ll.lights, l)
}

// RemoveLight removes a light from the layer.
func (ll *LightLayer) RemoveLight(l *Light) {
	for i, existing := range ll.lights {
		if existing == l {
			ll.lights = append(ll.lights[:i], ll.lights[i+1:]...)
			return
		}
	}
}

// ClearLights removes all lights from the layer.
func (ll *LightLayer) ClearLights() {
	ll.lights = ll.lights[:0]
}

// Lights returns the current light list. The returned slice MUST NOT be
// mutated.
func (ll *LightLayer) Lights() []*Light {
	return ll.lights
}

// SetAmbient sets the base darkness level (0 = fully transparent, 1 = black).
func (ll *LightLayer) SetAmbient(a float64) {
	ll.ambient = a
}

// Ambient returns the current ambient darkness level.
func (ll *LightLayer) Ambient() float64 {
	return ll.ambient
}

// Redraw rebuilds the overlay texture for the given display scroll offset
// (in tile units, sub-tile precision allowed). Call every frame before
// Compose.
func (ll *LightLayer) Redraw(offsetX, offsetY float64) {
	target := ll.image
	target.Clear()

	a := clamp01(ll.ambient)
	if a == 0 {
		return
	}
	target.Fill(Color{A: a}.toRGBA())

	op := &ll.imgOp
	for _, l := range ll.lights {
		if !l.Enabled || l.Radius <= 0 {
			continue
		}
		intensity := clamp01(l.Intensity)
		if intensity == 0 {
			continue
		}

		sx := (l.X - offsetX) * float64(ll.tileW)
		sy := (l.Y - offsetY) * float64(ll.tileH)
		radiusPx := l.Radius * float64(ll.tileW)
		if sx+radiusPx < 0 || sx-radiusPx > float64(ll.w) ||
			sy+radiusPx < 0 || sy-radiusPx > float64(ll.h) {
			continue
		}

		circle := ll.getCircle(radiusPx)
		size := float64(circle.Bounds().Dx())
		scale := radiusPx * 2 / size

		// Erase pass: punch a hole in the darkness.
		op.GeoM.Reset()
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(sx-radiusPx, sy-radiusPx)
		op.ColorScale.Reset()
		op.ColorScale.Scale(float32(intensity), float32(intensity), float32(intensity), float32(intensity))
		op.Blend = ebiten.BlendDestinationOut
		target.DrawImage(circle, op)

		// Tint pass: additive color for non-white lights.
		c := l.Color
		if c != (Color{}) && c != ColorWhite {
			op.GeoM.Reset()
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(sx-radiusPx, sy-radiusPx)
			op.ColorScale.Reset()
			tint := float32(intensity * 0.3)
			op.ColorScale.Scale(float32(c.R)*tint, float32(c.G)*tint, float32(c.B)*tint, tint)
			op.Blend = ebiten.BlendLighter
			target.DrawImage(circle, op)
		}
	}
}

// Compose draws the overlay onto dst with standard alpha blending.
func (ll *LightLayer) Compose(dst *ebiten.Image) {
	op := &ll.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.Blend = ebiten.BlendSourceOver
	dst.DrawImage(ll.image, op)
}

// getCircle returns a cached feathered circle texture for the given pixel
// radius, generating one on first use. Radius is quantized to the nearest
// integer to avoid near-duplicate textures.
func (ll *LightLayer) getCircle(radius float64) *ebiten.Image {
	key := int(math.Ceil(radius))
	if key < 1 {
		key = 1
	}
	if ll.circleCache == nil {
		ll.circleCache = make(map[int]*ebiten.Image)
	}
	if img, ok := ll.circleCache[key]; ok {
		return img
	}
	img := generateCircle(float64(key))
	ll.circleCache[key] = img
	return img
}

// Dispose releases all resources owned by the light layer.
func (ll *LightLayer) Dispose() {
	if ll.image != nil {
		ll.image.Deallocate()
		ll.image = nil
	}
	for _, img := range ll.circleCache {
		img.Deallocate()
	}
	ll.circleCache = nil
	ll.lights = nil
}

// generateCircle creates a feathered white circle image with the given
// radius. Uses smoothstep falloff and premultiplied alpha.
func generateCircle(radius float64) *ebiten.Image {
	size := int(math.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	pix := make([]byte, size*size*4)

	cx, cy := radius, radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := math.Sqrt(dx*dx+dy*dy) / radius

			var alpha float64
			if dist < 1 {
				t := 1 - dist
				alpha = t * t * (3 - 2*t)
			}

			a := uint8(alpha * 255)
			off := (y*size + x) * 4
			pix[off+0] = a // premultiplied white
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	img.WritePixels(pix)
	return img
}
