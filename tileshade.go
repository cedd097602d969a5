package tileshade

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// FalloffType selects the curve by which shadow intensity fades at its edge.
// The numeric values are part of the shader contract and must not change.
type FalloffType int

const (
	FalloffNone   FalloffType = 0 // hard-edged shadows
	FalloffLinear FalloffType = 1 // linear fade over the shadow length
	FalloffSmooth FalloffType = 2 // smoothstep fade (default)
)

// ParseFalloff maps a falloff name to its FalloffType. "none" and "linear"
// select their curves; every other string (including "" and "smooth")
// selects FalloffSmooth.
func ParseFalloff(name string) FalloffType {
	switch name {
	case "none":
		return FalloffNone
	case "linear":
		return FalloffLinear
	default:
		return FalloffSmooth
	}
}

// String returns the falloff name as accepted by ParseFalloff.
func (f FalloffType) String() string {
	switch f {
	case FalloffNone:
		return "none"
	case FalloffLinear:
		return "linear"
	default:
		return "smooth"
	}
}

// placeholderTex is the shared 1x1 sentinel bound in place of a map texture
// that has not been supplied yet.
var placeholderTex *ebiten.Image

// PlaceholderTexture returns the shared 1x1 sentinel texture. Binding it
// keeps the shader's image slots populated before a real map exists, and
// passing it to SetTileTypeMap is an explicit no-op for the texture slot.
func PlaceholderTexture() *ebiten.Image {
	if placeholderTex == nil {
		placeholderTex = ebiten.NewImage(1, 1)
	}
	return placeholderTex
}

// IsPlaceholder reports whether tex is the sentinel returned by
// PlaceholderTexture. A nil texture counts as a placeholder.
func IsPlaceholder(tex *ebiten.Image) bool {
	return tex == nil || tex == placeholderTex
}

// Logf is an optional diagnostic sink. When non-nil it receives
// fire-and-forget log lines (filter construction, shader loads). Leaving it
// nil disables logging entirely.
var Logf func(format string, args ...any)

func logf(format string, args ...any) {
	if Logf != nil {
		Logf("[tileshade] "+format, args...)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
