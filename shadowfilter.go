package tileshade

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Default uniform values applied at construction. Every field can be
// replaced through its setter afterwards.
const (
	defaultTileSize       = 48
	defaultShadowLength   = 4.0
	defaultShadowStrength = 0.5
	defaultStepSize       = 1.0
	defaultSunAngle       = math.Pi / 4
)

// TileTypeMapUpdate carries the optional arguments of SetTileTypeMap.
// Cols and Rows update the stored map size when non-zero; Padding updates
// the stored padding only when HasPadding is set (zero is a valid padding).
// Fields apply independently of whether the texture itself is replaced.
type TileTypeMapUpdate struct {
	Cols, Rows int
	Padding    int
	HasPadding bool
}

// ShadowFilter renders directional sun shadows as a screen-space pass:
// a Kage shader ray-marches through a per-tile region map (and optionally a
// wall-type map) and darkens occluded ground. The filter itself is pure
// uniform plumbing; setters translate high-level parameters (sun angle,
// shadow length, scroll offset) into shader uniforms read every frame.
//
// Map textures are borrowed references. The filter never disposes them;
// their producers own their lifetime.
//
// All methods must be called from the render goroutine. Setters never fail:
// inputs are coerced (step size clamping, falloff defaulting) rather than
// validated, and the last written value wins.
type ShadowFilter struct {
	shader *ebiten.Shader

	regionMap      *ebiten.Image
	tileTypeMap    *ebiten.Image
	hasTileTypeMap bool // latched true forever once a real map arrives

	// Persistent uniform buffers. The slice headers below are stored in the
	// uniforms map once at construction so per-frame updates write in place
	// without allocating (vec2 uniforms only; scalar uniforms are re-boxed
	// in their setters, which run on configuration change, not per frame).
	resolution       [2]float32
	tileSize         [2]float32
	displayOffset    [2]float32
	displayOffsetInt [2]float32
	regionMapSize    [2]float32
	tileTypeMapSize  [2]float32
	sunDir           [2]float32

	uniforms map[string]any
	vertices [4]ebiten.Vertex
	shaderOp ebiten.DrawTrianglesShaderOptions
}

// Two triangles covering the quad: TL-TR-BL, TR-BR-BL.
var quadIndices = []uint16{0, 1, 2, 1, 3, 2}

// NewShadowFilter creates a shadow filter for a viewport of the given pixel
// size. The shadow shader is loaded from lib up front; a missing or broken
// shader source fails construction rather than producing a half-initialized
// filter.
func NewShadowFilter(lib *ShaderLibrary, width, height int) (*ShadowFilter, error) {
	shader, err := lib.Load(ShaderSunShadow)
	if err != nil {
		return nil, err
	}

	f := &ShadowFilter{
		shader:      shader,
		regionMap:   PlaceholderTexture(),
		tileTypeMap: PlaceholderTexture(),
		uniforms:    make(map[string]any, 14),
	}
	f.uniforms["Resolution"] = f.resolution[:]
	f.uniforms["TileSize"] = f.tileSize[:]
	f.uniforms["DisplayOffset"] = f.displayOffset[:]
	f.uniforms["DisplayOffsetInt"] = f.displayOffsetInt[:]
	f.uniforms["RegionMapSize"] = f.regionMapSize[:]
	f.uniforms["TileTypeMapSize"] = f.tileTypeMapSize[:]
	f.uniforms["SunDir"] = f.sunDir[:]

	f.SetResolution(width, height)
	f.tileSize[0] = defaultTileSize
	f.tileSize[1] = defaultTileSize
	f.SetRegionPadding(1)
	f.uniforms["TileTypePadding"] = float32(1)
	f.SetWallShadowEnabled(false)
	f.SetSunDirection(defaultSunAngle)
	f.SetShadowParams(defaultShadowLength, defaultShadowStrength, defaultStepSize, "smooth")

	logf("shadow filter ready, %dx%d viewport", width, height)
	return f, nil
}

// SetResolution sets the viewport size in pixels.
func (f *ShadowFilter) SetResolution(w, h int) {
	f.resolution[0] = float32(w)
	f.resolution[1] = float32(h)
}

// SetRegionMap replaces the region map texture. The texture content is not
// inspected; the caller is trusted to supply a valid map.
func (f *ShadowFilter) SetRegionMap(tex *ebiten.Image) {
	f.regionMap = tex
}

// SetRegionMapSize sets the region map dimensions in tiles.
func (f *ShadowFilter) SetRegionMapSize(cols, rows int) {
	f.regionMapSize[0] = float32(cols)
	f.regionMapSize[1] = float32(rows)
}

// SetRegionPadding sets the region map border padding in tiles.
func (f *ShadowFilter) SetRegionPadding(p int) {
	f.uniforms["RegionPadding"] = float32(p)
}

// SetTileTypeMap replaces the wall-type map. The texture slot only changes
// when tex is a real map: nil and the placeholder sentinel are ignored. The
// first real map latches the filter into "wall map available" state, which
// is never reset. Size and padding from upd apply independently of the
// texture check, so partial updates are supported.
func (f *ShadowFilter) SetTileTypeMap(tex *ebiten.Image, upd TileTypeMapUpdate) {
	if !IsPlaceholder(tex) {
		f.tileTypeMap = tex
		f.hasTileTypeMap = true
	}
	if upd.Cols != 0 {
		f.tileTypeMapSize[0] = float32(upd.Cols)
	}
	if upd.Rows != 0 {
		f.tileTypeMapSize[1] = float32(upd.Rows)
	}
	if upd.HasPadding {
		f.uniforms["TileTypePadding"] = float32(upd.Padding)
	}
}

// SetWallShadowEnabled toggles the wall-aware shadow path. Enabling before
// any real wall map has been supplied is a silent no-op that leaves the
// feature off.
func (f *ShadowFilter) SetWallShadowEnabled(enabled bool) {
	on := enabled && f.hasTileTypeMap
	if on {
		f.uniforms["WallShadow"] = float32(1)
	} else {
		f.uniforms["WallShadow"] = float32(0)
	}
}

// SetSunDirection sets the direction shadows are cast from the given polar
// angle in radians, following the shader convention that the angle measures
// the direction the light travels from.
func (f *ShadowFilter) SetSunDirection(angle float64) {
	f.sunDir[0] = float32(math.Cos(angle))
	f.sunDir[1] = float32(math.Sin(angle))
}

// SetShadowParams sets the shadow length (tiles), strength ([0, 1]) and
// march precision in one call. Length and strength are stored verbatim.
// A precision of exactly zero defaults to 1.0; any other value, negatives
// included, is clamped to a step size of at least 0.5 tiles. The falloff
// name is resolved through
// ParseFalloff, so unknown names fall back to the smooth curve.
func (f *ShadowFilter) SetShadowParams(length, strength, precision float64, falloff string) {
	f.uniforms["ShadowLength"] = float32(length)
	f.uniforms["ShadowStrength"] = float32(strength)
	if precision == 0 {
		precision = 1.0
	}
	f.uniforms["StepSize"] = float32(math.Max(0.5, precision))
	f.uniforms["Falloff"] = float32(ParseFalloff(falloff))
}

// UpdateDisplayOffset stores the display scroll position. displayX and
// displayY are in tile units with sub-tile precision; tileW and tileH are
// the tile pixel dimensions, which also overwrite the stored tile size.
// Both the raw pixel offset and its tile-aligned floor are kept, so the
// shader can march in stable tile space while the view scrolls smoothly.
func (f *ShadowFilter) UpdateDisplayOffset(displayX, displayY float64, tileW, tileH int) {
	f.displayOffset[0] = float32(displayX * float64(tileW))
	f.displayOffset[1] = float32(displayY * float64(tileH))
	f.displayOffsetInt[0] = float32(math.Floor(displayX) * float64(tileW))
	f.displayOffsetInt[1] = float32(math.Floor(displayY) * float64(tileH))
	f.tileSize[0] = float32(tileW)
	f.tileSize[1] = float32(tileH)
}

// WallShadowEnabled reports whether the wall-aware shadow path is active.
func (f *ShadowFilter) WallShadowEnabled() bool {
	v, _ := f.uniforms["WallShadow"].(float32)
	return v != 0
}

// SunDirection returns the stored sun direction unit vector.
func (f *ShadowFilter) SunDirection() Vec2 {
	return Vec2{X: float64(f.sunDir[0]), Y: float64(f.sunDir[1])}
}

// StepSize returns the stored ray-march step size in tiles.
func (f *ShadowFilter) StepSize() float64 {
	v, _ := f.uniforms["StepSize"].(float32)
	return float64(v)
}

// Uniforms returns the live uniform-name-to-value mapping read by Apply.
// Host adapters embedding the filter into another pipeline may bind this
// map directly. The returned map must not be mutated.
func (f *ShadowFilter) Uniforms() map[string]any {
	return f.uniforms
}

// Apply renders src into dst with shadows applied. Called by the host once
// per frame.
//
// DrawRectShader requires all source images to have the same size, and the
// map textures are tile-sized rather than screen-sized, so the quad goes
// through DrawTrianglesShader; the shader resolves each image's own origin
// via imageSrcNOrigin.
func (f *ShadowFilter) Apply(src, dst *ebiten.Image) {
	b := src.Bounds()
	w := float32(b.Dx())
	h := float32(b.Dy())
	sx0 := float32(b.Min.X)
	sy0 := float32(b.Min.Y)
	sx1 := float32(b.Max.X)
	sy1 := float32(b.Max.Y)

	// TL, TR, BL, BR
	f.vertices[0] = ebiten.Vertex{DstX: 0, DstY: 0, SrcX: sx0, SrcY: sy0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
	f.vertices[1] = ebiten.Vertex{DstX: w, DstY: 0, SrcX: sx1, SrcY: sy0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
	f.vertices[2] = ebiten.Vertex{DstX: 0, DstY: h, SrcX: sx0, SrcY: sy1, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
	f.vertices[3] = ebiten.Vertex{DstX: w, DstY: h, SrcX: sx1, SrcY: sy1, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}

	f.shaderOp.Images[0] = src
	f.shaderOp.Images[1] = f.regionMap
	f.shaderOp.Images[2] = f.tileTypeMap
	f.shaderOp.Uniforms = f.uniforms
	dst.DrawTrianglesShader(f.vertices[:], quadIndices, f.shader, &f.shaderOp)
}

// Padding returns 0; shadows never extend beyond the source bounds.
func (f *ShadowFilter) Padding() int { return 0 }
