package tileshade

import "github.com/hajimehoshi/ebiten/v2"

// MapTexture encodes a per-tile byte grid as a texture for shader sampling.
// Each tile occupies one texel with its value in the red channel. The grid
// is surrounded by a uniform border of padding tiles (value 0) so shaders
// can sample slightly outside the map without wrapping.
//
// Unlike the screen-sized images the filter operates on, a MapTexture is
// cols x rows texels (plus padding); the shadow shader addresses it in tile
// coordinates.
type MapTexture struct {
	image   *ebiten.Image
	cols    int
	rows    int
	padding int
	pix     []byte
	dirty   bool
}

// NewMapTexture creates a map texture of cols x rows tiles with the given
// border padding. All tiles start at value 0.
func NewMapTexture(cols, rows, padding int) *MapTexture {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if padding < 0 {
		padding = 0
	}
	w := cols + padding*2
	h := rows + padding*2
	pix := make([]byte, w*h*4)
	// Fully opaque texture: values live in the red channel and must stay
	// below alpha for valid premultiplied pixels.
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xff
	}
	return &MapTexture{
		image:   ebiten.NewImage(w, h),
		cols:    cols,
		rows:    rows,
		padding: padding,
		pix:     pix,
		dirty:   true,
	}
}

// Cols returns the map width in tiles, excluding padding.
func (m *MapTexture) Cols() int { return m.cols }

// Rows returns the map height in tiles, excluding padding.
func (m *MapTexture) Rows() int { return m.rows }

// Padding returns the border padding in tiles.
func (m *MapTexture) Padding() int { return m.padding }

// Set writes the value for the tile at (col, row). Out-of-range positions
// are ignored.
func (m *MapTexture) Set(col, row int, v uint8) {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return
	}
	w := m.cols + m.padding*2
	off := ((row+m.padding)*w + (col + m.padding)) * 4
	if m.pix[off] == v {
		return
	}
	m.pix[off] = v
	m.dirty = true
}

// At returns the value of the tile at (col, row). Out-of-range positions
// return 0, matching the zeroed padding border.
func (m *MapTexture) At(col, row int) uint8 {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return 0
	}
	w := m.cols + m.padding*2
	return m.pix[((row+m.padding)*w+(col+m.padding))*4]
}

// Fill sets every tile (not the padding border) to v.
func (m *MapTexture) Fill(v uint8) {
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			m.Set(col, row, v)
		}
	}
}

// Image returns the underlying texture, uploading pending Set calls first.
// The returned image is owned by the MapTexture and must not be disposed by
// the caller.
func (m *MapTexture) Image() *ebiten.Image {
	if m.dirty {
		m.image.WritePixels(m.pix)
		m.dirty = false
	}
	return m.image
}

// Bind pushes this map into the filter's region map slot, including size
// and padding.
func (m *MapTexture) Bind(f *ShadowFilter) {
	f.SetRegionMap(m.Image())
	f.SetRegionMapSize(m.cols, m.rows)
	f.SetRegionPadding(m.padding)
}

// BindWalls pushes this map into the filter's wall-type map slot, including
// size and padding.
func (m *MapTexture) BindWalls(f *ShadowFilter) {
	f.SetTileTypeMap(m.Image(), TileTypeMapUpdate{
		Cols:       m.cols,
		Rows:       m.rows,
		Padding:    m.padding,
		HasPadding: true,
	})
}

// Dispose releases the underlying texture. The MapTexture must not be used
// afterwards.
func (m *MapTexture) Dispose() {
	if m.image != nil {
		m.image.Deallocate()
		m.image = nil
	}
	m.pix = nil
}
