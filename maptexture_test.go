package tileshade

import "testing"

func TestNewMapTextureDimensions(t *testing.T) {
	m := NewMapTexture(10, 8, 2)
	defer m.Dispose()

	if m.Cols() != 10 || m.Rows() != 8 || m.Padding() != 2 {
		t.Errorf("dims = %d x %d pad %d, want 10 x 8 pad 2", m.Cols(), m.Rows(), m.Padding())
	}
	img := m.Image()
	if img.Bounds().Dx() != 14 || img.Bounds().Dy() != 12 {
		t.Errorf("texture = %v, want 14 x 12 including padding", img.Bounds())
	}
}

func TestNewMapTextureClampsDegenerateInput(t *testing.T) {
	m := NewMapTexture(0, -3, -1)
	defer m.Dispose()
	if m.Cols() != 1 || m.Rows() != 1 || m.Padding() != 0 {
		t.Errorf("dims = %d x %d pad %d, want 1 x 1 pad 0", m.Cols(), m.Rows(), m.Padding())
	}
}

func TestMapTextureSetAt(t *testing.T) {
	m := NewMapTexture(6, 4, 1)
	defer m.Dispose()

	m.Set(0, 0, 7)
	m.Set(5, 3, 255)
	if m.At(0, 0) != 7 {
		t.Errorf("At(0,0) = %d, want 7", m.At(0, 0))
	}
	if m.At(5, 3) != 255 {
		t.Errorf("At(5,3) = %d, want 255", m.At(5, 3))
	}
	if m.At(1, 1) != 0 {
		t.Errorf("At(1,1) = %d, want 0", m.At(1, 1))
	}
}

func TestMapTextureOutOfRange(t *testing.T) {
	m := NewMapTexture(4, 4, 0)
	defer m.Dispose()

	// Writes outside the grid are ignored, reads return 0.
	m.Set(-1, 0, 9)
	m.Set(0, -1, 9)
	m.Set(4, 0, 9)
	m.Set(0, 4, 9)
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		if m.At(pos[0], pos[1]) != 0 {
			t.Errorf("At(%d,%d) = %d, want 0", pos[0], pos[1], m.At(pos[0], pos[1]))
		}
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if m.At(col, row) != 0 {
				t.Errorf("At(%d,%d) = %d, want untouched 0", col, row, m.At(col, row))
			}
		}
	}
}

func TestMapTextureFill(t *testing.T) {
	m := NewMapTexture(3, 3, 1)
	defer m.Dispose()

	m.Fill(42)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if m.At(col, row) != 42 {
				t.Fatalf("At(%d,%d) = %d, want 42", col, row, m.At(col, row))
			}
		}
	}
	// Padding border stays zero: the raw buffer corner texel is padding.
	if m.pix[0] != 0 {
		t.Error("padding border should stay zero after Fill")
	}
}

func TestMapTexturePaddingOffset(t *testing.T) {
	m := NewMapTexture(3, 3, 2)
	defer m.Dispose()

	m.Set(0, 0, 99)
	// Tile (0,0) lives at texel (2,2) in the 7x7 padded buffer.
	w := 3 + 2*2
	if m.pix[(2*w+2)*4] != 99 {
		t.Error("tile (0,0) should map to texel (padding, padding)")
	}
}

func TestMapTextureImageStable(t *testing.T) {
	m := NewMapTexture(4, 4, 0)
	defer m.Dispose()

	a := m.Image()
	m.Set(1, 1, 5)
	b := m.Image()
	if a != b {
		t.Error("Image should always return the same instance")
	}
}
