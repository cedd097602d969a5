package tileshade

// WallKind classifies a tile's wall geometry for the wall-aware shadow
// path. The numeric values are written into the wall map's red channel and
// read back by the shader, so they must not change.
type WallKind uint8

const (
	WallNone  WallKind = 0 // open ground
	WallSolid WallKind = 1 // solid tile fully surrounded by other solids
	WallTop   WallKind = 2 // solid tile whose top face is exposed
	WallSide  WallKind = 3 // solid tile whose front (lower) face is exposed
)

// DetectWalls classifies a cols x rows grid of tiles into wall kinds.
// solidAt reports whether the tile at (col, row) blocks light; positions
// outside the grid are treated as open. A solid tile with open ground
// directly below it is a front face (WallSide); a solid tile with open
// ground directly above is a top face (WallTop); solids with both faces
// buried are WallSolid. Front faces win over top faces when both apply,
// matching how a camera looking down-forward sees the tile.
//
// The result is row-major, ready for BuildWallMap.
func DetectWalls(cols, rows int, solidAt func(col, row int) bool) []WallKind {
	kinds := make([]WallKind, cols*rows)
	inGrid := func(col, row int) bool {
		return col >= 0 && col < cols && row >= 0 && row < rows
	}
	solid := func(col, row int) bool {
		return inGrid(col, row) && solidAt(col, row)
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if !solid(col, row) {
				continue
			}
			k := WallSolid
			if !solid(col, row-1) {
				k = WallTop
			}
			if !solid(col, row+1) {
				k = WallSide
			}
			kinds[row*cols+col] = k
		}
	}
	return kinds
}

// BuildWallMap packs a row-major WallKind grid into a MapTexture suitable
// for ShadowFilter's wall-type map slot. Entries beyond len(kinds) stay
// WallNone.
func BuildWallMap(kinds []WallKind, cols, rows, padding int) *MapTexture {
	m := NewMapTexture(cols, rows, padding)
	for i, k := range kinds {
		if i >= cols*rows {
			break
		}
		m.Set(i%cols, i/cols, uint8(k))
	}
	return m
}

// BuildRegionMap packs a row-major region grid into a MapTexture suitable
// for ShadowFilter's region map slot. Non-zero regions cast shadows.
func BuildRegionMap(regions []uint8, cols, rows, padding int) *MapTexture {
	m := NewMapTexture(cols, rows, padding)
	for i, r := range regions {
		if i >= cols*rows {
			break
		}
		m.Set(i%cols, i/cols, r)
	}
	return m
}
