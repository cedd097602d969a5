package tileshade

import "github.com/hajimehoshi/ebiten/v2"

// Filter is the interface for screen-space effects applied to rendered
// output. The host render loop calls Apply once per frame with the scene
// rendered into src; the filter writes the processed result into dst.
type Filter interface {
	// Apply renders src into dst with the filter effect.
	Apply(src, dst *ebiten.Image)
	// Padding returns the extra pixels needed around the source to
	// accommodate the effect. Zero means no padding.
	Padding() int
}

// ChainPadding returns the cumulative padding required by a slice of
// filters. Padding is cumulative: an offscreen buffer feeding the chain is
// sized for the sum of all filters' Padding() values.
func ChainPadding(filters []Filter) int {
	pad := 0
	for _, f := range filters {
		pad += f.Padding()
	}
	return pad
}

// FilterChain runs a sequence of filters, ping-ponging between internal
// scratch images. It implements Filter itself so chains can nest.
type FilterChain struct {
	Filters []Filter

	scratch [2]*ebiten.Image
	imgOp   ebiten.DrawImageOptions
}

// Padding returns the cumulative padding of every filter in the chain.
func (c *FilterChain) Padding() int {
	return ChainPadding(c.Filters)
}

// Apply runs every filter in order, reading from src and writing the final
// result into dst. An empty chain copies src into dst unchanged.
func (c *FilterChain) Apply(src, dst *ebiten.Image) {
	if len(c.Filters) == 0 {
		c.imgOp.GeoM.Reset()
		dst.DrawImage(src, &c.imgOp)
		return
	}
	if len(c.Filters) == 1 {
		c.Filters[0].Apply(src, dst)
		return
	}

	// Scratch images carry the chain's cumulative padding so a padded
	// filter's overflow is never clipped between stages.
	bounds := src.Bounds()
	pad := c.Padding()
	w := bounds.Dx() + 2*pad
	h := bounds.Dy() + 2*pad
	c.ensureScratch(w, h)

	current := src
	for i, f := range c.Filters {
		if i == len(c.Filters)-1 {
			f.Apply(current, dst)
			return
		}
		next := c.scratch[i%2]
		next.Clear()
		f.Apply(current, next)
		current = next
	}
}

// Dispose releases the chain's scratch images. The filters themselves are
// not owned by the chain and are left untouched.
func (c *FilterChain) Dispose() {
	for i, img := range c.scratch {
		if img != nil {
			img.Deallocate()
			c.scratch[i] = nil
		}
	}
}

func (c *FilterChain) ensureScratch(w, h int) {
	for i, img := range c.scratch {
		if img == nil || img.Bounds().Dx() != w || img.Bounds().Dy() != h {
			if img != nil {
				img.Deallocate()
			}
			c.scratch[i] = ebiten.NewImage(w, h)
		}
	}
}
