package render

import (
	"image"
	"image/color"

	"fogcrawl/internal/core"
)

type layerCopier interface {
	CopyInto(dst []uint8) []uint8
}

// Texture is the one-way export of a simulation layer into RGBA pixels. It
// copies the layer on every Refresh; the simulation never sees the pixel
// buffer and the texture never writes back.
type Texture struct {
	layer   core.Layer
	palette []color.RGBA
	cells   []uint8
	img     *image.RGBA
}

// NewTexture allocates a texture sized to the layer.
func NewTexture(layer core.Layer, palette []color.RGBA) *Texture {
	size := layer.Size()
	return &Texture{
		layer:   layer,
		palette: palette,
		img:     image.NewRGBA(image.Rect(0, 0, size.W, size.H)),
	}
}

// Refresh re-reads the layer and rebuilds the pixels.
func (t *Texture) Refresh() *image.RGBA {
	if c, ok := t.layer.(layerCopier); ok {
		t.cells = c.CopyInto(t.cells)
	} else {
		t.cells = t.layer.Snapshot()
	}
	if len(t.cells)*4 != len(t.img.Pix) {
		return t.img
	}
	fillPaletteRGBA(t.img.Pix, t.cells, t.palette)
	return t.img
}

// Image returns the most recently refreshed pixels.
func (t *Texture) Image() *image.RGBA { return t.img }

// Composite draws corruption under fog into dst: the corruption tint first,
// then the fog density as black occlusion on top. dst must match the layer
// size; base supplies the colour beneath both.
func Composite(dst *image.RGBA, fog, corruption []uint8, base color.RGBA) {
	n := len(dst.Pix) / 4
	if len(fog) != n || len(corruption) != n {
		return
	}
	for i := 0; i < n; i++ {
		off := i * 4
		dst.Pix[off+0] = base.R
		dst.Pix[off+1] = base.G
		dst.Pix[off+2] = base.B
		dst.Pix[off+3] = base.A
		blendOver(dst.Pix, off, corruptionPalette[corruption[i]])
		blendOver(dst.Pix, off, fogPalette[fog[i]])
	}
}
