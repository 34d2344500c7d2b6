//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a Texture into a GPU image once per frame and draws it
// scaled onto the screen.
type GridPainter struct {
	tex *Texture
	img *ebiten.Image
}

// NewGridPainter allocates an image matching the texture size.
func NewGridPainter(tex *Texture) *GridPainter {
	b := tex.Image().Bounds()
	return &GridPainter{tex: tex, img: ebiten.NewImage(b.Dx(), b.Dy())}
}

// Blit refreshes the texture from its layer, uploads it and draws it onto
// dst scaled by scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale float64) {
	pixels := gp.tex.Refresh()
	gp.img.WritePixels(pixels.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) {
	b := gp.img.Bounds()
	return b.Dx(), b.Dy()
}
