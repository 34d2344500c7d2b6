//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"fogcrawl/internal/sims/fog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the observer marker and its reveal radius on top of the map.
// Key 1 toggles the fog layer, key 2 the reveal ring.
type Overlay struct {
	mapper fog.Mapper
	scale  float64
	radius float64

	hideFog  bool
	hideRing bool
	pixel    *ebiten.Image
}

// NewOverlay builds an overlay for a map drawn at scale pixels per cell.
func NewOverlay(m fog.Mapper, revealRadius, scale float64) *Overlay {
	o := &Overlay{
		mapper: m,
		scale:  scale,
		radius: m.WorldToCellRadius(revealRadius) * scale,
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles debug layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.hideFog = !o.hideFog
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.hideRing = !o.hideRing
	}
}

// FogHidden reports whether the fog layer is toggled off.
func (o *Overlay) FogHidden() bool { return o.hideFog }

// Draw renders the overlay for an observer standing at world (x, z).
func (o *Overlay) Draw(screen *ebiten.Image, x, z float64) {
	gx, gz := o.mapper.WorldToCellF(x, z)
	sx, sz := gx*o.scale, gz*o.scale
	if !o.hideRing && o.radius > 0 {
		const segments = 48
		for i := 0; i < segments; i++ {
			a := float64(i) / segments * 2 * math.Pi
			o.drawPoint(screen, sx+math.Cos(a)*o.radius, sz+math.Sin(a)*o.radius, 2, color.RGBA{R: 120, G: 200, B: 255, A: 160})
		}
	}
	o.drawPoint(screen, sx, sz, 5, color.RGBA{R: 255, G: 230, B: 90, A: 255})
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size/2, y-size/2)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
