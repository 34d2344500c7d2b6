//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 15
)

// HUD renders the readout panel to the right of the map.
type HUD struct {
	field      Field
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
}

// NewHUD constructs a HUD for the provided field and panel width.
func NewHUD(field Field, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{field: field, width: width}
}

// Update rebuilds the readout from the current round.
func (h *HUD) Update(r Round) {
	if h == nil || h.width <= 0 {
		return
	}
	h.lines = Readout(h.field, r)
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + face.Ascent
	for i, line := range h.lines {
		clr := color.Color(color.RGBA{R: 200, G: 200, B: 210, A: 255})
		if i == 0 {
			clr = color.RGBA{R: 230, G: 210, B: 255, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, clr)
		y += lineHeight
		if y > height {
			break
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
