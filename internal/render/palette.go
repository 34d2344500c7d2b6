package render

import "image/color"

var (
	fogPalette        = buildFogPalette()
	corruptionPalette = buildCorruptionPalette()
)

// FogPalette maps fog density to premultiplied black with matching alpha, so
// revealed cells are fully transparent.
func FogPalette() []color.RGBA { return fogPalette }

// CorruptionPalette maps corruption intensity to a violet tint whose opacity
// tops out below fully opaque so terrain stays readable.
func CorruptionPalette() []color.RGBA { return corruptionPalette }

func buildFogPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		palette[i] = color.RGBA{A: uint8(i)}
	}
	return palette
}

func buildCorruptionPalette() []color.RGBA {
	const maxAlpha = 200
	base := color.NRGBA{R: 150, G: 40, B: 190}
	palette := make([]color.RGBA, 256)
	for i := range palette {
		a := uint8(i * maxAlpha / 255)
		palette[i] = premultiply(color.NRGBA{R: base.R, G: base.G, B: base.B, A: a})
	}
	return palette
}

func premultiply(c color.NRGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint32(c.R) * uint32(c.A) / 255),
		G: uint8(uint32(c.G) * uint32(c.A) / 255),
		B: uint8(uint32(c.B) * uint32(c.A) / 255),
		A: c.A,
	}
}
