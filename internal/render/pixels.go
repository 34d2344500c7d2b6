package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// blendOver composites src over the premultiplied pixel at buf[base:].
func blendOver(buf []byte, base int, src color.RGBA) {
	inv := 255 - uint32(src.A)
	buf[base+0] = uint8(uint32(src.R) + uint32(buf[base+0])*inv/255)
	buf[base+1] = uint8(uint32(src.G) + uint32(buf[base+1])*inv/255)
	buf[base+2] = uint8(uint32(src.B) + uint32(buf[base+2])*inv/255)
	buf[base+3] = uint8(uint32(src.A) + uint32(buf[base+3])*inv/255)
}
