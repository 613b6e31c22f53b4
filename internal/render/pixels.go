package render

import "image/color"

// fillGrayRGBA expands intensity cells (0-255) into opaque grayscale
// pixels in buf.
func fillGrayRGBA(buf []byte, cells []uint8) {
	for i, c := range cells {
		base := i * 4
		buf[base+0] = c
		buf[base+1] = c
		buf[base+2] = c
		buf[base+3] = 0xff
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// When the palette is empty the buffer is cleared to transparent black.
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
