// Package render converts sandbox cell bytes into pixels.
package render

import "image/color"

// fillPaletteRGBA converts material bytes into RGBA pixels in buf. Bytes
// without a palette entry are painted with fallback.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA, fallback color.RGBA) {
	for i, c := range cells {
		col := fallback
		if int(c) < len(palette) {
			col = palette[c]
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// pixelBuffer returns buf resized to hold w*h RGBA pixels, reusing its
// backing array when large enough.
func pixelBuffer(buf []byte, w, h int) []byte {
	n := w * h * 4
	if n < 0 {
		n = 0
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]byte, n)
}
