package render

import (
	"image"
	"image/color"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/firespread"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
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

// IntensityImage renders g at one pixel per cell with the fire palette.
// Rows map to y and columns to x.
func IntensityImage(g *core.FloatGrid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	cells := firespread.Quantize(nil, g)
	fillPaletteRGBA(img.Pix, cells, firespread.Palette())
	return img
}
