package firespread

import (
	"image/color"

	"wildfire-ca/internal/core"
)

// PaletteSize is the number of display levels an intensity is quantised into.
const PaletteSize = 32

var firePalette = buildFirePalette()

// Palette exposes the colour palette used for rendering intensity levels.
func Palette() []color.RGBA {
	return firePalette
}

// Quantize maps intensities onto palette indices. Index 0 is reserved for
// unburned cells so that a faint decayed trace never renders as unburned.
func Quantize(dst []uint8, g *core.FloatGrid) []uint8 {
	cells := g.Cells()
	if len(dst) != len(cells) {
		dst = make([]uint8, len(cells))
	}
	for i, v := range cells {
		if v <= 0 {
			dst[i] = 0
			continue
		}
		idx := 1 + int(v*float64(PaletteSize-2)+0.5)
		if idx > PaletteSize-1 {
			idx = PaletteSize - 1
		}
		dst[i] = uint8(idx)
	}
	return dst
}

func buildFirePalette() []color.RGBA {
	palette := make([]color.RGBA, PaletteSize)
	palette[0] = color.RGBA{R: 46, G: 74, B: 38, A: 255}
	ash := color.NRGBA{R: 60, G: 52, B: 48, A: 255}
	ember := color.NRGBA{R: 200, G: 40, B: 20, A: 255}
	flame := color.NRGBA{R: 255, G: 210, B: 80, A: 255}
	for i := 1; i < PaletteSize; i++ {
		t := float64(i-1) / float64(PaletteSize-2)
		var c color.NRGBA
		if t < 0.5 {
			c = blendColors(ash, ember, t*2)
		} else {
			c = blendColors(ember, flame, (t-0.5)*2)
		}
		palette[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return palette
}

func blendColors(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp(t, 0, 1)
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
