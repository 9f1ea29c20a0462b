package ui

import (
	"image/color"
	"math"
)

type colorStop struct {
	t   float64
	col color.RGBA
}

var (
	elevationStops = []colorStop{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	fuelStops = []colorStop{
		{0.0, color.RGBA{R: 120, G: 110, B: 90, A: 120}},
		{0.5, color.RGBA{R: 110, G: 150, B: 60, A: 170}},
		{1.0, color.RGBA{R: 30, G: 110, B: 30, A: 210}},
	}
	moistureStops = []colorStop{
		{0.0, color.RGBA{R: 230, G: 200, B: 140, A: 110}},
		{1.0, color.RGBA{R: 40, G: 110, B: 220, A: 200}},
	}
)

// fillLayerRGBA normalises field onto [0,1] by its own min and max and writes
// one ramp colour per cell into buf.
func fillLayerRGBA(buf []byte, field []float64, stops []colorStop) {
	if len(field) == 0 {
		return
	}
	lo, hi := field[0], field[0]
	for _, v := range field {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	for i, v := range field {
		col := rampColor(stops, (v-lo)/span)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func rampColor(stops []colorStop, t float64) color.RGBA {
	t = clamp01(t)
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// windArrow returns the screen offset of an arrow of length span pointing at
// the neighbour the spread rule favours for directionDeg. The rule pairs the
// cosine with the row offset, and rows grow downward on screen.
func windArrow(directionDeg, span float64) (dx, dy float64) {
	rad := directionDeg * math.Pi / 180
	return math.Sin(rad) * span, math.Cos(rad) * span
}
