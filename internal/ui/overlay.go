//go:build ebiten

package ui

import (
	"image/color"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/firespread"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type terrainProvider interface {
	Terrain() firespread.Terrain
}

type weatherProvider interface {
	Weather() firespread.Weather
}

type layer int

const (
	layerNone layer = iota
	layerFuel
	layerElevation
	layerMoisture
)

// Overlay draws the static terrain fields and the wind direction on top of
// the fire grid.
type Overlay struct {
	sim      core.Sim
	scale    int
	layer    layer
	showWind bool

	layerImg *ebiten.Image
	layerBuf []byte
	drawn    layer
	terrain  firespread.Terrain
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale, showWind: true}
}

// Update toggles layers: 1 fuel, 2 elevation, 3 moisture, W wind.
func (o *Overlay) Update() {
	toggle := func(l layer) {
		if o.layer == l {
			o.layer = layerNone
			return
		}
		o.layer = l
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		toggle(layerFuel)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		toggle(layerElevation)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		toggle(layerMoisture)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		o.showWind = !o.showWind
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.layer != layerNone {
		if provider, ok := o.sim.(terrainProvider); ok {
			o.drawLayer(screen, provider.Terrain(), size, scale)
		}
	}
	if o.showWind {
		if provider, ok := o.sim.(weatherProvider); ok {
			o.drawWind(screen, provider.Weather(), size, scale)
		}
	}
}

func (o *Overlay) drawLayer(screen *ebiten.Image, terrain firespread.Terrain, size core.Size, scale int) {
	total := size.W * size.H
	if o.layerImg == nil || o.layerImg.Bounds().Dx() != size.W || o.layerImg.Bounds().Dy() != size.H {
		o.layerImg = ebiten.NewImage(size.W, size.H)
		o.layerBuf = make([]byte, 4*total)
		o.drawn = layerNone
	}
	// Terrain is static between resets, so only repaint on a change.
	if o.drawn != o.layer || o.terrain.Fuel != terrain.Fuel {
		var field *core.FloatGrid
		var stops []colorStop
		switch o.layer {
		case layerFuel:
			field, stops = terrain.Fuel, fuelStops
		case layerElevation:
			field, stops = terrain.Elevation, elevationStops
		default:
			field, stops = terrain.Moisture, moistureStops
		}
		fillLayerRGBA(o.layerBuf, field.Cells(), stops)
		o.layerImg.WritePixels(o.layerBuf)
		o.drawn = o.layer
		o.terrain = terrain
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.layerImg, op)
}

func (o *Overlay) drawWind(screen *ebiten.Image, w firespread.Weather, size core.Size, scale int) {
	if w.WindSpeed <= 0 {
		return
	}
	const margin = 28
	cx := float64(size.W*scale - margin)
	cy := float64(margin)
	dx, dy := windArrow(w.WindDirection, 18)
	col := color.RGBA{R: 235, G: 235, B: 245, A: 230}
	vector.StrokeLine(screen, float32(cx-dx), float32(cy-dy), float32(cx+dx), float32(cy+dy), 2, col, true)
	vector.DrawFilledCircle(screen, float32(cx+dx), float32(cy+dy), 3, col, true)
}
