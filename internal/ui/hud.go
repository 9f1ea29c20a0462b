//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/scenario"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type recordProvider interface {
	LastRecord() (scenario.StepRecord, bool)
	Hour() int
}

const (
	panelPadding = 10
	lineHeight   = 15
)

// HUD renders run metrics and the tunable parameters to the right of the
// simulation view. Up/Down select a float parameter; Left/Right scale it by
// 10 percent.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	floats      []core.Parameter
	selected    int
	floatSetter core.FloatParameterSetter
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot and handles key input.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		h.floats = nil
		return
	}
	h.snapshot = provider.Parameters()
	h.floats = h.floats[:0]
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if p.Type == core.ParamTypeFloat {
				h.floats = append(h.floats, p)
			}
		}
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if len(h.floats) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		h.selected = (h.selected + 1) % len(h.floats)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		h.selected = (h.selected - 1 + len(h.floats)) % len(h.floats)
	}
	h.selected = min(h.selected, len(h.floats)-1)

	factor := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		factor = 1.1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		factor = 1 / 1.1
	}
	if factor == 0 || h.floatSetter == nil {
		return
	}
	p := h.floats[h.selected]
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return
	}
	if v == 0 && factor > 1 {
		v = 0.01
	}
	h.floatSetter.SetFloatParameter(p.Key, v*factor)
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	heading := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	body := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 150, G: 150, B: 160, A: 255}
	accent := color.RGBA{R: 255, G: 190, B: 90, A: 255}

	y := panelPadding + lineHeight
	line := func(s string, c color.Color) {
		text.Draw(h.panel, s, face, panelPadding, y, c)
		y += lineHeight
	}

	line("Fire Spread", heading)
	if provider, ok := h.sim.(recordProvider); ok {
		rec, stepped := provider.LastRecord()
		line(fmt.Sprintf("hour        %d", provider.Hour()), body)
		if stepped {
			m := rec.Metrics
			line(fmt.Sprintf("burned      %.2f ha", m.BurnedAreaHectares), body)
			line(fmt.Sprintf("perimeter   %.2f km", m.FirePerimeterKM), body)
			line(fmt.Sprintf("intensity   %.3f", m.FireIntensity), body)
			line(fmt.Sprintf("ignitions   %d", m.NewIgnitions), body)
			w := rec.Weather
			line(fmt.Sprintf("temp        %.1f C", w.Temperature), dim)
			line(fmt.Sprintf("humidity    %.1f %%", w.Humidity), dim)
			line(fmt.Sprintf("wind        %.1f km/h @ %.0f", w.WindSpeed, w.WindDirection), dim)
		}
	}
	y += lineHeight / 2

	if len(h.floats) == 0 {
		line("No adjustable parameters", dim)
	}
	for i, p := range h.floats {
		if y > height-panelPadding {
			break
		}
		c := body
		prefix := "  "
		if i == h.selected {
			c = accent
			prefix = "> "
		}
		line(fmt.Sprintf("%s%-20s %s", prefix, p.Label, p.Value), c)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
