package firespread

import (
	"fmt"

	"wildfire-ca/internal/core"
	rngcore "wildfire-ca/pkg/core"
)

// Weather is the set of conditions active during one step.
type Weather struct {
	WindSpeed     float64 `json:"wind_speed"`     // km/h, >= 0
	WindDirection float64 `json:"wind_direction"` // degrees, 0 = north, clockwise
	Temperature   float64 `json:"temperature"`    // °C
	Humidity      float64 `json:"humidity"`       // percent, 0-100
}

// Engine evolves the fire intensity grid over a fixed terrain. An Engine is
// owned by a single run and must not be shared between goroutines.
type Engine struct {
	cfg Config
	w   int
	h   int

	terrain Terrain
	grid    *core.FloatGrid
	next    *core.FloatGrid

	rng *rngcore.RNG
}

// NewEngine generates terrain for cfg and returns an engine with an unburned
// grid. Non-positive dimensions are a configuration error.
func NewEngine(cfg Config) (*Engine, error) {
	e := &Engine{cfg: cfg, w: cfg.Width, h: cfg.Height}
	if err := e.reset(cfg.Seed); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) reset(seed int64) error {
	terrain, err := GenerateTerrain(e.w, e.h, e.cfg.Params, rngcore.NewRNGStream(seed, rngcore.StreamTerrain))
	if err != nil {
		return fmt.Errorf("generate terrain: %w", err)
	}
	e.terrain = terrain
	e.grid = core.NewFloatGrid(e.w, e.h)
	e.next = core.NewFloatGrid(e.w, e.h)
	e.rng = rngcore.NewRNGStream(seed, rngcore.StreamSpread)
	return nil
}

// Reset regenerates terrain from seed and clears every fire.
func (e *Engine) Reset(seed int64) error {
	e.cfg.Seed = seed
	return e.reset(seed)
}

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Grid exposes the live intensity grid. Callers must treat it as read-only.
func (e *Engine) Grid() *core.FloatGrid { return e.grid }

// Snapshot returns a copy of the intensity grid.
func (e *Engine) Snapshot() *core.FloatGrid { return e.grid.Clone() }

// Terrain exposes the static fields. Callers must treat them as read-only.
func (e *Engine) Terrain() Terrain { return e.terrain }

// Metrics computes the summary of the current grid without stepping.
func (e *Engine) Metrics() Metrics { return ComputeMetrics(e.grid, e.cfg.Params) }

// ClampCell moves c into the grid bounds.
func (e *Engine) ClampCell(c Cell) Cell {
	return Cell{Row: clampInt(c.Row, 0, e.h-1), Col: clampInt(c.Col, 0, e.w-1)}
}

// Ignite sets the intensity of c to 1 after clamping it into the grid and
// returns the cell that was actually ignited.
func (e *Engine) Ignite(c Cell) Cell {
	c = e.ClampCell(c)
	e.grid.Set(c.Row, c.Col, 1)
	return c
}

// Step advances the fire by one time step under the given weather.
//
// Every spread decision reads the grid as it was before the step, so cells
// ignited during the sweep cannot act as sources until the next step. Only
// interior cells act as sources. After the sweep the previous grid decays by
// Params.Decay and the newly ignited cells are merged in at full intensity.
func (e *Engine) Step(w Weather) Metrics {
	p := e.cfg.Params
	wind := NewWindVector(w.WindSpeed, w.WindDirection, p.WindSpeedScale)

	e.next.Clear()
	ignitions := 0
	for row := 1; row < e.h-1; row++ {
		for col := 1; col < e.w-1; col++ {
			if e.grid.At(row, col) <= 0 {
				continue
			}
			src := Cell{Row: row, Col: col}
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := row+dr, col+dc
					if e.grid.At(nr, nc) != 0 {
						continue
					}
					prob := p.IgnitionProbability(SpreadInput{
						Source:          src,
						Target:          Cell{Row: nr, Col: nc},
						FuelTarget:      e.terrain.Fuel.At(nr, nc),
						ElevationSource: e.terrain.Elevation.At(row, col),
						ElevationTarget: e.terrain.Elevation.At(nr, nc),
						MoistureTarget:  e.terrain.Moisture.At(nr, nc),
						Wind:            wind,
						Temperature:     w.Temperature,
						Humidity:        w.Humidity,
					})
					if e.rng.Float64() < prob && e.next.At(nr, nc) == 0 {
						e.next.Set(nr, nc, 1)
						ignitions++
					}
				}
			}
		}
	}

	e.grid.Scale(p.Decay)
	e.grid.MaxInto(e.next)

	m := ComputeMetrics(e.grid, p)
	m.NewIgnitions = ignitions
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
