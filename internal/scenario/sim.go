package scenario

import (
	"image/color"
	"strconv"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/firespread"
	rngcore "wildfire-ca/pkg/core"
)

// SimName is the registry key of the interactive fire simulation.
const SimName = "firespread"

func init() {
	core.Register(SimName, func(cfg map[string]string) (core.Sim, error) {
		s, err := NewSim(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// Sim drives an engine one hour per tick with jittered weather so it can be
// shown by the viewer. It satisfies core.Sim.
type Sim struct {
	req     Request
	engine  *firespread.Engine
	jitter  *Jitter
	cells   []uint8
	hour    int
	last    StepRecord
	stepped bool
}

// NewSim builds a Sim from flag-style options. Besides the engine keys
// understood by firespread.FromMap it accepts lat, lng, temperature,
// humidity, wind_speed and wind_dir (degrees or a compass label).
func NewSim(opts map[string]string) (*Sim, error) {
	cfg := firespread.FromMap(opts)
	engine, err := firespread.NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	s := &Sim{req: requestFromMap(opts), engine: engine}
	s.restart(cfg.Seed)
	return s, nil
}

func requestFromMap(opts map[string]string) Request {
	req := DefaultRequest()
	floatOpt := func(key string, dst *float64) {
		if v, ok := opts[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	floatOpt("lat", &req.Lat)
	floatOpt("lng", &req.Lng)
	floatOpt("temperature", &req.Weather.Temperature)
	floatOpt("humidity", &req.Weather.Humidity)
	floatOpt("wind_speed", &req.Weather.WindSpeed)
	if v, ok := opts["wind_dir"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			req.Weather.WindDirection = parsed
		} else {
			req.Weather.WindDirection = CompassDegrees(v)
		}
	}
	return req
}

func (s *Sim) restart(seed int64) {
	s.engine.Ignite(GridCellForCoordinates(s.req.Lat, s.req.Lng, s.engine.Size()))
	s.jitter = NewJitter(rngcore.NewRNGStream(seed, rngcore.StreamWeather))
	s.hour = 0
	s.last = StepRecord{}
	s.stepped = false
	s.cells = firespread.Quantize(s.cells, s.engine.Grid())
}

// Name identifies the simulation.
func (s *Sim) Name() string { return SimName }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.engine.Size() }

// Reset regenerates terrain from seed and re-ignites the request cell.
func (s *Sim) Reset(seed int64) {
	// Dimensions were validated when the engine was built, so regenerating
	// terrain cannot fail here.
	_ = s.engine.Reset(seed)
	s.restart(seed)
}

// Step advances one hour under freshly jittered weather.
func (s *Sim) Step() {
	weather := s.jitter.Next(s.req.Weather)
	m := s.engine.Step(weather)
	s.last = StepRecord{Hour: s.hour, Weather: weather, Metrics: m}
	s.stepped = true
	s.hour++
	s.cells = firespread.Quantize(s.cells, s.engine.Grid())
}

// Cells returns palette indices; see firespread.Palette.
func (s *Sim) Cells() []uint8 { return s.cells }

// Palette exposes the colours Cells indexes into.
func (s *Sim) Palette() []color.RGBA { return firespread.Palette() }

// LastRecord returns the most recent step, if any.
func (s *Sim) LastRecord() (StepRecord, bool) { return s.last, s.stepped }

// Hour reports how many steps have been taken since the last reset.
func (s *Sim) Hour() int { return s.hour }

// Weather returns the base weather the jitter is applied to.
func (s *Sim) Weather() firespread.Weather { return s.req.Weather }

// Terrain exposes the engine's static fields.
func (s *Sim) Terrain() firespread.Terrain { return s.engine.Terrain() }

// Parameters returns the engine's tunables.
func (s *Sim) Parameters() core.ParameterSnapshot { return s.engine.Parameters() }

// SetFloatParameter forwards to the engine.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	return s.engine.SetFloatParameter(key, value)
}
