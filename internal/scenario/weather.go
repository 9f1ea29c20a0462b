package scenario

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"wildfire-ca/internal/sims/firespread"
	rngcore "wildfire-ca/pkg/core"
)

// Hourly jitter applied to the base weather, and the bounds jittered values
// are clamped to.
const (
	TemperatureJitter = 2.0
	HumidityJitter    = 5.0
	WindSpeedJitter   = 3.0

	MinHumidity  = 10.0
	MaxHumidity  = 100.0
	MinWindSpeed = 0.0
)

var compassDegrees = map[string]float64{
	"N": 0, "NE": 45, "E": 90, "SE": 135,
	"S": 180, "SW": 225, "W": 270, "NW": 315,
}

// CompassDegrees converts an eight-point compass label into degrees clockwise
// from north. Unknown labels map to north.
func CompassDegrees(label string) float64 {
	return compassDegrees[strings.ToUpper(strings.TrimSpace(label))]
}

// Jitter perturbs a base weather sample with independent Gaussian noise per
// step. Wind direction is held constant.
type Jitter struct {
	temp     distuv.Normal
	humidity distuv.Normal
	wind     distuv.Normal
}

// NewJitter draws from rng, which should be dedicated to weather.
func NewJitter(rng *rngcore.RNG) *Jitter {
	src := rng.Src()
	return &Jitter{
		temp:     distuv.Normal{Mu: 0, Sigma: TemperatureJitter, Src: src},
		humidity: distuv.Normal{Mu: 0, Sigma: HumidityJitter, Src: src},
		wind:     distuv.Normal{Mu: 0, Sigma: WindSpeedJitter, Src: src},
	}
}

// Next returns base plus one draw of noise, clamped to sane bounds.
func (j *Jitter) Next(base firespread.Weather) firespread.Weather {
	return Sanitize(firespread.Weather{
		WindSpeed:     base.WindSpeed + j.wind.Rand(),
		WindDirection: base.WindDirection,
		Temperature:   base.Temperature + j.temp.Rand(),
		Humidity:      base.Humidity + j.humidity.Rand(),
	})
}

// Sanitize clamps humidity into [MinHumidity, MaxHumidity], wind speed to be
// non-negative and normalises the direction into [0, 360).
func Sanitize(w firespread.Weather) firespread.Weather {
	w.Humidity = math.Min(MaxHumidity, math.Max(MinHumidity, w.Humidity))
	w.WindSpeed = math.Max(MinWindSpeed, w.WindSpeed)
	w.WindDirection = math.Mod(w.WindDirection, 360)
	if w.WindDirection < 0 {
		w.WindDirection += 360
	}
	return w
}
