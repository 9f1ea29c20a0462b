package scenario

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/firespread"
	rngcore "wildfire-ca/pkg/core"
)

func TestCompassDegrees(t *testing.T) {
	tests := map[string]float64{
		"N": 0, "NE": 45, "E": 90, "SE": 135,
		"S": 180, "SW": 225, "W": 270, "NW": 315,
		" ne ": 45, "NNE": 0, "": 0,
	}
	for label, want := range tests {
		assert.Equal(t, want, CompassDegrees(label), "label %q", label)
	}
}

func TestSanitize(t *testing.T) {
	got := Sanitize(firespread.Weather{WindSpeed: -4, WindDirection: -90, Temperature: -10, Humidity: 2})
	assert.Equal(t, firespread.Weather{WindSpeed: 0, WindDirection: 270, Temperature: -10, Humidity: MinHumidity}, got)

	got = Sanitize(firespread.Weather{WindSpeed: 12, WindDirection: 405, Temperature: 41, Humidity: 140})
	assert.Equal(t, firespread.Weather{WindSpeed: 12, WindDirection: 45, Temperature: 41, Humidity: MaxHumidity}, got)
}

func TestJitter_Deterministic(t *testing.T) {
	base := DefaultRequest().Weather
	a := NewJitter(rngcore.NewRNGStream(3, rngcore.StreamWeather))
	b := NewJitter(rngcore.NewRNGStream(3, rngcore.StreamWeather))
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Next(base), b.Next(base))
	}
}

func TestJitter_Distribution(t *testing.T) {
	base := firespread.Weather{WindSpeed: 20, WindDirection: 135, Temperature: 30, Humidity: 50}
	j := NewJitter(rngcore.NewRNGStream(11, rngcore.StreamWeather))

	const n = 4000
	temps := make([]float64, n)
	hums := make([]float64, n)
	winds := make([]float64, n)
	for i := 0; i < n; i++ {
		w := j.Next(base)
		require.Equal(t, 135.0, w.WindDirection)
		temps[i] = w.Temperature
		hums[i] = w.Humidity
		winds[i] = w.WindSpeed
	}

	// Far enough from the clamps that the noise is effectively unclipped.
	mean, std := stat.MeanStdDev(temps, nil)
	assert.InDelta(t, 30, mean, 0.2)
	assert.InDelta(t, TemperatureJitter, std, 0.2)
	mean, std = stat.MeanStdDev(hums, nil)
	assert.InDelta(t, 50, mean, 0.5)
	assert.InDelta(t, HumidityJitter, std, 0.4)
	mean, std = stat.MeanStdDev(winds, nil)
	assert.InDelta(t, 20, mean, 0.3)
	assert.InDelta(t, WindSpeedJitter, std, 0.3)
}

func TestJitter_ClampsLowBase(t *testing.T) {
	base := firespread.Weather{WindSpeed: 0, Temperature: 10, Humidity: 10}
	j := NewJitter(rngcore.NewRNGStream(5, rngcore.StreamWeather))
	for i := 0; i < 500; i++ {
		w := j.Next(base)
		assert.GreaterOrEqual(t, w.Humidity, MinHumidity)
		assert.GreaterOrEqual(t, w.WindSpeed, 0.0)
	}
}

func TestGridCellForCoordinates(t *testing.T) {
	size := core.Size{W: 100, H: 100}
	tests := []struct {
		name     string
		lat, lng float64
		want     firespread.Cell
	}{
		{"defaults", DefaultLat, DefaultLng, firespread.Cell{Row: 50, Col: 0}},
		{"origin", 29, 79, firespread.Cell{Row: 0, Col: 0}},
		{"interior", 29.5, 79.7, firespread.Cell{Row: 25, Col: 35}},
		{"rounds", 29.509, 79.011, firespread.Cell{Row: 25, Col: 1}},
		{"below origin", 28, 70, firespread.Cell{Row: 0, Col: 0}},
		{"beyond grid", 40, 90, firespread.Cell{Row: 99, Col: 99}},
		{"nan", math.NaN(), 79.2, firespread.Cell{Row: 0, Col: 10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GridCellForCoordinates(tc.lat, tc.lng, size))
		})
	}
}

func TestDefaultRequest(t *testing.T) {
	req := DefaultRequest()
	assert.Equal(t, 30.0, req.Lat)
	assert.Equal(t, 79.0, req.Lng)
	assert.Equal(t, 6, req.DurationHours)
	assert.Equal(t, 45.0, req.Weather.WindDirection)
}
