package firespread

import "strconv"

// Elevation models accepted by Params.ElevationModel.
const (
	ElevationNormal  = "normal"
	ElevationSimplex = "simplex"
)

// Params holds the tunable constants of the spread rule, decay and metrics.
type Params struct {
	BaseProbability float64
	UpslopeFactor   float64
	DownslopeFactor float64
	WindFactor      float64
	WindSpeedScale  float64
	WindTolerance   float64
	TempDivisor     float64
	TempFactorMax   float64
	HumidityFloor   float64
	MoistureFloor   float64

	Decay           float64
	BurnedThreshold float64
	CellHectares    float64
	CellPerimeterKM float64

	FuelAlpha, FuelBeta         float64
	MoistureAlpha, MoistureBeta float64
	ElevationMean               float64
	ElevationStdDev             float64
	ElevationModel              string
	ElevationNoiseScale         float64
}

// Config controls the fire spread grid dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  100,
		Height: 100,
		Seed:   1337,
		Params: DefaultParams(),
	}
}

// DefaultParams returns the standard rule constants.
func DefaultParams() Params {
	return Params{
		BaseProbability: 0.1,
		UpslopeFactor:   1.5,
		DownslopeFactor: 0.7,
		WindFactor:      1.8,
		WindSpeedScale:  30,
		WindTolerance:   0.5,
		TempDivisor:     40,
		TempFactorMax:   1.5,
		HumidityFloor:   0.1,
		MoistureFloor:   0.1,

		Decay:           0.95,
		BurnedThreshold: 0.1,
		CellHectares:    0.25,
		CellPerimeterKM: 0.05,

		FuelAlpha:           2,
		FuelBeta:            2,
		MoistureAlpha:       3,
		MoistureBeta:        2,
		ElevationMean:       0.5,
		ElevationStdDev:     0.2,
		ElevationModel:      ElevationNormal,
		ElevationNoiseScale: 0.08,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
			c.Height = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["elevation_model"]; ok && (v == ElevationNormal || v == ElevationSimplex) {
		c.Params.ElevationModel = v
	}
	for key, v := range cfg {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		c.Params.setFloat(key, parsed)
	}
	return c
}

// floatField returns a pointer to the float parameter registered under key.
func (p *Params) floatField(key string) *float64 {
	switch key {
	case "base_probability":
		return &p.BaseProbability
	case "upslope_factor":
		return &p.UpslopeFactor
	case "downslope_factor":
		return &p.DownslopeFactor
	case "wind_factor":
		return &p.WindFactor
	case "wind_speed_scale":
		return &p.WindSpeedScale
	case "wind_tolerance":
		return &p.WindTolerance
	case "temp_divisor":
		return &p.TempDivisor
	case "temp_factor_max":
		return &p.TempFactorMax
	case "humidity_floor":
		return &p.HumidityFloor
	case "moisture_floor":
		return &p.MoistureFloor
	case "decay":
		return &p.Decay
	case "burned_threshold":
		return &p.BurnedThreshold
	case "cell_hectares":
		return &p.CellHectares
	case "cell_perimeter_km":
		return &p.CellPerimeterKM
	case "fuel_alpha":
		return &p.FuelAlpha
	case "fuel_beta":
		return &p.FuelBeta
	case "moisture_alpha":
		return &p.MoistureAlpha
	case "moisture_beta":
		return &p.MoistureBeta
	case "elevation_mean":
		return &p.ElevationMean
	case "elevation_stddev":
		return &p.ElevationStdDev
	case "elevation_noise_scale":
		return &p.ElevationNoiseScale
	}
	return nil
}

// setFloat assigns value to the named parameter, rejecting values that would
// break the rule's invariants. It reports whether the key was accepted.
func (p *Params) setFloat(key string, value float64) bool {
	field := p.floatField(key)
	if field == nil {
		return false
	}
	switch key {
	case "decay":
		value = clamp(value, 0, 1)
	case "fuel_alpha", "fuel_beta", "moisture_alpha", "moisture_beta", "wind_speed_scale", "temp_divisor":
		if value <= 0 {
			return false
		}
	default:
		if value < 0 {
			return false
		}
	}
	*field = value
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
