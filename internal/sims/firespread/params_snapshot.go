package firespread

import "wildfire-ca/internal/core"

// Parameters returns the engine's tunables grouped for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return Snapshot(e.cfg)
}

// SetFloatParameter updates a rule constant in place. It reports whether the
// key was recognised and the value accepted. Terrain shape parameters only
// take effect on the next Reset.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	return e.cfg.Params.setFloat(key, value)
}

// Snapshot describes cfg as a parameter snapshot.
func Snapshot(cfg Config) core.ParameterSnapshot {
	p := cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", cfg.Width),
				core.IntParam("h", "Height", cfg.Height),
				core.Int64Param("seed", "Seed", cfg.Seed),
			},
		},
		{
			Name:    "Spread",
			Summary: "Multiplicative factors of the ignition probability.",
			Params: []core.Parameter{
				core.FloatParam("base_probability", "Base probability", p.BaseProbability),
				core.FloatParam("upslope_factor", "Upslope factor", p.UpslopeFactor),
				core.FloatParam("downslope_factor", "Downslope factor", p.DownslopeFactor),
				core.FloatParam("wind_factor", "Wind factor", p.WindFactor),
				core.FloatParam("wind_speed_scale", "Wind speed scale", p.WindSpeedScale),
				core.FloatParam("wind_tolerance", "Wind tolerance", p.WindTolerance),
				core.FloatParam("temp_divisor", "Temperature divisor", p.TempDivisor),
				core.FloatParam("temp_factor_max", "Temperature factor max", p.TempFactorMax),
				core.FloatParam("humidity_floor", "Humidity floor", p.HumidityFloor),
				core.FloatParam("moisture_floor", "Moisture floor", p.MoistureFloor),
			},
		},
		{
			Name: "Burn",
			Params: []core.Parameter{
				core.FloatParam("decay", "Decay", p.Decay),
				core.FloatParam("burned_threshold", "Burned threshold", p.BurnedThreshold),
				core.FloatParam("cell_hectares", "Cell area (ha)", p.CellHectares),
				core.FloatParam("cell_perimeter_km", "Cell perimeter (km)", p.CellPerimeterKM),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				core.FloatParam("fuel_alpha", "Fuel alpha", p.FuelAlpha),
				core.FloatParam("fuel_beta", "Fuel beta", p.FuelBeta),
				core.FloatParam("moisture_alpha", "Moisture alpha", p.MoistureAlpha),
				core.FloatParam("moisture_beta", "Moisture beta", p.MoistureBeta),
				core.FloatParam("elevation_mean", "Elevation mean", p.ElevationMean),
				core.FloatParam("elevation_stddev", "Elevation stddev", p.ElevationStdDev),
				core.StringParam("elevation_model", "Elevation model", p.ElevationModel),
				core.FloatParam("elevation_noise_scale", "Elevation noise scale", p.ElevationNoiseScale),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}
