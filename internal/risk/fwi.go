package risk

import "math"

// FWIEstimator scores risk with a simplified fire weather index built from
// temperature, humidity and wind speed only.
type FWIEstimator struct{}

// Estimate implements Estimator.
func (FWIEstimator) Estimate(f Features) float64 {
	return FireWeatherIndex(f.Temperature, f.Humidity, f.WindSpeed)
}

// FireWeatherIndex returns the simplified index normalised to [0,1].
func FireWeatherIndex(temp, humidity, windSpeed float64) float64 {
	ffmc := clamp(85+0.4*(temp-20)-0.5*humidity, 0, 101)
	dmc := math.Max(1, 50-humidity*0.5)
	dc := math.Max(1, temp*2-humidity*0.8)
	isi := math.Max(0, 0.208*ffmc*(0.05+0.1*windSpeed))

	fwi := 2*math.Log(isi+1) + 0.45*math.Log(dmc+1) + 0.15*math.Log(dc+1)
	return clamp(fwi/50, 0, 1)
}
