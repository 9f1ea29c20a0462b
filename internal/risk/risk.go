// Package risk provides the fire-risk capability the simulator consults:
// given environmental features, return a scalar risk in [0,1].
//
// The package ships a deterministic estimator based on a simplified fire
// weather index. A trained model can be plugged in by implementing Estimator.
package risk

import (
	"math"
	"strings"
)

// Features are the environmental inputs to a risk estimate.
type Features struct {
	Temperature       float64 `json:"temperature"`        // °C
	Humidity          float64 `json:"humidity"`           // percent
	WindSpeed         float64 `json:"wind_speed"`         // km/h
	WindDirection     float64 `json:"wind_direction"`     // degrees
	NDVI              float64 `json:"ndvi"`               // 0-1
	Elevation         float64 `json:"elevation"`          // metres
	Slope             float64 `json:"slope"`              // degrees
	VegetationDensity string  `json:"vegetation_density"` // sparse, moderate, dense, very_dense
}

// DefaultFeatures returns the values assumed for inputs a caller leaves out.
func DefaultFeatures() Features {
	return Features{
		Temperature:       30,
		Humidity:          50,
		WindSpeed:         15,
		WindDirection:     45,
		NDVI:              0.6,
		Elevation:         1500,
		Slope:             15,
		VegetationDensity: "moderate",
	}
}

// Estimator returns a fire risk in [0,1] for the given features.
type Estimator interface {
	Estimate(f Features) float64
}

// EstimatorFunc adapts a plain function to Estimator.
type EstimatorFunc func(Features) float64

// Estimate calls fn and clamps its result to [0,1].
func (fn EstimatorFunc) Estimate(f Features) float64 { return clamp(fn(f), 0, 1) }

// Normalized is the eight-value feature vector fed to a model, each in [0,1].
type Normalized [8]float64

var vegetationDensity = map[string]float64{
	"sparse":     0.2,
	"moderate":   0.5,
	"dense":      0.8,
	"very_dense": 1.0,
}

// VegetationDensity maps a density label onto [0,1]; unknown labels are moderate.
func VegetationDensity(label string) float64 {
	if v, ok := vegetationDensity[strings.ToLower(label)]; ok {
		return v
	}
	return 0.5
}

// NormalizeFeatures scales raw features into the model's input ranges:
// temperature over 50 °C, humidity over 100 %, wind over 40 km/h, direction
// over 360°, elevation over 4000 m and slope over 90°.
func NormalizeFeatures(f Features) Normalized {
	return Normalized{
		clamp(f.Temperature/50, 0, 1),
		clamp(f.Humidity/100, 0, 1),
		clamp(f.WindSpeed/40, 0, 1),
		clamp(math.Mod(f.WindDirection, 360)/360, 0, 1),
		clamp(f.NDVI, 0, 1),
		clamp(f.Elevation/4000, 0, 1),
		clamp(f.Slope/90, 0, 1),
		VegetationDensity(f.VegetationDensity),
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
