package risk

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BurnDeltaThreshold is the NDVI drop above which a pixel counts as burned.
const BurnDeltaThreshold = 0.2

// NDVIDelta summarises vegetation change between two NDVI rasters.
type NDVIDelta struct {
	MeanDelta            float64 `json:"ndvi_delta_mean"`
	StdDevDelta          float64 `json:"ndvi_delta_std"`
	PotentialBurnPercent float64 `json:"potential_burn_area_percent"`
	BurnSeverity         float64 `json:"burn_severity"`
	RecoveryIndex        float64 `json:"recovery_index"`
}

// AnalyzeNDVI compares flattened before/after NDVI rasters. Pixels whose NDVI
// dropped by more than BurnDeltaThreshold are treated as burned; their burned
// area index gives the severity and their post-fire NDVI the recovery index.
func AnalyzeNDVI(before, after []float64) (NDVIDelta, error) {
	if len(before) != len(after) {
		return NDVIDelta{}, errors.New("risk: ndvi rasters differ in length")
	}
	if len(before) == 0 {
		return NDVIDelta{}, errors.New("risk: ndvi rasters are empty")
	}

	delta := floats.SubTo(make([]float64, len(before)), before, after)
	mean := stat.Mean(delta, nil)
	n := float64(len(delta))
	// Population standard deviation.
	std := math.Sqrt(stat.Variance(delta, nil) * (n - 1) / n)
	if len(delta) == 1 {
		std = 0
	}

	var burnedAfter, bai []float64
	for i, d := range delta {
		if d <= BurnDeltaThreshold {
			continue
		}
		a := after[i]
		burnedAfter = append(burnedAfter, a)
		if v := 1 / (math.Pow(0.1-a, 2) + math.Pow(0.06-a, 2)); v > 0 && !math.IsInf(v, 0) {
			bai = append(bai, v)
		}
	}

	out := NDVIDelta{
		MeanDelta:            mean,
		StdDevDelta:          std,
		PotentialBurnPercent: float64(len(burnedAfter)) / n * 100,
		RecoveryIndex:        1,
	}
	if len(bai) > 0 {
		out.BurnSeverity = stat.Mean(bai, nil)
	}
	if len(burnedAfter) > 0 {
		out.RecoveryIndex = stat.Mean(burnedAfter, nil)
	}
	return out, nil
}
