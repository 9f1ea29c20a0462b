package scenario

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// HourStats aggregates one hour across trials.
type HourStats struct {
	Hour             int     `json:"hour"`
	MeanBurnedArea   float64 `json:"mean_burned_area_ha"`
	StdDevBurnedArea float64 `json:"std_burned_area_ha"`
	MeanPerimeter    float64 `json:"mean_perimeter_km"`
	MeanIntensity    float64 `json:"mean_intensity"`
	MeanNewIgnitions float64 `json:"mean_new_ignitions"`
}

// TrialSummary is the outcome of repeating one request under different seeds.
type TrialSummary struct {
	Trials int         `json:"trials"`
	Seeds  []int64     `json:"seeds"`
	Hours  []HourStats `json:"hours"`
}

// Trials runs req n times with seeds cfg.Seed, cfg.Seed+1, ... and reports
// per-hour statistics. Runs execute one after another.
func (d *Driver) Trials(req Request, n int) (TrialSummary, error) {
	if n <= 0 {
		return TrialSummary{}, errors.New("scenario: trials must be positive")
	}
	cell := GridCellForCoordinates(req.Lat, req.Lng, d.sizeOf())
	hours := max(req.DurationHours, 0)

	area := make([][]float64, hours)
	perim := make([][]float64, hours)
	intensity := make([][]float64, hours)
	ignitions := make([][]float64, hours)

	summary := TrialSummary{Trials: n, Seeds: make([]int64, 0, n)}
	for i := 0; i < n; i++ {
		seed := d.cfg.Seed + int64(i)
		run, err := d.RunSeed(seed, cell, req.Weather, hours)
		if err != nil {
			return TrialSummary{}, fmt.Errorf("trial %d: %w", i, err)
		}
		summary.Seeds = append(summary.Seeds, seed)
		for h, rec := range run.Steps {
			area[h] = append(area[h], rec.Metrics.BurnedAreaHectares)
			perim[h] = append(perim[h], rec.Metrics.FirePerimeterKM)
			intensity[h] = append(intensity[h], rec.Metrics.FireIntensity)
			ignitions[h] = append(ignitions[h], float64(rec.Metrics.NewIgnitions))
		}
	}

	summary.Hours = make([]HourStats, hours)
	for h := range summary.Hours {
		mean, std := stat.MeanStdDev(area[h], nil)
		if n == 1 {
			std = 0
		}
		summary.Hours[h] = HourStats{
			Hour:             h,
			MeanBurnedArea:   mean,
			StdDevBurnedArea: std,
			MeanPerimeter:    stat.Mean(perim[h], nil),
			MeanIntensity:    stat.Mean(intensity[h], nil),
			MeanNewIgnitions: stat.Mean(ignitions[h], nil),
		}
	}
	return summary, nil
}
