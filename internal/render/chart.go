package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"wildfire-ca/internal/scenario"
)

// ErrTooFewSteps is returned when a run is too short to plot.
var ErrTooFewSteps = errors.New("render: at least two steps are needed for a chart")

// ProgressionChart writes a PNG of burned area and fire perimeter over the
// hours of a run. Area uses the left axis and perimeter the right one.
func ProgressionChart(w io.Writer, steps []scenario.StepRecord, width, height int) error {
	if len(steps) < 2 {
		return ErrTooFewSteps
	}
	hours := make([]float64, len(steps))
	area := make([]float64, len(steps))
	perimeter := make([]float64, len(steps))
	for i, rec := range steps {
		hours[i] = float64(rec.Hour + 1)
		area[i] = rec.Metrics.BurnedAreaHectares
		perimeter[i] = rec.Metrics.FirePerimeterKM
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name: "Hour",
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "Burned area (ha)",
			Range: flatRange(area),
		},
		YAxisSecondary: chart.YAxis{
			Name:  "Perimeter (km)",
			Range: flatRange(perimeter),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Burned area",
				XValues: hours,
				YValues: area,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					StrokeWidth: 3,
				},
			},
			chart.ContinuousSeries{
				Name:    "Perimeter",
				YAxis:   chart.YAxisSecondary,
				XValues: hours,
				YValues: perimeter,
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 255, G: 165, B: 0, A: 255},
					StrokeWidth: 3,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// flatRange returns a fixed range for a constant series, which go-chart
// cannot auto-scale. It returns nil otherwise.
func flatRange(values []float64) chart.Range {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if hi > lo {
		return nil
	}
	return &chart.ContinuousRange{Min: max(0, lo-1), Max: hi + 1}
}
