package scenario

import (
	"math"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/firespread"
)

// Origin and scale of the fixed affine transform from coordinates to cells.
const (
	OriginLat    = 29.0
	OriginLng    = 79.0
	CellsPerDeg  = 50.0
	DefaultLat   = 30.0
	DefaultLng   = 79.0
	DefaultHours = 6
)

// GridCellForCoordinates maps a latitude/longitude pair onto a grid cell:
// row = round((lat-29)*50), col = round((lng-79)*50), each clamped into the grid.
func GridCellForCoordinates(lat, lng float64, size core.Size) firespread.Cell {
	return firespread.Cell{
		Row: clampIndex(math.Round((lat-OriginLat)*CellsPerDeg), size.H),
		Col: clampIndex(math.Round((lng-OriginLng)*CellsPerDeg), size.W),
	}
}

func clampIndex(v float64, n int) int {
	if n <= 0 || math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > float64(n-1) {
		return n - 1
	}
	return int(v)
}

// Request is a scenario as submitted by a calling layer.
type Request struct {
	Lat           float64            `json:"lat"`
	Lng           float64            `json:"lng"`
	DurationHours int                `json:"duration"`
	Weather       firespread.Weather `json:"weather"`
}

// DefaultRequest returns the scenario assumed for omitted fields.
func DefaultRequest() Request {
	return Request{
		Lat:           DefaultLat,
		Lng:           DefaultLng,
		DurationHours: DefaultHours,
		Weather: firespread.Weather{
			WindSpeed:     15,
			WindDirection: CompassDegrees("NE"),
			Temperature:   30,
			Humidity:      50,
		},
	}
}
