package firespread

import "wildfire-ca/internal/core"

// Metrics is the per-step summary derived from the intensity grid.
type Metrics struct {
	BurnedAreaHectares float64 `json:"burned_area_hectares"`
	FirePerimeterKM    float64 `json:"fire_perimeter_km"`
	FireIntensity      float64 `json:"fire_intensity"`
	SpreadRate         int     `json:"spread_rate"`

	BurnedCells    int `json:"burned_cells"`
	PerimeterCells int `json:"perimeter_cells"`
	NewIgnitions   int `json:"new_ignitions"` // set by Engine.Step
}

// ComputeMetrics derives burned area, perimeter, mean intensity and spread
// rate from an intensity grid.
//
// A cell counts as burned when its intensity exceeds BurnedThreshold. A burned
// cell is on the perimeter when fewer than eight of its Moore neighbours are
// burned; neighbours outside the grid never count as burned. Mean intensity is
// taken over every cell with intensity above zero.
func ComputeMetrics(g *core.FloatGrid, p Params) Metrics {
	cells := g.Cells()
	burned := make([]bool, len(cells))

	var m Metrics
	var sum float64
	var lit int
	for i, v := range cells {
		if v > 0 {
			sum += v
			lit++
		}
		if v > p.BurnedThreshold {
			burned[i] = true
			m.BurnedCells++
		}
	}

	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			if !burned[g.Index(row, col)] {
				continue
			}
			if burnedNeighbors(g, burned, row, col) < 8 {
				m.PerimeterCells++
			}
		}
	}

	m.BurnedAreaHectares = float64(m.BurnedCells) * p.CellHectares
	m.FirePerimeterKM = float64(m.PerimeterCells) * p.CellPerimeterKM
	if lit > 0 {
		m.FireIntensity = sum / float64(lit)
	}
	m.SpreadRate = m.BurnedCells
	return m
}

func burnedNeighbors(g *core.FloatGrid, burned []bool, row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= g.H {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := col + dc
			if c < 0 || c >= g.W {
				continue
			}
			if burned[g.Index(r, c)] {
				n++
			}
		}
	}
	return n
}
