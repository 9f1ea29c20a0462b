package firespread

import (
	"math"
	"testing"

	"wildfire-ca/internal/core"
)

func TestComputeMetricsBlock(t *testing.T) {
	g := core.NewFloatGrid(5, 5)
	for row := 1; row <= 3; row++ {
		for col := 1; col <= 3; col++ {
			g.Set(row, col, 1)
		}
	}
	g.Set(0, 0, 0.05) // lit but below the burned threshold

	m := ComputeMetrics(g, DefaultParams())
	if m.BurnedCells != 9 || m.PerimeterCells != 8 {
		t.Fatalf("burned %d perimeter %d, want 9 and 8", m.BurnedCells, m.PerimeterCells)
	}
	if math.Abs(m.BurnedAreaHectares-2.25) > 1e-12 {
		t.Fatalf("area = %f, want 2.25", m.BurnedAreaHectares)
	}
	if math.Abs(m.FirePerimeterKM-0.4) > 1e-12 {
		t.Fatalf("perimeter = %f, want 0.4", m.FirePerimeterKM)
	}
	if want := 9.05 / 10; math.Abs(m.FireIntensity-want) > 1e-12 {
		t.Fatalf("intensity = %f, want %f", m.FireIntensity, want)
	}
	if m.SpreadRate != m.BurnedCells {
		t.Fatalf("spread rate = %d, want burned cell count", m.SpreadRate)
	}
}

func TestComputeMetricsEdgesAreNeverBurned(t *testing.T) {
	g := core.NewFloatGrid(3, 3)
	for i := range g.Cells() {
		g.Cells()[i] = 1
	}
	m := ComputeMetrics(g, DefaultParams())
	// Only the centre has eight in-grid neighbours.
	if m.PerimeterCells != 8 {
		t.Fatalf("perimeter cells = %d, want 8", m.PerimeterCells)
	}

	single := core.NewFloatGrid(1, 1)
	single.Set(0, 0, 0.5)
	if m := ComputeMetrics(single, DefaultParams()); m.PerimeterCells != 1 || m.BurnedCells != 1 {
		t.Fatalf("1x1 metrics = %+v", m)
	}
}

func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(core.NewFloatGrid(8, 8), DefaultParams())
	if m != (Metrics{}) {
		t.Fatalf("metrics of an unburned grid = %+v, want zero", m)
	}
}

func TestComputeMetricsThresholdIsStrict(t *testing.T) {
	g := core.NewFloatGrid(2, 1)
	g.Set(0, 0, 0.1)
	g.Set(0, 1, 0.1000001)
	if m := ComputeMetrics(g, DefaultParams()); m.BurnedCells != 1 {
		t.Fatalf("burned cells = %d, want 1", m.BurnedCells)
	}
}
