package firespread

import (
	"errors"
	"math"
	"slices"
	"testing"

	"gonum.org/v1/gonum/stat"

	rngcore "wildfire-ca/pkg/core"
)

func TestGenerateTerrainDeterministic(t *testing.T) {
	p := DefaultParams()
	a, err := GenerateTerrain(24, 16, p, rngcore.NewRNGStream(42, rngcore.StreamTerrain))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := GenerateTerrain(24, 16, p, rngcore.NewRNGStream(42, rngcore.StreamTerrain))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !slices.Equal(a.Fuel.Cells(), b.Fuel.Cells()) {
		t.Fatal("fuel differs for equal seeds")
	}
	if !slices.Equal(a.Elevation.Cells(), b.Elevation.Cells()) {
		t.Fatal("elevation differs for equal seeds")
	}
	if !slices.Equal(a.Moisture.Cells(), b.Moisture.Cells()) {
		t.Fatal("moisture differs for equal seeds")
	}

	c, err := GenerateTerrain(24, 16, p, rngcore.NewRNGStream(43, rngcore.StreamTerrain))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if slices.Equal(a.Fuel.Cells(), c.Fuel.Cells()) {
		t.Fatal("fuel identical for different seeds")
	}
}

func TestGenerateTerrainDistributions(t *testing.T) {
	p := DefaultParams()
	terrain, err := GenerateTerrain(100, 100, p, rngcore.NewRNGStream(1, rngcore.StreamTerrain))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for name, cells := range map[string][]float64{"fuel": terrain.Fuel.Cells(), "moisture": terrain.Moisture.Cells()} {
		for i, v := range cells {
			if v < 0 || v > 1 {
				t.Fatalf("%s[%d] = %f outside [0,1]", name, i, v)
			}
		}
	}

	// Beta(2,2) has mean 0.5; Beta(3,2) has mean 0.6.
	if m := stat.Mean(terrain.Fuel.Cells(), nil); math.Abs(m-0.5) > 0.02 {
		t.Fatalf("fuel mean %.3f, want ~0.5", m)
	}
	if m := stat.Mean(terrain.Moisture.Cells(), nil); math.Abs(m-0.6) > 0.02 {
		t.Fatalf("moisture mean %.3f, want ~0.6", m)
	}
	mean, std := stat.MeanStdDev(terrain.Elevation.Cells(), nil)
	if math.Abs(mean-p.ElevationMean) > 0.02 || math.Abs(std-p.ElevationStdDev) > 0.02 {
		t.Fatalf("elevation mean %.3f std %.3f, want ~%.1f/%.1f", mean, std, p.ElevationMean, p.ElevationStdDev)
	}
}

func TestGenerateTerrainSimplexIsSmooth(t *testing.T) {
	p := DefaultParams()
	p.ElevationModel = ElevationSimplex
	smooth, err := GenerateTerrain(64, 64, p, rngcore.NewRNGStream(9, rngcore.StreamTerrain))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	rough, err := GenerateTerrain(64, 64, DefaultParams(), rngcore.NewRNGStream(9, rngcore.StreamTerrain))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	step := func(terrain Terrain) float64 {
		g := terrain.Elevation
		sum := 0.0
		for row := 0; row < g.H; row++ {
			for col := 1; col < g.W; col++ {
				sum += math.Abs(g.At(row, col) - g.At(row, col-1))
			}
		}
		return sum / float64(g.H*(g.W-1))
	}
	if s, r := step(smooth), step(rough); s >= r/2 {
		t.Fatalf("simplex elevation not smoother than i.i.d.: %.4f vs %.4f", s, r)
	}
	for i, v := range smooth.Elevation.Cells() {
		if math.IsNaN(v) {
			t.Fatalf("elevation[%d] is NaN", i)
		}
	}
}

func TestGenerateTerrainRejectsInvalidSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		_, err := GenerateTerrain(dims[0], dims[1], DefaultParams(), rngcore.NewRNG(1))
		if !errors.Is(err, ErrInvalidGridSize) {
			t.Fatalf("%v: expected ErrInvalidGridSize, got %v", dims, err)
		}
	}
	if _, err := NewEngine(Config{Width: 0, Height: 5, Params: DefaultParams()}); !errors.Is(err, ErrInvalidGridSize) {
		t.Fatalf("NewEngine: expected ErrInvalidGridSize, got %v", err)
	}
}

func TestTerrainClone(t *testing.T) {
	terrain, err := GenerateTerrain(4, 4, DefaultParams(), rngcore.NewRNG(3))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	clone := terrain.Clone()
	clone.Fuel.Set(0, 0, 42)
	if terrain.Fuel.At(0, 0) == 42 {
		t.Fatal("clone shares fuel storage")
	}
}
