package firespread

import (
	"errors"
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/stat/distuv"

	"wildfire-ca/internal/core"
	rngcore "wildfire-ca/pkg/core"
)

// ErrInvalidGridSize is returned when a grid dimension is not positive.
var ErrInvalidGridSize = errors.New("firespread: grid dimensions must be positive")

// Terrain holds the static per-cell fields of a simulation grid. The fields
// are generated once and never written by the engine.
type Terrain struct {
	Fuel      *core.FloatGrid
	Elevation *core.FloatGrid
	Moisture  *core.FloatGrid
}

// Clone returns a deep copy of all three fields.
func (t Terrain) Clone() Terrain {
	return Terrain{
		Fuel:      t.Fuel.Clone(),
		Elevation: t.Elevation.Clone(),
		Moisture:  t.Moisture.Clone(),
	}
}

// GenerateTerrain draws fuel, elevation and moisture fields for a w*h grid.
// Fuel follows a symmetric beta distribution, moisture a beta skewed toward
// wet cells, and elevation a normal distribution around ElevationMean. With
// ElevationModel set to simplex the elevation field is spatially correlated
// noise with the same centre and spread instead of i.i.d. draws.
func GenerateTerrain(w, h int, p Params, rng *rngcore.RNG) (Terrain, error) {
	if w <= 0 || h <= 0 {
		return Terrain{}, fmt.Errorf("%w: got %dx%d", ErrInvalidGridSize, w, h)
	}
	if p.FuelAlpha <= 0 || p.FuelBeta <= 0 || p.MoistureAlpha <= 0 || p.MoistureBeta <= 0 {
		return Terrain{}, errors.New("firespread: beta shape parameters must be positive")
	}

	fuelDist := distuv.Beta{Alpha: p.FuelAlpha, Beta: p.FuelBeta, Src: rng.Src()}
	moistDist := distuv.Beta{Alpha: p.MoistureAlpha, Beta: p.MoistureBeta, Src: rng.Src()}
	elevDist := distuv.Normal{Mu: p.ElevationMean, Sigma: p.ElevationStdDev, Src: rng.Src()}

	t := Terrain{
		Fuel:      core.NewFloatGrid(w, h),
		Elevation: core.NewFloatGrid(w, h),
		Moisture:  core.NewFloatGrid(w, h),
	}
	fuel := t.Fuel.Cells()
	moist := t.Moisture.Cells()
	for i := range fuel {
		fuel[i] = fuelDist.Rand()
	}
	for i := range moist {
		moist[i] = moistDist.Rand()
	}

	if p.ElevationModel == ElevationSimplex {
		fillSimplexElevation(t.Elevation, p, int64(rng.Source().Uint64()))
		return t, nil
	}
	elev := t.Elevation.Cells()
	for i := range elev {
		elev[i] = elevDist.Rand()
	}
	return t, nil
}

func fillSimplexElevation(g *core.FloatGrid, p Params, seed int64) {
	noise := opensimplex.NewNormalized(seed)
	scale := p.ElevationNoiseScale
	if scale <= 0 {
		scale = DefaultParams().ElevationNoiseScale
	}
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			n := octaveNoise(noise, float64(col), float64(row), 3, scale, 0.5)
			// Map [0,1] onto roughly +/- two standard deviations.
			g.Set(row, col, p.ElevationMean+2*p.ElevationStdDev*(2*n-1))
		}
	}
}

func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
