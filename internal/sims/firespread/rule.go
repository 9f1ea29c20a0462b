package firespread

import "math"

// Cell addresses a grid location by row and column.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// WindVector is the scaled wind used for neighbour alignment. X pairs with the
// row offset of a neighbour and Y with the column offset.
type WindVector struct {
	X, Y float64
}

// NewWindVector converts a speed in km/h and a direction in degrees (0 = north,
// clockwise) into the scaled alignment vector (cos·speed/scale, sin·speed/scale).
func NewWindVector(speed, directionDeg, scale float64) WindVector {
	if scale <= 0 {
		scale = DefaultParams().WindSpeedScale
	}
	rad := directionDeg * math.Pi / 180
	return WindVector{
		X: math.Cos(rad) * speed / scale,
		Y: math.Sin(rad) * speed / scale,
	}
}

// SpreadInput carries everything the spread rule needs about one burning
// source cell and one unburned neighbour.
type SpreadInput struct {
	Source, Target  Cell
	FuelTarget      float64
	ElevationSource float64
	ElevationTarget float64
	MoistureTarget  float64
	Wind            WindVector
	Temperature     float64
	Humidity        float64
}

// IgnitionProbability returns the chance that the burning source ignites the
// target during one step. The result is the product of the base probability
// and the fuel, slope, wind, temperature, humidity and moisture factors,
// clamped to [0,1].
func (p Params) IgnitionProbability(in SpreadInput) float64 {
	dRow := float64(in.Target.Row - in.Source.Row)
	dCol := float64(in.Target.Col - in.Source.Col)

	prob := p.BaseProbability *
		in.FuelTarget *
		p.slopeFactor(in.ElevationSource, in.ElevationTarget) *
		p.windFactor(dRow, dCol, in.Wind) *
		p.temperatureFactor(in.Temperature) *
		p.humidityFactor(in.Humidity) *
		p.moistureFactor(in.MoistureTarget)
	return clamp(prob, 0, 1)
}

func (p Params) slopeFactor(src, dst float64) float64 {
	switch {
	case dst > src:
		return p.UpslopeFactor
	case dst < src:
		return p.DownslopeFactor
	}
	return 1
}

// windFactor applies the component-wise alignment test: the neighbour offset
// must sit within the tolerance of the wind vector on both axes. This is a
// coarse proxy for directional alignment and is kept as such.
func (p Params) windFactor(dRow, dCol float64, w WindVector) float64 {
	if math.Abs(dRow-w.X) < p.WindTolerance && math.Abs(dCol-w.Y) < p.WindTolerance {
		return p.WindFactor
	}
	return 1
}

func (p Params) temperatureFactor(t float64) float64 {
	return math.Min(t/p.TempDivisor, p.TempFactorMax)
}

func (p Params) humidityFactor(h float64) float64 {
	return math.Max(p.HumidityFloor, 1-h/100)
}

func (p Params) moistureFactor(m float64) float64 {
	return math.Max(p.MoistureFloor, 1-m)
}
