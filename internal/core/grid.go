package core

// FloatGrid stores a 2D grid of continuous cell values in row-major order.
// Rows run along y and columns along x; Index(row, col) addresses a cell.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a zeroed grid with the given dimensions. Callers are
// expected to validate dimensions; non-positive sizes yield an empty grid.
func NewFloatGrid(w, h int) *FloatGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *FloatGrid) Index(row, col int) int { return row*g.W + col }

// At returns the value stored at (row, col).
func (g *FloatGrid) At(row, col int) float64 { return g.data[row*g.W+col] }

// Set stores v at (row, col).
func (g *FloatGrid) Set(row, col int, v float64) { g.data[row*g.W+col] = v }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *FloatGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Clone returns a deep copy of the grid.
func (g *FloatGrid) Clone() *FloatGrid {
	c := &FloatGrid{W: g.W, H: g.H, data: make([]float64, len(g.data))}
	copy(c.data, g.data)
	return c
}

// CopyFrom overwrites g with the contents of src. Sizes must match.
func (g *FloatGrid) CopyFrom(src *FloatGrid) {
	copy(g.data, src.data)
}

// Scale multiplies every cell by f in place.
func (g *FloatGrid) Scale(f float64) {
	for i := range g.data {
		g.data[i] *= f
	}
}

// MaxInto sets every cell of g to the larger of itself and the matching cell of other.
func (g *FloatGrid) MaxInto(other *FloatGrid) {
	for i, v := range other.data {
		if v > g.data[i] {
			g.data[i] = v
		}
	}
}

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
