package grid

// Grid dimensions match the classifier input (28x28 single channel).
const (
	Rows = 28
	Cols = 28
)

// Brush intensities written by Paint. The center gets the strongest ink,
// the right and lower neighbours less, and the lower-right diagonal the least.
const (
	BrushCenter   = 250.0 / 255.0
	BrushEdge     = 220.0 / 255.0
	BrushDiagonal = 190.0 / 255.0
)

// Grid is a row-major matrix of ink intensities in [0, 1].
// The zero value is an empty grid and is ready to use.
type Grid struct {
	cells [Rows][Cols]float64
}

// New returns an all-zero grid.
func New() *Grid { return &Grid{} }

// Rows reports the number of rows.
func (g *Grid) Rows() int { return Rows }

// Cols reports the number of columns.
func (g *Grid) Cols() int { return Cols }

// InBounds reports whether (row, col) addresses a cell.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// At returns the intensity at (row, col). Out of range cells read as 0.
func (g *Grid) At(row, col int) float64 {
	if g == nil || !InBounds(row, col) {
		return 0
	}
	return g.cells[row][col]
}

// Paint applies the soft brush at (row, col).
// Neighbour writes that fall outside the grid are skipped. Values are raised
// to the brush constants, never lowered, so repeated paints are idempotent.
// It reports false when (row, col) itself is out of range.
func (g *Grid) Paint(row, col int) bool {
	if g == nil || !InBounds(row, col) {
		return false
	}
	g.raise(row, col, BrushCenter)
	g.raise(row+1, col, BrushEdge)
	g.raise(row, col+1, BrushEdge)
	g.raise(row+1, col+1, BrushDiagonal)
	return true
}

func (g *Grid) raise(row, col int, v float64) {
	if !InBounds(row, col) {
		return
	}
	if g.cells[row][col] < v {
		g.cells[row][col] = v
	}
}

// Clear zeroes every cell in place.
func (g *Grid) Clear() {
	if g == nil {
		return
	}
	g.cells = [Rows][Cols]float64{}
}

// Empty reports whether no cell holds ink.
func (g *Grid) Empty() bool {
	if g == nil {
		return true
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != 0 {
				return false
			}
		}
	}
	return true
}

// Values returns a row-major copy of all cells.
func (g *Grid) Values() []float64 {
	out := make([]float64, 0, Rows*Cols)
	if g == nil {
		return append(out, make([]float64, Rows*Cols)...)
	}
	for r := range g.cells {
		out = append(out, g.cells[r][:]...)
	}
	return out
}
