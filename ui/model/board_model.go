package model

import "github.com/soocke/digitpad-go/domain/grid"

// State enumerates the board display states.
type State int

const (
	StateIdle State = iota
	StateClassified
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateClassified:
		return "classified"
	default:
		return "unknown"
	}
}

// BoardModel owns the drawing grid and the last classification result.
// It is only touched from the frame loop, so no synchronization is needed.
// The zero value is usable (an empty grid is allocated lazily).
type BoardModel struct {
	grid      *grid.Grid
	digit     int
	hasResult bool
}

// NewBoardModel returns a board with an empty grid and no result.
func NewBoardModel() *BoardModel { return &BoardModel{grid: grid.New()} }

// Grid returns the live grid. Callers must not retain it across a Reset.
func (m *BoardModel) Grid() *grid.Grid {
	if m == nil {
		return nil
	}
	if m.grid == nil {
		m.grid = grid.New()
	}
	return m.grid
}

// Paint applies the brush at (row, col). It reports whether the cell was in range.
func (m *BoardModel) Paint(row, col int) bool {
	if m == nil {
		return false
	}
	return m.Grid().Paint(row, col)
}

// Reset replaces the grid with a fresh one and clears the result.
func (m *BoardModel) Reset() {
	if m == nil {
		return
	}
	m.grid = grid.New()
	m.digit, m.hasResult = 0, false
}

// SetResult stores the predicted digit.
func (m *BoardModel) SetResult(digit int) {
	if m == nil {
		return
	}
	m.digit, m.hasResult = digit, true
}

// Result returns the stored digit and whether one is present.
func (m *BoardModel) Result() (int, bool) {
	if m == nil {
		return 0, false
	}
	return m.digit, m.hasResult
}

// State reports Classified while a result is stored.
func (m *BoardModel) State() State {
	if _, ok := m.Result(); ok {
		return StateClassified
	}
	return StateIdle
}
