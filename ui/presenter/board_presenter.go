package presenter

import (
	"fmt"
	"log/slog"

	"github.com/soocke/digitpad-go/domain/grid"
	"github.com/soocke/digitpad-go/ui/model"
)

// Board is the subset of the board model the presenter mutates.
type Board interface {
	Grid() *grid.Grid
	Paint(row, col int) bool
	Reset()
	SetResult(digit int)
	Result() (int, bool)
	State() model.State
}

// Classifier predicts a digit for a grid.
type Classifier interface {
	Classify(g *grid.Grid) (int, error)
}

// SnapshotFunc persists the grid that produced a classification.
type SnapshotFunc func(g *grid.Grid, digit int) error

// StateListener is called on each board state transition.
type StateListener func(prev, next model.State)

// ResultListener is called with every successful classification.
type ResultListener func(digit int)

// BoardPresenter applies paint, reset and classify actions to the board.
type BoardPresenter struct {
	board      Board
	classifier Classifier
	logger     *slog.Logger
	snapshot   SnapshotFunc
	listeners  []StateListener
	results    []ResultListener
}

// NewBoardPresenter returns a presenter over board. logger may be nil.
func NewBoardPresenter(board Board, classifier Classifier, logger *slog.Logger) *BoardPresenter {
	return &BoardPresenter{board: board, classifier: classifier, logger: logger}
}

// SetSnapshot installs an optional snapshot writer invoked after each classification.
func (p *BoardPresenter) SetSnapshot(fn SnapshotFunc) {
	if p == nil {
		return
	}
	p.snapshot = fn
}

// AddListener registers a state transition listener.
func (p *BoardPresenter) AddListener(l StateListener) {
	if p == nil || l == nil {
		return
	}
	p.listeners = append(p.listeners, l)
}

// AddResultListener registers a classification result listener.
func (p *BoardPresenter) AddResultListener(l ResultListener) {
	if p == nil || l == nil {
		return
	}
	p.results = append(p.results, l)
}

// Paint inks the cell at (row, col).
func (p *BoardPresenter) Paint(row, col int) {
	if p == nil || p.board == nil {
		return
	}
	p.board.Paint(row, col)
}

// Reset clears the grid and the result.
func (p *BoardPresenter) Reset() {
	if p == nil || p.board == nil {
		return
	}
	prev := p.board.State()
	p.board.Reset()
	p.notify(prev)
}

// Classify runs the classifier on the current grid and stores the digit.
// Classifier errors are returned wrapped; the frame loop treats them as fatal.
func (p *BoardPresenter) Classify() error {
	if p == nil || p.board == nil || p.classifier == nil {
		return nil
	}
	prev := p.board.State()
	g := p.board.Grid()
	digit, err := p.classifier.Classify(g)
	if err != nil {
		return fmt.Errorf("classify grid: %w", err)
	}
	p.board.SetResult(digit)
	for _, l := range p.results {
		l(digit)
	}
	if p.logger != nil {
		p.logger.Info("digit classified", "digit", digit, "empty", g.Empty())
	}
	if p.snapshot != nil {
		if err := p.snapshot(g, digit); err != nil && p.logger != nil {
			p.logger.Error("snapshot failed", "error", err)
		}
	}
	p.notify(prev)
	return nil
}

// Grid returns the current grid.
func (p *BoardPresenter) Grid() *grid.Grid {
	if p == nil || p.board == nil {
		return nil
	}
	return p.board.Grid()
}

// Result returns the displayed digit, if any.
func (p *BoardPresenter) Result() (int, bool) {
	if p == nil || p.board == nil {
		return 0, false
	}
	return p.board.Result()
}

func (p *BoardPresenter) notify(prev model.State) {
	next := p.board.State()
	if next == prev {
		return
	}
	if p.logger != nil {
		p.logger.Debug("board state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range p.listeners {
		l(prev, next)
	}
}
