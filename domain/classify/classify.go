// Package classify turns a drawing grid into a digit using a pre-trained model.
package classify

import (
	"errors"
	"fmt"

	"github.com/soocke/digitpad-go/domain/grid"
)

// Classes is the number of output classes (digits 0-9).
const Classes = 10

// ErrShape reports a tensor or score vector whose shape does not match.
var ErrShape = errors.New("shape mismatch")

// Tensor is a dense row-major tensor.
type Tensor struct {
	Shape []int
	Data  []float64
}

// Len returns the element count implied by Shape.
func (t Tensor) Len() int {
	if len(t.Shape) == 0 {
		return 0
	}
	n := 1
	for _, d := range t.Shape {
		n *= d
	}
	return n
}

// InputShape is the shape fed to the model: one batch of 28x28 single channel.
func InputShape() []int { return []int{1, grid.Rows, grid.Cols, 1} }

// Model is the inference capability the classifier needs.
// Predict returns one score per class.
type Model interface {
	Predict(in Tensor) ([]float64, error)
}

// Input reshapes the grid into the model input tensor.
func Input(g *grid.Grid) Tensor {
	return Tensor{Shape: InputShape(), Data: g.Values()}
}

// Argmax returns the index of the highest score. Ties resolve to the lowest index.
// It returns -1 for an empty slice.
func Argmax(scores []float64) int {
	best := -1
	for i, s := range scores {
		if best < 0 || s > scores[best] {
			best = i
		}
	}
	return best
}

// Classify runs m on g and returns the predicted digit.
func Classify(m Model, g *grid.Grid) (int, error) {
	if m == nil {
		return 0, errors.New("classify: nil model")
	}
	scores, err := m.Predict(Input(g))
	if err != nil {
		return 0, fmt.Errorf("classify: predict: %w", err)
	}
	if len(scores) != Classes {
		return 0, fmt.Errorf("classify: expected %d scores, got %d: %w", Classes, len(scores), ErrShape)
	}
	return Argmax(scores), nil
}

// Adapter binds a Model so callers only pass the grid.
type Adapter struct {
	Model Model
}

// NewAdapter returns an Adapter over m.
func NewAdapter(m Model) *Adapter { return &Adapter{Model: m} }

// Classify implements the presenter classifier contract.
func (a *Adapter) Classify(g *grid.Grid) (int, error) {
	if a == nil {
		return 0, errors.New("classify: nil adapter")
	}
	return Classify(a.Model, g)
}
