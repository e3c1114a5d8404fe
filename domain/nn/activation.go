package nn

import (
	"fmt"
	"math"
)

// Activation names an element-wise (or vector-wise for softmax) output function.
type Activation string

const (
	Linear  Activation = "linear"
	ReLU    Activation = "relu"
	Sigmoid Activation = "sigmoid"
	Tanh    Activation = "tanh"
	Softmax Activation = "softmax"
)

func (a Activation) validate() error {
	switch a {
	case "", Linear, ReLU, Sigmoid, Tanh, Softmax:
		return nil
	default:
		return fmt.Errorf("unknown activation %q", string(a))
	}
}

// apply transforms v in place.
func (a Activation) apply(v []float64) {
	switch a {
	case ReLU:
		for i, x := range v {
			if x < 0 {
				v[i] = 0
			}
		}
	case Sigmoid:
		for i, x := range v {
			v[i] = 1 / (1 + math.Exp(-x))
		}
	case Tanh:
		for i, x := range v {
			v[i] = math.Tanh(x)
		}
	case Softmax:
		softmax(v)
	}
}

func softmax(v []float64) {
	if len(v) == 0 {
		return
	}
	max := v[0]
	for _, x := range v[1:] {
		if x > max {
			max = x
		}
	}
	var sum float64
	for i, x := range v {
		v[i] = math.Exp(x - max)
		sum += v[i]
	}
	for i := range v {
		v[i] /= sum
	}
}
