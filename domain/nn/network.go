// Package nn runs inference for small sequential networks stored as JSON model files.
//
// Training is not supported; a model file carries the layer list and the trained
// weights exported from whatever framework produced them.
package nn

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/soocke/digitpad-go/domain/classify"
)

// ErrShape reports layer parameters or inputs that do not fit the propagated shape.
var ErrShape = errors.New("shape mismatch")

// LayerSpec is one layer entry of a model file.
type LayerSpec struct {
	Type       string     `json:"type"`
	Filters    int        `json:"filters,omitempty"`
	Kernel     []int      `json:"kernel,omitempty"`
	Pool       []int      `json:"pool,omitempty"`
	Units      int        `json:"units,omitempty"`
	Rate       float64    `json:"rate,omitempty"`
	Activation Activation `json:"activation,omitempty"`
	Weights    []float64  `json:"weights,omitempty"`
	Bias       []float64  `json:"bias,omitempty"`
}

// ModelFile is the serialized form of a Network.
type ModelFile struct {
	InputShape []int       `json:"input_shape"`
	Layers     []LayerSpec `json:"layers"`
}

// Network is an immutable sequential model.
type Network struct {
	spec   ModelFile
	input  shape
	layers []layer
}

// Build validates spec and constructs the network.
func Build(spec ModelFile) (*Network, error) {
	in, err := inputShape(spec.InputShape)
	if err != nil {
		return nil, err
	}
	if len(spec.Layers) == 0 {
		return nil, errors.New("model has no layers")
	}
	n := &Network{spec: spec, input: in}
	cur := in
	for i, ls := range spec.Layers {
		ls.Activation = Activation(strings.ToLower(string(ls.Activation)))
		if err := ls.Activation.validate(); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		var l layer
		switch strings.ToLower(ls.Type) {
		case TypeConv2D:
			l, err = newConv2D(cur, ls)
		case TypeMaxPool2D:
			l, err = newMaxPool2D(cur, ls)
		case TypeFlatten:
			l = &flatten{o: vector(cur.size())}
		case TypeDense:
			l, err = newDense(cur, ls)
		case TypeDropout:
			if ls.Rate < 0 || ls.Rate >= 1 {
				err = fmt.Errorf("dropout: rate must be in [0, 1), got %v", ls.Rate)
			}
			l = &dropout{o: cur, rate: ls.Rate}
		default:
			err = fmt.Errorf("unknown layer type %q", ls.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		n.layers = append(n.layers, l)
		cur = l.out()
	}
	if !cur.flat() {
		return nil, fmt.Errorf("model output %v is not a vector: %w", cur, ErrShape)
	}
	return n, nil
}

func inputShape(dims []int) (shape, error) {
	for _, d := range dims {
		if d <= 0 {
			return shape{}, fmt.Errorf("input shape %v has non-positive dimension: %w", dims, ErrShape)
		}
	}
	switch len(dims) {
	case 1:
		return vector(dims[0]), nil
	case 2:
		return shape{h: dims[0], w: dims[1], c: 1}, nil
	case 3:
		return shape{h: dims[0], w: dims[1], c: dims[2]}, nil
	default:
		return shape{}, fmt.Errorf("input shape %v must have 1 to 3 dimensions: %w", dims, ErrShape)
	}
}

// Decode reads a JSON model from r.
func Decode(r io.Reader) (*Network, error) {
	var spec ModelFile
	if err := json.NewDecoder(r).Decode(&spec); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	return Build(spec)
}

// Load reads a model file. Paths ending in .gz are gunzipped first.
func Load(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	n, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return n, nil
}

// Encode writes the model as JSON.
func (n *Network) Encode(w io.Writer) error {
	return json.NewEncoder(w).Encode(n.spec)
}

// Save writes the model to path, gzipped when path ends in .gz.
func (n *Network) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if !strings.HasSuffix(path, ".gz") {
		return n.Encode(f)
	}
	zw := gzip.NewWriter(f)
	if err := n.Encode(zw); err != nil {
		return err
	}
	return zw.Close()
}

// InputShape returns the per-sample input dimensions (without batch).
func (n *Network) InputShape() []int {
	return append([]int(nil), n.spec.InputShape...)
}

// Outputs returns the length of the output vector.
func (n *Network) Outputs() int {
	return n.layers[len(n.layers)-1].out().c
}

// Predict runs a single-sample batch and returns the output vector.
// The tensor shape must be (1, input_shape...).
func (n *Network) Predict(in classify.Tensor) ([]float64, error) {
	if err := n.checkInput(in); err != nil {
		return nil, err
	}
	v := volume{shape: n.input, data: append([]float64(nil), in.Data...)}
	for _, l := range n.layers {
		v = l.forward(v)
	}
	return v.data, nil
}

func (n *Network) checkInput(in classify.Tensor) error {
	want := append([]int{1}, n.spec.InputShape...)
	ok := len(in.Shape) == len(want) && len(in.Data) == in.Len()
	for i := 0; ok && i < len(want); i++ {
		ok = in.Shape[i] == want[i]
	}
	if !ok {
		return fmt.Errorf("input shape %v (len %d), model expects %v: %w", in.Shape, len(in.Data), want, ErrShape)
	}
	return nil
}

// Summary lists layers with output shapes and parameter counts.
func (n *Network) Summary() string {
	var b strings.Builder
	total := 0
	fmt.Fprintf(&b, "input %v\n", n.input)
	for i, l := range n.layers {
		fmt.Fprintf(&b, "%2d %-10s %-14v params=%d\n", i, l.kind(), l.out(), l.params())
		total += l.params()
	}
	fmt.Fprintf(&b, "total params=%d", total)
	return b.String()
}

var _ classify.Model = (*Network)(nil)
