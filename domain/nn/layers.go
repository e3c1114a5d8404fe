package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Layer type names used in model files.
const (
	TypeConv2D    = "conv2d"
	TypeMaxPool2D = "maxpool2d"
	TypeFlatten   = "flatten"
	TypeDense     = "dense"
	TypeDropout   = "dropout"
)

// shape is height x width x channels. Vectors are 1x1xN with vec set, so a
// 1x1 spatial map stays distinct from a flattened one.
type shape struct {
	h, w, c int
	vec     bool
}

func vector(n int) shape { return shape{h: 1, w: 1, c: n, vec: true} }

func (s shape) size() int  { return s.h * s.w * s.c }
func (s shape) flat() bool { return s.vec }
func (s shape) String() string {
	if s.flat() {
		return fmt.Sprintf("(%d)", s.c)
	}
	return fmt.Sprintf("(%d,%d,%d)", s.h, s.w, s.c)
}

// volume is activations in HWC row-major order.
type volume struct {
	shape
	data []float64
}

type layer interface {
	kind() string
	out() shape
	params() int
	forward(in volume) volume
}

// conv2d is a valid-padding, stride 1 convolution with Keras kernel layout
// (kh, kw, in, out).
type conv2d struct {
	in, o   shape
	kh, kw  int
	weights []float64
	bias    []float64
	act     Activation
}

func newConv2D(in shape, s LayerSpec) (*conv2d, error) {
	if s.Filters <= 0 {
		return nil, fmt.Errorf("conv2d: filters must be positive, got %d", s.Filters)
	}
	if len(s.Kernel) != 2 || s.Kernel[0] <= 0 || s.Kernel[1] <= 0 {
		return nil, fmt.Errorf("conv2d: kernel must be [h, w], got %v", s.Kernel)
	}
	kh, kw := s.Kernel[0], s.Kernel[1]
	if in.flat() || kh > in.h || kw > in.w {
		return nil, fmt.Errorf("conv2d: kernel %dx%d does not fit input %v: %w", kh, kw, in, ErrShape)
	}
	if want := kh * kw * in.c * s.Filters; len(s.Weights) != want {
		return nil, fmt.Errorf("conv2d: expected %d weights, got %d: %w", want, len(s.Weights), ErrShape)
	}
	if len(s.Bias) != s.Filters {
		return nil, fmt.Errorf("conv2d: expected %d biases, got %d: %w", s.Filters, len(s.Bias), ErrShape)
	}
	return &conv2d{
		in:      in,
		o:       shape{h: in.h - kh + 1, w: in.w - kw + 1, c: s.Filters},
		kh:      kh,
		kw:      kw,
		weights: s.Weights,
		bias:    s.Bias,
		act:     s.Activation,
	}, nil
}

func (l *conv2d) kind() string { return TypeConv2D }
func (l *conv2d) out() shape   { return l.o }
func (l *conv2d) params() int  { return len(l.weights) + len(l.bias) }

func (l *conv2d) forward(in volume) volume {
	out := volume{shape: l.o, data: make([]float64, l.o.size())}
	filters := l.o.c
	for y := 0; y < l.o.h; y++ {
		for x := 0; x < l.o.w; x++ {
			for f := 0; f < filters; f++ {
				sum := l.bias[f]
				for i := 0; i < l.kh; i++ {
					for j := 0; j < l.kw; j++ {
						base := ((y+i)*in.w + (x + j)) * in.c
						wbase := (i*l.kw + j) * in.c
						for ci := 0; ci < in.c; ci++ {
							sum += in.data[base+ci] * l.weights[(wbase+ci)*filters+f]
						}
					}
				}
				out.data[(y*l.o.w+x)*filters+f] = sum
			}
		}
	}
	l.act.apply(out.data)
	return out
}

// maxPool2D uses stride equal to the pool size and drops partial windows.
type maxPool2D struct {
	o      shape
	ph, pw int
}

func newMaxPool2D(in shape, s LayerSpec) (*maxPool2D, error) {
	if len(s.Pool) != 2 || s.Pool[0] <= 0 || s.Pool[1] <= 0 {
		return nil, fmt.Errorf("maxpool2d: pool must be [h, w], got %v", s.Pool)
	}
	ph, pw := s.Pool[0], s.Pool[1]
	if in.flat() || in.h < ph || in.w < pw {
		return nil, fmt.Errorf("maxpool2d: pool %dx%d does not fit input %v: %w", ph, pw, in, ErrShape)
	}
	return &maxPool2D{o: shape{h: in.h / ph, w: in.w / pw, c: in.c}, ph: ph, pw: pw}, nil
}

func (l *maxPool2D) kind() string { return TypeMaxPool2D }
func (l *maxPool2D) out() shape   { return l.o }
func (l *maxPool2D) params() int  { return 0 }

func (l *maxPool2D) forward(in volume) volume {
	out := volume{shape: l.o, data: make([]float64, l.o.size())}
	for y := 0; y < l.o.h; y++ {
		for x := 0; x < l.o.w; x++ {
			for c := 0; c < l.o.c; c++ {
				best := in.data[((y*l.ph)*in.w+x*l.pw)*in.c+c]
				for i := 0; i < l.ph; i++ {
					for j := 0; j < l.pw; j++ {
						v := in.data[((y*l.ph+i)*in.w+(x*l.pw+j))*in.c+c]
						if v > best {
							best = v
						}
					}
				}
				out.data[(y*l.o.w+x)*l.o.c+c] = best
			}
		}
	}
	return out
}

// flatten reinterprets HWC data as a vector; the order is already row-major.
type flatten struct{ o shape }

func (l *flatten) kind() string { return TypeFlatten }
func (l *flatten) out() shape   { return l.o }
func (l *flatten) params() int  { return 0 }
func (l *flatten) forward(in volume) volume {
	return volume{shape: l.o, data: in.data}
}

// dropout is the identity at inference time.
type dropout struct {
	o    shape
	rate float64
}

func (l *dropout) kind() string             { return TypeDropout }
func (l *dropout) out() shape               { return l.o }
func (l *dropout) params() int              { return 0 }
func (l *dropout) forward(in volume) volume { return in }

// dense computes act(x·W + b) with W stored as (in, units).
type dense struct {
	o    shape
	w    *mat.Dense
	bias *mat.VecDense
	act  Activation
}

func newDense(in shape, s LayerSpec) (*dense, error) {
	if s.Units <= 0 {
		return nil, fmt.Errorf("dense: units must be positive, got %d", s.Units)
	}
	if !in.flat() {
		return nil, fmt.Errorf("dense: input %v is not flat, add a flatten layer: %w", in, ErrShape)
	}
	n := in.c
	if want := n * s.Units; len(s.Weights) != want {
		return nil, fmt.Errorf("dense: expected %d weights, got %d: %w", want, len(s.Weights), ErrShape)
	}
	if len(s.Bias) != s.Units {
		return nil, fmt.Errorf("dense: expected %d biases, got %d: %w", s.Units, len(s.Bias), ErrShape)
	}
	return &dense{
		o:    vector(s.Units),
		w:    mat.NewDense(n, s.Units, append([]float64(nil), s.Weights...)),
		bias: mat.NewVecDense(s.Units, append([]float64(nil), s.Bias...)),
		act:  s.Activation,
	}, nil
}

func (l *dense) kind() string { return TypeDense }
func (l *dense) out() shape   { return l.o }
func (l *dense) params() int {
	r, c := l.w.Dims()
	return r*c + l.bias.Len()
}

func (l *dense) forward(in volume) volume {
	x := mat.NewVecDense(len(in.data), in.data)
	y := mat.NewVecDense(l.o.c, nil)
	y.MulVec(l.w.T(), x)
	y.AddVec(y, l.bias)
	out := volume{shape: l.o, data: y.RawVector().Data}
	l.act.apply(out.data)
	return out
}
