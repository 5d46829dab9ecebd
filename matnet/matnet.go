// Package matnet is the root package's two-layer network rewritten against
// a matrix library. Where the root package spells the arithmetic out with
// nested loops, matnet runs whole batches through dense matrix products,
// which is how the same demo reads when an array library is available.
//
// The hidden activation and loss are selectable only because the demos
// need both flavors: sigmoid with squared error for the gate demos, and
// ReLU into a sigmoid output with cross-entropy for the decision-boundary
// demo. This is not a layer framework.
package matnet

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/whitmore/dabble"
	"github.com/whitmore/dabble/randutil"
)

// Activation selects the hidden-layer activation. The output layer is
// always sigmoid, since every demo ends in a binary decision.
type Activation int

const (
	Sigmoid Activation = iota
	ReLU
)

func (a Activation) String() string {
	if a == ReLU {
		return "relu"
	}
	return "sigmoid"
}

// Loss selects the training loss.
type Loss int

const (
	MSE Loss = iota
	CrossEntropy
)

func (l Loss) String() string {
	if l == CrossEntropy {
		return "cross-entropy"
	}
	return "mse"
}

// Config fixes the shape and hyperparameters of a Network.
type Config struct {
	Inputs, Hidden, Outputs int
	HiddenActivation        Activation
	Loss                    Loss
	LearningRate            float64
	Seed                    int64
}

// Network is the batch, matrix-backed two-layer perceptron.
type Network struct {
	cfg Config

	w1, w2 *mat.Dense
	b1, b2 []float64

	// caches from the most recent forward pass
	a1, a2 *mat.Dense

	losses []float64
}

// New returns a Network per the Config. Weights draw from a normal
// distribution, scaled by √(2/fanIn) when the hidden activation is ReLU
// (the He/Xavier-style init the boundary demo uses) and unscaled
// otherwise. Biases start at zero.
func New(cfg Config) (*Network, error) {
	if cfg.Inputs < 1 || cfg.Hidden < 1 || cfg.Outputs < 1 {
		return nil, errors.Errorf("layer sizes must be positive, got %d/%d/%d",
			cfg.Inputs, cfg.Hidden, cfg.Outputs)
	}
	if cfg.LearningRate <= 0 || math.IsNaN(cfg.LearningRate) {
		return nil, errors.Errorf("learning rate must be positive, got %v", cfg.LearningRate)
	}

	src := randutil.Seeded(cfg.Seed)

	scale1, scale2 := 1.0, 1.0
	if cfg.HiddenActivation == ReLU {
		scale1 = math.Sqrt(2.0 / float64(cfg.Inputs))
		scale2 = math.Sqrt(2.0 / float64(cfg.Hidden))
	}

	fill := func(rows, cols int, rng randutil.RNG) *mat.Dense {
		vs := make([]float64, rows*cols)
		for i := range vs {
			vs[i] = rng.Gen()
		}
		return mat.NewDense(rows, cols, vs)
	}

	return &Network{
		cfg: cfg,
		w1:  fill(cfg.Inputs, cfg.Hidden, randutil.Normal(src).SD(scale1)),
		w2:  fill(cfg.Hidden, cfg.Outputs, randutil.Normal(src).SD(scale2)),
		b1:  make([]float64, cfg.Hidden),
		b2:  make([]float64, cfg.Outputs),
	}, nil
}

func sigmoid(x float64) float64 {
	if x < -500 {
		return 0
	} else if x > 500 {
		return 1
	}
	return 1 / (1 + math.Exp(-x))
}

// Matrices splits a dataset into an n×inputs matrix and an n×outputs
// matrix, the shapes forward and backward work in.
func Matrices(data []dabble.Datum) (x, y *mat.Dense, err error) {
	if len(data) == 0 {
		return nil, nil, errors.New("no data to convert")
	}

	in, out := len(data[0].Inputs), len(data[0].Targets)
	xs := make([]float64, 0, len(data)*in)
	ys := make([]float64, 0, len(data)*out)

	for i, d := range data {
		if len(d.Inputs) != in || len(d.Targets) != out {
			return nil, nil, errors.Errorf("datum %d has shape %d/%d, want %d/%d",
				i, len(d.Inputs), len(d.Targets), in, out)
		}
		xs = append(xs, d.Inputs...)
		ys = append(ys, d.Targets...)
	}

	return mat.NewDense(len(data), in, xs), mat.NewDense(len(data), out, ys), nil
}

// forward runs the whole batch, caching activations for backward.
func (net *Network) forward(x *mat.Dense) *mat.Dense {
	var z1 mat.Dense
	z1.Mul(x, net.w1)
	z1.Apply(func(_, j int, v float64) float64 { return v + net.b1[j] }, &z1)

	net.a1 = &mat.Dense{}
	if net.cfg.HiddenActivation == ReLU {
		net.a1.Apply(func(_, _ int, v float64) float64 { return math.Max(0, v) }, &z1)
	} else {
		net.a1.Apply(func(_, _ int, v float64) float64 { return sigmoid(v) }, &z1)
	}

	var z2 mat.Dense
	z2.Mul(net.a1, net.w2)
	z2.Apply(func(_, j int, v float64) float64 { return v + net.b2[j] }, &z2)

	net.a2 = &mat.Dense{}
	net.a2.Apply(func(_, _ int, v float64) float64 { return sigmoid(v) }, &z2)

	return net.a2
}

// loss computes the configured loss over the cached outputs.
func (net *Network) loss(y *mat.Dense) float64 {
	rows, cols := y.Dims()
	n := float64(rows * cols)

	var sum float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			o, t := net.a2.At(i, j), y.At(i, j)
			if net.cfg.Loss == CrossEntropy {
				sum -= t*math.Log(o+1e-8) + (1-t)*math.Log(1-o+1e-8)
			} else {
				sum += (t - o) * (t - o)
			}
		}
	}

	return sum / n
}

// backward computes batch gradients and applies one gradient-descent step.
func (net *Network) backward(x, y *mat.Dense) {
	rows, _ := x.Dims()
	m := float64(rows)

	// output layer: cross-entropy through sigmoid cancels to a2−y;
	// squared error keeps the σ' factor
	var dz2 mat.Dense
	dz2.Sub(net.a2, y)
	if net.cfg.Loss == MSE {
		dz2.Apply(func(i, j int, v float64) float64 {
			o := net.a2.At(i, j)
			return v * o * (1 - o)
		}, &dz2)
	}

	var dw2 mat.Dense
	dw2.Mul(net.a1.T(), &dz2)
	dw2.Scale(1/m, &dw2)
	db2 := colMeans(&dz2)

	var da1 mat.Dense
	da1.Mul(&dz2, net.w2.T())

	var dz1 mat.Dense
	if net.cfg.HiddenActivation == ReLU {
		dz1.Apply(func(i, j int, v float64) float64 {
			if net.a1.At(i, j) > 0 {
				return v
			}
			return 0
		}, &da1)
	} else {
		dz1.Apply(func(i, j int, v float64) float64 {
			a := net.a1.At(i, j)
			return v * a * (1 - a)
		}, &da1)
	}

	var dw1 mat.Dense
	dw1.Mul(x.T(), &dz1)
	dw1.Scale(1/m, &dw1)
	db1 := colMeans(&dz1)

	lr := net.cfg.LearningRate

	var step mat.Dense
	step.Scale(lr, &dw2)
	net.w2.Sub(net.w2, &step)
	step.Reset()
	step.Scale(lr, &dw1)
	net.w1.Sub(net.w1, &step)

	for j := range net.b2 {
		net.b2[j] -= lr * db2[j]
	}
	for j := range net.b1 {
		net.b1[j] -= lr * db1[j]
	}
}

func colMeans(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += m.At(i, j)
		}
		out[j] = sum / float64(rows)
	}
	return out
}

// TrainArgs mirrors the root package's optional-argument struct.
type TrainArgs struct {
	Data        []dabble.Datum
	Epochs      int
	StatusEvery int
	OnStatus    func(epoch int, loss, accuracy float64)
}

// Train runs full-batch gradient descent, appending the loss of every
// epoch to the history returned by Losses.
func (net *Network) Train(args TrainArgs) error {
	x, y, err := Matrices(args.Data)
	if err != nil {
		return errors.Wrap(err, "preparing training batch")
	}
	if args.Epochs < 0 {
		return errors.Errorf("number of epochs is negative (%d)", args.Epochs)
	}

	for epoch := 0; epoch < args.Epochs; epoch++ {
		net.forward(x)
		net.losses = append(net.losses, net.loss(y))
		net.backward(x, y)

		if args.OnStatus != nil && args.StatusEvery > 0 && epoch%args.StatusEvery == 0 {
			acc, _ := net.Accuracy(args.Data)
			args.OnStatus(epoch, net.losses[len(net.losses)-1], acc)
		}
	}

	return nil
}

// Losses returns the per-epoch loss history accumulated by Train.
func (net *Network) Losses() []float64 {
	return net.losses
}

// Predict returns the raw sigmoid outputs for a single example.
func (net *Network) Predict(inputs []float64) ([]float64, error) {
	if len(inputs) != net.cfg.Inputs {
		return nil, errors.Errorf("wrong number of inputs: expected %d, got %d",
			net.cfg.Inputs, len(inputs))
	}

	out := net.forward(mat.NewDense(1, len(inputs), append([]float64(nil), inputs...)))
	_, cols := out.Dims()

	vs := make([]float64, cols)
	for j := 0; j < cols; j++ {
		vs[j] = out.At(0, j)
	}
	return vs, nil
}

// PredictClass thresholds the first output at 0.5.
func (net *Network) PredictClass(inputs []float64) (int, error) {
	outs, err := net.Predict(inputs)
	if err != nil {
		return 0, err
	}

	if outs[0] > 0.5 {
		return 1, nil
	}
	return 0, nil
}

// Accuracy returns the fraction of data whose rounded outputs match the
// targets exactly.
func (net *Network) Accuracy(data []dabble.Datum) (float64, error) {
	if len(data) == 0 {
		return 0, errors.New("no data to score")
	}

	var correct int
	for _, d := range data {
		outs, err := net.Predict(d.Inputs)
		if err != nil {
			return 0, err
		}
		if dabble.CorrectRound(outs, d.Targets) {
			correct++
		}
	}

	return float64(correct) / float64(len(data)), nil
}
