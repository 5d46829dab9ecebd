package dabble

import (
	"math"

	"github.com/whitmore/dabble/randutil"
)

// Network is a fixed two-layer perceptron: inputs feed a sigmoid hidden
// layer, which feeds a sigmoid output layer. All state is plain slices so
// that the arithmetic stays readable.
type Network struct {
	w1 [][]float64 // [input][hidden]
	b1 []float64
	w2 [][]float64 // [hidden][output]
	b2 []float64

	inputSize, hiddenSize, outputSize int

	// activations from the most recent forward pass, reused by backprop
	hidden []float64
	output []float64
}

// An Option adjusts how New constructs a Network.
type Option func(*settings)

type settings struct {
	rng randutil.RNG
}

// WithRNG sets the source used to initialize weights. The default draws
// uniformly from (-1, 1) with an unseeded source.
func WithRNG(rng randutil.RNG) Option {
	return func(s *settings) {
		s.rng = rng
	}
}

// New returns a Network with the given layer sizes and randomly
// initialized weights. Biases start at zero. New returns
// ErrNonPositiveLayer if any size is less than one.
func New(inputs, hidden, outputs int, opts ...Option) (*Network, error) {
	if inputs < 1 || hidden < 1 || outputs < 1 {
		return nil, ErrNonPositiveLayer
	}

	s := settings{rng: randutil.Uniform(randutil.Seeded(1))}
	for _, o := range opts {
		o(&s)
	}

	net := &Network{
		w1:         make([][]float64, inputs),
		b1:         make([]float64, hidden),
		w2:         make([][]float64, hidden),
		b2:         make([]float64, outputs),
		inputSize:  inputs,
		hiddenSize: hidden,
		outputSize: outputs,
		hidden:     make([]float64, hidden),
		output:     make([]float64, outputs),
	}

	for i := range net.w1 {
		net.w1[i] = make([]float64, hidden)
		for j := range net.w1[i] {
			net.w1[i][j] = s.rng.Gen()
		}
	}
	for j := range net.w2 {
		net.w2[j] = make([]float64, outputs)
		for k := range net.w2[j] {
			net.w2[j][k] = s.rng.Gen()
		}
	}

	return net, nil
}

// InputSize returns the number of input values the Network expects.
func (net *Network) InputSize() int {
	return net.inputSize
}

// OutputSize returns the number of output values the Network produces.
func (net *Network) OutputSize() int {
	return net.outputSize
}

// NumParameters returns the total number of weights and biases.
func (net *Network) NumParameters() int {
	return net.inputSize*net.hiddenSize + net.hiddenSize +
		net.hiddenSize*net.outputSize + net.outputSize
}

// sigmoid saturates instead of overflowing for very large |x|.
func sigmoid(x float64) float64 {
	if x < -500 {
		return 0
	} else if x > 500 {
		return 1
	}

	return 1 / (1 + math.Exp(-x))
}

// sigmoidDeriv takes the activation, not the pre-activation.
func sigmoidDeriv(a float64) float64 {
	return a * (1 - a)
}

// forward runs one pass, storing the hidden and output activations on the
// Network for the following backward pass.
func (net *Network) forward(inputs []float64) []float64 {
	for j := 0; j < net.hiddenSize; j++ {
		sum := net.b1[j]
		for i := range inputs {
			sum += inputs[i] * net.w1[i][j]
		}
		net.hidden[j] = sigmoid(sum)
	}

	for k := 0; k < net.outputSize; k++ {
		sum := net.b2[k]
		for j := 0; j < net.hiddenSize; j++ {
			sum += net.hidden[j] * net.w2[j][k]
		}
		net.output[k] = sigmoid(sum)
	}

	return net.output
}

// backward updates all weights and biases from the activations left by the
// most recent forward pass.
func (net *Network) backward(inputs, targets []float64, learningRate float64) {
	outputDeltas := make([]float64, net.outputSize)
	for k := range outputDeltas {
		err := targets[k] - net.output[k]
		outputDeltas[k] = err * sigmoidDeriv(net.output[k])
	}

	hiddenDeltas := make([]float64, net.hiddenSize)
	for j := range hiddenDeltas {
		var err float64
		for k := 0; k < net.outputSize; k++ {
			err += outputDeltas[k] * net.w2[j][k]
		}
		hiddenDeltas[j] = err * sigmoidDeriv(net.hidden[j])
	}

	for j := 0; j < net.hiddenSize; j++ {
		for k := 0; k < net.outputSize; k++ {
			net.w2[j][k] += learningRate * outputDeltas[k] * net.hidden[j]
		}
	}
	for k := 0; k < net.outputSize; k++ {
		net.b2[k] += learningRate * outputDeltas[k]
	}

	for i := range inputs {
		for j := 0; j < net.hiddenSize; j++ {
			net.w1[i][j] += learningRate * hiddenDeltas[j] * inputs[i]
		}
	}
	for j := 0; j < net.hiddenSize; j++ {
		net.b1[j] += learningRate * hiddenDeltas[j]
	}
}

// Predict returns a copy of the Network's outputs for the given inputs.
// Predict returns a SizeMismatchError if the number of inputs does not
// match InputSize.
func (net *Network) Predict(inputs []float64) ([]float64, error) {
	if len(inputs) != net.inputSize {
		return nil, SizeMismatchError{net.inputSize, len(inputs), "inputs"}
	}

	outs := make([]float64, net.outputSize)
	copy(outs, net.forward(inputs))
	return outs, nil
}

// Weights returns copies of the input-to-hidden and hidden-to-output
// weight matrices, for printing.
func (net *Network) Weights() (w1, w2 [][]float64) {
	w1 = make([][]float64, len(net.w1))
	for i := range net.w1 {
		w1[i] = append([]float64(nil), net.w1[i]...)
	}

	w2 = make([][]float64, len(net.w2))
	for j := range net.w2 {
		w2[j] = append([]float64(nil), net.w2[j]...)
	}

	return w1, w2
}
