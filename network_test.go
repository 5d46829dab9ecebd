package dabble

import (
	"math"
	"testing"

	"github.com/whitmore/dabble/randutil"
)

const epsilon = 1e-6

func assertFloat(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.8f, want %.8f (diff %.8f)", name, got, want, math.Abs(got-want))
	}
}

func testNet(t *testing.T, seed int64) *Network {
	t.Helper()
	net, err := New(2, 4, 1, WithRNG(randutil.Uniform(randutil.Seeded(seed))))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return net
}

func TestNewRejectsBadSizes(t *testing.T) {
	for _, sizes := range [][3]int{{0, 4, 1}, {2, 0, 1}, {2, 4, 0}, {-1, 4, 1}} {
		if _, err := New(sizes[0], sizes[1], sizes[2]); err != ErrNonPositiveLayer {
			t.Errorf("New(%v) error = %v, want ErrNonPositiveLayer", sizes, err)
		}
	}
}

func TestNewShapes(t *testing.T) {
	net := testNet(t, 1)
	if net.InputSize() != 2 || net.OutputSize() != 1 {
		t.Errorf("sizes = (%d, %d), want (2, 1)", net.InputSize(), net.OutputSize())
	}
	// 2×4 + 4 + 4×1 + 1
	if got := net.NumParameters(); got != 17 {
		t.Errorf("NumParameters = %d, want 17", got)
	}
}

func TestSigmoid(t *testing.T) {
	assertFloat(t, "sigmoid(0)", sigmoid(0), 0.5, epsilon)
	assertFloat(t, "sigmoid(+inf)", sigmoid(1000), 1.0, epsilon)
	assertFloat(t, "sigmoid(-inf)", sigmoid(-1000), 0.0, epsilon)
	// symmetry: σ(-x) = 1 - σ(x)
	assertFloat(t, "sigmoid symmetry", sigmoid(-2)+sigmoid(2), 1.0, epsilon)
}

func TestForwardKnownWeights(t *testing.T) {
	net, err := New(2, 2, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// hand-set weights so the pass is checkable by hand
	net.w1 = [][]float64{{1, -1}, {0.5, 0.5}}
	net.b1 = []float64{0, 0}
	net.w2 = [][]float64{{1}, {1}}
	net.b2 = []float64{-1}

	outs, err := net.Predict([]float64{1, 1})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	h0 := sigmoid(1*1 + 1*0.5)  // 1.5
	h1 := sigmoid(1*-1 + 1*0.5) // -0.5
	want := sigmoid(h0 + h1 - 1)
	assertFloat(t, "output", outs[0], want, epsilon)
}

func TestPredictSizeMismatch(t *testing.T) {
	net := testNet(t, 1)
	if _, err := net.Predict([]float64{1}); err == nil {
		t.Fatal("Predict accepted wrong input size")
	} else if _, ok := err.(SizeMismatchError); !ok {
		t.Fatalf("Predict error = %T, want SizeMismatchError", err)
	}
}

// TestBackwardMatchesNumericalGradient perturbs a weight and checks that
// the backprop update moved it in proportion to the numerical gradient of
// the ½·Σ(t−o)² error.
func TestBackwardMatchesNumericalGradient(t *testing.T) {
	const lr, h = 0.001, 1e-5

	d := Datum{Inputs: []float64{0.7, 0.3}, Targets: []float64{1}}

	errAt := func(net *Network) float64 {
		outs := net.forward(d.Inputs)
		diff := d.Targets[0] - outs[0]
		return 0.5 * diff * diff
	}

	for _, spot := range []struct {
		name string
		get  func(net *Network) *float64
	}{
		{"w1[0][1]", func(net *Network) *float64 { return &net.w1[0][1] }},
		{"w2[2][0]", func(net *Network) *float64 { return &net.w2[2][0] }},
		{"b1[3]", func(net *Network) *float64 { return &net.b1[3] }},
		{"b2[0]", func(net *Network) *float64 { return &net.b2[0] }},
	} {
		net := testNet(t, 7)

		// numerical dE/dw via central difference
		w := spot.get(net)
		orig := *w
		*w = orig + h
		up := errAt(net)
		*w = orig - h
		down := errAt(net)
		*w = orig
		numGrad := (up - down) / (2 * h)

		net.forward(d.Inputs)
		net.backward(d.Inputs, d.Targets, lr)
		applied := (*spot.get(net) - orig) / lr

		assertFloat(t, spot.name, applied, -numGrad, 1e-4)
	}
}

func TestTrainValidation(t *testing.T) {
	net := testNet(t, 1)

	if err := net.Train(TrainArgs{Epochs: 10, LearningRate: 0.5}); err != ErrNoData {
		t.Errorf("empty data: error = %v, want ErrNoData", err)
	}
	if err := net.Train(TrainArgs{Data: AND(), Epochs: -1, LearningRate: 0.5}); err != ErrNegativeEpochs {
		t.Errorf("negative epochs: error = %v, want ErrNegativeEpochs", err)
	}
	if err := net.Train(TrainArgs{Data: AND(), Epochs: 10}); err != ErrBadLearningRate {
		t.Errorf("zero rate: error = %v, want ErrBadLearningRate", err)
	}

	bad := []Datum{{Inputs: []float64{1}, Targets: []float64{0}}}
	if err := net.Train(TrainArgs{Data: bad, Epochs: 1, LearningRate: 0.5}); err == nil {
		t.Error("Train accepted a misshapen Datum")
	}
}

func TestTrainZeroEpochsIsNoOp(t *testing.T) {
	net := testNet(t, 3)
	before, _ := net.AvgError(AND())

	if err := net.Train(TrainArgs{Data: AND(), Epochs: 0, LearningRate: 0.5}); err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	after, _ := net.AvgError(AND())
	assertFloat(t, "error after zero epochs", after, before, epsilon)
}

func TestTrainLearnsAND(t *testing.T) {
	net := testNet(t, 42)

	err := net.Train(TrainArgs{Data: AND(), Epochs: 5000, LearningRate: 0.5})
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	acc, err := net.Accuracy(AND(), CorrectRound)
	if err != nil {
		t.Fatalf("Accuracy failed: %v", err)
	}
	if acc != 1.0 {
		t.Errorf("accuracy on AND = %.2f, want 1.00", acc)
	}
}

func TestTrainReducesXORError(t *testing.T) {
	net := testNet(t, 42)

	before, err := net.AvgError(XOR())
	if err != nil {
		t.Fatalf("AvgError failed: %v", err)
	}

	var statusCalls int
	err = net.Train(TrainArgs{
		Data:         XOR(),
		Epochs:       10000,
		LearningRate: 0.5,
		StatusEvery:  1000,
		OnStatus:     func(int, float64) { statusCalls++ },
	})
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	after, err := net.AvgError(XOR())
	if err != nil {
		t.Fatalf("AvgError failed: %v", err)
	}

	if after > before/2 {
		t.Errorf("error only dropped from %.4f to %.4f", before, after)
	}
	if statusCalls != 10 {
		t.Errorf("OnStatus ran %d times, want 10", statusCalls)
	}
}
