package dabble

import "math"

// TrainArgs is a proxy for the optional arguments to Train that other
// languages provide natively. Data, Epochs, and LearningRate are required;
// the rest may be left zero.
type TrainArgs struct {
	// Data is the set of examples to train on. Each epoch runs the full
	// set once, in order, updating weights after every example.
	Data []Datum

	// Epochs is the number of passes over Data. Zero is a no-op.
	Epochs int

	// LearningRate scales every weight update.
	LearningRate float64

	// StatusEvery controls how often OnStatus runs, in units of epochs.
	// Zero disables status reports.
	StatusEvery int

	// OnStatus, if non-nil, receives the epoch number and the average
	// error over Data whenever StatusEvery divides the epoch.
	OnStatus func(epoch int, avgErr float64)
}

// Train runs stochastic gradient descent over args.Data. The reported
// average error is ½·Σ(target−output)² per example, averaged over the
// dataset. Error conditions:
//
//	(0) If args.Data is empty: ErrNoData,
//	(1) If args.Epochs is negative: ErrNegativeEpochs,
//	(2) If args.LearningRate is not finite and positive: ErrBadLearningRate,
//	(3) If any Datum is the wrong shape: type SizeMismatchError.
func (net *Network) Train(args TrainArgs) error {
	if len(args.Data) == 0 {
		return ErrNoData
	}
	if args.Epochs < 0 {
		return ErrNegativeEpochs
	}
	if args.LearningRate <= 0 || math.IsNaN(args.LearningRate) || math.IsInf(args.LearningRate, 0) {
		return ErrBadLearningRate
	}

	for _, d := range args.Data {
		if len(d.Inputs) != net.inputSize {
			return SizeMismatchError{net.inputSize, len(d.Inputs), "inputs"}
		}
		if len(d.Targets) != net.outputSize {
			return SizeMismatchError{net.outputSize, len(d.Targets), "targets"}
		}
	}

	for epoch := 0; epoch < args.Epochs; epoch++ {
		var total float64

		for _, d := range args.Data {
			outs := net.forward(d.Inputs)

			for k := range d.Targets {
				diff := d.Targets[k] - outs[k]
				total += 0.5 * diff * diff
			}

			net.backward(d.Inputs, d.Targets, args.LearningRate)
		}

		if args.OnStatus != nil && args.StatusEvery > 0 && epoch%args.StatusEvery == 0 {
			args.OnStatus(epoch, total/float64(len(args.Data)))
		}
	}

	return nil
}

// AvgError returns the average per-example error over the given data,
// using the same ½·Σ(target−output)² measure that Train reports.
func (net *Network) AvgError(data []Datum) (float64, error) {
	if len(data) == 0 {
		return 0, ErrNoData
	}

	var total float64
	for _, d := range data {
		outs, err := net.Predict(d.Inputs)
		if err != nil {
			return 0, err
		}
		if len(d.Targets) != net.outputSize {
			return 0, SizeMismatchError{net.outputSize, len(d.Targets), "targets"}
		}

		for k := range d.Targets {
			diff := d.Targets[k] - outs[k]
			total += 0.5 * diff * diff
		}
	}

	return total / float64(len(data)), nil
}

// Accuracy returns the fraction of data for which isCorrect accepts the
// Network's outputs. CorrectRound is the usual choice for isCorrect.
func (net *Network) Accuracy(data []Datum, isCorrect func(outs, targets []float64) bool) (float64, error) {
	if len(data) == 0 {
		return 0, ErrNoData
	}

	var correct int
	for _, d := range data {
		outs, err := net.Predict(d.Inputs)
		if err != nil {
			return 0, err
		}

		if isCorrect(outs, d.Targets) {
			correct++
		}
	}

	return float64(correct) / float64(len(data)), nil
}
