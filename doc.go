// Package dabble holds a pocket-sized feed-forward neural network and the
// datasets its demos train on. It exists to be read, not deployed: the
// network is a fixed two-layer perceptron written with plain loops over
// float64 slices, so every line of the forward and backward pass is visible.
//
// Creating Networks
//
// Networks are built with New, which fixes the layer sizes up front:
//
//	net, err := dabble.New(2, 4, 1)
//	if err != nil {
//		return err
//	}
//
// Weights start uniformly random in (-1, 1); an alternative source can be
// supplied with WithRNG, which the demos use to make runs reproducible.
//
// Training and Testing
//
// Training uses the TrainArgs struct as a stand-in for optional arguments:
//
//	err = net.Train(dabble.TrainArgs{
//		Data:         dabble.XOR(),
//		Epochs:       10000,
//		LearningRate: 0.5,
//		StatusEvery:  1000,
//		OnStatus: func(epoch int, avgErr float64) {
//			fmt.Printf("Epoch %5d - Average Error: %.6f\n", epoch, avgErr)
//		},
//	})
//
// Data is a slice of Datum, each pairing inputs with target outputs. The
// package ships the binary truth tables (XOR, AND, OR) and a two-arm
// Spiral generator for something less separable.
//
// Prediction is just the forward pass:
//
//	outs, err := net.Predict([]float64{1, 0})
//	if err != nil {
//		return err
//	}
//
// Accuracy and CorrectRound cover the usual "round and compare" scoring.
//
// For the same network written against a matrix library instead of scalar
// loops, see the subpackage matnet.
package dabble
