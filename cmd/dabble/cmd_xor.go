package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whitmore/dabble"
	"github.com/whitmore/dabble/randutil"
)

const (
	xorEpochs       = 10000
	xorLearningRate = 0.5
	xorHidden       = 4
	statusEvery     = 1000
)

var xorCmd = &cobra.Command{
	Use:   "xor",
	Short: "Train the scalar-loop network on XOR",
	Long: `Trains the plain-loops two-layer perceptron on the XOR truth table and
walks through the whole arc: predictions before training, the error curve
during, predictions after, and the learned weights.`,
	RunE: runXOR,
}

func init() {
	rootCmd.AddCommand(xorCmd)
}

func runXOR(cmd *cobra.Command, args []string) error {
	banner("Scalar Neural Network Demo - Learning XOR")

	data := dabble.XOR()

	fmt.Println("\nXOR Truth Table:")
	fmt.Println("Input1 | Input2 | Output")
	fmt.Println("-------|--------|-------")
	for _, d := range data {
		fmt.Printf("   %.0f   |   %.0f    |   %.0f\n", d.Inputs[0], d.Inputs[1], d.Targets[0])
	}

	fmt.Println("\nCreating neural network...")
	fmt.Printf("Architecture: 2 inputs -> %d hidden neurons -> 1 output\n", xorHidden)

	net, err := dabble.New(2, xorHidden, 1,
		dabble.WithRNG(randutil.Uniform(randutil.Seeded(seed))))
	if err != nil {
		return err
	}

	fmt.Println("\nInitial predictions (before training):")
	if err := printPredictions(net, data); err != nil {
		return err
	}

	fmt.Println("\nTraining the network...")
	err = net.Train(dabble.TrainArgs{
		Data:         data,
		Epochs:       xorEpochs,
		LearningRate: xorLearningRate,
		StatusEvery:  statusEvery,
		OnStatus: func(epoch int, avgErr float64) {
			fmt.Printf("Epoch %5d - Average Error: %.6f\n", epoch, avgErr)
		},
	})
	if err != nil {
		return err
	}

	fmt.Println("\nFinal predictions (after training):")
	if err := printPredictions(net, data); err != nil {
		return err
	}

	acc, err := net.Accuracy(data, dabble.CorrectRound)
	if err != nil {
		return err
	}
	fmt.Printf("\nAccuracy: %.1f%%\n", acc*100)

	fmt.Println("\nTesting with intermediate values:")
	probes := [][]float64{
		{0.1, 0.1}, {0.1, 0.9}, {0.9, 0.1}, {0.9, 0.9}, {0.5, 0.5}, {0.3, 0.7}, {0.7, 0.3},
	}
	for _, in := range probes {
		outs, err := net.Predict(in)
		if err != nil {
			return err
		}
		fmt.Printf("  Input: %v -> Output: %.4f -> Predicted: %d\n",
			in, outs[0], dabble.Round(outs[0]))
	}

	printArchitecture(net)
	printWeights(net)

	fmt.Println()
	banner("Demo Complete!")
	return nil
}

func printPredictions(net *dabble.Network, data []dabble.Datum) error {
	for _, d := range data {
		outs, err := net.Predict(d.Inputs)
		if err != nil {
			return err
		}

		predicted := dabble.Round(outs[0])
		status := "✗"
		if float64(predicted) == d.Targets[0] {
			status = "✓"
		}
		fmt.Printf("  Input: %v -> Output: %.4f -> Predicted: %d (Target: %.0f) %s\n",
			d.Inputs, outs[0], predicted, d.Targets[0], status)
	}
	return nil
}

func printArchitecture(net *dabble.Network) {
	fmt.Println()
	banner("Network Architecture Visualization")
	fmt.Println()
	fmt.Println("    INPUT          HIDDEN           OUTPUT")
	fmt.Println()
	fmt.Println("      X₁ ─────┬──── H₁ ─────┬──── Y")
	fmt.Println("              ├──── H₂ ─────┤")
	fmt.Println("              ├──── H₃ ─────┤")
	fmt.Println("      X₂ ─────┴──── H₄ ─────┘")
	fmt.Println()
	fmt.Printf("  (%d neurons)   (%d neurons)    (%d neuron)\n", 2, 4, 1)
	fmt.Println()
	fmt.Printf("Total parameters: %d\n", net.NumParameters())
}

func printWeights(net *dabble.Network) {
	w1, w2 := net.Weights()

	fmt.Println("\nNetwork Weights:")
	fmt.Println("Input -> Hidden:")
	for i := range w1 {
		for j := range w1[i] {
			fmt.Printf("  w[%d][%d] = %6.3f", i, j, w1[i][j])
		}
		fmt.Println()
	}

	fmt.Println("\nHidden -> Output:")
	for j := range w2 {
		fmt.Printf("  w[%d][0] = %6.3f\n", j, w2[j][0])
	}
}
