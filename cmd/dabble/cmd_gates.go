package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whitmore/dabble"
	"github.com/whitmore/dabble/matnet"
)

var gatesCmd = &cobra.Command{
	Use:   "gates",
	Short: "Train the matrix network on XOR and AND",
	Long: `The same two-layer perceptron as the xor demo, but written against a
matrix library: the whole truth table goes through the forward and
backward pass as one batch. Trains XOR first, then the easier AND gate.`,
	RunE: runGates,
}

func init() {
	rootCmd.AddCommand(gatesCmd)
}

func runGates(cmd *cobra.Command, args []string) error {
	banner("Matrix Neural Network Learning XOR")

	fmt.Println("\nXOR Truth Table:")
	fmt.Println("A | B | A XOR B")
	fmt.Println("--|---|--------")
	for _, d := range dabble.XOR() {
		fmt.Printf("%.0f | %.0f |    %.0f\n", d.Inputs[0], d.Inputs[1], d.Targets[0])
	}
	fmt.Println("\nThis is non-linearly separable - perfect for testing neural networks!")

	if err := trainGate("XOR", dabble.XOR(), 10000); err != nil {
		return err
	}

	fmt.Println()
	banner("Matrix Neural Network Learning AND")

	// fewer epochs needed for the simpler problem
	if err := trainGate("AND", dabble.AND(), 5000); err != nil {
		return err
	}

	fmt.Println()
	banner("Demo Complete!")
	return nil
}

func trainGate(name string, data []dabble.Datum, epochs int) error {
	fmt.Println("\nCreating neural network...")
	fmt.Println("Architecture: 2 inputs -> 4 hidden neurons -> 1 output")

	net, err := matnet.New(matnet.Config{
		Inputs: 2, Hidden: 4, Outputs: 1,
		HiddenActivation: matnet.Sigmoid,
		Loss:             matnet.MSE,
		LearningRate:     0.5,
		Seed:             seed,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\nTraining network on %s data...\n", name)
	err = net.Train(matnet.TrainArgs{
		Data:        data,
		Epochs:      epochs,
		StatusEvery: statusEvery,
		OnStatus: func(epoch int, loss, acc float64) {
			fmt.Printf("Epoch %5d - Loss: %.6f\n", epoch, loss)
		},
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n%s Results:\n", name)
	fmt.Println("----------------------------------------")
	for _, d := range data {
		outs, err := net.Predict(d.Inputs)
		if err != nil {
			return err
		}
		fmt.Printf("Input: %v -> Output: %.4f -> Rounded: %d\n",
			d.Inputs, outs[0], dabble.Round(outs[0]))
	}

	fmt.Println("\nTesting with intermediate values:")
	for _, in := range [][]float64{
		{0.1, 0.1}, {0.1, 0.9}, {0.9, 0.1}, {0.9, 0.9}, {0.5, 0.5},
	} {
		outs, err := net.Predict(in)
		if err != nil {
			return err
		}
		fmt.Printf("Input: %v -> Output: %.4f -> Rounded: %d\n",
			in, outs[0], dabble.Round(outs[0]))
	}

	return nil
}
