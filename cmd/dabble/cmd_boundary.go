package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/whitmore/dabble"
	"github.com/whitmore/dabble/matnet"
	"github.com/whitmore/dabble/plot"
	"github.com/whitmore/dabble/randutil"
)

var (
	boundaryDataset string
	boundaryEpochs  int
	boundaryHidden  int
)

var boundaryCmd = &cobra.Command{
	Use:   "boundary",
	Short: "Train a ReLU network and draw its decision boundary",
	Long: `Trains the matrix network with a ReLU hidden layer and cross-entropy
loss, then rasters the learned decision boundary to the terminal along
with a sparkline of the loss curve. The spiral dataset is the interesting
one; the gates are included for comparison.`,
	RunE: runBoundary,
}

func init() {
	boundaryCmd.Flags().StringVar(&boundaryDataset, "dataset", "xor", "dataset: xor, and, or, spiral")
	boundaryCmd.Flags().IntVar(&boundaryEpochs, "epochs", 1000, "training epochs")
	boundaryCmd.Flags().IntVar(&boundaryHidden, "hidden", 8, "hidden layer size")
	rootCmd.AddCommand(boundaryCmd)
}

func boundaryData() ([]dabble.Datum, error) {
	switch boundaryDataset {
	case "xor":
		return dabble.XOR(), nil
	case "and":
		return dabble.AND(), nil
	case "or":
		return dabble.OR(), nil
	case "spiral":
		return dabble.Spiral(100, 0.2, randutil.Seeded(seed)), nil
	}

	return nil, errors.Errorf("unknown dataset %q", boundaryDataset)
}

func runBoundary(cmd *cobra.Command, args []string) error {
	banner(fmt.Sprintf("Decision Boundary Demo - %s", boundaryDataset))

	data, err := boundaryData()
	if err != nil {
		return err
	}

	fmt.Printf("\n%d examples, architecture: 2 -> %d (relu) -> 1 (sigmoid)\n",
		len(data), boundaryHidden)

	net, err := matnet.New(matnet.Config{
		Inputs: 2, Hidden: boundaryHidden, Outputs: 1,
		HiddenActivation: matnet.ReLU,
		Loss:             matnet.CrossEntropy,
		LearningRate:     0.5,
		Seed:             seed,
	})
	if err != nil {
		return err
	}

	fmt.Println("\nTraining...")
	err = net.Train(matnet.TrainArgs{
		Data:        data,
		Epochs:      boundaryEpochs,
		StatusEvery: boundaryEpochs / 10,
		OnStatus: func(epoch int, loss, acc float64) {
			fmt.Printf("Epoch %4d | Loss: %.4f | Accuracy: %.2f%%\n", epoch, loss, acc*100)
		},
	})
	if err != nil {
		return err
	}

	acc, err := net.Accuracy(data)
	if err != nil {
		return err
	}
	fmt.Printf("\nFinal accuracy: %.2f%%\n", acc*100)

	pts := make([]plot.Point, len(data))
	for i, d := range data {
		pts[i] = plot.Point{X: d.Inputs[0], Y: d.Inputs[1], Class: int(d.Targets[0])}
	}

	fmt.Println("\nDecision boundary:")
	fmt.Print(plot.Boundary(func(x, y float64) int {
		class, err := net.PredictClass([]float64{x, y})
		if err != nil {
			return 0
		}
		return class
	}, pts, plot.Options{}))

	fmt.Println("\nTraining loss over time:")
	fmt.Println(plot.LossCurve(net.Losses(), 60))

	return nil
}
