// Command dabble bundles the repository's demos behind one binary: the
// scalar and matrix XOR/AND networks, the decision-boundary demo, the
// random-value helpers, and the payment-network simulation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	seed    int64
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dabble",
	Short: "dabble - toy networks and simulation sketches",
	Long: `dabble is a bundle of self-contained teaching demos.

The neural-network demos train the same fixed two-layer perceptron three
ways: with scalar loops (xor), with a matrix library (gates), and with
ReLU plus a terminal decision-boundary raster (boundary). The remaining
demos exercise the random-value helpers (rand) and run a simulated
payment network with decorative fraud scoring and a toy proof-of-work
ledger (paysim).

Every demo is seeded; re-running with the same --seed reproduces the run.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "seed for all randomness")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func banner(title string) {
	line := "============================================================"
	fmt.Println(line)
	fmt.Println(title)
	fmt.Println(line)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
