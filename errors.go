package dabble

import "fmt"

// Error is a wrapper for specific types of errors for which there is no
// additional information necessary. These errors are defined as global
// variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrNoData           = Error{"no training data provided"}
	ErrNegativeEpochs   = Error{"number of epochs is negative"}
	ErrBadLearningRate  = Error{"learning rate is zero, negative, or not finite"}
	ErrNonPositiveLayer = Error{"layer size is not positive"}
)

// SizeMismatchError documents a slice whose length does not match what the
// Network was constructed with.
type SizeMismatchError struct {
	Expected, Got int
	Kind          string // "inputs" or "targets"
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("wrong number of %s: expected %d, got %d", err.Kind, err.Expected, err.Got)
}
