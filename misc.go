package dabble

import "math"

// CorrectRound reports whether rounding each output at 0.5 reproduces the
// targets. It is the standard isCorrect for the binary-gate demos.
// Assumes len(outs) == len(targets).
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != targets[i] {
			return false
		}
	}

	return true
}

// Round maps a single output to its 0/1 class at the usual 0.5 threshold.
func Round(out float64) int {
	if out > 0.5 {
		return 1
	}

	return 0
}
