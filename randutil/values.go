// Package randutil collects the small random-value helpers shared by the
// demos: seeded sources, scalar draws within bounds, and the RNG interface
// used for network weight initialization.
package randutil

import "math/rand"

// Seeded returns a rand.Rand seeded with the given value. Every demo takes
// its randomness from one of these so that runs are reproducible.
func Seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Probe returns the first value drawn from a source seeded with the given
// value. Useful for checking what a seed produces without keeping the
// source around.
func Probe(seed int64) float64 {
	return Seeded(seed).Float64()
}

// Int returns a random integer between min and max, inclusive on both
// ends. If min > max the bounds are swapped.
func Int(src *rand.Rand, min, max int) int {
	if min > max {
		min, max = max, min
	}

	return min + src.Intn(max-min+1)
}

// Float returns a random float64 between min and max.
func Float(src *rand.Rand, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// IntSlice returns a slice of n random integers, each between min and max
// inclusive.
func IntSlice(src *rand.Rand, n, min, max int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = Int(src, min, max)
	}

	return vs
}

// Choice returns a random element of the given slice. The second return is
// false if and only if the slice is empty, in which case the first return
// is the zero value.
func Choice[T any](src *rand.Rand, choices []T) (T, bool) {
	if len(choices) == 0 {
		var zero T
		return zero, false
	}

	return choices[src.Intn(len(choices))], true
}
