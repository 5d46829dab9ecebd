package dabble

import (
	"math"
	"math/rand"
)

// Datum is a single training example: a set of inputs paired with the
// outputs the network should produce for them.
type Datum struct {
	Inputs  []float64
	Targets []float64
}

// XOR returns the exclusive-or truth table, the classic non-linearly
// separable problem for testing small networks.
func XOR() []Datum {
	return []Datum{
		{[]float64{0, 0}, []float64{0}},
		{[]float64{0, 1}, []float64{1}},
		{[]float64{1, 0}, []float64{1}},
		{[]float64{1, 1}, []float64{0}},
	}
}

// AND returns the and-gate truth table.
func AND() []Datum {
	return []Datum{
		{[]float64{0, 0}, []float64{0}},
		{[]float64{0, 1}, []float64{0}},
		{[]float64{1, 0}, []float64{0}},
		{[]float64{1, 1}, []float64{1}},
	}
}

// OR returns the or-gate truth table.
func OR() []Datum {
	return []Datum{
		{[]float64{0, 0}, []float64{0}},
		{[]float64{0, 1}, []float64{1}},
		{[]float64{1, 0}, []float64{1}},
		{[]float64{1, 1}, []float64{1}},
	}
}

// Spiral returns two interleaved spiral arms of n points each, labeled 0
// and 1. Radius runs linearly from 0 to 1 along each arm while the angle
// sweeps four radians per arm, jittered by gaussian noise scaled by the
// noise argument; 0.2 is a reasonable amount, 0 gives clean arms.
func Spiral(n int, noise float64, src *rand.Rand) []Datum {
	if n < 2 {
		n = 2
	}

	data := make([]Datum, 0, 2*n)

	for class := 0; class < 2; class++ {
		for i := 0; i < n; i++ {
			r := float64(i) / float64(n-1)
			t := float64(4*class) + 4*float64(i)/float64(n-1) + src.NormFloat64()*noise

			data = append(data, Datum{
				Inputs:  []float64{r * math.Sin(t), r * math.Cos(t)},
				Targets: []float64{float64(class)},
			})
		}
	}

	return data
}
