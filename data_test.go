package dabble

import (
	"math"
	"testing"

	"github.com/whitmore/dabble/randutil"
)

func TestTruthTables(t *testing.T) {
	tests := []struct {
		name string
		data []Datum
		fn   func(a, b int) int
	}{
		{"XOR", XOR(), func(a, b int) int { return a ^ b }},
		{"AND", AND(), func(a, b int) int { return a & b }},
		{"OR", OR(), func(a, b int) int { return a | b }},
	}

	for _, tt := range tests {
		if len(tt.data) != 4 {
			t.Errorf("%s has %d rows, want 4", tt.name, len(tt.data))
			continue
		}
		for _, d := range tt.data {
			a, b := int(d.Inputs[0]), int(d.Inputs[1])
			if want := tt.fn(a, b); int(d.Targets[0]) != want {
				t.Errorf("%s(%d, %d) = %v, want %d", tt.name, a, b, d.Targets[0], want)
			}
		}
	}
}

func TestSpiral(t *testing.T) {
	data := Spiral(100, 0.2, randutil.Seeded(42))

	if len(data) != 200 {
		t.Fatalf("len = %d, want 200", len(data))
	}

	var zeros, ones int
	for _, d := range data {
		switch d.Targets[0] {
		case 0:
			zeros++
		case 1:
			ones++
		default:
			t.Fatalf("unexpected label %v", d.Targets[0])
		}

		// radius is at most 1 before noise; noise is on the angle only
		r := math.Hypot(d.Inputs[0], d.Inputs[1])
		if r > 1.0+epsilon {
			t.Errorf("point radius %.4f exceeds 1", r)
		}
	}

	if zeros != 100 || ones != 100 {
		t.Errorf("labels split %d/%d, want 100/100", zeros, ones)
	}
}

func TestSpiralNoiseScale(t *testing.T) {
	// with zero noise the arms are a pure function of n, whatever the seed
	clean := Spiral(50, 0, randutil.Seeded(1))
	again := Spiral(50, 0, randutil.Seeded(99))

	for i := range clean {
		for j := range clean[i].Inputs {
			assertFloat(t, "noiseless point", again[i].Inputs[j], clean[i].Inputs[j], epsilon)
		}
	}

	// nonzero noise perturbs the angles
	jittered := Spiral(50, 0.2, randutil.Seeded(1))
	var moved bool
	for i := range clean {
		if math.Abs(jittered[i].Inputs[0]-clean[i].Inputs[0]) > epsilon {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("noise had no effect on the points")
	}
}

func TestCorrectRound(t *testing.T) {
	if !CorrectRound([]float64{0.9, 0.1}, []float64{1, 0}) {
		t.Error("CorrectRound rejected a match")
	}
	if CorrectRound([]float64{0.9, 0.6}, []float64{1, 0}) {
		t.Error("CorrectRound accepted a mismatch")
	}
}

func TestRound(t *testing.T) {
	if Round(0.49) != 0 || Round(0.51) != 1 {
		t.Error("Round threshold is off")
	}
}
