package randutil

import (
	"math"
	"testing"
)

func TestSeededIsReproducible(t *testing.T) {
	a, b := Seeded(42), Seeded(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestProbeMatchesSeeded(t *testing.T) {
	if Probe(42) != Seeded(42).Float64() {
		t.Error("Probe disagrees with Seeded")
	}
}

func TestIntBounds(t *testing.T) {
	src := Seeded(1)
	for i := 0; i < 1000; i++ {
		v := Int(src, 1, 100)
		if v < 1 || v > 100 {
			t.Fatalf("Int(1, 100) = %d", v)
		}
	}

	// single-value range and swapped bounds
	if v := Int(src, 5, 5); v != 5 {
		t.Errorf("Int(5, 5) = %d", v)
	}
	if v := Int(src, 10, 1); v < 1 || v > 10 {
		t.Errorf("Int(10, 1) = %d, outside [1, 10]", v)
	}
}

func TestFloatBounds(t *testing.T) {
	src := Seeded(1)
	for i := 0; i < 1000; i++ {
		v := Float(src, 0, 10)
		if v < 0 || v >= 10 {
			t.Fatalf("Float(0, 10) = %v", v)
		}
	}
}

func TestIntSlice(t *testing.T) {
	vs := IntSlice(Seeded(1), 5, 1, 100)
	if len(vs) != 5 {
		t.Fatalf("len = %d, want 5", len(vs))
	}
	for _, v := range vs {
		if v < 1 || v > 100 {
			t.Errorf("value %d outside [1, 100]", v)
		}
	}
}

func TestChoice(t *testing.T) {
	colors := []string{"red", "blue", "green", "yellow", "purple"}
	c, ok := Choice(Seeded(1), colors)
	if !ok {
		t.Fatal("Choice reported failure on a non-empty slice")
	}

	var found bool
	for _, color := range colors {
		if c == color {
			found = true
		}
	}
	if !found {
		t.Errorf("Choice returned %q, not in the slice", c)
	}

	if _, ok := Choice(Seeded(1), []string(nil)); ok {
		t.Error("Choice reported success on an empty slice")
	}
}

func TestUniformBounds(t *testing.T) {
	rng := Uniform(Seeded(1)).Bounds(-2, 3)
	for i := 0; i < 1000; i++ {
		v := rng.Gen()
		if v < -2 || v >= 3 {
			t.Fatalf("Uniform(-2, 3) = %v", v)
		}
	}
}

func TestNormalMeanSD(t *testing.T) {
	rng := Normal(Seeded(1)).Mean(10).SD(0.5)

	var sum float64
	const n = 10000
	for i := 0; i < n; i++ {
		sum += rng.Gen()
	}

	mean := sum / n
	if math.Abs(mean-10) > 0.1 {
		t.Errorf("sample mean = %.3f, want ≈10", mean)
	}
}

func TestTruncNormalStaysInside(t *testing.T) {
	rng := TruncNormal(Seeded(1)).Trunc(1)
	for i := 0; i < 1000; i++ {
		v := rng.Gen()
		if v < -1 || v > 1 {
			t.Fatalf("TruncNormal(1) = %v", v)
		}
	}
}
