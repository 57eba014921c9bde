package score

import (
	"math"
	"testing"
)

func TestAnchors(t *testing.T) {
	c := NewCalibrator(30, 0.5)

	if got := c.Score(0, 10); got != 0 {
		t.Fatalf("zero surprise: got %v, want 0", got)
	}

	// Uniform-random baseline maps to exactly 100 for any alphabet size.
	for _, a := range []int{2, 16, 30, 64} {
		cal := NewCalibrator(a, 0.5)
		got := cal.Score(math.Log2(float64(a)), 50)
		if math.Abs(got-100) > 1e-9 {
			t.Fatalf("A=%d: baseline maps to %v, want 100", a, got)
		}
	}

	// The ceiling maps to exactly 200.
	moves := 200
	got := c.Score(c.Ceiling(moves), moves)
	if math.Abs(got-200) > 1e-9 {
		t.Fatalf("ceiling maps to %v, want 200", got)
	}
}

func TestMonotonicAndContinuous(t *testing.T) {
	c := NewCalibrator(16, 0.5)
	moves := 100
	prev := -1.0
	for bits := 0.0; bits <= c.Ceiling(moves); bits += 0.01 {
		s := c.Score(bits, moves)
		if s < prev {
			t.Fatalf("score decreased: %v bits -> %v (prev %v)", bits, s, prev)
		}
		prev = s
	}

	// No jump at the baseline seam.
	b := c.Baseline()
	lo := c.Score(b-1e-9, moves)
	hi := c.Score(b+1e-9, moves)
	if math.Abs(hi-lo) > 1e-4 {
		t.Fatalf("discontinuity at baseline: %v vs %v", lo, hi)
	}
}

func TestClampedAboveCeiling(t *testing.T) {
	c := NewCalibrator(8, 0.5)
	if got := c.Score(1000, 10); got != 200 {
		t.Fatalf("got %v, want clamp at 200", got)
	}
}

func TestCeilingGrowsWithHistory(t *testing.T) {
	c := NewCalibrator(30, 0.5)
	if c.Ceiling(10) >= c.Ceiling(100) {
		t.Fatal("ceiling must grow with the move count")
	}
	if c.Ceiling(1) <= c.Baseline() {
		t.Fatal("ceiling must sit above the baseline from the first move")
	}
}

func TestLiveAndFinalShareFormula(t *testing.T) {
	c := NewCalibrator(30, 0.5)
	// Below the baseline the move count does not enter at all.
	if c.Score(2.0, 5) != c.Score(2.0, 500) {
		t.Fatal("below-baseline score must not depend on move count")
	}
}
