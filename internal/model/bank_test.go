package model

import (
	"math"
	"testing"

	"github.com/mindunbind/mind-unbind/go-engine/internal/move"
)

func TestPredictUnseenContextIsUniform(t *testing.T) {
	b := NewBank(4, 2, 0.5)
	dist := b.Predict(2, []move.Move{1, 3})
	for i, p := range dist {
		if math.Abs(p-0.25) > 1e-12 {
			t.Fatalf("symbol %d: got %v, want 0.25", i, p)
		}
	}
}

func TestPredictLaplaceSmoothing(t *testing.T) {
	b := NewBank(4, 1, 0.5)
	ctx := []move.Move{2}
	b.Update(1, ctx, 0)
	b.Update(1, ctx, 0)
	b.Update(1, ctx, 3)

	// N=3, α=0.5, A=4: denom = 3 + 2 = 5
	dist := b.Predict(1, ctx)
	want := []float64{2.5 / 5, 0.5 / 5, 0.5 / 5, 1.5 / 5}
	var sum float64
	for i := range dist {
		if math.Abs(dist[i]-want[i]) > 1e-12 {
			t.Fatalf("symbol %d: got %v, want %v", i, dist[i], want[i])
		}
		sum += dist[i]
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("distribution sums to %v, want 1", sum)
	}
}

func TestPredictNeverZero(t *testing.T) {
	b := NewBank(3, 0, 0.1)
	for i := 0; i < 50; i++ {
		b.Update(0, nil, 1)
	}
	dist := b.Predict(0, nil)
	for i, p := range dist {
		if p <= 0 {
			t.Fatalf("symbol %d assigned non-positive probability %v", i, p)
		}
	}
	if dist[1] <= dist[0] {
		t.Fatal("observed symbol should dominate unseen symbols")
	}
}

func TestObservationsTracksTotals(t *testing.T) {
	b := NewBank(5, 2, 1)
	ctx := []move.Move{0, 4}
	if got := b.Observations(2, ctx); got != 0 {
		t.Fatalf("fresh context: got %d observations, want 0", got)
	}
	b.Update(2, ctx, 3)
	b.Update(2, ctx, 3)
	if got := b.Observations(2, ctx); got != 2 {
		t.Fatalf("got %d observations, want 2", got)
	}
	// A different context of the same order stays untouched.
	if got := b.Observations(2, []move.Move{4, 0}); got != 0 {
		t.Fatalf("sibling context: got %d observations, want 0", got)
	}
}
