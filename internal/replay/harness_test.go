package replay

import (
	"testing"

	"github.com/mindunbind/mind-unbind/go-engine/internal/engine"
	"github.com/mindunbind/mind-unbind/go-engine/internal/move"
)

func TestRunReproducesBitIdentically(t *testing.T) {
	config := engine.DefaultConfig()
	stream := []move.Move{3, 3, 7, 1, 3, 3, 7, 1, 3, 3, 7, 1, 29, 0, 15}

	r1, s1, err := Run(config, stream)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	r2, s2, err := Run(config, stream)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(r1) != len(stream) {
		t.Fatalf("got %d results, want %d", len(r1), len(stream))
	}
	for i := range r1 {
		if r1[i].Score != r2[i].Score || r1[i].SurpriseBits != r2[i].SurpriseBits {
			t.Fatalf("move %d diverged between replays", i)
		}
	}
	if s1.FinalScore != s2.FinalScore || s1.MeanSurprise != s2.MeanSurprise {
		t.Fatalf("summaries diverged: %+v vs %+v", s1, s2)
	}
	if s1.Moves != len(stream) {
		t.Fatalf("summary counted %d moves, want %d", s1.Moves, len(stream))
	}
}

func TestRunRejectsInvalidSymbol(t *testing.T) {
	config := engine.Config{AlphabetSize: 4, MaxOrder: 1, Smoothing: 0.5, MixRate: 0.3}
	if _, _, err := Run(config, []move.Move{0, 1, 9}); err == nil {
		t.Fatal("expected an error for an out-of-alphabet symbol")
	}
}

func TestSummaryFlagsMostSurprisingMove(t *testing.T) {
	config := engine.Config{AlphabetSize: 8, MaxOrder: 2, Smoothing: 0.5, MixRate: 0.3}
	// A long habit, then one defiant move.
	stream := make([]move.Move, 0, 31)
	for i := 0; i < 30; i++ {
		stream = append(stream, 2)
	}
	stream = append(stream, 5)

	_, summary, err := Run(config, stream)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.MaxMoveIndex != 30 {
		t.Fatalf("most surprising move at %d, want the defiant move at 30", summary.MaxMoveIndex)
	}
}
