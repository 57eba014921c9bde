package replay

import (
	"fmt"

	"github.com/mindunbind/mind-unbind/go-engine/internal/engine"
	"github.com/mindunbind/mind-unbind/go-engine/internal/move"
)

// #region types

// Summary provides aggregate stats from replaying one move stream.
type Summary struct {
	SessionID    string
	Moves        int
	FinalScore   float64
	MeanSurprise float64
	MaxSurprise  float64
	MaxMoveIndex int // index of the most surprising move
	Weights      []float64
}

// #endregion types

// #region run
// Run feeds a recorded move stream through a fresh engine and returns the
// per-move results plus a summary. Replaying the same stream with the same
// config always reproduces the original session bit for bit.
func Run(config engine.Config, moves []move.Move) ([]engine.MoveResult, Summary, error) {
	e, err := engine.New(config)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("replay engine: %w", err)
	}

	results := make([]engine.MoveResult, 0, len(moves))
	for i, m := range moves {
		res, err := e.Observe(m)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("replay move %d: %w", i, err)
		}
		results = append(results, res)
	}

	return results, Summarize(e, results), nil
}

// Summarize computes aggregate stats from a replayed engine and its results.
func Summarize(e *engine.Engine, results []engine.MoveResult) Summary {
	s := Summary{
		SessionID: e.SessionID(),
		Moves:     len(results),
		Weights:   e.Weights(),
	}
	for _, r := range results {
		if r.SurpriseBits > s.MaxSurprise {
			s.MaxSurprise = r.SurpriseBits
			s.MaxMoveIndex = r.Index
		}
	}
	if snap, err := e.Score(); err == nil {
		s.FinalScore = snap.Score
		s.MeanSurprise = snap.MeanSurprise
	}
	return s
}

// #endregion run
