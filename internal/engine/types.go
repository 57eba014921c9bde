package engine

import (
	"errors"
	"fmt"
)

// #region config
// Config fixes a session's modelling parameters. All four are frozen at
// session start; changing them mid-stream would silently rescale the score.
type Config struct {
	AlphabetSize int     // number of quantized move symbols (A)
	MaxOrder     int     // longest context the bank models (K_max)
	Smoothing    float64 // Laplace α, keeps every symbol above zero probability
	MixRate      float64 // η for the exponentially-weighted order mixture
}

// DefaultConfig returns the parameters the game ships with: a 30-symbol
// alphabet (12-degree directional granularity) and a 3-move maximum context.
func DefaultConfig() Config {
	return Config{
		AlphabetSize: 30,
		MaxOrder:     3,
		Smoothing:    0.5,
		MixRate:      0.3,
	}
}

// Validate reports the first invalid parameter.
func (c Config) Validate() error {
	if c.AlphabetSize < 2 {
		return fmt.Errorf("alphabet size %d: need at least 2 symbols", c.AlphabetSize)
	}
	if c.AlphabetSize > 65536 {
		return fmt.Errorf("alphabet size %d exceeds context-key limit 65536", c.AlphabetSize)
	}
	if c.MaxOrder < 0 {
		return fmt.Errorf("max order %d: must be non-negative", c.MaxOrder)
	}
	if c.Smoothing <= 0 {
		return fmt.Errorf("smoothing %v: must be positive", c.Smoothing)
	}
	if c.MixRate <= 0 || c.MixRate >= 1 {
		return fmt.Errorf("mix rate %v: must be in (0, 1)", c.MixRate)
	}
	return nil
}

// #endregion config

// #region errors
var (
	// ErrNoObservations is returned when a score is requested before any
	// move has been observed. There is no evidence either way yet, and
	// reporting 100 would be misleading.
	ErrNoObservations = errors.New("no moves observed")

	// ErrInvalidMove is returned when an observed symbol falls outside the
	// configured alphabet. The engine's counts are left untouched.
	ErrInvalidMove = errors.New("move outside configured alphabet")
)

// #endregion errors

// #region prediction
// Prediction is the engine's belief about the next move, produced before
// that move is revealed.
type Prediction struct {
	// Dist is the mixture distribution over the alphabet.
	Dist []float64
	// PerOrder holds each active order's distribution, index = order.
	PerOrder [][]float64
	// ActiveOrders is how many orders currently have enough history
	// (min(K_max, history length) + 1).
	ActiveOrders int
}

// #endregion prediction

// #region results
// MoveResult reports how one observed move scored against the prediction
// that preceded it. Surfaced per move so the game can highlight surprising
// strokes as they are drawn.
type MoveResult struct {
	Index        int     // 0-based position in the session stream
	Move         int     // the observed symbol
	Probability  float64 // mixture probability assigned before the reveal
	SurpriseBits float64 // -log2(Probability)
	Score        float64 // running calibrated score including this move
}

// ScoreSnapshot is a derived view of the session's running statistics.
// It is recomputed on demand and never stored as authoritative state.
type ScoreSnapshot struct {
	Moves        int
	MeanSurprise float64 // bits per move
	Baseline     float64 // log2(A)
	Ceiling      float64 // smoothing-floor ceiling at the current length
	Score        float64 // calibrated [0, 200]
}

// #endregion results
