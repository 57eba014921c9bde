package score

import "math"

// #region calibrator
// Calibrator maps mean surprise in bits per move onto the published 0-200
// scale. The map is a continuous piecewise-linear ratio anchored at three
// points:
//
//	0 bits               → 0
//	log2(A)              → 100 (a memoryless uniform move source)
//	log2((N+α·A)/α)      → 200 (the smoothing-floor ceiling after N moves)
//
// The same formula serves live and final scores; only the accumulated move
// count differs.
type Calibrator struct {
	alphabetSize int
	smoothing    float64
}

// NewCalibrator creates a calibrator for a session's alphabet and smoothing.
func NewCalibrator(alphabetSize int, smoothing float64) Calibrator {
	return Calibrator{alphabetSize: alphabetSize, smoothing: smoothing}
}

// #endregion calibrator

// #region score
// Score converts a mean surprise over `moves` scored moves to [0, 200].
// moves must be at least 1; the caller guards the no-data case.
func (c Calibrator) Score(meanBits float64, moves int) float64 {
	baseline := c.Baseline()
	if meanBits <= baseline {
		s := 100 * meanBits / baseline
		if s < 0 {
			return 0
		}
		return s
	}

	ceiling := c.Ceiling(moves)
	s := 100 + 100*(meanBits-baseline)/(ceiling-baseline)
	// Mixture weighting can push a single move's surprise slightly past the
	// per-context floor bound, so clamp the top end.
	if s > 200 {
		return 200
	}
	return s
}

// Baseline returns the score-100 anchor, log2(A).
func (c Calibrator) Baseline() float64 {
	return math.Log2(float64(c.alphabetSize))
}

// Ceiling returns the score-200 anchor after the given number of moves:
// the surprise of a move assigned the smoothing-floor probability
// α/(N+α·A). It grows with history, matching the fact that defying a
// better-trained predictor is worth more.
func (c Calibrator) Ceiling(moves int) float64 {
	n := float64(moves)
	return math.Log2((n + c.smoothing*float64(c.alphabetSize)) / c.smoothing)
}

// #endregion score
