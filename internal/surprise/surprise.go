package surprise

import "math"

// #region accountant
// Accountant converts mixture probabilities into bit-valued surprise and
// keeps the running aggregates the calibrator works from. The smoothing
// floor upstream guarantees probabilities are strictly positive, so every
// surprise value is finite.
type Accountant struct {
	alphabetSize int
	totalBits    float64
	moves        int
}

// NewAccountant creates an accountant for the given alphabet size.
func NewAccountant(alphabetSize int) *Accountant {
	return &Accountant{alphabetSize: alphabetSize}
}

// #endregion accountant

// #region record
// Record converts the probability the mixture assigned to the observed move
// into self-information bits, folds it into the running sum, and returns it.
func (a *Accountant) Record(probability float64) float64 {
	bits := -math.Log2(probability)
	a.totalBits += bits
	a.moves++
	return bits
}

// #endregion record

// #region aggregates
// Mean returns the running mean surprise in bits per move.
// ok is false until at least one move has been recorded.
func (a *Accountant) Mean() (mean float64, ok bool) {
	if a.moves == 0 {
		return 0, false
	}
	return a.totalBits / float64(a.moves), true
}

// Moves returns how many moves have been scored.
func (a *Accountant) Moves() int {
	return a.moves
}

// TotalBits returns the cumulative surprise in bits.
func (a *Accountant) TotalBits() float64 {
	return a.totalBits
}

// Baseline returns log2(A), the per-move surprise of a memoryless uniform
// move source. This is the statistic the score-100 anchor is pinned to.
func (a *Accountant) Baseline() float64 {
	return math.Log2(float64(a.alphabetSize))
}

// #endregion aggregates
