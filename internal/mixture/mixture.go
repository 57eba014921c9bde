package mixture

import "math"

// #region mixer
// Mixer maintains one trust weight per context order and blends per-order
// distributions into a single predictive distribution. Weights live in
// log-space and are only exponentiated when producing the mixture, so long
// sessions cannot underflow them.
type Mixer struct {
	rate float64
	logW []float64
}

// NewMixer creates a mixer with uniform initial weights over numOrders experts.
func NewMixer(numOrders int, rate float64) *Mixer {
	logW := make([]float64, numOrders)
	init := -math.Log(float64(numOrders))
	for k := range logW {
		logW[k] = init
	}
	return &Mixer{rate: rate, logW: logW}
}

// #endregion mixer

// #region combine
// Combine blends the first `active` per-order distributions into one
// distribution. Weights are renormalized over the active orders, so
// orders whose context is still longer than the history carry no mass.
func (m *Mixer) Combine(perOrder [][]float64, active int) []float64 {
	w := m.activeWeights(active)
	mix := make([]float64, len(perOrder[0]))
	for k := 0; k < active; k++ {
		for i, p := range perOrder[k] {
			mix[i] += w[k] * p
		}
	}
	return mix
}

// #endregion combine

// #region update
// Update applies the exponentially-weighted expert rule after the true move
// is revealed. probs[k] is the probability order k assigned to that move:
//
//	w_k ← w_k · probs[k]^η
//
// followed by renormalization, computed in log-space. This is a tempered
// Bayesian posterior over orders: trust compounds for orders that keep
// predicting well, so a single habitual pattern length ends up holding
// nearly all the weight.
func (m *Mixer) Update(probs []float64, active int) {
	for k := 0; k < active; k++ {
		m.logW[k] += m.rate * math.Log(probs[k])
	}
	norm := logSumExp(m.logW)
	for k := range m.logW {
		m.logW[k] -= norm
	}
}

// #endregion update

// #region weights
// Weights returns the current weights over all orders, summing to 1.
func (m *Mixer) Weights() []float64 {
	return m.activeWeights(len(m.logW))
}

// activeWeights exponentiates the first `active` log-weights and
// normalizes them to sum to 1.
func (m *Mixer) activeWeights(active int) []float64 {
	maxLog := math.Inf(-1)
	for k := 0; k < active; k++ {
		if m.logW[k] > maxLog {
			maxLog = m.logW[k]
		}
	}
	w := make([]float64, active)
	var sum float64
	for k := 0; k < active; k++ {
		w[k] = math.Exp(m.logW[k] - maxLog)
		sum += w[k]
	}
	for k := range w {
		w[k] /= sum
	}
	return w
}

// #endregion weights

// #region helpers
func logSumExp(xs []float64) float64 {
	maxLog := math.Inf(-1)
	for _, x := range xs {
		if x > maxLog {
			maxLog = x
		}
	}
	var sum float64
	for _, x := range xs {
		sum += math.Exp(x - maxLog)
	}
	return maxLog + math.Log(sum)
}

// #endregion helpers
