package model

import (
	"github.com/mindunbind/mind-unbind/go-engine/internal/move"
)

// #region bank
// Bank holds one frequency model per context order 0..maxOrder.
// Counts only ever grow; a context's total equals the number of moves
// observed immediately after that exact context.
type Bank struct {
	alphabetSize int
	maxOrder     int
	smoothing    float64
	orders       []orderModel
}

type orderModel struct {
	contexts map[string]*contextCounts
}

type contextCounts struct {
	total     int
	perSymbol []int
}

// NewBank creates an empty bank for orders 0 through maxOrder.
func NewBank(alphabetSize, maxOrder int, smoothing float64) *Bank {
	orders := make([]orderModel, maxOrder+1)
	for k := range orders {
		orders[k] = orderModel{contexts: make(map[string]*contextCounts)}
	}
	return &Bank{
		alphabetSize: alphabetSize,
		maxOrder:     maxOrder,
		smoothing:    smoothing,
		orders:       orders,
	}
}

// MaxOrder returns the highest context order the bank models.
func (b *Bank) MaxOrder() int {
	return b.maxOrder
}

// #endregion bank

// #region predict
// Predict returns the smoothed distribution over the next move given the
// last `order` moves. Laplace smoothing keeps every symbol strictly above
// zero probability, so an unseen context degrades to uniform rather than
// breaking the surprise computation:
//
//	P(m | c) = (n_m + α) / (N + α·A)
func (b *Bank) Predict(order int, context []move.Move) []float64 {
	dist := make([]float64, b.alphabetSize)
	alpha := b.smoothing

	cc := b.orders[order].contexts[move.ContextKey(context)]
	if cc == nil {
		p := 1.0 / float64(b.alphabetSize)
		for i := range dist {
			dist[i] = p
		}
		return dist
	}

	denom := float64(cc.total) + alpha*float64(b.alphabetSize)
	for i := range dist {
		dist[i] = (float64(cc.perSymbol[i]) + alpha) / denom
	}
	return dist
}

// #endregion predict

// #region update
// Update increments the count of observed following the given context.
// The caller drives this for every currently available order so that all
// orders always reflect the same history length.
func (b *Bank) Update(order int, context []move.Move, observed move.Move) {
	key := move.ContextKey(context)
	om := b.orders[order]
	cc := om.contexts[key]
	if cc == nil {
		cc = &contextCounts{perSymbol: make([]int, b.alphabetSize)}
		om.contexts[key] = cc
	}
	cc.perSymbol[observed]++
	cc.total++
}

// #endregion update

// #region observations
// Observations returns how many moves have been seen after the given context.
func (b *Bank) Observations(order int, context []move.Move) int {
	cc := b.orders[order].contexts[move.ContextKey(context)]
	if cc == nil {
		return 0
	}
	return cc.total
}

// #endregion observations
