package engine

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/mindunbind/mind-unbind/go-engine/internal/move"
)

func newEngine(t *testing.T, config Config) *Engine {
	t.Helper()
	e, err := New(config)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func observe(t *testing.T, e *Engine, m move.Move) MoveResult {
	t.Helper()
	res, err := e.Observe(m)
	if err != nil {
		t.Fatalf("Observe(%d): %v", m, err)
	}
	return res
}

// argmin returns the lowest-index symbol with minimal mixture probability.
func argmin(dist []float64) move.Move {
	best := 0
	for i := 1; i < len(dist); i++ {
		if dist[i] < dist[best] {
			best = i
		}
	}
	return move.Move(best)
}

func TestConfigValidation(t *testing.T) {
	bad := []Config{
		{AlphabetSize: 1, MaxOrder: 2, Smoothing: 0.5, MixRate: 0.3},
		{AlphabetSize: 8, MaxOrder: -1, Smoothing: 0.5, MixRate: 0.3},
		{AlphabetSize: 8, MaxOrder: 2, Smoothing: 0, MixRate: 0.3},
		{AlphabetSize: 8, MaxOrder: 2, Smoothing: 0.5, MixRate: 1},
	}
	for i, c := range bad {
		if _, err := New(c); err == nil {
			t.Fatalf("case %d: expected config error", i)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestScoreBeforeFirstMove(t *testing.T) {
	e := newEngine(t, DefaultConfig())
	if _, err := e.Score(); !errors.Is(err, ErrNoObservations) {
		t.Fatalf("got %v, want ErrNoObservations", err)
	}
}

func TestInvalidMoveRejectedWithoutMutation(t *testing.T) {
	e := newEngine(t, DefaultConfig())
	observe(t, e, 5)

	before, _ := e.Score()
	for _, m := range []move.Move{-1, 30, 100} {
		if _, err := e.Observe(m); !errors.Is(err, ErrInvalidMove) {
			t.Fatalf("Observe(%d): got %v, want ErrInvalidMove", m, err)
		}
	}
	after, _ := e.Score()
	if e.MoveCount() != 1 || before != after {
		t.Fatal("rejected move must not mutate session state")
	}
}

func TestPredictIsCachedAndUsedByObserve(t *testing.T) {
	e := newEngine(t, DefaultConfig())
	observe(t, e, 3)
	observe(t, e, 7)

	p1 := e.Predict()
	p2 := e.Predict()
	for i := range p1.Dist {
		if p1.Dist[i] != p2.Dist[i] {
			t.Fatalf("repeated Predict diverged at symbol %d", i)
		}
	}

	res := observe(t, e, 3)
	if res.Probability != p1.Dist[3] {
		t.Fatalf("Observe scored against %v, want the predicted %v", res.Probability, p1.Dist[3])
	}
	if math.Abs(res.SurpriseBits+math.Log2(res.Probability)) > 1e-12 {
		t.Fatalf("surprise %v inconsistent with probability %v", res.SurpriseBits, res.Probability)
	}
}

func TestPredictionIsProperDistribution(t *testing.T) {
	e := newEngine(t, Config{AlphabetSize: 12, MaxOrder: 2, Smoothing: 0.5, MixRate: 0.3})
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		p := e.Predict()
		var sum float64
		for _, v := range p.Dist {
			if v <= 0 {
				t.Fatalf("move %d: non-positive mixture probability %v", i, v)
			}
			sum += v
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("move %d: mixture sums to %v", i, sum)
		}
		observe(t, e, move.Move(rng.Intn(12)))
	}
}

// A memoryless uniform move source must average close to 100.
func TestBaselineInvariantMonteCarlo(t *testing.T) {
	config := Config{AlphabetSize: 16, MaxOrder: 3, Smoothing: 0.5, MixRate: 0.3}
	const (
		runs  = 20
		moves = 400
	)
	var total float64
	for run := 0; run < runs; run++ {
		rng := rand.New(rand.NewSource(int64(1000 + run)))
		e := newEngine(t, config)
		for i := 0; i < moves; i++ {
			observe(t, e, move.Move(rng.Intn(config.AlphabetSize)))
		}
		snap, err := e.Score()
		if err != nil {
			t.Fatalf("Score: %v", err)
		}
		if snap.Score < 90 || snap.Score > 115 {
			t.Fatalf("run %d: score %v outside the random band [90, 115]", run, snap.Score)
		}
		total += snap.Score
	}
	mean := total / runs
	if mean < 95 || mean > 110 {
		t.Fatalf("mean random score %v, want within [95, 110] of the 100 anchor", mean)
	}
}

// Pure repetition must trend monotonically toward 0.
func TestDegenerateRepetitionFloor(t *testing.T) {
	e := newEngine(t, Config{AlphabetSize: 8, MaxOrder: 2, Smoothing: 0.5, MixRate: 0.3})

	first := observe(t, e, 3)
	if math.Abs(first.Score-100) > 1e-9 {
		t.Fatalf("single move carries no evidence yet: score %v, want 100", first.Score)
	}

	prev := first.Score
	for i := 1; i < 200; i++ {
		res := observe(t, e, 3)
		if res.Score >= prev {
			t.Fatalf("move %d: score %v did not decrease from %v", i, res.Score, prev)
		}
		prev = res.Score
	}
	if prev > 10 {
		t.Fatalf("final repetition score %v, want below 10", prev)
	}
}

// Always playing the least likely move must climb toward 200. Strict growth
// holds while the smoothing floor still dominates the adversary's picks, so
// the check runs an order-0 session over an alphabet wider than the stream.
func TestAdversarialCeiling(t *testing.T) {
	e := newEngine(t, Config{AlphabetSize: 64, MaxOrder: 0, Smoothing: 0.01, MixRate: 0.3})

	var scores []float64
	for i := 0; i < 60; i++ {
		pred := e.Predict()
		res := observe(t, e, argmin(pred.Dist))
		scores = append(scores, res.Score)
	}

	if math.Abs(scores[0]-100) > 1e-9 {
		t.Fatalf("first move score %v, want exactly 100", scores[0])
	}
	checkpoints := []int{0, 9, 19, 29, 39, 49, 59}
	for i := 1; i < len(checkpoints); i++ {
		lo, hi := scores[checkpoints[i-1]], scores[checkpoints[i]]
		if hi <= lo {
			t.Fatalf("score stalled: move %d at %v, move %d at %v",
				checkpoints[i-1]+1, lo, checkpoints[i]+1, hi)
		}
	}
	final := scores[len(scores)-1]
	if final <= 140 || final > 200 {
		t.Fatalf("final adversarial score %v, want in (140, 200]", final)
	}
}

// Against the full multi-order mixture, defying the prediction still keeps
// the score strictly above the random anchor.
func TestAdversarialBeatsBaselineWithMixture(t *testing.T) {
	e := newEngine(t, Config{AlphabetSize: 16, MaxOrder: 3, Smoothing: 0.5, MixRate: 0.3})
	for i := 0; i < 80; i++ {
		pred := e.Predict()
		observe(t, e, argmin(pred.Dist))
	}
	snap, err := e.Score()
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if snap.Score <= 100 {
		t.Fatalf("anti-habitual play scored %v, want above 100", snap.Score)
	}
}

// A repeating motif whose continuation needs two moves of context must pull
// the mixture's trust onto the orders that disambiguate it.
func TestOrderAdaptivityPeriodicMotif(t *testing.T) {
	e := newEngine(t, Config{AlphabetSize: 5, MaxOrder: 3, Smoothing: 0.5, MixRate: 0.3})

	motif := []move.Move{0, 0, 1} // order 1 is ambiguous after a 0; orders >= 2 are not
	for i := 0; i < 240; i++ {
		observe(t, e, motif[i%len(motif)])
	}

	w := e.Weights()
	var sum float64
	for _, v := range w {
		sum += v
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("weights sum to %v, want 1", sum)
	}
	if high := w[2] + w[3]; high < 0.85 {
		t.Fatalf("orders 2+3 hold weight %v, want > 0.85 (weights %v)", high, w)
	}
	if low := w[0] + w[1]; low > 0.1 {
		t.Fatalf("ambiguous orders still hold weight %v (weights %v)", low, w)
	}

	snap, err := e.Score()
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if snap.Score > 30 {
		t.Fatalf("learned motif scored %v, want below 30", snap.Score)
	}
}

// Lower mean surprise can never score higher at equal length.
func TestMonotonicityInMeanSurprise(t *testing.T) {
	config := Config{AlphabetSize: 8, MaxOrder: 2, Smoothing: 0.5, MixRate: 0.3}
	const moves = 60

	predictable := newEngine(t, config)
	for i := 0; i < moves; i++ {
		observe(t, predictable, move.Move(i%2))
	}

	varied := newEngine(t, config)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < moves; i++ {
		observe(t, varied, move.Move(rng.Intn(config.AlphabetSize)))
	}

	sp, _ := predictable.Score()
	sv, _ := varied.Score()
	if sp.MeanSurprise >= sv.MeanSurprise {
		t.Fatalf("expected the alternating stream to be more predictable: %v vs %v",
			sp.MeanSurprise, sv.MeanSurprise)
	}
	if sp.Score > sv.Score {
		t.Fatalf("lower mean surprise scored higher: %v > %v", sp.Score, sv.Score)
	}
}

// The score after move i must not depend on moves that come later.
func TestNoLookahead(t *testing.T) {
	config := Config{AlphabetSize: 10, MaxOrder: 3, Smoothing: 0.5, MixRate: 0.3}
	rng := rand.New(rand.NewSource(99))
	stream := make([]move.Move, 50)
	for i := range stream {
		stream[i] = move.Move(rng.Intn(config.AlphabetSize))
	}

	full := newEngine(t, config)
	running := make([]float64, len(stream))
	for i, m := range stream {
		running[i] = observe(t, full, m).Score
	}

	for _, cut := range []int{1, 10, 25, 50} {
		partial := newEngine(t, config)
		for _, m := range stream[:cut] {
			observe(t, partial, m)
		}
		snap, err := partial.Score()
		if err != nil {
			t.Fatalf("Score after %d moves: %v", cut, err)
		}
		if snap.Score != running[cut-1] {
			t.Fatalf("score after move %d depends on the future: %v != %v",
				cut, snap.Score, running[cut-1])
		}
	}
}

// Identical stream and config must produce bit-identical results.
func TestDeterminism(t *testing.T) {
	config := DefaultConfig()
	rng := rand.New(rand.NewSource(7))
	stream := make([]move.Move, 120)
	for i := range stream {
		stream[i] = move.Move(rng.Intn(config.AlphabetSize))
	}

	a := newEngine(t, config)
	b := newEngine(t, config)
	for _, m := range stream {
		ra := observe(t, a, m)
		rb := observe(t, b, m)
		if ra.Score != rb.Score || ra.SurpriseBits != rb.SurpriseBits {
			t.Fatalf("move %d diverged: %+v vs %+v", ra.Index, ra, rb)
		}
	}
	sa, _ := a.Score()
	sb, _ := b.Score()
	if sa != sb {
		t.Fatalf("final snapshots diverged: %+v vs %+v", sa, sb)
	}
	wa, wb := a.Weights(), b.Weights()
	for k := range wa {
		if wa[k] != wb[k] {
			t.Fatalf("order %d weights diverged: %v vs %v", k, wa[k], wb[k])
		}
	}
}

func TestSessionIDsUnique(t *testing.T) {
	a := newEngine(t, DefaultConfig())
	b := newEngine(t, DefaultConfig())
	if a.SessionID() == "" || a.SessionID() == b.SessionID() {
		t.Fatal("sessions must carry distinct non-empty IDs")
	}
}
