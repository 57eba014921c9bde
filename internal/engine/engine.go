package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mindunbind/mind-unbind/go-engine/internal/mixture"
	"github.com/mindunbind/mind-unbind/go-engine/internal/model"
	"github.com/mindunbind/mind-unbind/go-engine/internal/move"
	"github.com/mindunbind/mind-unbind/go-engine/internal/score"
	"github.com/mindunbind/mind-unbind/go-engine/internal/surprise"
)

// #region engine
// Engine scores one drawing session's move stream by how much each move
// defies what the player's own history predicts. It owns all session state;
// nothing is shared between engine values, so concurrent sessions are
// simply separate engines.
//
// The call contract is predict-then-reveal: Predict (optional for the
// caller) produces the distribution for the upcoming move, Observe reveals
// the true move, scores it against that distribution, and only then lets
// the move into the models. Observe never consults counts that include the
// move being scored, so the predictor cannot see its own future.
type Engine struct {
	config  Config
	session string

	history []move.Move
	bank    *model.Bank
	mixer   *mixture.Mixer
	acct    *surprise.Accountant
	calib   score.Calibrator

	pending *Prediction
}

// New creates an engine for a fresh session.
func New(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	return &Engine{
		config:  config,
		session: uuid.New().String(),
		bank:    model.NewBank(config.AlphabetSize, config.MaxOrder, config.Smoothing),
		mixer:   mixture.NewMixer(config.MaxOrder+1, config.MixRate),
		acct:    surprise.NewAccountant(config.AlphabetSize),
		calib:   score.NewCalibrator(config.AlphabetSize, config.Smoothing),
	}, nil
}

// SessionID returns the session's unique identifier.
func (e *Engine) SessionID() string {
	return e.session
}

// Config returns the session's frozen configuration.
func (e *Engine) Config() Config {
	return e.config
}

// MoveCount returns how many moves have been observed.
func (e *Engine) MoveCount() int {
	return len(e.history)
}

// Weights returns the current mixture weights, index = order.
func (e *Engine) Weights() []float64 {
	return e.mixer.Weights()
}

// #endregion engine

// #region predict
// Predict returns the distribution over the next move. The result is cached
// until the next Observe, so calling Predict repeatedly between moves is
// cheap and always yields the same answer.
func (e *Engine) Predict() Prediction {
	if e.pending == nil {
		e.pending = e.predict()
	}
	return *e.pending
}

func (e *Engine) predict() *Prediction {
	active := e.activeOrders()
	perOrder := make([][]float64, e.config.MaxOrder+1)
	for k := 0; k < active; k++ {
		perOrder[k] = e.bank.Predict(k, e.context(k))
	}
	return &Prediction{
		Dist:         e.mixer.Combine(perOrder, active),
		PerOrder:     perOrder,
		ActiveOrders: active,
	}
}

// #endregion predict

// #region observe
// Observe reveals the true move, scores it against the pending prediction,
// and folds it into every active order's counts and the mixture weights.
func (e *Engine) Observe(m move.Move) (MoveResult, error) {
	if !move.Valid(m, e.config.AlphabetSize) {
		return MoveResult{}, fmt.Errorf("observe symbol %d with alphabet size %d: %w",
			m, e.config.AlphabetSize, ErrInvalidMove)
	}

	if e.pending == nil {
		e.pending = e.predict()
	}
	pred := e.pending

	index := len(e.history)
	prob := pred.Dist[m]
	bits := e.acct.Record(prob)

	// Reveal: update counts at every active order, then the order weights,
	// before the move enters the history.
	orderProbs := make([]float64, pred.ActiveOrders)
	for k := 0; k < pred.ActiveOrders; k++ {
		orderProbs[k] = pred.PerOrder[k][m]
		e.bank.Update(k, e.context(k), m)
	}
	e.mixer.Update(orderProbs, pred.ActiveOrders)

	e.history = append(e.history, m)
	e.pending = nil

	mean, _ := e.acct.Mean()
	return MoveResult{
		Index:        index,
		Move:         int(m),
		Probability:  prob,
		SurpriseBits: bits,
		Score:        e.calib.Score(mean, e.acct.Moves()),
	}, nil
}

// #endregion observe

// #region score
// Score returns the current calibrated snapshot, live or final.
func (e *Engine) Score() (ScoreSnapshot, error) {
	mean, ok := e.acct.Mean()
	if !ok {
		return ScoreSnapshot{}, ErrNoObservations
	}
	moves := e.acct.Moves()
	return ScoreSnapshot{
		Moves:        moves,
		MeanSurprise: mean,
		Baseline:     e.calib.Baseline(),
		Ceiling:      e.calib.Ceiling(moves),
		Score:        e.calib.Score(mean, moves),
	}, nil
}

// #endregion score

// #region helpers
// activeOrders returns how many orders have enough history to condition on,
// always at least the order-0 baseline.
func (e *Engine) activeOrders() int {
	active := len(e.history) + 1
	if active > e.config.MaxOrder+1 {
		active = e.config.MaxOrder + 1
	}
	return active
}

// context returns the last k moves, the conditioning context for order k.
func (e *Engine) context(k int) []move.Move {
	if k == 0 {
		return nil
	}
	return e.history[len(e.history)-k:]
}

// #endregion helpers
