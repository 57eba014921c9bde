package archive

import "time"

// #region session-record
// SessionRecord is one finished (or checkpointed) drawing session as stored
// in the archive: its frozen configuration plus final aggregates. The move
// stream itself lives in MoveRecord rows, enough to rebuild the engine's
// exact state by replay.
type SessionRecord struct {
	SessionID    string
	CreatedAt    time.Time
	AlphabetSize int
	MaxOrder     int
	Smoothing    float64
	MixRate      float64
	MoveCount    int
	FinalScore   float64
}

// #endregion session-record

// #region move-record
// MoveRecord is one observed move with the per-move outputs the game uses
// for visualization.
type MoveRecord struct {
	Seq          int // 0-based position in the stream
	Symbol       int
	Probability  float64
	SurpriseBits float64
	ScoreAfter   float64
}

// #endregion move-record
