package archive

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id    TEXT PRIMARY KEY,
	created_at    TEXT NOT NULL,
	alphabet_size INTEGER NOT NULL,
	max_order     INTEGER NOT NULL,
	smoothing     REAL NOT NULL,
	mix_rate      REAL NOT NULL,
	move_count    INTEGER NOT NULL,
	final_score   REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS session_moves (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id    TEXT NOT NULL,
	seq           INTEGER NOT NULL,
	symbol        INTEGER NOT NULL,
	probability   REAL NOT NULL,
	surprise_bits REAL NOT NULL,
	score_after   REAL NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE INDEX IF NOT EXISTS idx_session_moves_session
	ON session_moves(session_id, seq);
`

// #endregion schema

// #region store-struct
// Store archives finished sessions in SQLite. It sits outside the engine:
// the engine never reads it, and a session is only written once its stream
// has been scored.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region record
// RecordSession writes a session and its full move stream atomically.
func (s *Store) RecordSession(rec SessionRecord, moves []MoveRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO sessions (session_id, created_at, alphabet_size, max_order, smoothing, mix_rate, move_count, final_score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.CreatedAt.Format(time.RFC3339Nano),
		rec.AlphabetSize, rec.MaxOrder, rec.Smoothing, rec.MixRate,
		rec.MoveCount, rec.FinalScore,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	for _, m := range moves {
		_, err = tx.Exec(
			`INSERT INTO session_moves (session_id, seq, symbol, probability, surprise_bits, score_after)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			rec.SessionID, m.Seq, m.Symbol, m.Probability, m.SurpriseBits, m.ScoreAfter,
		)
		if err != nil {
			return fmt.Errorf("insert move %d: %w", m.Seq, err)
		}
	}

	return tx.Commit()
}

// #endregion record

// #region get-session
// GetSession retrieves one archived session by ID.
func (s *Store) GetSession(sessionID string) (SessionRecord, error) {
	var rec SessionRecord
	var createdStr string
	err := s.db.QueryRow(
		`SELECT session_id, created_at, alphabet_size, max_order, smoothing, mix_rate, move_count, final_score
		 FROM sessions WHERE session_id = ?`, sessionID,
	).Scan(&rec.SessionID, &createdStr, &rec.AlphabetSize, &rec.MaxOrder,
		&rec.Smoothing, &rec.MixRate, &rec.MoveCount, &rec.FinalScore)
	if err != nil {
		return SessionRecord{}, fmt.Errorf("get session %s: %w", sessionID, err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

// #endregion get-session

// #region list-sessions
// ListSessions returns the most recently archived sessions.
func (s *Store) ListSessions(limit int) ([]SessionRecord, error) {
	rows, err := s.db.Query(
		`SELECT session_id, created_at, alphabet_size, max_order, smoothing, mix_rate, move_count, final_score
		 FROM sessions ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var createdStr string
		if err := rows.Scan(&rec.SessionID, &createdStr, &rec.AlphabetSize, &rec.MaxOrder,
			&rec.Smoothing, &rec.MixRate, &rec.MoveCount, &rec.FinalScore); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list-sessions

// #region get-moves
// GetMoves returns a session's move stream in observation order.
func (s *Store) GetMoves(sessionID string) ([]MoveRecord, error) {
	rows, err := s.db.Query(
		`SELECT seq, symbol, probability, surprise_bits, score_after
		 FROM session_moves WHERE session_id = ? ORDER BY seq ASC`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("get moves for %s: %w", sessionID, err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.Seq, &m.Symbol, &m.Probability, &m.SurpriseBits, &m.ScoreAfter); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// #endregion get-moves
