package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mindunbind/mind-unbind/go-engine/internal/archive"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to session archive")
	last := flag.Int("last", 20, "show N most recent sessions")
	sessionID := flag.String("session", "", "show single session detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/archive.db [--last N] [--session id] [--json]")
		os.Exit(2)
	}

	store, err := archive.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open archive: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *sessionID != "" {
		err = runDetailMode(store, *sessionID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	SessionID  string  `json:"session_id"`
	CreatedAt  string  `json:"created_at"`
	Moves      int     `json:"moves"`
	FinalScore float64 `json:"final_score"`
	Alphabet   int     `json:"alphabet_size"`
	MaxOrder   int     `json:"max_order"`
}

func runListMode(store *archive.Store, last int, jsonOut bool) error {
	sessions, err := store.ListSessions(last)
	if err != nil {
		return err
	}

	rows := make([]listRow, len(sessions))
	for i, s := range sessions {
		rows[i] = listRow{
			SessionID:  s.SessionID,
			CreatedAt:  s.CreatedAt.Format("2006-01-02 15:04:05"),
			Moves:      s.MoveCount,
			FinalScore: s.FinalScore,
			Alphabet:   s.AlphabetSize,
			MaxOrder:   s.MaxOrder,
		}
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Printf("%-38s| %-20s| %-6s| %-7s| %s\n", "Session", "Created", "Moves", "Score", "Config")
	for _, r := range rows {
		fmt.Printf("%-38s| %-20s| %-6d| %-7.2f| A=%d K=%d\n",
			r.SessionID, r.CreatedAt, r.Moves, r.FinalScore, r.Alphabet, r.MaxOrder)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOut struct {
	Session archive.SessionRecord `json:"session"`
	Moves   []archive.MoveRecord  `json:"moves"`
}

func runDetailMode(store *archive.Store, sessionID string, jsonOut bool) error {
	rec, err := store.GetSession(sessionID)
	if err != nil {
		return err
	}
	moves, err := store.GetMoves(sessionID)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(detailOut{Session: rec, Moves: moves})
	}

	fmt.Printf("Session %s\n", rec.SessionID)
	fmt.Printf("  created: %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  config:  A=%d K=%d alpha=%.3f eta=%.3f\n",
		rec.AlphabetSize, rec.MaxOrder, rec.Smoothing, rec.MixRate)
	fmt.Printf("  final:   %.2f over %d moves\n\n", rec.FinalScore, rec.MoveCount)

	fmt.Printf("%-6s| %-7s| %-12s| %-10s| %s\n", "Move", "Symbol", "Probability", "Surprise", "Score")
	for _, m := range moves {
		fmt.Printf("%-6d| %-7d| %-12.6f| %-10.4f| %.2f\n",
			m.Seq, m.Symbol, m.Probability, m.SurpriseBits, m.ScoreAfter)
	}
	return nil
}

// #endregion detail-mode
