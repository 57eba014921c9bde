package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mindunbind/mind-unbind/go-engine/internal/archive"
	"github.com/mindunbind/mind-unbind/go-engine/internal/replay"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to session archive")
	sessionID := flag.String("session", "", "archived session to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	tolerance := flag.Float64("tolerance", 0.5, "score tolerance baked into the fixture")
	flag.Parse()

	if *dbPath == "" || *sessionID == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/archive.db --session id --out path/to/fixture.json [--tolerance N]")
		os.Exit(2)
	}

	if err := run(*dbPath, *sessionID, *outPath, *tolerance); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dbPath, sessionID, outPath string, tolerance float64) error {
	store, err := archive.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer store.Close()

	rec, err := store.GetSession(sessionID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	moves, err := store.GetMoves(sessionID)
	if err != nil {
		return fmt.Errorf("get moves: %w", err)
	}
	if len(moves) == 0 {
		return fmt.Errorf("session %s has no archived moves", sessionID)
	}

	fixture := buildFixture(rec, moves, tolerance)
	return writeFixture(fixture, outPath)
}

func buildFixture(rec archive.SessionRecord, moves []archive.MoveRecord, tolerance float64) replay.Fixture {
	stream := make([]int, len(moves))
	for i, m := range moves {
		stream[i] = m.Symbol
	}

	return replay.Fixture{
		Description: fmt.Sprintf("Archived session %s: %d moves, final score %.2f",
			rec.SessionID, rec.MoveCount, rec.FinalScore),
		Config: replay.FixtureConfig{
			AlphabetSize: rec.AlphabetSize,
			MaxOrder:     rec.MaxOrder,
			Smoothing:    rec.Smoothing,
			MixRate:      rec.MixRate,
		},
		Moves: stream,
		Expected: &replay.FixtureExpect{
			FinalScore: rec.FinalScore,
			Tolerance:  tolerance,
		},
	}
}

func writeFixture(fixture replay.Fixture, outPath string) error {
	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote fixture to %s (%d bytes, %d moves)\n", outPath, len(data), len(fixture.Moves))
	return nil
}

// #endregion export
