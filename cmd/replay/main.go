package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mindunbind/mind-unbind/go-engine/internal/archive"
	"github.com/mindunbind/mind-unbind/go-engine/internal/engine"
	"github.com/mindunbind/mind-unbind/go-engine/internal/move"
	"github.com/mindunbind/mind-unbind/go-engine/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	dbPath := flag.String("db", "", "path to session archive (archive mode)")
	sessionID := flag.String("session", "", "archived session to replay (archive mode)")
	verbose := flag.Bool("v", false, "print every move, not just the summary")
	flag.Parse()

	fixtureMode := *fixturePath != ""
	dbMode := *dbPath != "" && *sessionID != ""
	if fixtureMode == dbMode {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       replay --db path/to/archive.db --session id")
		os.Exit(2)
	}

	var exitCode int
	if fixtureMode {
		exitCode = runFixtureMode(*fixturePath, *verbose)
	} else {
		exitCode = runArchiveMode(*dbPath, *sessionID, *verbose)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string, verbose bool) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	results, summary, err := replay.Run(f.Config.ToConfig(), f.Stream())
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	printResults(results, summary, verbose)

	if err := f.Check(summary); err != nil {
		fmt.Fprintf(os.Stderr, "DIVERGE: %v\n", err)
		return 1
	}
	if f.Expected != nil {
		fmt.Printf("OK: final score %.2f within %.2f ± %.2f\n",
			summary.FinalScore, f.Expected.FinalScore, f.Expected.Tolerance)
	}
	return 0
}

// #endregion fixture-mode

// #region archive-mode

func runArchiveMode(dbPath, sessionID string, verbose bool) int {
	store, err := archive.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open archive: %v\n", err)
		return 2
	}
	defer store.Close()

	rec, err := store.GetSession(sessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "get session: %v\n", err)
		return 2
	}
	recorded, err := store.GetMoves(sessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "get moves: %v\n", err)
		return 2
	}

	config := engine.Config{
		AlphabetSize: rec.AlphabetSize,
		MaxOrder:     rec.MaxOrder,
		Smoothing:    rec.Smoothing,
		MixRate:      rec.MixRate,
	}
	stream := make([]move.Move, len(recorded))
	for i, m := range recorded {
		stream[i] = move.Move(m.Symbol)
	}

	results, summary, err := replay.Run(config, stream)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	printResults(results, summary, verbose)

	// Determinism check: the replayed score must match the archived one.
	diff := summary.FinalScore - rec.FinalScore
	if diff < 0 {
		diff = -diff
	}
	if diff > 1e-9 {
		fmt.Fprintf(os.Stderr, "DIVERGE: replayed %.6f, archived %.6f\n",
			summary.FinalScore, rec.FinalScore)
		return 1
	}
	fmt.Printf("OK: replay matches archived score %.2f\n", rec.FinalScore)
	return 0
}

// #endregion archive-mode

// #region output

func printResults(results []engine.MoveResult, summary replay.Summary, verbose bool) {
	if verbose {
		fmt.Printf("%-6s| %-7s| %-12s| %-10s| %s\n", "Move", "Symbol", "Probability", "Surprise", "Score")
		fmt.Printf("%-6s+%-8s+%-13s+%-11s+%s\n",
			"------", "--------", "-------------", "-----------", "--------")
		for _, r := range results {
			fmt.Printf("%-6d| %-7d| %-12.6f| %-10.4f| %.2f\n",
				r.Index, r.Move, r.Probability, r.SurpriseBits, r.Score)
		}
		fmt.Println()
	}
	fmt.Printf("Summary: %d moves, final score %.2f, mean surprise %.4f bits/move\n",
		summary.Moves, summary.FinalScore, summary.MeanSurprise)
	if summary.Moves > 0 {
		fmt.Printf("Most surprising move: #%d (%.4f bits)\n", summary.MaxMoveIndex, summary.MaxSurprise)
	}
}

// #endregion output
