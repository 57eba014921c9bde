package replay

import (
	"os"
	"path/filepath"
	"testing"
)

const fixtureJSON = `{
	"description": "short repetitive stroke",
	"config": {"alphabet_size": 8, "max_order": 2, "smoothing": 0.5, "mix_rate": 0.3},
	"moves": [1, 1, 1, 1, 1, 1, 1, 1, 1, 1],
	"expected": {"final_score": 30, "tolerance": 30}
}`

func TestParseAndReplayFixture(t *testing.T) {
	f, err := ParseFixture([]byte(fixtureJSON))
	if err != nil {
		t.Fatalf("ParseFixture: %v", err)
	}
	if f.Description == "" || len(f.Moves) != 10 {
		t.Fatalf("fixture parsed incompletely: %+v", f)
	}

	_, summary, err := Run(f.Config.ToConfig(), f.Stream())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.FinalScore >= 100 {
		t.Fatalf("repetitive fixture scored %v, want below 100", summary.FinalScore)
	}
	if err := f.Check(summary); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestCheckFailsOutsideBand(t *testing.T) {
	f, err := ParseFixture([]byte(fixtureJSON))
	if err != nil {
		t.Fatalf("ParseFixture: %v", err)
	}
	f.Expected.FinalScore = 190
	f.Expected.Tolerance = 1

	_, summary, err := Run(f.Config.ToConfig(), f.Stream())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := f.Check(summary); err == nil {
		t.Fatal("expected a band violation")
	}
}

func TestDegreesFixtureQuantized(t *testing.T) {
	data := []byte(`{
		"config": {"alphabet_size": 30, "max_order": 3, "smoothing": 0.5, "mix_rate": 0.3},
		"degrees": [0, 30, 62, 89, 120, 147, 181, 210, 233, 270, 300, 330, 359]
	}`)
	f, err := ParseFixture(data)
	if err != nil {
		t.Fatalf("ParseFixture: %v", err)
	}
	stream := f.Stream()
	if len(stream) != 13 {
		t.Fatalf("got %d moves, want 13", len(stream))
	}
	if stream[0] != 0 || stream[1] != 2 || stream[12] != 29 {
		t.Fatalf("quantization off: %v", stream)
	}
}

func TestParseRejectsMalformedFixtures(t *testing.T) {
	cases := []string{
		`{"config": {"alphabet_size": 8}}`,
		`{"config": {"alphabet_size": 8}, "moves": [1], "degrees": [10]}`,
		`not json`,
	}
	for i, c := range cases {
		if _, err := ParseFixture([]byte(c)); err == nil {
			t.Fatalf("case %d: expected a parse error", i)
		}
	}
}

func TestLoadFixtureFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.json")
	if err := os.WriteFile(path, []byte(fixtureJSON), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if f.Config.AlphabetSize != 8 {
		t.Fatalf("got alphabet size %d, want 8", f.Config.AlphabetSize)
	}
	if _, err := LoadFixture(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
