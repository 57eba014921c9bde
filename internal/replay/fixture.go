package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mindunbind/mind-unbind/go-engine/internal/engine"
	"github.com/mindunbind/mind-unbind/go-engine/internal/move"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a recorded-session fixture.
// A stream is given either as quantized symbols or as raw segmenter degrees,
// never both.
type Fixture struct {
	Description string         `json:"description"`
	Config      FixtureConfig  `json:"config"`
	Moves       []int          `json:"moves,omitempty"`
	Degrees     []float64      `json:"degrees,omitempty"`
	Expected    *FixtureExpect `json:"expected,omitempty"`
}

// FixtureConfig mirrors engine.Config with JSON tags.
type FixtureConfig struct {
	AlphabetSize int     `json:"alphabet_size"`
	MaxOrder     int     `json:"max_order"`
	Smoothing    float64 `json:"smoothing"`
	MixRate      float64 `json:"mix_rate"`
}

// FixtureExpect captures the score band the replayed stream must land in.
type FixtureExpect struct {
	FinalScore float64 `json:"final_score"`
	Tolerance  float64 `json:"tolerance"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return ParseFixture(data)
}

// ParseFixture parses fixture JSON and validates its shape.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Moves) > 0 && len(f.Degrees) > 0 {
		return nil, fmt.Errorf("fixture carries both moves and degrees")
	}
	if len(f.Moves) == 0 && len(f.Degrees) == 0 {
		return nil, fmt.Errorf("fixture carries no move stream")
	}
	return &f, nil
}

// ToConfig converts a FixtureConfig to a domain engine.Config.
func (fc *FixtureConfig) ToConfig() engine.Config {
	return engine.Config{
		AlphabetSize: fc.AlphabetSize,
		MaxOrder:     fc.MaxOrder,
		Smoothing:    fc.Smoothing,
		MixRate:      fc.MixRate,
	}
}

// Stream returns the fixture's move stream, quantizing degrees when the
// fixture was recorded from raw segmenter output.
func (f *Fixture) Stream() []move.Move {
	if len(f.Moves) > 0 {
		moves := make([]move.Move, len(f.Moves))
		for i, m := range f.Moves {
			moves[i] = move.Move(m)
		}
		return moves
	}
	moves := make([]move.Move, len(f.Degrees))
	for i, d := range f.Degrees {
		moves[i] = move.Quantize(d, f.Config.AlphabetSize)
	}
	return moves
}

// Check compares a replay summary against the fixture's expected band.
// A nil expectation always passes.
func (f *Fixture) Check(s Summary) error {
	if f.Expected == nil {
		return nil
	}
	diff := s.FinalScore - f.Expected.FinalScore
	if diff < 0 {
		diff = -diff
	}
	if diff > f.Expected.Tolerance {
		return fmt.Errorf("final score %.2f outside %.2f ± %.2f",
			s.FinalScore, f.Expected.FinalScore, f.Expected.Tolerance)
	}
	return nil
}

// #endregion fixture-loader
