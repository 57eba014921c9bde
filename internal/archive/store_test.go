package archive

import (
	"path/filepath"
	"testing"
	"time"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSession(id string) (SessionRecord, []MoveRecord) {
	rec := SessionRecord{
		SessionID:    id,
		CreatedAt:    time.Now().UTC(),
		AlphabetSize: 30,
		MaxOrder:     3,
		Smoothing:    0.5,
		MixRate:      0.3,
		MoveCount:    3,
		FinalScore:   87.5,
	}
	moves := []MoveRecord{
		{Seq: 0, Symbol: 4, Probability: 1.0 / 30, SurpriseBits: 4.9, ScoreAfter: 100},
		{Seq: 1, Symbol: 4, Probability: 0.2, SurpriseBits: 2.3, ScoreAfter: 74},
		{Seq: 2, Symbol: 9, Probability: 0.02, SurpriseBits: 5.6, ScoreAfter: 87.5},
	}
	return rec, moves
}

func TestRecordAndGetSession(t *testing.T) {
	s := tempStore(t)
	rec, moves := sampleSession("sess-1")

	if err := s.RecordSession(rec, moves); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	got, err := s.GetSession("sess-1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.AlphabetSize != 30 || got.MaxOrder != 3 || got.MoveCount != 3 {
		t.Fatalf("session round-trip mangled: %+v", got)
	}
	if got.FinalScore != 87.5 {
		t.Fatalf("got final score %v, want 87.5", got.FinalScore)
	}

	stream, err := s.GetMoves("sess-1")
	if err != nil {
		t.Fatalf("GetMoves: %v", err)
	}
	if len(stream) != 3 {
		t.Fatalf("got %d moves, want 3", len(stream))
	}
	for i, m := range stream {
		if m.Seq != i {
			t.Fatalf("moves out of order: seq %d at position %d", m.Seq, i)
		}
	}
	if stream[2].Symbol != 9 || stream[2].SurpriseBits != 5.6 {
		t.Fatalf("move round-trip mangled: %+v", stream[2])
	}
}

func TestGetMissingSession(t *testing.T) {
	s := tempStore(t)
	if _, err := s.GetSession("nope"); err == nil {
		t.Fatal("expected an error for a missing session")
	}
}

func TestListSessionsMostRecentFirst(t *testing.T) {
	s := tempStore(t)

	older, _ := sampleSession("older")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer, _ := sampleSession("newer")
	newer.CreatedAt = time.Now().UTC()

	if err := s.RecordSession(older, nil); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if err := s.RecordSession(newer, nil); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	list, err := s.ListSessions(10)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(list) != 2 || list[0].SessionID != "newer" {
		t.Fatalf("unexpected listing order: %+v", list)
	}

	limited, err := s.ListSessions(1)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit ignored: got %d rows", len(limited))
	}
}

func TestDuplicateSessionRejected(t *testing.T) {
	s := tempStore(t)
	rec, moves := sampleSession("dup")
	if err := s.RecordSession(rec, moves); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if err := s.RecordSession(rec, moves); err == nil {
		t.Fatal("expected a primary-key violation for a duplicate session")
	}
}
