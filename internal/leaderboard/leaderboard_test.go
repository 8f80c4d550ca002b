package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/mkale/skillforge/internal/store"
)

type fakeLedgers struct {
	totals []store.LedgerTotal // already ordered by XP descending
}

func (f *fakeLedgers) Get(_ context.Context, userID string) (*store.LedgerRecord, error) {
	return nil, nil
}

func (f *fakeLedgers) Save(_ context.Context, _ *store.LedgerRecord) error { return nil }

func (f *fakeLedgers) Totals(_ context.Context, limit int) ([]store.LedgerTotal, error) {
	if limit > 0 && len(f.totals) > limit {
		return f.totals[:limit], nil
	}
	return f.totals, nil
}

type fakeCompletions struct {
	xpSince map[string]int
}

func (f *fakeCompletions) AppendCompletion(_ context.Context, _ store.CompletionEventData) error {
	return nil
}

func (f *fakeCompletions) CompletionsByUser(_ context.Context, _ string, _ store.QueryOpts) ([]store.CompletionRecord, error) {
	return nil, nil
}

func (f *fakeCompletions) CompletionXPSince(_ context.Context, _ time.Time) (map[string]int, error) {
	return f.xpSince, nil
}

func TestAllTime(t *testing.T) {
	s := NewService(&fakeLedgers{totals: []store.LedgerTotal{
		{UserID: "alice", TotalXP: 2350},
		{UserID: "bob", TotalXP: 900},
		{UserID: "carol", TotalXP: 100},
	}}, &fakeCompletions{})

	entries, err := s.AllTime(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].UserID != "alice" || entries[0].Rank != 1 || entries[0].Level != 3 {
		t.Errorf("first entry = %+v, want alice rank 1 level 3", entries[0])
	}
	if entries[1].UserID != "bob" || entries[1].Rank != 2 || entries[1].Level != 1 {
		t.Errorf("second entry = %+v, want bob rank 2 level 1", entries[1])
	}
}

func TestWeekly_OrdersAndRanks(t *testing.T) {
	s := NewService(&fakeLedgers{}, &fakeCompletions{xpSince: map[string]int{
		"alice": 150,
		"bob":   400,
		"carol": 150,
	}})

	entries, err := s.Weekly(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	if entries[0].UserID != "bob" || entries[0].Rank != 1 {
		t.Errorf("first = %+v, want bob rank 1", entries[0])
	}
	// Ties order by user id for a stable leaderboard.
	if entries[1].UserID != "alice" || entries[2].UserID != "carol" {
		t.Errorf("tie order = %s, %s, want alice then carol", entries[1].UserID, entries[2].UserID)
	}
}

func TestWeekly_Limit(t *testing.T) {
	s := NewService(&fakeLedgers{}, &fakeCompletions{xpSince: map[string]int{
		"a": 1, "b": 2, "c": 3,
	}})

	entries, err := s.Weekly(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].UserID != "c" {
		t.Errorf("entries = %+v, want only c", entries)
	}
}

func TestRankForUser(t *testing.T) {
	s := NewService(&fakeLedgers{totals: []store.LedgerTotal{
		{UserID: "alice", TotalXP: 2000},
		{UserID: "bob", TotalXP: 1000},
	}}, &fakeCompletions{})

	entry, err := s.RankForUser(context.Background(), "bob")
	if err != nil {
		t.Fatal(err)
	}
	if entry == nil || entry.Rank != 2 || entry.XP != 1000 {
		t.Errorf("entry = %+v, want bob rank 2", entry)
	}

	missing, err := s.RankForUser(context.Background(), "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Errorf("expected nil entry for unknown user, got %+v", missing)
	}
}
