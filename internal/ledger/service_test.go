package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/mkale/skillforge/internal/store"
)

// fakeCompletionLog is a map-backed store.CompletionLog.
type fakeCompletionLog struct {
	events []store.CompletionRecord
	seq    int64
}

func (f *fakeCompletionLog) AppendCompletion(_ context.Context, data store.CompletionEventData) error {
	f.seq++
	f.events = append(f.events, store.CompletionRecord{
		CompletionID:  data.CompletionID,
		UserID:        data.UserID,
		ChallengeName: data.ChallengeName,
		Score:         data.Score,
		Difficulty:    data.Difficulty,
		Skills:        data.Skills,
		XPEarned:      data.XPEarned,
		Badge:         data.Badge,
		Sequence:      f.seq,
		Timestamp:     time.Now(),
	})
	return nil
}

func (f *fakeCompletionLog) CompletionsByUser(_ context.Context, userID string, opts store.QueryOpts) ([]store.CompletionRecord, error) {
	var out []store.CompletionRecord
	for i := len(f.events) - 1; i >= 0; i-- {
		if f.events[i].UserID != userID {
			continue
		}
		out = append(out, f.events[i])
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeCompletionLog) CompletionXPSince(_ context.Context, from time.Time) (map[string]int, error) {
	byUser := make(map[string]int)
	for _, e := range f.events {
		if !e.Timestamp.Before(from) {
			byUser[e.UserID] += e.XPEarned
		}
	}
	return byUser, nil
}

// fakeActivityLog is a map-backed store.ActivityLog with cap semantics.
type fakeActivityLog struct {
	events []store.ActivityRecord
	seq    int64
}

func (f *fakeActivityLog) AppendActivity(_ context.Context, data store.ActivityEventData) error {
	f.seq++
	f.events = append(f.events, store.ActivityRecord{
		UserID:       data.UserID,
		ActivityType: data.ActivityType,
		Detail:       data.Detail,
		XPDelta:      data.XPDelta,
		Sequence:     f.seq,
		Timestamp:    time.Now(),
	})
	var mine []store.ActivityRecord
	for _, e := range f.events {
		if e.UserID == data.UserID {
			mine = append(mine, e)
		}
	}
	if over := len(mine) - store.ActivityLogCap; over > 0 {
		evict := make(map[int64]bool, over)
		for _, e := range mine[:over] {
			evict[e.Sequence] = true
		}
		kept := f.events[:0]
		for _, e := range f.events {
			if !evict[e.Sequence] {
				kept = append(kept, e)
			}
		}
		f.events = kept
	}
	return nil
}

func (f *fakeActivityLog) RecentActivity(_ context.Context, userID string, limit int) ([]store.ActivityRecord, error) {
	var out []store.ActivityRecord
	for i := len(f.events) - 1; i >= 0; i-- {
		if f.events[i].UserID != userID {
			continue
		}
		out = append(out, f.events[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// fakeLedgerRepo is a map-backed store.LedgerRepo.
type fakeLedgerRepo struct {
	rows  map[string]store.LedgerRecord
	saves int
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{rows: make(map[string]store.LedgerRecord)}
}

func (f *fakeLedgerRepo) Get(_ context.Context, userID string) (*store.LedgerRecord, error) {
	row, ok := f.rows[userID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (f *fakeLedgerRepo) Save(_ context.Context, rec *store.LedgerRecord) error {
	f.rows[rec.UserID] = *rec
	f.saves++
	return nil
}

func (f *fakeLedgerRepo) Totals(_ context.Context, limit int) ([]store.LedgerTotal, error) {
	var out []store.LedgerTotal
	for _, row := range f.rows {
		out = append(out, store.LedgerTotal{UserID: row.UserID, TotalXP: row.TotalXP})
	}
	return out, nil
}

func newTestService(at time.Time) (*Service, *fakeCompletionLog, *fakeActivityLog, *fakeLedgerRepo) {
	completions := &fakeCompletionLog{}
	activities := &fakeActivityLog{}
	ledgers := newFakeLedgerRepo()
	s := NewService(completions, activities, ledgers)
	s.now = func() time.Time { return at }
	return s, completions, activities, ledgers
}

func TestRecordCompletion_EndToEnd(t *testing.T) {
	now := date(2024, time.March, 12)
	s, completions, activities, _ := newTestService(now)
	ctx := context.Background()

	c, err := s.RecordCompletion(ctx, "user-1", RecordInput{
		ChallengeName: "Go Fundamentals",
		Score:         90,
		Difficulty:    DifficultyHard,
		Skills:        []string{"go"},
	})
	if err != nil {
		t.Fatalf("RecordCompletion: %v", err)
	}

	if c.XPEarned != 210 {
		t.Errorf("XPEarned = %d, want 210", c.XPEarned)
	}
	if len(completions.events) != 1 {
		t.Fatalf("completion events = %d, want 1", len(completions.events))
	}
	if len(activities.events) != 1 {
		t.Fatalf("activity events = %d, want 1", len(activities.events))
	}
	if activities.events[0].XPDelta != 210 {
		t.Errorf("activity xp delta = %d, want 210", activities.events[0].XPDelta)
	}

	xs, err := s.XpStats(ctx, "user-1")
	if err != nil {
		t.Fatalf("XpStats: %v", err)
	}
	if xs.TotalXP != 210 || xs.DailyXP != 210 || xs.WeeklyXP != 210 {
		t.Errorf("xp stats = %+v, want 210 across counters", xs)
	}
	if xs.Level != 1 || xs.XPToNextLevel != 790 {
		t.Errorf("level = %d toNext = %d, want 1/790", xs.Level, xs.XPToNextLevel)
	}
}

func TestRecordCompletion_NoUserIsNoop(t *testing.T) {
	s, completions, activities, ledgers := newTestService(time.Now())

	c, err := s.RecordCompletion(context.Background(), "", RecordInput{
		ChallengeName: "x",
		Score:         50,
		Difficulty:    DifficultyEasy,
		Skills:        []string{"go"},
	})
	if err != nil {
		t.Fatalf("expected silent no-op, got error: %v", err)
	}
	if c != nil {
		t.Error("expected nil completion for empty user")
	}
	if len(completions.events) != 0 || len(activities.events) != 0 || len(ledgers.rows) != 0 {
		t.Error("no-op must not persist anything")
	}
}

func TestRecordCompletion_RejectsBadInput(t *testing.T) {
	s, _, _, _ := newTestService(time.Now())
	ctx := context.Background()

	cases := []RecordInput{
		{ChallengeName: "x", Score: 101, Difficulty: DifficultyEasy, Skills: []string{"go"}},
		{ChallengeName: "x", Score: -1, Difficulty: DifficultyEasy, Skills: []string{"go"}},
		{ChallengeName: "x", Score: 50, Difficulty: "brutal", Skills: []string{"go"}},
		{ChallengeName: "x", Score: 50, Difficulty: DifficultyEasy, Skills: nil},
	}
	for i, in := range cases {
		if _, err := s.RecordCompletion(ctx, "user-1", in); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestXpStats_TotalIsMonotonic(t *testing.T) {
	now := date(2024, time.March, 12)
	s, _, _, _ := newTestService(now)
	ctx := context.Background()

	prev := 0
	scores := []int{0, 100, 40, 77}
	for _, score := range scores {
		_, err := s.RecordCompletion(ctx, "user-1", RecordInput{
			ChallengeName: "q",
			Score:         score,
			Difficulty:    DifficultyMedium,
			Skills:        []string{"go"},
		})
		if err != nil {
			t.Fatal(err)
		}
		xs, err := s.XpStats(ctx, "user-1")
		if err != nil {
			t.Fatal(err)
		}
		if xs.TotalXP < prev {
			t.Fatalf("total xp decreased: %d -> %d", prev, xs.TotalXP)
		}
		prev = xs.TotalXP
	}
}

func TestXpStats_DailyResetOnBoundary(t *testing.T) {
	day1 := date(2024, time.March, 12)
	s, _, _, ledgers := newTestService(day1)
	ctx := context.Background()

	_, err := s.RecordCompletion(ctx, "user-1", RecordInput{
		ChallengeName: "q", Score: 80, Difficulty: DifficultyMedium, Skills: []string{"go"},
	})
	if err != nil {
		t.Fatal(err)
	}

	// Same-day reads never reset.
	for i := 0; i < 3; i++ {
		xs, err := s.XpStats(ctx, "user-1")
		if err != nil {
			t.Fatal(err)
		}
		if xs.DailyXP != 130 {
			t.Fatalf("read %d: daily xp = %d, want 130", i, xs.DailyXP)
		}
	}
	savesBefore := ledgers.saves

	// Next day: daily resets, weekly (same week) survives.
	s.now = func() time.Time { return day1.AddDate(0, 0, 1) }
	xs, err := s.XpStats(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if xs.DailyXP != 0 {
		t.Errorf("daily xp after boundary = %d, want 0", xs.DailyXP)
	}
	if xs.WeeklyXP != 130 {
		t.Errorf("weekly xp after day boundary = %d, want 130", xs.WeeklyXP)
	}
	if xs.TotalXP != 130 {
		t.Errorf("total xp after boundary = %d, want 130", xs.TotalXP)
	}
	if ledgers.saves != savesBefore+1 {
		t.Errorf("expected exactly one persisted reset, got %d saves", ledgers.saves-savesBefore)
	}

	// The reset is idempotent within the new day.
	if _, err := s.XpStats(ctx, "user-1"); err != nil {
		t.Fatal(err)
	}
	if ledgers.saves != savesBefore+1 {
		t.Error("repeated same-day read persisted another reset")
	}
}

func TestXpStats_WeeklyResetOnWeekBoundary(t *testing.T) {
	saturday := date(2024, time.March, 16)
	s, _, _, _ := newTestService(saturday)
	ctx := context.Background()

	_, err := s.RecordCompletion(ctx, "user-1", RecordInput{
		ChallengeName: "q", Score: 100, Difficulty: DifficultyExpert, Skills: []string{"go"},
	})
	if err != nil {
		t.Fatal(err)
	}

	// Sunday starts a new week.
	s.now = func() time.Time { return saturday.AddDate(0, 0, 1) }
	xs, err := s.XpStats(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if xs.WeeklyXP != 0 {
		t.Errorf("weekly xp after week boundary = %d, want 0", xs.WeeklyXP)
	}
	if xs.TotalXP != 300 {
		t.Errorf("total xp = %d, want 300", xs.TotalXP)
	}
}

func TestStats_FiltersByPeriod(t *testing.T) {
	// Wednesday; week started Sunday March 10.
	now := date(2024, time.March, 13)
	s, completions, _, _ := newTestService(now)
	ctx := context.Background()

	add := func(daysAgo, score int) {
		completions.seq++
		completions.events = append(completions.events, store.CompletionRecord{
			CompletionID: "c", UserID: "user-1", ChallengeName: "q",
			Score: score, Difficulty: "easy", Skills: []string{"go"},
			XPEarned: 50, Sequence: completions.seq,
			Timestamp: now.AddDate(0, 0, -daysAgo),
		})
	}
	add(0, 90)  // today
	add(1, 70)  // this week
	add(2, 50)  // this week
	add(6, 100) // last week (March 7)

	stats, err := s.Stats(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalCompleted != 4 {
		t.Errorf("total = %d, want 4", stats.TotalCompleted)
	}
	if stats.DailyCompleted != 1 {
		t.Errorf("daily = %d, want 1", stats.DailyCompleted)
	}
	if stats.WeeklyCompleted != 3 {
		t.Errorf("weekly = %d, want 3", stats.WeeklyCompleted)
	}
	if stats.AverageScore != 78 { // round(310/4)
		t.Errorf("average = %d, want 78", stats.AverageScore)
	}
	if stats.CurrentStreak != 3 {
		t.Errorf("streak = %d, want 3", stats.CurrentStreak)
	}
}

func TestStats_EmptyHistory(t *testing.T) {
	s, _, _, _ := newTestService(time.Now())
	stats, err := s.Stats(context.Background(), "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if stats.AverageScore != 0 || stats.CurrentStreak != 0 || stats.TotalCompleted != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestActivityLogCap(t *testing.T) {
	now := date(2024, time.March, 12)
	s, _, _, _ := newTestService(now)
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		_, err := s.RecordCompletion(ctx, "user-1", RecordInput{
			ChallengeName: "q", Score: 50, Difficulty: DifficultyEasy, Skills: []string{"go"},
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	recent, err := s.RecentActivity(ctx, "user-1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != store.ActivityLogCap {
		t.Errorf("activity entries = %d, want %d", len(recent), store.ActivityLogCap)
	}
	// Newest entry survives; oldest were evicted.
	if recent[0].Sequence <= recent[len(recent)-1].Sequence {
		t.Error("expected newest-first ordering")
	}
}
