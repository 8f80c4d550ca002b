package ledger

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/mkale/skillforge/internal/store"
)

// Service converts quiz completions into XP totals, level, streak, and the
// activity feed, scoped per user. All persistence goes through the injected
// repositories so tests can run against map-backed fakes.
type Service struct {
	completions store.CompletionLog
	activities  store.ActivityLog
	ledgers     store.LedgerRepo

	now func() time.Time
}

// NewService creates a ledger service over the given repositories.
func NewService(completions store.CompletionLog, activities store.ActivityLog, ledgers store.LedgerRepo) *Service {
	return &Service{
		completions: completions,
		activities:  activities,
		ledgers:     ledgers,
		now:         time.Now,
	}
}

// RecordInput describes one finished quiz challenge.
type RecordInput struct {
	ChallengeName string
	Score         int
	Difficulty    Difficulty
	Skills        []string
	Badge         string
}

// RecordCompletion appends an immutable completion, credits XP to the
// user's ledger, and logs an activity entry. With an empty userID it
// silently does nothing — the original behaved this way when no user was
// signed in.
func (s *Service) RecordCompletion(ctx context.Context, userID string, in RecordInput) (*Completion, error) {
	if userID == "" {
		return nil, nil
	}
	if in.Score < 0 || in.Score > 100 {
		return nil, fmt.Errorf("score %d out of range [0,100]", in.Score)
	}
	if !in.Difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty %q", in.Difficulty)
	}
	if len(in.Skills) == 0 {
		return nil, fmt.Errorf("skills must not be empty")
	}

	now := s.now()
	c := &Completion{
		ID:            uuid.NewString(),
		ChallengeName: in.ChallengeName,
		Score:         in.Score,
		Difficulty:    in.Difficulty,
		Skills:        in.Skills,
		CompletedAt:   now,
		XPEarned:      XPForScore(in.Score, in.Difficulty),
		Badge:         in.Badge,
	}

	err := s.completions.AppendCompletion(ctx, store.CompletionEventData{
		CompletionID:  c.ID,
		UserID:        userID,
		ChallengeName: c.ChallengeName,
		Score:         c.Score,
		Difficulty:    string(c.Difficulty),
		Skills:        c.Skills,
		XPEarned:      c.XPEarned,
		Badge:         c.Badge,
	})
	if err != nil {
		return nil, fmt.Errorf("append completion: %w", err)
	}

	if err := s.creditXP(ctx, userID, c.XPEarned, now); err != nil {
		return nil, err
	}

	// Activity feed is best-effort; a failed append never loses the XP.
	activityErr := s.activities.AppendActivity(ctx, store.ActivityEventData{
		UserID:       userID,
		ActivityType: "challenge",
		Detail:       fmt.Sprintf("Completed %s (%s, %d%%)", c.ChallengeName, c.Difficulty, c.Score),
		XPDelta:      c.XPEarned,
	})
	if activityErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log activity: %v\n", activityErr)
	}

	return c, nil
}

// creditXP loads the user's ledger, rolls stale period counters, adds the
// earned XP, and saves.
func (s *Service) creditXP(ctx context.Context, userID string, xp int, now time.Time) error {
	rec, err := s.ledgers.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	rec = rollover(rec, userID, now)

	rec.TotalXP += xp
	rec.DailyXP += xp
	rec.WeeklyXP += xp

	if err := s.ledgers.Save(ctx, rec); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

// Stats re-derives the user's challenge statistics from the completion list.
func (s *Service) Stats(ctx context.Context, userID string) (*ChallengeStats, error) {
	if userID == "" {
		return &ChallengeStats{}, nil
	}

	records, err := s.completions.CompletionsByUser(ctx, userID, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}

	now := s.now()
	weekStart := WeekStart(now)

	stats := &ChallengeStats{TotalCompleted: len(records)}
	scoreSum := 0
	times := make([]time.Time, 0, len(records))
	for _, rec := range records {
		scoreSum += rec.Score
		times = append(times, rec.Timestamp)
		if SameDay(rec.Timestamp, now) {
			stats.DailyCompleted++
		}
		if !rec.Timestamp.Before(weekStart) {
			stats.WeeklyCompleted++
		}
	}

	if len(records) > 0 {
		stats.AverageScore = int(math.Round(float64(scoreSum) / float64(len(records))))
	}
	stats.CurrentStreak = StreakFromDays(completionDays(times), now)

	return stats, nil
}

// XpStats returns the watermark-gated XP counters. Stale daily/weekly
// counters are corrected here — on read, not on a timer — and the corrected
// watermarks are persisted so the reset happens exactly once per period.
func (s *Service) XpStats(ctx context.Context, userID string) (*XpStats, error) {
	if userID == "" {
		return xpStatsFrom(&store.LedgerRecord{}), nil
	}

	rec, err := s.ledgers.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	now := s.now()
	rolled := rollover(rec, userID, now)
	if rec == nil || rolled.LastDailyReset != rec.LastDailyReset || rolled.LastWeeklyReset != rec.LastWeeklyReset {
		if err := s.ledgers.Save(ctx, rolled); err != nil {
			return nil, fmt.Errorf("save ledger: %w", err)
		}
	}

	return xpStatsFrom(rolled), nil
}

// RecentActivity returns the user's activity feed, newest first.
func (s *Service) RecentActivity(ctx context.Context, userID string, limit int) ([]store.ActivityRecord, error) {
	if userID == "" {
		return nil, nil
	}
	return s.activities.RecentActivity(ctx, userID, limit)
}

// Completions returns the user's completion history, newest first.
func (s *Service) Completions(ctx context.Context, userID string, limit int) ([]store.CompletionRecord, error) {
	if userID == "" {
		return nil, nil
	}
	return s.completions.CompletionsByUser(ctx, userID, store.QueryOpts{Limit: limit})
}

// rollover zeroes any period counter whose watermark no longer matches now.
// A missing record reads as an empty ledger. The input record is not
// mutated.
func rollover(rec *store.LedgerRecord, userID string, now time.Time) *store.LedgerRecord {
	out := store.LedgerRecord{UserID: userID}
	if rec != nil {
		out = *rec
	}

	day := DayKey(now)
	if out.LastDailyReset != day {
		out.DailyXP = 0
		out.LastDailyReset = day
	}

	week := WeekKey(now)
	if out.LastWeeklyReset != week {
		out.WeeklyXP = 0
		out.LastWeeklyReset = week
	}

	return &out
}

func xpStatsFrom(rec *store.LedgerRecord) *XpStats {
	return &XpStats{
		TotalXP:             rec.TotalXP,
		DailyXP:             rec.DailyXP,
		WeeklyXP:            rec.WeeklyXP,
		Level:               Level(rec.TotalXP),
		XPToNextLevel:       XPToNextLevel(rec.TotalXP),
		ProgressToNextLevel: ProgressToNextLevel(rec.TotalXP),
	}
}
