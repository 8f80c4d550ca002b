// Package leaderboard ranks users by earned XP.
package leaderboard

import (
	"context"
	"sort"
	"time"

	"github.com/mkale/skillforge/internal/ledger"
	"github.com/mkale/skillforge/internal/store"
)

// Entry is one leaderboard row.
type Entry struct {
	Rank   int
	UserID string
	XP     int
	Level  int
}

// Service computes rankings from ledger totals and completion events.
type Service struct {
	ledgers     store.LedgerRepo
	completions store.CompletionLog
	now         func() time.Time
}

// NewService creates a leaderboard service.
func NewService(ledgers store.LedgerRepo, completions store.CompletionLog) *Service {
	return &Service{ledgers: ledgers, completions: completions, now: time.Now}
}

// AllTime returns the top users by total XP.
func (s *Service) AllTime(ctx context.Context, limit int) ([]Entry, error) {
	totals, err := s.ledgers.Totals(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, len(totals))
	for i, t := range totals {
		out[i] = Entry{
			Rank:   i + 1,
			UserID: t.UserID,
			XP:     t.TotalXP,
			Level:  ledger.Level(t.TotalXP),
		}
	}
	return out, nil
}

// Weekly returns the top users by XP earned since the start of the
// current week (Sunday).
func (s *Service) Weekly(ctx context.Context, limit int) ([]Entry, error) {
	weekStart := ledger.WeekStart(s.now())

	byUser, err := s.completions.CompletionXPSince(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(byUser))
	for userID, xp := range byUser {
		out = append(out, Entry{UserID: userID, XP: xp})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].XP != out[j].XP {
			return out[i].XP > out[j].XP
		}
		return out[i].UserID < out[j].UserID // stable order for ties
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}

// RankForUser returns the user's all-time entry, or nil when the user
// has no ledger yet.
func (s *Service) RankForUser(ctx context.Context, userID string) (*Entry, error) {
	totals, err := s.ledgers.Totals(ctx, 0)
	if err != nil {
		return nil, err
	}
	for i, t := range totals {
		if t.UserID == userID {
			return &Entry{
				Rank:   i + 1,
				UserID: t.UserID,
				XP:     t.TotalXP,
				Level:  ledger.Level(t.TotalXP),
			}, nil
		}
	}
	return nil, nil
}
