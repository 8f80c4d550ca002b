package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mkale/skillforge/ent"
	"github.com/mkale/skillforge/ent/completionevent"
)

// EventRepo provides append and query access to the event tables.
// All appends draw from the shared global sequence counter.
type EventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *EventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetCompletionID(data.CompletionID).
		SetChallengeName(data.ChallengeName).
		SetScore(data.Score).
		SetDifficulty(data.Difficulty).
		SetSkills(data.Skills).
		SetXpEarned(data.XPEarned)

	if data.Badge != "" {
		builder = builder.SetBadge(data.Badge)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *EventRepo) CompletionsByUser(ctx context.Context, userID string, opts QueryOpts) ([]CompletionRecord, error) {
	query := r.client.CompletionEvent.Query().
		Where(completionevent.UserID(userID)).
		Order(ent.Desc(completionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(completionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(completionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(completionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(completionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completion events: %w", err)
	}

	records := make([]CompletionRecord, len(events))
	for i, e := range events {
		records[i] = CompletionRecord{
			CompletionID:  e.CompletionID,
			UserID:        e.UserID,
			ChallengeName: e.ChallengeName,
			Score:         e.Score,
			Difficulty:    e.Difficulty,
			Skills:        e.Skills,
			XPEarned:      e.XpEarned,
			Badge:         e.Badge,
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
		}
	}
	return records, nil
}

func (r *EventRepo) CompletionXPSince(ctx context.Context, from time.Time) (map[string]int, error) {
	events, err := r.client.CompletionEvent.Query().
		Where(completionevent.TimestampGTE(from)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completions since: %w", err)
	}

	byUser := make(map[string]int)
	for _, e := range events {
		byUser[e.UserID] += e.XpEarned
	}
	return byUser, nil
}
