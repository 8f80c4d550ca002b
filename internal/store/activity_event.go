package store

import (
	"context"
	"fmt"

	"github.com/mkale/skillforge/ent"
	"github.com/mkale/skillforge/ent/activityevent"
)

func (r *EventRepo) AppendActivity(ctx context.Context, data ActivityEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ActivityEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetActivityType(data.ActivityType).
		SetDetail(data.Detail).
		SetXpDelta(data.XPDelta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save activity event: %w", err)
	}

	return r.trimActivity(ctx, data.UserID)
}

// trimActivity evicts the oldest entries beyond ActivityLogCap for the user.
func (r *EventRepo) trimActivity(ctx context.Context, userID string) error {
	overflow, err := r.client.ActivityEvent.Query().
		Where(activityevent.UserID(userID)).
		Order(ent.Desc(activityevent.FieldSequence)).
		Offset(ActivityLogCap).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query activity overflow: %w", err)
	}
	if len(overflow) == 0 {
		return nil
	}

	threshold := overflow[0].Sequence
	_, err = r.client.ActivityEvent.Delete().
		Where(
			activityevent.UserID(userID),
			activityevent.SequenceLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("trim activity log: %w", err)
	}
	return nil
}

func (r *EventRepo) RecentActivity(ctx context.Context, userID string, limit int) ([]ActivityRecord, error) {
	query := r.client.ActivityEvent.Query().
		Where(activityevent.UserID(userID)).
		Order(ent.Desc(activityevent.FieldSequence))

	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}

	records := make([]ActivityRecord, len(events))
	for i, e := range events {
		records[i] = ActivityRecord{
			UserID:       e.UserID,
			ActivityType: e.ActivityType,
			Detail:       e.Detail,
			XPDelta:      e.XpDelta,
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
		}
	}
	return records, nil
}
