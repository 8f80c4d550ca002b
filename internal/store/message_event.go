package store

import (
	"context"
	"fmt"

	"github.com/mkale/skillforge/ent"
	"github.com/mkale/skillforge/ent/messageevent"
)

func (r *EventRepo) AppendMessage(ctx context.Context, data MessageEventData) (*MessageRecord, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}

	e, err := r.client.MessageEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetMessageID(data.MessageID).
		SetDiscussionID(data.DiscussionID).
		SetBody(data.Body).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save message event: %w", err)
	}

	return &MessageRecord{
		MessageID:    e.MessageID,
		DiscussionID: e.DiscussionID,
		UserID:       e.UserID,
		Body:         e.Body,
		Sequence:     e.Sequence,
		Timestamp:    e.Timestamp,
	}, nil
}

func (r *EventRepo) MessagesAfter(ctx context.Context, discussionID string, after int64, limit int) ([]MessageRecord, error) {
	query := r.client.MessageEvent.Query().
		Where(messageevent.DiscussionID(discussionID)).
		Order(ent.Asc(messageevent.FieldSequence))

	if after > 0 {
		query = query.Where(messageevent.SequenceGT(after))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query message events: %w", err)
	}

	records := make([]MessageRecord, len(events))
	for i, e := range events {
		records[i] = MessageRecord{
			MessageID:    e.MessageID,
			DiscussionID: e.DiscussionID,
			UserID:       e.UserID,
			Body:         e.Body,
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
		}
	}
	return records, nil
}
