package store

import (
	"context"
	"fmt"

	"github.com/mkale/skillforge/ent"
	"github.com/mkale/skillforge/ent/discussion"
	"github.com/mkale/skillforge/ent/messageevent"
	"github.com/mkale/skillforge/ent/vote"
)

// discussionRepo implements DiscussionRepo. Messages live in the event log,
// so the repo delegates message operations to the EventRepo.
type discussionRepo struct {
	client *ent.Client
	events *EventRepo
}

func (r *discussionRepo) CreateDiscussion(ctx context.Context, rec *DiscussionRecord) error {
	row, err := r.client.Discussion.Create().
		SetDiscussionID(rec.DiscussionID).
		SetUserID(rec.UserID).
		SetTitle(rec.Title).
		SetBody(rec.Body).
		SetSkillTag(rec.SkillTag).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create discussion: %w", err)
	}
	rec.CreatedAt = row.CreatedAt
	rec.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *discussionRepo) GetDiscussion(ctx context.Context, discussionID string) (*DiscussionRecord, error) {
	row, err := r.client.Discussion.Query().
		Where(discussion.DiscussionID(discussionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query discussion: %w", err)
	}
	return entDiscussionToRecord(row), nil
}

func (r *discussionRepo) ListDiscussions(ctx context.Context, skillTag string, limit int) ([]DiscussionRecord, error) {
	query := r.client.Discussion.Query().
		Order(ent.Desc(discussion.FieldCreatedAt))

	if skillTag != "" {
		query = query.Where(discussion.SkillTag(skillTag))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query discussions: %w", err)
	}

	records := make([]DiscussionRecord, len(rows))
	for i, row := range rows {
		records[i] = *entDiscussionToRecord(row)
	}
	return records, nil
}

func (r *discussionRepo) AppendMessage(ctx context.Context, data MessageEventData) (*MessageRecord, error) {
	rec, err := r.events.AppendMessage(ctx, data)
	if err != nil {
		return nil, err
	}

	// Bump the thread's updated_at so listings surface active threads.
	_, err = r.client.Discussion.Update().
		Where(discussion.DiscussionID(data.DiscussionID)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("touch discussion: %w", err)
	}
	return rec, nil
}

func (r *discussionRepo) MessagesAfter(ctx context.Context, discussionID string, after int64, limit int) ([]MessageRecord, error) {
	return r.events.MessagesAfter(ctx, discussionID, after, limit)
}

func (r *discussionRepo) SetVote(ctx context.Context, userID, targetType, targetID string, value int) error {
	err := r.client.Vote.Create().
		SetUserID(userID).
		SetTargetType(targetType).
		SetTargetID(targetID).
		SetValue(value).
		OnConflictColumns(vote.FieldUserID, vote.FieldTargetType, vote.FieldTargetID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert vote: %w", err)
	}
	return nil
}

func (r *discussionRepo) VoteScore(ctx context.Context, targetType, targetID string) (int, error) {
	rows, err := r.client.Vote.Query().
		Where(
			vote.TargetType(targetType),
			vote.TargetID(targetID),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query votes: %w", err)
	}

	score := 0
	for _, v := range rows {
		score += v.Value
	}
	return score, nil
}

func (r *discussionRepo) KarmaForUser(ctx context.Context, userID string) (int, error) {
	// Collect everything the user authored, then sum votes received.
	threads, err := r.client.Discussion.Query().
		Where(discussion.UserID(userID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query authored discussions: %w", err)
	}

	messages, err := r.client.MessageEvent.Query().
		Where(messageevent.UserID(userID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query authored messages: %w", err)
	}

	karma := 0
	for _, t := range threads {
		score, err := r.VoteScore(ctx, VoteTargetDiscussion, t.DiscussionID)
		if err != nil {
			return 0, err
		}
		karma += score
	}
	for _, m := range messages {
		score, err := r.VoteScore(ctx, VoteTargetMessage, m.MessageID)
		if err != nil {
			return 0, err
		}
		karma += score
	}
	return karma, nil
}

func entDiscussionToRecord(row *ent.Discussion) *DiscussionRecord {
	return &DiscussionRecord{
		DiscussionID: row.DiscussionID,
		UserID:       row.UserID,
		Title:        row.Title,
		Body:         row.Body,
		SkillTag:     row.SkillTag,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
