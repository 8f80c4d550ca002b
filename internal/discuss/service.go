// Package discuss implements forum threads, chat messages, votes, and
// the karma derived from them.
package discuss

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mkale/skillforge/internal/store"
)

// CreateThreadInput is the validated payload for a new thread.
type CreateThreadInput struct {
	Title    string `validate:"required,min=3,max=200"`
	Body     string `validate:"required,max=10000"`
	SkillTag string `validate:"required,max=50"`
}

// PostMessageInput is the validated payload for a new chat message.
type PostMessageInput struct {
	DiscussionID string `validate:"required,uuid4"`
	Body         string `validate:"required,max=2000"`
}

// VoteInput is the validated payload for an up/down vote.
type VoteInput struct {
	TargetType string `validate:"required,oneof=discussion message"`
	TargetID   string `validate:"required"`
	Value      int    `validate:"required,oneof=-1 1"`
}

// Thread is a discussion with its derived vote score.
type Thread struct {
	store.DiscussionRecord
	Score int
}

// Service owns discussion semantics over the repository.
type Service struct {
	repo     store.DiscussionRepo
	validate *validator.Validate
	now      func() time.Time
}

// NewService creates a discussion service.
func NewService(repo store.DiscussionRepo) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		now:      time.Now,
	}
}

// CreateThread validates and stores a new thread for the author.
func (s *Service) CreateThread(ctx context.Context, userID string, in CreateThreadInput) (*store.DiscussionRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("author is required")
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid thread: %w", err)
	}

	rec := &store.DiscussionRecord{
		DiscussionID: uuid.NewString(),
		UserID:       userID,
		Title:        in.Title,
		Body:         in.Body,
		SkillTag:     in.SkillTag,
		CreatedAt:    s.now(),
		UpdatedAt:    s.now(),
	}
	if err := s.repo.CreateDiscussion(ctx, rec); err != nil {
		return nil, fmt.Errorf("creating thread: %w", err)
	}
	return rec, nil
}

// Thread returns one thread with its vote score, or nil when absent.
func (s *Service) Thread(ctx context.Context, discussionID string) (*Thread, error) {
	rec, err := s.repo.GetDiscussion(ctx, discussionID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	score, err := s.repo.VoteScore(ctx, store.VoteTargetDiscussion, discussionID)
	if err != nil {
		return nil, err
	}
	return &Thread{DiscussionRecord: *rec, Score: score}, nil
}

// Threads lists threads, optionally filtered by skill tag, with scores.
func (s *Service) Threads(ctx context.Context, skillTag string, limit int) ([]Thread, error) {
	recs, err := s.repo.ListDiscussions(ctx, skillTag, limit)
	if err != nil {
		return nil, err
	}
	out := make([]Thread, len(recs))
	for i, rec := range recs {
		score, err := s.repo.VoteScore(ctx, store.VoteTargetDiscussion, rec.DiscussionID)
		if err != nil {
			return nil, err
		}
		out[i] = Thread{DiscussionRecord: rec, Score: score}
	}
	return out, nil
}

// PostMessage validates and appends a chat message to a thread.
func (s *Service) PostMessage(ctx context.Context, userID string, in PostMessageInput) (*store.MessageRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("author is required")
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid message: %w", err)
	}

	thread, err := s.repo.GetDiscussion(ctx, in.DiscussionID)
	if err != nil {
		return nil, err
	}
	if thread == nil {
		return nil, fmt.Errorf("thread %s not found", in.DiscussionID)
	}

	return s.repo.AppendMessage(ctx, store.MessageEventData{
		MessageID:    uuid.NewString(),
		DiscussionID: in.DiscussionID,
		UserID:       userID,
		Body:         in.Body,
	})
}

// MessagesAfter returns a thread's messages with sequence greater than
// after, oldest first. Pass after=0 for the full history.
func (s *Service) MessagesAfter(ctx context.Context, discussionID string, after int64, limit int) ([]store.MessageRecord, error) {
	return s.repo.MessagesAfter(ctx, discussionID, after, limit)
}

// Vote validates and records a vote. Voting again replaces the old vote.
func (s *Service) Vote(ctx context.Context, userID string, in VoteInput) error {
	if userID == "" {
		return fmt.Errorf("voter is required")
	}
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("invalid vote: %w", err)
	}
	return s.repo.SetVote(ctx, userID, in.TargetType, in.TargetID, in.Value)
}

// Karma returns the net votes received on everything the user authored.
func (s *Service) Karma(ctx context.Context, userID string) (int, error) {
	return s.repo.KarmaForUser(ctx, userID)
}
