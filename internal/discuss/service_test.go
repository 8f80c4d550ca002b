package discuss

import (
	"context"
	"testing"
	"time"

	"github.com/mkale/skillforge/internal/store"
)

type voteKey struct {
	userID     string
	targetType string
	targetID   string
}

// fakeRepo is a map-backed store.DiscussionRepo.
type fakeRepo struct {
	threads  map[string]store.DiscussionRecord
	messages []store.MessageRecord
	votes    map[voteKey]int
	seq      int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		threads: make(map[string]store.DiscussionRecord),
		votes:   make(map[voteKey]int),
	}
}

func (f *fakeRepo) CreateDiscussion(_ context.Context, rec *store.DiscussionRecord) error {
	f.threads[rec.DiscussionID] = *rec
	return nil
}

func (f *fakeRepo) GetDiscussion(_ context.Context, id string) (*store.DiscussionRecord, error) {
	rec, ok := f.threads[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeRepo) ListDiscussions(_ context.Context, skillTag string, limit int) ([]store.DiscussionRecord, error) {
	var out []store.DiscussionRecord
	for _, rec := range f.threads {
		if skillTag != "" && rec.SkillTag != skillTag {
			continue
		}
		out = append(out, rec)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeRepo) AppendMessage(_ context.Context, data store.MessageEventData) (*store.MessageRecord, error) {
	f.seq++
	rec := store.MessageRecord{
		MessageID:    data.MessageID,
		DiscussionID: data.DiscussionID,
		UserID:       data.UserID,
		Body:         data.Body,
		Sequence:     f.seq,
		Timestamp:    time.Now(),
	}
	f.messages = append(f.messages, rec)
	if t, ok := f.threads[data.DiscussionID]; ok {
		t.UpdatedAt = rec.Timestamp
		f.threads[data.DiscussionID] = t
	}
	return &rec, nil
}

func (f *fakeRepo) MessagesAfter(_ context.Context, discussionID string, after int64, limit int) ([]store.MessageRecord, error) {
	var out []store.MessageRecord
	for _, m := range f.messages {
		if m.DiscussionID != discussionID || m.Sequence <= after {
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeRepo) SetVote(_ context.Context, userID, targetType, targetID string, value int) error {
	f.votes[voteKey{userID, targetType, targetID}] = value
	return nil
}

func (f *fakeRepo) VoteScore(_ context.Context, targetType, targetID string) (int, error) {
	sum := 0
	for k, v := range f.votes {
		if k.targetType == targetType && k.targetID == targetID {
			sum += v
		}
	}
	return sum, nil
}

func (f *fakeRepo) KarmaForUser(_ context.Context, userID string) (int, error) {
	sum := 0
	for _, t := range f.threads {
		if t.UserID != userID {
			continue
		}
		score, _ := f.VoteScore(nil, store.VoteTargetDiscussion, t.DiscussionID)
		sum += score
	}
	for _, m := range f.messages {
		if m.UserID != userID {
			continue
		}
		score, _ := f.VoteScore(nil, store.VoteTargetMessage, m.MessageID)
		sum += score
	}
	return sum, nil
}

func TestCreateThread(t *testing.T) {
	repo := newFakeRepo()
	s := NewService(repo)
	ctx := context.Background()

	rec, err := s.CreateThread(ctx, "user-1", CreateThreadInput{
		Title:    "Interfaces vs generics",
		Body:     "When would you reach for one over the other?",
		SkillTag: "go",
	})
	if err != nil {
		t.Fatalf("CreateThread: %v", err)
	}
	if rec.DiscussionID == "" {
		t.Error("expected generated discussion id")
	}
	if len(repo.threads) != 1 {
		t.Errorf("threads stored = %d, want 1", len(repo.threads))
	}
}

func TestCreateThread_Validation(t *testing.T) {
	s := NewService(newFakeRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		user string
		in   CreateThreadInput
	}{
		{"no author", "", CreateThreadInput{Title: "abc", Body: "b", SkillTag: "go"}},
		{"short title", "u", CreateThreadInput{Title: "ab", Body: "b", SkillTag: "go"}},
		{"empty body", "u", CreateThreadInput{Title: "abc", SkillTag: "go"}},
		{"missing tag", "u", CreateThreadInput{Title: "abc", Body: "b"}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.CreateThread(ctx, tt.user, tt.in); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestPostMessage_AndPoll(t *testing.T) {
	s := NewService(newFakeRepo())
	ctx := context.Background()

	thread, err := s.CreateThread(ctx, "host", CreateThreadInput{
		Title: "Weekly chat", Body: "Open floor.", SkillTag: "general",
	})
	if err != nil {
		t.Fatal(err)
	}

	first, err := s.PostMessage(ctx, "user-1", PostMessageInput{DiscussionID: thread.DiscussionID, Body: "hello"})
	if err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	if _, err := s.PostMessage(ctx, "user-2", PostMessageInput{DiscussionID: thread.DiscussionID, Body: "hi back"}); err != nil {
		t.Fatal(err)
	}

	all, err := s.MessagesAfter(ctx, thread.DiscussionID, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("messages = %d, want 2", len(all))
	}

	// Polling after the first message only yields the second.
	newer, err := s.MessagesAfter(ctx, thread.DiscussionID, first.Sequence, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(newer) != 1 || newer[0].Body != "hi back" {
		t.Errorf("poll after seq %d = %+v, want the second message", first.Sequence, newer)
	}
}

func TestPostMessage_UnknownThread(t *testing.T) {
	s := NewService(newFakeRepo())
	_, err := s.PostMessage(context.Background(), "user-1", PostMessageInput{
		DiscussionID: "0e0e8c2e-8a3f-4a7d-9a6e-1f2b3c4d5e6f",
		Body:         "hello",
	})
	if err == nil {
		t.Fatal("expected error for unknown thread")
	}
}

func TestVote_ReplacesAndScores(t *testing.T) {
	repo := newFakeRepo()
	s := NewService(repo)
	ctx := context.Background()

	thread, err := s.CreateThread(ctx, "author", CreateThreadInput{
		Title: "Vote on me", Body: "please", SkillTag: "go",
	})
	if err != nil {
		t.Fatal(err)
	}

	vote := func(user string, value int) {
		t.Helper()
		err := s.Vote(ctx, user, VoteInput{
			TargetType: store.VoteTargetDiscussion,
			TargetID:   thread.DiscussionID,
			Value:      value,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	vote("a", 1)
	vote("b", 1)
	vote("c", -1)

	got, err := s.Thread(ctx, thread.DiscussionID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Score != 1 {
		t.Errorf("score = %d, want 1", got.Score)
	}

	// A re-vote replaces, not stacks.
	vote("c", 1)
	got, _ = s.Thread(ctx, thread.DiscussionID)
	if got.Score != 3 {
		t.Errorf("score after re-vote = %d, want 3", got.Score)
	}

	karma, err := s.Karma(ctx, "author")
	if err != nil {
		t.Fatal(err)
	}
	if karma != 3 {
		t.Errorf("karma = %d, want 3", karma)
	}
}

func TestVote_Validation(t *testing.T) {
	s := NewService(newFakeRepo())
	err := s.Vote(context.Background(), "u", VoteInput{TargetType: "discussion", TargetID: "x", Value: 2})
	if err == nil {
		t.Error("expected error for vote value outside {-1, 1}")
	}
	err = s.Vote(context.Background(), "u", VoteInput{TargetType: "thread", TargetID: "x", Value: 1})
	if err == nil {
		t.Error("expected error for unknown target type")
	}
}
