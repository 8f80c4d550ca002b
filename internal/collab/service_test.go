package collab

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mkale/skillforge/internal/store"
)

type memberKey struct {
	sessionID string
	userID    string
}

// fakeCollabRepo is a map-backed store.CollabRepo.
type fakeCollabRepo struct {
	sessions map[string]store.CollabSessionRecord
	members  map[memberKey]store.CollabParticipantRecord
}

func newFakeCollabRepo() *fakeCollabRepo {
	return &fakeCollabRepo{
		sessions: make(map[string]store.CollabSessionRecord),
		members:  make(map[memberKey]store.CollabParticipantRecord),
	}
}

func (f *fakeCollabRepo) CreateSession(_ context.Context, rec *store.CollabSessionRecord) error {
	f.sessions[rec.SessionID] = *rec
	return nil
}

func (f *fakeCollabRepo) EndSession(_ context.Context, sessionID string) error {
	s, ok := f.sessions[sessionID]
	if !ok {
		return errors.New("not found")
	}
	s.Active = false
	f.sessions[sessionID] = s
	return nil
}

func (f *fakeCollabRepo) SetRelayURL(_ context.Context, sessionID, relayURL string) error {
	s, ok := f.sessions[sessionID]
	if !ok {
		return errors.New("not found")
	}
	s.RelayURL = relayURL
	f.sessions[sessionID] = s
	return nil
}

func (f *fakeCollabRepo) Join(_ context.Context, sessionID, userID string) error {
	f.members[memberKey{sessionID, userID}] = store.CollabParticipantRecord{
		SessionID: sessionID,
		UserID:    userID,
		JoinedAt:  time.Now(),
	}
	return nil
}

func (f *fakeCollabRepo) Leave(_ context.Context, sessionID, userID string) error {
	key := memberKey{sessionID, userID}
	m, ok := f.members[key]
	if !ok {
		return errors.New("not a participant")
	}
	now := time.Now()
	m.LeftAt = &now
	f.members[key] = m
	return nil
}

func (f *fakeCollabRepo) ActiveSessions(_ context.Context) ([]store.CollabSessionRecord, error) {
	var out []store.CollabSessionRecord
	for _, s := range f.sessions {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeCollabRepo) Participants(_ context.Context, sessionID string) ([]store.CollabParticipantRecord, error) {
	var out []store.CollabParticipantRecord
	for _, m := range f.members {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestCreateSession_HostAutoJoins(t *testing.T) {
	repo := newFakeCollabRepo()
	s := NewService(repo, &scriptedDialer{}, []string{"relay-1"})
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "host", CreateSessionInput{Title: "Pairing on parsers", Language: "go"})
	if err != nil {
		t.Fatal(err)
	}
	if !sess.Active {
		t.Error("new session should be active")
	}

	members, err := s.Participants(ctx, sess.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 1 || members[0].UserID != "host" {
		t.Errorf("participants = %+v, want the host", members)
	}
}

func TestCreateSession_Validation(t *testing.T) {
	s := NewService(newFakeCollabRepo(), &scriptedDialer{}, nil)
	if _, err := s.CreateSession(context.Background(), "", CreateSessionInput{Title: "x"}); err == nil {
		t.Error("expected error for missing host")
	}
	if _, err := s.CreateSession(context.Background(), "host", CreateSessionInput{}); err == nil {
		t.Error("expected error for missing title")
	}
}

func TestConnect_RecordsWinningRelay(t *testing.T) {
	repo := newFakeCollabRepo()
	dialer := &scriptedDialer{failures: map[string]error{"relay-1": errors.New("down")}}
	s := NewService(repo, dialer, []string{"relay-1", "relay-2"})
	s.policy = fastPolicy(1)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "host", CreateSessionInput{Title: "Room"})
	if err != nil {
		t.Fatal(err)
	}

	conn, err := s.Connect(ctx, sess.SessionID)
	if err != nil {
		t.Fatal(err)
	}
	if conn.Endpoint() != "relay-2" {
		t.Errorf("connected to %s, want relay-2", conn.Endpoint())
	}
	if repo.sessions[sess.SessionID].RelayURL != "relay-2" {
		t.Errorf("relay url = %q, want relay-2", repo.sessions[sess.SessionID].RelayURL)
	}
}

func TestEnd_OnlyHost(t *testing.T) {
	repo := newFakeCollabRepo()
	s := NewService(repo, &scriptedDialer{}, nil)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "host", CreateSessionInput{Title: "Room"})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.End(ctx, sess.SessionID, "guest"); err == nil {
		t.Error("expected error when a guest ends the session")
	}
	if err := s.End(ctx, sess.SessionID, "host"); err != nil {
		t.Fatalf("host End: %v", err)
	}

	active, _ := s.ActiveSessions(ctx)
	if len(active) != 0 {
		t.Errorf("active sessions = %d, want 0", len(active))
	}

	// Ending an ended session fails.
	if err := s.End(ctx, sess.SessionID, "host"); err == nil {
		t.Error("expected error ending an inactive session")
	}
}

func TestJoinAndLeave(t *testing.T) {
	repo := newFakeCollabRepo()
	s := NewService(repo, &scriptedDialer{}, nil)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "host", CreateSessionInput{Title: "Room"})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Join(ctx, sess.SessionID, "guest"); err != nil {
		t.Fatal(err)
	}
	if err := s.Leave(ctx, sess.SessionID, "guest"); err != nil {
		t.Fatal(err)
	}

	members, _ := s.Participants(ctx, sess.SessionID)
	for _, m := range members {
		if m.UserID == "guest" && m.LeftAt == nil {
			t.Error("guest should have a departure time")
		}
	}

	if err := s.Join(ctx, sess.SessionID, ""); err == nil {
		t.Error("expected error joining with empty user")
	}
}
