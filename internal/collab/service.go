// Package collab manages collaborative editor rooms: session and
// participant bookkeeping plus relay connection with fallback.
// Document conflict resolution stays with the relay service.
package collab

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkale/skillforge/internal/store"
)

// CreateSessionInput describes a new room.
type CreateSessionInput struct {
	Title    string
	Language string
}

// Service owns room lifecycle over the repository.
type Service struct {
	repo   store.CollabRepo
	dialer Dialer
	relays []string
	policy RetryPolicy
	now    func() time.Time
}

// NewService creates a collab service. relays is the ordered endpoint
// fallback list used when connecting a session.
func NewService(repo store.CollabRepo, dialer Dialer, relays []string) *Service {
	return &Service{
		repo:   repo,
		dialer: dialer,
		relays: relays,
		policy: DefaultRetryPolicy(),
		now:    time.Now,
	}
}

// CreateSession opens a room hosted by the user and joins them to it.
func (s *Service) CreateSession(ctx context.Context, hostUserID string, in CreateSessionInput) (*store.CollabSessionRecord, error) {
	if hostUserID == "" {
		return nil, fmt.Errorf("host is required")
	}
	if in.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	rec := &store.CollabSessionRecord{
		SessionID:  uuid.NewString(),
		HostUserID: hostUserID,
		Title:      in.Title,
		Language:   in.Language,
		Active:     true,
		CreatedAt:  s.now(),
	}
	if err := s.repo.CreateSession(ctx, rec); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	if err := s.repo.Join(ctx, rec.SessionID, hostUserID); err != nil {
		return nil, fmt.Errorf("joining own session: %w", err)
	}
	return rec, nil
}

// Connect establishes the session's relay connection, trying the
// configured endpoints in order, and records which one won.
func (s *Service) Connect(ctx context.Context, sessionID string) (Conn, error) {
	conn, err := ConnectWithFallback(ctx, s.dialer, s.relays, s.policy)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetRelayURL(ctx, sessionID, conn.Endpoint()); err != nil {
		conn.Close()
		return nil, fmt.Errorf("recording relay: %w", err)
	}
	return conn, nil
}

// Join adds the user to a session. Rejoining after leaving is allowed.
func (s *Service) Join(ctx context.Context, sessionID, userID string) error {
	if userID == "" {
		return fmt.Errorf("user is required")
	}
	return s.repo.Join(ctx, sessionID, userID)
}

// Leave marks the user as departed.
func (s *Service) Leave(ctx context.Context, sessionID, userID string) error {
	return s.repo.Leave(ctx, sessionID, userID)
}

// End closes the session. Only the host may end it.
func (s *Service) End(ctx context.Context, sessionID, userID string) error {
	sessions, err := s.repo.ActiveSessions(ctx)
	if err != nil {
		return err
	}
	for _, sess := range sessions {
		if sess.SessionID != sessionID {
			continue
		}
		if sess.HostUserID != userID {
			return fmt.Errorf("only the host can end a session")
		}
		return s.repo.EndSession(ctx, sessionID)
	}
	return fmt.Errorf("session %s not found or already ended", sessionID)
}

// ActiveSessions lists open rooms.
func (s *Service) ActiveSessions(ctx context.Context) ([]store.CollabSessionRecord, error) {
	return s.repo.ActiveSessions(ctx)
}

// Participants lists a room's membership, past and present.
func (s *Service) Participants(ctx context.Context, sessionID string) ([]store.CollabParticipantRecord, error) {
	return s.repo.Participants(ctx, sessionID)
}
