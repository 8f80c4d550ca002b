package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mkale/skillforge/internal/store"
)

// memStore is an in-memory implementation of every repository the API
// touches, shared across the fakes below.
type memStore struct {
	mu sync.Mutex

	profiles    map[string]store.ProfileRecord // by username
	ledgers     map[string]store.LedgerRecord
	completions []store.CompletionRecord
	activities  []store.ActivityRecord
	threads     map[string]store.DiscussionRecord
	messages    []store.MessageRecord
	votes       map[[3]string]int // user, targetType, targetID
	sessions    map[string]store.CollabSessionRecord
	members     map[[2]string]store.CollabParticipantRecord
	seq         int64
}

func newMemStore() *memStore {
	return &memStore{
		profiles: make(map[string]store.ProfileRecord),
		ledgers:  make(map[string]store.LedgerRecord),
		threads:  make(map[string]store.DiscussionRecord),
		votes:    make(map[[3]string]int),
		sessions: make(map[string]store.CollabSessionRecord),
		members:  make(map[[2]string]store.CollabParticipantRecord),
	}
}

func (m *memStore) nextSeq() int64 {
	m.seq++
	return m.seq
}

// --- store.ProfileRepo ---

func (m *memStore) Create(_ context.Context, rec *store.ProfileRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[rec.Username]; ok {
		return errors.New("username exists")
	}
	m.profiles[rec.Username] = *rec
	return nil
}

func (m *memStore) ByUsername(_ context.Context, username string) (*store.ProfileRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.profiles[username]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memStore) ByID(_ context.Context, userID string) (*store.ProfileRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.profiles {
		if rec.UserID == userID {
			return &rec, nil
		}
	}
	return nil, nil
}

func (m *memStore) UpdateSkills(_ context.Context, userID string, skills []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for username, rec := range m.profiles {
		if rec.UserID == userID {
			rec.Skills = skills
			m.profiles[username] = rec
		}
	}
	return nil
}

func (m *memStore) TouchLastSeen(_ context.Context, userID string) error { return nil }

func (m *memStore) All(_ context.Context) ([]store.ProfileRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.ProfileRecord
	for _, rec := range m.profiles {
		out = append(out, rec)
	}
	return out, nil
}

// --- store.CompletionLog / store.ActivityLog / store.LedgerRepo ---

func (m *memStore) AppendCompletion(_ context.Context, data store.CompletionEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completions = append(m.completions, store.CompletionRecord{
		CompletionID:  data.CompletionID,
		UserID:        data.UserID,
		ChallengeName: data.ChallengeName,
		Score:         data.Score,
		Difficulty:    data.Difficulty,
		Skills:        data.Skills,
		XPEarned:      data.XPEarned,
		Badge:         data.Badge,
		Sequence:      m.nextSeq(),
		Timestamp:     time.Now(),
	})
	return nil
}

func (m *memStore) CompletionsByUser(_ context.Context, userID string, opts store.QueryOpts) ([]store.CompletionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.CompletionRecord
	for i := len(m.completions) - 1; i >= 0; i-- {
		if m.completions[i].UserID != userID {
			continue
		}
		out = append(out, m.completions[i])
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) CompletionXPSince(_ context.Context, from time.Time) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byUser := make(map[string]int)
	for _, c := range m.completions {
		if !c.Timestamp.Before(from) {
			byUser[c.UserID] += c.XPEarned
		}
	}
	return byUser, nil
}

func (m *memStore) AppendActivity(_ context.Context, data store.ActivityEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activities = append(m.activities, store.ActivityRecord{
		UserID:       data.UserID,
		ActivityType: data.ActivityType,
		Detail:       data.Detail,
		XPDelta:      data.XPDelta,
		Sequence:     m.nextSeq(),
		Timestamp:    time.Now(),
	})
	return nil
}

func (m *memStore) RecentActivity(_ context.Context, userID string, limit int) ([]store.ActivityRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.ActivityRecord
	for i := len(m.activities) - 1; i >= 0; i-- {
		if m.activities[i].UserID != userID {
			continue
		}
		out = append(out, m.activities[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) Get(_ context.Context, userID string) (*store.LedgerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.ledgers[userID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memStore) Save(_ context.Context, rec *store.LedgerRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ledgers[rec.UserID] = *rec
	return nil
}

func (m *memStore) Totals(_ context.Context, limit int) ([]store.LedgerTotal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.LedgerTotal
	for _, rec := range m.ledgers {
		out = append(out, store.LedgerTotal{UserID: rec.UserID, TotalXP: rec.TotalXP})
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].TotalXP > out[i].TotalXP {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- store.DiscussionRepo ---

func (m *memStore) CreateDiscussion(_ context.Context, rec *store.DiscussionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.threads[rec.DiscussionID] = *rec
	return nil
}

func (m *memStore) GetDiscussion(_ context.Context, id string) (*store.DiscussionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.threads[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memStore) ListDiscussions(_ context.Context, skillTag string, limit int) ([]store.DiscussionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.DiscussionRecord
	for _, rec := range m.threads {
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

func (m *memStore) AppendMessage(_ context.Context, data store.MessageEventData) (*store.MessageRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := store.MessageRecord{
		MessageID:    data.MessageID,
		DiscussionID: data.DiscussionID,
		UserID:       data.UserID,
		Body:         data.Body,
		Sequence:     m.nextSeq(),
		Timestamp:    time.Now(),
	}
	m.messages = append(m.messages, rec)
	return &rec, nil
}

func (m *memStore) MessagesAfter(_ context.Context, discussionID string, after int64, limit int) ([]store.MessageRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.MessageRecord
	for _, msg := range m.messages {
		if msg.DiscussionID != discussionID || msg.Sequence <= after {
			continue
		}
		out = append(out, msg)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) SetVote(_ context.Context, userID, targetType, targetID string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.votes[[3]string{userID, targetType, targetID}] = value
	return nil
}

func (m *memStore) VoteScore(_ context.Context, targetType, targetID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sum := 0
	for k, v := range m.votes {
		if k[1] == targetType && k[2] == targetID {
			sum += v
		}
	}
	return sum, nil
}

func (m *memStore) KarmaForUser(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	threads := make([]store.DiscussionRecord, 0, len(m.threads))
	for _, t := range m.threads {
		threads = append(threads, t)
	}
	messages := append([]store.MessageRecord(nil), m.messages...)
	m.mu.Unlock()

	sum := 0
	for _, t := range threads {
		if t.UserID == userID {
			score, _ := m.VoteScore(nil, store.VoteTargetDiscussion, t.DiscussionID)
			sum += score
		}
	}
	for _, msg := range messages {
		if msg.UserID == userID {
			score, _ := m.VoteScore(nil, store.VoteTargetMessage, msg.MessageID)
			sum += score
		}
	}
	return sum, nil
}

// --- store.CollabRepo ---

func (m *memStore) CreateSession(_ context.Context, rec *store.CollabSessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[rec.SessionID] = *rec
	return nil
}

func (m *memStore) EndSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionID]
	if !ok {
		return errors.New("not found")
	}
	sess.Active = false
	m.sessions[sessionID] = sess
	return nil
}

func (m *memStore) SetRelayURL(_ context.Context, sessionID, relayURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionID]
	if !ok {
		return errors.New("not found")
	}
	sess.RelayURL = relayURL
	m.sessions[sessionID] = sess
	return nil
}

func (m *memStore) Join(_ context.Context, sessionID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members[[2]string{sessionID, userID}] = store.CollabParticipantRecord{
		SessionID: sessionID,
		UserID:    userID,
		JoinedAt:  time.Now(),
	}
	return nil
}

func (m *memStore) Leave(_ context.Context, sessionID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]string{sessionID, userID}
	member, ok := m.members[key]
	if !ok {
		return errors.New("not a participant")
	}
	now := time.Now()
	member.LeftAt = &now
	m.members[key] = member
	return nil
}

func (m *memStore) ActiveSessions(_ context.Context) ([]store.CollabSessionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.CollabSessionRecord
	for _, sess := range m.sessions {
		if sess.Active {
			out = append(out, sess)
		}
	}
	return out, nil
}

func (m *memStore) Participants(_ context.Context, sessionID string) ([]store.CollabParticipantRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.CollabParticipantRecord
	for _, member := range m.members {
		if member.SessionID == sessionID {
			out = append(out, member)
		}
	}
	return out, nil
}
