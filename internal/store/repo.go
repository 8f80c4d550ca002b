package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ActivityLogCap is the maximum number of activity entries kept per user.
// Appends evict the oldest entries beyond the cap.
const ActivityLogCap = 50

// CompletionEventData captures one finished quiz challenge.
type CompletionEventData struct {
	CompletionID  string
	UserID        string
	ChallengeName string
	Score         int
	Difficulty    string
	Skills        []string
	XPEarned      int
	Badge         string
}

// CompletionRecord is a persisted completion with its event metadata.
type CompletionRecord struct {
	CompletionID  string
	UserID        string
	ChallengeName string
	Score         int
	Difficulty    string
	Skills        []string
	XPEarned      int
	Badge         string
	Sequence      int64
	Timestamp     time.Time
}

// ActivityEventData captures one activity-feed entry.
type ActivityEventData struct {
	UserID       string
	ActivityType string
	Detail       string
	XPDelta      int
}

// ActivityRecord is a persisted activity entry.
type ActivityRecord struct {
	UserID       string
	ActivityType string
	Detail       string
	XPDelta      int
	Sequence     int64
	Timestamp    time.Time
}

// LLMRequestEventData captures a single LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// CompletionLog provides append and read access to completion events.
type CompletionLog interface {
	AppendCompletion(ctx context.Context, data CompletionEventData) error
	CompletionsByUser(ctx context.Context, userID string, opts QueryOpts) ([]CompletionRecord, error)

	// CompletionXPSince sums XP earned per user from completions at or
	// after the given time. Used for period leaderboards.
	CompletionXPSince(ctx context.Context, from time.Time) (map[string]int, error)
}

// ActivityLog provides append and read access to the capped activity feed.
type ActivityLog interface {
	AppendActivity(ctx context.Context, data ActivityEventData) error
	RecentActivity(ctx context.Context, userID string, limit int) ([]ActivityRecord, error)
}

// LLMEventLog records LLM API calls.
type LLMEventLog interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// LedgerRecord is the per-user XP counter row with its reset watermarks.
type LedgerRecord struct {
	UserID          string
	TotalXP         int
	DailyXP         int
	WeeklyXP        int
	LastDailyReset  string // YYYY-MM-DD
	LastWeeklyReset string // YYYY-MM-DD of the week's Sunday
}

// LedgerTotal is one leaderboard row.
type LedgerTotal struct {
	UserID  string
	TotalXP int
}

// LedgerRepo manages per-user XP ledger rows.
type LedgerRepo interface {
	// Get returns the user's ledger, or nil if none exists yet.
	Get(ctx context.Context, userID string) (*LedgerRecord, error)

	// Save upserts the ledger row for rec.UserID.
	Save(ctx context.Context, rec *LedgerRecord) error

	// Totals returns ledgers ordered by total XP descending.
	Totals(ctx context.Context, limit int) ([]LedgerTotal, error)
}

// ProfileRecord is a registered user.
type ProfileRecord struct {
	UserID       string
	Username     string
	DisplayName  string
	PasswordHash string
	Skills       []string
	CreatedAt    time.Time
	LastSeen     time.Time
}

// ProfileRepo manages user profiles.
type ProfileRepo interface {
	Create(ctx context.Context, rec *ProfileRecord) error
	ByUsername(ctx context.Context, username string) (*ProfileRecord, error)
	ByID(ctx context.Context, userID string) (*ProfileRecord, error)
	UpdateSkills(ctx context.Context, userID string, skills []string) error
	TouchLastSeen(ctx context.Context, userID string) error
	All(ctx context.Context) ([]ProfileRecord, error)
}

// DiscussionRecord is a forum thread.
type DiscussionRecord struct {
	DiscussionID string
	UserID       string
	Title        string
	Body         string
	SkillTag     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MessageEventData captures a new chat message.
type MessageEventData struct {
	MessageID    string
	DiscussionID string
	UserID       string
	Body         string
}

// MessageRecord is a persisted chat message.
type MessageRecord struct {
	MessageID    string
	DiscussionID string
	UserID       string
	Body         string
	Sequence     int64
	Timestamp    time.Time
}

// Vote target types.
const (
	VoteTargetDiscussion = "discussion"
	VoteTargetMessage    = "message"
)

// DiscussionRepo manages threads, their messages, and votes.
type DiscussionRepo interface {
	CreateDiscussion(ctx context.Context, rec *DiscussionRecord) error
	GetDiscussion(ctx context.Context, discussionID string) (*DiscussionRecord, error)
	ListDiscussions(ctx context.Context, skillTag string, limit int) ([]DiscussionRecord, error)

	AppendMessage(ctx context.Context, data MessageEventData) (*MessageRecord, error)

	// MessagesAfter returns messages in a thread with sequence > after,
	// oldest first. Clients poll this instead of refetching the thread.
	MessagesAfter(ctx context.Context, discussionID string, after int64, limit int) ([]MessageRecord, error)

	// SetVote records or replaces the user's vote on a target.
	SetVote(ctx context.Context, userID, targetType, targetID string, value int) error

	// VoteScore returns the net vote value for a target.
	VoteScore(ctx context.Context, targetType, targetID string) (int, error)

	// KarmaForUser sums votes received on everything the user authored.
	KarmaForUser(ctx context.Context, userID string) (int, error)
}

// CollabSessionRecord is a collaborative editor room.
type CollabSessionRecord struct {
	SessionID  string
	HostUserID string
	Title      string
	Language   string
	RelayURL   string
	Active     bool
	CreatedAt  time.Time
}

// CollabParticipantRecord is a user's membership in a room.
type CollabParticipantRecord struct {
	SessionID string
	UserID    string
	JoinedAt  time.Time
	LeftAt    *time.Time
}

// CollabRepo manages collab session bookkeeping.
type CollabRepo interface {
	CreateSession(ctx context.Context, rec *CollabSessionRecord) error
	EndSession(ctx context.Context, sessionID string) error
	SetRelayURL(ctx context.Context, sessionID, relayURL string) error
	Join(ctx context.Context, sessionID, userID string) error
	Leave(ctx context.Context, sessionID, userID string) error
	ActiveSessions(ctx context.Context) ([]CollabSessionRecord, error)
	Participants(ctx context.Context, sessionID string) ([]CollabParticipantRecord, error)
}
