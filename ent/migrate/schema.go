// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityEventsColumns holds the columns for the "activity_events" table.
	ActivityEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "activity_type", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Default: ""},
		{Name: "xp_delta", Type: field.TypeInt, Default: 0},
	}
	// ActivityEventsTable holds the schema information for the "activity_events" table.
	ActivityEventsTable = &schema.Table{
		Name:       "activity_events",
		Columns:    ActivityEventsColumns,
		PrimaryKey: []*schema.Column{ActivityEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[1]},
			},
			{
				Name:    "activityevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[2]},
			},
			{
				Name:    "activityevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[3]},
			},
			{
				Name:    "activityevent_activity_type",
				Unique:  false,
				Columns: []*schema.Column{ActivityEventsColumns[4]},
			},
		},
	}
	// CollabParticipantsColumns holds the columns for the "collab_participants" table.
	CollabParticipantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "joined_at", Type: field.TypeTime},
		{Name: "left_at", Type: field.TypeTime, Nullable: true},
	}
	// CollabParticipantsTable holds the schema information for the "collab_participants" table.
	CollabParticipantsTable = &schema.Table{
		Name:       "collab_participants",
		Columns:    CollabParticipantsColumns,
		PrimaryKey: []*schema.Column{CollabParticipantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "collabparticipant_session_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{CollabParticipantsColumns[1], CollabParticipantsColumns[2]},
			},
			{
				Name:    "collabparticipant_user_id",
				Unique:  false,
				Columns: []*schema.Column{CollabParticipantsColumns[2]},
			},
		},
	}
	// CollabSessionsColumns holds the columns for the "collab_sessions" table.
	CollabSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "host_user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Default: "plaintext"},
		{Name: "relay_url", Type: field.TypeString, Default: ""},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CollabSessionsTable holds the schema information for the "collab_sessions" table.
	CollabSessionsTable = &schema.Table{
		Name:       "collab_sessions",
		Columns:    CollabSessionsColumns,
		PrimaryKey: []*schema.Column{CollabSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "collabsession_host_user_id",
				Unique:  false,
				Columns: []*schema.Column{CollabSessionsColumns[2]},
			},
			{
				Name:    "collabsession_active",
				Unique:  false,
				Columns: []*schema.Column{CollabSessionsColumns[6]},
			},
		},
	}
	// CompletionEventsColumns holds the columns for the "completion_events" table.
	CompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "completion_id", Type: field.TypeString, Unique: true},
		{Name: "challenge_name", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "skills", Type: field.TypeJSON},
		{Name: "xp_earned", Type: field.TypeInt},
		{Name: "badge", Type: field.TypeString, Nullable: true},
	}
	// CompletionEventsTable holds the schema information for the "completion_events" table.
	CompletionEventsTable = &schema.Table{
		Name:       "completion_events",
		Columns:    CompletionEventsColumns,
		PrimaryKey: []*schema.Column{CompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[1]},
			},
			{
				Name:    "completionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[2]},
			},
			{
				Name:    "completionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[3]},
			},
			{
				Name:    "completionevent_difficulty",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[7]},
			},
		},
	}
	// DiscussionsColumns holds the columns for the "discussions" table.
	DiscussionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "discussion_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Default: ""},
		{Name: "skill_tag", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DiscussionsTable holds the schema information for the "discussions" table.
	DiscussionsTable = &schema.Table{
		Name:       "discussions",
		Columns:    DiscussionsColumns,
		PrimaryKey: []*schema.Column{DiscussionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "discussion_user_id",
				Unique:  false,
				Columns: []*schema.Column{DiscussionsColumns[2]},
			},
			{
				Name:    "discussion_skill_tag",
				Unique:  false,
				Columns: []*schema.Column{DiscussionsColumns[5]},
			},
			{
				Name:    "discussion_created_at",
				Unique:  false,
				Columns: []*schema.Column{DiscussionsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[6]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// MessageEventsColumns holds the columns for the "message_events" table.
	MessageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "discussion_id", Type: field.TypeString},
		{Name: "body", Type: field.TypeString},
	}
	// MessageEventsTable holds the schema information for the "message_events" table.
	MessageEventsTable = &schema.Table{
		Name:       "message_events",
		Columns:    MessageEventsColumns,
		PrimaryKey: []*schema.Column{MessageEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "messageevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[1]},
			},
			{
				Name:    "messageevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[2]},
			},
			{
				Name:    "messageevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[3]},
			},
			{
				Name:    "messageevent_discussion_id",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[5]},
			},
			{
				Name:    "messageevent_discussion_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[5], MessageEventsColumns[1]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Default: ""},
		{Name: "password_hash", Type: field.TypeString, Default: ""},
		{Name: "skills", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_username",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[2]},
			},
		},
	}
	// VotesColumns holds the columns for the "votes" table.
	VotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "target_type", Type: field.TypeString},
		{Name: "target_id", Type: field.TypeString},
		{Name: "value", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VotesTable holds the schema information for the "votes" table.
	VotesTable = &schema.Table{
		Name:       "votes",
		Columns:    VotesColumns,
		PrimaryKey: []*schema.Column{VotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vote_user_id_target_type_target_id",
				Unique:  true,
				Columns: []*schema.Column{VotesColumns[1], VotesColumns[2], VotesColumns[3]},
			},
			{
				Name:    "vote_target_type_target_id",
				Unique:  false,
				Columns: []*schema.Column{VotesColumns[2], VotesColumns[3]},
			},
		},
	}
	// XpLedgersColumns holds the columns for the "xp_ledgers" table.
	XpLedgersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "total_xp", Type: field.TypeInt, Default: 0},
		{Name: "daily_xp", Type: field.TypeInt, Default: 0},
		{Name: "weekly_xp", Type: field.TypeInt, Default: 0},
		{Name: "last_daily_reset", Type: field.TypeString, Default: ""},
		{Name: "last_weekly_reset", Type: field.TypeString, Default: ""},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// XpLedgersTable holds the schema information for the "xp_ledgers" table.
	XpLedgersTable = &schema.Table{
		Name:       "xp_ledgers",
		Columns:    XpLedgersColumns,
		PrimaryKey: []*schema.Column{XpLedgersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "xpledger_total_xp",
				Unique:  false,
				Columns: []*schema.Column{XpLedgersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityEventsTable,
		CollabParticipantsTable,
		CollabSessionsTable,
		CompletionEventsTable,
		DiscussionsTable,
		LlmRequestEventsTable,
		MessageEventsTable,
		ProfilesTable,
		VotesTable,
		XpLedgersTable,
	}
)

func init() {
}
