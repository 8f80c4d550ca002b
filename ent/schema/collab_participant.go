package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CollabParticipant tracks a user's membership in a collab session.
type CollabParticipant struct {
	ent.Schema
}

func (CollabParticipant) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.Time("joined_at").
			Default(time.Now),
		field.Time("left_at").
			Optional().
			Nillable(),
	}
}

func (CollabParticipant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "user_id").
			Unique(),
		index.Fields("user_id"),
	}
}
