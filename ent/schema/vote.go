package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Vote is one user's up or down vote on a discussion or message.
// A user gets at most one vote per target; re-voting replaces the value.
type Vote struct {
	ent.Schema
}

func (Vote) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("target_type").
			NotEmpty().
			Comment("discussion or message"),
		field.String("target_id").
			NotEmpty(),
		field.Int("value").
			Comment("+1 or -1"),
		field.Time("created_at").
			Default(time.Now),
	}
}

func (Vote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "target_type", "target_id").
			Unique(),
		index.Fields("target_type", "target_id"),
	}
}
