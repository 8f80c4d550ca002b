package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent is one entry in a user's recent-activity feed. The feed is
// capped: the repo trims each user to the newest 50 entries on append.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("activity_type").
			NotEmpty().
			Comment("challenge, discussion, collab, login"),
		field.String("detail").
			Default(""),
		field.Int("xp_delta").
			Default(0),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("activity_type"),
	}
}
