package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Discussion is a forum thread.
type Discussion struct {
	ent.Schema
}

func (Discussion) Fields() []ent.Field {
	return []ent.Field{
		field.String("discussion_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned at creation"),
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Author"),
		field.String("title").
			NotEmpty(),
		field.String("body").
			Default(""),
		field.String("skill_tag").
			Default("").
			Comment("Optional skill the thread is about"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Discussion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("skill_tag"),
		index.Fields("created_at"),
	}
}
