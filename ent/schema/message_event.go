package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageEvent is one chat message in a discussion thread. Messages use the
// event mixin so clients can poll for everything after a known sequence
// instead of refetching the whole thread.
type MessageEvent struct {
	ent.Schema
}

func (MessageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MessageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("message_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned at creation"),
		field.String("discussion_id").
			NotEmpty(),
		field.String("body").
			NotEmpty(),
	}
}

func (MessageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("discussion_id"),
		index.Fields("discussion_id", "sequence"),
	}
}
