package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CollabSession is a collaborative editor room. The document sync itself is
// delegated to the CRDT relay; this row only tracks the room's existence.
type CollabSession struct {
	ent.Schema
}

func (CollabSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned at creation"),
		field.String("host_user_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.String("language").
			Default("plaintext"),
		field.String("relay_url").
			Default("").
			Comment("Relay endpoint the room settled on"),
		field.Bool("active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (CollabSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("host_user_id"),
		index.Fields("active"),
	}
}
