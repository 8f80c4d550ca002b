package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is a registered user: the local player for the TUI, or an API
// account when running the server.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID assigned at registration"),
		field.String("username").
			NotEmpty().
			Unique(),
		field.String("display_name").
			Default(""),
		field.String("password_hash").
			Default("").
			Sensitive().
			Comment("bcrypt hash; empty for local-only profiles"),
		field.JSON("skills", []string{}).
			Optional().
			Comment("Skills the user is practicing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen").
			Default(time.Now),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
	}
}
