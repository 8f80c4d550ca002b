package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records one finished quiz challenge. Completions are
// append-only: they are never mutated or deleted after creation.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("completion_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned at creation"),
		field.String("challenge_name").
			NotEmpty(),
		field.Int("score").
			Min(0).
			Max(100).
			Comment("Quiz score as an integer percentage"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, hard, or expert"),
		field.JSON("skills", []string{}).
			Comment("Skills the challenge covered"),
		field.Int("xp_earned").
			Min(0),
		field.String("badge").
			Optional().
			Comment("Badge earned with this completion, if any"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("difficulty"),
	}
}
