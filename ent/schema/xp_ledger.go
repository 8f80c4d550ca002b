package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// XpLedger holds the per-user XP counters. One row per user. The daily and
// weekly counters are gated by watermark strings and reset lazily on read
// when the watermark no longer matches the current day or week.
type XpLedger struct {
	ent.Schema
}

func (XpLedger) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique(),
		field.Int("total_xp").
			Default(0).
			Min(0).
			Comment("Lifetime XP, monotonically non-decreasing"),
		field.Int("daily_xp").
			Default(0).
			Min(0),
		field.Int("weekly_xp").
			Default(0).
			Min(0),
		field.String("last_daily_reset").
			Default("").
			Comment("Calendar-day watermark, YYYY-MM-DD"),
		field.String("last_weekly_reset").
			Default("").
			Comment("Week watermark, YYYY-MM-DD of the week's Sunday"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (XpLedger) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("total_xp"),
	}
}
