// Code generated by ent, DO NOT EDIT.

package xpledger

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mkale/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldUserID, v))
}

// TotalXp applies equality check predicate on the "total_xp" field. It's identical to TotalXpEQ.
func TotalXp(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldTotalXp, v))
}

// DailyXp applies equality check predicate on the "daily_xp" field. It's identical to DailyXpEQ.
func DailyXp(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldDailyXp, v))
}

// WeeklyXp applies equality check predicate on the "weekly_xp" field. It's identical to WeeklyXpEQ.
func WeeklyXp(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldWeeklyXp, v))
}

// LastDailyReset applies equality check predicate on the "last_daily_reset" field. It's identical to LastDailyResetEQ.
func LastDailyReset(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldLastDailyReset, v))
}

// LastWeeklyReset applies equality check predicate on the "last_weekly_reset" field. It's identical to LastWeeklyResetEQ.
func LastWeeklyReset(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldLastWeeklyReset, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldContainsFold(FieldUserID, v))
}

// TotalXpEQ applies the EQ predicate on the "total_xp" field.
func TotalXpEQ(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldTotalXp, v))
}

// TotalXpNEQ applies the NEQ predicate on the "total_xp" field.
func TotalXpNEQ(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNEQ(FieldTotalXp, v))
}

// TotalXpIn applies the In predicate on the "total_xp" field.
func TotalXpIn(vs ...int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldIn(FieldTotalXp, vs...))
}

// TotalXpNotIn applies the NotIn predicate on the "total_xp" field.
func TotalXpNotIn(vs ...int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNotIn(FieldTotalXp, vs...))
}

// TotalXpGT applies the GT predicate on the "total_xp" field.
func TotalXpGT(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGT(FieldTotalXp, v))
}

// TotalXpGTE applies the GTE predicate on the "total_xp" field.
func TotalXpGTE(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGTE(FieldTotalXp, v))
}

// TotalXpLT applies the LT predicate on the "total_xp" field.
func TotalXpLT(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLT(FieldTotalXp, v))
}

// TotalXpLTE applies the LTE predicate on the "total_xp" field.
func TotalXpLTE(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLTE(FieldTotalXp, v))
}

// DailyXpEQ applies the EQ predicate on the "daily_xp" field.
func DailyXpEQ(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldDailyXp, v))
}

// DailyXpNEQ applies the NEQ predicate on the "daily_xp" field.
func DailyXpNEQ(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNEQ(FieldDailyXp, v))
}

// DailyXpIn applies the In predicate on the "daily_xp" field.
func DailyXpIn(vs ...int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldIn(FieldDailyXp, vs...))
}

// DailyXpNotIn applies the NotIn predicate on the "daily_xp" field.
func DailyXpNotIn(vs ...int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNotIn(FieldDailyXp, vs...))
}

// DailyXpGT applies the GT predicate on the "daily_xp" field.
func DailyXpGT(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGT(FieldDailyXp, v))
}

// DailyXpGTE applies the GTE predicate on the "daily_xp" field.
func DailyXpGTE(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGTE(FieldDailyXp, v))
}

// DailyXpLT applies the LT predicate on the "daily_xp" field.
func DailyXpLT(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLT(FieldDailyXp, v))
}

// DailyXpLTE applies the LTE predicate on the "daily_xp" field.
func DailyXpLTE(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLTE(FieldDailyXp, v))
}

// WeeklyXpEQ applies the EQ predicate on the "weekly_xp" field.
func WeeklyXpEQ(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldWeeklyXp, v))
}

// WeeklyXpNEQ applies the NEQ predicate on the "weekly_xp" field.
func WeeklyXpNEQ(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNEQ(FieldWeeklyXp, v))
}

// WeeklyXpIn applies the In predicate on the "weekly_xp" field.
func WeeklyXpIn(vs ...int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldIn(FieldWeeklyXp, vs...))
}

// WeeklyXpNotIn applies the NotIn predicate on the "weekly_xp" field.
func WeeklyXpNotIn(vs ...int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNotIn(FieldWeeklyXp, vs...))
}

// WeeklyXpGT applies the GT predicate on the "weekly_xp" field.
func WeeklyXpGT(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGT(FieldWeeklyXp, v))
}

// WeeklyXpGTE applies the GTE predicate on the "weekly_xp" field.
func WeeklyXpGTE(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGTE(FieldWeeklyXp, v))
}

// WeeklyXpLT applies the LT predicate on the "weekly_xp" field.
func WeeklyXpLT(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLT(FieldWeeklyXp, v))
}

// WeeklyXpLTE applies the LTE predicate on the "weekly_xp" field.
func WeeklyXpLTE(v int) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLTE(FieldWeeklyXp, v))
}

// LastDailyResetEQ applies the EQ predicate on the "last_daily_reset" field.
func LastDailyResetEQ(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldLastDailyReset, v))
}

// LastDailyResetNEQ applies the NEQ predicate on the "last_daily_reset" field.
func LastDailyResetNEQ(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNEQ(FieldLastDailyReset, v))
}

// LastDailyResetIn applies the In predicate on the "last_daily_reset" field.
func LastDailyResetIn(vs ...string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldIn(FieldLastDailyReset, vs...))
}

// LastDailyResetNotIn applies the NotIn predicate on the "last_daily_reset" field.
func LastDailyResetNotIn(vs ...string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNotIn(FieldLastDailyReset, vs...))
}

// LastDailyResetGT applies the GT predicate on the "last_daily_reset" field.
func LastDailyResetGT(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGT(FieldLastDailyReset, v))
}

// LastDailyResetGTE applies the GTE predicate on the "last_daily_reset" field.
func LastDailyResetGTE(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGTE(FieldLastDailyReset, v))
}

// LastDailyResetLT applies the LT predicate on the "last_daily_reset" field.
func LastDailyResetLT(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLT(FieldLastDailyReset, v))
}

// LastDailyResetLTE applies the LTE predicate on the "last_daily_reset" field.
func LastDailyResetLTE(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLTE(FieldLastDailyReset, v))
}

// LastDailyResetContains applies the Contains predicate on the "last_daily_reset" field.
func LastDailyResetContains(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldContains(FieldLastDailyReset, v))
}

// LastDailyResetHasPrefix applies the HasPrefix predicate on the "last_daily_reset" field.
func LastDailyResetHasPrefix(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldHasPrefix(FieldLastDailyReset, v))
}

// LastDailyResetHasSuffix applies the HasSuffix predicate on the "last_daily_reset" field.
func LastDailyResetHasSuffix(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldHasSuffix(FieldLastDailyReset, v))
}

// LastDailyResetEqualFold applies the EqualFold predicate on the "last_daily_reset" field.
func LastDailyResetEqualFold(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEqualFold(FieldLastDailyReset, v))
}

// LastDailyResetContainsFold applies the ContainsFold predicate on the "last_daily_reset" field.
func LastDailyResetContainsFold(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldContainsFold(FieldLastDailyReset, v))
}

// LastWeeklyResetEQ applies the EQ predicate on the "last_weekly_reset" field.
func LastWeeklyResetEQ(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldLastWeeklyReset, v))
}

// LastWeeklyResetNEQ applies the NEQ predicate on the "last_weekly_reset" field.
func LastWeeklyResetNEQ(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNEQ(FieldLastWeeklyReset, v))
}

// LastWeeklyResetIn applies the In predicate on the "last_weekly_reset" field.
func LastWeeklyResetIn(vs ...string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldIn(FieldLastWeeklyReset, vs...))
}

// LastWeeklyResetNotIn applies the NotIn predicate on the "last_weekly_reset" field.
func LastWeeklyResetNotIn(vs ...string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNotIn(FieldLastWeeklyReset, vs...))
}

// LastWeeklyResetGT applies the GT predicate on the "last_weekly_reset" field.
func LastWeeklyResetGT(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGT(FieldLastWeeklyReset, v))
}

// LastWeeklyResetGTE applies the GTE predicate on the "last_weekly_reset" field.
func LastWeeklyResetGTE(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGTE(FieldLastWeeklyReset, v))
}

// LastWeeklyResetLT applies the LT predicate on the "last_weekly_reset" field.
func LastWeeklyResetLT(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLT(FieldLastWeeklyReset, v))
}

// LastWeeklyResetLTE applies the LTE predicate on the "last_weekly_reset" field.
func LastWeeklyResetLTE(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLTE(FieldLastWeeklyReset, v))
}

// LastWeeklyResetContains applies the Contains predicate on the "last_weekly_reset" field.
func LastWeeklyResetContains(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldContains(FieldLastWeeklyReset, v))
}

// LastWeeklyResetHasPrefix applies the HasPrefix predicate on the "last_weekly_reset" field.
func LastWeeklyResetHasPrefix(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldHasPrefix(FieldLastWeeklyReset, v))
}

// LastWeeklyResetHasSuffix applies the HasSuffix predicate on the "last_weekly_reset" field.
func LastWeeklyResetHasSuffix(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldHasSuffix(FieldLastWeeklyReset, v))
}

// LastWeeklyResetEqualFold applies the EqualFold predicate on the "last_weekly_reset" field.
func LastWeeklyResetEqualFold(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEqualFold(FieldLastWeeklyReset, v))
}

// LastWeeklyResetContainsFold applies the ContainsFold predicate on the "last_weekly_reset" field.
func LastWeeklyResetContainsFold(v string) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldContainsFold(FieldLastWeeklyReset, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.XpLedger {
	return predicate.XpLedger(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.XpLedger) predicate.XpLedger {
	return predicate.XpLedger(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.XpLedger) predicate.XpLedger {
	return predicate.XpLedger(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.XpLedger) predicate.XpLedger {
	return predicate.XpLedger(sql.NotPredicates(p))
}
