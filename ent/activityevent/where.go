// Code generated by ent, DO NOT EDIT.

package activityevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mkale/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldSequence, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldUserID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ActivityType applies equality check predicate on the "activity_type" field. It's identical to ActivityTypeEQ.
func ActivityType(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldActivityType, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldDetail, v))
}

// XpDelta applies equality check predicate on the "xp_delta" field. It's identical to XpDeltaEQ.
func XpDelta(v int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldXpDelta, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldSequence, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContainsFold(FieldUserID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ActivityTypeEQ applies the EQ predicate on the "activity_type" field.
func ActivityTypeEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldActivityType, v))
}

// ActivityTypeNEQ applies the NEQ predicate on the "activity_type" field.
func ActivityTypeNEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldActivityType, v))
}

// ActivityTypeIn applies the In predicate on the "activity_type" field.
func ActivityTypeIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldActivityType, vs...))
}

// ActivityTypeNotIn applies the NotIn predicate on the "activity_type" field.
func ActivityTypeNotIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldActivityType, vs...))
}

// ActivityTypeGT applies the GT predicate on the "activity_type" field.
func ActivityTypeGT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldActivityType, v))
}

// ActivityTypeGTE applies the GTE predicate on the "activity_type" field.
func ActivityTypeGTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldActivityType, v))
}

// ActivityTypeLT applies the LT predicate on the "activity_type" field.
func ActivityTypeLT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldActivityType, v))
}

// ActivityTypeLTE applies the LTE predicate on the "activity_type" field.
func ActivityTypeLTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldActivityType, v))
}

// ActivityTypeContains applies the Contains predicate on the "activity_type" field.
func ActivityTypeContains(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContains(FieldActivityType, v))
}

// ActivityTypeHasPrefix applies the HasPrefix predicate on the "activity_type" field.
func ActivityTypeHasPrefix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasPrefix(FieldActivityType, v))
}

// ActivityTypeHasSuffix applies the HasSuffix predicate on the "activity_type" field.
func ActivityTypeHasSuffix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasSuffix(FieldActivityType, v))
}

// ActivityTypeEqualFold applies the EqualFold predicate on the "activity_type" field.
func ActivityTypeEqualFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEqualFold(FieldActivityType, v))
}

// ActivityTypeContainsFold applies the ContainsFold predicate on the "activity_type" field.
func ActivityTypeContainsFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContainsFold(FieldActivityType, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldContainsFold(FieldDetail, v))
}

// XpDeltaEQ applies the EQ predicate on the "xp_delta" field.
func XpDeltaEQ(v int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldEQ(FieldXpDelta, v))
}

// XpDeltaNEQ applies the NEQ predicate on the "xp_delta" field.
func XpDeltaNEQ(v int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNEQ(FieldXpDelta, v))
}

// XpDeltaIn applies the In predicate on the "xp_delta" field.
func XpDeltaIn(vs ...int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldIn(FieldXpDelta, vs...))
}

// XpDeltaNotIn applies the NotIn predicate on the "xp_delta" field.
func XpDeltaNotIn(vs ...int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldNotIn(FieldXpDelta, vs...))
}

// XpDeltaGT applies the GT predicate on the "xp_delta" field.
func XpDeltaGT(v int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGT(FieldXpDelta, v))
}

// XpDeltaGTE applies the GTE predicate on the "xp_delta" field.
func XpDeltaGTE(v int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldGTE(FieldXpDelta, v))
}

// XpDeltaLT applies the LT predicate on the "xp_delta" field.
func XpDeltaLT(v int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLT(FieldXpDelta, v))
}

// XpDeltaLTE applies the LTE predicate on the "xp_delta" field.
func XpDeltaLTE(v int) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.FieldLTE(FieldXpDelta, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActivityEvent) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActivityEvent) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActivityEvent) predicate.ActivityEvent {
	return predicate.ActivityEvent(sql.NotPredicates(p))
}
