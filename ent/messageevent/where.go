// Code generated by ent, DO NOT EDIT.

package messageevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mkale/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEQ(FieldSequence, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEQ(FieldUserID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEQ(FieldTimestamp, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEQ(FieldMessageID, v))
}

// DiscussionID applies equality check predicate on the "discussion_id" field. It's identical to DiscussionIDEQ.
func DiscussionID(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEQ(FieldDiscussionID, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEQ(FieldBody, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldLTE(FieldSequence, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldContainsFold(FieldUserID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldLTE(FieldTimestamp, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldContainsFold(FieldMessageID, v))
}

// DiscussionIDEQ applies the EQ predicate on the "discussion_id" field.
func DiscussionIDEQ(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEQ(FieldDiscussionID, v))
}

// DiscussionIDNEQ applies the NEQ predicate on the "discussion_id" field.
func DiscussionIDNEQ(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldNEQ(FieldDiscussionID, v))
}

// DiscussionIDIn applies the In predicate on the "discussion_id" field.
func DiscussionIDIn(vs ...string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldIn(FieldDiscussionID, vs...))
}

// DiscussionIDNotIn applies the NotIn predicate on the "discussion_id" field.
func DiscussionIDNotIn(vs ...string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldNotIn(FieldDiscussionID, vs...))
}

// DiscussionIDGT applies the GT predicate on the "discussion_id" field.
func DiscussionIDGT(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldGT(FieldDiscussionID, v))
}

// DiscussionIDGTE applies the GTE predicate on the "discussion_id" field.
func DiscussionIDGTE(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldGTE(FieldDiscussionID, v))
}

// DiscussionIDLT applies the LT predicate on the "discussion_id" field.
func DiscussionIDLT(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldLT(FieldDiscussionID, v))
}

// DiscussionIDLTE applies the LTE predicate on the "discussion_id" field.
func DiscussionIDLTE(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldLTE(FieldDiscussionID, v))
}

// DiscussionIDContains applies the Contains predicate on the "discussion_id" field.
func DiscussionIDContains(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldContains(FieldDiscussionID, v))
}

// DiscussionIDHasPrefix applies the HasPrefix predicate on the "discussion_id" field.
func DiscussionIDHasPrefix(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldHasPrefix(FieldDiscussionID, v))
}

// DiscussionIDHasSuffix applies the HasSuffix predicate on the "discussion_id" field.
func DiscussionIDHasSuffix(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldHasSuffix(FieldDiscussionID, v))
}

// DiscussionIDEqualFold applies the EqualFold predicate on the "discussion_id" field.
func DiscussionIDEqualFold(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEqualFold(FieldDiscussionID, v))
}

// DiscussionIDContainsFold applies the ContainsFold predicate on the "discussion_id" field.
func DiscussionIDContainsFold(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldContainsFold(FieldDiscussionID, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.MessageEvent {
	return predicate.MessageEvent(sql.FieldContainsFold(FieldBody, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MessageEvent) predicate.MessageEvent {
	return predicate.MessageEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MessageEvent) predicate.MessageEvent {
	return predicate.MessageEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MessageEvent) predicate.MessageEvent {
	return predicate.MessageEvent(sql.NotPredicates(p))
}
