// Code generated by ent, DO NOT EDIT.

package discussion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mkale/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldID, id))
}

// DiscussionID applies equality check predicate on the "discussion_id" field. It's identical to DiscussionIDEQ.
func DiscussionID(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldDiscussionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldUserID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldTitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldBody, v))
}

// SkillTag applies equality check predicate on the "skill_tag" field. It's identical to SkillTagEQ.
func SkillTag(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldSkillTag, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldUpdatedAt, v))
}

// DiscussionIDEQ applies the EQ predicate on the "discussion_id" field.
func DiscussionIDEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldDiscussionID, v))
}

// DiscussionIDNEQ applies the NEQ predicate on the "discussion_id" field.
func DiscussionIDNEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldDiscussionID, v))
}

// DiscussionIDIn applies the In predicate on the "discussion_id" field.
func DiscussionIDIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldDiscussionID, vs...))
}

// DiscussionIDNotIn applies the NotIn predicate on the "discussion_id" field.
func DiscussionIDNotIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldDiscussionID, vs...))
}

// DiscussionIDGT applies the GT predicate on the "discussion_id" field.
func DiscussionIDGT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldDiscussionID, v))
}

// DiscussionIDGTE applies the GTE predicate on the "discussion_id" field.
func DiscussionIDGTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldDiscussionID, v))
}

// DiscussionIDLT applies the LT predicate on the "discussion_id" field.
func DiscussionIDLT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldDiscussionID, v))
}

// DiscussionIDLTE applies the LTE predicate on the "discussion_id" field.
func DiscussionIDLTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldDiscussionID, v))
}

// DiscussionIDContains applies the Contains predicate on the "discussion_id" field.
func DiscussionIDContains(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContains(FieldDiscussionID, v))
}

// DiscussionIDHasPrefix applies the HasPrefix predicate on the "discussion_id" field.
func DiscussionIDHasPrefix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasPrefix(FieldDiscussionID, v))
}

// DiscussionIDHasSuffix applies the HasSuffix predicate on the "discussion_id" field.
func DiscussionIDHasSuffix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasSuffix(FieldDiscussionID, v))
}

// DiscussionIDEqualFold applies the EqualFold predicate on the "discussion_id" field.
func DiscussionIDEqualFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldDiscussionID, v))
}

// DiscussionIDContainsFold applies the ContainsFold predicate on the "discussion_id" field.
func DiscussionIDContainsFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldDiscussionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldUserID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldTitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldBody, v))
}

// SkillTagEQ applies the EQ predicate on the "skill_tag" field.
func SkillTagEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldSkillTag, v))
}

// SkillTagNEQ applies the NEQ predicate on the "skill_tag" field.
func SkillTagNEQ(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldSkillTag, v))
}

// SkillTagIn applies the In predicate on the "skill_tag" field.
func SkillTagIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldSkillTag, vs...))
}

// SkillTagNotIn applies the NotIn predicate on the "skill_tag" field.
func SkillTagNotIn(vs ...string) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldSkillTag, vs...))
}

// SkillTagGT applies the GT predicate on the "skill_tag" field.
func SkillTagGT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldSkillTag, v))
}

// SkillTagGTE applies the GTE predicate on the "skill_tag" field.
func SkillTagGTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldSkillTag, v))
}

// SkillTagLT applies the LT predicate on the "skill_tag" field.
func SkillTagLT(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldSkillTag, v))
}

// SkillTagLTE applies the LTE predicate on the "skill_tag" field.
func SkillTagLTE(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldSkillTag, v))
}

// SkillTagContains applies the Contains predicate on the "skill_tag" field.
func SkillTagContains(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContains(FieldSkillTag, v))
}

// SkillTagHasPrefix applies the HasPrefix predicate on the "skill_tag" field.
func SkillTagHasPrefix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasPrefix(FieldSkillTag, v))
}

// SkillTagHasSuffix applies the HasSuffix predicate on the "skill_tag" field.
func SkillTagHasSuffix(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldHasSuffix(FieldSkillTag, v))
}

// SkillTagEqualFold applies the EqualFold predicate on the "skill_tag" field.
func SkillTagEqualFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldEqualFold(FieldSkillTag, v))
}

// SkillTagContainsFold applies the ContainsFold predicate on the "skill_tag" field.
func SkillTagContainsFold(v string) predicate.Discussion {
	return predicate.Discussion(sql.FieldContainsFold(FieldSkillTag, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Discussion {
	return predicate.Discussion(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Discussion) predicate.Discussion {
	return predicate.Discussion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Discussion) predicate.Discussion {
	return predicate.Discussion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Discussion) predicate.Discussion {
	return predicate.Discussion(sql.NotPredicates(p))
}
