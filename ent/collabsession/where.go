// Code generated by ent, DO NOT EDIT.

package collabsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mkale/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldSessionID, v))
}

// HostUserID applies equality check predicate on the "host_user_id" field. It's identical to HostUserIDEQ.
func HostUserID(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldHostUserID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldTitle, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldLanguage, v))
}

// RelayURL applies equality check predicate on the "relay_url" field. It's identical to RelayURLEQ.
func RelayURL(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldRelayURL, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldContainsFold(FieldSessionID, v))
}

// HostUserIDEQ applies the EQ predicate on the "host_user_id" field.
func HostUserIDEQ(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldHostUserID, v))
}

// HostUserIDNEQ applies the NEQ predicate on the "host_user_id" field.
func HostUserIDNEQ(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNEQ(FieldHostUserID, v))
}

// HostUserIDIn applies the In predicate on the "host_user_id" field.
func HostUserIDIn(vs ...string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldIn(FieldHostUserID, vs...))
}

// HostUserIDNotIn applies the NotIn predicate on the "host_user_id" field.
func HostUserIDNotIn(vs ...string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNotIn(FieldHostUserID, vs...))
}

// HostUserIDGT applies the GT predicate on the "host_user_id" field.
func HostUserIDGT(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldGT(FieldHostUserID, v))
}

// HostUserIDGTE applies the GTE predicate on the "host_user_id" field.
func HostUserIDGTE(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldGTE(FieldHostUserID, v))
}

// HostUserIDLT applies the LT predicate on the "host_user_id" field.
func HostUserIDLT(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldLT(FieldHostUserID, v))
}

// HostUserIDLTE applies the LTE predicate on the "host_user_id" field.
func HostUserIDLTE(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldLTE(FieldHostUserID, v))
}

// HostUserIDContains applies the Contains predicate on the "host_user_id" field.
func HostUserIDContains(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldContains(FieldHostUserID, v))
}

// HostUserIDHasPrefix applies the HasPrefix predicate on the "host_user_id" field.
func HostUserIDHasPrefix(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldHasPrefix(FieldHostUserID, v))
}

// HostUserIDHasSuffix applies the HasSuffix predicate on the "host_user_id" field.
func HostUserIDHasSuffix(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldHasSuffix(FieldHostUserID, v))
}

// HostUserIDEqualFold applies the EqualFold predicate on the "host_user_id" field.
func HostUserIDEqualFold(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEqualFold(FieldHostUserID, v))
}

// HostUserIDContainsFold applies the ContainsFold predicate on the "host_user_id" field.
func HostUserIDContainsFold(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldContainsFold(FieldHostUserID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldContainsFold(FieldTitle, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldContainsFold(FieldLanguage, v))
}

// RelayURLEQ applies the EQ predicate on the "relay_url" field.
func RelayURLEQ(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldRelayURL, v))
}

// RelayURLNEQ applies the NEQ predicate on the "relay_url" field.
func RelayURLNEQ(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNEQ(FieldRelayURL, v))
}

// RelayURLIn applies the In predicate on the "relay_url" field.
func RelayURLIn(vs ...string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldIn(FieldRelayURL, vs...))
}

// RelayURLNotIn applies the NotIn predicate on the "relay_url" field.
func RelayURLNotIn(vs ...string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNotIn(FieldRelayURL, vs...))
}

// RelayURLGT applies the GT predicate on the "relay_url" field.
func RelayURLGT(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldGT(FieldRelayURL, v))
}

// RelayURLGTE applies the GTE predicate on the "relay_url" field.
func RelayURLGTE(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldGTE(FieldRelayURL, v))
}

// RelayURLLT applies the LT predicate on the "relay_url" field.
func RelayURLLT(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldLT(FieldRelayURL, v))
}

// RelayURLLTE applies the LTE predicate on the "relay_url" field.
func RelayURLLTE(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldLTE(FieldRelayURL, v))
}

// RelayURLContains applies the Contains predicate on the "relay_url" field.
func RelayURLContains(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldContains(FieldRelayURL, v))
}

// RelayURLHasPrefix applies the HasPrefix predicate on the "relay_url" field.
func RelayURLHasPrefix(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldHasPrefix(FieldRelayURL, v))
}

// RelayURLHasSuffix applies the HasSuffix predicate on the "relay_url" field.
func RelayURLHasSuffix(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldHasSuffix(FieldRelayURL, v))
}

// RelayURLEqualFold applies the EqualFold predicate on the "relay_url" field.
func RelayURLEqualFold(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEqualFold(FieldRelayURL, v))
}

// RelayURLContainsFold applies the ContainsFold predicate on the "relay_url" field.
func RelayURLContainsFold(v string) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldContainsFold(FieldRelayURL, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CollabSession {
	return predicate.CollabSession(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CollabSession) predicate.CollabSession {
	return predicate.CollabSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CollabSession) predicate.CollabSession {
	return predicate.CollabSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CollabSession) predicate.CollabSession {
	return predicate.CollabSession(sql.NotPredicates(p))
}
