// Code generated by ent, DO NOT EDIT.

package completionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mkale/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldUserID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// CompletionID applies equality check predicate on the "completion_id" field. It's identical to CompletionIDEQ.
func CompletionID(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldCompletionID, v))
}

// ChallengeName applies equality check predicate on the "challenge_name" field. It's identical to ChallengeNameEQ.
func ChallengeName(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldChallengeName, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldScore, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldDifficulty, v))
}

// XpEarned applies equality check predicate on the "xp_earned" field. It's identical to XpEarnedEQ.
func XpEarned(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldXpEarned, v))
}

// Badge applies equality check predicate on the "badge" field. It's identical to BadgeEQ.
func Badge(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldBadge, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldSequence, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldUserID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// CompletionIDEQ applies the EQ predicate on the "completion_id" field.
func CompletionIDEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldCompletionID, v))
}

// CompletionIDNEQ applies the NEQ predicate on the "completion_id" field.
func CompletionIDNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldCompletionID, v))
}

// CompletionIDIn applies the In predicate on the "completion_id" field.
func CompletionIDIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldCompletionID, vs...))
}

// CompletionIDNotIn applies the NotIn predicate on the "completion_id" field.
func CompletionIDNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldCompletionID, vs...))
}

// CompletionIDGT applies the GT predicate on the "completion_id" field.
func CompletionIDGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldCompletionID, v))
}

// CompletionIDGTE applies the GTE predicate on the "completion_id" field.
func CompletionIDGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldCompletionID, v))
}

// CompletionIDLT applies the LT predicate on the "completion_id" field.
func CompletionIDLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldCompletionID, v))
}

// CompletionIDLTE applies the LTE predicate on the "completion_id" field.
func CompletionIDLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldCompletionID, v))
}

// CompletionIDContains applies the Contains predicate on the "completion_id" field.
func CompletionIDContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldCompletionID, v))
}

// CompletionIDHasPrefix applies the HasPrefix predicate on the "completion_id" field.
func CompletionIDHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldCompletionID, v))
}

// CompletionIDHasSuffix applies the HasSuffix predicate on the "completion_id" field.
func CompletionIDHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldCompletionID, v))
}

// CompletionIDEqualFold applies the EqualFold predicate on the "completion_id" field.
func CompletionIDEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldCompletionID, v))
}

// CompletionIDContainsFold applies the ContainsFold predicate on the "completion_id" field.
func CompletionIDContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldCompletionID, v))
}

// ChallengeNameEQ applies the EQ predicate on the "challenge_name" field.
func ChallengeNameEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldChallengeName, v))
}

// ChallengeNameNEQ applies the NEQ predicate on the "challenge_name" field.
func ChallengeNameNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldChallengeName, v))
}

// ChallengeNameIn applies the In predicate on the "challenge_name" field.
func ChallengeNameIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldChallengeName, vs...))
}

// ChallengeNameNotIn applies the NotIn predicate on the "challenge_name" field.
func ChallengeNameNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldChallengeName, vs...))
}

// ChallengeNameGT applies the GT predicate on the "challenge_name" field.
func ChallengeNameGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldChallengeName, v))
}

// ChallengeNameGTE applies the GTE predicate on the "challenge_name" field.
func ChallengeNameGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldChallengeName, v))
}

// ChallengeNameLT applies the LT predicate on the "challenge_name" field.
func ChallengeNameLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldChallengeName, v))
}

// ChallengeNameLTE applies the LTE predicate on the "challenge_name" field.
func ChallengeNameLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldChallengeName, v))
}

// ChallengeNameContains applies the Contains predicate on the "challenge_name" field.
func ChallengeNameContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldChallengeName, v))
}

// ChallengeNameHasPrefix applies the HasPrefix predicate on the "challenge_name" field.
func ChallengeNameHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldChallengeName, v))
}

// ChallengeNameHasSuffix applies the HasSuffix predicate on the "challenge_name" field.
func ChallengeNameHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldChallengeName, v))
}

// ChallengeNameEqualFold applies the EqualFold predicate on the "challenge_name" field.
func ChallengeNameEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldChallengeName, v))
}

// ChallengeNameContainsFold applies the ContainsFold predicate on the "challenge_name" field.
func ChallengeNameContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldChallengeName, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldScore, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// XpEarnedEQ applies the EQ predicate on the "xp_earned" field.
func XpEarnedEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldXpEarned, v))
}

// XpEarnedNEQ applies the NEQ predicate on the "xp_earned" field.
func XpEarnedNEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldXpEarned, v))
}

// XpEarnedIn applies the In predicate on the "xp_earned" field.
func XpEarnedIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldXpEarned, vs...))
}

// XpEarnedNotIn applies the NotIn predicate on the "xp_earned" field.
func XpEarnedNotIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldXpEarned, vs...))
}

// XpEarnedGT applies the GT predicate on the "xp_earned" field.
func XpEarnedGT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldXpEarned, v))
}

// XpEarnedGTE applies the GTE predicate on the "xp_earned" field.
func XpEarnedGTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldXpEarned, v))
}

// XpEarnedLT applies the LT predicate on the "xp_earned" field.
func XpEarnedLT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldXpEarned, v))
}

// XpEarnedLTE applies the LTE predicate on the "xp_earned" field.
func XpEarnedLTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldXpEarned, v))
}

// BadgeEQ applies the EQ predicate on the "badge" field.
func BadgeEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldBadge, v))
}

// BadgeNEQ applies the NEQ predicate on the "badge" field.
func BadgeNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldBadge, v))
}

// BadgeIn applies the In predicate on the "badge" field.
func BadgeIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldBadge, vs...))
}

// BadgeNotIn applies the NotIn predicate on the "badge" field.
func BadgeNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldBadge, vs...))
}

// BadgeGT applies the GT predicate on the "badge" field.
func BadgeGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldBadge, v))
}

// BadgeGTE applies the GTE predicate on the "badge" field.
func BadgeGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldBadge, v))
}

// BadgeLT applies the LT predicate on the "badge" field.
func BadgeLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldBadge, v))
}

// BadgeLTE applies the LTE predicate on the "badge" field.
func BadgeLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldBadge, v))
}

// BadgeContains applies the Contains predicate on the "badge" field.
func BadgeContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldBadge, v))
}

// BadgeHasPrefix applies the HasPrefix predicate on the "badge" field.
func BadgeHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldBadge, v))
}

// BadgeHasSuffix applies the HasSuffix predicate on the "badge" field.
func BadgeHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldBadge, v))
}

// BadgeIsNil applies the IsNil predicate on the "badge" field.
func BadgeIsNil() predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIsNull(FieldBadge))
}

// BadgeNotNil applies the NotNil predicate on the "badge" field.
func BadgeNotNil() predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotNull(FieldBadge))
}

// BadgeEqualFold applies the EqualFold predicate on the "badge" field.
func BadgeEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldBadge, v))
}

// BadgeContainsFold applies the ContainsFold predicate on the "badge" field.
func BadgeContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldBadge, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.NotPredicates(p))
}
