// Code generated by ent, DO NOT EDIT.

package completionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the completionevent type in the database.
	Label = "completion_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldCompletionID holds the string denoting the completion_id field in the database.
	FieldCompletionID = "completion_id"
	// FieldChallengeName holds the string denoting the challenge_name field in the database.
	FieldChallengeName = "challenge_name"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldSkills holds the string denoting the skills field in the database.
	FieldSkills = "skills"
	// FieldXpEarned holds the string denoting the xp_earned field in the database.
	FieldXpEarned = "xp_earned"
	// FieldBadge holds the string denoting the badge field in the database.
	FieldBadge = "badge"
	// Table holds the table name of the completionevent in the database.
	Table = "completion_events"
)

// Columns holds all SQL columns for completionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldUserID,
	FieldTimestamp,
	FieldCompletionID,
	FieldChallengeName,
	FieldScore,
	FieldDifficulty,
	FieldSkills,
	FieldXpEarned,
	FieldBadge,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUserID holds the default value on creation for the "user_id" field.
	DefaultUserID string
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// CompletionIDValidator is a validator for the "completion_id" field. It is called by the builders before save.
	CompletionIDValidator func(string) error
	// ChallengeNameValidator is a validator for the "challenge_name" field. It is called by the builders before save.
	ChallengeNameValidator func(string) error
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(int) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// XpEarnedValidator is a validator for the "xp_earned" field. It is called by the builders before save.
	XpEarnedValidator func(int) error
)

// OrderOption defines the ordering options for the CompletionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByCompletionID orders the results by the completion_id field.
func ByCompletionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionID, opts...).ToFunc()
}

// ByChallengeName orders the results by the challenge_name field.
func ByChallengeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeName, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByXpEarned orders the results by the xp_earned field.
func ByXpEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpEarned, opts...).ToFunc()
}

// ByBadge orders the results by the badge field.
func ByBadge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadge, opts...).ToFunc()
}
