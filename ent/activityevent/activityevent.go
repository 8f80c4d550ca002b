// Code generated by ent, DO NOT EDIT.

package activityevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the activityevent type in the database.
	Label = "activity_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldActivityType holds the string denoting the activity_type field in the database.
	FieldActivityType = "activity_type"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldXpDelta holds the string denoting the xp_delta field in the database.
	FieldXpDelta = "xp_delta"
	// Table holds the table name of the activityevent in the database.
	Table = "activity_events"
)

// Columns holds all SQL columns for activityevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldUserID,
	FieldTimestamp,
	FieldActivityType,
	FieldDetail,
	FieldXpDelta,
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
	// ActivityTypeValidator is a validator for the "activity_type" field. It is called by the builders before save.
	ActivityTypeValidator func(string) error
	// DefaultDetail holds the default value on creation for the "detail" field.
	DefaultDetail string
	// DefaultXpDelta holds the default value on creation for the "xp_delta" field.
	DefaultXpDelta int
)

// OrderOption defines the ordering options for the ActivityEvent queries.
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

// ByActivityType orders the results by the activity_type field.
func ByActivityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityType, opts...).ToFunc()
}

// ByDetail orders the results by the detail field.
func ByDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetail, opts...).ToFunc()
}

// ByXpDelta orders the results by the xp_delta field.
func ByXpDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpDelta, opts...).ToFunc()
}
