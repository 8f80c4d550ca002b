// Code generated by ent, DO NOT EDIT.

package xpledger

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the xpledger type in the database.
	Label = "xp_ledger"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTotalXp holds the string denoting the total_xp field in the database.
	FieldTotalXp = "total_xp"
	// FieldDailyXp holds the string denoting the daily_xp field in the database.
	FieldDailyXp = "daily_xp"
	// FieldWeeklyXp holds the string denoting the weekly_xp field in the database.
	FieldWeeklyXp = "weekly_xp"
	// FieldLastDailyReset holds the string denoting the last_daily_reset field in the database.
	FieldLastDailyReset = "last_daily_reset"
	// FieldLastWeeklyReset holds the string denoting the last_weekly_reset field in the database.
	FieldLastWeeklyReset = "last_weekly_reset"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the xpledger in the database.
	Table = "xp_ledgers"
)

// Columns holds all SQL columns for xpledger fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTotalXp,
	FieldDailyXp,
	FieldWeeklyXp,
	FieldLastDailyReset,
	FieldLastWeeklyReset,
	FieldUpdatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultTotalXp holds the default value on creation for the "total_xp" field.
	DefaultTotalXp int
	// TotalXpValidator is a validator for the "total_xp" field. It is called by the builders before save.
	TotalXpValidator func(int) error
	// DefaultDailyXp holds the default value on creation for the "daily_xp" field.
	DefaultDailyXp int
	// DailyXpValidator is a validator for the "daily_xp" field. It is called by the builders before save.
	DailyXpValidator func(int) error
	// DefaultWeeklyXp holds the default value on creation for the "weekly_xp" field.
	DefaultWeeklyXp int
	// WeeklyXpValidator is a validator for the "weekly_xp" field. It is called by the builders before save.
	WeeklyXpValidator func(int) error
	// DefaultLastDailyReset holds the default value on creation for the "last_daily_reset" field.
	DefaultLastDailyReset string
	// DefaultLastWeeklyReset holds the default value on creation for the "last_weekly_reset" field.
	DefaultLastWeeklyReset string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the XpLedger queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTotalXp orders the results by the total_xp field.
func ByTotalXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalXp, opts...).ToFunc()
}

// ByDailyXp orders the results by the daily_xp field.
func ByDailyXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyXp, opts...).ToFunc()
}

// ByWeeklyXp orders the results by the weekly_xp field.
func ByWeeklyXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeeklyXp, opts...).ToFunc()
}

// ByLastDailyReset orders the results by the last_daily_reset field.
func ByLastDailyReset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastDailyReset, opts...).ToFunc()
}

// ByLastWeeklyReset orders the results by the last_weekly_reset field.
func ByLastWeeklyReset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastWeeklyReset, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
