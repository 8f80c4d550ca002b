// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mkale/skillforge/ent/xpledger"
)

// XpLedger is the model entity for the XpLedger schema.
type XpLedger struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Lifetime XP, monotonically non-decreasing
	TotalXp int `json:"total_xp,omitempty"`
	// DailyXp holds the value of the "daily_xp" field.
	DailyXp int `json:"daily_xp,omitempty"`
	// WeeklyXp holds the value of the "weekly_xp" field.
	WeeklyXp int `json:"weekly_xp,omitempty"`
	// Calendar-day watermark, YYYY-MM-DD
	LastDailyReset string `json:"last_daily_reset,omitempty"`
	// Week watermark, YYYY-MM-DD of the week's Sunday
	LastWeeklyReset string `json:"last_weekly_reset,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*XpLedger) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case xpledger.FieldID, xpledger.FieldTotalXp, xpledger.FieldDailyXp, xpledger.FieldWeeklyXp:
			values[i] = new(sql.NullInt64)
		case xpledger.FieldUserID, xpledger.FieldLastDailyReset, xpledger.FieldLastWeeklyReset:
			values[i] = new(sql.NullString)
		case xpledger.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the XpLedger fields.
func (_m *XpLedger) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case xpledger.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case xpledger.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case xpledger.FieldTotalXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_xp", values[i])
			} else if value.Valid {
				_m.TotalXp = int(value.Int64)
			}
		case xpledger.FieldDailyXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_xp", values[i])
			} else if value.Valid {
				_m.DailyXp = int(value.Int64)
			}
		case xpledger.FieldWeeklyXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field weekly_xp", values[i])
			} else if value.Valid {
				_m.WeeklyXp = int(value.Int64)
			}
		case xpledger.FieldLastDailyReset:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_daily_reset", values[i])
			} else if value.Valid {
				_m.LastDailyReset = value.String
			}
		case xpledger.FieldLastWeeklyReset:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_weekly_reset", values[i])
			} else if value.Valid {
				_m.LastWeeklyReset = value.String
			}
		case xpledger.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the XpLedger.
// This includes values selected through modifiers, order, etc.
func (_m *XpLedger) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this XpLedger.
// Note that you need to call XpLedger.Unwrap() before calling this method if this XpLedger
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *XpLedger) Update() *XpLedgerUpdateOne {
	return NewXpLedgerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the XpLedger entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *XpLedger) Unwrap() *XpLedger {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: XpLedger is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *XpLedger) String() string {
	var builder strings.Builder
	builder.WriteString("XpLedger(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("total_xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalXp))
	builder.WriteString(", ")
	builder.WriteString("daily_xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyXp))
	builder.WriteString(", ")
	builder.WriteString("weekly_xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeeklyXp))
	builder.WriteString(", ")
	builder.WriteString("last_daily_reset=")
	builder.WriteString(_m.LastDailyReset)
	builder.WriteString(", ")
	builder.WriteString("last_weekly_reset=")
	builder.WriteString(_m.LastWeeklyReset)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// XpLedgers is a parsable slice of XpLedger.
type XpLedgers []*XpLedger
