// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mkale/skillforge/ent/activityevent"
)

// ActivityEvent is the model entity for the ActivityEvent schema.
type ActivityEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// Profile the event belongs to; empty for unscoped events
	UserID string `json:"user_id,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// challenge, discussion, collab, login
	ActivityType string `json:"activity_type,omitempty"`
	// Detail holds the value of the "detail" field.
	Detail string `json:"detail,omitempty"`
	// XpDelta holds the value of the "xp_delta" field.
	XpDelta      int `json:"xp_delta,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActivityEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case activityevent.FieldID, activityevent.FieldSequence, activityevent.FieldXpDelta:
			values[i] = new(sql.NullInt64)
		case activityevent.FieldUserID, activityevent.FieldActivityType, activityevent.FieldDetail:
			values[i] = new(sql.NullString)
		case activityevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActivityEvent fields.
func (_m *ActivityEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case activityevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case activityevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case activityevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case activityevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case activityevent.FieldActivityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_type", values[i])
			} else if value.Valid {
				_m.ActivityType = value.String
			}
		case activityevent.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		case activityevent.FieldXpDelta:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_delta", values[i])
			} else if value.Valid {
				_m.XpDelta = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActivityEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ActivityEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ActivityEvent.
// Note that you need to call ActivityEvent.Unwrap() before calling this method if this ActivityEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActivityEvent) Update() *ActivityEventUpdateOne {
	return NewActivityEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActivityEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActivityEvent) Unwrap() *ActivityEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActivityEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActivityEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ActivityEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("activity_type=")
	builder.WriteString(_m.ActivityType)
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(_m.Detail)
	builder.WriteString(", ")
	builder.WriteString("xp_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpDelta))
	builder.WriteByte(')')
	return builder.String()
}

// ActivityEvents is a parsable slice of ActivityEvent.
type ActivityEvents []*ActivityEvent
