// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mkale/skillforge/ent/completionevent"
)

// CompletionEvent is the model entity for the CompletionEvent schema.
type CompletionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// Profile the event belongs to; empty for unscoped events
	UserID string `json:"user_id,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID assigned at creation
	CompletionID string `json:"completion_id,omitempty"`
	// ChallengeName holds the value of the "challenge_name" field.
	ChallengeName string `json:"challenge_name,omitempty"`
	// Quiz score as an integer percentage
	Score int `json:"score,omitempty"`
	// easy, medium, hard, or expert
	Difficulty string `json:"difficulty,omitempty"`
	// Skills the challenge covered
	Skills []string `json:"skills,omitempty"`
	// XpEarned holds the value of the "xp_earned" field.
	XpEarned int `json:"xp_earned,omitempty"`
	// Badge earned with this completion, if any
	Badge        string `json:"badge,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompletionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case completionevent.FieldSkills:
			values[i] = new([]byte)
		case completionevent.FieldID, completionevent.FieldSequence, completionevent.FieldScore, completionevent.FieldXpEarned:
			values[i] = new(sql.NullInt64)
		case completionevent.FieldUserID, completionevent.FieldCompletionID, completionevent.FieldChallengeName, completionevent.FieldDifficulty, completionevent.FieldBadge:
			values[i] = new(sql.NullString)
		case completionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompletionEvent fields.
func (_m *CompletionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case completionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case completionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case completionevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case completionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case completionevent.FieldCompletionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field completion_id", values[i])
			} else if value.Valid {
				_m.CompletionID = value.String
			}
		case completionevent.FieldChallengeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field challenge_name", values[i])
			} else if value.Valid {
				_m.ChallengeName = value.String
			}
		case completionevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case completionevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case completionevent.FieldSkills:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skills", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Skills); err != nil {
					return fmt.Errorf("unmarshal field skills: %w", err)
				}
			}
		case completionevent.FieldXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_earned", values[i])
			} else if value.Valid {
				_m.XpEarned = int(value.Int64)
			}
		case completionevent.FieldBadge:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field badge", values[i])
			} else if value.Valid {
				_m.Badge = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CompletionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CompletionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CompletionEvent.
// Note that you need to call CompletionEvent.Unwrap() before calling this method if this CompletionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompletionEvent) Update() *CompletionEventUpdateOne {
	return NewCompletionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompletionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompletionEvent) Unwrap() *CompletionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompletionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompletionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CompletionEvent(")
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
	builder.WriteString("completion_id=")
	builder.WriteString(_m.CompletionID)
	builder.WriteString(", ")
	builder.WriteString("challenge_name=")
	builder.WriteString(_m.ChallengeName)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skills))
	builder.WriteString(", ")
	builder.WriteString("xp_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpEarned))
	builder.WriteString(", ")
	builder.WriteString("badge=")
	builder.WriteString(_m.Badge)
	builder.WriteByte(')')
	return builder.String()
}

// CompletionEvents is a parsable slice of CompletionEvent.
type CompletionEvents []*CompletionEvent
