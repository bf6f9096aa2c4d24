// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/govwatcher/govwatcher/ent/chaincursor"
)

// ChainCursor is the model entity for the ChainCursor schema.
type ChainCursor struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// HighestSeen holds the value of the "highest_seen" field.
	HighestSeen int64 `json:"highest_seen,omitempty"`
	// Non-terminal proposal IDs still re-polled for status changes
	Tracked []int64 `json:"tracked,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChainCursor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chaincursor.FieldTracked:
			values[i] = new([]byte)
		case chaincursor.FieldHighestSeen:
			values[i] = new(sql.NullInt64)
		case chaincursor.FieldID:
			values[i] = new(sql.NullString)
		case chaincursor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChainCursor fields.
func (_m *ChainCursor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chaincursor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case chaincursor.FieldHighestSeen:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field highest_seen", values[i])
			} else if value.Valid {
				_m.HighestSeen = value.Int64
			}
		case chaincursor.FieldTracked:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tracked", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tracked); err != nil {
					return fmt.Errorf("unmarshal field tracked: %w", err)
				}
			}
		case chaincursor.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ChainCursor.
// This includes values selected through modifiers, order, etc.
func (_m *ChainCursor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChainCursor.
// Note that you need to call ChainCursor.Unwrap() before calling this method if this ChainCursor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChainCursor) Update() *ChainCursorUpdateOne {
	return NewChainCursorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChainCursor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChainCursor) Unwrap() *ChainCursor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChainCursor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChainCursor) String() string {
	var builder strings.Builder
	builder.WriteString("ChainCursor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("highest_seen=")
	builder.WriteString(fmt.Sprintf("%v", _m.HighestSeen))
	builder.WriteString(", ")
	builder.WriteString("tracked=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tracked))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChainCursors is a parsable slice of ChainCursor.
type ChainCursors []*ChainCursor
