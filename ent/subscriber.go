// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/govwatcher/govwatcher/ent/subscriber"
)

// Subscriber is the model entity for the Subscriber schema.
type Subscriber struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Delivery address, opaque to the pipeline
	Address string `json:"address,omitempty"`
	// Watched chain IDs; non-empty for active subscribers
	Chains []string `json:"chains,omitempty"`
	// RiskTolerance holds the value of the "risk_tolerance" field.
	RiskTolerance subscriber.RiskTolerance `json:"risk_tolerance,omitempty"`
	// Criterion name to weight; weights sum to 1.0
	CriteriaWeights map[string]float64 `json:"criteria_weights,omitempty"`
	// PolicyBlurbs holds the value of the "policy_blurbs" field.
	PolicyBlurbs []string `json:"policy_blurbs,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// ActiveUntil holds the value of the "active_until" field.
	ActiveUntil time.Time `json:"active_until,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Subscriber) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subscriber.FieldChains, subscriber.FieldCriteriaWeights, subscriber.FieldPolicyBlurbs:
			values[i] = new([]byte)
		case subscriber.FieldActive:
			values[i] = new(sql.NullBool)
		case subscriber.FieldID, subscriber.FieldAddress, subscriber.FieldRiskTolerance:
			values[i] = new(sql.NullString)
		case subscriber.FieldActiveUntil, subscriber.FieldCreatedAt, subscriber.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Subscriber fields.
func (_m *Subscriber) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subscriber.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case subscriber.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case subscriber.FieldChains:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chains", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Chains); err != nil {
					return fmt.Errorf("unmarshal field chains: %w", err)
				}
			}
		case subscriber.FieldRiskTolerance:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_tolerance", values[i])
			} else if value.Valid {
				_m.RiskTolerance = subscriber.RiskTolerance(value.String)
			}
		case subscriber.FieldCriteriaWeights:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field criteria_weights", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CriteriaWeights); err != nil {
					return fmt.Errorf("unmarshal field criteria_weights: %w", err)
				}
			}
		case subscriber.FieldPolicyBlurbs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field policy_blurbs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PolicyBlurbs); err != nil {
					return fmt.Errorf("unmarshal field policy_blurbs: %w", err)
				}
			}
		case subscriber.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case subscriber.FieldActiveUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field active_until", values[i])
			} else if value.Valid {
				_m.ActiveUntil = value.Time
			}
		case subscriber.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case subscriber.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Subscriber.
// This includes values selected through modifiers, order, etc.
func (_m *Subscriber) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Subscriber.
// Note that you need to call Subscriber.Unwrap() before calling this method if this Subscriber
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Subscriber) Update() *SubscriberUpdateOne {
	return NewSubscriberClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Subscriber entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Subscriber) Unwrap() *Subscriber {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Subscriber is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Subscriber) String() string {
	var builder strings.Builder
	builder.WriteString("Subscriber(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("chains=")
	builder.WriteString(fmt.Sprintf("%v", _m.Chains))
	builder.WriteString(", ")
	builder.WriteString("risk_tolerance=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskTolerance))
	builder.WriteString(", ")
	builder.WriteString("criteria_weights=")
	builder.WriteString(fmt.Sprintf("%v", _m.CriteriaWeights))
	builder.WriteString(", ")
	builder.WriteString("policy_blurbs=")
	builder.WriteString(fmt.Sprintf("%v", _m.PolicyBlurbs))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("active_until=")
	builder.WriteString(_m.ActiveUntil.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Subscribers is a parsable slice of Subscriber.
type Subscribers []*Subscriber
