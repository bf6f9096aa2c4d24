// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/govwatcher/govwatcher/ent/deliverymark"
)

// DeliveryMark is the model entity for the DeliveryMark schema.
type DeliveryMark struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChainID holds the value of the "chain_id" field.
	ChainID string `json:"chain_id,omitempty"`
	// ProposalID holds the value of the "proposal_id" field.
	ProposalID int64 `json:"proposal_id,omitempty"`
	// SubscriberID holds the value of the "subscriber_id" field.
	SubscriberID string `json:"subscriber_id,omitempty"`
	// Opaque provider message identifier
	MessageID string `json:"message_id,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt       time.Time `json:"sent_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeliveryMark) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deliverymark.FieldProposalID:
			values[i] = new(sql.NullInt64)
		case deliverymark.FieldID, deliverymark.FieldChainID, deliverymark.FieldSubscriberID, deliverymark.FieldMessageID:
			values[i] = new(sql.NullString)
		case deliverymark.FieldSentAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeliveryMark fields.
func (_m *DeliveryMark) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deliverymark.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case deliverymark.FieldChainID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chain_id", values[i])
			} else if value.Valid {
				_m.ChainID = value.String
			}
		case deliverymark.FieldProposalID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_id", values[i])
			} else if value.Valid {
				_m.ProposalID = value.Int64
			}
		case deliverymark.FieldSubscriberID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subscriber_id", values[i])
			} else if value.Valid {
				_m.SubscriberID = value.String
			}
		case deliverymark.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case deliverymark.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeliveryMark.
// This includes values selected through modifiers, order, etc.
func (_m *DeliveryMark) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DeliveryMark.
// Note that you need to call DeliveryMark.Unwrap() before calling this method if this DeliveryMark
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeliveryMark) Update() *DeliveryMarkUpdateOne {
	return NewDeliveryMarkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeliveryMark entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeliveryMark) Unwrap() *DeliveryMark {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeliveryMark is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeliveryMark) String() string {
	var builder strings.Builder
	builder.WriteString("DeliveryMark(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chain_id=")
	builder.WriteString(_m.ChainID)
	builder.WriteString(", ")
	builder.WriteString("proposal_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProposalID))
	builder.WriteString(", ")
	builder.WriteString("subscriber_id=")
	builder.WriteString(_m.SubscriberID)
	builder.WriteString(", ")
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("sent_at=")
	builder.WriteString(_m.SentAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DeliveryMarks is a parsable slice of DeliveryMark.
type DeliveryMarks []*DeliveryMark
