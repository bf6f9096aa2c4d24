package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeliveryMark holds the schema definition for the DeliveryMark entity.
// Append-only idempotency record: one row per (chain, proposal, subscriber)
// that has been accepted by the notifier. The unique index is the
// compare-and-insert primitive the delivery gate relies on.
type DeliveryMark struct {
	ent.Schema
}

// Fields of the DeliveryMark.
func (DeliveryMark) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("chain_id").
			Immutable(),
		field.Int64("proposal_id").
			Immutable(),
		field.String("subscriber_id").
			Immutable(),
		field.String("message_id").
			Optional().
			Comment("Opaque provider message identifier"),
		field.Time("sent_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DeliveryMark.
func (DeliveryMark) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chain_id", "proposal_id", "subscriber_id").
			Unique(),
		index.Fields("sent_at"),
	}
}
