package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subscriber holds the schema definition for the Subscriber entity.
// Written by the external subscription manager; read-only inside the
// pipeline.
type Subscriber struct {
	ent.Schema
}

// Fields of the Subscriber.
func (Subscriber) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("subscriber_id").
			Unique().
			Immutable(),
		field.String("address").
			Comment("Delivery address, opaque to the pipeline"),
		field.JSON("chains", []string{}).
			Comment("Watched chain IDs; non-empty for active subscribers"),
		field.Enum("risk_tolerance").
			Values("low", "medium", "high").
			Default("medium"),
		field.JSON("criteria_weights", map[string]float64{}).
			Optional().
			Comment("Criterion name to weight; weights sum to 1.0"),
		field.JSON("policy_blurbs", []string{}).
			Optional(),
		field.Bool("active").
			Default(true),
		field.Time("active_until"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Subscriber.
func (Subscriber) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active", "active_until"),
	}
}
