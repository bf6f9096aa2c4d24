package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Analysis holds the schema definition for the Analysis entity.
// Content-addressed: exactly one row per fingerprint, replaced wholesale
// when the fingerprint is recomputed after expiry.
type Analysis struct {
	ent.Schema
}

// Fields of the Analysis.
func (Analysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("fingerprint").
			Unique().
			Comment("Content hash of (chain_id, proposal_id, title, status)"),
		field.String("chain_id"),
		field.Int64("proposal_id"),
		field.String("provider").
			Comment("Provider that produced this analysis, or 'fallback'"),
		field.Enum("recommendation").
			Values("approve", "reject", "abstain"),
		field.Float("confidence").
			Min(0).
			Max(1),
		field.Text("reasoning"),
		field.Enum("risk_assessment").
			Values("low", "medium", "high"),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Comment("Structured sub-fields: policy alignment, economic impact, key considerations"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at"),
	}
}

// Indexes of the Analysis.
func (Analysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fingerprint").
			Unique(),
		index.Fields("created_at"),
		index.Fields("chain_id", "proposal_id"),
	}
}
