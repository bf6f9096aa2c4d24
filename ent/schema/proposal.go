package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Proposal holds the schema definition for the Proposal entity.
// One row per governance proposal per chain; rows are created on first
// observation and updated on status changes, never deleted.
type Proposal struct {
	ent.Schema
}

// Fields of the Proposal.
func (Proposal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("Composite key <chain_id>/<proposal_id>"),
		field.String("chain_id"),
		field.Int64("proposal_id").
			NonNegative(),
		field.String("title"),
		field.Text("description"),
		field.Enum("status").
			Values("deposit", "voting", "passed", "rejected", "failed"),
		field.String("proposal_type").
			Optional().
			Comment("Proposal content @type tag, e.g. ParameterChangeProposal"),
		field.String("proposer").
			Optional(),
		field.Time("submit_time").
			Optional().
			Nillable(),
		field.Time("voting_start").
			Optional().
			Nillable(),
		field.Time("voting_end").
			Optional().
			Nillable(),
		field.Time("first_seen_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Proposal.
func (Proposal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chain_id", "proposal_id").
			Unique(),
		index.Fields("chain_id", "status"),
	}
}
