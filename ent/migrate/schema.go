// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysesColumns holds the columns for the "analyses" table.
	AnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "fingerprint", Type: field.TypeString, Unique: true},
		{Name: "chain_id", Type: field.TypeString},
		{Name: "proposal_id", Type: field.TypeInt64},
		{Name: "provider", Type: field.TypeString},
		{Name: "recommendation", Type: field.TypeEnum, Enums: []string{"approve", "reject", "abstain"}},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647},
		{Name: "risk_assessment", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
	}
	// AnalysesTable holds the schema information for the "analyses" table.
	AnalysesTable = &schema.Table{
		Name:       "analyses",
		Columns:    AnalysesColumns,
		PrimaryKey: []*schema.Column{AnalysesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysis_fingerprint",
				Unique:  true,
				Columns: []*schema.Column{AnalysesColumns[1]},
			},
			{
				Name:    "analysis_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[10]},
			},
			{
				Name:    "analysis_chain_id_proposal_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysesColumns[2], AnalysesColumns[3]},
			},
		},
	}
	// ChainCursorsColumns holds the columns for the "chain_cursors" table.
	ChainCursorsColumns = []*schema.Column{
		{Name: "chain_id", Type: field.TypeString, Unique: true},
		{Name: "highest_seen", Type: field.TypeInt64, Default: 0},
		{Name: "tracked", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChainCursorsTable holds the schema information for the "chain_cursors" table.
	ChainCursorsTable = &schema.Table{
		Name:       "chain_cursors",
		Columns:    ChainCursorsColumns,
		PrimaryKey: []*schema.Column{ChainCursorsColumns[0]},
	}
	// DeliveryMarksColumns holds the columns for the "delivery_marks" table.
	DeliveryMarksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "chain_id", Type: field.TypeString},
		{Name: "proposal_id", Type: field.TypeInt64},
		{Name: "subscriber_id", Type: field.TypeString},
		{Name: "message_id", Type: field.TypeString, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime},
	}
	// DeliveryMarksTable holds the schema information for the "delivery_marks" table.
	DeliveryMarksTable = &schema.Table{
		Name:       "delivery_marks",
		Columns:    DeliveryMarksColumns,
		PrimaryKey: []*schema.Column{DeliveryMarksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deliverymark_chain_id_proposal_id_subscriber_id",
				Unique:  true,
				Columns: []*schema.Column{DeliveryMarksColumns[1], DeliveryMarksColumns[2], DeliveryMarksColumns[3]},
			},
			{
				Name:    "deliverymark_sent_at",
				Unique:  false,
				Columns: []*schema.Column{DeliveryMarksColumns[5]},
			},
		},
	}
	// ProposalsColumns holds the columns for the "proposals" table.
	ProposalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "chain_id", Type: field.TypeString},
		{Name: "proposal_id", Type: field.TypeInt64},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"deposit", "voting", "passed", "rejected", "failed"}},
		{Name: "proposal_type", Type: field.TypeString, Nullable: true},
		{Name: "proposer", Type: field.TypeString, Nullable: true},
		{Name: "submit_time", Type: field.TypeTime, Nullable: true},
		{Name: "voting_start", Type: field.TypeTime, Nullable: true},
		{Name: "voting_end", Type: field.TypeTime, Nullable: true},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProposalsTable holds the schema information for the "proposals" table.
	ProposalsTable = &schema.Table{
		Name:       "proposals",
		Columns:    ProposalsColumns,
		PrimaryKey: []*schema.Column{ProposalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "proposal_chain_id_proposal_id",
				Unique:  true,
				Columns: []*schema.Column{ProposalsColumns[1], ProposalsColumns[2]},
			},
			{
				Name:    "proposal_chain_id_status",
				Unique:  false,
				Columns: []*schema.Column{ProposalsColumns[1], ProposalsColumns[5]},
			},
		},
	}
	// SubscribersColumns holds the columns for the "subscribers" table.
	SubscribersColumns = []*schema.Column{
		{Name: "subscriber_id", Type: field.TypeString, Unique: true},
		{Name: "address", Type: field.TypeString},
		{Name: "chains", Type: field.TypeJSON},
		{Name: "risk_tolerance", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "criteria_weights", Type: field.TypeJSON, Nullable: true},
		{Name: "policy_blurbs", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "active_until", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SubscribersTable holds the schema information for the "subscribers" table.
	SubscribersTable = &schema.Table{
		Name:       "subscribers",
		Columns:    SubscribersColumns,
		PrimaryKey: []*schema.Column{SubscribersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subscriber_active_active_until",
				Unique:  false,
				Columns: []*schema.Column{SubscribersColumns[6], SubscribersColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysesTable,
		ChainCursorsTable,
		DeliveryMarksTable,
		ProposalsTable,
		SubscribersTable,
	}
)

func init() {
}
