// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/govwatcher/govwatcher/ent/analysis"
	"github.com/govwatcher/govwatcher/ent/chaincursor"
	"github.com/govwatcher/govwatcher/ent/deliverymark"
	"github.com/govwatcher/govwatcher/ent/proposal"
	"github.com/govwatcher/govwatcher/ent/schema"
	"github.com/govwatcher/govwatcher/ent/subscriber"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisFields := schema.Analysis{}.Fields()
	_ = analysisFields
	// analysisDescConfidence is the schema descriptor for confidence field.
	analysisDescConfidence := analysisFields[6].Descriptor()
	// analysis.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	analysis.ConfidenceValidator = func() func(float64) error {
		validators := analysisDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisDescCreatedAt is the schema descriptor for created_at field.
	analysisDescCreatedAt := analysisFields[10].Descriptor()
	// analysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysis.DefaultCreatedAt = analysisDescCreatedAt.Default.(func() time.Time)
	chaincursorFields := schema.ChainCursor{}.Fields()
	_ = chaincursorFields
	// chaincursorDescHighestSeen is the schema descriptor for highest_seen field.
	chaincursorDescHighestSeen := chaincursorFields[1].Descriptor()
	// chaincursor.DefaultHighestSeen holds the default value on creation for the highest_seen field.
	chaincursor.DefaultHighestSeen = chaincursorDescHighestSeen.Default.(int64)
	// chaincursor.HighestSeenValidator is a validator for the "highest_seen" field. It is called by the builders before save.
	chaincursor.HighestSeenValidator = chaincursorDescHighestSeen.Validators[0].(func(int64) error)
	// chaincursorDescUpdatedAt is the schema descriptor for updated_at field.
	chaincursorDescUpdatedAt := chaincursorFields[3].Descriptor()
	// chaincursor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chaincursor.DefaultUpdatedAt = chaincursorDescUpdatedAt.Default.(func() time.Time)
	// chaincursor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chaincursor.UpdateDefaultUpdatedAt = chaincursorDescUpdatedAt.UpdateDefault.(func() time.Time)
	deliverymarkFields := schema.DeliveryMark{}.Fields()
	_ = deliverymarkFields
	// deliverymarkDescSentAt is the schema descriptor for sent_at field.
	deliverymarkDescSentAt := deliverymarkFields[5].Descriptor()
	// deliverymark.DefaultSentAt holds the default value on creation for the sent_at field.
	deliverymark.DefaultSentAt = deliverymarkDescSentAt.Default.(func() time.Time)
	proposalFields := schema.Proposal{}.Fields()
	_ = proposalFields
	// proposalDescProposalID is the schema descriptor for proposal_id field.
	proposalDescProposalID := proposalFields[2].Descriptor()
	// proposal.ProposalIDValidator is a validator for the "proposal_id" field. It is called by the builders before save.
	proposal.ProposalIDValidator = proposalDescProposalID.Validators[0].(func(int64) error)
	// proposalDescFirstSeenAt is the schema descriptor for first_seen_at field.
	proposalDescFirstSeenAt := proposalFields[11].Descriptor()
	// proposal.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	proposal.DefaultFirstSeenAt = proposalDescFirstSeenAt.Default.(func() time.Time)
	// proposalDescUpdatedAt is the schema descriptor for updated_at field.
	proposalDescUpdatedAt := proposalFields[12].Descriptor()
	// proposal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	proposal.DefaultUpdatedAt = proposalDescUpdatedAt.Default.(func() time.Time)
	// proposal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	proposal.UpdateDefaultUpdatedAt = proposalDescUpdatedAt.UpdateDefault.(func() time.Time)
	subscriberFields := schema.Subscriber{}.Fields()
	_ = subscriberFields
	// subscriberDescActive is the schema descriptor for active field.
	subscriberDescActive := subscriberFields[6].Descriptor()
	// subscriber.DefaultActive holds the default value on creation for the active field.
	subscriber.DefaultActive = subscriberDescActive.Default.(bool)
	// subscriberDescCreatedAt is the schema descriptor for created_at field.
	subscriberDescCreatedAt := subscriberFields[8].Descriptor()
	// subscriber.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscriber.DefaultCreatedAt = subscriberDescCreatedAt.Default.(func() time.Time)
	// subscriberDescUpdatedAt is the schema descriptor for updated_at field.
	subscriberDescUpdatedAt := subscriberFields[9].Descriptor()
	// subscriber.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscriber.DefaultUpdatedAt = subscriberDescUpdatedAt.Default.(func() time.Time)
	// subscriber.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscriber.UpdateDefaultUpdatedAt = subscriberDescUpdatedAt.UpdateDefault.(func() time.Time)
}
