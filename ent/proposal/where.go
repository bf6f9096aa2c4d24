// Code generated by ent, DO NOT EDIT.

package proposal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/govwatcher/govwatcher/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldID, id))
}

// ChainID applies equality check predicate on the "chain_id" field. It's identical to ChainIDEQ.
func ChainID(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldChainID, v))
}

// ProposalID applies equality check predicate on the "proposal_id" field. It's identical to ProposalIDEQ.
func ProposalID(v int64) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProposalID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldDescription, v))
}

// ProposalType applies equality check predicate on the "proposal_type" field. It's identical to ProposalTypeEQ.
func ProposalType(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProposalType, v))
}

// Proposer applies equality check predicate on the "proposer" field. It's identical to ProposerEQ.
func Proposer(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProposer, v))
}

// SubmitTime applies equality check predicate on the "submit_time" field. It's identical to SubmitTimeEQ.
func SubmitTime(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldSubmitTime, v))
}

// VotingStart applies equality check predicate on the "voting_start" field. It's identical to VotingStartEQ.
func VotingStart(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldVotingStart, v))
}

// VotingEnd applies equality check predicate on the "voting_end" field. It's identical to VotingEndEQ.
func VotingEnd(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldVotingEnd, v))
}

// FirstSeenAt applies equality check predicate on the "first_seen_at" field. It's identical to FirstSeenAtEQ.
func FirstSeenAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldFirstSeenAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldUpdatedAt, v))
}

// ChainIDEQ applies the EQ predicate on the "chain_id" field.
func ChainIDEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldChainID, v))
}

// ChainIDNEQ applies the NEQ predicate on the "chain_id" field.
func ChainIDNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldChainID, v))
}

// ChainIDIn applies the In predicate on the "chain_id" field.
func ChainIDIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldChainID, vs...))
}

// ChainIDNotIn applies the NotIn predicate on the "chain_id" field.
func ChainIDNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldChainID, vs...))
}

// ChainIDGT applies the GT predicate on the "chain_id" field.
func ChainIDGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldChainID, v))
}

// ChainIDGTE applies the GTE predicate on the "chain_id" field.
func ChainIDGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldChainID, v))
}

// ChainIDLT applies the LT predicate on the "chain_id" field.
func ChainIDLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldChainID, v))
}

// ChainIDLTE applies the LTE predicate on the "chain_id" field.
func ChainIDLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldChainID, v))
}

// ChainIDContains applies the Contains predicate on the "chain_id" field.
func ChainIDContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldChainID, v))
}

// ChainIDHasPrefix applies the HasPrefix predicate on the "chain_id" field.
func ChainIDHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldChainID, v))
}

// ChainIDHasSuffix applies the HasSuffix predicate on the "chain_id" field.
func ChainIDHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldChainID, v))
}

// ChainIDEqualFold applies the EqualFold predicate on the "chain_id" field.
func ChainIDEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldChainID, v))
}

// ChainIDContainsFold applies the ContainsFold predicate on the "chain_id" field.
func ChainIDContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldChainID, v))
}

// ProposalIDEQ applies the EQ predicate on the "proposal_id" field.
func ProposalIDEQ(v int64) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProposalID, v))
}

// ProposalIDNEQ applies the NEQ predicate on the "proposal_id" field.
func ProposalIDNEQ(v int64) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldProposalID, v))
}

// ProposalIDIn applies the In predicate on the "proposal_id" field.
func ProposalIDIn(vs ...int64) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldProposalID, vs...))
}

// ProposalIDNotIn applies the NotIn predicate on the "proposal_id" field.
func ProposalIDNotIn(vs ...int64) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldProposalID, vs...))
}

// ProposalIDGT applies the GT predicate on the "proposal_id" field.
func ProposalIDGT(v int64) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldProposalID, v))
}

// ProposalIDGTE applies the GTE predicate on the "proposal_id" field.
func ProposalIDGTE(v int64) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldProposalID, v))
}

// ProposalIDLT applies the LT predicate on the "proposal_id" field.
func ProposalIDLT(v int64) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldProposalID, v))
}

// ProposalIDLTE applies the LTE predicate on the "proposal_id" field.
func ProposalIDLTE(v int64) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldProposalID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldStatus, vs...))
}

// ProposalTypeEQ applies the EQ predicate on the "proposal_type" field.
func ProposalTypeEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProposalType, v))
}

// ProposalTypeNEQ applies the NEQ predicate on the "proposal_type" field.
func ProposalTypeNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldProposalType, v))
}

// ProposalTypeIn applies the In predicate on the "proposal_type" field.
func ProposalTypeIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldProposalType, vs...))
}

// ProposalTypeNotIn applies the NotIn predicate on the "proposal_type" field.
func ProposalTypeNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldProposalType, vs...))
}

// ProposalTypeGT applies the GT predicate on the "proposal_type" field.
func ProposalTypeGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldProposalType, v))
}

// ProposalTypeGTE applies the GTE predicate on the "proposal_type" field.
func ProposalTypeGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldProposalType, v))
}

// ProposalTypeLT applies the LT predicate on the "proposal_type" field.
func ProposalTypeLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldProposalType, v))
}

// ProposalTypeLTE applies the LTE predicate on the "proposal_type" field.
func ProposalTypeLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldProposalType, v))
}

// ProposalTypeContains applies the Contains predicate on the "proposal_type" field.
func ProposalTypeContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldProposalType, v))
}

// ProposalTypeHasPrefix applies the HasPrefix predicate on the "proposal_type" field.
func ProposalTypeHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldProposalType, v))
}

// ProposalTypeHasSuffix applies the HasSuffix predicate on the "proposal_type" field.
func ProposalTypeHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldProposalType, v))
}

// ProposalTypeIsNil applies the IsNil predicate on the "proposal_type" field.
func ProposalTypeIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldProposalType))
}

// ProposalTypeNotNil applies the NotNil predicate on the "proposal_type" field.
func ProposalTypeNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldProposalType))
}

// ProposalTypeEqualFold applies the EqualFold predicate on the "proposal_type" field.
func ProposalTypeEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldProposalType, v))
}

// ProposalTypeContainsFold applies the ContainsFold predicate on the "proposal_type" field.
func ProposalTypeContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldProposalType, v))
}

// ProposerEQ applies the EQ predicate on the "proposer" field.
func ProposerEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProposer, v))
}

// ProposerNEQ applies the NEQ predicate on the "proposer" field.
func ProposerNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldProposer, v))
}

// ProposerIn applies the In predicate on the "proposer" field.
func ProposerIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldProposer, vs...))
}

// ProposerNotIn applies the NotIn predicate on the "proposer" field.
func ProposerNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldProposer, vs...))
}

// ProposerGT applies the GT predicate on the "proposer" field.
func ProposerGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldProposer, v))
}

// ProposerGTE applies the GTE predicate on the "proposer" field.
func ProposerGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldProposer, v))
}

// ProposerLT applies the LT predicate on the "proposer" field.
func ProposerLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldProposer, v))
}

// ProposerLTE applies the LTE predicate on the "proposer" field.
func ProposerLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldProposer, v))
}

// ProposerContains applies the Contains predicate on the "proposer" field.
func ProposerContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldProposer, v))
}

// ProposerHasPrefix applies the HasPrefix predicate on the "proposer" field.
func ProposerHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldProposer, v))
}

// ProposerHasSuffix applies the HasSuffix predicate on the "proposer" field.
func ProposerHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldProposer, v))
}

// ProposerIsNil applies the IsNil predicate on the "proposer" field.
func ProposerIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldProposer))
}

// ProposerNotNil applies the NotNil predicate on the "proposer" field.
func ProposerNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldProposer))
}

// ProposerEqualFold applies the EqualFold predicate on the "proposer" field.
func ProposerEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldProposer, v))
}

// ProposerContainsFold applies the ContainsFold predicate on the "proposer" field.
func ProposerContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldProposer, v))
}

// SubmitTimeEQ applies the EQ predicate on the "submit_time" field.
func SubmitTimeEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldSubmitTime, v))
}

// SubmitTimeNEQ applies the NEQ predicate on the "submit_time" field.
func SubmitTimeNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldSubmitTime, v))
}

// SubmitTimeIn applies the In predicate on the "submit_time" field.
func SubmitTimeIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldSubmitTime, vs...))
}

// SubmitTimeNotIn applies the NotIn predicate on the "submit_time" field.
func SubmitTimeNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldSubmitTime, vs...))
}

// SubmitTimeGT applies the GT predicate on the "submit_time" field.
func SubmitTimeGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldSubmitTime, v))
}

// SubmitTimeGTE applies the GTE predicate on the "submit_time" field.
func SubmitTimeGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldSubmitTime, v))
}

// SubmitTimeLT applies the LT predicate on the "submit_time" field.
func SubmitTimeLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldSubmitTime, v))
}

// SubmitTimeLTE applies the LTE predicate on the "submit_time" field.
func SubmitTimeLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldSubmitTime, v))
}

// SubmitTimeIsNil applies the IsNil predicate on the "submit_time" field.
func SubmitTimeIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldSubmitTime))
}

// SubmitTimeNotNil applies the NotNil predicate on the "submit_time" field.
func SubmitTimeNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldSubmitTime))
}

// VotingStartEQ applies the EQ predicate on the "voting_start" field.
func VotingStartEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldVotingStart, v))
}

// VotingStartNEQ applies the NEQ predicate on the "voting_start" field.
func VotingStartNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldVotingStart, v))
}

// VotingStartIn applies the In predicate on the "voting_start" field.
func VotingStartIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldVotingStart, vs...))
}

// VotingStartNotIn applies the NotIn predicate on the "voting_start" field.
func VotingStartNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldVotingStart, vs...))
}

// VotingStartGT applies the GT predicate on the "voting_start" field.
func VotingStartGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldVotingStart, v))
}

// VotingStartGTE applies the GTE predicate on the "voting_start" field.
func VotingStartGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldVotingStart, v))
}

// VotingStartLT applies the LT predicate on the "voting_start" field.
func VotingStartLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldVotingStart, v))
}

// VotingStartLTE applies the LTE predicate on the "voting_start" field.
func VotingStartLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldVotingStart, v))
}

// VotingStartIsNil applies the IsNil predicate on the "voting_start" field.
func VotingStartIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldVotingStart))
}

// VotingStartNotNil applies the NotNil predicate on the "voting_start" field.
func VotingStartNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldVotingStart))
}

// VotingEndEQ applies the EQ predicate on the "voting_end" field.
func VotingEndEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldVotingEnd, v))
}

// VotingEndNEQ applies the NEQ predicate on the "voting_end" field.
func VotingEndNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldVotingEnd, v))
}

// VotingEndIn applies the In predicate on the "voting_end" field.
func VotingEndIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldVotingEnd, vs...))
}

// VotingEndNotIn applies the NotIn predicate on the "voting_end" field.
func VotingEndNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldVotingEnd, vs...))
}

// VotingEndGT applies the GT predicate on the "voting_end" field.
func VotingEndGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldVotingEnd, v))
}

// VotingEndGTE applies the GTE predicate on the "voting_end" field.
func VotingEndGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldVotingEnd, v))
}

// VotingEndLT applies the LT predicate on the "voting_end" field.
func VotingEndLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldVotingEnd, v))
}

// VotingEndLTE applies the LTE predicate on the "voting_end" field.
func VotingEndLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldVotingEnd, v))
}

// VotingEndIsNil applies the IsNil predicate on the "voting_end" field.
func VotingEndIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldVotingEnd))
}

// VotingEndNotNil applies the NotNil predicate on the "voting_end" field.
func VotingEndNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldVotingEnd))
}

// FirstSeenAtEQ applies the EQ predicate on the "first_seen_at" field.
func FirstSeenAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtNEQ applies the NEQ predicate on the "first_seen_at" field.
func FirstSeenAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldFirstSeenAt, v))
}

// FirstSeenAtIn applies the In predicate on the "first_seen_at" field.
func FirstSeenAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtNotIn applies the NotIn predicate on the "first_seen_at" field.
func FirstSeenAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldFirstSeenAt, vs...))
}

// FirstSeenAtGT applies the GT predicate on the "first_seen_at" field.
func FirstSeenAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldFirstSeenAt, v))
}

// FirstSeenAtGTE applies the GTE predicate on the "first_seen_at" field.
func FirstSeenAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldFirstSeenAt, v))
}

// FirstSeenAtLT applies the LT predicate on the "first_seen_at" field.
func FirstSeenAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldFirstSeenAt, v))
}

// FirstSeenAtLTE applies the LTE predicate on the "first_seen_at" field.
func FirstSeenAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldFirstSeenAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.NotPredicates(p))
}
