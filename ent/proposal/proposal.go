// Code generated by ent, DO NOT EDIT.

package proposal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the proposal type in the database.
	Label = "proposal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldChainID holds the string denoting the chain_id field in the database.
	FieldChainID = "chain_id"
	// FieldProposalID holds the string denoting the proposal_id field in the database.
	FieldProposalID = "proposal_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProposalType holds the string denoting the proposal_type field in the database.
	FieldProposalType = "proposal_type"
	// FieldProposer holds the string denoting the proposer field in the database.
	FieldProposer = "proposer"
	// FieldSubmitTime holds the string denoting the submit_time field in the database.
	FieldSubmitTime = "submit_time"
	// FieldVotingStart holds the string denoting the voting_start field in the database.
	FieldVotingStart = "voting_start"
	// FieldVotingEnd holds the string denoting the voting_end field in the database.
	FieldVotingEnd = "voting_end"
	// FieldFirstSeenAt holds the string denoting the first_seen_at field in the database.
	FieldFirstSeenAt = "first_seen_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the proposal in the database.
	Table = "proposals"
)

// Columns holds all SQL columns for proposal fields.
var Columns = []string{
	FieldID,
	FieldChainID,
	FieldProposalID,
	FieldTitle,
	FieldDescription,
	FieldStatus,
	FieldProposalType,
	FieldProposer,
	FieldSubmitTime,
	FieldVotingStart,
	FieldVotingEnd,
	FieldFirstSeenAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ProposalIDValidator is a validator for the "proposal_id" field. It is called by the builders before save.
	ProposalIDValidator func(int64) error
	// DefaultFirstSeenAt holds the default value on creation for the "first_seen_at" field.
	DefaultFirstSeenAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusDeposit  Status = "deposit"
	StatusVoting   Status = "voting"
	StatusPassed   Status = "passed"
	StatusRejected Status = "rejected"
	StatusFailed   Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDeposit, StatusVoting, StatusPassed, StatusRejected, StatusFailed:
		return nil
	default:
		return fmt.Errorf("proposal: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Proposal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChainID orders the results by the chain_id field.
func ByChainID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChainID, opts...).ToFunc()
}

// ByProposalID orders the results by the proposal_id field.
func ByProposalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposalID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProposalType orders the results by the proposal_type field.
func ByProposalType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposalType, opts...).ToFunc()
}

// ByProposer orders the results by the proposer field.
func ByProposer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposer, opts...).ToFunc()
}

// BySubmitTime orders the results by the submit_time field.
func BySubmitTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitTime, opts...).ToFunc()
}

// ByVotingStart orders the results by the voting_start field.
func ByVotingStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVotingStart, opts...).ToFunc()
}

// ByVotingEnd orders the results by the voting_end field.
func ByVotingEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVotingEnd, opts...).ToFunc()
}

// ByFirstSeenAt orders the results by the first_seen_at field.
func ByFirstSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
