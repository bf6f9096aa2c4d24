// Code generated by ent, DO NOT EDIT.

package analysis

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the analysis type in the database.
	Label = "analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldChainID holds the string denoting the chain_id field in the database.
	FieldChainID = "chain_id"
	// FieldProposalID holds the string denoting the proposal_id field in the database.
	FieldProposalID = "proposal_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldRecommendation holds the string denoting the recommendation field in the database.
	FieldRecommendation = "recommendation"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldRiskAssessment holds the string denoting the risk_assessment field in the database.
	FieldRiskAssessment = "risk_assessment"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the analysis in the database.
	Table = "analyses"
)

// Columns holds all SQL columns for analysis fields.
var Columns = []string{
	FieldID,
	FieldFingerprint,
	FieldChainID,
	FieldProposalID,
	FieldProvider,
	FieldRecommendation,
	FieldConfidence,
	FieldReasoning,
	FieldRiskAssessment,
	FieldDetails,
	FieldCreatedAt,
	FieldExpiresAt,
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
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Recommendation defines the type for the "recommendation" enum field.
type Recommendation string

// Recommendation values.
const (
	RecommendationApprove Recommendation = "approve"
	RecommendationReject  Recommendation = "reject"
	RecommendationAbstain Recommendation = "abstain"
)

func (r Recommendation) String() string {
	return string(r)
}

// RecommendationValidator is a validator for the "recommendation" field enum values. It is called by the builders before save.
func RecommendationValidator(r Recommendation) error {
	switch r {
	case RecommendationApprove, RecommendationReject, RecommendationAbstain:
		return nil
	default:
		return fmt.Errorf("analysis: invalid enum value for recommendation field: %q", r)
	}
}

// RiskAssessment defines the type for the "risk_assessment" enum field.
type RiskAssessment string

// RiskAssessment values.
const (
	RiskAssessmentLow    RiskAssessment = "low"
	RiskAssessmentMedium RiskAssessment = "medium"
	RiskAssessmentHigh   RiskAssessment = "high"
)

func (ra RiskAssessment) String() string {
	return string(ra)
}

// RiskAssessmentValidator is a validator for the "risk_assessment" field enum values. It is called by the builders before save.
func RiskAssessmentValidator(ra RiskAssessment) error {
	switch ra {
	case RiskAssessmentLow, RiskAssessmentMedium, RiskAssessmentHigh:
		return nil
	default:
		return fmt.Errorf("analysis: invalid enum value for risk_assessment field: %q", ra)
	}
}

// OrderOption defines the ordering options for the Analysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByChainID orders the results by the chain_id field.
func ByChainID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChainID, opts...).ToFunc()
}

// ByProposalID orders the results by the proposal_id field.
func ByProposalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposalID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByRecommendation orders the results by the recommendation field.
func ByRecommendation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendation, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByRiskAssessment orders the results by the risk_assessment field.
func ByRiskAssessment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskAssessment, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
