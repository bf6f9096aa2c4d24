// Code generated by ent, DO NOT EDIT.

package subscriber

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subscriber type in the database.
	Label = "subscriber"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "subscriber_id"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldChains holds the string denoting the chains field in the database.
	FieldChains = "chains"
	// FieldRiskTolerance holds the string denoting the risk_tolerance field in the database.
	FieldRiskTolerance = "risk_tolerance"
	// FieldCriteriaWeights holds the string denoting the criteria_weights field in the database.
	FieldCriteriaWeights = "criteria_weights"
	// FieldPolicyBlurbs holds the string denoting the policy_blurbs field in the database.
	FieldPolicyBlurbs = "policy_blurbs"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldActiveUntil holds the string denoting the active_until field in the database.
	FieldActiveUntil = "active_until"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the subscriber in the database.
	Table = "subscribers"
)

// Columns holds all SQL columns for subscriber fields.
var Columns = []string{
	FieldID,
	FieldAddress,
	FieldChains,
	FieldRiskTolerance,
	FieldCriteriaWeights,
	FieldPolicyBlurbs,
	FieldActive,
	FieldActiveUntil,
	FieldCreatedAt,
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
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// RiskTolerance defines the type for the "risk_tolerance" enum field.
type RiskTolerance string

// RiskToleranceMedium is the default value of the RiskTolerance enum.
const DefaultRiskTolerance = RiskToleranceMedium

// RiskTolerance values.
const (
	RiskToleranceLow    RiskTolerance = "low"
	RiskToleranceMedium RiskTolerance = "medium"
	RiskToleranceHigh   RiskTolerance = "high"
)

func (rt RiskTolerance) String() string {
	return string(rt)
}

// RiskToleranceValidator is a validator for the "risk_tolerance" field enum values. It is called by the builders before save.
func RiskToleranceValidator(rt RiskTolerance) error {
	switch rt {
	case RiskToleranceLow, RiskToleranceMedium, RiskToleranceHigh:
		return nil
	default:
		return fmt.Errorf("subscriber: invalid enum value for risk_tolerance field: %q", rt)
	}
}

// OrderOption defines the ordering options for the Subscriber queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByRiskTolerance orders the results by the risk_tolerance field.
func ByRiskTolerance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskTolerance, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByActiveUntil orders the results by the active_until field.
func ByActiveUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveUntil, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
