// Code generated by ent, DO NOT EDIT.

package subscriber

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/govwatcher/govwatcher/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldContainsFold(FieldID, id))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEQ(FieldAddress, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEQ(FieldActive, v))
}

// ActiveUntil applies equality check predicate on the "active_until" field. It's identical to ActiveUntilEQ.
func ActiveUntil(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEQ(FieldActiveUntil, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEQ(FieldUpdatedAt, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldContainsFold(FieldAddress, v))
}

// RiskToleranceEQ applies the EQ predicate on the "risk_tolerance" field.
func RiskToleranceEQ(v RiskTolerance) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEQ(FieldRiskTolerance, v))
}

// RiskToleranceNEQ applies the NEQ predicate on the "risk_tolerance" field.
func RiskToleranceNEQ(v RiskTolerance) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNEQ(FieldRiskTolerance, v))
}

// RiskToleranceIn applies the In predicate on the "risk_tolerance" field.
func RiskToleranceIn(vs ...RiskTolerance) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldIn(FieldRiskTolerance, vs...))
}

// RiskToleranceNotIn applies the NotIn predicate on the "risk_tolerance" field.
func RiskToleranceNotIn(vs ...RiskTolerance) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNotIn(FieldRiskTolerance, vs...))
}

// CriteriaWeightsIsNil applies the IsNil predicate on the "criteria_weights" field.
func CriteriaWeightsIsNil() predicate.Subscriber {
	return predicate.Subscriber(sql.FieldIsNull(FieldCriteriaWeights))
}

// CriteriaWeightsNotNil applies the NotNil predicate on the "criteria_weights" field.
func CriteriaWeightsNotNil() predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNotNull(FieldCriteriaWeights))
}

// PolicyBlurbsIsNil applies the IsNil predicate on the "policy_blurbs" field.
func PolicyBlurbsIsNil() predicate.Subscriber {
	return predicate.Subscriber(sql.FieldIsNull(FieldPolicyBlurbs))
}

// PolicyBlurbsNotNil applies the NotNil predicate on the "policy_blurbs" field.
func PolicyBlurbsNotNil() predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNotNull(FieldPolicyBlurbs))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNEQ(FieldActive, v))
}

// ActiveUntilEQ applies the EQ predicate on the "active_until" field.
func ActiveUntilEQ(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEQ(FieldActiveUntil, v))
}

// ActiveUntilNEQ applies the NEQ predicate on the "active_until" field.
func ActiveUntilNEQ(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNEQ(FieldActiveUntil, v))
}

// ActiveUntilIn applies the In predicate on the "active_until" field.
func ActiveUntilIn(vs ...time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldIn(FieldActiveUntil, vs...))
}

// ActiveUntilNotIn applies the NotIn predicate on the "active_until" field.
func ActiveUntilNotIn(vs ...time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNotIn(FieldActiveUntil, vs...))
}

// ActiveUntilGT applies the GT predicate on the "active_until" field.
func ActiveUntilGT(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldGT(FieldActiveUntil, v))
}

// ActiveUntilGTE applies the GTE predicate on the "active_until" field.
func ActiveUntilGTE(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldGTE(FieldActiveUntil, v))
}

// ActiveUntilLT applies the LT predicate on the "active_until" field.
func ActiveUntilLT(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldLT(FieldActiveUntil, v))
}

// ActiveUntilLTE applies the LTE predicate on the "active_until" field.
func ActiveUntilLTE(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldLTE(FieldActiveUntil, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Subscriber {
	return predicate.Subscriber(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subscriber) predicate.Subscriber {
	return predicate.Subscriber(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subscriber) predicate.Subscriber {
	return predicate.Subscriber(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subscriber) predicate.Subscriber {
	return predicate.Subscriber(sql.NotPredicates(p))
}
