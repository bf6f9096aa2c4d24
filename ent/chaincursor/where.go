// Code generated by ent, DO NOT EDIT.

package chaincursor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/govwatcher/govwatcher/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldContainsFold(FieldID, id))
}

// HighestSeen applies equality check predicate on the "highest_seen" field. It's identical to HighestSeenEQ.
func HighestSeen(v int64) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldEQ(FieldHighestSeen, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldEQ(FieldUpdatedAt, v))
}

// HighestSeenEQ applies the EQ predicate on the "highest_seen" field.
func HighestSeenEQ(v int64) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldEQ(FieldHighestSeen, v))
}

// HighestSeenNEQ applies the NEQ predicate on the "highest_seen" field.
func HighestSeenNEQ(v int64) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldNEQ(FieldHighestSeen, v))
}

// HighestSeenIn applies the In predicate on the "highest_seen" field.
func HighestSeenIn(vs ...int64) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldIn(FieldHighestSeen, vs...))
}

// HighestSeenNotIn applies the NotIn predicate on the "highest_seen" field.
func HighestSeenNotIn(vs ...int64) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldNotIn(FieldHighestSeen, vs...))
}

// HighestSeenGT applies the GT predicate on the "highest_seen" field.
func HighestSeenGT(v int64) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldGT(FieldHighestSeen, v))
}

// HighestSeenGTE applies the GTE predicate on the "highest_seen" field.
func HighestSeenGTE(v int64) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldGTE(FieldHighestSeen, v))
}

// HighestSeenLT applies the LT predicate on the "highest_seen" field.
func HighestSeenLT(v int64) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldLT(FieldHighestSeen, v))
}

// HighestSeenLTE applies the LTE predicate on the "highest_seen" field.
func HighestSeenLTE(v int64) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldLTE(FieldHighestSeen, v))
}

// TrackedIsNil applies the IsNil predicate on the "tracked" field.
func TrackedIsNil() predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldIsNull(FieldTracked))
}

// TrackedNotNil applies the NotNil predicate on the "tracked" field.
func TrackedNotNil() predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldNotNull(FieldTracked))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ChainCursor {
	return predicate.ChainCursor(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChainCursor) predicate.ChainCursor {
	return predicate.ChainCursor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChainCursor) predicate.ChainCursor {
	return predicate.ChainCursor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChainCursor) predicate.ChainCursor {
	return predicate.ChainCursor(sql.NotPredicates(p))
}
