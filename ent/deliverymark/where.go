// Code generated by ent, DO NOT EDIT.

package deliverymark

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/govwatcher/govwatcher/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldContainsFold(FieldID, id))
}

// ChainID applies equality check predicate on the "chain_id" field. It's identical to ChainIDEQ.
func ChainID(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEQ(FieldChainID, v))
}

// ProposalID applies equality check predicate on the "proposal_id" field. It's identical to ProposalIDEQ.
func ProposalID(v int64) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEQ(FieldProposalID, v))
}

// SubscriberID applies equality check predicate on the "subscriber_id" field. It's identical to SubscriberIDEQ.
func SubscriberID(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEQ(FieldSubscriberID, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEQ(FieldMessageID, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEQ(FieldSentAt, v))
}

// ChainIDEQ applies the EQ predicate on the "chain_id" field.
func ChainIDEQ(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEQ(FieldChainID, v))
}

// ChainIDNEQ applies the NEQ predicate on the "chain_id" field.
func ChainIDNEQ(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldNEQ(FieldChainID, v))
}

// ChainIDIn applies the In predicate on the "chain_id" field.
func ChainIDIn(vs ...string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldIn(FieldChainID, vs...))
}

// ChainIDNotIn applies the NotIn predicate on the "chain_id" field.
func ChainIDNotIn(vs ...string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldNotIn(FieldChainID, vs...))
}

// ChainIDGT applies the GT predicate on the "chain_id" field.
func ChainIDGT(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldGT(FieldChainID, v))
}

// ChainIDGTE applies the GTE predicate on the "chain_id" field.
func ChainIDGTE(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldGTE(FieldChainID, v))
}

// ChainIDLT applies the LT predicate on the "chain_id" field.
func ChainIDLT(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldLT(FieldChainID, v))
}

// ChainIDLTE applies the LTE predicate on the "chain_id" field.
func ChainIDLTE(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldLTE(FieldChainID, v))
}

// ChainIDContains applies the Contains predicate on the "chain_id" field.
func ChainIDContains(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldContains(FieldChainID, v))
}

// ChainIDHasPrefix applies the HasPrefix predicate on the "chain_id" field.
func ChainIDHasPrefix(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldHasPrefix(FieldChainID, v))
}

// ChainIDHasSuffix applies the HasSuffix predicate on the "chain_id" field.
func ChainIDHasSuffix(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldHasSuffix(FieldChainID, v))
}

// ChainIDEqualFold applies the EqualFold predicate on the "chain_id" field.
func ChainIDEqualFold(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEqualFold(FieldChainID, v))
}

// ChainIDContainsFold applies the ContainsFold predicate on the "chain_id" field.
func ChainIDContainsFold(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldContainsFold(FieldChainID, v))
}

// ProposalIDEQ applies the EQ predicate on the "proposal_id" field.
func ProposalIDEQ(v int64) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEQ(FieldProposalID, v))
}

// ProposalIDNEQ applies the NEQ predicate on the "proposal_id" field.
func ProposalIDNEQ(v int64) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldNEQ(FieldProposalID, v))
}

// ProposalIDIn applies the In predicate on the "proposal_id" field.
func ProposalIDIn(vs ...int64) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldIn(FieldProposalID, vs...))
}

// ProposalIDNotIn applies the NotIn predicate on the "proposal_id" field.
func ProposalIDNotIn(vs ...int64) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldNotIn(FieldProposalID, vs...))
}

// ProposalIDGT applies the GT predicate on the "proposal_id" field.
func ProposalIDGT(v int64) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldGT(FieldProposalID, v))
}

// ProposalIDGTE applies the GTE predicate on the "proposal_id" field.
func ProposalIDGTE(v int64) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldGTE(FieldProposalID, v))
}

// ProposalIDLT applies the LT predicate on the "proposal_id" field.
func ProposalIDLT(v int64) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldLT(FieldProposalID, v))
}

// ProposalIDLTE applies the LTE predicate on the "proposal_id" field.
func ProposalIDLTE(v int64) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldLTE(FieldProposalID, v))
}

// SubscriberIDEQ applies the EQ predicate on the "subscriber_id" field.
func SubscriberIDEQ(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEQ(FieldSubscriberID, v))
}

// SubscriberIDNEQ applies the NEQ predicate on the "subscriber_id" field.
func SubscriberIDNEQ(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldNEQ(FieldSubscriberID, v))
}

// SubscriberIDIn applies the In predicate on the "subscriber_id" field.
func SubscriberIDIn(vs ...string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldIn(FieldSubscriberID, vs...))
}

// SubscriberIDNotIn applies the NotIn predicate on the "subscriber_id" field.
func SubscriberIDNotIn(vs ...string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldNotIn(FieldSubscriberID, vs...))
}

// SubscriberIDGT applies the GT predicate on the "subscriber_id" field.
func SubscriberIDGT(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldGT(FieldSubscriberID, v))
}

// SubscriberIDGTE applies the GTE predicate on the "subscriber_id" field.
func SubscriberIDGTE(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldGTE(FieldSubscriberID, v))
}

// SubscriberIDLT applies the LT predicate on the "subscriber_id" field.
func SubscriberIDLT(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldLT(FieldSubscriberID, v))
}

// SubscriberIDLTE applies the LTE predicate on the "subscriber_id" field.
func SubscriberIDLTE(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldLTE(FieldSubscriberID, v))
}

// SubscriberIDContains applies the Contains predicate on the "subscriber_id" field.
func SubscriberIDContains(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldContains(FieldSubscriberID, v))
}

// SubscriberIDHasPrefix applies the HasPrefix predicate on the "subscriber_id" field.
func SubscriberIDHasPrefix(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldHasPrefix(FieldSubscriberID, v))
}

// SubscriberIDHasSuffix applies the HasSuffix predicate on the "subscriber_id" field.
func SubscriberIDHasSuffix(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldHasSuffix(FieldSubscriberID, v))
}

// SubscriberIDEqualFold applies the EqualFold predicate on the "subscriber_id" field.
func SubscriberIDEqualFold(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEqualFold(FieldSubscriberID, v))
}

// SubscriberIDContainsFold applies the ContainsFold predicate on the "subscriber_id" field.
func SubscriberIDContainsFold(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldContainsFold(FieldSubscriberID, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDIsNil applies the IsNil predicate on the "message_id" field.
func MessageIDIsNil() predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldIsNull(FieldMessageID))
}

// MessageIDNotNil applies the NotNil predicate on the "message_id" field.
func MessageIDNotNil() predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldNotNull(FieldMessageID))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldContainsFold(FieldMessageID, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.FieldLTE(FieldSentAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeliveryMark) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeliveryMark) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeliveryMark) predicate.DeliveryMark {
	return predicate.DeliveryMark(sql.NotPredicates(p))
}
