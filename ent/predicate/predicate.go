// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Analysis is the predicate function for analysis builders.
type Analysis func(*sql.Selector)

// ChainCursor is the predicate function for chaincursor builders.
type ChainCursor func(*sql.Selector)

// DeliveryMark is the predicate function for deliverymark builders.
type DeliveryMark func(*sql.Selector)

// Proposal is the predicate function for proposal builders.
type Proposal func(*sql.Selector)

// Subscriber is the predicate function for subscriber builders.
type Subscriber func(*sql.Selector)
