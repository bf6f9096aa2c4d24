// Code generated by ent, DO NOT EDIT.

package chaincursor

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the chaincursor type in the database.
	Label = "chain_cursor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "chain_id"
	// FieldHighestSeen holds the string denoting the highest_seen field in the database.
	FieldHighestSeen = "highest_seen"
	// FieldTracked holds the string denoting the tracked field in the database.
	FieldTracked = "tracked"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the chaincursor in the database.
	Table = "chain_cursors"
)

// Columns holds all SQL columns for chaincursor fields.
var Columns = []string{
	FieldID,
	FieldHighestSeen,
	FieldTracked,
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
	// DefaultHighestSeen holds the default value on creation for the "highest_seen" field.
	DefaultHighestSeen int64
	// HighestSeenValidator is a validator for the "highest_seen" field. It is called by the builders before save.
	HighestSeenValidator func(int64) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ChainCursor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHighestSeen orders the results by the highest_seen field.
func ByHighestSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHighestSeen, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
