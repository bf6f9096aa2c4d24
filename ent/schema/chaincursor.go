package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ChainCursor holds the schema definition for the ChainCursor entity.
// One row per chain: the watcher's persisted watermark.
type ChainCursor struct {
	ent.Schema
}

// Fields of the ChainCursor.
func (ChainCursor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chain_id").
			Unique().
			Immutable(),
		field.Int64("highest_seen").
			Default(0).
			NonNegative(),
		field.JSON("tracked", []int64{}).
			Optional().
			Comment("Non-terminal proposal IDs still re-polled for status changes"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
