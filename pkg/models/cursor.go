package models

// Cursor is the watcher's persisted per-chain watermark: the highest
// proposal ID observed so far and the set of non-terminal proposal IDs
// still re-polled for status changes.
type Cursor struct {
	ChainID     string
	HighestSeen int64
	Tracked     []int64
}

// IsTracked reports whether the proposal ID is in the tracked set.
func (c Cursor) IsTracked(proposalID int64) bool {
	for _, id := range c.Tracked {
		if id == proposalID {
			return true
		}
	}
	return false
}
