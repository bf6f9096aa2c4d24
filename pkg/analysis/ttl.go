package analysis

import (
	"time"

	"github.com/govwatcher/govwatcher/pkg/models"
)

// Status-aware TTLs. Proposals still in flight get re-analyzed daily;
// settled ones keep their analysis for a week. Everything is purged after
// 30 days regardless of status by the retention sweep.
const (
	activeTTL   = 24 * time.Hour
	terminalTTL = 7 * 24 * time.Hour

	// MaxAge is the hard retention bound applied by the sweep.
	MaxAge = 30 * 24 * time.Hour
)

// TTLFor returns the analysis lifetime for a proposal in the given status.
func TTLFor(status models.ProposalStatus) time.Duration {
	if status.IsTerminal() {
		return terminalTTL
	}
	return activeTTL
}
