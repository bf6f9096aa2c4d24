// Package analysis computes and caches AI-generated voting
// recommendations for governance proposals.
package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/govwatcher/govwatcher/pkg/models"
)

// fingerprintHexLen is the truncated digest length in hex characters.
// 24 hex chars = 96 bits, enough to make collisions between distinct
// proposal snapshots negligible.
const fingerprintHexLen = 24

// Fingerprint identifies a unique analyzable snapshot of a proposal.
// Computed from (chainID, proposalID, title, status); a change to any of
// those four fields produces a new fingerprint. Description changes
// deliberately do not: status and title are the analyzable identity.
func Fingerprint(p models.Proposal) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%d\x00%s\x00%s", p.ChainID, p.ProposalID, p.Title, p.Status)
	return hex.EncodeToString(h.Sum(nil))[:fingerprintHexLen]
}
