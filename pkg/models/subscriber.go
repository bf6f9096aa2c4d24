package models

import (
	"slices"
	"time"
)

// Policy is a subscriber's declared preferences for advice shaping.
// The analyzer incorporates it verbatim into the prompt but never alters
// its shape.
type Policy struct {
	RiskTolerance   RiskLevel
	CriteriaWeights map[string]float64 // non-negative, summing to 1.0
	Blurbs          []string
}

// Subscriber is an entity that should receive notifications. Managed by
// the external subscription service; read-only inside the pipeline.
type Subscriber struct {
	ID          string
	Address     string // delivery address, opaque to the pipeline
	Chains      []string
	Policy      Policy
	Active      bool
	ActiveUntil time.Time
}

// Eligible reports whether the subscriber may receive a notification for
// the given chain at the given instant.
func (s Subscriber) Eligible(chainID string, now time.Time) bool {
	return s.Active && now.Before(s.ActiveUntil) && slices.Contains(s.Chains, chainID)
}
