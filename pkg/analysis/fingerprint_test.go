package analysis

import (
	"testing"

	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	base := models.Proposal{
		ChainID:    "cosmoshub-4",
		ProposalID: 42,
		Title:      "Increase community pool tax",
		Status:     models.StatusVoting,
	}

	t.Run("is stable for identical input", func(t *testing.T) {
		assert.Equal(t, Fingerprint(base), Fingerprint(base))
	})

	t.Run("is 24 lowercase hex characters", func(t *testing.T) {
		fp := Fingerprint(base)
		assert.Len(t, fp, 24)
		assert.Regexp(t, "^[0-9a-f]+$", fp)
	})

	t.Run("changes when any identity field changes", func(t *testing.T) {
		fp := Fingerprint(base)

		p := base
		p.ChainID = "osmosis-1"
		assert.NotEqual(t, fp, Fingerprint(p))

		p = base
		p.ProposalID = 43
		assert.NotEqual(t, fp, Fingerprint(p))

		p = base
		p.Title = "Decrease community pool tax"
		assert.NotEqual(t, fp, Fingerprint(p))

		p = base
		p.Status = models.StatusPassed
		assert.NotEqual(t, fp, Fingerprint(p))
	})

	t.Run("ignores description changes", func(t *testing.T) {
		p := base
		p.Description = "a completely different body"
		assert.Equal(t, Fingerprint(base), Fingerprint(p))
	})

	t.Run("field boundaries are unambiguous", func(t *testing.T) {
		// The separator prevents "ab"+"c" from colliding with "a"+"bc"
		a := models.Proposal{ChainID: "chain-ab", ProposalID: 1, Title: "c", Status: models.StatusVoting}
		b := models.Proposal{ChainID: "chain-a", ProposalID: 1, Title: "bc", Status: models.StatusVoting}
		assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
	})
}

func TestTTLFor(t *testing.T) {
	assert.Equal(t, activeTTL, TTLFor(models.StatusVoting))
	assert.Equal(t, activeTTL, TTLFor(models.StatusDeposit))
	assert.Equal(t, terminalTTL, TTLFor(models.StatusPassed))
	assert.Equal(t, terminalTTL, TTLFor(models.StatusRejected))
	assert.Equal(t, terminalTTL, TTLFor(models.StatusFailed))
	assert.Less(t, TTLFor(models.StatusVoting), TTLFor(models.StatusPassed))
	assert.Less(t, TTLFor(models.StatusPassed), MaxAge)
}
