package analysis

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	votingEnd := time.Date(2026, 9, 15, 18, 30, 0, 0, time.UTC)
	p := models.Proposal{
		ChainID:     "cosmoshub-4",
		ProposalID:  99,
		Title:       "Upgrade to v20",
		Description: "Coordinated chain upgrade.",
		Status:      models.StatusVoting,
		Type:        "/cosmos.upgrade.v1beta1.SoftwareUpgradeProposal",
		VotingEnd:   &votingEnd,
	}
	policy := models.Policy{
		RiskTolerance: models.RiskLow,
		CriteriaWeights: map[string]float64{
			"security":      0.5,
			"economic":      0.3,
			"decentralized": 0.2,
		},
		Blurbs: []string{"We never vote for proposals without audits."},
	}

	t.Run("contains all three layers", func(t *testing.T) {
		prompt := BuildPrompt(p, "Cosmos Hub", policy)
		assert.Contains(t, prompt, "Cosmos Hub (cosmoshub-4)")
		assert.Contains(t, prompt, "CHAIN CONTEXT:")
		assert.Contains(t, prompt, "SPECIALIZED ANALYSIS REQUIREMENTS:")
		assert.Contains(t, prompt, "Title: Upgrade to v20")
		assert.Contains(t, prompt, "Status: VOTING")
		assert.Contains(t, prompt, "Voting End: 2026-09-15 18:30 UTC")
		assert.Contains(t, prompt, "Risk Tolerance: LOW")
		assert.Contains(t, prompt, "Policy Statement: We never vote for proposals without audits.")
		assert.Contains(t, prompt, `"recommendation": "APPROVE|REJECT|ABSTAIN"`)
	})

	t.Run("is deterministic for identical input", func(t *testing.T) {
		assert.Equal(t, BuildPrompt(p, "Cosmos Hub", policy), BuildPrompt(p, "Cosmos Hub", policy))
	})

	t.Run("criteria weights appear in sorted order", func(t *testing.T) {
		prompt := BuildPrompt(p, "Cosmos Hub", policy)
		dec := strings.Index(prompt, "Decentralized Priority")
		eco := strings.Index(prompt, "Economic Priority")
		sec := strings.Index(prompt, "Security Priority")
		assert.True(t, dec >= 0 && eco >= 0 && sec >= 0)
		assert.True(t, dec < eco && eco < sec)
	})

	t.Run("truncates long descriptions", func(t *testing.T) {
		long := p
		long.Description = strings.Repeat("x", 2000)
		prompt := BuildPrompt(long, "Cosmos Hub", policy)
		assert.Contains(t, prompt, strings.Repeat("x", promptDescriptionLimit)+"...")
		assert.NotContains(t, prompt, strings.Repeat("x", promptDescriptionLimit+1))
	})

	t.Run("excerpts multi-byte descriptions on a rune boundary", func(t *testing.T) {
		long := p
		long.Description = strings.Repeat("x", promptDescriptionLimit-1) + "世界"
		prompt := BuildPrompt(long, "Cosmos Hub", policy)
		assert.True(t, utf8.ValidString(prompt))
		assert.Contains(t, prompt, strings.Repeat("x", promptDescriptionLimit-1)+"...")
	})

	t.Run("handles missing optional fields", func(t *testing.T) {
		bare := models.Proposal{
			ChainID:    "unknown-chain",
			ProposalID: 1,
			Title:      "Signal support",
			Status:     models.StatusDeposit,
		}
		prompt := BuildPrompt(bare, "Unknown Chain", models.Policy{RiskTolerance: models.RiskMedium})
		assert.Contains(t, prompt, "Type: unknown")
		assert.Contains(t, prompt, "Voting End: Unknown")
	})
}
