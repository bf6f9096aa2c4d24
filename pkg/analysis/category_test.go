package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		description  string
		proposalType string
		want         Category
	}{
		{"upgrade by title", "v15 Upgrade", "coordinated halt height", "", CategoryUpgrade},
		{"security patch counts as upgrade", "Emergency security patch", "", "", CategoryUpgrade},
		{"parameter change", "Lower the inflation rate", "reduce to 7%", "", CategoryParameterChange},
		{"community spend", "Grant for developer tooling", "", "", CategoryCommunityPoolSpend},
		{"ibc", "Open IBC channel to neighboring zone", "", "", CategoryIBC},
		{"signaling text", "Signaling proposal on validator commissions", "", "", CategoryText},
		{"no keywords", "Adjust governance docs wording", "editorial only", "", CategoryOther},
		{"type tag wins for text proposals", "Raise the fee parameter", "", "/cosmos.gov.v1beta1.TextProposal", CategoryText},
		{"upgrade beats parameter when both match", "Upgrade the fee module", "", "", CategoryUpgrade},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.title, tt.description, tt.proposalType))
		})
	}
}

func TestCategoryGuidance(t *testing.T) {
	// Every category has non-empty, distinct guidance
	categories := []Category{
		CategoryParameterChange,
		CategoryCommunityPoolSpend,
		CategoryUpgrade,
		CategoryIBC,
		CategoryText,
		CategoryOther,
	}
	seen := make(map[string]Category)
	for _, c := range categories {
		g := c.Guidance()
		assert.NotEmpty(t, g, "guidance for %s", c)
		prev, dup := seen[g]
		assert.False(t, dup, "guidance for %s duplicates %s", c, prev)
		seen[g] = c
	}
}
