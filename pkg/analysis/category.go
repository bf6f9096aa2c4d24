package analysis

import "strings"

// Category buckets a proposal for specialized prompt guidance.
type Category string

// Proposal categories. Classification picks exactly one by keyword
// matching; earlier checks win.
const (
	CategoryParameterChange    Category = "PARAMETER_CHANGE"
	CategoryCommunityPoolSpend Category = "COMMUNITY_POOL_SPEND"
	CategoryUpgrade            Category = "UPGRADE"
	CategoryIBC                Category = "IBC"
	CategoryText               Category = "TEXT"
	CategoryOther              Category = "OTHER"
)

var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryUpgrade, []string{"upgrade", "security", "patch", "fix", "vulnerability"}},
	{CategoryParameterChange, []string{"parameter", "inflation", "fee", "reward", "tax", "burn"}},
	{CategoryCommunityPoolSpend, []string{"community", "pool", "fund", "grant", "spend"}},
	{CategoryIBC, []string{"ibc", "interchain", "bridge", "cross-chain"}},
	{CategoryText, []string{"signal", "signaling", "text proposal"}},
}

// Categorize classifies a proposal by keyword matching against
// title+description. The type tag short-circuits for text proposals,
// which otherwise carry no distinguishing keywords.
func Categorize(title, description, proposalType string) Category {
	if strings.Contains(proposalType, "TextProposal") {
		return CategoryText
	}

	haystack := strings.ToLower(title) + " " + strings.ToLower(description)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(haystack, keyword) {
				return entry.category
			}
		}
	}
	return CategoryOther
}

// Guidance returns the category-specific analysis instructions injected
// into the prompt's middle layer.
func (c Category) Guidance() string {
	switch c {
	case CategoryUpgrade:
		return `Focus on security implications, upgrade risks, and network stability.
Assess: code quality, testing coverage, backward compatibility, emergency response.
Consider: validator coordination, network downtime, rollback scenarios.`
	case CategoryParameterChange:
		return `Focus on economic impact, tokenomics, and market effects.
Assess: inflation changes, fee structures, reward mechanisms, token supply.
Consider: validator economics, delegator returns, market competitiveness.`
	case CategoryCommunityPoolSpend:
		return `Focus on fund allocation, community development, and resource management.
Assess: funding purpose, team credentials, deliverables, accountability.
Consider: community pool sustainability, return on spend, ecosystem development.`
	case CategoryIBC:
		return `Focus on cross-chain functionality, IBC protocols, and ecosystem integration.
Assess: IBC compatibility, bridge security, cross-chain risks.
Consider: ecosystem connectivity, interchain security, protocol coordination.`
	case CategoryText:
		return `Focus on the signaling intent and its consequences if later enacted.
Assess: clarity of the ask, community support, follow-up commitments.
Consider: precedent setting, non-binding nature, governance signal strength.`
	default:
		return `Provide general governance analysis covering security, economic, and governance aspects.
Assess: overall proposal merit, implementation feasibility, risk factors.
Consider: stakeholder impact, network effects, long-term implications.`
	}
}
