package analysis

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/govwatcher/govwatcher/pkg/models"
)

// systemPreamble is the fixed first layer of every analysis prompt.
const systemPreamble = `You are a professional blockchain governance analyst producing voting recommendations for enterprise subscribers. Respond only with valid JSON in the requested schema. The recommendation vocabulary is APPROVE, REJECT, or ABSTAIN; the risk vocabulary is LOW, MEDIUM, or HIGH.`

// outputSchema describes the required provider output.
const outputSchema = `{
  "recommendation": "APPROVE|REJECT|ABSTAIN",
  "confidence": <0-100 integer>,
  "reasoning": "<specific 2-3 sentence reasoning based on proposal content and chain context>",
  "risk_assessment": "LOW|MEDIUM|HIGH",
  "policy_alignment": <0-100 integer>,
  "economic_impact": "POSITIVE|NEGATIVE|NEUTRAL",
  "key_considerations": ["<consideration>", "<consideration>"],
  "implementation_risk": "LOW|MEDIUM|HIGH"
}`

// repairRequest is sent once when a provider's output fails schema
// validation.
const repairRequest = `Your previous response did not match the required schema. Please re-emit your analysis as valid JSON exactly in this schema, with no surrounding text:
` + outputSchema

// promptDescriptionLimit bounds the description excerpt inside the prompt.
const promptDescriptionLimit = 500

// BuildPrompt renders the deterministic user prompt for a (proposal,
// policy) pair. Three layers: task context, category/chain guidance, then
// the proposal and policy verbatim.
func BuildPrompt(p models.Proposal, chainName string, policy models.Policy) string {
	category := Categorize(p.Title, p.Description, p.Type)

	var b strings.Builder

	fmt.Fprintf(&b, `You are analyzing a governance proposal on %s (%s) with deep knowledge of:
- %s specific governance mechanisms and economic models
- %s proposal types and their implications
- Cross-chain governance patterns and risk assessment
- Regulatory compliance and institutional risk management

CHAIN CONTEXT:
%s

SPECIALIZED ANALYSIS REQUIREMENTS:
%s

`, chainName, p.ChainID, chainName, category, ChainContext(p.ChainID, chainName), category.Guidance())

	fmt.Fprintf(&b, `PROPOSAL DETAILS:
Title: %s
Description: %s
Chain: %s (%s)
Type: %s
Category: %s
Status: %s
Voting End: %s

`, p.Title, excerpt(p.Description, promptDescriptionLimit), chainName, p.ChainID,
		orUnknown(p.Type), category, strings.ToUpper(string(p.Status)), formatVotingEnd(p))

	b.WriteString("ORGANIZATION POLICY FRAMEWORK:\n")
	fmt.Fprintf(&b, "Risk Tolerance: %s\n", strings.ToUpper(string(policy.RiskTolerance)))
	for _, name := range sortedWeightNames(policy.CriteriaWeights) {
		fmt.Fprintf(&b, "%s Priority: %.2f (Weight: %.1f%%)\n", titleCase(name), policy.CriteriaWeights[name], policy.CriteriaWeights[name]*100)
	}
	for _, blurb := range policy.Blurbs {
		fmt.Fprintf(&b, "Policy Statement: %s\n", blurb)
	}

	fmt.Fprintf(&b, "\nProvide your analysis in the following JSON format (respond ONLY with valid JSON):\n%s\n", outputSchema)

	return b.String()
}

// excerpt cuts s to at most limit bytes on a rune boundary so the prompt
// never carries a split multi-byte character.
func excerpt(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit] + "..."
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func formatVotingEnd(p models.Proposal) string {
	if p.VotingEnd == nil {
		return "Unknown"
	}
	return p.VotingEnd.UTC().Format("2006-01-02 15:04 UTC")
}

// sortedWeightNames keeps the criteria order stable so the prompt is
// deterministic for a given policy.
func sortedWeightNames(weights map[string]float64) []string {
	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
