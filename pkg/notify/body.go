package notify

import (
	"fmt"
	"strings"

	"github.com/govwatcher/govwatcher/pkg/models"
)

// Body renders the notification text for one advice. The advice rationale
// is passed through verbatim; serviceURL may be empty.
func Body(adv models.Advice, chainName, title, serviceURL string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Governance Voting Recommendation - %s\n\n", chainName)
	fmt.Fprintf(&b, "Proposal #%d: %s\n\n", adv.ProposalID, title)
	fmt.Fprintf(&b, "RECOMMENDATION: %s\n", adv.Decision)
	fmt.Fprintf(&b, "Confidence: %.1f%%\n\n", adv.Confidence*100)
	fmt.Fprintf(&b, "ANALYSIS:\n%s\n", adv.Rationale)

	b.WriteString("\n---\nThis recommendation was generated based on your governance policy preferences.\n")
	if serviceURL != "" {
		fmt.Fprintf(&b, "\nVisit %s to manage your subscription or update your preferences.\n", serviceURL)
	}

	return b.String()
}
