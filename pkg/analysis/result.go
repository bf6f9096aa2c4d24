package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/govwatcher/govwatcher/pkg/models"
)

// ErrSchema marks provider output that failed validation after the repair
// attempt. Permanent for the provider on this call.
var ErrSchema = errors.New("provider output does not match schema")

// Result is a validated provider analysis before it is attached to a
// fingerprint.
type Result struct {
	Recommendation models.Recommendation
	Confidence     float64 // normalized to [0, 1]
	Reasoning      string
	RiskAssessment models.RiskLevel
	Details        map[string]interface{}
}

// wireResult is the raw provider JSON shape. Confidence arrives as a
// 0-100 integer.
type wireResult struct {
	Recommendation       string   `json:"recommendation"`
	Confidence           *float64 `json:"confidence"`
	Reasoning            string   `json:"reasoning"`
	RiskAssessment       string   `json:"risk_assessment"`
	PolicyAlignment      *float64 `json:"policy_alignment"`
	EconomicImpact       string   `json:"economic_impact"`
	SecurityImplications string   `json:"security_implications"`
	KeyConsiderations    []string `json:"key_considerations"`
	ImplementationRisk   string   `json:"implementation_risk"`
	ChainSpecificNotes   string   `json:"chain_specific_notes"`
}

// ParseResult validates raw provider output against the schema. Parsing
// is strict: missing required fields, out-of-range confidence, or unknown
// vocabulary values are errors (the caller issues one repair request).
func ParseResult(raw string) (*Result, error) {
	cleaned := stripCodeFence(strings.TrimSpace(raw))

	var wire wireResult
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return nil, fmt.Errorf("parse provider JSON: %w", err)
	}

	recommendation, err := recommendationFromWire(wire.Recommendation)
	if err != nil {
		return nil, err
	}

	if wire.Confidence == nil {
		return nil, errors.New("missing required field: confidence")
	}
	if *wire.Confidence < 0 || *wire.Confidence > 100 {
		return nil, fmt.Errorf("confidence %v out of range [0, 100]", *wire.Confidence)
	}

	if strings.TrimSpace(wire.Reasoning) == "" {
		return nil, errors.New("missing required field: reasoning")
	}

	risk, err := riskFromWire(wire.RiskAssessment)
	if err != nil {
		return nil, err
	}

	return &Result{
		Recommendation: recommendation,
		Confidence:     *wire.Confidence / 100,
		Reasoning:      strings.TrimSpace(wire.Reasoning),
		RiskAssessment: risk,
		Details:        detailsFromWire(wire),
	}, nil
}

// stripCodeFence removes a surrounding markdown code fence, which models
// add despite instructions.
func stripCodeFence(s string) string {
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func recommendationFromWire(wire string) (models.Recommendation, error) {
	switch strings.ToUpper(strings.TrimSpace(wire)) {
	case "APPROVE":
		return models.RecommendApprove, nil
	case "REJECT":
		return models.RecommendReject, nil
	case "ABSTAIN":
		return models.RecommendAbstain, nil
	case "":
		return "", errors.New("missing required field: recommendation")
	default:
		return "", fmt.Errorf("unknown recommendation %q", wire)
	}
}

func riskFromWire(wire string) (models.RiskLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(wire)) {
	case "LOW":
		return models.RiskLow, nil
	case "MEDIUM":
		return models.RiskMedium, nil
	case "HIGH":
		return models.RiskHigh, nil
	case "":
		return "", errors.New("missing required field: risk_assessment")
	default:
		return "", fmt.Errorf("unknown risk_assessment %q", wire)
	}
}

// detailsFromWire collects the optional structured sub-fields.
func detailsFromWire(wire wireResult) map[string]interface{} {
	details := make(map[string]interface{})
	if wire.PolicyAlignment != nil {
		details["policy_alignment"] = *wire.PolicyAlignment
	}
	if wire.EconomicImpact != "" {
		details["economic_impact"] = wire.EconomicImpact
	}
	if wire.SecurityImplications != "" {
		details["security_implications"] = wire.SecurityImplications
	}
	if len(wire.KeyConsiderations) > 0 {
		details["key_considerations"] = wire.KeyConsiderations
	}
	if wire.ImplementationRisk != "" {
		details["implementation_risk"] = wire.ImplementationRisk
	}
	if wire.ChainSpecificNotes != "" {
		details["chain_specific_notes"] = wire.ChainSpecificNotes
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
