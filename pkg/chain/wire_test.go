package chain

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromWire(t *testing.T) {
	tests := []struct {
		wire string
		want models.ProposalStatus
	}{
		{"PROPOSAL_STATUS_DEPOSIT_PERIOD", models.StatusDeposit},
		{"PROPOSAL_STATUS_VOTING_PERIOD", models.StatusVoting},
		{"PROPOSAL_STATUS_PASSED", models.StatusPassed},
		{"PROPOSAL_STATUS_REJECTED", models.StatusRejected},
		{"PROPOSAL_STATUS_FAILED", models.StatusFailed},
	}
	for _, tt := range tests {
		got, err := statusFromWire(tt.wire)
		require.NoError(t, err, tt.wire)
		assert.Equal(t, tt.want, got)
	}

	_, err := statusFromWire("PROPOSAL_STATUS_UNSPECIFIED")
	assert.Error(t, err)
}

func TestParseProposal(t *testing.T) {
	t.Run("parses a full proposal", func(t *testing.T) {
		raw := rawProposal{
			ProposalID: "42",
			Content: &rawContent{
				Type:        "/cosmos.params.v1beta1.ParameterChangeProposal",
				Title:       "  Lower minimum deposit  ",
				Description: "Reduce to 64 ATOM.",
			},
			Status:          "PROPOSAL_STATUS_VOTING_PERIOD",
			SubmitTime:      "2026-08-01T10:00:00Z",
			VotingStartTime: "2026-08-03T10:00:00.123456789Z",
			VotingEndTime:   "2026-08-17T10:00:00Z",
			Proposer:        "cosmos1abc",
		}

		p, err := parseProposal("cosmoshub-4", raw)
		require.NoError(t, err)
		assert.Equal(t, "cosmoshub-4", p.ChainID)
		assert.Equal(t, int64(42), p.ProposalID)
		assert.Equal(t, "Lower minimum deposit", p.Title)
		assert.Equal(t, models.StatusVoting, p.Status)
		assert.Equal(t, "cosmos1abc", p.Proposer)
		require.NotNil(t, p.VotingStart)
		assert.Equal(t, 123456789, p.VotingStart.Nanosecond())
		require.NotNil(t, p.VotingEnd)
		assert.Equal(t, time.Date(2026, 8, 17, 10, 0, 0, 0, time.UTC), p.VotingEnd.UTC())
	})

	t.Run("applies fallbacks for missing content", func(t *testing.T) {
		raw := rawProposal{
			ProposalID: "7",
			Status:     "PROPOSAL_STATUS_DEPOSIT_PERIOD",
		}

		p, err := parseProposal("osmosis-1", raw)
		require.NoError(t, err)
		assert.Equal(t, "Proposal #7", p.Title)
		assert.Equal(t, "No description available", p.Description)
	})

	t.Run("uses content type as title fallback", func(t *testing.T) {
		raw := rawProposal{
			ProposalID: "8",
			Content:    &rawContent{Type: "/cosmos.gov.v1beta1.TextProposal"},
			Status:     "PROPOSAL_STATUS_VOTING_PERIOD",
		}

		p, err := parseProposal("osmosis-1", raw)
		require.NoError(t, err)
		assert.Equal(t, "/cosmos.gov.v1beta1.TextProposal", p.Title)
	})

	t.Run("truncates oversized fields", func(t *testing.T) {
		raw := rawProposal{
			ProposalID: "9",
			Content: &rawContent{
				Title:       strings.Repeat("t", 500),
				Description: strings.Repeat("d", 5000),
			},
			Status: "PROPOSAL_STATUS_VOTING_PERIOD",
		}

		p, err := parseProposal("juno-1", raw)
		require.NoError(t, err)
		assert.Len(t, p.Title, maxTitleLen)
		assert.Len(t, p.Description, maxDescriptionLen)
	})

	t.Run("truncates multi-byte text on a rune boundary", func(t *testing.T) {
		// The boundary falls one byte into the first three-byte rune
		raw := rawProposal{
			ProposalID: "10",
			Content: &rawContent{
				Title:       strings.Repeat("t", maxTitleLen-1) + "世界",
				Description: strings.Repeat("d", maxDescriptionLen-1) + "世界",
			},
			Status: "PROPOSAL_STATUS_VOTING_PERIOD",
		}

		p, err := parseProposal("juno-1", raw)
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(p.Title))
		assert.True(t, utf8.ValidString(p.Description))
		assert.Equal(t, strings.Repeat("t", maxTitleLen-1), p.Title)
		assert.Equal(t, strings.Repeat("d", maxDescriptionLen-1), p.Description)
	})

	t.Run("rejects bad id and status", func(t *testing.T) {
		_, err := parseProposal("juno-1", rawProposal{ProposalID: "not-a-number", Status: "PROPOSAL_STATUS_PASSED"})
		assert.Error(t, err)

		_, err = parseProposal("juno-1", rawProposal{ProposalID: "1", Status: "bogus"})
		assert.Error(t, err)
	})
}

func TestParseTimestamp(t *testing.T) {
	assert.Nil(t, parseTimestamp(""))
	assert.Nil(t, parseTimestamp("not a timestamp"))
	// Year 1 means unset on some chains
	assert.Nil(t, parseTimestamp("0001-01-01T00:00:00Z"))

	ts := parseTimestamp("2026-08-24T12:00:00Z")
	require.NotNil(t, ts)
	assert.Equal(t, 2026, ts.Year())
}
