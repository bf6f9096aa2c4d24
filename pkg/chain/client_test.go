package chain

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/govwatcher/govwatcher/pkg/config"
	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingBody = `{
  "proposals": [
    {
      "proposal_id": "1",
      "content": {"@type": "/cosmos.gov.v1beta1.TextProposal", "title": "Signal A", "description": "d"},
      "status": "PROPOSAL_STATUS_VOTING_PERIOD"
    },
    {
      "proposal_id": "2",
      "content": {"title": "Old one", "description": "d"},
      "status": "PROPOSAL_STATUS_PASSED"
    },
    {
      "proposal_id": "3",
      "content": {"title": "Deposit B", "description": "d"},
      "status": "PROPOSAL_STATUS_DEPOSIT_PERIOD"
    },
    {
      "proposal_id": "broken",
      "status": "PROPOSAL_STATUS_VOTING_PERIOD"
    }
  ],
  "pagination": {"next_key": "", "total": "4"}
}`

func newTestClient(endpoints ...string) *Client {
	return NewClient("testchain-1", &config.ChainConfig{
		Name:      "Test Chain",
		Endpoints: endpoints,
	})
}

func TestClientListActive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, proposalsPath, r.URL.Path)
		assert.Equal(t, "500", r.URL.Query().Get("pagination.limit"))
		fmt.Fprint(w, listingBody)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	summaries, err := client.ListActive(context.Background())
	require.NoError(t, err)

	// Terminal proposal 2 filtered, unparseable proposal dropped
	require.Len(t, summaries, 2)
	assert.Equal(t, int64(1), summaries[0].ProposalID)
	assert.Equal(t, models.StatusVoting, summaries[0].Status)
	assert.Equal(t, int64(3), summaries[1].ProposalID)
	assert.Equal(t, models.StatusDeposit, summaries[1].Status)
}

func TestClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, proposalsPath+"/42", r.URL.Path)
		fmt.Fprint(w, `{"proposal": {
			"proposal_id": "42",
			"content": {"title": "Upgrade v9", "description": "coordinated upgrade"},
			"status": "PROPOSAL_STATUS_VOTING_PERIOD",
			"voting_end_time": "2026-09-01T00:00:00Z"
		}}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	p, err := client.Fetch(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "testchain-1", p.ChainID)
	assert.Equal(t, "Upgrade v9", p.Title)
	require.NotNil(t, p.VotingEnd)
}

func TestClientRetriesTransientErrors(t *testing.T) {
	var bad, good atomic.Int32
	badSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		bad.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer badSrv.Close()
	goodSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		good.Add(1)
		fmt.Fprint(w, `{"proposal": {"proposal_id": "1", "status": "PROPOSAL_STATUS_VOTING_PERIOD"}}`)
	}))
	defer goodSrv.Close()

	// Round-robin moves off the failing endpoint on the second attempt
	client := newTestClient(badSrv.URL, goodSrv.URL)
	p, err := client.Fetch(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ProposalID)
	assert.Equal(t, int32(1), good.Load())
	assert.LessOrEqual(t, bad.Load(), int32(1))
}

func TestClientPermanentErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Fetch(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, IsPermanent(err))
	assert.Equal(t, int32(1), calls.Load(), "4xx must not be retried")
}

func TestClientUnparseableFetchIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"proposal": {"proposal_id": "oops", "status": "PROPOSAL_STATUS_PASSED"}}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Fetch(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, IsPermanent(err))
}

func TestClassify(t *testing.T) {
	assert.True(t, IsRateLimited(classify("e", http.StatusTooManyRequests)))
	assert.False(t, IsPermanent(classify("e", http.StatusTooManyRequests)))
	assert.True(t, IsPermanent(classify("e", http.StatusBadRequest)))
	assert.True(t, IsPermanent(classify("e", http.StatusForbidden)))
	assert.False(t, IsPermanent(classify("e", http.StatusInternalServerError)))
	assert.False(t, IsPermanent(classify("e", http.StatusBadGateway)))
}
