package notify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govwatcher/govwatcher/pkg/config"
	"github.com/govwatcher/govwatcher/pkg/models"
)

func TestSubject(t *testing.T) {
	subject := Subject("Cosmos Hub", 123, "Increase validator set")
	assert.Equal(t, "[Cosmos Hub] Proposal #123: Increase validator set", subject)
}

func TestBody(t *testing.T) {
	adv := models.Advice{
		ChainID:      "cosmoshub-4",
		ProposalID:   123,
		SubscriberID: "sub-1",
		Decision:     models.DecisionYes,
		Rationale:    "Assessed risk LOW is within your MEDIUM risk tolerance.\nSolid proposal.",
		Confidence:   0.825,
		CreatedAt:    time.Now(),
	}

	body := Body(adv, "Cosmos Hub", "Increase validator set", "https://govwatcher.example.com")
	assert.Contains(t, body, "Governance Voting Recommendation - Cosmos Hub")
	assert.Contains(t, body, "Proposal #123: Increase validator set")
	assert.Contains(t, body, "RECOMMENDATION: YES")
	assert.Contains(t, body, "Confidence: 82.5%")
	assert.Contains(t, body, "ANALYSIS:\nAssessed risk LOW is within your MEDIUM risk tolerance.")
	assert.Contains(t, body, "Visit https://govwatcher.example.com to manage your subscription")
}

func TestBodyWithoutServiceURL(t *testing.T) {
	adv := models.Advice{ProposalID: 1, Decision: models.DecisionAbstain, Rationale: "r"}

	body := Body(adv, "Test Chain", "Title", "")
	assert.NotContains(t, body, "Visit ")
	assert.Contains(t, body, "RECOMMENDATION: ABSTAIN")
}

func TestLogNotifierSend(t *testing.T) {
	n := NewLogNotifier()
	id, err := n.Send(context.Background(), "#governance", "subject", "body")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	second, err := n.Send(context.Background(), "#governance", "subject", "body")
	require.NoError(t, err)
	assert.NotEqual(t, id, second)
}

func TestSMTPNotifierRejectsInvalidRecipient(t *testing.T) {
	n := NewSMTPNotifier("localhost:2525", "govwatcher@example.com")

	_, err := n.Send(context.Background(), "not-an-address", "subject", "body")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermanent)
	assert.False(t, IsTransient(err))
}

func TestSMTPNotifierHonorsCancelledContext(t *testing.T) {
	n := NewSMTPNotifier("localhost:2525", "govwatcher@example.com")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := n.Send(ctx, "user@example.com", "subject", "body")
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestClassifySMTPErr(t *testing.T) {
	var netErr error = &net.OpError{Op: "dial", Err: errors.New("connection refused")}
	assert.True(t, IsTransient(classifySMTPErr(netErr)))

	protoErr := errors.New("550 mailbox unavailable")
	classified := classifySMTPErr(protoErr)
	assert.False(t, IsTransient(classified))
	assert.ErrorIs(t, classified, ErrPermanent)
}

func TestSlackNotifierSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "#governance", r.Form.Get("channel"))
		fmt.Fprint(w, `{"ok": true, "channel": "C123", "ts": "1693000000.000100"}`)
	}))
	defer srv.Close()

	n := NewSlackNotifierWithAPIURL("xoxb-test", "#default", srv.URL+"/")
	id, err := n.Send(context.Background(), "#governance", "subject", "body")
	require.NoError(t, err)
	assert.Equal(t, "1693000000.000100", id)
}

func TestSlackNotifierFallsBackToDefaultChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "#default", r.Form.Get("channel"))
		fmt.Fprint(w, `{"ok": true, "channel": "C123", "ts": "1.2"}`)
	}))
	defer srv.Close()

	n := NewSlackNotifierWithAPIURL("xoxb-test", "#default", srv.URL+"/")
	_, err := n.Send(context.Background(), "", "subject", "body")
	require.NoError(t, err)
}

func TestClassifySlackErr(t *testing.T) {
	rateLimited := &goslack.RateLimitedError{RetryAfter: 30 * time.Second}
	assert.True(t, IsTransient(classifySlackErr(rateLimited)))

	for _, code := range slackPermanentErrs {
		err := classifySlackErr(errors.New(code))
		assert.ErrorIs(t, err, ErrPermanent, code)
	}

	assert.True(t, IsTransient(classifySlackErr(errors.New("internal_error"))),
		"unknown API errors default to retryable")
}

func TestNewSelectsTransport(t *testing.T) {
	n, err := New(&config.NotifyConfig{Transport: config.NotifierTypeLog})
	require.NoError(t, err)
	assert.IsType(t, &LogNotifier{}, n)

	_, err = New(&config.NotifyConfig{Transport: "carrier-pigeon"})
	assert.Error(t, err)
}
