// Package chain provides uniform REST access to one Cosmos SDK chain:
// list active governance proposals and fetch single proposals, with
// endpoint rotation, retry with backoff, and per-endpoint circuit breaking.
package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/govwatcher/govwatcher/pkg/config"
	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/sony/gobreaker"
)

const (
	// attemptTimeout bounds one HTTP request
	attemptTimeout = 10 * time.Second
	// listTimeout bounds a full ListActive across all retries
	listTimeout = 60 * time.Second

	// Retry schedule: 500ms doubling to 8s, jittered, 5 attempts total
	maxAttempts       = 5
	backoffInitial    = 500 * time.Millisecond
	backoffMax        = 8 * time.Second
	backoffJitter     = 0.2
	rateLimitMinDelay = 30 * time.Second

	// paginationLimit is passed to the gov module listing endpoint
	paginationLimit = 500

	proposalsPath = "/cosmos/gov/v1beta1/proposals"
	userAgent     = "govwatcher/1.0"
)

// Client provides access to one chain's governance REST API.
// Stateless beyond endpoint rotation; safe for concurrent use.
type Client struct {
	chainID    string
	endpoints  []string
	breakers   []*gobreaker.CircuitBreaker
	httpClient *http.Client
	next       atomic.Uint64
	logger     *slog.Logger
}

// NewClient creates a chain client from the chain's configuration.
func NewClient(chainID string, cfg *config.ChainConfig) *Client {
	breakers := make([]*gobreaker.CircuitBreaker, len(cfg.Endpoints))
	for i, endpoint := range cfg.Endpoints {
		breakers[i] = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    fmt.Sprintf("%s:%s", chainID, endpoint),
			Timeout: 60 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		})
	}

	return &Client{
		chainID:    chainID,
		endpoints:  cfg.Endpoints,
		breakers:   breakers,
		httpClient: &http.Client{Timeout: attemptTimeout},
		logger:     slog.With("chain_id", chainID),
	}
}

// ChainID returns the chain this client talks to.
func (c *Client) ChainID() string {
	return c.chainID
}

// ListActive returns all proposals whose status is not terminal.
// Proposals that fail to parse are skipped with a warning so that one
// malformed entry does not hide the rest of the listing.
func (c *Client) ListActive(ctx context.Context) ([]models.ProposalSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	path := fmt.Sprintf("%s?pagination.limit=%d", proposalsPath, paginationLimit)

	var resp proposalsResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("list proposals for %s: %w", c.chainID, err)
	}

	summaries := make([]models.ProposalSummary, 0, len(resp.Proposals))
	for _, raw := range resp.Proposals {
		p, err := parseProposal(c.chainID, raw)
		if err != nil {
			c.logger.Warn("Skipping unparseable proposal",
				"proposal_id", raw.ProposalID,
				"error", err)
			continue
		}
		if p.Status.IsTerminal() {
			continue
		}
		summaries = append(summaries, models.ProposalSummary{
			ChainID:    c.chainID,
			ProposalID: p.ProposalID,
			Status:     p.Status,
		})
	}

	return summaries, nil
}

// Fetch returns the full proposal, including title, description, and
// timestamps.
func (c *Client) Fetch(ctx context.Context, proposalID int64) (*models.Proposal, error) {
	path := fmt.Sprintf("%s/%d", proposalsPath, proposalID)

	var resp proposalResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("fetch proposal %s/%d: %w", c.chainID, proposalID, err)
	}

	p, err := parseProposal(c.chainID, resp.Proposal)
	if err != nil {
		return nil, fmt.Errorf("%w: proposal %s/%d: %v", ErrPermanent, c.chainID, proposalID, err)
	}
	return &p, nil
}

// getJSON performs a GET with retries. Attempts cycle endpoints
// round-robin so a single failing node does not monopolize retries; the
// rotation offset is shared across calls so healthy endpoints get used.
func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = backoffInitial
	b.MaxInterval = backoffMax
	b.RandomizationFactor = backoffJitter
	b.Multiplier = 2
	b.MaxElapsedTime = 0 // attempts bound the loop, not elapsed time
	b.Reset()

	start := c.next.Add(1) - 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		idx := int((start + uint64(attempt)) % uint64(len(c.endpoints)))

		err := c.request(ctx, idx, path, target)
		if err == nil {
			return nil
		}
		lastErr = err

		if IsPermanent(err) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if attempt == maxAttempts-1 {
			break
		}

		wait := b.NextBackOff()
		if IsRateLimited(err) && wait < rateLimitMinDelay {
			wait = rateLimitMinDelay
		}

		c.logger.Warn("Chain request failed, retrying",
			"endpoint", c.endpoints[idx],
			"attempt", attempt+1,
			"wait", wait,
			"error", err)

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return fmt.Errorf("%w: %v", ErrNoEndpoints, lastErr)
}

// request performs one attempt against one endpoint through its breaker.
// A tripped breaker surfaces as a transient error and rotation moves on.
func (c *Client) request(ctx context.Context, idx int, path string, target any) error {
	endpoint := c.endpoints[idx]

	_, err := c.breakers[idx].Execute(func() (any, error) {
		reqCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint+path, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, classify(endpoint, resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return nil, fmt.Errorf("decode response from %s: %w", endpoint, err)
		}
		return nil, nil
	})
	return err
}
