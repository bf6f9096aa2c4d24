package chain

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrPermanent marks a non-retryable remote failure (4xx other than 429).
	ErrPermanent = errors.New("permanent chain error")

	// ErrRateLimited marks a 429 response. Retryable, but with a minimum
	// delay before the next attempt.
	ErrRateLimited = errors.New("rate limited")

	// ErrNoEndpoints indicates the chain has no usable endpoints left after
	// exhausting all retry attempts.
	ErrNoEndpoints = errors.New("all endpoints failed")
)

// HTTPError carries the status code of a failed REST call for classification.
type HTTPError struct {
	Endpoint   string
	StatusCode int
}

// Error returns the formatted error message
func (e *HTTPError) Error() string {
	return fmt.Sprintf("endpoint %s returned HTTP %d", e.Endpoint, e.StatusCode)
}

// classify wraps an HTTP status into the retry taxonomy.
// 429 is rate-limited, other 4xx are permanent, everything else transient.
func classify(endpoint string, statusCode int) error {
	httpErr := &HTTPError{Endpoint: endpoint, StatusCode: statusCode}
	switch {
	case statusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ErrRateLimited, httpErr)
	case statusCode >= 400 && statusCode < 500:
		return fmt.Errorf("%w: %v", ErrPermanent, httpErr)
	default:
		return httpErr
	}
}

// IsPermanent reports whether the error should not be retried.
// Context cancellation is permanent from the caller's point of view.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrPermanent) ||
		errors.Is(err, context.Canceled)
}

// IsRateLimited reports whether the error is a 429.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
