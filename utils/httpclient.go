// File: utils/httpclient.go
package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrUnauthorized indicates the upstream API rejected our credentials.
// This is a configuration failure and is never retried.
var ErrUnauthorized = errors.New("unauthorized: upstream API rejected credentials")

// RetryPolicy controls retry behaviour for aggregator API calls.
// Rate-limited responses (HTTP 429) and transport failures are retried with
// exponential backoff, doubling from BackoffBase.
type RetryPolicy struct {
	MaxAttempts int
	BackoffBase time.Duration
}

// DefaultRetryPolicy returns the policy used by the aggregator clients.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BackoffBase: 1000 * time.Millisecond}
}

// DoWithRetry executes an HTTP request built by newReq, retrying on HTTP 429
// and transport errors per the policy. HTTP 401 returns ErrUnauthorized
// immediately. Any other response is returned to the caller unread.
func DoWithRetry(ctx context.Context, client *http.Client, newReq func() (*http.Request, error), policy RetryPolicy) (*http.Response, error) {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 3
	}
	if policy.BackoffBase <= 0 {
		policy.BackoffBase = 1000 * time.Millisecond
	}

	logger := GetLogger()
	backoff := policy.BackoffBase
	var lastErr error

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		req, err := newReq()
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req = req.WithContext(ctx)

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
		} else {
			switch {
			case resp.StatusCode == http.StatusUnauthorized:
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				return nil, ErrUnauthorized
			case resp.StatusCode == http.StatusTooManyRequests:
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				lastErr = fmt.Errorf("rate limited by upstream (HTTP 429)")
			default:
				return resp, nil
			}
		}

		if attempt == policy.MaxAttempts {
			break
		}
		logger.Warn("retrying upstream request",
			zap.String("url", req.URL.String()),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(lastErr))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", policy.MaxAttempts, lastErr)
}
