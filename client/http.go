package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// RetryPolicy bounds transport retries. Only idempotent requests retry
// by default; the broadcast POST opts in via RetryBroadcast since
// resubmitting a transaction is not naturally idempotent (the sequence
// number makes duplicates fail chain-side, but the first submission may
// have landed).
type RetryPolicy struct {
	MaxAttempts    int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	RequestTimeout time.Duration
	RetryBroadcast bool
}

// DefaultRetryPolicy mirrors the transport defaults used across the
// SDK's REST calls.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    4,
		BaseDelay:      250 * time.Millisecond,
		MaxDelay:       4 * time.Second,
		RequestTimeout: 15 * time.Second,
	}
}

// Statuses worth retrying: rate limiting and transient upstream
// failures. Everything else is either success or a real error.
var retryableStatus = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Get performs a GET against the network's REST endpoint and decodes
// the JSON response into out. GETs are idempotent and retried per
// policy.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, true)
}

func (c *Client) post(ctx context.Context, path string, body, out any, retryable bool) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request body")
	}
	return c.do(ctx, http.MethodPost, path, payload, out, retryable)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any, retryable bool) error {
	attempts := 1
	if retryable {
		attempts = c.retry.MaxAttempts
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := backoffDelay(c.retry, attempt)
			c.log.Debug().
				Str("method", method).
				Str("path", path).
				Int("attempt", attempt).
				Dur("delay", delay).
				Msg("Retrying request")
			select {
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "request cancelled")
			case <-time.After(delay):
			}
		}

		done, err := c.attempt(ctx, method, path, body, out)
		if done {
			return err
		}
		lastErr = err
	}
	return lastErr
}

// attempt runs one request. The bool result reports whether the
// outcome is final (success or a non-retryable failure).
func (c *Client) attempt(ctx context.Context, method, path string, body []byte, out any) (bool, error) {
	// The per-request timeout composes with the caller's context; the
	// shorter of the two wins.
	reqCtx, cancel := context.WithTimeout(ctx, c.retry.RequestTimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, c.net.RestURL+path, reader)
	if err != nil {
		return true, errors.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return true, errors.Wrap(ctx.Err(), "request cancelled")
		}
		return false, errors.Wrapf(err, "%s %s failed", method, path)
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s response", path)
	}

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		if out == nil {
			return true, nil
		}
		if err := json.Unmarshal(payload, out); err != nil {
			return true, errors.Wrapf(err, "failed to decode %s response", path)
		}
		return true, nil
	}

	err = errors.Errorf("%s %s returned status %d: %s", method, path, res.StatusCode, payload)
	if retryableStatus[res.StatusCode] {
		return false, err
	}
	return true, err
}

// backoffDelay is exponential with jitter: half the computed delay is
// fixed, the other half uniformly random.
func backoffDelay(policy RetryPolicy, attempt int) time.Duration {
	delay := policy.BaseDelay << (attempt - 1)
	if delay > policy.MaxDelay {
		delay = policy.MaxDelay
	}
	half := delay / 2
	return half + time.Duration(rand.Int63n(int64(half)+1))
}
