package summarize

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/condenselabs/condense/pkg/models"
)

// Client is the generation boundary used by the map and reduce executors. It
// wraps a backend Generator with a bounded per-call timeout and classifies
// failures, but embeds no retry policy of its own. Safe for concurrent use as
// long as the wrapped backend is.
type Client struct {
	backend models.Generator
	timeout time.Duration
}

func NewClient(backend models.Generator, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{backend: backend, timeout: timeout}
}

// Generate issues a single generation call. Failures map onto the boundary
// taxonomy: ErrGenerationTimeout, ErrGenerationBackend, ErrEmptyResponse.
// Caller cancellation passes through unclassified.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.backend.Generate(ctx, prompt)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			return "", err
		case errors.Is(err, context.DeadlineExceeded):
			return "", fmt.Errorf("%w after %s", ErrGenerationTimeout, c.timeout)
		default:
			return "", fmt.Errorf("%w: %v", ErrGenerationBackend, err)
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// retryOptions control the executors' retry behaviour around Generate calls.
type retryOptions struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Jitter      time.Duration
}

// generateWithRetry retries transient boundary failures with exponential
// backoff until the attempt budget is spent. It never retries caller
// cancellation.
func generateWithRetry(ctx context.Context, client *Client, prompt string, opts retryOptions) (string, error) {
	attempts := 0
	for {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		attempts++
		text, err := client.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		if !retryable(err) || attempts >= opts.MaxAttempts {
			return "", err
		}
		// jittered exponential backoff
		delay := opts.BaseDelay << (attempts - 1)
		if opts.Jitter > 0 {
			delay += time.Duration(rand.Int63n(int64(opts.Jitter)))
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}
}

func retryable(err error) bool {
	return errors.Is(err, ErrGenerationTimeout) ||
		errors.Is(err, ErrGenerationBackend) ||
		errors.Is(err, ErrEmptyResponse)
}
