// Package summarize condenses pre-extracted document excerpts into one
// coherent summary, optionally focused on a user query, using a two-phase
// MapReduce strategy: excerpts are grouped into fixed-size batches, each
// batch is summarized by an independent concurrent generation call (map), and
// the partial summaries are merged by a single final call (reduce).
package summarize

import (
	"context"
	"errors"
	"time"

	"github.com/condenselabs/condense/pkg/models"
)

const (
	DefaultBatchSize   = 7
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 200 * time.Millisecond
	DefaultTimeout     = 60 * time.Second
)

// FailurePolicy selects how the map phase treats a batch whose retries are
// exhausted.
type FailurePolicy int

const (
	// FailFast aborts the whole map phase, cancelling in-flight siblings.
	// This is the default: a missing section never goes unnoticed.
	FailFast FailurePolicy = iota
	// BestEffort substitutes a sentinel partial for the failed batch and
	// continues with the rest.
	BestEffort
)

// Options configure a new Summarizer.
type Options struct {
	Backend        models.Generator // required
	BatchSize      int              // entries per batch; DefaultBatchSize when <= 0
	MaxConcurrency int              // max in-flight map calls; <= 0 means one per batch
	MaxAttempts    int              // attempts per generate call; DefaultMaxAttempts when <= 0
	BaseDelay      time.Duration    // backoff base; DefaultBaseDelay when <= 0
	Jitter         time.Duration    // extra random backoff per attempt
	Timeout        time.Duration    // per-call timeout; DefaultTimeout when <= 0
	Policy         FailurePolicy
}

// Summarizer sequences batching, the map phase, and the reduce phase. It
// holds no state across calls; everything lives for one Summarize invocation.
type Summarizer struct {
	client         *Client
	batchSize      int
	maxConcurrency int
	retry          retryOptions
	policy         FailurePolicy
}

// New creates a Summarizer with the provided options.
func New(opts Options) (*Summarizer, error) {
	if opts.Backend == nil {
		return nil, errors.New("summarizer requires a generation backend")
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	baseDelay := opts.BaseDelay
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}

	return &Summarizer{
		client:         NewClient(opts.Backend, opts.Timeout),
		batchSize:      batchSize,
		maxConcurrency: opts.MaxConcurrency,
		retry: retryOptions{
			MaxAttempts: maxAttempts,
			BaseDelay:   baseDelay,
			Jitter:      opts.Jitter,
		},
		policy: opts.Policy,
	}, nil
}

// Summarize condenses entries into one final summary. An empty query asks
// for a general summary. Component failures propagate unchanged.
func (s *Summarizer) Summarize(ctx context.Context, entries []DocumentEntry, query string) (string, error) {
	batches, err := SplitBatches(entries, s.batchSize)
	if err != nil {
		return "", err
	}

	partials, err := s.mapPhase(ctx, batches, query)
	if err != nil {
		return "", err
	}

	return s.reducePhase(ctx, partials, query)
}
