package summarize

import (
	"context"
	"errors"

	"github.com/condenselabs/condense/pkg/concurrent"
)

// UnavailableSectionText substitutes for a batch whose summarization
// exhausted its retries under the BestEffort policy.
const UnavailableSectionText = "[summarization unavailable for this section]"

// mapPhase summarizes every batch concurrently, bounded by MaxConcurrency.
// Partials come back ordered by batch index regardless of completion order.
//
// Under FailFast (the default) the first exhausted batch cancels in-flight
// siblings and surfaces a *MapPhaseError naming that batch. Under BestEffort
// the failed batch is replaced with UnavailableSectionText and the phase
// keeps going; only caller cancellation aborts it.
func (s *Summarizer) mapPhase(ctx context.Context, batches []Batch, query string) ([]PartialSummary, error) {
	mctx, cancel := context.WithCancel(ctx)
	defer cancel()

	partials, errs := concurrent.ParallelMap(mctx, batches, func(_ int, b Batch) (PartialSummary, error) {
		text, err := generateWithRetry(mctx, s.client, MapPrompt(b, query), s.retry)
		if err != nil {
			if s.policy == BestEffort && !errors.Is(err, context.Canceled) {
				return PartialSummary{BatchIndex: b.Index, Text: UnavailableSectionText}, nil
			}
			if s.policy == FailFast {
				cancel() // abandon in-flight siblings
			}
			return PartialSummary{}, err
		}
		return PartialSummary{BatchIndex: b.Index, Text: text}, nil
	}, s.maxConcurrency)

	// The root cause is the first non-cancellation failure; sibling slots
	// only carry context.Canceled after a fail-fast abort.
	for i, err := range errs {
		if err == nil || errors.Is(err, context.Canceled) {
			continue
		}
		return nil, &MapPhaseError{BatchIndex: i, Err: err}
	}
	for _, err := range errs {
		if err != nil {
			return nil, err // caller cancellation
		}
	}
	return partials, nil
}
