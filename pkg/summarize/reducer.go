package summarize

import (
	"context"
	"errors"
)

// reducePhase issues exactly one generate call merging the ordered partials
// into the final summary, with the same retry discipline as a map call.
//
// A single partial still goes through a synthesis call rather than a
// passthrough, so query-focused framing is applied consistently.
func (s *Summarizer) reducePhase(ctx context.Context, partials []PartialSummary, query string) (string, error) {
	text, err := generateWithRetry(ctx, s.client, ReducePrompt(partials, query), s.retry)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", &ReducePhaseError{Err: err}
	}
	return text, nil
}
