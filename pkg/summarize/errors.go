package summarize

import (
	"errors"
	"fmt"
)

// Error classification for the generation boundary and the two phases.
var (
	// ErrInvalidInput marks malformed batching parameters or an empty
	// document list. Caller's fault, never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGenerationTimeout marks a generate call that produced no response
	// within the configured timeout.
	ErrGenerationTimeout = errors.New("generation timed out")

	// ErrGenerationBackend marks any non-timeout backend failure (auth,
	// rate limit, malformed response).
	ErrGenerationBackend = errors.New("generation backend failure")

	// ErrEmptyResponse marks a successful call that returned no text.
	ErrEmptyResponse = errors.New("generation returned empty response")
)

// MapPhaseError reports a batch whose summarization exhausted its retries.
type MapPhaseError struct {
	BatchIndex int
	Err        error
}

func (e *MapPhaseError) Error() string {
	return fmt.Sprintf("map phase failed for batch %d: %v", e.BatchIndex, e.Err)
}

func (e *MapPhaseError) Unwrap() error { return e.Err }

// ReducePhaseError reports a final synthesis call that exhausted its retries.
type ReducePhaseError struct {
	Err error
}

func (e *ReducePhaseError) Error() string {
	return fmt.Sprintf("reduce phase failed: %v", e.Err)
}

func (e *ReducePhaseError) Unwrap() error { return e.Err }
