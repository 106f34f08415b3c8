package summarize

import "fmt"

// SplitBatches groups entries into batches of at most size entries, splitting
// strictly by position. The final batch may be shorter. Identical input and
// size always yield identical batch boundaries.
func SplitBatches(entries []DocumentEntry, size int) ([]Batch, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no document entries", ErrInvalidInput)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidInput, size)
	}

	batches := make([]Batch, 0, (len(entries)+size-1)/size)
	for start := 0; start < len(entries); start += size {
		end := start + size
		if end > len(entries) {
			end = len(entries)
		}
		batches = append(batches, Batch{Index: len(batches), Entries: entries[start:end]})
	}
	return batches, nil
}
