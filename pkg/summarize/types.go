package summarize

// DocumentEntry is one pre-extracted excerpt handed to the summarizer.
// Entries are never mutated; they live for the duration of one request.
type DocumentEntry struct {
	Metadata map[string]string // file name, source URL, tags, ...
	Score    float64           // retrieval relevance score
	Content  string
}

// Batch is a contiguous, order-preserving slice of the input entries.
// Concatenating all batches in index order reproduces the input exactly.
type Batch struct {
	Index   int
	Entries []DocumentEntry
}

// PartialSummary is the map-phase output for a single batch. BatchIndex keys
// the ordering of partials in the reduce prompt, independent of which batch
// finished generating first.
type PartialSummary struct {
	BatchIndex int
	Text       string
}
