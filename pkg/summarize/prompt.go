package summarize

import (
	"sort"
	"strconv"
	"strings"
)

const (
	entrySeparator   = "\n\n--- (New Chunk in Batch) ---\n\n"
	partialSeparator = "\n\n---\n\n"
	lengthGuard      = "IMPORTANT: The summary must not exceed 5000 characters."
)

// MapPrompt renders the instruction for summarizing one batch. Serialization
// is deterministic: identical (batch, query) input yields a byte-identical
// prompt. An empty query asks for a neutral summary of the batch.
func MapPrompt(b Batch, query string) string {
	var sb strings.Builder

	if query != "" {
		sb.WriteString("This is a batch of content from a larger document. Summarize this specific batch while paying close attention to any information that could help answer the following user question. Extract all relevant details related to the question.\n")
		sb.WriteString(lengthGuard)
		sb.WriteString("\nUSER'S QUESTION: ")
		sb.WriteString(strconv.Quote(query))
		sb.WriteString("\n\n--- CONTENT OF THIS BATCH ---\n")
		writeEntries(&sb, b.Entries)
		sb.WriteString("\n--- QUERY-FOCUSED SUMMARY OF THIS BATCH ---")
	} else {
		sb.WriteString("This is a batch of content from a larger document. Summarize the key points from this batch concisely. Focus on the main requirements, specifications, or objectives mentioned.\n")
		sb.WriteString(lengthGuard)
		sb.WriteString("\n\n--- CONTENT ---\n")
		writeEntries(&sb, b.Entries)
		sb.WriteString("\n--- GENERAL SUMMARY ---")
	}

	return sb.String()
}

// ReducePrompt renders the instruction for synthesizing the ordered partial
// summaries into one final answer. When the query reads like a search or
// discovery question, the model is asked to keep per-source attribution.
func ReducePrompt(partials []PartialSummary, query string) string {
	var sb strings.Builder

	if query != "" {
		sb.WriteString("Based on the following query-focused summaries, synthesize them into a single, coherent, and complete answer to the user's question.\n")
		if searchIntent(query) {
			sb.WriteString("The question is about locating information: name the specific source (file name or URL) supporting each point of the answer.\n")
		}
		sb.WriteString(lengthGuard)
		sb.WriteString("\nUSER'S QUESTION: ")
		sb.WriteString(strconv.Quote(query))
		sb.WriteString("\n\n--- QUERY-FOCUSED SUMMARIES ---\n")
		writePartials(&sb, partials)
		sb.WriteString("\n--- FINAL DETAILED ANSWER ---")
	} else {
		sb.WriteString("From the following general summaries, compile a comprehensive and easy-to-understand executive summary. Cover the main topics, objectives, and conclusions of the material.\nComplete the answer in markdown format, easy to read with bullet points.\n")
		sb.WriteString(lengthGuard)
		sb.WriteString("\n\n--- GENERAL SUMMARIES ---\n")
		writePartials(&sb, partials)
		sb.WriteString("\n--- FINAL EXECUTIVE SUMMARY ---")
	}

	return sb.String()
}

// writeEntries serializes entries in batch order. Metadata keys are sorted so
// that re-rendering the same batch is byte-stable. Entries with empty content
// still render their metadata block.
func writeEntries(sb *strings.Builder, entries []DocumentEntry) {
	for i, e := range entries {
		if i > 0 {
			sb.WriteString(entrySeparator)
		}

		keys := make([]string, 0, len(e.Metadata))
		for k := range e.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(k)
			sb.WriteString(": ")
			sb.WriteString(e.Metadata[k])
			sb.WriteString("\n")
		}
		if e.Score != 0 {
			sb.WriteString("relevance_score: ")
			sb.WriteString(strconv.FormatFloat(e.Score, 'g', -1, 64))
			sb.WriteString("\n")
		}
		sb.WriteString(e.Content)
	}
}

func writePartials(sb *strings.Builder, partials []PartialSummary) {
	for i, p := range partials {
		if i > 0 {
			sb.WriteString(partialSeparator)
		}
		sb.WriteString(p.Text)
	}
}

var searchIntentMarkers = []string{
	"which ", "who ", "where ", "find ", "list ", "locate ",
	"what papers", "what documents", "what sources", "what files",
}

func searchIntent(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query)) + " "
	for _, marker := range searchIntentMarkers {
		if strings.Contains(q, marker) {
			return true
		}
	}
	return false
}
