package ingest

import "strings"

const (
	// DefaultChunkSize is the window width in words for document chunking.
	DefaultChunkSize = 500
	// DefaultOverlap is how many words consecutive windows share.
	DefaultOverlap = 50
)

// SplitWords splits text into overlapping word windows.
// The text is tokenized on whitespace, then a window of chunkSize words
// advances by chunkSize-overlap words per step. Windowed words are re-joined
// with single spaces and empty windows are dropped, so empty or
// whitespace-only input yields no chunks. chunkSize must be greater than
// overlap.
func SplitWords(text string, chunkSize, overlap int) []string {
	words := strings.Fields(text)
	step := chunkSize - overlap

	// Run the window at least once so short inputs still produce a chunk.
	limit := len(words)
	if limit < 1 {
		limit = 1
	}

	var chunks []string
	for start := 0; start < limit; start += step {
		end := start + chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.Join(words[start:end], " ")
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}
