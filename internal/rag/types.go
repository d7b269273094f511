package rag

// Answer is the result of one retrieval-augmented query.
type Answer struct {
	// Answer is the generated answer text.
	Answer string `json:"answer"`
	// Sources are the ids of the notes/documents the retrieved chunks came
	// from, deduplicated, in retrieval rank order.
	Sources []string `json:"sources"`
}
