package storage

import "time"

// Note represents a short note in the database. The note body itself is not
// persisted relationally; it lives in the vector store as a single chunk.
type Note struct {
	ID        string
	Title     string
	Category  string // empty when the note has no category
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChecklistItem represents a checklist entry. Status is the only field that
// changes after creation.
type ChecklistItem struct {
	ID          string
	Title       string
	Description string
	Category    string
	Status      string // one of "pending", "in_progress", "done"
	DueDate     string // RFC3339 date or empty
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Document represents an uploaded PDF. ChunkCount is how many vector chunks
// were produced from its extracted text.
type Document struct {
	ID         string
	Filename   string
	FileType   string
	UploadedAt time.Time
	ChunkCount int
}

// ChatMessage is one entry in the chat history log. Sources holds the
// deduplicated source ids for assistant messages, JSON-encoded.
type ChatMessage struct {
	ID        string
	Role      string // "user" or "assistant"
	Content   string
	Sources   string
	CreatedAt time.Time
}
