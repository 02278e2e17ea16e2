package domain

// PostingStatus is the outcome of a posting call.
type PostingStatus string

const (
	PostingPosted  PostingStatus = "posted"
	PostingSkipped PostingStatus = "skipped"
	PostingError   PostingStatus = "error"
)

// IdempotencyMode decides what happens when an entry group already has live entries.
type IdempotencyMode int

const (
	// SkipIfPosted leaves existing entries alone and reports skipped.
	SkipIfPosted IdempotencyMode = iota
	// ReplaceIfPosted soft-deletes existing entries and posts a new group.
	ReplaceIfPosted
)

// PostingResult is returned by every posting operation.
type PostingResult struct {
	Status      PostingStatus  `json:"status"`
	Source      SourceRef      `json:"source"`
	JournalType JournalType    `json:"journalType"`
	Entries     []JournalEntry `json:"entries"`
	Message     string         `json:"message,omitempty"`
}

// Skipped builds a result for an already posted group.
func Skipped(key GroupKey, msg string) *PostingResult {
	return &PostingResult{
		Status:      PostingSkipped,
		Source:      key.Source,
		JournalType: key.JournalType,
		Entries:     []JournalEntry{},
		Message:     msg,
	}
}
