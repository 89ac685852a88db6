package models

// Filter describes which notes are currently visible. It is computed on demand
// from the UI state and never persisted.
type Filter struct {
	// Query is matched case-insensitively as a substring of the note text.
	// An empty query matches every note.
	Query string

	// CompletedOnly narrows the view to completed notes. When false nothing is
	// excluded by completion state.
	CompletedOnly bool
}
