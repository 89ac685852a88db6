package models

// RowStyleCompleted is the style marker applied to rows of completed notes.
const RowStyleCompleted = "completed"

// Row is a declarative descriptor of one visible note. The rendering layer
// draws rows as-is and reports actions back by row ID.
type Row struct {
	ID          int64
	Text        string
	Completed   bool
	ToggleLabel string
	DeleteLabel string
	Style       string
}
