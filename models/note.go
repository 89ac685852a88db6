// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a single user-entered item with text and a completion flag.
//
// The JSON layout is the persisted format: a breaking change here breaks every
// collection already stored on disk.
type Note struct {
	// ID is unique within a collection and increases with creation time.
	ID int64 `json:"id"`

	// Text is the trimmed, non-empty note body. It is validated by the caller
	// before creation and never re-validated afterwards.
	Text string `json:"text"`

	// Completed is false on creation and flipped by the toggle action.
	Completed bool `json:"completed"`
}

// Collection is the full ordered set of notes. Insertion order is preserved;
// deletions never reorder the remaining notes.
type Collection []Note

// MaxID returns the largest id in the collection, or 0 when it is empty.
func (c Collection) MaxID() int64 {
	var maxID int64
	for _, n := range c {
		if n.ID > maxID {
			maxID = n.ID
		}
	}
	return maxID
}
