package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService is the note repository. Every mutation loads the full
// collection from storage, transforms it and writes it back.
type NoteService interface {
	// Add creates a note with a fresh id and Completed=false, appends it to
	// the collection and persists the result. text must already be trimmed
	// and non-empty.
	Add(ctx context.Context, text string) (models.Note, error)

	// Remove deletes the note with the given id. An unknown id is a no-op.
	Remove(ctx context.Context, id int64) error

	// ToggleCompleted flips the Completed flag of the note with the given id.
	// An unknown id leaves the collection unchanged.
	ToggleCompleted(ctx context.Context, id int64) error

	// List returns the full, unfiltered collection.
	List(ctx context.Context) (models.Collection, error)
}

// IDGenerator issues note ids.
type IDGenerator interface {
	// Next returns an id strictly greater than maxExisting and than every id
	// it issued before.
	Next(maxExisting int64) int64
}
