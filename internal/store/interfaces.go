package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the low-level local persistence facility: opaque values
// under string keys. A single Set is atomic for its key.
type KeyValueStore interface {
	// Get returns the value stored under key. found is false when the key
	// is absent; err reports store failures only.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
}

// NoteStorage reads and writes the whole note collection as a single value.
type NoteStorage interface {
	// Load returns the persisted collection. A missing or malformed value
	// yields an empty collection and no error.
	Load(ctx context.Context) (models.Collection, error)
	// Save serializes the full collection and overwrites the stored value.
	Save(ctx context.Context, notes models.Collection) error
}
