// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteStorage struct {
	kv     KeyValueStore
	key    string
	logger *logger.Logger
}

// NewNoteStorage returns a [NoteStorage] keeping the collection as one JSON
// array under key in kv.
func NewNoteStorage(kv KeyValueStore, key string, logger *logger.Logger) NoteStorage {
	return &noteStorage{
		kv:     kv,
		key:    key,
		logger: logger,
	}
}

// Load implements NoteStorage. Corrupt values are logged and read as an
// empty collection.
func (s *noteStorage) Load(ctx context.Context) (models.Collection, error) {
	notes, err := s.LoadStrict(ctx)
	if errors.Is(err, ErrCorruptState) {
		s.logger.Warn().
			Err(err).
			Str("func", "noteStorage.Load").
			Str("key", s.key).
			Msg("stored notes are unreadable, starting with an empty collection")
		return models.Collection{}, nil
	}
	return notes, err
}

// LoadStrict is Load without the corrupt-state recovery: a malformed value is
// reported as [ErrCorruptState].
func (s *noteStorage) LoadStrict(ctx context.Context) (models.Collection, error) {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read notes from store: %w", err)
	}
	if !found {
		return models.Collection{}, nil
	}

	var notes models.Collection
	if err = json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("%w (key=%s, size=%d): %w", ErrCorruptState, s.key, len(raw), err)
	}
	// a stored JSON null reads as empty
	if notes == nil {
		notes = models.Collection{}
	}

	return notes, nil
}

// Save implements NoteStorage.
func (s *noteStorage) Save(ctx context.Context, notes models.Collection) error {
	if notes == nil {
		notes = models.Collection{}
	}

	payload, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}

	if err = s.kv.Set(ctx, s.key, payload); err != nil {
		return fmt.Errorf("write notes to store: %w", err)
	}

	s.logger.Debug().
		Str("func", "noteStorage.Save").
		Int("count", len(notes)).
		Msg("notes saved")
	return nil
}
