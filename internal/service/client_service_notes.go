package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteService struct {
	storage   store.NoteStorage
	ids       IDGenerator
	validator validators.Validator
}

// NewNoteService returns a [NoteService] over the injected storage adapter.
func NewNoteService(storage store.NoteStorage, ids IDGenerator) NoteService {
	return &noteService{
		storage:   storage,
		ids:       ids,
		validator: validators.NewNoteValidator(),
	}
}

func (s *noteService) Add(ctx context.Context, text string) (models.Note, error) {
	if err := s.validator.Validate(ctx, models.Note{Text: text}, validators.FieldText); err != nil {
		return models.Note{}, err
	}

	notes, err := s.storage.Load(ctx)
	if err != nil {
		return models.Note{}, fmt.Errorf("load notes for add: %w", err)
	}

	note := models.Note{
		ID:        s.ids.Next(notes.MaxID()),
		Text:      text,
		Completed: false,
	}
	notes = append(notes, note)

	if err = s.validator.Validate(ctx, notes, validators.FieldNotes); err != nil {
		return models.Note{}, fmt.Errorf("generated id %d: %w", note.ID, err)
	}

	if err = s.storage.Save(ctx, notes); err != nil {
		return models.Note{}, fmt.Errorf("save notes after add: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "noteService.Add").
		Int64("note_id", note.ID).
		Int("total", len(notes)).
		Msg("note added")

	return note, nil
}

func (s *noteService) Remove(ctx context.Context, id int64) error {
	notes, err := s.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load notes for remove: %w", err)
	}

	kept := make(models.Collection, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}

	if err = s.storage.Save(ctx, kept); err != nil {
		return fmt.Errorf("save notes after remove: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "noteService.Remove").
		Int64("note_id", id).
		Bool("found", len(kept) != len(notes)).
		Msg("note removed")

	return nil
}

func (s *noteService) ToggleCompleted(ctx context.Context, id int64) error {
	notes, err := s.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load notes for toggle: %w", err)
	}

	found := false
	for i := range notes {
		if notes[i].ID == id {
			notes[i].Completed = !notes[i].Completed
			found = true
		}
	}

	if err = s.storage.Save(ctx, notes); err != nil {
		return fmt.Errorf("save notes after toggle: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "noteService.ToggleCompleted").
		Int64("note_id", id).
		Bool("found", found).
		Msg("note toggled")

	return nil
}

func (s *noteService) List(ctx context.Context) (models.Collection, error) {
	notes, err := s.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notes for list: %w", err)
	}
	return notes, nil
}
