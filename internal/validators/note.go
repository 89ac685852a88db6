package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	FieldID    = "id"
	FieldText  = "text"
	FieldNotes = "notes"
)

type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.Collection:
		return v.validateCollection(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if note.ID <= 0 {
				return ErrInvalidID
			}
		case FieldText:
			if strings.TrimSpace(note.Text) == "" {
				return ErrEmptyText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCollection checks ids only: stored texts are trusted as written.
func (v *NoteValidator) validateCollection(ctx context.Context, notes models.Collection, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldNotes:
			seen := make(map[int64]struct{}, len(notes))
			for i, note := range notes {
				if err := v.validateNote(ctx, note, FieldID); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
				if _, dup := seen[note.ID]; dup {
					return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateID)
				}
				seen[note.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
