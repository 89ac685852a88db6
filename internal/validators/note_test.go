// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNoteValidator(t *testing.T) {
	v := NewNoteValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()
	note := models.Note{ID: 1, Text: "milk"}

	assert.NoError(t, v.Validate(ctx, note))
	assert.NoError(t, v.Validate(ctx, &note))
	assert.NoError(t, v.Validate(ctx, models.Collection{note}))
	assert.ErrorIs(t, v.Validate(ctx, "milk"), ErrUnsupportedType)
}

func TestValidateNote(t *testing.T) {
	tests := []struct {
		name    string
		note    models.Note
		fields  []string
		wantErr error
	}{
		{name: "valid", note: models.Note{ID: 1, Text: "milk"}},
		{name: "zero id", note: models.Note{Text: "milk"}, wantErr: ErrInvalidID},
		{name: "negative id", note: models.Note{ID: -5, Text: "milk"}, wantErr: ErrInvalidID},
		{name: "empty text", note: models.Note{ID: 1}, wantErr: ErrEmptyText},
		{name: "whitespace text", note: models.Note{ID: 1, Text: " \t "}, wantErr: ErrEmptyText},
		{name: "text only ignores id", note: models.Note{Text: "milk"}, fields: []string{FieldText}},
		{name: "id only ignores text", note: models.Note{ID: 3}, fields: []string{FieldID}},
		{name: "unknown field", note: models.Note{ID: 1, Text: "milk"}, fields: []string{"title"}, wantErr: ErrUnknownField},
	}

	v := NewNoteValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.note, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCollection(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.Collection{}))
	})

	t.Run("stored empty text is accepted", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.Collection{{ID: 1}, {ID: 2, Text: "x"}}))
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := v.Validate(ctx, models.Collection{{ID: 1, Text: "a"}, {ID: 1, Text: "b"}})
		require.ErrorIs(t, err, ErrDuplicateID)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("invalid id", func(t *testing.T) {
		err := v.Validate(ctx, models.Collection{{ID: 0, Text: "a"}})
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("unknown field", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, models.Collection{}, FieldText), ErrUnknownField)
	})
}
