package service

import "github.com/MKhiriev/go-note-keeper/internal/validators"

// ErrEmptyNoteText is returned by [NoteService.Add] when text is empty after
// trimming. The input controller filters such input before it gets here.
var ErrEmptyNoteText = validators.ErrEmptyText
