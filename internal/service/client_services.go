package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// ClientServices groups the services used by the client runtime.
type ClientServices struct {
	NoteService NoteService
}

// NewClientServices wires the services over the given storages.
func NewClientServices(storages *store.ClientStorages) *ClientServices {
	return &ClientServices{
		NoteService: NewNoteService(storages.Notes, NewClockIDGenerator()),
	}
}
