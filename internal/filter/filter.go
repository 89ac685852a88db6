// Package filter computes the visible subset of a note collection.
package filter

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Apply returns the notes that pass f, keeping their relative order.
// A note passes when its text contains f.Query case-insensitively and, if
// f.CompletedOnly is set, it is completed. The result never shares memory
// with notes.
func Apply(notes models.Collection, f models.Filter) models.Collection {
	query := strings.ToLower(f.Query)

	visible := make(models.Collection, 0, len(notes))
	for _, n := range notes {
		if f.CompletedOnly && !n.Completed {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(n.Text), query) {
			continue
		}
		visible = append(visible, n)
	}

	return visible
}
