package handler

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// ViewController renders rows and exposes the per-row hooks. It is
// implemented by *view.Controller.
type ViewController interface {
	Render(ctx context.Context, f models.Filter) ([]models.Row, error)
	Add(ctx context.Context, text string, f models.Filter) ([]models.Row, error)
	Toggle(ctx context.Context, id int64, f models.Filter) ([]models.Row, error)
	Delete(ctx context.Context, id int64, f models.Filter) ([]models.Row, error)
}
