// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view turns the note collection into declarative rows.
//
// The controller owns no drawing: it lists the repository, applies the
// current filter and rebuilds the complete row list on every call. Per-row
// actions go through Toggle and Delete, which mutate by note id and re-render.
package view

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/filter"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Controller is the render/view controller.
type Controller struct {
	notes  service.NoteService
	labels Labels
}

// NewController returns a Controller rendering notes with the given labels.
func NewController(notes service.NoteService, labels Labels) *Controller {
	return &Controller{notes: notes, labels: labels}
}

// Render rebuilds the visible rows for f from the current collection.
func (c *Controller) Render(ctx context.Context, f models.Filter) ([]models.Row, error) {
	notes, err := c.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return c.Rows(filter.Apply(notes, f)), nil
}

// Rows maps already-filtered notes to rows, one per note, in order.
func (c *Controller) Rows(notes models.Collection) []models.Row {
	rows := make([]models.Row, 0, len(notes))
	for _, n := range notes {
		row := models.Row{
			ID:          n.ID,
			Text:        n.Text,
			Completed:   n.Completed,
			ToggleLabel: c.labels.Complete,
			DeleteLabel: c.labels.Delete,
		}
		if n.Completed {
			row.ToggleLabel = c.labels.Reopen
			row.Style = models.RowStyleCompleted
		}
		rows = append(rows, row)
	}
	return rows
}

// Add creates a note and re-renders.
func (c *Controller) Add(ctx context.Context, text string, f models.Filter) ([]models.Row, error) {
	if _, err := c.notes.Add(ctx, text); err != nil {
		return nil, err
	}
	return c.Render(ctx, f)
}

// Toggle is the toggle hook of the row with the given id.
func (c *Controller) Toggle(ctx context.Context, id int64, f models.Filter) ([]models.Row, error) {
	if err := c.notes.ToggleCompleted(ctx, id); err != nil {
		return nil, err
	}
	return c.Render(ctx, f)
}

// Delete is the delete hook of the row with the given id.
func (c *Controller) Delete(ctx context.Context, id int64, f models.Filter) ([]models.Row, error) {
	if err := c.notes.Remove(ctx, id); err != nil {
		return nil, err
	}
	return c.Render(ctx, f)
}
