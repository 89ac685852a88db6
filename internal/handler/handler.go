// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler is the input controller: it turns UI events into
// repository calls and returns the re-rendered rows.
//
// Handlers are synchronous and keep the only UI state that matters for
// rendering, the current filter. Every handler returns the complete row list
// to draw; there is no incremental update.
package handler

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Handler reacts to UI events.
type Handler struct {
	view     ViewController
	filter   models.Filter
	eventIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewHandler returns a Handler starting with an empty query and the
// "show completed" checkbox unchecked.
func NewHandler(view ViewController, logger *logger.Logger) *Handler {
	return &Handler{
		view:     view,
		eventIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// Filter returns the current filter state.
func (h *Handler) Filter() models.Filter {
	return h.filter
}

// OnReady performs the initial render.
func (h *Handler) OnReady(ctx context.Context) ([]models.Row, error) {
	ctx, log := h.eventContext(ctx, "ready")

	rows, err := h.view.Render(ctx, h.filter)
	if err != nil {
		log.Err(err).Msg("initial render failed")
		return nil, err
	}

	log.Info().Int("rows", len(rows)).Msg("initial render")
	return rows, nil
}

// OnAdd handles activation of the add affordance with the raw input field
// value. Whitespace-only input is ignored: no note is created, rows is nil
// and the input is returned as it was. Otherwise the returned input is
// empty and rows reflect the new note.
func (h *Handler) OnAdd(ctx context.Context, input string) (rows []models.Row, newInput string, err error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return nil, input, nil
	}

	ctx, log := h.eventContext(ctx, "add")

	rows, err = h.view.Add(ctx, text, h.filter)
	if err != nil {
		log.Err(err).Msg("add note failed")
		return nil, input, err
	}

	log.Info().Int("rows", len(rows)).Msg("note added")
	return rows, "", nil
}

// OnToggle handles the toggle affordance of the row with the given id.
func (h *Handler) OnToggle(ctx context.Context, id int64) ([]models.Row, error) {
	ctx, log := h.eventContext(ctx, "toggle")

	rows, err := h.view.Toggle(ctx, id, h.filter)
	if err != nil {
		log.Err(err).Int64("note_id", id).Msg("toggle note failed")
		return nil, err
	}

	log.Info().Int64("note_id", id).Msg("note toggled")
	return rows, nil
}

// OnDelete handles the delete affordance of the row with the given id.
func (h *Handler) OnDelete(ctx context.Context, id int64) ([]models.Row, error) {
	ctx, log := h.eventContext(ctx, "delete")

	rows, err := h.view.Delete(ctx, id, h.filter)
	if err != nil {
		log.Err(err).Int64("note_id", id).Msg("delete note failed")
		return nil, err
	}

	log.Info().Int64("note_id", id).Msg("note deleted")
	return rows, nil
}

// OnSearch re-renders with query as the new search text. The query lives
// only in memory.
func (h *Handler) OnSearch(ctx context.Context, query string) ([]models.Row, error) {
	h.filter.Query = query
	ctx, log := h.eventContext(ctx, "search")

	rows, err := h.view.Render(ctx, h.filter)
	if err != nil {
		log.Err(err).Msg("search render failed")
		return nil, err
	}

	log.Debug().Int("rows", len(rows)).Msg("search applied")
	return rows, nil
}

// OnShowCompleted re-renders after the "show completed" checkbox changed.
func (h *Handler) OnShowCompleted(ctx context.Context, checked bool) ([]models.Row, error) {
	h.filter.CompletedOnly = checked
	ctx, log := h.eventContext(ctx, "show_completed")

	rows, err := h.view.Render(ctx, h.filter)
	if err != nil {
		log.Err(err).Msg("filter render failed")
		return nil, err
	}

	log.Debug().Bool("completed_only", checked).Int("rows", len(rows)).Msg("completion filter applied")
	return rows, nil
}

// eventContext attaches a child logger tagged with a fresh event id to ctx,
// so repository and storage logs of one UI event can be correlated.
func (h *Handler) eventContext(ctx context.Context, event string) (context.Context, *logger.Logger) {
	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("event", event).Str("event_id", h.eventIDs.Generate())
	})
	return l.WithContext(ctx), l
}
