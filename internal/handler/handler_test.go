package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/view"
	"github.com/MKhiriev/go-note-keeper/models"
)

// newTestHandler wires the full stack over an in-memory store.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	storage := store.NewNoteStorage(store.NewMemoryKeyValueStore(), "notes", logger.Nop())
	notes := service.NewNoteService(storage, service.NewClockIDGenerator())
	return NewHandler(view.NewController(notes, view.EnglishLabels), logger.Nop())
}

func texts(rows []models.Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Text)
	}
	return out
}

func TestHandler_OnReady_Empty(t *testing.T) {
	h := newTestHandler(t)

	rows, err := h.OnReady(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, models.Filter{}, h.Filter())
}

func TestHandler_OnAdd_TrimsAndClearsInput(t *testing.T) {
	h := newTestHandler(t)

	rows, input, err := h.OnAdd(context.Background(), "  Buy milk \n")
	require.NoError(t, err)
	assert.Empty(t, input)
	assert.Equal(t, []string{"Buy milk"}, texts(rows))
	assert.False(t, rows[0].Completed)
}

func TestHandler_OnAdd_IgnoresBlankInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteService(ctrl)
	h := NewHandler(view.NewController(notes, view.EnglishLabels), logger.Nop())

	// no repository call is expected
	for _, in := range []string{"", "   ", "\t\n"} {
		rows, input, err := h.OnAdd(context.Background(), in)
		require.NoError(t, err)
		assert.Nil(t, rows)
		assert.Equal(t, in, input)
	}
}

func TestHandler_OnAdd_ErrorKeepsInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteService(ctrl)
	h := NewHandler(view.NewController(notes, view.EnglishLabels), logger.Nop())

	notes.EXPECT().Add(gomock.Any(), "x").Return(models.Note{}, errors.New("disk full"))

	rows, input, err := h.OnAdd(context.Background(), "x")
	require.Error(t, err)
	assert.Nil(t, rows)
	assert.Equal(t, "x", input)
}

func TestHandler_ToggleAndDelete(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	_, _, err := h.OnAdd(ctx, "Buy milk")
	require.NoError(t, err)
	rows, _, err := h.OnAdd(ctx, "Call mom")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	rows, err = h.OnToggle(ctx, rows[1].ID)
	require.NoError(t, err)
	assert.True(t, rows[1].Completed)
	assert.Equal(t, "Reopen", rows[1].ToggleLabel)
	assert.Equal(t, models.RowStyleCompleted, rows[1].Style)

	rows, err = h.OnDelete(ctx, rows[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Call mom"}, texts(rows))

	// unknown ids are no-ops
	rows, err = h.OnDelete(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Call mom"}, texts(rows))
}

func TestHandler_FilterStateAppliesToMutations(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	for _, text := range []string{"Buy milk", "Call mom", "Call dentist"} {
		_, _, err := h.OnAdd(ctx, text)
		require.NoError(t, err)
	}

	rows, err := h.OnSearch(ctx, "CALL")
	require.NoError(t, err)
	assert.Equal(t, []string{"Call mom", "Call dentist"}, texts(rows))

	rows, err = h.OnShowCompleted(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// adding under an active filter re-renders with the same filter
	rows, _, err = h.OnAdd(ctx, "Call plumber")
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = h.OnShowCompleted(ctx, false)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	rows, err = h.OnToggle(ctx, rows[0].ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	rows, err = h.OnShowCompleted(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Call mom"}, texts(rows))

	rows, err = h.OnSearch(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Call mom"}, texts(rows))
	assert.Equal(t, models.Filter{Query: "", CompletedOnly: true}, h.Filter())
}

func TestHandler_RenderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteService(ctrl)
	h := NewHandler(view.NewController(notes, view.EnglishLabels), logger.Nop())

	notes.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom")).Times(3)

	_, err := h.OnReady(context.Background())
	require.Error(t, err)
	_, err = h.OnSearch(context.Background(), "x")
	require.Error(t, err)
	_, err = h.OnShowCompleted(context.Background(), true)
	require.Error(t, err)
}

// TestHandler_EventLogging verifies that each event is logged with its name
// and a unique event id.
func TestHandler_EventLogging(t *testing.T) {
	var buf bytes.Buffer
	storage := store.NewNoteStorage(store.NewMemoryKeyValueStore(), "notes", logger.Nop())
	notes := service.NewNoteService(storage, service.NewClockIDGenerator())
	h := NewHandler(view.NewController(notes, view.EnglishLabels), logger.NewLogger("test", &buf))
	ctx := context.Background()

	_, err := h.OnReady(ctx)
	require.NoError(t, err)
	_, _, err = h.OnAdd(ctx, "x")
	require.NoError(t, err)

	ids := make(map[string]struct{})
	events := make(map[string]struct{})
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if id, ok := entry["event_id"].(string); ok {
			ids[id] = struct{}{}
		}
		if ev, ok := entry["event"].(string); ok {
			events[ev] = struct{}{}
		}
	}

	assert.Contains(t, events, "ready")
	assert.Contains(t, events, "add")
	assert.Len(t, ids, 2)
}
