package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// TUI is the terminal front end of the note widget.
type TUI struct {
	handler   *handler.Handler
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI driving h.
func New(h *handler.Handler, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if h == nil {
		return nil, errNilHandler
	}
	return &TUI{handler: h, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the widget and blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newNotesModel(ctx, t.handler, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("ui stopped by context")
			return nil
		}
		return err
	}

	return nil
}
