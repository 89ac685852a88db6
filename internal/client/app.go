package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/internal/view"
	"github.com/MKhiriev/go-note-keeper/models"
)

// App is the note widget process.
type App struct {
	storages *store.ClientStorages
	ui       UI
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens the local store described by cfg and builds the UI on top of
// it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages)
	controller := view.NewController(services.NoteService, view.LabelsFor(cfg.App.Labels))

	ui, err := tui.New(handler.NewHandler(controller, log), buildInfo, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(storages, ui, log), nil
}

func newApp(storages *store.ClientStorages, ui UI, log *logger.Logger) *App {
	return &App{storages: storages, ui: ui, logger: log}
}

// Run shows the UI until the user quits, then releases the store.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	runErr := a.ui.Run(ctx)
	if runErr != nil {
		runErr = fmt.Errorf("ui: %w", runErr)
	}

	var closeErr error
	if err := a.storages.Close(); err != nil {
		closeErr = fmt.Errorf("close storage: %w", err)
	}

	if err := errors.Join(runErr, closeErr); err != nil {
		a.logger.Err(err).Msg("client stopped with error")
		return err
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
