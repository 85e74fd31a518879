package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/pathforge/pathforge/internal/adapter"
	"github.com/pathforge/pathforge/internal/config"
	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/service"
	"github.com/pathforge/pathforge/internal/store"
	"github.com/pathforge/pathforge/internal/tui"
	"github.com/pathforge/pathforge/internal/workers"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	tracker  *tui.DraftTracker
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	localStore, err := store.NewClientStorages(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	// A token from a previous run lets the server calls resume without a
	// fresh credential exchange.
	if token, tokenErr := localStore.Credentials.Token(context.Background()); tokenErr == nil && token != "" {
		serverAdapter.SetToken(token)
	}

	svcs := service.NewClientServices(localStore, serverAdapter, cfg.Onboarding, logger)
	tracker := tui.NewDraftTracker()

	ui, err := tui.New(svcs, tracker, logger)
	if err != nil {
		return nil, fmt.Errorf("create TUI: %w", err)
	}

	autosave := workers.NewAutosaveWorker(svcs.AutosaveJob, tracker, cfg.Onboarding.AutosaveInterval)

	return &App{
		services: svcs,
		tui:      ui,
		tracker:  tracker,
		workers:  workers.NewWorkers(autosave),
		logger:   logger,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	user, err := a.services.AuthService.CurrentUser(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			return fmt.Errorf("restore session: %w", err)
		}

		user, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	a.logger.Info().Str("email", user.Email).Msg("session active")

	a.workers.Run()
	defer a.workers.Stop()

	logout, err := a.tui.MainLoop(ctx, user)
	if err != nil {
		return err
	}
	if logout {
		if logoutErr := a.services.AuthService.Logout(ctx); logoutErr != nil {
			return fmt.Errorf("logout: %w", logoutErr)
		}
		a.tracker.Reset()
		return a.Run()
	}

	return nil
}

var _ Client = (*App)(nil)
