package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/attidev/storefront/internal/config"
	"github.com/attidev/storefront/internal/credstore"
	"github.com/attidev/storefront/internal/gateway"
	"github.com/attidev/storefront/internal/session"
	"github.com/attidev/storefront/pkg/bootstrap"
)

// app wires the configuration, logger, gateway client, credential store and
// session together for the CLI commands.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
	gw       *gateway.Client
	store    *credstore.Store
	session  *session.Session
}

// newApp loads configuration and constructs the shared dependencies. The
// returned app must be closed to flush the log file, if one is configured.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load[*config.Config]("storefront", config.Defaults())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	var (
		logger   *slog.Logger
		closeLog func() error
	)
	if cfg.Log.File != "" {
		logger, closeLog, err = bootstrap.NewFileLogger(cfg.Log.Level, cfg.Log.File)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
	} else {
		logger = bootstrap.NewDiscardLogger()
	}
	slog.SetDefault(logger)

	gw := gateway.New(cfg.API.BaseURL, cfg.API.Timeout, logger)

	store := credstore.New(cfg.Store.Path)

	sess := session.New(gw, store, session.Options{
		ExpiresInMins:   cfg.Session.ExpiresInMins,
		ValidateOnStart: cfg.Session.ValidateOnStart,
	}, logger)
	if err := sess.Initialize(ctx); err != nil {
		logger.Warn("Failed to restore session", "error", err)
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		closeLog: closeLog,
		gw:       gw,
		store:    store,
		session:  sess,
	}, nil
}

func (a *app) Close() {
	if a.closeLog != nil {
		_ = a.closeLog()
	}
}
