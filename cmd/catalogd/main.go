// Package main runs catalogd, the self-contained demo catalog server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/attidev/storefront/internal/catalogd"
	"github.com/attidev/storefront/internal/config"
	"github.com/attidev/storefront/pkg/bootstrap"
	"github.com/attidev/storefront/pkg/server"
	"golang.org/x/sync/errgroup"
)

const serviceName = "catalogd"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

// run initializes the demo catalog and serves it until the context is
// cancelled.
func run(ctx context.Context) error {
	cfg, cfgErr := config.Load[*catalogd.Config](serviceName, catalogd.Defaults())
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	httpServer := setupServer(cfg, logger)

	g, gCtx := errgroup.WithContext(ctx)

	// Start the HTTP server
	g.Go(func() error {
		logger.Info("HTTP server listening", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	// gracefully shutdown HTTP server on context cancellation
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}

// setupServer wires the store, authenticator and routes into an HTTP server.
func setupServer(cfg *catalogd.Config, logger *slog.Logger) *http.Server {
	store := catalogd.NewStore(catalogd.SeedProducts())
	auth := catalogd.NewAuthenticator(catalogd.SeedAccounts())

	mux := server.NewChiRouter(logger)
	handler := catalogd.NewHandler(store, auth, logger)
	handler.RegisterRoutes(mux)

	return server.NewHTTPServer(server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}, mux)
}
