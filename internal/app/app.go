// Package app wires the application together: config, logger, store,
// repositories, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal"
	favoriterepo "github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/favorite"
	"github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/identity"
	presetrepo "github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/preset"
	ragarepo "github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/raga"
	recordingrepo "github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/recording"
	userrepo "github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/user"
	versionrepo "github.com/wahidrahimi/ragavani-backend/internal/adapter/surreal/version"
	"github.com/wahidrahimi/ragavani-backend/internal/config"
	"github.com/wahidrahimi/ragavani-backend/internal/service/account"
	"github.com/wahidrahimi/ragavani-backend/internal/service/catalog"
	"github.com/wahidrahimi/ragavani-backend/internal/service/favorites"
	"github.com/wahidrahimi/ragavani-backend/internal/service/preset"
	"github.com/wahidrahimi/ragavani-backend/internal/service/recording"
	"github.com/wahidrahimi/ragavani-backend/internal/service/release"
	"github.com/wahidrahimi/ragavani-backend/internal/service/report"
	"github.com/wahidrahimi/ragavani-backend/internal/transport/middleware"
	"github.com/wahidrahimi/ragavani-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is cancelled, then
// shuts down the HTTP server and closes the store.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	store, err := surreal.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect store: %w", err)
	}

	ragas := ragarepo.New(store)
	users := userrepo.New(store)
	recordings := recordingrepo.New(store)
	favs := favoriterepo.New(store)
	presets := presetrepo.New(store)
	versions := versionrepo.New(store)
	provider := identity.New(store)

	handlers := rest.Handlers{
		Raga:      rest.NewRagaHandler(logger, catalog.NewService(logger, ragas)),
		Account:   rest.NewAccountHandler(logger, account.NewService(logger, provider, users)),
		Recording: rest.NewRecordingHandler(logger, recording.NewService(logger, users, recordings)),
		Favorites: rest.NewFavoritesHandler(logger, favorites.NewService(logger, users, ragas, favs)),
		Preset:    rest.NewPresetHandler(logger, preset.NewService(logger, users, presets)),
		Version:   rest.NewVersionHandler(logger, release.NewService(logger, versions)),
		Report:    rest.NewReportHandler(logger, report.NewService(logger, users, recordings, favs)),
		Health:    rest.NewHealthHandler(store, BuildVersion()),
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(logger, *cfg, handlers, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if limiter != nil {
		limiter.Stop()
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("store close failed", slog.Any("error", err))
	}

	logger.Info("stopped")
	return nil
}
