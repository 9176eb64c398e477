package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fishing-finder/internal/adapters/catalog"
	"fishing-finder/internal/platform/config"
	"fishing-finder/internal/platform/logger"
	"fishing-finder/internal/platform/metrics"
	"fishing-finder/internal/router"

	"golang.org/x/sync/errgroup"
)

// @title Fishing Finder API
// @version 1.0
// @description Buscador del catálogo de peces de Hay Day por nombre, spot o señuelo.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		// todavía no hay logger configurado
		l, _ := logger.NewFromEnv()
		if l == nil {
			l = logger.Nop()
		}
		l.Error("config error", map[string]any{"error": err})
		os.Exit(1)
	}

	log, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, closeCatalog, err := catalog.LoadService(ctx, cfg.Catalog, log.With(map[string]any{
		"driver": cfg.Catalog.Driver,
	}))
	defer func() { _ = closeCatalog() }()
	if err != nil {
		return err
	}

	r := router.NewRouter(router.Options{
		Fish:    svc,
		Logger:  log,
		Metrics: metrics.New(),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
