package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/conestack/treibstoff"
	"github.com/conestack/treibstoff/internal/config"
	"github.com/conestack/treibstoff/internal/handlers"
	"github.com/conestack/treibstoff/internal/metrics"
	"github.com/conestack/treibstoff/internal/router"
	"github.com/conestack/treibstoff/resource"
)

// shutdownTimeout bounds how long active requests may take to drain.
const shutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the treibstoff static view, manifest and metrics",
		RunE:  runServe,
	}
	cmd.Flags().String("router", "", "Host router (chi|mux), overrides HOST_ROUTER")
	cmd.Flags().String("port", "", "Listen port, overrides APP_PORT")
	cmd.Flags().Bool("minified", false, "Publish minified variants, overrides ASSETS_MINIFIED")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cfg)

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"router", cfg.Router,
		"minified", cfg.Minified,
	)

	handler, err := buildHandler(cfg, resource.Default)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		slog.Info("server stopped gracefully")
		return nil
	})

	return g.Wait()
}

// loadConfig reads the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if cmd.Flags().Changed("router") {
		cfg.Router, _ = cmd.Flags().GetString("router")
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetString("port")
	}
	if cmd.Flags().Changed("minified") {
		cfg.Minified, _ = cmd.Flags().GetBool("minified")
	}
	return cfg, nil
}

// buildHandler assembles the host router around the declared resources. The
// static view is mounted only when one was compiled in.
func buildHandler(cfg *config.Config, reg *resource.Registry) (http.Handler, error) {
	opts := router.Options{
		Metrics:     metrics.New(),
		CORSOrigins: cfg.CORSOrigins,
	}

	if v := treibstoff.View(); v != nil {
		opts.View = v
		opts.StaticPrefix = v.Prefix()
		slog.Info("static view available", "framework", treibstoff.HostFramework(), "prefix", v.Prefix())
	}
	opts.Assets = handlers.NewAssets(reg, cfg.Minified, opts.StaticPrefix)

	return router.Build(cfg.Router, opts)
}
