package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	adapthttp "github.com/jsamuelsen11/todo-bridge/internal/adapters/http"
	"github.com/jsamuelsen11/todo-bridge/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/todo-bridge/internal/app/dispatch"
	"github.com/jsamuelsen11/todo-bridge/internal/platform/telemetry"
)

const (
	serverShutdownTimeout = 15 * time.Second
	bridgeShutdownTimeout = 10 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dispatch bridge and the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	cfg, logger, err := opts.bootstrap(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer shutdownTelemetry(logger, providers)

	injector := newInjector(cfg, logger, providers)

	db, err := do.Invoke[*sqlite.DB](injector)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("storage close error", slog.Any("error", closeErr))
		}
	}()

	// Resolving the server wires the rest of the graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	bridge := do.MustInvoke[*dispatch.Bridge](injector)

	// The run loop outlives request cancellation; Shutdown drains it.
	bridge.Start(context.WithoutCancel(ctx))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Info("context cancelled, shutting down")
	case err := <-serverErr:
		runErr = fmt.Errorf("server failed: %w", err)
		serverErr <- nil
	}

	// HTTP first so no new commands arrive, then drain the bridge.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	bridgeCtx, bridgeCancel := context.WithTimeout(context.Background(), bridgeShutdownTimeout)
	defer bridgeCancel()

	if err := bridge.Shutdown(bridgeCtx); err != nil {
		logger.Error("dispatch shutdown error",
			slog.Any("error", err),
			slog.Int("pending", bridge.Pending()),
		)
	}

	logger.Info("shutdown complete")
	return runErr
}

func shutdownTelemetry(logger *slog.Logger, providers *telemetry.Providers) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := providers.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}
