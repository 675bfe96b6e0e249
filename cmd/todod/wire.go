package main

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-bridge/internal/adapters/http"
	"github.com/jsamuelsen11/todo-bridge/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-bridge/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-bridge/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/todo-bridge/internal/app"
	"github.com/jsamuelsen11/todo-bridge/internal/app/dispatch"
	"github.com/jsamuelsen11/todo-bridge/internal/platform/config"
	"github.com/jsamuelsen11/todo-bridge/internal/platform/health"
	"github.com/jsamuelsen11/todo-bridge/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-bridge/internal/ports"
)

// newInjector registers every component of the service graph. Nothing is
// constructed until it is invoked, so subcommands that only need storage
// never build the HTTP side. The bridge is registered but not started.
func newInjector(cfg *config.Config, logger *slog.Logger, providers *telemetry.Providers) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers)

	do.Provide(injector, func(_ do.Injector) (*telemetry.Metrics, error) {
		return telemetry.NewMetrics(providers.MeterProvider, cfg.Telemetry.ServiceName)
	})

	do.Provide(injector, func(_ do.Injector) (*sqlite.DB, error) {
		return sqlite.Open(context.Background(), cfg.Storage, logger)
	})

	do.Provide(injector, func(i do.Injector) (*sqlite.Repository, error) {
		db, err := do.Invoke[*sqlite.DB](i)
		if err != nil {
			return nil, err
		}
		return sqlite.NewRepository(db, cfg.Storage.CircuitBreaker, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*dispatch.Bridge, error) {
		repo, err := do.Invoke[*sqlite.Repository](i)
		if err != nil {
			return nil, err
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return dispatch.New(repo,
			dispatch.WithLogger(logger),
			dispatch.WithMetrics(metrics),
			dispatch.WithTracerProvider(providers.TracerProvider),
			dispatch.WithResponseTimeout(cfg.Dispatch.ResponseTimeout),
			dispatch.WithRateLimit(cfg.Dispatch.RateLimit.RequestsPerSecond, cfg.Dispatch.RateLimit.BurstSize),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		bridge, err := do.Invoke[*dispatch.Bridge](i)
		if err != nil {
			return nil, err
		}
		return app.NewTodoService(bridge, cfg.Dispatch.ImportWorkers, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*sqlite.Repository](i))
		registry.Register(do.MustInvoke[*dispatch.Bridge](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		svc := do.MustInvoke[ports.TodoService](i)
		return handlers.NewTodoHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(todoH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(providers.TracerProvider, metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})

	return injector
}
