// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-catalog-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-catalog-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-catalog-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/go-catalog-service/internal/adapters/clients/assets"
	"github.com/jsamuelsen11/go-catalog-service/internal/adapters/fixtures"
	"github.com/jsamuelsen11/go-catalog-service/internal/app"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/catalog"
	"github.com/jsamuelsen11/go-catalog-service/internal/domain/observable"
	"github.com/jsamuelsen11/go-catalog-service/internal/platform/config"
	"github.com/jsamuelsen11/go-catalog-service/internal/platform/health"
	"github.com/jsamuelsen11/go-catalog-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-catalog-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-catalog-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-catalog-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger, otel.metricsHandler)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired. The static resolver
	// makes no outbound calls and has nothing to report.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	if resolver, ok := do.MustInvoke[ports.ImageResolver](injector).(ports.HealthChecker); ok {
		registry.Register(resolver)
	}

	cat := do.MustInvoke[*catalog.Catalog](injector)
	logger.Info("catalog ready",
		slog.Int("groups", cat.Groups.Len()),
		slog.Int("top_items_capacity", cfg.Catalog.TopItemsCapacity),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	cat.Close()

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled. metricsHandler is set only for the prometheus
// metric exporter.
type otelProviders struct {
	tracer         *sdktrace.TracerProvider
	meter          *sdkmetric.MeterProvider
	metrics        *telemetry.Metrics
	metricsHandler nethttp.Handler
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, handler, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.MetricsExporterName(),
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:         tp,
		meter:          mp,
		metrics:        metrics,
		metricsHandler: handler,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, metricsHandler nethttp.Handler) {
	do.Provide(injector, func(i do.Injector) (*catalog.Catalog, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return buildCatalog(&cfg.Catalog, metrics)
	})

	do.Provide(injector, func(i do.Injector) (ports.ImageResolver, error) {
		if cfg.Assets.BaseURL == "" {
			return assets.NewStaticResolver(cfg.Assets.StaticBaseURI), nil
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Assets, "assets", metrics, logger)
		return assets.NewResolver(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CatalogService, error) {
		cat := do.MustInvoke[*catalog.Catalog](i)
		images := do.MustInvoke[ports.ImageResolver](i)
		return app.NewCatalogService(cat, images, cfg.Catalog.ImageWorkers, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CatalogHandler, error) {
		svc := do.MustInvoke[ports.CatalogService](i)
		return handlers.NewCatalogHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		catalogH := do.MustInvoke[*handlers.CatalogHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(catalogH, healthH, metricsHandler,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// buildCatalog creates the in-memory catalog, seeded with the sample groups
// when cfg.Seed is set. Every top items change is counted in metrics.
func buildCatalog(cfg *config.CatalogConfig, metrics *telemetry.Metrics) (*catalog.Catalog, error) {
	var seeds []catalog.GroupSeed
	if cfg.Seed {
		var err error
		if seeds, err = fixtures.Sample(); err != nil {
			return nil, fmt.Errorf("loading sample catalog: %w", err)
		}
	}

	c, err := catalog.Build(seeds,
		catalog.WithTopItemsCapacity(cfg.TopItemsCapacity),
		catalog.WithHistorySize(cfg.EventLogSize),
		catalog.WithTopItemsObserver(func(ch observable.Change[*catalog.Item]) error {
			metrics.RecordProjectionChange(context.Background(), ch.Kind.String())
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	return c, nil
}
