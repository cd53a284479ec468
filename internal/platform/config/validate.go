package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Catalog.validate(),
		c.Assets.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (c *CatalogConfig) validate() error {
	var errs []error

	if c.TopItemsCapacity < 1 {
		errs = append(errs, fmt.Errorf("catalog.top_items_capacity must be >= 1, got %d", c.TopItemsCapacity))
	}
	if c.EventLogSize < 1 {
		errs = append(errs, fmt.Errorf("catalog.event_log_size must be >= 1, got %d", c.EventLogSize))
	}
	if c.ImageWorkers < 1 {
		errs = append(errs, fmt.Errorf("catalog.image_workers must be >= 1, got %d", c.ImageWorkers))
	}

	return errors.Join(errs...)
}

func (a *AssetsConfig) validate() error {
	if a.BaseURL == "" {
		if a.StaticBaseURI == "" {
			return errors.New("assets.static_base_uri must not be empty when assets.base_url is empty")
		}
		return nil
	}

	var errs []error

	if a.Timeout <= 0 {
		errs = append(errs, errors.New("assets.timeout must be positive"))
	}
	if a.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("assets.retry.max_attempts must be >= 1, got %d", a.Retry.MaxAttempts))
	}
	if a.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("assets.retry.multiplier must be positive, got %f", a.Retry.Multiplier))
	}
	if a.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("assets.circuit_breaker.max_failures must be >= 1, got %d",
			a.CircuitBreaker.MaxFailures))
	}
	if a.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("assets.rate_limit.requests_per_second must not be negative, got %f",
			a.RateLimit.RequestsPerSecond))
	}
	if a.RateLimit.RequestsPerSecond > 0 && a.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("assets.rate_limit.burst must be >= 1, got %d", a.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	switch t.MetricsExporterName() {
	case "stdout", "otlp", "prometheus":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.metrics_exporter must be one of: stdout, otlp, prometheus; got %q",
			t.MetricsExporter))
	}

	if (t.Exporter == "otlp" || t.MetricsExporterName() == "otlp") && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when an exporter is otlp"))
	}

	return errors.Join(errs...)
}
