// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Assets    AssetsConfig    `koanf:"assets"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CatalogConfig holds settings of the in-memory catalog.
type CatalogConfig struct {
	// TopItemsCapacity is the number of items each group's top items view holds.
	TopItemsCapacity int `koanf:"top_items_capacity"`
	// EventLogSize is the number of top items changes retained per group.
	EventLogSize int `koanf:"event_log_size"`
	// ImageWorkers bounds concurrent image resolutions per request.
	ImageWorkers int `koanf:"image_workers"`
	// Seed loads the built-in sample catalog at startup.
	Seed bool `koanf:"seed"`
}

// AssetsConfig holds settings of the asset server that resolves image paths.
// An empty BaseURL disables network lookups; paths are then joined onto
// StaticBaseURI.
type AssetsConfig struct {
	BaseURL        string               `koanf:"base_url"`
	StaticBaseURI  string               `koanf:"static_base_uri"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings.
// A zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled bool `koanf:"enabled"`
	// Exporter selects the span exporter: stdout or otlp.
	Exporter string `koanf:"exporter"`
	// MetricsExporter selects the metric exporter: stdout, otlp, or prometheus.
	// Empty means the same as Exporter.
	MetricsExporter string `koanf:"metrics_exporter"`
	Endpoint        string `koanf:"endpoint"`
	ServiceName     string `koanf:"service_name"`
}

// MetricsExporterName returns the effective metric exporter.
func (t *TelemetryConfig) MetricsExporterName() string {
	if t.MetricsExporter == "" {
		return t.Exporter
	}
	return t.MetricsExporter
}
