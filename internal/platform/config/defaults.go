package config

const (
	defaultServerPort = 8080

	defaultTopItemsCapacity = 12
	defaultEventLogSize     = 64
	defaultImageWorkers     = 4

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"catalog.top_items_capacity": defaultTopItemsCapacity,
		"catalog.event_log_size":     defaultEventLogSize,
		"catalog.image_workers":      defaultImageWorkers,
		"catalog.seed":               true,

		"assets.base_url":                        "",
		"assets.static_base_uri":                 "ms-appx:///",
		"assets.timeout":                         "5s",
		"assets.retry.max_attempts":              defaultRetryMaxAttempts,
		"assets.retry.initial_interval":          "100ms",
		"assets.retry.max_interval":              "2s",
		"assets.retry.multiplier":                defaultRetryMultiplier,
		"assets.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"assets.circuit_breaker.timeout":         "30s",
		"assets.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"assets.rate_limit.requests_per_second":  0,
		"assets.rate_limit.burst":                1,

		"telemetry.enabled":          false,
		"telemetry.exporter":         "stdout",
		"telemetry.metrics_exporter": "",
		"telemetry.endpoint":         "",
		"telemetry.service_name":     "go-catalog-service",
	}
}
