package config

import "time"

const (
	envProvider        = "PROVIDER"
	envAPIBaseURL      = "PLAYER_API_BASE_URL"
	envAPITimeout      = "PLAYER_API_TIMEOUT"
	envAPIRetryMax     = "PLAYER_API_RETRY_MAX"
	envGroupPreview    = "LOOKUP_GROUP_PREVIEW"
	envInitialLimit    = "LOOKUP_INITIAL_LIMIT"
	envDiscardStale    = "LOOKUP_DISCARD_STALE"
	envResetExpansion  = "LOOKUP_RESET_EXPANSION"
	envCollateLanguage = "LOOKUP_COLLATE_LANG"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	defaultProvider   = "http"
	defaultAPIBaseURL = "http://localhost:8080"
	defaultAPITimeout = 10 * time.Second

	// Retries are opt-in; each search is a single fetch unless configured otherwise.
	defaultAPIRetryMax = 0

	defaultGroupPreview    = 3
	defaultInitialLimit    = 10
	defaultDiscardStale    = false
	defaultResetExpansion  = false
	defaultCollateLanguage = "en"
	defaultMetricsEnabled  = false
	defaultMetricsPort     = "9090"
	defaultServiceName     = "player-lookup"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)
