package config

// Config holds runtime configuration for the lookup tool.
type Config struct {
	Provider  string
	PlayerAPI PlayerAPIConfig
	Lookup    LookupConfig
	Metrics   MetricsConfig
	Log       LogConfig
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider:  envOrDefault(envProvider, defaultProvider),
		PlayerAPI: loadPlayerAPI(),
		Lookup:    loadLookup(),
		Metrics:   loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}
