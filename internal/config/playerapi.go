package config

import "time"

// PlayerAPIConfig controls how we talk to the player API.
type PlayerAPIConfig struct {
	BaseURL  string
	Timeout  time.Duration
	RetryMax int
}

func loadPlayerAPI() PlayerAPIConfig {
	return PlayerAPIConfig{
		BaseURL:  envOrDefault(envAPIBaseURL, defaultAPIBaseURL),
		Timeout:  durationEnvOrDefault(envAPITimeout, defaultAPITimeout),
		RetryMax: nonNegativeIntEnvOrDefault(envAPIRetryMax, defaultAPIRetryMax),
	}
}
