package playerapi

import "time"

const (
	providerName       = "playerapi"
	defaultBaseURL     = "http://localhost:8080"
	playersPath        = "/v1/players"
	defaultHTTPTimeout = 10 * time.Second
	// The full roster is a few MB; anything far beyond that is not a player list.
	maxBodyBytes = 64 << 20
)
