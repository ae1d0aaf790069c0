package playerapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/player-lookup/internal/domain/players"
	"github.com/preston-bernstein/player-lookup/internal/providers"
)

// Config controls how the client reaches the player API.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryMax   int
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches the player collection from GET {BaseURL}/v1/players.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a player API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout, cfg.RetryMax, cfg.Logger),
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchPlayers retrieves the full player collection. Transport failures come
// back as *providers.NetworkError, non-2xx responses as *providers.HTTPError and
// unusable payloads wrap providers.ErrMalformedResponse.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+playersPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, ctxErr
		}
		return nil, &providers.NetworkError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, &providers.HTTPError{
			Provider:   providerName,
			Status:     resp.StatusCode,
			StatusText: reasonPhrase(resp),
			Message:    fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &providers.NetworkError{Provider: providerName, Err: err}
	}
	return parsePlayers(body)
}
