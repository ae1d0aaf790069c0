package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/player-lookup/internal/config"
	"github.com/preston-bernstein/player-lookup/internal/logging"
	"github.com/preston-bernstein/player-lookup/internal/metrics"
	"github.com/preston-bernstein/player-lookup/internal/providers"
	"github.com/preston-bernstein/player-lookup/internal/providers/fixture"
	"github.com/preston-bernstein/player-lookup/internal/providers/playerapi"
)

const (
	providerHTTP    = "http"
	providerFixture = "fixture"
)

func selectSource(cfg config.Config, logger *slog.Logger) providers.PlayerSource {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case providerFixture:
		return fixture.New()
	case providerHTTP, "":
	default:
		logging.Warn(logger, "unknown provider, falling back to http", slog.String("provider", cfg.Provider))
	}
	return playerapi.NewClient(playerapi.Config{
		BaseURL:  cfg.PlayerAPI.BaseURL,
		Timeout:  cfg.PlayerAPI.Timeout,
		RetryMax: cfg.PlayerAPI.RetryMax,
		Logger:   logger,
	})
}

// buildSource assembles the selected source with the shared wrappers:
// instrumentation on every upstream call, then coalescing of concurrent fetches.
func buildSource(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.PlayerSource {
	base := selectSource(cfg, logger)
	instrumented := providers.NewInstrumentedSource(base, logger, recorder, sourceName(base))
	return providers.NewSharedSource(instrumented)
}

// sourceName returns the name a source reports, deriving one from its type otherwise.
func sourceName(src providers.PlayerSource) string {
	if named, ok := src.(interface{ Name() string }); ok {
		return strings.ToLower(named.Name())
	}
	if src != nil {
		return strings.ToLower(fmt.Sprintf("%T", src))
	}
	return "provider"
}
