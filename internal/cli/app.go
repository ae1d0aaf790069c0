package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/preston-bernstein/player-lookup/internal/config"
	"github.com/preston-bernstein/player-lookup/internal/logging"
	"github.com/preston-bernstein/player-lookup/internal/lookup"
	"github.com/preston-bernstein/player-lookup/internal/metrics"
	"github.com/preston-bernstein/player-lookup/internal/providers"
	"github.com/preston-bernstein/player-lookup/internal/search"
	"github.com/preston-bernstein/player-lookup/internal/store"
)

const (
	serviceName = "player-lookup"
	// Version is stamped at build time.
	Version = "dev"
)

// app is one configured lookup session with its telemetry.
type app struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	session       *lookup.Session
	metricsServer httpServer
	metricsStop   func(context.Context) error
	out           io.Writer
}

func newApp(cfg config.Config, out, errOut io.Writer) *app {
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: Version,
		Output:  errOut,
	})
	recorder, metricsSrv, metricsStop := buildMetrics(cfg, logger)
	return newAppWithSource(cfg, logger, recorder, buildSource(cfg, logger, recorder), metricsSrv, metricsStop, out)
}

func newAppWithSource(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, source providers.PlayerSource, metricsSrv httpServer, metricsStop func(context.Context) error, out io.Writer) *app {
	engine := search.NewEngine(source, logger, recorder, cfg.Lookup.CollateLanguage)
	session := lookup.NewSession(engine, store.NewResultStore(), lookup.Options{
		GroupPreview:   cfg.Lookup.GroupPreview,
		InitialLimit:   cfg.Lookup.InitialLimit,
		DiscardStale:   cfg.Lookup.DiscardStale,
		ResetExpansion: cfg.Lookup.ResetExpansion,
	}, logger, recorder)

	return &app{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		session:       session,
		metricsServer: metricsSrv,
		metricsStop:   metricsStop,
		out:           out,
	}
}

// close flushes telemetry.
func (a *app) close() {
	if a.metricsStop == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.metricsStop(ctx); err != nil {
		logging.Warn(a.logger, "metrics shutdown failed", "error", err)
	}
}

// describeError turns a search error into the line shown to the user.
func describeError(err error) string {
	if invalid, ok := search.AsInvalidInput(err); ok {
		return "Invalid input: " + invalid.Message
	}
	if errors.Is(err, lookup.ErrStaleResult) {
		return "Result discarded: a newer search was issued"
	}
	if failure, ok := providers.AsFailure(err); ok {
		return fmt.Sprintf("Error %d: %s", failure.Status, failure.Message)
	}
	return "Error: " + err.Error()
}
