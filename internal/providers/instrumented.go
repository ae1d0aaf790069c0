package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/player-lookup/internal/domain/players"
	"github.com/preston-bernstein/player-lookup/internal/logging"
	"github.com/preston-bernstein/player-lookup/internal/metrics"
)

// instrumentedSource wraps a PlayerSource with attempt logging and metrics.
type instrumentedSource struct {
	inner   PlayerSource
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
	now     func() time.Time
}

// NewInstrumentedSource wraps the given source so every fetch is timed, logged
// and recorded. A nil inner source yields ErrProviderUnavailable on fetch.
func NewInstrumentedSource(inner PlayerSource, logger *slog.Logger, recorder *metrics.Recorder, name string) PlayerSource {
	if name == "" {
		name = "provider"
	}
	return &instrumentedSource{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
		now:     time.Now,
	}
}

func (s *instrumentedSource) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	logger := logging.FromContext(ctx, s.logger)
	if s.inner == nil {
		logWithProvider(ctx, logger, slog.LevelWarn, s.name, "provider unavailable")
		return nil, ErrProviderUnavailable
	}

	start := s.now()
	items, err := s.inner.FetchPlayers(ctx)
	elapsed := s.now().Sub(start)
	s.metrics.RecordProviderAttempt(s.name, elapsed, err)

	if err != nil {
		logWithProvider(ctx, logger, slog.LevelWarn, s.name, "provider fetch failed",
			logging.FieldDurationMS, elapsed.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	logWithProvider(ctx, logger, slog.LevelDebug, s.name, "provider fetch succeeded",
		logging.FieldCount, len(items),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return items, nil
}
