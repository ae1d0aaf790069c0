package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/player-lookup/internal/logging"
)

// logWithProvider logs msg at level, tagged with the source name, when a logger is set.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
