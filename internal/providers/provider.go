package providers

import (
	"context"

	"github.com/preston-bernstein/player-lookup/internal/domain/players"
)

// PlayerSource fetches the full player collection in upstream order.
// Implementations must return an error rather than an empty result when the
// upstream reports a non-success status or a payload without players.
type PlayerSource interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}
