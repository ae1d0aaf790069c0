package providers

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/player-lookup/internal/domain/players"
)

const sharedKey = "players"

// sharedSource coalesces concurrent fetches into one upstream call.
type sharedSource struct {
	inner PlayerSource
	group singleflight.Group
}

// NewSharedSource returns a PlayerSource where overlapping FetchPlayers calls
// wait on a single in-flight request and each receive their own copy of the result.
func NewSharedSource(inner PlayerSource) PlayerSource {
	return &sharedSource{inner: inner}
}

func (s *sharedSource) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if s.inner == nil {
		return nil, ErrProviderUnavailable
	}
	// The shared call outlives any single caller; the transport timeout bounds it.
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(sharedKey, func() (any, error) {
		return s.inner.FetchPlayers(shared)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		items, _ := res.Val.([]players.Player)
		out := make([]players.Player, len(items))
		copy(out, items)
		return out, nil
	}
}
