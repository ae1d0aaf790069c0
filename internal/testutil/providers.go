package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/player-lookup/internal/domain/players"
)

// StaticSource returns the provided players with no error.
type StaticSource struct {
	Players []players.Player
}

func (s StaticSource) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	out := make([]players.Player, len(s.Players))
	copy(out, s.Players)
	return out, nil
}

// ErrSource always returns the provided error.
type ErrSource struct {
	Err error
}

func (s ErrSource) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return nil, s.Err
}

// CountingSource returns Players and counts calls.
type CountingSource struct {
	mu      sync.Mutex
	Players []players.Player
	Err     error
	calls   int
}

func (s *CountingSource) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]players.Player, len(s.Players))
	copy(out, s.Players)
	return out, nil
}

// Calls reports how many fetches were made.
func (s *CountingSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// BlockingSource holds every fetch until Release is called or the context ends.
// Started is closed when the first fetch begins.
type BlockingSource struct {
	Players []players.Player
	Err     error
	Started chan struct{}

	release     chan struct{}
	startOnce   sync.Once
	releaseOnce sync.Once
	mu          sync.Mutex
	calls       int
}

// NewBlockingSource builds a BlockingSource returning items once released.
func NewBlockingSource(items []players.Player) *BlockingSource {
	return &BlockingSource{
		Players: items,
		Started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (s *BlockingSource) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	s.startOnce.Do(func() { close(s.Started) })

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.release:
	}
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]players.Player, len(s.Players))
	copy(out, s.Players)
	return out, nil
}

// Release unblocks all pending and future fetches.
func (s *BlockingSource) Release() {
	s.releaseOnce.Do(func() { close(s.release) })
}

// Calls reports how many fetches were made.
func (s *BlockingSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
