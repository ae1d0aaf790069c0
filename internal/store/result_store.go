package store

import (
	"sync"

	"github.com/preston-bernstein/player-lookup/internal/domain/players"
)

// ResultStore keeps the current result set in memory. It is thread-safe and
// copies on the way in and out, so callers never share a backing array.
type ResultStore struct {
	mu      sync.RWMutex
	players []players.Player
}

// NewResultStore constructs an empty ResultStore.
func NewResultStore() *ResultStore {
	return &ResultStore{players: []players.Player{}}
}

// List returns a copy of the current result set in order.
func (s *ResultStore) List() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]players.Player, len(s.players))
	copy(out, s.players)
	return out
}

// Replace swaps the result set for a copy of items.
func (s *ResultStore) Replace(items []players.Player) {
	next := make([]players.Player, len(items))
	copy(next, items)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = next
}

// Clear empties the result set.
func (s *ResultStore) Clear() {
	s.Replace(nil)
}
