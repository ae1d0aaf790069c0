// Package lookup holds the interactive session: the current result set, the
// display mode and the expanded countries, updated by searches.
package lookup

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/player-lookup/internal/domain/players"
	"github.com/preston-bernstein/player-lookup/internal/grouping"
	"github.com/preston-bernstein/player-lookup/internal/logging"
	"github.com/preston-bernstein/player-lookup/internal/metrics"
	"github.com/preston-bernstein/player-lookup/internal/search"
)

// ErrStaleResult is returned by a search whose result was dropped because a
// newer search was issued while it ran.
var ErrStaleResult = errors.New("result superseded by a newer search")

// Store defines the contract for holding the current result set.
type Store interface {
	List() []players.Player
	Replace([]players.Player)
	Clear()
}

// Options tunes session behavior.
type Options struct {
	GroupPreview   int
	InitialLimit   int
	DiscardStale   bool
	ResetExpansion bool
}

// State is a copy of the session state.
type State struct {
	Players  []players.Player
	Grouped  bool
	Expanded grouping.Expansion
}

// Session coordinates searches and view state over a Store.
type Session struct {
	engine  *search.Engine
	store   Store
	opts    Options
	logger  *slog.Logger
	metrics *metrics.Recorder

	mu       sync.Mutex
	issued   uint64
	grouped  bool
	expanded grouping.Expansion
}

// NewSession constructs a Session. A zero GroupPreview uses grouping.DefaultPreview.
func NewSession(engine *search.Engine, store Store, opts Options, logger *slog.Logger, recorder *metrics.Recorder) *Session {
	if opts.GroupPreview <= 0 {
		opts.GroupPreview = grouping.DefaultPreview
	}
	return &Session{
		engine:   engine,
		store:    store,
		opts:     opts,
		logger:   logger,
		metrics:  recorder,
		expanded: grouping.Expansion{},
	}
}

// SearchByID replaces the result set with the player matching raw.
func (s *Session) SearchByID(ctx context.Context, raw any) error {
	q, err := s.engine.ParseID(ctx, raw)
	if err != nil {
		return err
	}
	return s.apply(ctx, q)
}

// SearchByCountry replaces the result set with the players born in raw.
func (s *Session) SearchByCountry(ctx context.Context, raw any) error {
	q, err := s.engine.ParseCountry(ctx, raw)
	if err != nil {
		return err
	}
	return s.apply(ctx, q)
}

// SearchByName replaces the result set with the players matching raw.
func (s *Session) SearchByName(ctx context.Context, raw string) error {
	q, err := s.engine.ParseName(ctx, raw)
	if err != nil {
		return err
	}
	return s.apply(ctx, q)
}

// Load fills the result set with the first InitialLimit players.
func (s *Session) Load(ctx context.Context) error {
	return s.apply(ctx, s.engine.Preview(s.opts.InitialLimit))
}

// Countries lists the distinct birth countries of the full collection.
func (s *Session) Countries(ctx context.Context) ([]string, error) {
	return s.engine.Countries(ctx)
}

// apply runs q and commits its outcome: the result on success, an empty
// result set on failure. With DiscardStale set, only the latest issued search
// may commit.
func (s *Session) apply(ctx context.Context, q search.Query) error {
	seq := s.begin()
	result, err := s.engine.Run(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opts.DiscardStale && seq != s.issued {
		s.metrics.RecordStaleDiscard(string(q.Kind))
		logging.Info(logging.FromContext(ctx, s.logger), "stale search result discarded",
			logging.FieldKind, string(q.Kind),
			logging.FieldQuery, q.Value,
		)
		return ErrStaleResult
	}

	if err != nil {
		s.store.Clear()
		return err
	}
	s.store.Replace(result)
	if s.opts.ResetExpansion {
		s.expanded = grouping.Expansion{}
	}
	return nil
}

func (s *Session) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// ToggleGroupedView flips between the flat and grouped display. It returns
// the new mode.
func (s *Session) ToggleGroupedView() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grouped = !s.grouped
	return s.grouped
}

// ToggleCountryExpansion flips the expansion of one country group and
// returns whether it is now expanded.
func (s *Session) ToggleCountryExpansion(country string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expanded = s.expanded.Toggle(country)
	return s.expanded.IsExpanded(country)
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Players:  s.store.List(),
		Grouped:  s.grouped,
		Expanded: s.expanded.Clone(),
	}
}
