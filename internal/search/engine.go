// Package search implements the player queries: validate and sanitize the raw
// input, fetch the full collection from the source, then filter and sort in memory.
package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/player-lookup/internal/domain/players"
	"github.com/preston-bernstein/player-lookup/internal/logging"
	"github.com/preston-bernstein/player-lookup/internal/metrics"
	"github.com/preston-bernstein/player-lookup/internal/providers"
	"github.com/preston-bernstein/player-lookup/internal/validate"
)

// Kind names a search operation.
type Kind string

const (
	KindID      Kind = "id"
	KindCountry Kind = "country"
	KindName    Kind = "name"
	KindPreview Kind = "preview"
)

// Query is a validated, sanitized search ready to run.
type Query struct {
	Kind  Kind
	Value string

	filter func([]players.Player) []players.Player
}

// Engine runs searches against a PlayerSource. It holds no result state;
// every call returns a fresh result set or an error.
type Engine struct {
	source  providers.PlayerSource
	logger  *slog.Logger
	metrics *metrics.Recorder
	lang    language.Tag
	now     func() time.Time
	newID   func() string
}

// NewEngine builds an Engine. lang is a BCP 47 tag used to collate names
// ("" means English).
func NewEngine(source providers.PlayerSource, logger *slog.Logger, recorder *metrics.Recorder, lang string) *Engine {
	return &Engine{
		source:  source,
		logger:  logger,
		metrics: recorder,
		lang:    parseLanguage(lang),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// ParseID validates a player id. The query yields the first player whose id
// equals the sanitized input, or an empty result when none matches.
func (e *Engine) ParseID(ctx context.Context, raw any) (Query, error) {
	if !validate.Identifier(raw) {
		return Query{}, e.reject(ctx, KindID, "playerId", "Invalid player ID format")
	}
	id := validate.Sanitize(raw)

	return Query{Kind: KindID, Value: id, filter: func(all []players.Player) []players.Player {
		for _, p := range all {
			if p.PlayerID == id {
				return []players.Player{p}
			}
		}
		return []players.Player{}
	}}, nil
}

// ParseCountry validates a country code. The query yields every player whose
// birth country equals the sanitized input exactly (case-sensitive).
func (e *Engine) ParseCountry(ctx context.Context, raw any) (Query, error) {
	if !validate.CountryCode(raw) {
		return Query{}, e.reject(ctx, KindCountry, "birthCountry", "Invalid country code format")
	}
	country := validate.Sanitize(raw)

	return Query{Kind: KindCountry, Value: country, filter: func(all []players.Player) []players.Player {
		out := make([]players.Player, 0)
		for _, p := range all {
			if p.BirthCountry == country {
				out = append(out, p)
			}
		}
		return out
	}}, nil
}

// ParseName validates free text. The query matches it against "first last"
// (substring) and against the first and last names (prefix),
// case-insensitively, then sorts by last name and first name.
func (e *Engine) ParseName(ctx context.Context, raw string) (Query, error) {
	if strings.TrimSpace(raw) == "" {
		return Query{}, e.reject(ctx, KindName, "name", "Empty search input")
	}
	query := strings.ToLower(validate.Sanitize(raw))

	return Query{Kind: KindName, Value: query, filter: func(all []players.Player) []players.Player {
		out := make([]players.Player, 0)
		for _, p := range all {
			if matchesName(p, query) {
				out = append(out, p)
			}
		}
		sortByName(out, e.lang)
		return out
	}}, nil
}

// Preview yields the first limit players in source order. A non-positive
// limit yields all of them.
func (e *Engine) Preview(limit int) Query {
	return Query{Kind: KindPreview, filter: func(all []players.Player) []players.Player {
		if limit > 0 && len(all) > limit {
			return all[:limit]
		}
		return all
	}}
}

// ByID parses and runs an id search.
func (e *Engine) ByID(ctx context.Context, raw any) ([]players.Player, error) {
	q, err := e.ParseID(ctx, raw)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx, q)
}

// ByCountry parses and runs a country search.
func (e *Engine) ByCountry(ctx context.Context, raw any) ([]players.Player, error) {
	q, err := e.ParseCountry(ctx, raw)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx, q)
}

// ByName parses and runs a name search.
func (e *Engine) ByName(ctx context.Context, raw string) ([]players.Player, error) {
	q, err := e.ParseName(ctx, raw)
	if err != nil {
		return nil, err
	}
	return e.Run(ctx, q)
}

// Countries returns the distinct non-blank birth countries of the full
// collection, sorted. Failures are normalized.
func (e *Engine) Countries(ctx context.Context) ([]string, error) {
	all, err := e.fetch(ctx)
	if err != nil {
		return nil, providers.NormalizeError(err)
	}

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range all {
		c := strings.TrimSpace(p.BirthCountry)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

func matchesName(p players.Player, query string) bool {
	first := strings.ToLower(p.NameFirst)
	last := strings.ToLower(p.NameLast)
	return strings.Contains(first+" "+last, query) ||
		strings.HasPrefix(first, query) ||
		strings.HasPrefix(last, query)
}

// Run fetches the collection and applies q. Fetch failures come back as a
// providers.Failure.
func (e *Engine) Run(ctx context.Context, q Query) ([]players.Player, error) {
	start := e.now()
	logger := logging.FromContext(ctx, e.logger)
	if logger != nil {
		logger = logger.With(
			slog.String(logging.FieldSearchID, e.newID()),
			slog.String(logging.FieldKind, string(q.Kind)),
			slog.String(logging.FieldQuery, q.Value),
		)
	}

	all, err := e.fetch(logging.WithContext(ctx, logger))
	elapsed := e.now().Sub(start)
	if err != nil {
		failure := providers.NormalizeError(err)
		e.metrics.RecordSearch(string(q.Kind), metrics.OutcomeError, elapsed)
		logging.Warn(logger, "search failed",
			logging.FieldStatusCode, failure.Status,
			logging.FieldDurationMS, elapsed.Milliseconds(),
			"error", failure.Message,
		)
		return nil, failure
	}

	result := all
	if q.filter != nil {
		result = q.filter(all)
	}
	elapsed = e.now().Sub(start)
	e.metrics.RecordSearch(string(q.Kind), metrics.OutcomeOK, elapsed)
	logging.Info(logger, "search completed",
		logging.FieldCount, len(result),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return result, nil
}

func (e *Engine) fetch(ctx context.Context) ([]players.Player, error) {
	if e.source == nil {
		return nil, providers.ErrProviderUnavailable
	}
	return e.source.FetchPlayers(ctx)
}

func (e *Engine) reject(ctx context.Context, kind Kind, field, msg string) error {
	e.metrics.RecordSearch(string(kind), metrics.OutcomeInvalid, 0)
	logging.Warn(logging.FromContext(ctx, e.logger), msg, logging.FieldKind, string(kind))
	return &InvalidInputError{Kind: kind, Field: field, Message: msg}
}
