package cli

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/preston-bernstein/player-lookup/internal/config"
	"github.com/preston-bernstein/player-lookup/internal/metrics"
	"github.com/preston-bernstein/player-lookup/internal/providers/fixture"
	"github.com/preston-bernstein/player-lookup/internal/providers/playerapi"
	"github.com/preston-bernstein/player-lookup/internal/testutil"
)

func TestSelectSource(t *testing.T) {
	cases := []struct {
		provider string
		wantHTTP bool
	}{
		{"http", true},
		{"", true},
		{"FIXTURE", false},
		{"mystery", true},
	}
	for _, tc := range cases {
		src := selectSource(config.Config{Provider: tc.provider}, nil)
		_, isHTTP := src.(*playerapi.Client)
		_, isFixture := src.(*fixture.Provider)
		if isHTTP != tc.wantHTTP || isFixture == tc.wantHTTP {
			t.Fatalf("%q: unexpected source %T", tc.provider, src)
		}
	}
}

func TestSelectSourceWarnsOnUnknown(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	selectSource(config.Config{Provider: "mystery"}, logger)
	if !contains(buf.String(), "unknown provider") {
		t.Fatalf("expected warning, got %s", buf.String())
	}
}

func TestSelectSourceUnknownUsesConfiguredClient(t *testing.T) {
	api := testutil.NewPlayersAPI(t, http.StatusOK, `{"players":[{"playerId":"aaronha01"}]}`)
	cfg := config.Config{Provider: "mystery", PlayerAPI: config.PlayerAPIConfig{BaseURL: api.URL, Timeout: time.Second}}

	items, err := selectSource(cfg, nil).FetchPlayers(context.Background())
	if err != nil || len(items) != 1 || items[0].PlayerID != "aaronha01" {
		t.Fatalf("expected configured client to reach the api, got %v (%v)", items, err)
	}
	if api.Hits() != 1 {
		t.Fatalf("expected one request, got %d", api.Hits())
	}
}

func TestSourceName(t *testing.T) {
	if got := sourceName(fixture.New()); got != "fixture" {
		t.Fatalf("expected fixture, got %s", got)
	}
	if got := sourceName(testutil.StaticSource{}); got != "testutil.staticsource" {
		t.Fatalf("expected type-derived name, got %s", got)
	}
	if got := sourceName(nil); got != "provider" {
		t.Fatalf("expected fallback name, got %s", got)
	}
}

func TestBuildSourceRecordsProviderAttempts(t *testing.T) {
	rec := metrics.NewRecorder()
	src := buildSource(config.Config{Provider: "fixture"}, nil, rec)

	items, err := src.FetchPlayers(context.Background())
	if err != nil || len(items) == 0 {
		t.Fatalf("expected fixture players, got %d (%v)", len(items), err)
	}
	if rec.ProviderCalls("fixture") != 1 {
		t.Fatalf("expected one recorded attempt, got %d", rec.ProviderCalls("fixture"))
	}
}
