package providers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/player-lookup/internal/domain/players"
	"github.com/preston-bernstein/player-lookup/internal/metrics"
	"github.com/preston-bernstein/player-lookup/internal/testutil"
)

func TestInstrumentedSourceRecordsSuccess(t *testing.T) {
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	src := NewInstrumentedSource(testutil.StaticSource{Players: []players.Player{{PlayerID: "aaronha01"}}}, logger, rec, "static")

	items, err := src.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 player, got %d", len(items))
	}
	if rec.ProviderCalls("static") != 1 || rec.ProviderErrors("static") != 0 {
		t.Fatalf("unexpected stats %+v", rec.Snapshot("static"))
	}
	if strings.Contains(buf.String(), "failed") {
		t.Fatalf("did not expect failure log, got %s", buf.String())
	}
}

func TestInstrumentedSourceRecordsFailure(t *testing.T) {
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	boom := errors.New("boom")
	src := NewInstrumentedSource(testutil.ErrSource{Err: boom}, logger, rec, "broken")

	_, err := src.FetchPlayers(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if rec.ProviderErrors("broken") != 1 {
		t.Fatalf("expected error to be recorded")
	}
	if !strings.Contains(buf.String(), "provider fetch failed") || !strings.Contains(buf.String(), "provider=broken") {
		t.Fatalf("expected failure log with provider, got %s", buf.String())
	}
}

func TestInstrumentedSourceMeasuresLatency(t *testing.T) {
	rec := metrics.NewRecorder()
	src := NewInstrumentedSource(testutil.StaticSource{}, nil, rec, "timed").(*instrumentedSource)
	ticks := []time.Time{time.Unix(0, 0), time.Unix(0, 0).Add(25 * time.Millisecond)}
	src.now = func() time.Time {
		t := ticks[0]
		ticks = ticks[1:]
		return t
	}

	if _, err := src.FetchPlayers(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := rec.LastCallLatency("timed"); got != 25*time.Millisecond {
		t.Fatalf("expected 25ms latency, got %s", got)
	}
}

func TestInstrumentedSourceWithoutInner(t *testing.T) {
	src := NewInstrumentedSource(nil, nil, nil, "")
	if _, err := src.FetchPlayers(context.Background()); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
