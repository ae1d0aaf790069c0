package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/player-lookup/internal/config"
	"github.com/preston-bernstein/player-lookup/internal/metrics"
	"github.com/preston-bernstein/player-lookup/internal/providers/fixture"
	"github.com/preston-bernstein/player-lookup/internal/testutil"
)

func newShellApp(srv httpServer) (*app, *bytes.Buffer) {
	cfg := config.Config{Lookup: config.LookupConfig{GroupPreview: 3, InitialLimit: 10, DiscardStale: true}}
	var out bytes.Buffer
	a := newAppWithSource(cfg, nil, metrics.NewRecorder(), fixture.New(), srv, nil, &out)
	return a, &out
}

func TestShellSession(t *testing.T) {
	a, out := newShellApp(nil)
	script := strings.Join([]string{
		"country USA",
		"group",
		"expand USA",
		"expand USA",
		"id bad-id!",
		"bogus",
		"help",
		"quit",
		"country CAN",
	}, "\n")

	if err := a.runShell(context.Background(), strings.NewReader(script)); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	got := out.String()
	steps := []string{
		"aaronha01",
		"griffke02",
		"Grouped by country.",
		"== USA (6) ==",
		"... 3 more (expand USA)",
		"... showing all (expand USA to collapse)",
		"... 3 more (expand USA)",
		"Invalid input: Invalid player ID format",
		`Unknown command "bogus"`,
		"Commands:",
	}
	pos := 0
	for _, step := range steps {
		i := strings.Index(got[pos:], step)
		if i < 0 {
			t.Fatalf("expected %q after offset %d in:\n%s", step, pos, got)
		}
		pos += i + len(step)
	}
	if contains(got, "walkela01") {
		t.Fatalf("expected commands after quit to be ignored")
	}
}

func TestShellInitialLoadShowsFirstPlayers(t *testing.T) {
	a, out := newShellApp(nil)
	if err := a.runShell(context.Background(), strings.NewReader("")); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	got := out.String()
	if !contains(got, "aaronha01") || !contains(got, "ohtansh01") {
		t.Fatalf("expected first ten players:\n%s", got)
	}
	if contains(got, "suzukic01") {
		t.Fatalf("expected the eleventh player to be left out:\n%s", got)
	}
}

func TestShellCountriesAndShow(t *testing.T) {
	a, out := newShellApp(nil)
	if err := a.runShell(context.Background(), strings.NewReader("countries\nname suzuki\nshow\nexpand\n")); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	got := out.String()
	if !contains(got, "CAN\nCuba\nD.R.") {
		t.Fatalf("expected countries list:\n%s", got)
	}
	if strings.Count(got, "suzukic01") < 2 {
		t.Fatalf("expected search and show to both render suzukic01:\n%s", got)
	}
	if !contains(got, "usage: expand <country>") {
		t.Fatalf("expected expand usage:\n%s", got)
	}
}

func TestShellRunsMetricsServerForItsLifetime(t *testing.T) {
	stub := &testutil.StubHTTPServer{AddrVal: ":0"}
	a, _ := newShellApp(stub)

	if err := a.runShell(context.Background(), strings.NewReader("quit\n")); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if stub.ListenCalls != 1 || stub.ShutdownCalls != 1 {
		t.Fatalf("expected one listen and one shutdown, got %d/%d", stub.ListenCalls, stub.ShutdownCalls)
	}
}

func TestShellStopsOnCancel(t *testing.T) {
	a, _ := newShellApp(nil)
	ctx, cancel := context.WithCancel(context.Background())

	reader, writer := io.Pipe()
	defer writer.Close()

	done := make(chan error, 1)
	go func() { done <- a.runShell(ctx, reader) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean exit on cancel, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("shell did not stop after cancel")
	}
	if _, err := writer.Write([]byte("id aaronha01\n")); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected input closed after the shell stopped, got %v", err)
	}
}

func TestShellQuitReleasesInput(t *testing.T) {
	a, _ := newShellApp(nil)
	reader, writer := io.Pipe()
	defer writer.Close()

	done := make(chan error, 1)
	go func() { done <- a.runShell(context.Background(), reader) }()
	if _, err := io.WriteString(writer, "quit\n"); err != nil {
		t.Fatalf("unexpected write error %v", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean exit on quit, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("shell did not stop after quit")
	}
	if _, err := io.WriteString(writer, "show\n"); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected input closed after quit, got %v", err)
	}
}
