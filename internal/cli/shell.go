package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/player-lookup/internal/logging"
	"github.com/preston-bernstein/player-lookup/internal/render"
)

const (
	prompt   = "> "
	helpText = `Commands:
  id <playerId>       find a player by id
  country <code>      list players born in a country
  name <text>         find players by name
  group               toggle grouping by country
  expand <country>    show or fold all players of a country group
  show                print the current results
  countries           list birth countries
  help                show this help
  quit                leave the shell`
)

// runShell loads the initial results, then reads commands from in until
// quit, end of input or ctx cancellation. The metrics server, when
// configured, runs for the lifetime of the shell. If in is an io.Closer it
// is closed when the shell stops so a pending read can return. The read
// goroutine otherwise lives until in yields a line or EOF.
func (a *app) runShell(ctx context.Context, in io.Reader) error {
	g, gctx := errgroup.WithContext(ctx)
	loopCtx, stopLoop := context.WithCancel(gctx)
	defer stopLoop()

	if a.metricsServer != nil {
		srv := a.metricsServer
		g.Go(func() error { return serveMetrics(srv, a.logger) })
		g.Go(func() error {
			<-loopCtx.Done()
			return shutdownServer(srv, a.logger)
		})
	}

	g.Go(func() error {
		defer stopLoop()
		return a.shellLoop(loopCtx, in)
	})
	return g.Wait()
}

func (a *app) shellLoop(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	stop := make(chan struct{})
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
	}()
	defer func() {
		close(stop)
		if c, ok := in.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	if err := a.session.Load(ctx); err != nil {
		a.printf("%s\n", describeError(err))
	} else {
		a.show()
	}

	for {
		a.printf("%s", prompt)
		select {
		case <-ctx.Done():
			a.printf("\n")
			return nil
		case line, ok := <-lines:
			if !ok {
				a.printf("\n")
				return nil
			}
			if quit := a.dispatch(ctx, line); quit {
				return nil
			}
		}
	}
}

// dispatch runs one shell command and reports whether the shell should exit.
func (a *app) dispatch(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
	case "id":
		a.search(a.session.SearchByID(ctx, arg))
	case "country":
		a.search(a.session.SearchByCountry(ctx, arg))
	case "name":
		a.search(a.session.SearchByName(ctx, arg))
	case "group":
		if a.session.ToggleGroupedView() {
			a.printf("Grouped by country.\n")
		} else {
			a.printf("Flat list.\n")
		}
		a.show()
	case "expand":
		if arg == "" {
			a.printf("usage: expand <country>\n")
			return false
		}
		a.session.ToggleCountryExpansion(arg)
		a.show()
	case "show":
		a.show()
	case "countries":
		countries, err := a.session.Countries(ctx)
		if err != nil {
			a.printf("%s\n", describeError(err))
			return false
		}
		_ = render.Countries(a.out, countries)
	case "help", "?":
		a.printf("%s\n", helpText)
	case "quit", "exit":
		return true
	default:
		a.printf("Unknown command %q. Type help for a list.\n", cmd)
	}
	return false
}

// search prints the outcome of a finished search.
func (a *app) search(err error) {
	if err != nil {
		a.printf("%s\n", describeError(err))
		return
	}
	a.show()
}

func (a *app) show() {
	if err := render.View(a.out, a.session.View()); err != nil {
		logging.Warn(a.logger, "render failed", "error", err)
	}
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
