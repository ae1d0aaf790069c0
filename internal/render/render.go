// Package render writes session views as plain-text tables.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/preston-bernstein/player-lookup/internal/domain/players"
	"github.com/preston-bernstein/player-lookup/internal/lookup"
)

const (
	header      = "ID\tNAME\tBORN\tCOUNTRY\tCITY\tB/T"
	placeholder = "-"
	noPlayers   = "No players found."
	noCountries = "No countries found."
)

// View writes v in its current display mode.
func View(w io.Writer, v lookup.View) error {
	if v.Total == 0 {
		_, err := fmt.Fprintln(w, noPlayers)
		return err
	}
	if v.Grouped {
		return Grouped(w, v.Groups)
	}
	return Flat(w, v.Players)
}

// Flat writes items as aligned columns under a header row.
func Flat(w io.Writer, items []players.Player) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, noPlayers)
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, header)
	for _, p := range items {
		writeRow(tw, "", p)
	}
	return tw.Flush()
}

// Grouped writes each country group under a "== COUNTRY (n) ==" heading,
// followed by a hint for folded or collapsible groups.
func Grouped(w io.Writer, groups []lookup.GroupView) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintln(w, noPlayers)
		return err
	}
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s (%d) ==\n", g.Country, g.Total)

		tw := newTable(w)
		for _, p := range g.Players {
			writeRow(tw, "  ", p)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		switch {
		case g.Hidden > 0:
			fmt.Fprintf(w, "  ... %d more (expand %s)\n", g.Hidden, g.Country)
		case g.Collapsible:
			fmt.Fprintf(w, "  ... showing all (expand %s to collapse)\n", g.Country)
		}
	}
	return nil
}

// Countries writes one country per line.
func Countries(w io.Writer, countries []string) error {
	if len(countries) == 0 {
		_, err := fmt.Fprintln(w, noCountries)
		return err
	}
	_, err := fmt.Fprintln(w, strings.Join(countries, "\n"))
	return err
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeRow(w io.Writer, indent string, p players.Player) {
	fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\t%s\t%s\n",
		indent,
		orPlaceholder(p.PlayerID),
		orPlaceholder(strings.TrimSpace(p.FullName())),
		orPlaceholder(p.BirthYear),
		orPlaceholder(p.BirthCountry),
		orPlaceholder(p.BirthCity),
		p.Handedness(placeholder),
	)
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
