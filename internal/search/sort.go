package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/player-lookup/internal/domain/players"
)

type keyed struct {
	player players.Player
	last   string
	first  string
}

// sortByName orders players by last name, then first name, using the
// collation rules of tag on the lower-cased names. Equal keys keep input order.
func sortByName(items []players.Player, tag language.Tag) {
	// Collators keep scratch buffers, so each sort gets its own.
	c := collate.New(tag)

	rows := make([]keyed, len(items))
	for i, p := range items {
		rows[i] = keyed{player: p, last: strings.ToLower(p.NameLast), first: strings.ToLower(p.NameFirst)}
	}

	sort.SliceStable(rows, func(a, b int) bool {
		if cmp := c.CompareString(rows[a].last, rows[b].last); cmp != 0 {
			return cmp < 0
		}
		return c.CompareString(rows[a].first, rows[b].first) < 0
	})

	for i := range rows {
		items[i] = rows[i].player
	}
}

// parseLanguage resolves a BCP 47 tag, falling back to English.
func parseLanguage(raw string) language.Tag {
	if raw == "" {
		return language.English
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.English
	}
	return tag
}
