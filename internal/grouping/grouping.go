// Package grouping partitions a result set by birth country and tracks which
// country groups are expanded.
package grouping

import "github.com/preston-bernstein/player-lookup/internal/domain/players"

// DefaultPreview is how many players a collapsed group shows.
const DefaultPreview = 3

// Group holds the players of one country in result order.
type Group struct {
	Country string
	Players []players.Player
}

// ByCountry partitions items by CountryKey. Groups appear in the order their
// country is first seen; players keep their order within a group.
func ByCountry(items []players.Player) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)
	for _, p := range items {
		key := p.CountryKey()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Country: key})
		}
		groups[i].Players = append(groups[i].Players, p)
	}
	return groups
}

// Visible returns the players shown for g: all of them when expanded,
// otherwise the first limit. A non-positive limit uses DefaultPreview.
func Visible(g Group, exp Expansion, limit int) []players.Player {
	n := visibleCount(g, exp, limit)
	out := make([]players.Player, n)
	copy(out, g.Players[:n])
	return out
}

// Hidden returns how many players of g are folded away.
func Hidden(g Group, exp Expansion, limit int) int {
	return len(g.Players) - visibleCount(g, exp, limit)
}

func visibleCount(g Group, exp Expansion, limit int) int {
	if exp.IsExpanded(g.Country) {
		return len(g.Players)
	}
	if limit <= 0 {
		limit = DefaultPreview
	}
	return min(limit, len(g.Players))
}
