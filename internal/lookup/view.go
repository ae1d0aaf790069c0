package lookup

import (
	"github.com/preston-bernstein/player-lookup/internal/domain/players"
	"github.com/preston-bernstein/player-lookup/internal/grouping"
)

// View is the current state laid out for display. Players is set in flat
// mode, Groups in grouped mode.
type View struct {
	Grouped bool
	Total   int
	Players []players.Player
	Groups  []GroupView
}

// GroupView is one country group with its folded entries already applied.
type GroupView struct {
	Country     string
	Total       int
	Hidden      int
	Expanded    bool
	Collapsible bool // expanded and larger than the preview
	Players     []players.Player
}

// View builds the display view of the current state.
func (s *Session) View() View {
	state := s.Snapshot()
	return buildView(state, s.opts.GroupPreview)
}

func buildView(state State, preview int) View {
	v := View{Grouped: state.Grouped, Total: len(state.Players)}
	if !state.Grouped {
		v.Players = state.Players
		return v
	}

	for _, g := range grouping.ByCountry(state.Players) {
		expanded := state.Expanded.IsExpanded(g.Country)
		v.Groups = append(v.Groups, GroupView{
			Country:     g.Country,
			Total:       len(g.Players),
			Hidden:      grouping.Hidden(g, state.Expanded, preview),
			Expanded:    expanded,
			Collapsible: expanded && len(g.Players) > preview,
			Players:     grouping.Visible(g, state.Expanded, preview),
		})
	}
	return v
}
