package grouping

// Expansion records which countries are expanded. Missing keys are collapsed.
// Values are treated as immutable: Toggle returns a new map.
type Expansion map[string]bool

// IsExpanded reports whether country is expanded.
func (e Expansion) IsExpanded(country string) bool {
	return e[country]
}

// Toggle returns a copy of e with only country flipped.
func (e Expansion) Toggle(country string) Expansion {
	next := e.Clone()
	if next[country] {
		delete(next, country)
	} else {
		next[country] = true
	}
	return next
}

// Clone returns an independent copy of e. The copy of a nil map is empty, not nil.
func (e Expansion) Clone() Expansion {
	out := make(Expansion, len(e))
	for k, v := range e {
		if v {
			out[k] = v
		}
	}
	return out
}
