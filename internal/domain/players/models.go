package players

// UnknownCountry is the group key used for players without a birth country.
const UnknownCountry = "Unknown"

// Player represents a baseball player as served by the player API.
// Every field may be absent upstream; absent values decode to "".
type Player struct {
	PlayerID     string `json:"playerId"`
	NameFirst    string `json:"nameFirst"`
	NameLast     string `json:"nameLast"`
	BirthYear    string `json:"birthYear"`
	BirthCountry string `json:"birthCountry"`
	BirthCity    string `json:"birthCity"`
	Bats         string `json:"bats"`
	Throws       string `json:"throws"`
}

// FullName joins first and last name with a single space.
func (p Player) FullName() string {
	return p.NameFirst + " " + p.NameLast
}

// CountryKey returns the birth country, falling back to UnknownCountry.
func (p Player) CountryKey() string {
	if p.BirthCountry == "" {
		return UnknownCountry
	}
	return p.BirthCountry
}

// Handedness renders bats/throws as "B/T". An absent side is written as
// missing, and missing alone is returned when neither side is known.
func (p Player) Handedness(missing string) string {
	if p.Bats == "" && p.Throws == "" {
		return missing
	}
	return orMissing(p.Bats, missing) + "/" + orMissing(p.Throws, missing)
}

func orMissing(s, missing string) string {
	if s == "" {
		return missing
	}
	return s
}
