package testutil

import "github.com/preston-bernstein/player-lookup/internal/domain/players"

// SamplePlayer returns a minimal player fixture.
func SamplePlayer(id, first, last, country string) players.Player {
	return players.Player{
		PlayerID:     id,
		NameFirst:    first,
		NameLast:     last,
		BirthYear:    "1934",
		BirthCountry: country,
		BirthCity:    "Mobile",
		Bats:         "R",
		Throws:       "R",
	}
}

// SampleRoster returns a small mixed-country roster in source order.
func SampleRoster() []players.Player {
	return []players.Player{
		SamplePlayer("aaronha01", "Hank", "Aaron", "USA"),
		SamplePlayer("aardsda01", "David", "Aardsma", "USA"),
		SamplePlayer("abadan01", "Andy", "Abad", "USA"),
		SamplePlayer("abreubo01", "Bobby", "Abreu", "Venezuela"),
		SamplePlayer("abreujo02", "Jose", "Abreu", "Cuba"),
		SamplePlayer("alouma01", "Matty", "Alou", "D.R."),
		SamplePlayer("aaronto01", "Tommie", "Aaron", "USA"),
		SamplePlayer("alomaro01", "Roberto", "Alomar", "P.R."),
		{PlayerID: "mysteryx01", NameLast: "Nobody"},
	}
}
