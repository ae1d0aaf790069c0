package fixture

import (
	"context"

	"github.com/preston-bernstein/player-lookup/internal/domain/players"
)

// Provider returns a static roster useful for local testing and offline demos.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return "fixture"
}

// FetchPlayers returns a deterministic set of players in a fixed order.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]players.Player, len(roster))
	copy(out, roster)
	return out, nil
}

var roster = []players.Player{
	{PlayerID: "aaronha01", NameFirst: "Hank", NameLast: "Aaron", BirthYear: "1934", BirthCountry: "USA", BirthCity: "Mobile", Bats: "R", Throws: "R"},
	{PlayerID: "aaronto01", NameFirst: "Tommie", NameLast: "Aaron", BirthYear: "1939", BirthCountry: "USA", BirthCity: "Mobile", Bats: "R", Throws: "R"},
	{PlayerID: "aardsda01", NameFirst: "David", NameLast: "Aardsma", BirthYear: "1981", BirthCountry: "USA", BirthCity: "Denver", Bats: "R", Throws: "R"},
	{PlayerID: "abadan01", NameFirst: "Andy", NameLast: "Abad", BirthYear: "1972", BirthCountry: "USA", BirthCity: "West Palm Beach", Bats: "L", Throws: "L"},
	{PlayerID: "abadfe01", NameFirst: "Fernando", NameLast: "Abad", BirthYear: "1985", BirthCountry: "D.R.", BirthCity: "La Romana", Bats: "L", Throws: "L"},
	{PlayerID: "abreubo01", NameFirst: "Bobby", NameLast: "Abreu", BirthYear: "1974", BirthCountry: "Venezuela", BirthCity: "Maracay", Bats: "L", Throws: "R"},
	{PlayerID: "abreujo02", NameFirst: "Jose", NameLast: "Abreu", BirthYear: "1987", BirthCountry: "Cuba", BirthCity: "Cienfuegos", Bats: "R", Throws: "R"},
	{PlayerID: "alomaro01", NameFirst: "Roberto", NameLast: "Alomar", BirthYear: "1968", BirthCountry: "P.R.", BirthCity: "Ponce", Bats: "B", Throws: "R"},
	{PlayerID: "alomasa02", NameFirst: "Sandy", NameLast: "Alomar", BirthYear: "1966", BirthCountry: "P.R.", BirthCity: "Salinas", Bats: "R", Throws: "R"},
	{PlayerID: "aloufe01", NameFirst: "Felipe", NameLast: "Alou", BirthYear: "1935", BirthCountry: "D.R.", BirthCity: "Haina", Bats: "R", Throws: "R"},
	{PlayerID: "aloumt01", NameFirst: "Matty", NameLast: "Alou", BirthYear: "1938", BirthCountry: "D.R.", BirthCity: "Haina", Bats: "L", Throws: "L"},
	{PlayerID: "aloumo01", NameFirst: "Moises", NameLast: "Alou", BirthYear: "1966", BirthCountry: "USA", BirthCity: "Atlanta", Bats: "R", Throws: "R"},
	{PlayerID: "griffke02", NameFirst: "Ken", NameLast: "Griffey", BirthYear: "1969", BirthCountry: "USA", BirthCity: "Donora", Bats: "L", Throws: "L"},
	{PlayerID: "ohtansh01", NameFirst: "Shohei", NameLast: "Ohtani", BirthYear: "1994", BirthCountry: "Japan", BirthCity: "Oshu", Bats: "L", Throws: "R"},
	{PlayerID: "suzukic01", NameFirst: "Ichiro", NameLast: "Suzuki", BirthYear: "1973", BirthCountry: "Japan", BirthCity: "Kasugai", Bats: "L", Throws: "R"},
	{PlayerID: "walkela01", NameFirst: "Larry", NameLast: "Walker", BirthYear: "1966", BirthCountry: "CAN", BirthCity: "Maple Ridge", Bats: "L", Throws: "R"},
	{PlayerID: "vottojo01", NameFirst: "Joey", NameLast: "Votto", BirthYear: "1983", BirthCountry: "CAN", BirthCity: "Toronto", Bats: "L", Throws: "R"},
	{PlayerID: "zimmejo02", NameFirst: "Jordan", NameLast: "Zimmermann", BirthYear: "", BirthCountry: "", BirthCity: "", Bats: "R", Throws: "R"},
}
