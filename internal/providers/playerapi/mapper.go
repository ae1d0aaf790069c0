package playerapi

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/preston-bernstein/player-lookup/internal/domain/players"
	"github.com/preston-bernstein/player-lookup/internal/providers"
)

// parsePlayers reads the {"players": [...]} envelope. An empty body, invalid
// JSON or a missing/non-array players field is malformed; an empty array is not.
func parsePlayers(body []byte) ([]players.Player, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty body", providers.ErrMalformedResponse)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", providers.ErrMalformedResponse)
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected object", providers.ErrMalformedResponse)
	}
	list := root.Get("players")
	if !list.Exists() || !list.IsArray() {
		return nil, fmt.Errorf("%w: missing players field", providers.ErrMalformedResponse)
	}

	out := make([]players.Player, 0, len(list.Array()))
	list.ForEach(func(_, v gjson.Result) bool {
		if v.IsObject() {
			out = append(out, mapPlayer(v))
		}
		return true
	})
	return out, nil
}

func mapPlayer(v gjson.Result) players.Player {
	return players.Player{
		PlayerID:     field(v, "playerId"),
		NameFirst:    field(v, "nameFirst"),
		NameLast:     field(v, "nameLast"),
		BirthYear:    field(v, "birthYear"),
		BirthCountry: field(v, "birthCountry"),
		BirthCity:    field(v, "birthCity"),
		Bats:         field(v, "bats"),
		Throws:       field(v, "throws"),
	}
}

// field reads a scalar as text; numbers keep their shortest form (1934.0 -> "1934").
func field(v gjson.Result, key string) string {
	r := v.Get(key)
	switch r.Type {
	case gjson.String, gjson.Number:
		return r.String()
	default:
		return ""
	}
}
