package registry

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Feed lookup errors.
var (
	// ErrUnknownPlayer indicates a feed name with no player-info entry.
	ErrUnknownPlayer = errors.New("registry: player not in info feed")
	// ErrUnknownTeam indicates a team with no player-info entries.
	ErrUnknownTeam = errors.New("registry: team not in info feed")
)

// PlayerInfo is one entry of the supplementary per-player registry feed
// (name variants, playing styles, keeper flag).
type PlayerInfo struct {
	CardLong     string `json:"card_long"`
	KnownAs      string `json:"known_as"`
	MobileName   string `json:"mobile_name"`
	ObjectID     int    `json:"object_id"`
	BattingStyle string `json:"batting_style"`
	BowlingStyle string `json:"bowling_style"`
	Keeper       bool   `json:"keeper"`
	Captain      bool   `json:"captain"`
}

// Feed is the player-info side channel for one match: per-team player
// entries keyed by canonical (card-long) name, plus the substitutes that
// may field without being in either eleven.
type Feed struct {
	Teams       map[string]map[string]PlayerInfo `json:"teams"`
	Substitutes []PlayerInfo                     `json:"substitutes,omitempty"`
}

// TeamInfo returns the player-info entries for one team.
func (f *Feed) TeamInfo(team string) (map[string]PlayerInfo, error) {
	info, ok := f.Teams[team]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}

	return info, nil
}

// Substitute returns the info entry for a substitute fielder by canonical
// name.
func (f *Feed) Substitute(name string) (PlayerInfo, error) {
	for _, info := range f.Substitutes {
		if info.CardLong == name {
			return info, nil
		}
	}

	return PlayerInfo{}, fmt.Errorf("%w: substitute %q", ErrUnknownPlayer, name)
}

// Keeper returns the canonical name of the designated wicket-keeper for a
// team, or the empty string when none is flagged.
func (f *Feed) Keeper(team string) string {
	for name, info := range f.Teams[team] {
		if info.Keeper {
			return name
		}
	}

	return ""
}

// DecodeFeed decodes a raw player-info feed.
func DecodeFeed(raw []byte) (*Feed, error) {
	var feed Feed

	err := json.Unmarshal(raw, &feed)
	if err != nil {
		return nil, fmt.Errorf("decode registry feed: %w", err)
	}

	return &feed, nil
}

// FallbackFeed builds a minimal feed from the playing elevens of the
// match itself, for matches with no supplementary registry data. Every
// name variant is the card-long name and no keeper is flagged.
func FallbackFeed(players map[string][]string) *Feed {
	feed := &Feed{Teams: make(map[string]map[string]PlayerInfo, len(players))}

	for team, names := range players {
		feed.Teams[team] = make(map[string]PlayerInfo, len(names))
		for _, name := range names {
			feed.Teams[team][name] = PlayerInfo{
				CardLong:   name,
				KnownAs:    name,
				MobileName: name,
			}
		}
	}

	return feed
}
