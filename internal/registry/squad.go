package registry

import (
	"fmt"
	"sort"
)

// Squad maps canonical names to players for one team, for the lifetime of
// a match. It grows lazily (a substitute fielder is added on first
// reference) and never shrinks.
type Squad struct {
	Team    string
	players map[string]*Player
}

// NewSquad creates an empty squad for a team.
func NewSquad(team string) *Squad {
	return &Squad{
		Team:    team,
		players: make(map[string]*Player),
	}
}

// Add materializes a player from an info entry and adds it to the squad.
func (s *Squad) Add(info PlayerInfo) *Player {
	player := &Player{
		Name:         info.CardLong,
		LongName:     info.KnownAs,
		ShortName:    info.MobileName,
		ID:           info.ObjectID,
		BattingStyle: info.BattingStyle,
		BowlingStyle: info.BowlingStyle,
		Team:         s.Team,
	}
	s.players[player.Name] = player

	return player
}

// Get returns the player with the given canonical name, and whether the
// squad contains them. A miss is control flow, not an error: the caller
// decides whether to materialize the player.
func (s *Squad) Get(name string) (*Player, bool) {
	player, ok := s.players[name]

	return player, ok
}

// Len returns the number of players in the squad.
func (s *Squad) Len() int {
	return len(s.players)
}

// Players returns every player in the squad, ordered by canonical name.
func (s *Squad) Players() []*Player {
	players := make([]*Player, 0, len(s.players))
	for _, player := range s.players {
		players = append(players, player)
	}

	sort.Slice(players, func(i, j int) bool {
		return players[i].Name < players[j].Name
	})

	return players
}

// Playing resolves an ordered list of feed names into the playing eleven,
// adding any player not yet in the squad from the info feed. A name with
// no info entry is a malformed-input error.
func (s *Squad) Playing(names []string, infos map[string]PlayerInfo) ([]*Player, error) {
	eleven := make([]*Player, 0, len(names))

	for _, name := range names {
		player, ok := s.Get(name)
		if !ok {
			info, found := infos[name]
			if !found {
				return nil, fmt.Errorf("%w: %q (team %s)", ErrUnknownPlayer, name, s.Team)
			}

			player = s.Add(info)
		}

		eleven = append(eleven, player)
	}

	return eleven, nil
}
