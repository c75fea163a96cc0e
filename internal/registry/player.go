// Package registry holds player identity for a match: immutable Player
// records, per-team Squads that grow lazily as substitutes appear, and the
// supplementary player-info feed they are materialized from.
package registry

// Player is the identity and static attributes of one person. Immutable
// after creation. Two players are the same person iff their canonical
// names match.
type Player struct {
	// Name is the canonical name, as used throughout the delivery feed.
	Name string
	// LongName is the full display name.
	LongName string
	// ShortName is the compact display name used in outcome strings.
	ShortName string
	// ID is the numeric id from the player-info feed.
	ID int
	// BattingStyle and BowlingStyle are optional playing styles.
	BattingStyle string
	BowlingStyle string
	// Team is the squad the player belongs to for this match.
	Team string
}

// PlayerName implements namedlist.Named.
func (p *Player) PlayerName() string {
	return p.Name
}

// Same reports whether other refers to the same person.
func (p *Player) Same(other *Player) bool {
	return other != nil && p.Name == other.Name
}
