// Package roles holds the per-inning running statistics of one player in
// each role: mutable Batter/Bowler/Fielder accumulators updated one
// delivery at a time, plus the immutable snapshots frozen into historical
// deliveries. The replay drivers own the accumulators; everything here is
// pure bookkeeping.
package roles

import (
	"fmt"

	"github.com/coverpoint/coverpoint/internal/registry"
	"github.com/coverpoint/coverpoint/pkg/rate"
)

// NotOut is the dismissal text of a batter who has not been dismissed.
const NotOut = "not out"

// DismissalRetiredHurt is the dismissal text of a retired batter. A later
// reference to the batter reinstates them to NotOut.
const DismissalRetiredHurt = "retired hurt"

// DismissalAbsentHurt is the dismissal text of a batter who never batted.
const DismissalAbsentHurt = "absent hurt"

// PositionAbsent marks a batter with no batting position (absent hurt).
const PositionAbsent = -1

// Batter accumulates one batter's figures for one inning.
type Batter struct {
	Name      string
	LongName  string
	ShortName string
	Style     string
	// Position is the order in which the batter came in; PositionAbsent
	// for absent-hurt batters. TruePosition is the slot in the named
	// eleven.
	Position     int
	TruePosition int
	Runs         int
	Balls        int
	Fours        int
	Sixes        int
	Dismissal    string
}

// NewBatter creates a fresh accumulator for a player coming in to bat.
func NewBatter(player *registry.Player, position, truePosition int) *Batter {
	return &Batter{
		Name:         player.Name,
		LongName:     player.LongName,
		ShortName:    player.ShortName,
		Style:        player.BattingStyle,
		Position:     position,
		TruePosition: truePosition,
		Dismissal:    NotOut,
	}
}

// PlayerName implements namedlist.Named.
func (b *Batter) PlayerName() string {
	return b.Name
}

// Out reports whether the batter has been dismissed.
func (b *Batter) Out() bool {
	return b.Dismissal != NotOut
}

// Score renders the batter's figures, e.g. "34* (21)".
func (b *Batter) Score() string {
	notOutMark := ""
	if !b.Out() {
		notOutMark = "*"
	}

	return fmt.Sprintf("%d%s (%d)", b.Runs, notOutMark, b.Balls)
}

// StrikeRate renders runs per hundred balls faced.
func (b *Batter) StrikeRate() string {
	return rate.Format(rate.PerHundred(b.Runs, b.Balls))
}

// Update applies one delivery: runs off the bat, whether the ball counts
// as faced (everything but a wide), and whether it was a genuine boundary.
func (b *Batter) Update(runs int, faced, boundary bool) {
	b.Runs += runs

	if faced {
		b.Balls++
	}

	if boundary && runs == 4 {
		b.Fours++
	}

	if boundary && runs == 6 {
		b.Sixes++
	}
}

// Better reports whether b outranks other: more runs first, then not-out
// before out, then fewer balls faced. A batter who never faced a ball
// ranks below any batter who did.
func (b *Batter) Better(other *Batter) bool {
	if b.Balls == 0 || other.Balls == 0 {
		return b.Balls > other.Balls
	}

	if b.Runs != other.Runs {
		return b.Runs > other.Runs
	}

	if b.Out() != other.Out() {
		return !b.Out()
	}

	return b.Balls < other.Balls
}

// BatterSnapshot is an immutable copy of a Batter frozen at the moment a
// delivery resolved. Historical deliveries hold snapshots, never the live
// accumulator.
type BatterSnapshot Batter

// Freeze produces an immutable value snapshot of the current figures.
func (b *Batter) Freeze() BatterSnapshot {
	return BatterSnapshot(*b)
}

// Thaw reconstructs a live accumulator from a snapshot. Used when
// restoring a persisted match.
func (s BatterSnapshot) Thaw() *Batter {
	batter := Batter(s)

	return &batter
}
