package roles

import (
	"fmt"
	"strconv"

	"github.com/coverpoint/coverpoint/internal/registry"
	"github.com/coverpoint/coverpoint/pkg/rate"
)

// ballsPerOver is the number of legal deliveries in a completed over.
const ballsPerOver = 6

// Spell accumulates a bowler's figures across one unbroken run of overs.
type Spell struct {
	Balls   int `json:"balls"`
	Maidens int `json:"maidens"`
	Runs    int `json:"runs"`
	Wickets int `json:"wickets"`
}

// Overs renders the spell length in x.y notation.
func (s Spell) Overs() string {
	return oversNotation(s.Balls)
}

// Bowler accumulates one bowler's figures for one inning.
type Bowler struct {
	Name      string
	LongName  string
	ShortName string
	Style     string
	// Balls counts legal deliveries only.
	Balls   int
	Maidens int
	Runs    int
	Wickets int
	// Extras counts the bowling extras (wides and no-balls) conceded.
	Extras int
	Spells []Spell
}

// NewBowler creates a fresh accumulator for a player coming on to bowl.
func NewBowler(player *registry.Player) *Bowler {
	return &Bowler{
		Name:      player.Name,
		LongName:  player.LongName,
		ShortName: player.ShortName,
		Style:     player.BowlingStyle,
	}
}

// PlayerName implements namedlist.Named.
func (bw *Bowler) PlayerName() string {
	return bw.Name
}

// BeginSpell opens a new spell. The over driver calls this when the
// bowler's previous over is not part of the same unbroken run.
func (bw *Bowler) BeginSpell() {
	bw.Spells = append(bw.Spells, Spell{})
}

// Update applies one delivery: whether it was legal, whether the over is
// (so far) a completed maiden, the runs charged to the bowler, the
// wickets credited, and the bowling extras conceded.
func (bw *Bowler) Update(legal, maiden bool, runs, wickets, extras int) {
	legalBall := 0
	if legal {
		legalBall = 1
	}

	maidenOver := 0
	if maiden {
		maidenOver = 1
	}

	bw.Balls += legalBall
	bw.Maidens += maidenOver
	bw.Runs += runs
	bw.Wickets += wickets
	bw.Extras += extras

	if len(bw.Spells) == 0 {
		bw.BeginSpell()
	}

	current := &bw.Spells[len(bw.Spells)-1]
	current.Balls += legalBall
	current.Maidens += maidenOver
	current.Runs += runs
	current.Wickets += wickets
}

// Overs renders the number of overs bowled in x.y notation, where y is
// the count of legal balls (0-5) into the current over.
func (bw *Bowler) Overs() string {
	return oversNotation(bw.Balls)
}

// Economy renders runs conceded per six legal balls.
func (bw *Bowler) Economy() string {
	return rate.Format(rate.PerOver(bw.Runs, bw.Balls))
}

// Score renders the bowler's figures, e.g. "3-27 (4)".
func (bw *Bowler) Score() string {
	return fmt.Sprintf("%d-%d (%s)", bw.Wickets, bw.Runs, bw.Overs())
}

// Better reports whether bw outranks other: more wickets first, then
// fewer runs conceded, then fewer overs bowled. A bowler who never
// bowled a legal ball ranks below any bowler who did.
func (bw *Bowler) Better(other *Bowler) bool {
	if bw.Balls == 0 || other.Balls == 0 {
		return bw.Balls > other.Balls
	}

	if bw.Wickets != other.Wickets {
		return bw.Wickets > other.Wickets
	}

	if bw.Runs != other.Runs {
		return bw.Runs < other.Runs
	}

	return bw.Balls < other.Balls
}

// BowlerSnapshot is an immutable copy of a Bowler frozen at the moment a
// delivery resolved.
type BowlerSnapshot struct {
	Name      string
	LongName  string
	ShortName string
	Style     string
	Balls     int
	Maidens   int
	Runs      int
	Wickets   int
	Extras    int
	Spells    []Spell
}

// Freeze produces an immutable value snapshot, deep-copying the spells so
// the snapshot is decoupled from the still-mutating accumulator.
func (bw *Bowler) Freeze() BowlerSnapshot {
	spells := make([]Spell, len(bw.Spells))
	copy(spells, bw.Spells)

	return BowlerSnapshot{
		Name:      bw.Name,
		LongName:  bw.LongName,
		ShortName: bw.ShortName,
		Style:     bw.Style,
		Balls:     bw.Balls,
		Maidens:   bw.Maidens,
		Runs:      bw.Runs,
		Wickets:   bw.Wickets,
		Extras:    bw.Extras,
		Spells:    spells,
	}
}

// Thaw reconstructs a live accumulator from a snapshot.
func (s BowlerSnapshot) Thaw() *Bowler {
	spells := make([]Spell, len(s.Spells))
	copy(spells, s.Spells)

	return &Bowler{
		Name:      s.Name,
		LongName:  s.LongName,
		ShortName: s.ShortName,
		Style:     s.Style,
		Balls:     s.Balls,
		Maidens:   s.Maidens,
		Runs:      s.Runs,
		Wickets:   s.Wickets,
		Extras:    s.Extras,
		Spells:    spells,
	}
}

// oversNotation renders a legal-ball count as overs, e.g. 26 balls → "4.2".
func oversNotation(balls int) string {
	whole := balls / ballsPerOver
	rem := balls % ballsPerOver

	if rem == 0 {
		return strconv.Itoa(whole)
	}

	return fmt.Sprintf("%d.%d", whole, rem)
}
