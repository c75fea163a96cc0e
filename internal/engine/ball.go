package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coverpoint/coverpoint/internal/cricsheet"
	"github.com/coverpoint/coverpoint/internal/roles"
)

// Ball is one resolved delivery: the raw counts from the feed, the
// derived statistics charged to the bowler, the rendered outcome symbol,
// and frozen snapshots of the three players involved taken after the
// delivery's effects were applied. Immutable once resolved.
type Ball struct {
	// Index is the 0-based position within the over, counting illegal
	// deliveries. AbsIndex is the count of legal balls bowled in the over
	// before this delivery.
	Index    int
	AbsIndex int
	// OverBall is the conventional "over.ball" reference, e.g. "12.3".
	OverBall string

	Batter     roles.BatterSnapshot
	NonStriker roles.BatterSnapshot
	Bowler     roles.BowlerSnapshot

	// Outcome is the compact symbolic outcome, e.g. "4", "1lb", "W",
	// "2+nb", "0wd/W".
	Outcome string

	// Runs is the striker's runs off the bat; BattingRuns the total runs
	// added to the batting team.
	Runs        int
	BattingRuns int
	Boundary    bool

	NoBalls int
	Wides   int
	LegByes int
	Byes    int
	Penalty int

	Dismissals []Wicket

	// Score and Partnership freeze the inning state right after this
	// delivery resolved.
	Score       string
	Partnership string

	// Derived at construction; never recomputed elsewhere.
	BowlingExtras  int
	FieldingExtras int
	Extras         int
	BowlingRuns    int
	BowlingWickets int
	Wickets        int
}

// newBall parses one delivery into an unresolved Ball. index counts all
// deliveries so far in the over, absIndex only the legal ones; overIndex
// is the over's 0-based index in the inning.
func newBall(data cricsheet.Delivery, index, absIndex, overIndex int) (*Ball, error) {
	extras := cricsheet.Extras{}
	if data.Extras != nil {
		extras = *data.Extras
	}

	// The feed records the no-ball's one-run premium under extras; a
	// delivery is either legal or a single no-ball, never a double.
	noBalls := 0
	if extras.NoBalls > 0 {
		noBalls = 1
	}

	dismissals := make([]Wicket, 0, len(data.Wickets))

	for _, wd := range data.Wickets {
		wicket, err := newWicket(wd, data.Bowler)
		if err != nil {
			return nil, err
		}

		dismissals = append(dismissals, wicket)
	}

	ball := &Ball{
		Index:       index,
		AbsIndex:    absIndex,
		OverBall:    fmt.Sprintf("%d.%d", overIndex, absIndex+1),
		Runs:        data.Runs.Batter,
		BattingRuns: data.Runs.Total,
		Boundary:    (data.Runs.Batter == 4 || data.Runs.Batter == 6) && !data.Runs.NonBoundary,
		NoBalls:     noBalls,
		Wides:       extras.Wides,
		LegByes:     extras.LegByes,
		Byes:        extras.Byes,
		Penalty:     extras.Penalty,
		Dismissals:  dismissals,
	}

	ball.derive()
	ball.Outcome = ball.renderOutcome()

	return ball, nil
}

// derive computes the fields that depend on the raw counts. Called once
// at construction and again when restoring a persisted ball.
func (b *Ball) derive() {
	b.BowlingExtras = b.NoBalls + b.Wides
	b.FieldingExtras = b.LegByes + b.Byes + b.Penalty
	b.Extras = b.BowlingExtras + b.FieldingExtras
	b.BowlingRuns = b.BattingRuns - b.FieldingExtras
	b.BowlingWickets = 0
	b.Wickets = 0

	for _, wicket := range b.Dismissals {
		if wicket.Kind.CreditsBowler() {
			b.BowlingWickets++
		}

		if !wicket.Kind.Retirement() {
			b.Wickets++
		}
	}
}

// Legal reports whether the delivery counts toward the over's six balls.
func (b *Ball) Legal() bool {
	return b.BowlingExtras == 0
}

// Faced reports whether the striker is charged a ball faced.
func (b *Ball) Faced() bool {
	return b.Wides == 0
}

// renderOutcome renders the symbolic outcome. Wides show the extra runs
// beyond the one awarded automatically; a live dismissal overwrites the
// value with "W" except for run-outs ("+W") and dismissals on a wide
// ("/W"); retirements leave no wicket marker.
func (b *Ball) renderOutcome() string {
	var value string

	switch {
	case b.Wides > 0:
		value = strconv.Itoa(b.Wides-1) + "wd"
	case b.LegByes > 0:
		value = strconv.Itoa(b.LegByes) + "lb"
	case b.Byes > 0:
		value = strconv.Itoa(b.Byes) + "b"
	default:
		value = strconv.Itoa(b.BattingRuns)
	}

	if b.NoBalls > 0 {
		if b.LegByes > 0 || b.Byes > 0 {
			value += "+"
		}

		value += "nb"
	}

	if len(b.Dismissals) > 0 && !b.Dismissals[0].Kind.Retirement() {
		switch {
		case b.Dismissals[0].Kind == cricsheet.KindRunOut:
			value += "+W"
		case b.Wides > 0:
			value += "/W"
		default:
			value = "W"
		}
	}

	if b.Penalty > 0 {
		value += strconv.Itoa(b.Penalty) + "p"
	}

	return value
}

// String returns the outcome symbol.
func (b *Ball) String() string {
	return b.Outcome
}

// joinOutcomes renders the outcomes of a sequence of balls.
func joinOutcomes(balls []*Ball) string {
	outcomes := make([]string, 0, len(balls))
	for _, ball := range balls {
		outcomes = append(outcomes, ball.Outcome)
	}

	return strings.Join(outcomes, " ")
}
