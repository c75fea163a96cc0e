package engine

import (
	"fmt"

	"github.com/coverpoint/coverpoint/internal/registry"
	"github.com/coverpoint/coverpoint/internal/roles"
	"github.com/coverpoint/coverpoint/pkg/namedlist"
)

// Essentials are the persisted cores of each entity: the fields that
// cannot be recomputed. The Restore constructors rebuild everything
// derived (outcome symbols, extras splits, titles, bowler references)
// rather than trusting stored copies.

// BallEssentials carries one persisted delivery.
type BallEssentials struct {
	Index       int
	AbsIndex    int
	OverBall    string
	Runs        int
	BattingRuns int
	Boundary    bool
	NoBalls     int
	Wides       int
	LegByes     int
	Byes        int
	Penalty     int
	Dismissals  []Wicket
	Score       string
	Partnership string
	Batter      roles.BatterSnapshot
	NonStriker  roles.BatterSnapshot
	Bowler      roles.BowlerSnapshot
}

// OverEssentials carries one persisted over. Bowlers are stored by name
// and re-resolved against the inning's bowler collection.
type OverEssentials struct {
	Index       int
	StartScore  string
	BowlerNames []string
	Balls       []BallEssentials
}

// InningEssentials carries one persisted inning with its accumulators.
type InningEssentials struct {
	Index         int
	BattingTeam   string
	FieldingTeam  string
	SuperOver     bool
	Declared      bool
	Forfeited     bool
	Runs          int
	Wickets       int
	FallOfWickets []string
	Partnerships  []string
	Batters       []*roles.Batter
	Bowlers       []*roles.Bowler
	Fielders      []*roles.Fielder
	Overs         []OverEssentials
}

// MatchEssentials carries persisted match metadata and innings.
type MatchEssentials struct {
	Type    string
	Format  string
	Venue   string
	Dates   string
	Event   string
	Teams   []string
	Toss    string
	Outcome string
	Keepers map[string]string
	Squads  map[string]*registry.Squad
	Elevens map[string][]*registry.Player
	Innings []*Inning
}

// RestoreBall rebuilds a resolved delivery, recomputing the derived
// statistics and the outcome symbol from the raw counts.
func RestoreBall(e BallEssentials) *Ball {
	ball := &Ball{
		Index:       e.Index,
		AbsIndex:    e.AbsIndex,
		OverBall:    e.OverBall,
		Batter:      e.Batter,
		NonStriker:  e.NonStriker,
		Bowler:      e.Bowler,
		Runs:        e.Runs,
		BattingRuns: e.BattingRuns,
		Boundary:    e.Boundary,
		NoBalls:     e.NoBalls,
		Wides:       e.Wides,
		LegByes:     e.LegByes,
		Byes:        e.Byes,
		Penalty:     e.Penalty,
		Dismissals:  e.Dismissals,
		Score:       e.Score,
		Partnership: e.Partnership,
	}

	ball.derive()
	ball.Outcome = ball.renderOutcome()

	return ball
}

// RestoreInning rebuilds a sealed inning: accumulators re-registered,
// over bowler references re-resolved by name, title recomputed.
func RestoreInning(e InningEssentials) (*Inning, error) {
	inn := &Inning{
		Index:         e.Index,
		BattingTeam:   e.BattingTeam,
		FieldingTeam:  e.FieldingTeam,
		SuperOver:     e.SuperOver,
		Title:         inningTitle(e.Index, e.BattingTeam, e.SuperOver),
		Declared:      e.Declared,
		Forfeited:     e.Forfeited,
		runs:          e.Runs,
		wickets:       e.Wickets,
		FallOfWickets: e.FallOfWickets,
		partnerships:  e.Partnerships,
		Batters:       namedlist.New[*roles.Batter](),
		Bowlers:       namedlist.New[*roles.Bowler](),
		Fielders:      namedlist.New[*roles.Fielder](),
	}

	for _, batter := range e.Batters {
		inn.Batters.Append(batter)
	}

	for _, bowler := range e.Bowlers {
		inn.Bowlers.Append(bowler)
	}

	for _, fielder := range e.Fielders {
		inn.Fielders.Append(fielder)
	}

	for _, overData := range e.Overs {
		over := newOver(overData.Index, overData.StartScore)

		for _, name := range overData.BowlerNames {
			bowler, ok := inn.Bowlers.Get(name)
			if !ok {
				return nil, fmt.Errorf("%w: over %d bowler %q", ErrNotInEleven, overData.Index, name)
			}

			over.Bowlers = append(over.Bowlers, bowler)
		}

		for _, ballData := range overData.Balls {
			over.Balls = append(over.Balls, RestoreBall(ballData))
		}

		inn.Overs = append(inn.Overs, over)
	}

	return inn, nil
}

// RestoreMatch rebuilds a completed match from persisted essentials. The
// description is recomputed; the match is sealed and cannot be replayed.
func RestoreMatch(e MatchEssentials) *Match {
	mat := &Match{
		Type:    e.Type,
		Format:  e.Format,
		Venue:   e.Venue,
		Dates:   e.Dates,
		Event:   e.Event,
		Teams:   e.Teams,
		Toss:    e.Toss,
		Outcome: e.Outcome,
		Keepers: e.Keepers,
		Squads:  e.Squads,
		Elevens: e.Elevens,
		Innings: e.Innings,
		state:   StateComplete,
	}

	mat.Description = fmt.Sprintf("%s: %s vs %s at %s, %s",
		mat.Event, teamName(mat.Teams, 0), teamName(mat.Teams, 1), mat.Venue, mat.Dates)

	return mat
}
