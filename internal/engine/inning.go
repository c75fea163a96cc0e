package engine

import (
	"errors"
	"fmt"

	"github.com/coverpoint/coverpoint/internal/cricsheet"
	"github.com/coverpoint/coverpoint/internal/roles"
	"github.com/coverpoint/coverpoint/pkg/namedlist"
)

// Replay errors local to one inning.
var (
	// ErrNotInEleven indicates a batter or bowler name outside the
	// playing eleven.
	ErrNotInEleven = errors.New("engine: player not in playing eleven")
	// ErrNotAtCrease indicates the feed named a striker who is not one of
	// the two batters at the crease.
	ErrNotAtCrease = errors.New("engine: striker not at the crease")
)

// creaseSize is the number of batters at the crease.
const creaseSize = 2

// partnershipRows is the partnership matrix height: one row per crease
// position plus the combined pair.
const partnershipRows = creaseSize + 1

// allOut is the wicket count that ends a full-strength innings.
const allOut = 10

// inningsPerTeam is the most innings one team bats in any format; match
// inning indexes at or past it are a team's 2nd innings.
const inningsPerTeam = 2

// Inning replays one team's turn at batting and owns every accumulator it
// creates: the overs, the batter/bowler/fielder collections, the running
// score, the partnership matrix and the fall-of-wickets log. Sealed
// (read-only) once run completes.
type Inning struct {
	// Index is the 0-based position of the inning in the match.
	Index        int
	BattingTeam  string
	FieldingTeam string
	SuperOver    bool
	Title        string

	Overs    []*Over
	Batters  *namedlist.List[*roles.Batter]
	Bowlers  *namedlist.List[*roles.Bowler]
	Fielders *namedlist.List[*roles.Fielder]

	FallOfWickets []string
	Declared      bool
	Forfeited     bool

	runs    int
	wickets int

	// closed partnerships, in order; the open one is derived on demand.
	partnerships []string

	// atCrease is the ordered pair of batters currently in; pship is the
	// partnership matrix: rows for each crease position plus the combined
	// pair, columns for runs and balls.
	atCrease []*roles.Batter
	pship    [partnershipRows][2]int
}

// newInning creates the inning for one innings record and seeds a fielder
// accumulator for every member of the fielding eleven.
func newInning(index int, data cricsheet.InningData, mat *Match) (*Inning, error) {
	fieldingTeam := mat.opponent(data.Team)
	if fieldingTeam == "" {
		return nil, fmt.Errorf("%w: batting team %q not in match", ErrNotInEleven, data.Team)
	}

	inn := &Inning{
		Index:        index,
		BattingTeam:  data.Team,
		FieldingTeam: fieldingTeam,
		SuperOver:    data.SuperOver,
		Title:        inningTitle(index, data.Team, data.SuperOver),
		Batters:      namedlist.New[*roles.Batter](),
		Bowlers:      namedlist.New[*roles.Bowler](),
		Fielders:     namedlist.New[*roles.Fielder](),
	}

	for _, player := range mat.Elevens[fieldingTeam] {
		_, err := inn.fielder(player.Name, false, mat)
		if err != nil {
			return nil, err
		}
	}

	return inn, nil
}

// inningTitle renders the inning heading, e.g. "Alphaland 1st Innings".
func inningTitle(index int, team string, superOver bool) string {
	if superOver {
		return team + " Super Over"
	}

	ordinal := "1st"
	if index >= inningsPerTeam {
		ordinal = "2nd"
	}

	return fmt.Sprintf("%s %s Innings", team, ordinal)
}

// run replays the innings record: pre-penalty runs, every over in order,
// then terminal markers (declaration, forfeit, absences, post-penalty).
func (inn *Inning) run(data cricsheet.InningData, mat *Match) error {
	if data.PenaltyRuns != nil {
		inn.runs += data.PenaltyRuns.Pre
	}

	for _, overData := range data.Overs {
		over := newOver(len(inn.Overs), inn.ScoreString())
		inn.Overs = append(inn.Overs, over)

		err := over.run(overData, inn, mat)
		if err != nil {
			return fmt.Errorf("over %d: %w", over.Index, err)
		}
	}

	inn.Declared = data.Declared
	inn.Forfeited = data.Forfeited

	for _, name := range data.AbsentHurt {
		err := inn.absentBatter(name, mat)
		if err != nil {
			return err
		}
	}

	if data.PenaltyRuns != nil {
		inn.runs += data.PenaltyRuns.Post
	}

	return nil
}

// Score returns the inning score as (runs, wickets).
func (inn *Inning) Score() (int, int) {
	return inn.runs, inn.wickets
}

// ScoreString renders the score, e.g. "250-6", or "250-6d" once declared.
func (inn *Inning) ScoreString() string {
	declaredMark := ""
	if inn.Declared {
		declaredMark = "d"
	}

	return fmt.Sprintf("%d-%d%s", inn.runs, inn.wickets, declaredMark)
}

// Partnerships returns every partnership of the inning in order: the
// closed ones plus the currently open one, if any.
func (inn *Inning) Partnerships() []string {
	pships := make([]string, len(inn.partnerships))
	copy(pships, inn.partnerships)

	last := inn.lastBall()
	if last == nil {
		return pships
	}

	if len(pships) == 0 || pships[len(pships)-1] != last.Partnership {
		pships = append(pships, last.Partnership)
	}

	return pships
}

// lastBall returns the most recent delivery, or nil for an empty inning.
func (inn *Inning) lastBall() *Ball {
	for i := len(inn.Overs) - 1; i >= 0; i-- {
		if n := len(inn.Overs[i].Balls); n > 0 {
			return inn.Overs[i].Balls[n-1]
		}
	}

	return nil
}

// batter returns the live accumulator for a batter, creating it on first
// reference. A previously retired-hurt batter referenced again is
// reinstated: dismissal reset and returned to the crease.
func (inn *Inning) batter(name string, mat *Match) (*roles.Batter, error) {
	batter, ok := inn.Batters.Get(name)
	if ok {
		if batter.Dismissal == roles.DismissalRetiredHurt {
			batter.Dismissal = roles.NotOut
			inn.atCrease = append(inn.atCrease, batter)
		}

		return batter, nil
	}

	return inn.newBatter(name, mat, false)
}

// absentBatter records a batter who never took the crease.
func (inn *Inning) absentBatter(name string, mat *Match) error {
	_, ok := inn.Batters.Get(name)
	if ok {
		return nil
	}

	_, err := inn.newBatter(name, mat, true)

	return err
}

// newBatter creates the accumulator for a batter coming in, at the next
// batting position, and puts them at the crease unless absent.
func (inn *Inning) newBatter(name string, mat *Match, absent bool) (*roles.Batter, error) {
	player, truePosition := mat.elevenPlayer(inn.BattingTeam, name)
	if player == nil {
		return nil, fmt.Errorf("%w: batter %q (%s)", ErrNotInEleven, name, inn.BattingTeam)
	}

	batter := roles.NewBatter(player, inn.Batters.Len(), truePosition)

	if absent {
		batter.Position = roles.PositionAbsent
		batter.Dismissal = roles.DismissalAbsentHurt
	} else {
		inn.atCrease = append(inn.atCrease, batter)
	}

	inn.Batters.Append(batter)

	return batter, nil
}

// bowler returns the live accumulator for a bowler, creating it on first
// reference.
func (inn *Inning) bowler(name string, mat *Match) (*roles.Bowler, error) {
	bowler, ok := inn.Bowlers.Get(name)
	if ok {
		return bowler, nil
	}

	player, _ := mat.elevenPlayer(inn.FieldingTeam, name)
	if player == nil {
		return nil, fmt.Errorf("%w: bowler %q (%s)", ErrNotInEleven, name, inn.FieldingTeam)
	}

	bowler = roles.NewBowler(player)
	inn.Bowlers.Append(bowler)

	return bowler, nil
}

// fielder returns the live accumulator for a fielder, creating it on
// first reference. A fielder outside the eleven is materialized from the
// substitute registry and added to the squad.
func (inn *Inning) fielder(name string, substitute bool, mat *Match) (*roles.Fielder, error) {
	fielder, ok := inn.Fielders.Get(name)
	if ok {
		return fielder, nil
	}

	player, _ := mat.elevenPlayer(inn.FieldingTeam, name)
	if player == nil {
		substituted, err := mat.substitutePlayer(inn.FieldingTeam, name)
		if err != nil {
			return nil, err
		}

		player = substituted
	}

	keeper := player.Name == mat.Keepers[inn.FieldingTeam]
	fielder = roles.NewFielder(player, keeper, substitute)
	inn.Fielders.Append(fielder)

	return fielder, nil
}

// continuesSpell reports whether the bowler's previous over belongs to
// the same unbroken spell. With the current over already appended, the
// candidate over sits spellLookback entries back; the spell continues
// only when this bowler is starting the over and finished that one.
func (inn *Inning) continuesSpell(ov *Over, bowler *roles.Bowler) bool {
	if len(ov.Bowlers) > 0 || len(inn.Overs) < spellLookback {
		return false
	}

	previous := inn.Overs[len(inn.Overs)-spellLookback]

	return previous.lastBowlerName() == bowler.Name
}

// lastBowlerName returns the name of the over's final bowler.
func (ov *Over) lastBowlerName() string {
	if len(ov.Bowlers) == 0 {
		return ""
	}

	return ov.Bowlers[len(ov.Bowlers)-1].Name
}

// updateScoreAndPartnership applies a resolved delivery to the inning
// score and the partnership matrix.
func (inn *Inning) updateScoreAndPartnership(ball *Ball, striker *roles.Batter) error {
	position := -1

	for i, batter := range inn.atCrease {
		if batter.Name == striker.Name {
			position = i

			break
		}
	}

	if position < 0 {
		return fmt.Errorf("%w: %q", ErrNotAtCrease, striker.Name)
	}

	faced := 0
	if ball.Faced() {
		faced = 1
	}

	inn.pship[position][0] += ball.Runs
	inn.pship[position][1] += faced
	inn.pship[creaseSize][0] += ball.BattingRuns
	inn.pship[creaseSize][1] += faced

	inn.runs += ball.BattingRuns
	inn.wickets += ball.Wickets

	return nil
}

// partnershipString renders the active partnership, starred while the
// pair is unbroken, e.g. "54* (40) (Opener 30 (22), Anchor 20 (18))".
func (inn *Inning) partnershipString(wicket bool) string {
	marker := "*"
	if wicket {
		marker = ""
	}

	names := [creaseSize]string{}
	for i := 0; i < creaseSize && i < len(inn.atCrease); i++ {
		names[i] = inn.atCrease[i].ShortName
	}

	return fmt.Sprintf("%d%s (%d) (%s %d (%d), %s %d (%d))",
		inn.pship[creaseSize][0], marker, inn.pship[creaseSize][1],
		names[0], inn.pship[0][0], inn.pship[0][1],
		names[1], inn.pship[1][0], inn.pship[1][1],
	)
}

// resolveDismissals applies every dismissal of a delivery: set the out
// batter's dismissal text, credit the fielders, close the partnership,
// clear the crease slot and log the fall of wicket (retirements close
// the partnership but never count as a fallen wicket).
func (inn *Inning) resolveDismissals(ball *Ball, bowler *roles.Bowler, mat *Match) error {
	for _, wicket := range ball.Dismissals {
		out, err := inn.batter(wicket.Batter, mat)
		if err != nil {
			return err
		}

		fielders := make([]*roles.Fielder, 0, len(wicket.Fielders))

		for _, ref := range wicket.Fielders {
			fielder, fieldErr := inn.fielder(ref.Name, ref.Substitute, mat)
			if fieldErr != nil {
				return fieldErr
			}

			fielders = append(fielders, fielder)
		}

		out.Dismissal = dismissalText(wicket.Kind, bowler, fielders)

		for _, fielder := range fielders {
			fielder.Credit(wicket.Kind)
		}

		fell := !wicket.Kind.Retirement()

		inn.partnerships = append(inn.partnerships, inn.partnershipString(fell))
		inn.removeFromCrease(out.Name)
		inn.pship = [partnershipRows][2]int{}

		if fell {
			entry := fmt.Sprintf("%s (%s, %s ov)", ball.Score, out.LongName, ball.OverBall)
			inn.FallOfWickets = append(inn.FallOfWickets, entry)
		}
	}

	return nil
}

// removeFromCrease takes a batter out of the at-crease pair.
func (inn *Inning) removeFromCrease(name string) {
	for i, batter := range inn.atCrease {
		if batter.Name == name {
			inn.atCrease = append(inn.atCrease[:i], inn.atCrease[i+1:]...)

			return
		}
	}
}

// dismissalText renders the scorecard dismissal line for one wicket.
func dismissalText(kind cricsheet.DismissalKind, bowler *roles.Bowler, fielders []*roles.Fielder) string {
	firstFielder := ""
	if len(fielders) > 0 {
		firstFielder = fielders[0].String()
	}

	switch kind {
	case cricsheet.KindBowled:
		return "b " + bowler.ShortName
	case cricsheet.KindLBW:
		return "lbw b " + bowler.ShortName
	case cricsheet.KindCaught:
		return fmt.Sprintf("c %s b %s", firstFielder, bowler.ShortName)
	case cricsheet.KindCaughtAndBowled:
		return "c & b " + bowler.ShortName
	case cricsheet.KindStumped:
		return fmt.Sprintf("st %s b %s", firstFielder, bowler.ShortName)
	case cricsheet.KindRunOut:
		if len(fielders) == 0 {
			return "run out"
		}

		joined := fielders[0].String()
		for _, fielder := range fielders[1:] {
			joined += "/" + fielder.String()
		}

		return fmt.Sprintf("run out (%s)", joined)
	case cricsheet.KindRetiredHurt, cricsheet.KindRetiredNotOut:
		return roles.DismissalRetiredHurt
	case cricsheet.KindHitWicket:
		return "hit wicket b " + bowler.ShortName
	case cricsheet.KindObstructingField:
		return string(cricsheet.KindObstructingField)
	case cricsheet.KindTimedOut:
		return string(cricsheet.KindTimedOut)
	case cricsheet.KindHandledTheBall:
		return string(cricsheet.KindHandledTheBall)
	default:
		return string(kind)
	}
}
