package engine

import (
	"fmt"

	"github.com/coverpoint/coverpoint/internal/cricsheet"
	"github.com/coverpoint/coverpoint/internal/roles"
)

// ballsPerOver is the number of legal deliveries that complete an over.
const ballsPerOver = 6

// spellLookback is how many overs back the same bowler must have bowled
// for their spell to continue: under the no-consecutive-overs rule an
// unbroken spell alternates, so with the current over already appended
// the previous over of the same spell sits three entries back.
const spellLookback = 3

// Over is an ordered sequence of deliveries, plus the distinct bowler
// accumulators that bowled in it (almost always one; injuries can force
// a mid-over change). The bowler references are non-owning: the inning's
// bowler collection owns the accumulators.
type Over struct {
	// Index is the 0-based over number within the inning.
	Index int
	// StartScore is the inning score string when the over began.
	StartScore string
	Bowlers    []*roles.Bowler
	Balls      []*Ball
}

// newOver creates the over at the given index, capturing the score at its
// start.
func newOver(index int, startScore string) *Over {
	return &Over{
		Index:      index,
		StartScore: startScore,
	}
}

// LegalBalls returns the number of legal deliveries bowled so far.
func (ov *Over) LegalBalls() int {
	legal := 0

	for _, ball := range ov.Balls {
		if ball.Legal() {
			legal++
		}
	}

	return legal
}

// Maiden reports whether the over is (so far) a completed maiden: six
// legal balls, a single bowler, and no runs charged to the bowler across
// any of its deliveries, legal or not.
func (ov *Over) Maiden() bool {
	if ov.LegalBalls() != ballsPerOver || len(ov.Bowlers) != 1 {
		return false
	}

	charged := 0
	for _, ball := range ov.Balls {
		charged += ball.BowlingRuns
	}

	return charged == 0
}

// Score returns the inning score string after the last delivery of the
// over, or the score it started at if nothing has been bowled.
func (ov *Over) Score() string {
	if len(ov.Balls) == 0 {
		return ov.StartScore
	}

	return ov.Balls[len(ov.Balls)-1].Score
}

// String renders the outcome symbols of the over's deliveries.
func (ov *Over) String() string {
	return joinOutcomes(ov.Balls)
}

// bowler resolves the delivery's bowler against the inning, registering
// them with the over and opening a new spell unless this over continues
// the spell they bowled the over before last.
func (ov *Over) bowler(name string, inn *Inning, mat *Match) (*roles.Bowler, error) {
	bowler, err := inn.bowler(name, mat)
	if err != nil {
		return nil, err
	}

	for _, seen := range ov.Bowlers {
		if seen.Name == bowler.Name {
			return bowler, nil
		}
	}

	if !inn.continuesSpell(ov, bowler) {
		bowler.BeginSpell()
	}

	ov.Bowlers = append(ov.Bowlers, bowler)

	return bowler, nil
}

// run replays the over's deliveries in order.
func (ov *Over) run(data cricsheet.OverData, inn *Inning, mat *Match) error {
	for _, delivery := range data.Deliveries {
		err := ov.playBall(delivery, inn, mat)
		if err != nil {
			return fmt.Errorf("ball %d.%d: %w", ov.Index, len(ov.Balls)+1, err)
		}
	}

	return nil
}

// playBall resolves one delivery and applies its effects in order: the
// striker's batting figures, the bowler's figures (with the maiden
// evaluated after the ball joins the over), the inning score and
// partnership, then any dismissals. The ball keeps frozen snapshots of
// the three players as they stood once everything was applied.
func (ov *Over) playBall(data cricsheet.Delivery, inn *Inning, mat *Match) error {
	striker, err := inn.batter(data.Batter, mat)
	if err != nil {
		return err
	}

	nonStriker, err := inn.batter(data.NonStriker, mat)
	if err != nil {
		return err
	}

	bowler, err := ov.bowler(data.Bowler, inn, mat)
	if err != nil {
		return err
	}

	ball, err := newBall(data, len(ov.Balls), ov.LegalBalls(), ov.Index)
	if err != nil {
		return err
	}

	ov.Balls = append(ov.Balls, ball)

	striker.Update(ball.Runs, ball.Faced(), ball.Boundary)
	bowler.Update(ball.Legal(), ov.Maiden(), ball.BowlingRuns, ball.BowlingWickets, ball.BowlingExtras)

	err = inn.updateScoreAndPartnership(ball, striker)
	if err != nil {
		return err
	}

	ball.Score = inn.ScoreString()
	ball.Partnership = inn.partnershipString(ball.Wickets > 0)

	if len(ball.Dismissals) > 0 {
		err = inn.resolveDismissals(ball, bowler, mat)
		if err != nil {
			return err
		}
	}

	ball.Batter = striker.Freeze()
	ball.NonStriker = nonStriker.Freeze()
	ball.Bowler = bowler.Freeze()

	return nil
}
