package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/coverpoint/coverpoint/internal/roles"
	"github.com/coverpoint/coverpoint/pkg/rate"
)

// BattingRow is one batter's line on the batting card.
type BattingRow struct {
	Name       string
	Dismissal  string
	Runs       int
	Balls      int
	Fours      int
	Sixes      int
	StrikeRate string
}

// BattingTotals is the closing line of the batting card.
type BattingTotals struct {
	Score   string
	Overs   string
	RunRate string
	Extras  string
}

// BowlingRow is one bowler's line on the bowling card.
type BowlingRow struct {
	Name    string
	Overs   string
	Maidens int
	Runs    int
	Wickets int
	Extras  int
	Economy string
}

// GridRow is one over's line on the ball-by-ball grid.
type GridRow struct {
	Over     int
	Bowlers  string
	Outcomes []string
	Score    string
}

// BattingCard returns the batting rows in batting order plus the totals
// line. An inning with no deliveries degrades to zeroed totals.
func (inn *Inning) BattingCard() ([]BattingRow, BattingTotals) {
	rows := make([]BattingRow, 0, inn.Batters.Len())
	individual := 0

	for _, batter := range inn.Batters.Items() {
		rows = append(rows, BattingRow{
			Name:       batter.LongName,
			Dismissal:  batter.Dismissal,
			Runs:       batter.Runs,
			Balls:      batter.Balls,
			Fours:      batter.Fours,
			Sixes:      batter.Sixes,
			StrikeRate: batter.StrikeRate(),
		})
		individual += batter.Runs
	}

	if len(inn.Overs) == 0 {
		return rows, BattingTotals{
			Score:   "0-0",
			Overs:   "0 ov",
			RunRate: "RR: 0.00",
			Extras:  "Extras: 0",
		}
	}

	score := inn.ScoreString()
	if inn.wickets == allOut {
		score = strconv.Itoa(inn.runs)
	}

	balls := inn.ballsBowled()

	return rows, BattingTotals{
		Score:   score,
		Overs:   inn.oversFigure() + " ov",
		RunRate: "RR: " + rate.Format(rate.PerOver(inn.runs, balls)),
		Extras:  "Extras: " + strconv.Itoa(inn.runs-individual),
	}
}

// BowlingCard returns the bowling rows in the order the bowlers first
// bowled.
func (inn *Inning) BowlingCard() []BowlingRow {
	rows := make([]BowlingRow, 0, inn.Bowlers.Len())

	for _, bowler := range inn.Bowlers.Items() {
		rows = append(rows, BowlingRow{
			Name:    bowler.LongName,
			Overs:   bowler.Overs(),
			Maidens: bowler.Maidens,
			Runs:    bowler.Runs,
			Wickets: bowler.Wickets,
			Extras:  bowler.Extras,
			Economy: bowler.Economy(),
		})
	}

	return rows
}

// Grid returns the ball-by-ball grid, one row per over.
func (inn *Inning) Grid() []GridRow {
	rows := make([]GridRow, 0, len(inn.Overs))

	for _, over := range inn.Overs {
		names := make([]string, 0, len(over.Bowlers))
		for _, bowler := range over.Bowlers {
			names = append(names, bowler.LongName)
		}

		outcomes := make([]string, 0, len(over.Balls))
		for _, ball := range over.Balls {
			outcomes = append(outcomes, ball.Outcome)
		}

		rows = append(rows, GridRow{
			Over:     over.Index + 1,
			Bowlers:  strings.Join(names, "/"),
			Outcomes: outcomes,
			Score:    over.Score(),
		})
	}

	return rows
}

// BestBatters returns the top n batting scores as "name score" lines.
func (inn *Inning) BestBatters(n int) []string {
	ranked := make([]*roles.Batter, inn.Batters.Len())
	copy(ranked, inn.Batters.Items())

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Better(ranked[j])
	})

	return scoreLines(len(ranked), n, func(i int) (string, string) {
		return ranked[i].LongName, ranked[i].Score()
	})
}

// BestBowlers returns the top n bowling figures as "name figures" lines.
func (inn *Inning) BestBowlers(n int) []string {
	ranked := make([]*roles.Bowler, inn.Bowlers.Len())
	copy(ranked, inn.Bowlers.Items())

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Better(ranked[j])
	})

	return scoreLines(len(ranked), n, func(i int) (string, string) {
		return ranked[i].LongName, ranked[i].Score()
	})
}

// scoreLines renders up to n "name score" lines from a ranked sequence.
func scoreLines(total, n int, at func(int) (string, string)) []string {
	if n > total {
		n = total
	}

	if n < 0 {
		n = 0
	}

	lines := make([]string, 0, n)

	for i := 0; i < n; i++ {
		name, score := at(i)
		lines = append(lines, name+" "+score)
	}

	return lines
}

// ballsBowled returns the legal deliveries bowled across the inning,
// treating every over before the last as complete.
func (inn *Inning) ballsBowled() int {
	if len(inn.Overs) == 0 {
		return 0
	}

	last := inn.Overs[len(inn.Overs)-1]

	return last.Index*ballsPerOver + last.LegalBalls()
}

// oversFigure renders the overs bowled, e.g. "19.3", or "20" once the
// final over completed.
func (inn *Inning) oversFigure() string {
	last := inn.Overs[len(inn.Overs)-1]
	legal := last.LegalBalls()

	if legal%ballsPerOver != 0 {
		return fmt.Sprintf("%d.%d", last.Index, legal)
	}

	completed := last.Index
	if legal == ballsPerOver {
		completed++
	}

	return strconv.Itoa(completed)
}
