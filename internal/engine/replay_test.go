package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverpoint/coverpoint/internal/cricsheet"
	"github.com/coverpoint/coverpoint/internal/registry"
)

// Fixture teams.
const (
	teamA = "Avalon"
	teamB = "Brockton"
)

var (
	elevenA = []string{"Archer", "Bell", "Cole", "Dunn", "Evans"}
	elevenB = []string{"Frost", "Gale", "Hart", "Irwin", "Jones"}
)

// testFeed builds the player-info side channel for the fixture squads.
// Jones keeps wicket for Brockton; Kerr is available as a substitute.
func testFeed() *registry.Feed {
	feed := &registry.Feed{
		Teams: map[string]map[string]registry.PlayerInfo{
			teamA: {},
			teamB: {},
		},
		Substitutes: []registry.PlayerInfo{testInfo("Kerr", false)},
	}

	for _, name := range elevenA {
		feed.Teams[teamA][name] = testInfo(name, false)
	}

	for _, name := range elevenB {
		feed.Teams[teamB][name] = testInfo(name, name == "Jones")
	}

	return feed
}

func testInfo(name string, keeper bool) registry.PlayerInfo {
	return registry.PlayerInfo{
		CardLong:   name,
		KnownAs:    "Alex " + name,
		MobileName: "A " + name,
		Keeper:     keeper,
	}
}

// testMatchData wraps innings into a decoded feed with fixture metadata.
func testMatchData(innings ...cricsheet.InningData) *cricsheet.MatchData {
	return &cricsheet.MatchData{
		Info: cricsheet.Info{
			BallsPerOver: 6,
			Dates:        []string{"2021-03-05", "2021-03-08"},
			Event:        &cricsheet.EventInfo{Name: "County Shield", MatchNumber: 3},
			MatchType:    "T20",
			TeamType:     "club",
			Teams:        []string{teamA, teamB},
			Players: map[string][]string{
				teamA: elevenA,
				teamB: elevenB,
			},
			Toss:    cricsheet.TossInfo{Winner: teamA, Decision: "bat"},
			Outcome: cricsheet.OutcomeInfo{Winner: teamA, By: &cricsheet.OutcomeBy{Runs: 20}},
			Venue:   "Lakeside Oval",
		},
		Innings: innings,
	}
}

// runMatch replays the given innings against the fixture feed.
func runMatch(t *testing.T, innings ...cricsheet.InningData) *Match {
	t.Helper()

	mat, err := NewMatch(testMatchData(innings...), testFeed())
	require.NoError(t, err)
	require.NoError(t, mat.Run())

	return mat
}

// ballTo builds a plain scored delivery to the named striker.
func ballTo(batter, nonStriker, bowler string, runs int) cricsheet.Delivery {
	return cricsheet.Delivery{
		Batter:     batter,
		Bowler:     bowler,
		NonStriker: nonStriker,
		Runs:       cricsheet.Runs{Batter: runs, Total: runs},
	}
}

// overOf wraps deliveries into an over record.
func overOf(index int, deliveries ...cricsheet.Delivery) cricsheet.OverData {
	return cricsheet.OverData{Over: index, Deliveries: deliveries}
}

func TestReplay_ScoreAndCards(t *testing.T) {
	t.Parallel()

	wide := ballTo("Archer", "Bell", "Frost", 0)
	wide.Runs = cricsheet.Runs{Total: 1}
	wide.Extras = &cricsheet.Extras{Wides: 1}

	inning := cricsheet.InningData{
		Team: teamA,
		Overs: []cricsheet.OverData{
			overOf(0,
				ballTo("Archer", "Bell", "Frost", 4),
				ballTo("Archer", "Bell", "Frost", 1),
				ballTo("Bell", "Archer", "Frost", 0),
				wide,
				ballTo("Bell", "Archer", "Frost", 6),
				ballTo("Bell", "Archer", "Frost", 0),
				ballTo("Bell", "Archer", "Frost", 2),
			),
		},
	}

	mat := runMatch(t, inning)
	require.Len(t, mat.Innings, 1)

	inn := mat.Innings[0]

	runs, wickets := inn.Score()
	assert.Equal(t, 14, runs)
	assert.Equal(t, 0, wickets)
	assert.Equal(t, "14-0", inn.ScoreString())
	assert.Equal(t, "Avalon 1st Innings", inn.Title)

	rows, totals := inn.BattingCard()
	require.Len(t, rows, 2)
	assert.Equal(t, "Alex Archer", rows[0].Name)
	assert.Equal(t, 5, rows[0].Runs)
	assert.Equal(t, 2, rows[0].Balls)
	assert.Equal(t, 1, rows[0].Fours)
	assert.Equal(t, 8, rows[1].Runs)
	assert.Equal(t, 1, rows[1].Sixes)
	assert.Equal(t, "not out", rows[0].Dismissal)

	assert.Equal(t, "14-0", totals.Score)
	assert.Equal(t, "1 ov", totals.Overs)
	assert.Equal(t, "Extras: 1", totals.Extras)
	assert.Equal(t, "RR: 14.00", totals.RunRate)

	bowling := inn.BowlingCard()
	require.Len(t, bowling, 1)
	assert.Equal(t, "Alex Frost", bowling[0].Name)
	assert.Equal(t, "1", bowling[0].Overs)
	assert.Equal(t, 14, bowling[0].Runs)
	assert.Equal(t, 1, bowling[0].Extras)

	grid := inn.Grid()
	require.Len(t, grid, 1)
	assert.Equal(t, 1, grid[0].Over)
	assert.Equal(t, "Alex Frost", grid[0].Bowlers)
	assert.Equal(t, []string{"4", "1", "0", "0wd", "6", "0", "2"}, grid[0].Outcomes)
	assert.Equal(t, "14-0", grid[0].Score)
}

func TestReplay_WicketBookkeeping(t *testing.T) {
	t.Parallel()

	bowled := ballTo("Archer", "Bell", "Frost", 0)
	bowled.Wickets = []cricsheet.WicketData{{Kind: "bowled", PlayerOut: "Archer"}}

	inning := cricsheet.InningData{
		Team: teamA,
		Overs: []cricsheet.OverData{
			overOf(0,
				ballTo("Archer", "Bell", "Frost", 4),
				bowled,
				ballTo("Cole", "Bell", "Frost", 1),
			),
		},
	}

	mat := runMatch(t, inning)
	inn := mat.Innings[0]

	runs, wickets := inn.Score()
	assert.Equal(t, 5, runs)
	assert.Equal(t, 1, wickets)

	archer, ok := inn.Batters.Get("Archer")
	require.True(t, ok)
	assert.Equal(t, "b A Frost", archer.Dismissal)
	assert.True(t, archer.Out())

	frost, ok := inn.Bowlers.Get("Frost")
	require.True(t, ok)
	assert.Equal(t, 1, frost.Wickets)

	require.Len(t, inn.FallOfWickets, 1)
	assert.Equal(t, "4-1 (Alex Archer, 0.2 ov)", inn.FallOfWickets[0])

	// The wicket ball renders W and carries the post-delivery score.
	ball := inn.Overs[0].Balls[1]
	assert.Equal(t, "W", ball.Outcome)
	assert.Equal(t, "4-1", ball.Score)
}

func TestReplay_RunOutCreditsFielders(t *testing.T) {
	t.Parallel()

	runOut := ballTo("Archer", "Bell", "Frost", 1)
	runOut.Wickets = []cricsheet.WicketData{{
		Kind:      "run out",
		PlayerOut: "Bell",
		Fielders:  []cricsheet.FielderData{{Name: "Gale"}},
	}}

	inning := cricsheet.InningData{
		Team:  teamA,
		Overs: []cricsheet.OverData{overOf(0, runOut)},
	}

	mat := runMatch(t, inning)
	inn := mat.Innings[0]

	bell, ok := inn.Batters.Get("Bell")
	require.True(t, ok)
	assert.Equal(t, "run out (A Gale)", bell.Dismissal)

	gale, ok := inn.Fielders.Get("Gale")
	require.True(t, ok)
	assert.Equal(t, 1, gale.RunOuts)

	frost, ok := inn.Bowlers.Get("Frost")
	require.True(t, ok)
	assert.Zero(t, frost.Wickets)
}

func TestReplay_StumpedByKeeper(t *testing.T) {
	t.Parallel()

	stumped := ballTo("Archer", "Bell", "Frost", 0)
	stumped.Wickets = []cricsheet.WicketData{{
		Kind:      "stumped",
		PlayerOut: "Archer",
		Fielders:  []cricsheet.FielderData{{Name: "Jones"}},
	}}

	inning := cricsheet.InningData{
		Team:  teamA,
		Overs: []cricsheet.OverData{overOf(0, stumped)},
	}

	mat := runMatch(t, inning)
	inn := mat.Innings[0]

	archer, ok := inn.Batters.Get("Archer")
	require.True(t, ok)
	assert.Equal(t, "st †A Jones b A Frost", archer.Dismissal)

	jones, ok := inn.Fielders.Get("Jones")
	require.True(t, ok)
	assert.Equal(t, 1, jones.Stumpings)
}

func TestReplay_SubstituteFielderGrowsSquad(t *testing.T) {
	t.Parallel()

	caught := ballTo("Archer", "Bell", "Frost", 0)
	caught.Wickets = []cricsheet.WicketData{{
		Kind:      "caught",
		PlayerOut: "Archer",
		Fielders:  []cricsheet.FielderData{{Name: "Kerr", Substitute: true}},
	}}

	inning := cricsheet.InningData{
		Team:  teamA,
		Overs: []cricsheet.OverData{overOf(0, caught)},
	}

	mat := runMatch(t, inning)
	inn := mat.Innings[0]

	archer, ok := inn.Batters.Get("Archer")
	require.True(t, ok)
	assert.Equal(t, "c sub (A Kerr) b A Frost", archer.Dismissal)

	kerr, ok := inn.Fielders.Get("Kerr")
	require.True(t, ok)
	assert.True(t, kerr.Substitute)
	assert.Equal(t, 1, kerr.Catches)

	_, ok = mat.Squads[teamB].Get("Kerr")
	assert.True(t, ok)
}

func TestReplay_RetiredHurtReinstatement(t *testing.T) {
	t.Parallel()

	retires := ballTo("Archer", "Bell", "Frost", 2)
	retires.Wickets = []cricsheet.WicketData{{Kind: "retired hurt", PlayerOut: "Archer"}}

	inning := cricsheet.InningData{
		Team: teamA,
		Overs: []cricsheet.OverData{
			overOf(0,
				retires,
				ballTo("Cole", "Bell", "Frost", 1),
				ballTo("Archer", "Cole", "Frost", 4),
			),
		},
	}

	mat := runMatch(t, inning)
	inn := mat.Innings[0]

	archer, ok := inn.Batters.Get("Archer")
	require.True(t, ok)
	assert.Equal(t, "not out", archer.Dismissal)
	assert.Equal(t, 6, archer.Runs)

	// A retirement never falls as a wicket.
	runs, wickets := inn.Score()
	assert.Equal(t, 7, runs)
	assert.Zero(t, wickets)
	assert.Empty(t, inn.FallOfWickets)
}

func TestReplay_MaidenOver(t *testing.T) {
	t.Parallel()

	dots := make([]cricsheet.Delivery, 6)
	for i := range dots {
		dots[i] = ballTo("Archer", "Bell", "Frost", 0)
	}

	// Leg byes are not charged to the bowler and keep the over a maiden.
	dots[3].Runs = cricsheet.Runs{Total: 1}
	dots[3].Extras = &cricsheet.Extras{LegByes: 1}

	inning := cricsheet.InningData{
		Team:  teamA,
		Overs: []cricsheet.OverData{overOf(0, dots...)},
	}

	mat := runMatch(t, inning)
	inn := mat.Innings[0]

	assert.True(t, inn.Overs[0].Maiden())

	frost, ok := inn.Bowlers.Get("Frost")
	require.True(t, ok)
	assert.Equal(t, 1, frost.Maidens)
	assert.Zero(t, frost.Runs)
}

func TestReplay_SpellContinuity(t *testing.T) {
	t.Parallel()

	over := func(index int, batter, bowler string) cricsheet.OverData {
		deliveries := make([]cricsheet.Delivery, 6)
		for i := range deliveries {
			deliveries[i] = ballTo(batter, "Bell", bowler, 0)
		}

		return overOf(index, deliveries...)
	}

	inning := cricsheet.InningData{
		Team: teamA,
		Overs: []cricsheet.OverData{
			over(0, "Archer", "Frost"),
			over(1, "Archer", "Gale"),
			over(2, "Archer", "Frost"),
			over(3, "Archer", "Gale"),
			over(4, "Archer", "Hart"),
			over(5, "Archer", "Frost"),
		},
	}

	mat := runMatch(t, inning)
	inn := mat.Innings[0]

	// Overs 0 and 2 form one unbroken spell; over 5 starts a new one.
	frost, ok := inn.Bowlers.Get("Frost")
	require.True(t, ok)
	require.Len(t, frost.Spells, 2)
	assert.Equal(t, 12, frost.Spells[0].Balls)
	assert.Equal(t, 6, frost.Spells[1].Balls)
	assert.Equal(t, "3", frost.Overs())

	gale, ok := inn.Bowlers.Get("Gale")
	require.True(t, ok)
	assert.Len(t, gale.Spells, 1)
}

func TestReplay_PartnershipTracking(t *testing.T) {
	t.Parallel()

	bowled := ballTo("Bell", "Archer", "Frost", 0)
	bowled.Wickets = []cricsheet.WicketData{{Kind: "bowled", PlayerOut: "Bell"}}

	inning := cricsheet.InningData{
		Team: teamA,
		Overs: []cricsheet.OverData{
			overOf(0,
				ballTo("Archer", "Bell", "Frost", 4),
				ballTo("Bell", "Archer", "Frost", 2),
				bowled,
				ballTo("Cole", "Archer", "Frost", 1),
			),
		},
	}

	mat := runMatch(t, inning)
	inn := mat.Innings[0]

	pships := inn.Partnerships()
	require.Len(t, pships, 2)
	assert.Equal(t, "6 (3) (A Archer 4 (1), A Bell 2 (2))", pships[0])
	assert.Equal(t, "1* (1) (A Archer 0 (0), A Cole 1 (1))", pships[1])
}

func TestReplay_DeclaredAndPenalties(t *testing.T) {
	t.Parallel()

	inning := cricsheet.InningData{
		Team:        teamA,
		Declared:    true,
		PenaltyRuns: &cricsheet.PenaltyRuns{Pre: 5, Post: 5},
		Overs: []cricsheet.OverData{
			overOf(0, ballTo("Archer", "Bell", "Frost", 4)),
		},
	}

	mat := runMatch(t, inning)
	inn := mat.Innings[0]

	assert.True(t, inn.Declared)
	assert.Equal(t, "14-0d", inn.ScoreString())

	// Penalties reach the team score but no individual.
	archer, ok := inn.Batters.Get("Archer")
	require.True(t, ok)
	assert.Equal(t, 4, archer.Runs)
}

func TestReplay_AbsentHurt(t *testing.T) {
	t.Parallel()

	inning := cricsheet.InningData{
		Team:       teamA,
		AbsentHurt: []string{"Evans"},
		Overs: []cricsheet.OverData{
			overOf(0, ballTo("Archer", "Bell", "Frost", 1)),
		},
	}

	mat := runMatch(t, inning)
	inn := mat.Innings[0]

	evans, ok := inn.Batters.Get("Evans")
	require.True(t, ok)
	assert.Equal(t, "absent hurt", evans.Dismissal)
	assert.Equal(t, -1, evans.Position)
	assert.Zero(t, evans.Balls)
}

func TestReplay_SuperOverTitle(t *testing.T) {
	t.Parallel()

	inning := cricsheet.InningData{
		Team:      teamB,
		SuperOver: true,
		Overs: []cricsheet.OverData{
			overOf(0, ballTo("Frost", "Gale", "Archer", 6)),
		},
	}

	mat := runMatch(t, inning)
	assert.Equal(t, "Brockton Super Over", mat.Innings[0].Title)
}

func TestInningTitle_Ordinal(t *testing.T) {
	t.Parallel()

	// A four-innings match: the third and fourth are each team's 2nd.
	assert.Equal(t, "Avalon 1st Innings", inningTitle(0, teamA, false))
	assert.Equal(t, "Brockton 1st Innings", inningTitle(1, teamB, false))
	assert.Equal(t, "Avalon 2nd Innings", inningTitle(2, teamA, false))
	assert.Equal(t, "Brockton 2nd Innings", inningTitle(3, teamB, false))
}

func TestReplay_ForfeitedInningDegrades(t *testing.T) {
	t.Parallel()

	inning := cricsheet.InningData{Team: teamA, Forfeited: true}

	mat := runMatch(t, inning)
	inn := mat.Innings[0]

	assert.True(t, inn.Forfeited)
	assert.Equal(t, "0-0", inn.ScoreString())

	rows, totals := inn.BattingCard()
	assert.Empty(t, rows)
	assert.Equal(t, "0-0", totals.Score)
	assert.Equal(t, "0 ov", totals.Overs)
	assert.Empty(t, inn.Partnerships())
}

func TestReplay_UnknownBowlerFails(t *testing.T) {
	t.Parallel()

	inning := cricsheet.InningData{
		Team:  teamA,
		Overs: []cricsheet.OverData{overOf(0, ballTo("Archer", "Bell", "Nobody", 0))},
	}

	mat, err := NewMatch(testMatchData(inning), testFeed())
	require.NoError(t, err)

	err = mat.Run()
	require.ErrorIs(t, err, ErrNotInEleven)
}
