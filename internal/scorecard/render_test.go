package scorecard_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverpoint/coverpoint/internal/cricsheet"
	"github.com/coverpoint/coverpoint/internal/engine"
	"github.com/coverpoint/coverpoint/internal/registry"
	"github.com/coverpoint/coverpoint/internal/scorecard"
)

const (
	teamA = "Avalon"
	teamB = "Brockton"
)

var (
	elevenA = []string{"Archer", "Bell", "Cole"}
	elevenB = []string{"Frost", "Gale", "Hart"}
)

func testFeed() *registry.Feed {
	feed := &registry.Feed{
		Teams: map[string]map[string]registry.PlayerInfo{
			teamA: {},
			teamB: {},
		},
	}

	for _, name := range elevenA {
		feed.Teams[teamA][name] = registry.PlayerInfo{
			CardLong: name, KnownAs: "Alex " + name, MobileName: "A " + name,
		}
	}

	for _, name := range elevenB {
		feed.Teams[teamB][name] = registry.PlayerInfo{
			CardLong: name, KnownAs: "Alex " + name, MobileName: "A " + name,
		}
	}

	return feed
}

// replayedMatch builds a one-over, one-wicket innings and replays it.
func replayedMatch(t *testing.T) *engine.Match {
	t.Helper()

	bowled := cricsheet.Delivery{
		Batter:     "Bell",
		Bowler:     "Frost",
		NonStriker: "Archer",
		Wickets:    []cricsheet.WicketData{{Kind: "bowled", PlayerOut: "Bell"}},
	}

	data := &cricsheet.MatchData{
		Info: cricsheet.Info{
			BallsPerOver: 6,
			Dates:        []string{"2021-03-05"},
			Event:        &cricsheet.EventInfo{Name: "County Shield"},
			MatchType:    "T20",
			TeamType:     "club",
			Teams:        []string{teamA, teamB},
			Players:      map[string][]string{teamA: elevenA, teamB: elevenB},
			Toss:         cricsheet.TossInfo{Winner: teamA, Decision: "bat"},
			Outcome:      cricsheet.OutcomeInfo{Winner: teamA, By: &cricsheet.OutcomeBy{Runs: 12}},
			Venue:        "Lakeside Oval",
		},
		Innings: []cricsheet.InningData{{
			Team: teamA,
			Overs: []cricsheet.OverData{{
				Over: 0,
				Deliveries: []cricsheet.Delivery{
					{Batter: "Archer", Bowler: "Frost", NonStriker: "Bell", Runs: cricsheet.Runs{Batter: 4, Total: 4}},
					{Batter: "Archer", Bowler: "Frost", NonStriker: "Bell", Runs: cricsheet.Runs{Batter: 1, Total: 1}},
					bowled,
				},
			}},
		}},
	}

	mat, err := engine.NewMatch(data, testFeed())
	require.NoError(t, err)
	require.NoError(t, mat.Run())

	return mat
}

func TestRenderer_Header(t *testing.T) {
	t.Parallel()

	mat := replayedMatch(t)

	out := scorecard.NewRenderer(false).Header(mat)

	assert.Contains(t, out, mat.Description)
	assert.Contains(t, out, "won the toss")
	assert.Contains(t, out, "Avalon won by 12 runs")
	assert.NotContains(t, out, "\x1b[", "plain renderer must not emit ANSI codes")
}

func TestRenderer_BattingTable(t *testing.T) {
	t.Parallel()

	mat := replayedMatch(t)

	out := scorecard.NewRenderer(false).BattingTable(mat.Innings[0])

	assert.Contains(t, out, "Batter")
	assert.Contains(t, out, "Alex Archer")
	assert.Contains(t, out, "not out")
	assert.Contains(t, out, "b A Frost")
	assert.Contains(t, out, "Extras")
	assert.Contains(t, out, "5-1")
}

func TestRenderer_BowlingTable(t *testing.T) {
	t.Parallel()

	mat := replayedMatch(t)

	out := scorecard.NewRenderer(false).BowlingTable(mat.Innings[0])

	assert.Contains(t, out, "Bowler")
	assert.Contains(t, out, "Alex Frost")
	assert.Contains(t, out, "Econ")
	// Innings totals close the bowling card too.
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "5-1")
}

func TestRenderer_GridTable(t *testing.T) {
	t.Parallel()

	mat := replayedMatch(t)

	out := scorecard.NewRenderer(false).GridTable(mat.Innings[0])

	assert.Contains(t, out, "Over")
	assert.Contains(t, out, "4 1 W")
	assert.Contains(t, out, "A Frost")
}

func TestRenderer_MatchAndSummary(t *testing.T) {
	t.Parallel()

	mat := replayedMatch(t)
	renderer := scorecard.NewRenderer(false)

	full := renderer.Match(mat)

	assert.Contains(t, full, mat.Description)
	assert.Contains(t, full, "Avalon 1st Innings")
	assert.Contains(t, full, "Fall of wickets: 5-1 (Alex Bell, 0.3 ov)")

	summary := renderer.Summary(mat)

	assert.Contains(t, summary, "Avalon 1st Innings")
	assert.Contains(t, summary, "Alex Archer")
}

func TestRenderer_ForfeitedInning(t *testing.T) {
	t.Parallel()

	data := &cricsheet.MatchData{
		Info: cricsheet.Info{
			BallsPerOver: 6,
			Dates:        []string{"2021-03-05"},
			MatchType:    "T20",
			TeamType:     "club",
			Teams:        []string{teamA, teamB},
			Players:      map[string][]string{teamA: elevenA, teamB: elevenB},
			Toss:         cricsheet.TossInfo{Winner: teamA, Decision: "bat"},
			Outcome:      cricsheet.OutcomeInfo{Result: "no result"},
			Venue:        "Lakeside Oval",
		},
		Innings: []cricsheet.InningData{{Team: teamA, Forfeited: true}},
	}

	mat, err := engine.NewMatch(data, testFeed())
	require.NoError(t, err)
	require.NoError(t, mat.Run())

	renderer := scorecard.NewRenderer(false)

	out := renderer.Inning(mat.Innings[0])

	assert.Contains(t, out, "0-0")
	assert.NotContains(t, out, "Fall of wickets")
	assert.Equal(t, 1, strings.Count(out, "Total"))
}
