package engine

import (
	"errors"
	"fmt"

	"github.com/coverpoint/coverpoint/internal/cricsheet"
	"github.com/coverpoint/coverpoint/internal/registry"
)

// Match construction and replay errors.
var (
	// ErrInvalidMetadata indicates match metadata that cannot be rendered.
	ErrInvalidMetadata = errors.New("engine: invalid match metadata")
	// ErrAlreadyRun indicates a second replay of the same match.
	ErrAlreadyRun = errors.New("engine: match already replayed")
)

// State tracks a match through its replay lifecycle. Transitions are
// one-way: Created, Running, then Complete.
type State int

// Match lifecycle states.
const (
	StateCreated State = iota
	StateRunning
	StateComplete
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// SummaryRow is one line of the two-column match summary.
type SummaryRow struct {
	Left  string
	Right string
}

// defaultSummaryWindow is the display row budget per innings block used
// by the standard summary.
const defaultSummaryWindow = 5

// Match owns the squads, playing elevens and replayed innings of one
// match, plus its rendered metadata. Metadata is immutable after
// construction; the innings list grows during Run and freezes with it.
type Match struct {
	// Type is the team type (club, international); Format the match type
	// (Test, ODI, T20, ...).
	Type   string
	Format string
	Venue  string
	Dates  string
	Event  string
	Teams  []string
	// Description is the one-line header: event, teams, venue, dates.
	Description string
	Toss        string
	Outcome     string

	Squads  map[string]*registry.Squad
	Elevens map[string][]*registry.Player
	Keepers map[string]string

	Innings []*Inning

	data  *cricsheet.MatchData
	feed  *registry.Feed
	state State
}

// NewMatch builds a match from a decoded feed and its player-info side
// channel: squads and elevens materialized, metadata rendered, no innings
// replayed yet.
func NewMatch(data *cricsheet.MatchData, feed *registry.Feed) (*Match, error) {
	info := data.Info

	dates, err := displayDateRange(info.Dates)
	if err != nil {
		return nil, err
	}

	mat := &Match{
		Type:    info.TeamType,
		Format:  info.MatchType,
		Venue:   info.Venue,
		Dates:   dates,
		Event:   eventDescription(info.Event),
		Teams:   info.Teams,
		Toss:    tossSentence(info.Toss),
		Outcome: outcomeSentence(info.Outcome),
		Squads:  make(map[string]*registry.Squad, len(info.Teams)),
		Elevens: make(map[string][]*registry.Player, len(info.Teams)),
		Keepers: make(map[string]string, len(info.Teams)),
		data:    data,
		feed:    feed,
	}

	mat.Description = fmt.Sprintf("%s: %s vs %s at %s, %s",
		mat.Event, teamName(info.Teams, 0), teamName(info.Teams, 1), mat.Venue, mat.Dates)

	for _, team := range info.Teams {
		infos, infoErr := feed.TeamInfo(team)
		if infoErr != nil {
			return nil, infoErr
		}

		squad := registry.NewSquad(team)

		eleven, playErr := squad.Playing(info.Players[team], infos)
		if playErr != nil {
			return nil, playErr
		}

		mat.Squads[team] = squad
		mat.Elevens[team] = eleven
		mat.Keepers[team] = feed.Keeper(team)
	}

	return mat, nil
}

// State returns the match's replay state.
func (mat *Match) State() State {
	return mat.state
}

// Run replays every innings of the feed in order. A failure leaves the
// innings completed so far intact and inspectable; the match stays in the
// Running state and the error names the innings that broke.
func (mat *Match) Run() error {
	if mat.state != StateCreated {
		return fmt.Errorf("%w: state %s", ErrAlreadyRun, mat.state)
	}

	mat.state = StateRunning

	for _, inningData := range mat.data.Innings {
		inn, err := newInning(len(mat.Innings), inningData, mat)
		if err != nil {
			return fmt.Errorf("inning %d (%s): %w", len(mat.Innings), inningData.Team, err)
		}

		mat.Innings = append(mat.Innings, inn)

		err = inn.run(inningData, mat)
		if err != nil {
			return fmt.Errorf("inning %d (%s): %w", inn.Index, inn.BattingTeam, err)
		}
	}

	mat.state = StateComplete

	return nil
}

// Summary returns the standard match summary rows.
func (mat *Match) Summary() []SummaryRow {
	return mat.SummaryWindow(defaultSummaryWindow)
}

// SummaryWindow returns the match summary: per innings, a title line with
// the total, then the best batting and bowling lines side by side. The
// window caps the display rows spent on each innings block.
func (mat *Match) SummaryWindow(window int) []SummaryRow {
	best := window - len(mat.Innings)
	rows := make([]SummaryRow, 0, len(mat.Innings)*window)

	for _, inn := range mat.Innings {
		_, totals := inn.BattingCard()
		total := fmt.Sprintf("%s (%s)", totals.Score, totals.Overs)

		rows = append(rows,
			SummaryRow{},
			SummaryRow{Left: inn.Title, Right: total},
		)

		batters := inn.BestBatters(best)
		bowlers := inn.BestBowlers(best)

		for i := 0; i < len(batters) || i < len(bowlers); i++ {
			row := SummaryRow{}
			if i < len(batters) {
				row.Left = batters[i]
			}

			if i < len(bowlers) {
				row.Right = bowlers[i]
			}

			rows = append(rows, row)
		}
	}

	return rows
}

// opponent returns the other team of a two-team match, or the empty
// string when the team is not playing.
func (mat *Match) opponent(team string) string {
	for i, name := range mat.Teams {
		if name == team && len(mat.Teams) == 2 {
			return mat.Teams[1-i]
		}
	}

	return ""
}

// elevenPlayer finds a player in a team's eleven, returning the player
// and their position in the batting order, or (nil, -1).
func (mat *Match) elevenPlayer(team, name string) (*registry.Player, int) {
	for i, player := range mat.Elevens[team] {
		if player.Name == name {
			return player, i
		}
	}

	return nil, -1
}

// substitutePlayer materializes a substitute fielder from the info feed
// and grows the team's squad with them.
func (mat *Match) substitutePlayer(team, name string) (*registry.Player, error) {
	info, err := mat.feed.Substitute(name)
	if err != nil {
		return nil, err
	}

	return mat.Squads[team].Add(info), nil
}

// teamName returns the i-th team name, tolerating short lists.
func teamName(teams []string, i int) string {
	if i < len(teams) {
		return teams[i]
	}

	return ""
}
