// Package cricsheet models the per-match ball-by-ball delivery feed
// (the Cricsheet JSON match format) and validates raw feeds against an
// embedded schema before decoding. The replay engine consumes these types;
// how the raw bytes are acquired (downloads, on-disk caches) is the
// caller's concern.
package cricsheet

// MatchData is one complete match feed: metadata plus the ordered innings.
type MatchData struct {
	Meta    Meta         `json:"meta"`
	Info    Info         `json:"info"`
	Innings []InningData `json:"innings"`
}

// Meta describes the feed revision, not the match.
type Meta struct {
	DataVersion string `json:"data_version"`
	Created     string `json:"created"`
	Revision    int    `json:"revision"`
}

// Info carries the match metadata: teams, venue, dates, toss and outcome.
type Info struct {
	BallsPerOver    int                 `json:"balls_per_over"`
	City            string              `json:"city,omitempty"`
	Dates           []string            `json:"dates"`
	Event           *EventInfo          `json:"event,omitempty"`
	Gender          string              `json:"gender"`
	MatchType       string              `json:"match_type"`
	MatchTypeNumber int                 `json:"match_type_number,omitempty"`
	Outcome         OutcomeInfo         `json:"outcome"`
	Overs           int                 `json:"overs,omitempty"`
	PlayerOfMatch   []string            `json:"player_of_match,omitempty"`
	Players         map[string][]string `json:"players"`
	Season          string              `json:"season,omitempty"`
	TeamType        string              `json:"team_type"`
	Teams           []string            `json:"teams"`
	Toss            TossInfo            `json:"toss"`
	Venue           string              `json:"venue"`
}

// EventInfo identifies the competition the match belongs to.
type EventInfo struct {
	Name        string `json:"name"`
	MatchNumber int    `json:"match_number,omitempty"`
	Group       string `json:"group,omitempty"`
	Stage       string `json:"stage,omitempty"`
	SubName     string `json:"sub_name,omitempty"`
}

// TossInfo records who won the toss and what they chose.
type TossInfo struct {
	Winner      string `json:"winner"`
	Decision    string `json:"decision"`
	Uncontested bool   `json:"uncontested,omitempty"`
}

// OutcomeInfo is the structured match result.
type OutcomeInfo struct {
	Winner     string     `json:"winner,omitempty"`
	Result     string     `json:"result,omitempty"`
	Method     string     `json:"method,omitempty"`
	Eliminator string     `json:"eliminator,omitempty"`
	By         *OutcomeBy `json:"by,omitempty"`
}

// OutcomeBy quantifies the winning margin.
type OutcomeBy struct {
	Runs    int  `json:"runs,omitempty"`
	Wickets int  `json:"wickets,omitempty"`
	Innings bool `json:"innings,omitempty"`
}

// InningData is one team's turn at batting.
type InningData struct {
	Team        string       `json:"team"`
	Overs       []OverData   `json:"overs"`
	AbsentHurt  []string     `json:"absent_hurt,omitempty"`
	PenaltyRuns *PenaltyRuns `json:"penalty_runs,omitempty"`
	Declared    bool         `json:"declared,omitempty"`
	Forfeited   bool         `json:"forfeited,omitempty"`
	SuperOver   bool         `json:"super_over,omitempty"`
	Target      *Target      `json:"target,omitempty"`
}

// PenaltyRuns are runs awarded to the batting side outside any delivery.
type PenaltyRuns struct {
	Pre  int `json:"pre,omitempty"`
	Post int `json:"post,omitempty"`
}

// Target is the chase target for the batting side, when one exists.
type Target struct {
	Overs float64 `json:"overs,omitempty"`
	Runs  int     `json:"runs,omitempty"`
}

// OverData is one over: its 0-based index and the deliveries bowled in it.
type OverData struct {
	Over       int        `json:"over"`
	Deliveries []Delivery `json:"deliveries"`
}

// Delivery is one ball as recorded in the feed.
type Delivery struct {
	Batter     string       `json:"batter"`
	Bowler     string       `json:"bowler"`
	NonStriker string       `json:"non_striker"`
	Runs       Runs         `json:"runs"`
	Extras     *Extras      `json:"extras,omitempty"`
	Wickets    []WicketData `json:"wickets,omitempty"`
}

// Runs is the runs breakdown for one delivery.
type Runs struct {
	Batter      int  `json:"batter"`
	Extras      int  `json:"extras"`
	Total       int  `json:"total"`
	NonBoundary bool `json:"non_boundary,omitempty"`
}

// Extras breaks down the runs not credited to the striker.
type Extras struct {
	Byes    int `json:"byes,omitempty"`
	LegByes int `json:"legbyes,omitempty"`
	NoBalls int `json:"noballs,omitempty"`
	Penalty int `json:"penalty,omitempty"`
	Wides   int `json:"wides,omitempty"`
}

// WicketData is one dismissal recorded against a delivery.
type WicketData struct {
	Kind      string        `json:"kind"`
	PlayerOut string        `json:"player_out"`
	Fielders  []FielderData `json:"fielders,omitempty"`
}

// FielderData names a fielder involved in a dismissal. Substitute marks
// fielders who are not part of the playing eleven.
type FielderData struct {
	Name       string `json:"name"`
	Substitute bool   `json:"substitute,omitempty"`
}
