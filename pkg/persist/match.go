package persist

import (
	"errors"
	"fmt"

	"github.com/coverpoint/coverpoint/internal/cricsheet"
	"github.com/coverpoint/coverpoint/internal/engine"
	"github.com/coverpoint/coverpoint/internal/registry"
	"github.com/coverpoint/coverpoint/internal/roles"
)

// ErrBadRecord indicates a persisted record whose shape or kind tag does
// not match the expected entity.
var ErrBadRecord = errors.New("persist: malformed match record")

// Entity kind tags. Every persisted entity is self-describing.
const (
	kindMatch   = "match"
	kindInning  = "inning"
	kindOver    = "over"
	kindBall    = "ball"
	kindBatter  = "batter"
	kindBowler  = "bowler"
	kindFielder = "fielder"
	kindWicket  = "wicket"
	kindPlayer  = "player"
)

// PlayerRecord persists one squad member's identity.
type PlayerRecord struct {
	Kind         string `json:"kind"`
	Name         string `json:"name"`
	LongName     string `json:"long_name"`
	ShortName    string `json:"short_name"`
	ID           int    `json:"id,omitempty"`
	BattingStyle string `json:"batting_style,omitempty"`
	BowlingStyle string `json:"bowling_style,omitempty"`
}

// BatterRecord persists a batting accumulator or frozen snapshot.
type BatterRecord struct {
	Kind         string `json:"kind"`
	Name         string `json:"name"`
	LongName     string `json:"long_name"`
	ShortName    string `json:"short_name"`
	Style        string `json:"style,omitempty"`
	Position     int    `json:"position"`
	TruePosition int    `json:"true_position"`
	Runs         int    `json:"runs"`
	Balls        int    `json:"balls"`
	Fours        int    `json:"fours"`
	Sixes        int    `json:"sixes"`
	Dismissal    string `json:"dismissal"`
}

// BowlerRecord persists a bowling accumulator or frozen snapshot.
type BowlerRecord struct {
	Kind      string        `json:"kind"`
	Name      string        `json:"name"`
	LongName  string        `json:"long_name"`
	ShortName string        `json:"short_name"`
	Style     string        `json:"style,omitempty"`
	Balls     int           `json:"balls"`
	Maidens   int           `json:"maidens"`
	Runs      int           `json:"runs"`
	Wickets   int           `json:"wickets"`
	Extras    int           `json:"extras"`
	Spells    []roles.Spell `json:"spells,omitempty"`
}

// FielderRecord persists a fielding accumulator.
type FielderRecord struct {
	Kind       string `json:"kind"`
	Name       string `json:"name"`
	LongName   string `json:"long_name"`
	ShortName  string `json:"short_name"`
	Keeper     bool   `json:"keeper,omitempty"`
	Substitute bool   `json:"substitute,omitempty"`
	Catches    int    `json:"catches,omitempty"`
	Stumpings  int    `json:"stumpings,omitempty"`
	RunOuts    int    `json:"run_outs,omitempty"`
}

// WicketRecord persists one dismissal of a delivery.
type WicketRecord struct {
	Kind     string             `json:"kind"`
	Mode     string             `json:"mode"`
	Batter   string             `json:"batter"`
	Bowler   string             `json:"bowler"`
	Fielders []FielderRefRecord `json:"fielders,omitempty"`
}

// FielderRefRecord names a fielder involved in a dismissal.
type FielderRefRecord struct {
	Name       string `json:"name"`
	Substitute bool   `json:"substitute,omitempty"`
}

// BallRecord persists one delivery: raw counts, dismissals, the frozen
// player snapshots and the score/partnership strings. Extras splits,
// bowling figures and the outcome symbol are recomputed on restore.
type BallRecord struct {
	Kind        string         `json:"kind"`
	Index       int            `json:"index"`
	AbsIndex    int            `json:"abs_index"`
	OverBall    string         `json:"over_ball"`
	Runs        int            `json:"runs"`
	BattingRuns int            `json:"batting_runs"`
	Boundary    bool           `json:"boundary,omitempty"`
	NoBalls     int            `json:"no_balls,omitempty"`
	Wides       int            `json:"wides,omitempty"`
	LegByes     int            `json:"leg_byes,omitempty"`
	Byes        int            `json:"byes,omitempty"`
	Penalty     int            `json:"penalty,omitempty"`
	Dismissals  []WicketRecord `json:"dismissals,omitempty"`
	Score       string         `json:"score"`
	Partnership string         `json:"partnership"`
	Batter      BatterRecord   `json:"batter_snapshot"`
	NonStriker  BatterRecord   `json:"non_striker_snapshot"`
	Bowler      BowlerRecord   `json:"bowler_snapshot"`
}

// OverRecord persists one over; bowlers by name only.
type OverRecord struct {
	Kind       string       `json:"kind"`
	Index      int          `json:"index"`
	StartScore string       `json:"start_score"`
	Bowlers    []string     `json:"bowlers"`
	Balls      []BallRecord `json:"balls"`
}

// InningRecord persists one inning with its accumulators and overs.
type InningRecord struct {
	Kind          string          `json:"kind"`
	Index         int             `json:"index"`
	BattingTeam   string          `json:"batting_team"`
	FieldingTeam  string          `json:"fielding_team"`
	SuperOver     bool            `json:"super_over,omitempty"`
	Declared      bool            `json:"declared,omitempty"`
	Forfeited     bool            `json:"forfeited,omitempty"`
	Runs          int             `json:"runs"`
	Wickets       int             `json:"wickets"`
	FallOfWickets []string        `json:"fall_of_wickets,omitempty"`
	Partnerships  []string        `json:"partnerships,omitempty"`
	Batters       []BatterRecord  `json:"batters"`
	Bowlers       []BowlerRecord  `json:"bowlers"`
	Fielders      []FielderRecord `json:"fielders"`
	Overs         []OverRecord    `json:"overs"`
}

// MatchRecord is the top-level persisted entity.
type MatchRecord struct {
	Kind    string                    `json:"kind"`
	Type    string                    `json:"type"`
	Format  string                    `json:"format"`
	Venue   string                    `json:"venue"`
	Dates   string                    `json:"dates"`
	Event   string                    `json:"event,omitempty"`
	Teams   []string                  `json:"teams"`
	Toss    string                    `json:"toss"`
	Outcome string                    `json:"outcome"`
	Keepers map[string]string         `json:"keepers"`
	Squads  map[string][]PlayerRecord `json:"squads"`
	Elevens map[string][]string       `json:"elevens"`
	Innings []InningRecord            `json:"innings"`
}

// NewMatchRecord converts a replayed match into its persisted form.
func NewMatchRecord(mat *engine.Match) *MatchRecord {
	record := &MatchRecord{
		Kind:    kindMatch,
		Type:    mat.Type,
		Format:  mat.Format,
		Venue:   mat.Venue,
		Dates:   mat.Dates,
		Event:   mat.Event,
		Teams:   mat.Teams,
		Toss:    mat.Toss,
		Outcome: mat.Outcome,
		Keepers: mat.Keepers,
		Squads:  make(map[string][]PlayerRecord, len(mat.Squads)),
		Elevens: make(map[string][]string, len(mat.Elevens)),
	}

	for team, squad := range mat.Squads {
		players := make([]PlayerRecord, 0, squad.Len())
		for _, player := range squad.Players() {
			players = append(players, playerRecord(player))
		}

		record.Squads[team] = players
	}

	for team, eleven := range mat.Elevens {
		names := make([]string, 0, len(eleven))
		for _, player := range eleven {
			names = append(names, player.Name)
		}

		record.Elevens[team] = names
	}

	for _, inn := range mat.Innings {
		record.Innings = append(record.Innings, inningRecord(inn))
	}

	return record
}

// Restore rebuilds the match, recomputing every derived field.
func (r *MatchRecord) Restore() (*engine.Match, error) {
	if r.Kind != kindMatch {
		return nil, fmt.Errorf("%w: kind %q, want %q", ErrBadRecord, r.Kind, kindMatch)
	}

	squads := make(map[string]*registry.Squad, len(r.Squads))

	for team, players := range r.Squads {
		squad := registry.NewSquad(team)

		for _, rec := range players {
			if rec.Kind != kindPlayer {
				return nil, fmt.Errorf("%w: kind %q, want %q", ErrBadRecord, rec.Kind, kindPlayer)
			}

			squad.Add(registry.PlayerInfo{
				CardLong:     rec.Name,
				KnownAs:      rec.LongName,
				MobileName:   rec.ShortName,
				ObjectID:     rec.ID,
				BattingStyle: rec.BattingStyle,
				BowlingStyle: rec.BowlingStyle,
			})
		}

		squads[team] = squad
	}

	elevens := make(map[string][]*registry.Player, len(r.Elevens))

	for team, names := range r.Elevens {
		eleven := make([]*registry.Player, 0, len(names))

		for _, name := range names {
			player, ok := squads[team].Get(name)
			if !ok {
				return nil, fmt.Errorf("%w: eleven player %q not in squad %s", ErrBadRecord, name, team)
			}

			eleven = append(eleven, player)
		}

		elevens[team] = eleven
	}

	innings := make([]*engine.Inning, 0, len(r.Innings))

	for _, rec := range r.Innings {
		inn, err := rec.restore()
		if err != nil {
			return nil, err
		}

		innings = append(innings, inn)
	}

	return engine.RestoreMatch(engine.MatchEssentials{
		Type:    r.Type,
		Format:  r.Format,
		Venue:   r.Venue,
		Dates:   r.Dates,
		Event:   r.Event,
		Teams:   r.Teams,
		Toss:    r.Toss,
		Outcome: r.Outcome,
		Keepers: r.Keepers,
		Squads:  squads,
		Elevens: elevens,
		Innings: innings,
	}), nil
}

// SaveMatch persists a replayed match under dir as basename plus the
// codec's extension.
func SaveMatch(dir, basename string, codec Codec, mat *engine.Match) error {
	return SaveRecord(dir, basename, codec, NewMatchRecord(mat))
}

// LoadMatch restores a persisted match from dir.
func LoadMatch(dir, basename string, codec Codec) (*engine.Match, error) {
	var record MatchRecord

	err := LoadRecord(dir, basename, codec, &record)
	if err != nil {
		return nil, err
	}

	return record.Restore()
}

func playerRecord(player *registry.Player) PlayerRecord {
	return PlayerRecord{
		Kind:         kindPlayer,
		Name:         player.Name,
		LongName:     player.LongName,
		ShortName:    player.ShortName,
		ID:           player.ID,
		BattingStyle: player.BattingStyle,
		BowlingStyle: player.BowlingStyle,
	}
}

func inningRecord(inn *engine.Inning) InningRecord {
	runs, wickets := inn.Score()

	record := InningRecord{
		Kind:          kindInning,
		Index:         inn.Index,
		BattingTeam:   inn.BattingTeam,
		FieldingTeam:  inn.FieldingTeam,
		SuperOver:     inn.SuperOver,
		Declared:      inn.Declared,
		Forfeited:     inn.Forfeited,
		Runs:          runs,
		Wickets:       wickets,
		FallOfWickets: inn.FallOfWickets,
		Partnerships:  inn.Partnerships(),
	}

	for _, batter := range inn.Batters.Items() {
		record.Batters = append(record.Batters, batterRecord(batter.Freeze()))
	}

	for _, bowler := range inn.Bowlers.Items() {
		record.Bowlers = append(record.Bowlers, bowlerRecord(bowler.Freeze()))
	}

	for _, fielder := range inn.Fielders.Items() {
		record.Fielders = append(record.Fielders, fielderRecord(fielder))
	}

	for _, over := range inn.Overs {
		record.Overs = append(record.Overs, overRecord(over))
	}

	return record
}

func (r InningRecord) restore() (*engine.Inning, error) {
	if r.Kind != kindInning {
		return nil, fmt.Errorf("%w: kind %q, want %q", ErrBadRecord, r.Kind, kindInning)
	}

	essentials := engine.InningEssentials{
		Index:         r.Index,
		BattingTeam:   r.BattingTeam,
		FieldingTeam:  r.FieldingTeam,
		SuperOver:     r.SuperOver,
		Declared:      r.Declared,
		Forfeited:     r.Forfeited,
		Runs:          r.Runs,
		Wickets:       r.Wickets,
		FallOfWickets: r.FallOfWickets,
		Partnerships:  r.Partnerships,
	}

	for _, rec := range r.Batters {
		snapshot, err := rec.snapshot()
		if err != nil {
			return nil, err
		}

		essentials.Batters = append(essentials.Batters, snapshot.Thaw())
	}

	for _, rec := range r.Bowlers {
		snapshot, err := rec.snapshot()
		if err != nil {
			return nil, err
		}

		essentials.Bowlers = append(essentials.Bowlers, snapshot.Thaw())
	}

	for _, rec := range r.Fielders {
		fielder, err := rec.fielder()
		if err != nil {
			return nil, err
		}

		essentials.Fielders = append(essentials.Fielders, fielder)
	}

	for _, rec := range r.Overs {
		over, err := rec.essentials()
		if err != nil {
			return nil, err
		}

		essentials.Overs = append(essentials.Overs, over)
	}

	inn, err := engine.RestoreInning(essentials)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}

	return inn, nil
}

func overRecord(over *engine.Over) OverRecord {
	record := OverRecord{
		Kind:       kindOver,
		Index:      over.Index,
		StartScore: over.StartScore,
	}

	for _, bowler := range over.Bowlers {
		record.Bowlers = append(record.Bowlers, bowler.Name)
	}

	for _, ball := range over.Balls {
		record.Balls = append(record.Balls, ballRecord(ball))
	}

	return record
}

func (r OverRecord) essentials() (engine.OverEssentials, error) {
	if r.Kind != kindOver {
		return engine.OverEssentials{}, fmt.Errorf("%w: kind %q, want %q", ErrBadRecord, r.Kind, kindOver)
	}

	over := engine.OverEssentials{
		Index:       r.Index,
		StartScore:  r.StartScore,
		BowlerNames: r.Bowlers,
	}

	for _, rec := range r.Balls {
		ball, err := rec.essentials()
		if err != nil {
			return engine.OverEssentials{}, err
		}

		over.Balls = append(over.Balls, ball)
	}

	return over, nil
}

func ballRecord(ball *engine.Ball) BallRecord {
	record := BallRecord{
		Kind:        kindBall,
		Index:       ball.Index,
		AbsIndex:    ball.AbsIndex,
		OverBall:    ball.OverBall,
		Runs:        ball.Runs,
		BattingRuns: ball.BattingRuns,
		Boundary:    ball.Boundary,
		NoBalls:     ball.NoBalls,
		Wides:       ball.Wides,
		LegByes:     ball.LegByes,
		Byes:        ball.Byes,
		Penalty:     ball.Penalty,
		Score:       ball.Score,
		Partnership: ball.Partnership,
		Batter:      batterRecord(ball.Batter),
		NonStriker:  batterRecord(ball.NonStriker),
		Bowler:      bowlerRecord(ball.Bowler),
	}

	for _, wicket := range ball.Dismissals {
		record.Dismissals = append(record.Dismissals, wicketRecord(wicket))
	}

	return record
}

func (r BallRecord) essentials() (engine.BallEssentials, error) {
	if r.Kind != kindBall {
		return engine.BallEssentials{}, fmt.Errorf("%w: kind %q, want %q", ErrBadRecord, r.Kind, kindBall)
	}

	batter, err := r.Batter.snapshot()
	if err != nil {
		return engine.BallEssentials{}, err
	}

	nonStriker, err := r.NonStriker.snapshot()
	if err != nil {
		return engine.BallEssentials{}, err
	}

	bowler, err := r.Bowler.snapshot()
	if err != nil {
		return engine.BallEssentials{}, err
	}

	ball := engine.BallEssentials{
		Index:       r.Index,
		AbsIndex:    r.AbsIndex,
		OverBall:    r.OverBall,
		Runs:        r.Runs,
		BattingRuns: r.BattingRuns,
		Boundary:    r.Boundary,
		NoBalls:     r.NoBalls,
		Wides:       r.Wides,
		LegByes:     r.LegByes,
		Byes:        r.Byes,
		Penalty:     r.Penalty,
		Score:       r.Score,
		Partnership: r.Partnership,
		Batter:      batter,
		NonStriker:  nonStriker,
		Bowler:      bowler,
	}

	for _, rec := range r.Dismissals {
		wicket, wicketErr := rec.wicket()
		if wicketErr != nil {
			return engine.BallEssentials{}, wicketErr
		}

		ball.Dismissals = append(ball.Dismissals, wicket)
	}

	return ball, nil
}

func wicketRecord(wicket engine.Wicket) WicketRecord {
	record := WicketRecord{
		Kind:   kindWicket,
		Mode:   string(wicket.Kind),
		Batter: wicket.Batter,
		Bowler: wicket.Bowler,
	}

	for _, ref := range wicket.Fielders {
		record.Fielders = append(record.Fielders, FielderRefRecord{
			Name:       ref.Name,
			Substitute: ref.Substitute,
		})
	}

	return record
}

func (r WicketRecord) wicket() (engine.Wicket, error) {
	if r.Kind != kindWicket {
		return engine.Wicket{}, fmt.Errorf("%w: kind %q, want %q", ErrBadRecord, r.Kind, kindWicket)
	}

	mode, err := cricsheet.ParseDismissalKind(r.Mode)
	if err != nil {
		return engine.Wicket{}, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}

	wicket := engine.Wicket{
		Kind:   mode,
		Batter: r.Batter,
		Bowler: r.Bowler,
	}

	for _, ref := range r.Fielders {
		wicket.Fielders = append(wicket.Fielders, engine.FielderRef{
			Name:       ref.Name,
			Substitute: ref.Substitute,
		})
	}

	return wicket, nil
}

func batterRecord(snapshot roles.BatterSnapshot) BatterRecord {
	return BatterRecord{
		Kind:         kindBatter,
		Name:         snapshot.Name,
		LongName:     snapshot.LongName,
		ShortName:    snapshot.ShortName,
		Style:        snapshot.Style,
		Position:     snapshot.Position,
		TruePosition: snapshot.TruePosition,
		Runs:         snapshot.Runs,
		Balls:        snapshot.Balls,
		Fours:        snapshot.Fours,
		Sixes:        snapshot.Sixes,
		Dismissal:    snapshot.Dismissal,
	}
}

func (r BatterRecord) snapshot() (roles.BatterSnapshot, error) {
	if r.Kind != kindBatter {
		return roles.BatterSnapshot{}, fmt.Errorf("%w: kind %q, want %q", ErrBadRecord, r.Kind, kindBatter)
	}

	return roles.BatterSnapshot{
		Name:         r.Name,
		LongName:     r.LongName,
		ShortName:    r.ShortName,
		Style:        r.Style,
		Position:     r.Position,
		TruePosition: r.TruePosition,
		Runs:         r.Runs,
		Balls:        r.Balls,
		Fours:        r.Fours,
		Sixes:        r.Sixes,
		Dismissal:    r.Dismissal,
	}, nil
}

func bowlerRecord(snapshot roles.BowlerSnapshot) BowlerRecord {
	return BowlerRecord{
		Kind:      kindBowler,
		Name:      snapshot.Name,
		LongName:  snapshot.LongName,
		ShortName: snapshot.ShortName,
		Style:     snapshot.Style,
		Balls:     snapshot.Balls,
		Maidens:   snapshot.Maidens,
		Runs:      snapshot.Runs,
		Wickets:   snapshot.Wickets,
		Extras:    snapshot.Extras,
		Spells:    snapshot.Spells,
	}
}

func (r BowlerRecord) snapshot() (roles.BowlerSnapshot, error) {
	if r.Kind != kindBowler {
		return roles.BowlerSnapshot{}, fmt.Errorf("%w: kind %q, want %q", ErrBadRecord, r.Kind, kindBowler)
	}

	return roles.BowlerSnapshot{
		Name:      r.Name,
		LongName:  r.LongName,
		ShortName: r.ShortName,
		Style:     r.Style,
		Balls:     r.Balls,
		Maidens:   r.Maidens,
		Runs:      r.Runs,
		Wickets:   r.Wickets,
		Extras:    r.Extras,
		Spells:    r.Spells,
	}, nil
}

func fielderRecord(fielder *roles.Fielder) FielderRecord {
	return FielderRecord{
		Kind:       kindFielder,
		Name:       fielder.Name,
		LongName:   fielder.LongName,
		ShortName:  fielder.ShortName,
		Keeper:     fielder.Keeper,
		Substitute: fielder.Substitute,
		Catches:    fielder.Catches,
		Stumpings:  fielder.Stumpings,
		RunOuts:    fielder.RunOuts,
	}
}

func (r FielderRecord) fielder() (*roles.Fielder, error) {
	if r.Kind != kindFielder {
		return nil, fmt.Errorf("%w: kind %q, want %q", ErrBadRecord, r.Kind, kindFielder)
	}

	return &roles.Fielder{
		Name:       r.Name,
		LongName:   r.LongName,
		ShortName:  r.ShortName,
		Keeper:     r.Keeper,
		Substitute: r.Substitute,
		Catches:    r.Catches,
		Stumpings:  r.Stumpings,
		RunOuts:    r.RunOuts,
	}, nil
}
