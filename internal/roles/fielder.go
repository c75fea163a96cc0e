package roles

import (
	"fmt"

	"github.com/coverpoint/coverpoint/internal/cricsheet"
	"github.com/coverpoint/coverpoint/internal/registry"
)

// keeperMark prefixes the wicket-keeper's name in dismissal text.
const keeperMark = "†"

// Fielder accumulates one fielder's credits for one inning.
type Fielder struct {
	Name       string
	LongName   string
	ShortName  string
	Keeper     bool
	Substitute bool
	Catches    int
	Stumpings  int
	RunOuts    int
}

// NewFielder creates a fresh accumulator for a player in the field.
func NewFielder(player *registry.Player, keeper, substitute bool) *Fielder {
	return &Fielder{
		Name:       player.Name,
		LongName:   player.LongName,
		ShortName:  player.ShortName,
		Keeper:     keeper,
		Substitute: substitute,
	}
}

// PlayerName implements namedlist.Named.
func (f *Fielder) PlayerName() string {
	return f.Name
}

// String renders the fielder's name for dismissal text, marking
// substitutes and the wicket-keeper.
func (f *Fielder) String() string {
	if f.Substitute {
		return fmt.Sprintf("sub (%s)", f.ShortName)
	}

	if f.Keeper {
		return keeperMark + f.ShortName
	}

	return f.ShortName
}

// Credit updates the fielder's figures for one dismissal they took part in.
func (f *Fielder) Credit(kind cricsheet.DismissalKind) {
	switch kind {
	case cricsheet.KindCaught, cricsheet.KindCaughtAndBowled:
		f.Catches++
	case cricsheet.KindStumped:
		f.Stumpings++
	case cricsheet.KindRunOut:
		f.RunOuts++
	default:
	}
}

// FielderSnapshot is an immutable copy of a Fielder.
type FielderSnapshot Fielder

// Freeze produces an immutable value snapshot of the current figures.
func (f *Fielder) Freeze() FielderSnapshot {
	return FielderSnapshot(*f)
}

// Thaw reconstructs a live accumulator from a snapshot.
func (s FielderSnapshot) Thaw() *Fielder {
	fielder := Fielder(s)

	return &fielder
}
