// Package engine is the ball-by-ball match replay core: it consumes an
// ordered delivery feed and incrementally derives batting, bowling and
// fielding figures, partnerships, fall-of-wicket records, scorecards and
// the match summary. Replay is a deterministic, single-threaded fold over
// the delivery order; one Match owns its entire accumulator graph.
package engine

import (
	"fmt"

	"github.com/coverpoint/coverpoint/internal/cricsheet"
)

// FielderRef names a fielder involved in a dismissal, in the order the
// feed credits them. Substitute marks fielders outside the playing eleven.
type FielderRef struct {
	Name       string `json:"name"`
	Substitute bool   `json:"substitute,omitempty"`
}

// Wicket is one dismissal: its mode, the dismissed batter, the bowler the
// scoring convention credits (meaningless for run-outs and conduct
// dismissals) and the fielders involved. Immutable once constructed.
type Wicket struct {
	Kind     cricsheet.DismissalKind `json:"kind"`
	Batter   string                  `json:"batter"`
	Bowler   string                  `json:"bowler"`
	Fielders []FielderRef            `json:"fielders,omitempty"`
}

// newWicket builds a Wicket from one feed entry, rejecting dismissal
// kinds outside the vocabulary.
func newWicket(data cricsheet.WicketData, bowler string) (Wicket, error) {
	kind, err := cricsheet.ParseDismissalKind(data.Kind)
	if err != nil {
		return Wicket{}, fmt.Errorf("wicket for %q: %w", data.PlayerOut, err)
	}

	fielders := make([]FielderRef, 0, len(data.Fielders))
	for _, fd := range data.Fielders {
		fielders = append(fielders, FielderRef{Name: fd.Name, Substitute: fd.Substitute})
	}

	return Wicket{
		Kind:     kind,
		Batter:   data.PlayerOut,
		Bowler:   bowler,
		Fielders: fielders,
	}, nil
}
