package cricsheet

import (
	"errors"
	"fmt"
)

// ErrUnknownDismissal indicates a dismissal kind outside the feed
// vocabulary. The whole delivery is rejected rather than silently
// dropping the dismissal.
var ErrUnknownDismissal = errors.New("cricsheet: unknown dismissal kind")

// DismissalKind enumerates the dismissal vocabulary of the feed.
type DismissalKind string

// Dismissal kinds as they appear in the feed.
const (
	KindBowled           DismissalKind = "bowled"
	KindLBW              DismissalKind = "lbw"
	KindCaught           DismissalKind = "caught"
	KindCaughtAndBowled  DismissalKind = "caught and bowled"
	KindStumped          DismissalKind = "stumped"
	KindRunOut           DismissalKind = "run out"
	KindRetiredHurt      DismissalKind = "retired hurt"
	KindRetiredNotOut    DismissalKind = "retired not out"
	KindHitWicket        DismissalKind = "hit wicket"
	KindObstructingField DismissalKind = "obstructing the field"
	KindTimedOut         DismissalKind = "timed out"
	KindHandledTheBall   DismissalKind = "handled the ball"
)

// allKinds is the closed set of recognized dismissal kinds.
var allKinds = map[DismissalKind]struct{}{
	KindBowled:           {},
	KindLBW:              {},
	KindCaught:           {},
	KindCaughtAndBowled:  {},
	KindStumped:          {},
	KindRunOut:           {},
	KindRetiredHurt:      {},
	KindRetiredNotOut:    {},
	KindHitWicket:        {},
	KindObstructingField: {},
	KindTimedOut:         {},
	KindHandledTheBall:   {},
}

// bowlerCredited holds the kinds for which the bowler is statistically
// credited with the wicket.
var bowlerCredited = map[DismissalKind]struct{}{
	KindBowled:          {},
	KindLBW:             {},
	KindCaught:          {},
	KindCaughtAndBowled: {},
	KindStumped:         {},
	KindHitWicket:       {},
}

// ParseDismissalKind validates a raw kind string against the vocabulary.
func ParseDismissalKind(raw string) (DismissalKind, error) {
	kind := DismissalKind(raw)
	if _, ok := allKinds[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDismissal, raw)
	}

	return kind, nil
}

// CreditsBowler reports whether the bowler is credited with this kind of
// dismissal. Run-outs, obstruction, timed-out and handled-the-ball are
// fielding or conduct dismissals and never count in bowling figures.
func (k DismissalKind) CreditsBowler() bool {
	_, ok := bowlerCredited[k]

	return ok
}

// Retirement reports whether the kind is a retirement. Retirements close
// the active partnership but never increment the team's wicket count.
func (k DismissalKind) Retirement() bool {
	return k == KindRetiredHurt || k == KindRetiredNotOut
}
