package engine

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize/english"

	"github.com/coverpoint/coverpoint/internal/cricsheet"
)

// Feed and display date layouts.
const (
	feedDateLayout    = "2006-01-02"
	displayDateLayout = "Jan 02 2006"
	monthLayout       = "Jan"
)

// Structured result values the feed uses when no team won.
const (
	resultDraw     = "draw"
	resultTie      = "tie"
	resultNoResult = "no result"
)

// displayDateRange renders the match dates, collapsing the range when the
// boundaries share a month ("Mar 05-08 2021") or a year
// ("Mar 30-Apr 02 2021").
func displayDateRange(dates []string) (string, error) {
	if len(dates) == 0 {
		return "", fmt.Errorf("%w: no dates", ErrInvalidMetadata)
	}

	start, err := time.Parse(feedDateLayout, dates[0])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}

	if len(dates) == 1 {
		return start.Format(displayDateLayout), nil
	}

	end, err := time.Parse(feedDateLayout, dates[len(dates)-1])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}

	switch {
	case start.Year() == end.Year() && start.Month() == end.Month():
		return fmt.Sprintf("%s %d-%d %d", start.Format(monthLayout), start.Day(), end.Day(), start.Year()), nil
	case start.Year() == end.Year():
		return fmt.Sprintf("%s %d-%s %d %d",
			start.Format(monthLayout), start.Day(),
			end.Format(monthLayout), end.Day(), start.Year()), nil
	default:
		return start.Format(displayDateLayout) + "-" + end.Format(displayDateLayout), nil
	}
}

// eventDescription renders the competition line: name, then sub-name,
// stage, group and match number when present.
func eventDescription(event *cricsheet.EventInfo) string {
	if event == nil || event.Name == "" {
		return ""
	}

	description := event.Name

	if event.SubName != "" {
		description += ", " + event.SubName
	}

	if event.Stage != "" {
		description += " " + event.Stage
	}

	if event.Group != "" {
		description += " Group " + event.Group
	}

	if event.MatchNumber > 0 {
		description += fmt.Sprintf(" Match %d", event.MatchNumber)
	}

	return description
}

// tossSentence renders the toss result, e.g. "Alphaland won the toss and
// chose to bat".
func tossSentence(toss cricsheet.TossInfo) string {
	if toss.Uncontested {
		return fmt.Sprintf("%s batted first (uncontested toss)", toss.Winner)
	}

	return fmt.Sprintf("%s won the toss and chose to %s", toss.Winner, toss.Decision)
}

// outcomeSentence renders the structured result as one line, e.g.
// "Alphaland won by 72 runs" or "Match tied (Betaton won the one-over
// eliminator)".
func outcomeSentence(outcome cricsheet.OutcomeInfo) string {
	if outcome.Winner != "" {
		return winnerSentence(outcome)
	}

	switch outcome.Result {
	case resultTie:
		if outcome.Eliminator != "" {
			return fmt.Sprintf("Match tied (%s won the one-over eliminator)", outcome.Eliminator)
		}

		return "Match tied"
	case resultDraw:
		return "Match drawn"
	case resultNoResult:
		return "No result"
	default:
		return outcome.Result
	}
}

// winnerSentence renders a decided match with its margin and method.
func winnerSentence(outcome cricsheet.OutcomeInfo) string {
	sentence := outcome.Winner + " won"

	if by := outcome.By; by != nil {
		switch {
		case by.Innings:
			sentence += fmt.Sprintf(" by an innings and %s", english.Plural(by.Runs, "run", ""))
		case by.Wickets > 0:
			sentence += " by " + english.Plural(by.Wickets, "wicket", "")
		default:
			sentence += " by " + english.Plural(by.Runs, "run", "")
		}
	}

	if outcome.Method != "" {
		sentence += fmt.Sprintf(" (%s method)", outcome.Method)
	}

	return sentence
}
