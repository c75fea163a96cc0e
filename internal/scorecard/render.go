// Package scorecard renders replayed matches as plain-text report
// sections: a match header, batting and bowling cards, the ball-by-ball
// grid and the combined match summary.
package scorecard

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/coverpoint/coverpoint/internal/engine"
)

// Column headers shared by the card tables.
const (
	headerBatter  = "Batter"
	headerBowler  = "Bowler"
	msgNoPlayData = "No play data available"
)

// Renderer formats match output. Color controls ANSI accents on the
// header and outcome lines; tables are always plain.
type Renderer struct {
	colorize bool
}

// NewRenderer creates a renderer. Pass false to strip ANSI accents,
// for piped or logged output.
func NewRenderer(colorize bool) *Renderer {
	return &Renderer{colorize: colorize}
}

// Header renders the match description, toss and outcome lines.
func (r *Renderer) Header(mat *engine.Match) string {
	lines := []string{
		r.paint(color.Bold, mat.Description),
		mat.Toss,
		r.paint(color.FgGreen, mat.Outcome),
	}

	return strings.Join(lines, "\n")
}

// Match renders the full report: header, then per inning the title,
// batting card, fall of wickets and bowling card.
func (r *Renderer) Match(mat *engine.Match) string {
	parts := []string{r.Header(mat)}

	for _, inn := range mat.Innings {
		parts = append(parts, r.Inning(inn))
	}

	return strings.Join(parts, "\n\n")
}

// Inning renders one innings block.
func (r *Renderer) Inning(inn *engine.Inning) string {
	parts := []string{
		r.paint(color.Bold, inn.Title),
		r.BattingTable(inn),
	}

	if len(inn.FallOfWickets) > 0 {
		parts = append(parts, "Fall of wickets: "+strings.Join(inn.FallOfWickets, ", "))
	}

	if bowling := r.BowlingTable(inn); bowling != "" {
		parts = append(parts, bowling)
	}

	return strings.Join(parts, "\n")
}

// BattingTable renders the batting card with a totals footer.
func (r *Renderer) BattingTable(inn *engine.Inning) string {
	rows, totals := inn.BattingCard()

	tbl := newTable()
	tbl.AppendHeader(table.Row{headerBatter, "", "R", "B", "4s", "6s", "SR"})

	for _, row := range rows {
		tbl.AppendRow(table.Row{
			row.Name, row.Dismissal,
			row.Runs, row.Balls, row.Fours, row.Sixes, row.StrikeRate,
		})
	}

	tbl.AppendFooter(table.Row{"Extras", totals.Extras})
	tbl.AppendFooter(table.Row{
		"Total", fmt.Sprintf("%s (%s, %s)", totals.Score, totals.Overs, totals.RunRate),
	})

	return tbl.Render()
}

// BowlingTable renders the bowling card. An innings with no deliveries
// has no bowlers and renders as the empty string.
func (r *Renderer) BowlingTable(inn *engine.Inning) string {
	rows := inn.BowlingCard()
	if len(rows) == 0 {
		return ""
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{headerBowler, "O", "M", "R", "W", "Extras", "Econ"})

	for _, row := range rows {
		tbl.AppendRow(table.Row{
			row.Name, row.Overs, row.Maidens, row.Runs, row.Wickets, row.Extras, row.Economy,
		})
	}

	// The innings totals close the bowling card as well.
	_, totals := inn.BattingCard()
	tbl.AppendFooter(table.Row{
		"Total", fmt.Sprintf("%s (%s, %s)", totals.Score, totals.Overs, totals.RunRate),
	})

	return tbl.Render()
}

// GridTable renders the ball-by-ball grid, one row per over. Deliveries
// are joined into a single cell so overs of uneven length line up.
func (r *Renderer) GridTable(inn *engine.Inning) string {
	rows := inn.Grid()
	if len(rows) == 0 {
		return msgNoPlayData
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Over", headerBowler, "Deliveries", "Score"})

	for _, row := range rows {
		tbl.AppendRow(table.Row{
			row.Over, row.Bowlers, strings.Join(row.Outcomes, " "), row.Score,
		})
	}

	return tbl.Render()
}

// Summary renders the combined best-performer summary table.
func (r *Renderer) Summary(mat *engine.Match) string {
	rows := mat.Summary()
	if len(rows) == 0 {
		return msgNoPlayData
	}

	tbl := newTable()

	for _, row := range rows {
		tbl.AppendRow(table.Row{row.Left, row.Right})
	}

	return tbl.Render()
}

// paint wraps text in a color attribute when accents are enabled.
func (r *Renderer) paint(attr color.Attribute, text string) string {
	if !r.colorize {
		return text
	}

	return color.New(attr).Sprint(text)
}

// newTable builds a borderless light-style writer shared by all tables.
func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false
	tbl.Style().Options.SeparateFooter = false
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault

	return tbl
}
