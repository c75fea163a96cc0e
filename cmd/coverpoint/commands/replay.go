package commands

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coverpoint/coverpoint/internal/batch"
	"github.com/coverpoint/coverpoint/internal/scorecard"
	"github.com/coverpoint/coverpoint/pkg/persist"
)

// ReplayCommand holds flags for the replay command.
type ReplayCommand struct {
	configPath   string
	registryPath string
	workers      int
	summaryOnly  bool
	save         bool
	noColor      bool
}

// NewReplayCommand creates the replay command: decode the given feeds,
// replay them concurrently and print the scorecards.
func NewReplayCommand() *cobra.Command {
	replay := &ReplayCommand{}

	cmd := &cobra.Command{
		Use:   "replay <match.json> [match.json ...]",
		Short: "Replay match feeds and print scorecards",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return replay.run(cmd, args)
		},
	}

	cmd.Flags().StringVarP(&replay.configPath, "config", "c", "", "config file path")
	cmd.Flags().StringVarP(&replay.registryPath, "registry", "r", "", "player registry feed path")
	cmd.Flags().IntVarP(&replay.workers, "workers", "w", 0, "replay workers (0 uses the configured value)")
	cmd.Flags().BoolVar(&replay.summaryOnly, "summary-only", false, "print only the match summaries")
	cmd.Flags().BoolVar(&replay.save, "save", false, "persist each replayed match to the output dir")
	cmd.Flags().BoolVar(&replay.noColor, "no-color", false, "disable colored output")

	return cmd
}

func (rc *ReplayCommand) run(cmd *cobra.Command, paths []string) error {
	rt, err := loadRuntime(rc.configPath)
	if err != nil {
		return err
	}

	// Feeds that fail to load become failed results up front so one bad
	// file never blocks its siblings.
	results := make([]batch.Result, 0, len(paths))
	jobs := make([]batch.Job, 0, len(paths))

	for _, path := range paths {
		job, loadErr := rt.loadJob(path, rc.registryPath)
		if loadErr != nil {
			results = append(results, batch.Result{ID: path, Err: loadErr})

			continue
		}

		jobs = append(jobs, job)
	}

	workers := rt.cfg.Replay.Workers
	if rc.workers > 0 {
		workers = rc.workers
	}

	start := time.Now()
	runner := batch.NewRunner(workers, rt.logger)
	results = append(results, runner.Run(cmd.Context(), jobs)...)

	colorize := rt.cfg.Output.Color && !rc.noColor
	renderer := scorecard.NewRenderer(colorize)
	out := cmd.OutOrStdout()

	var failures int

	for _, result := range results {
		if result.Err != nil {
			failures++

			fmt.Fprintln(out, paint(colorize, color.FgRed, fmt.Sprintf("%s: %v", result.ID, result.Err)))

			continue
		}

		if rc.summaryOnly {
			fmt.Fprintln(out, renderer.Summary(result.Match))
		} else {
			fmt.Fprintln(out, renderer.Match(result.Match))
		}

		if rc.save {
			saveErr := persist.SaveMatch(
				rt.cfg.Output.Dir, feedBasename(result.ID), codecFor(rt.cfg.Output.Codec), result.Match,
			)
			if saveErr != nil {
				return fmt.Errorf("save %s: %w", result.ID, saveErr)
			}
		}

		fmt.Fprintln(out)
	}

	elapsed := time.Since(start).Round(time.Millisecond)
	fmt.Fprintf(out, "Replayed %s in %s\n", english.Plural(len(results)-failures, "match", ""), elapsed)

	if failures > 0 {
		return fmt.Errorf("%w: %d of %d", ErrReplayFailures, failures, len(results))
	}

	return nil
}
