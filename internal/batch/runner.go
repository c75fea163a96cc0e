// Package batch replays many independent matches concurrently. Every
// match is isolated: one malformed feed fails its own result and nothing
// else.
package batch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/coverpoint/coverpoint/internal/cricsheet"
	"github.com/coverpoint/coverpoint/internal/engine"
	"github.com/coverpoint/coverpoint/internal/registry"
)

// defaultWorkers is the pool size used when none is configured.
const defaultWorkers = 4

// Job is one match to replay.
type Job struct {
	// ID identifies the match in results and logs (file path or match id).
	ID   string
	Data *cricsheet.MatchData
	Feed *registry.Feed
}

// Result is the outcome of one job. A failed replay still carries the
// match with every inning completed before the error, so partial state
// stays inspectable.
type Result struct {
	ID    string
	Match *engine.Match
	Err   error
}

// Runner replays jobs over a fixed worker pool.
type Runner struct {
	workers int
	logger  *slog.Logger
}

// NewRunner creates a runner with the given pool size. A non-positive
// size falls back to the default; a nil logger discards logs.
func NewRunner(workers int, logger *slog.Logger) *Runner {
	if workers <= 0 {
		workers = defaultWorkers
	}

	if logger == nil {
		logger = slog.New(discardHandler{})
	}

	return &Runner{
		workers: workers,
		logger:  logger,
	}
}

// Run replays every job and returns one result per job, in job order.
// Context cancellation stops dispatching new jobs; matches already being
// replayed run to completion.
func (r *Runner) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	indexes := make(chan int)

	var wg sync.WaitGroup

	for w := 0; w < r.workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range indexes {
				results[i] = r.replay(jobs[i])
			}
		}()
	}

dispatch:
	for i := range jobs {
		if ctx.Err() != nil {
			break
		}

		select {
		case <-ctx.Done():
			break dispatch
		case indexes <- i:
		}
	}

	close(indexes)
	wg.Wait()

	// Jobs never dispatched report the cancellation.
	for i := range results {
		if results[i].Match == nil && results[i].Err == nil {
			results[i] = Result{ID: jobs[i].ID, Err: ctx.Err()}
		}
	}

	return results
}

// replay runs one match, converting a panic-free failure into the job's
// result.
func (r *Runner) replay(job Job) Result {
	r.logger.Info("replay started", "match", job.ID)

	mat, err := engine.NewMatch(job.Data, job.Feed)
	if err != nil {
		r.logger.Error("replay failed", "match", job.ID, "error", err)

		return Result{ID: job.ID, Err: err}
	}

	err = mat.Run()
	if err != nil {
		r.logger.Error("replay failed", "match", job.ID, "error", err)

		return Result{ID: job.ID, Match: mat, Err: err}
	}

	r.logger.Info("replay finished", "match", job.ID, "innings", len(mat.Innings))

	return Result{ID: job.ID, Match: mat}
}

// discardHandler is a slog.Handler that drops everything.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
