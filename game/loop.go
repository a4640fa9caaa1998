// Package game drives the simulation: render a generation, wait, advance.
package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Screen is the console surface a frame is written to
type Screen interface {
	io.Writer
	Clear() error
	Flush() error
}

// Settings for a run
type Settings struct {
	Width         int
	Height        int
	Delay         time.Duration
	UseParallel   bool
	Workers       int
	UseMemoryPool bool
}

// Summary describes where a run stopped
type Summary struct {
	Generations int // generation index of Final
	Population  int
	Final       model.LiveSet
}

// Runner owns the current generation and exchanges it for the next one every tick
type Runner struct {
	screen   Screen
	settings Settings
	logger   log.Logger
	pool     *model.SetPool
	stats    *utils.Stats
	history  model.History
	settled  bool

	wait func(ctx context.Context, d time.Duration) error
}

func NewRunner(screen Screen, settings Settings, logger log.Logger) *Runner {
	var pool *model.SetPool
	if settings.UseMemoryPool {
		pool = model.NewSetPool()
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Runner{
		screen:   screen,
		settings: settings,
		logger:   logger,
		pool:     pool,
		stats:    utils.NewStats(),
		wait:     sleepContext,
	}
}

// Stats returns the statistics collected so far
func (r *Runner) Stats() *utils.Stats {
	return r.stats
}

// RunBounded renders and advances exactly generations times, then returns
func (r *Runner) RunBounded(ctx context.Context, generations int, initial model.LiveSet) (Summary, error) {
	return r.run(ctx, max(generations, 0), initial)
}

// RunUnbounded never stops on its own. It returns ctx.Err() once ctx is cancelled.
func (r *Runner) RunUnbounded(ctx context.Context, initial model.LiveSet) (Summary, error) {
	return r.run(ctx, -1, initial)
}

// run ticks until limit generations were rendered, limit < 0 means forever
func (r *Runner) run(ctx context.Context, limit int, initial model.LiveSet) (Summary, error) {
	var (
		current    = initial.Clone()
		generation = 0
		lastFrame  = time.Now()
	)

	// history from a previous run must not mark this one as settled
	r.history.Reset()
	r.settled = false

	level.Info(r.logger).Log(
		"msg", "simulation started",
		"limit", limit,
		"population", current.Len(),
		"viewport", fmt.Sprintf("%dx%d", r.settings.Width, r.settings.Height),
		"delay", r.settings.Delay,
	)

	for limit < 0 || generation < limit {
		frameStart := time.Now()
		if err := r.tick(generation, current); err != nil {
			return summarize(generation, current), err
		}
		r.observe(generation, current, frameStart.Sub(lastFrame))
		lastFrame = frameStart

		if err := r.wait(ctx, r.settings.Delay); err != nil {
			return summarize(generation, current), err
		}

		next := r.next(current)
		model.SetToPool(current, r.pool)
		current = next
		generation++
	}

	level.Info(r.logger).Log("msg", "simulation finished", "generations", generation, "population", current.Len())
	return summarize(generation, current), nil
}

// tick draws one frame: clear, header, viewport, flush
func (r *Runner) tick(generation int, current model.LiveSet) error {
	if err := r.screen.Clear(); err != nil {
		level.Warn(r.logger).Log("msg", "failed to clear screen", "err", err)
	}

	if _, err := fmt.Fprintf(r.screen, "Generation: %d | Population: %d\n", generation, current.Len()); err != nil {
		return errors.Wrapf(err, "[tick] failed to write header of generation %d", generation)
	}
	if _, err := io.WriteString(r.screen, model.Render(r.settings.Width, r.settings.Height, current)); err != nil {
		return errors.Wrapf(err, "[tick] failed to write generation %d", generation)
	}
	if err := r.screen.Flush(); err != nil {
		return errors.Wrapf(err, "[tick] failed to flush generation %d", generation)
	}
	return nil
}

// observe updates stats and reports when the pattern stops changing
func (r *Runner) observe(generation int, current model.LiveSet, frameDuration time.Duration) {
	population := current.Len()
	r.stats.Update(generation, population, frameDuration)

	period := r.history.Period(current)
	switch {
	case period > 0 && !r.settled:
		r.settled = true
		level.Debug(r.logger).Log("msg", "pattern settled", "generation", generation, "period", period)
	case period == 0:
		r.settled = false
	}
	r.history.Record(current)

	level.Debug(r.logger).Log(
		"generation", generation,
		"population", population,
		"bounding_box", current.BoundingBoxSize(),
		"gen_per_sec", fmt.Sprintf("%.1f", r.stats.GenerationsPerSecond),
	)
}

func (r *Runner) next(current model.LiveSet) model.LiveSet {
	if r.settings.UseParallel {
		return model.NextGenerationParallel(current, r.pool, r.settings.Workers)
	}
	return model.NextGeneration(current, r.pool)
}

func summarize(generation int, current model.LiveSet) Summary {
	return Summary{Generations: generation, Population: current.Len(), Final: current}
}

// sleepContext blocks for d or until ctx is done
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
