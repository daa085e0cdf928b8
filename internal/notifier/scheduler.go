package notifier

import (
	"context"
	"errors"
	"time"

	"maritime-maintenance/internal/clock"
	"maritime-maintenance/internal/logger"
)

// RunFunc is one scheduled job invocation.
type RunFunc func(ctx context.Context) (*RunReport, error)

// Scheduler fires a job once a day at a fixed wall-clock time.
type Scheduler struct {
	run        RunFunc
	clock      clock.Clock
	hour       int
	minute     int
	loc        *time.Location
	runOnStart bool
	log        *logger.Logger
}

// ParseDailyAt parses an HH:MM time of day.
func ParseDailyAt(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

// NewScheduler creates a scheduler that calls run every day at hour:minute in loc.
func NewScheduler(run RunFunc, clk clock.Clock, hour, minute int, loc *time.Location, runOnStart bool) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Scheduler{
		run:        run,
		clock:      clk,
		hour:       hour,
		minute:     minute,
		loc:        loc,
		runOnStart: runOnStart,
		log:        logger.New().WithField("component", "scheduler"),
	}
}

// NextRun returns the first hour:minute in loc strictly after now.
func NextRun(now time.Time, hour, minute int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
	}
	return next
}

// Start blocks, running the job on schedule until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.runOnStart {
		s.fire(ctx)
	}

	for {
		next := NextRun(s.clock.Now(), s.hour, s.minute, s.loc)
		s.log.WithField("next_run", next.Format(time.RFC3339)).Info("Scheduled next notification run")

		select {
		case <-ctx.Done():
			s.log.Info("Scheduler stopped")
			return nil
		case <-s.clock.After(next.Sub(s.clock.Now())):
			s.fire(ctx)
		}
	}
}

func (s *Scheduler) fire(ctx context.Context) {
	if _, err := s.run(ctx); err != nil {
		if errors.Is(err, ErrRunInProgress) {
			s.log.Warn("Skipping scheduled run: previous run still in progress")
			return
		}
		s.log.WithError(err).Error("Scheduled notification run failed")
	}
}
