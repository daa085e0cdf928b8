package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"maritime-maintenance/internal/clock"
	"maritime-maintenance/internal/expiry"
	"maritime-maintenance/internal/logger"
)

// RunReport summarises one notification pass.
type RunReport struct {
	Components  int
	Subscribers int
	Batches     int
	Sent        int
	Failed      int
}

// RunnerConfig configures a Runner.
type RunnerConfig struct {
	WindowDays int
	Dedup      KeyFunc
	Location   *time.Location
}

// Runner executes notification passes. At most one pass runs at a time.
type Runner struct {
	store  Store
	sender Sender
	clock  clock.Clock
	cfg    RunnerConfig
	log    *logger.Logger

	mu sync.Mutex
}

// NewRunner creates a runner.
func NewRunner(store Store, sender Sender, clk clock.Clock, cfg RunnerConfig) *Runner {
	if cfg.Dedup == nil {
		cfg.Dedup = ByComponentID
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if clk == nil {
		clk = clock.New()
	}
	return &Runner{
		store:  store,
		sender: sender,
		clock:  clk,
		cfg:    cfg,
		log:    logger.New().WithField("component", "notifier"),
	}
}

// Run performs one pass: read expiring components and subscribers, fan out,
// send one message per subscriber. A read failure aborts the pass before
// anything is sent. Send failures are logged and counted; the pass goes on.
func (r *Runner) Run(ctx context.Context) (*RunReport, error) {
	if !r.mu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer r.mu.Unlock()

	today := expiry.Today(r.clock.Now(), r.cfg.Location)
	log := r.log.WithField("date", expiry.Format(today))
	log.Info("Starting notification run")

	report := &RunReport{}

	components, err := r.store.ExpiringComponents(ctx, today, r.cfg.WindowDays)
	if err != nil {
		log.WithError(err).Error("Failed to load expiring components")
		return report, fmt.Errorf("load expiring components: %w", err)
	}
	report.Components = len(components)
	if len(components) == 0 {
		log.Info("No expiring components")
		return report, nil
	}
	log.WithField("count", len(components)).Info("Found expiring components")

	subscribers, err := r.store.Subscribers(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load subscriptions")
		return report, fmt.Errorf("load subscriptions: %w", err)
	}
	report.Subscribers = len(subscribers)
	if len(subscribers) == 0 {
		log.Info("No reachable subscribers")
		return report, nil
	}

	batches := FanOut(components, subscribers, r.cfg.Dedup)
	report.Batches = len(batches)

	for _, b := range batches {
		if err := ctx.Err(); err != nil {
			log.WithError(err).Warn("Notification run cancelled")
			return report, err
		}

		text, ok := FormatMessage(b.Components)
		if !ok {
			continue
		}

		entry := log.WithFields(map[string]interface{}{
			"telegram_id": b.TelegramID,
			"components":  len(b.Components),
		})
		if err := r.sender.SendMessage(ctx, b.TelegramID, text); err != nil {
			report.Failed++
			entry.WithError(err).Error("Failed to send notification")
			continue
		}
		report.Sent++
		entry.Info("Notification sent")
	}

	log.WithFields(map[string]interface{}{
		"batches": report.Batches,
		"sent":    report.Sent,
		"failed":  report.Failed,
	}).Info("Notification run finished")

	return report, nil
}
