package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"maritime-maintenance/internal/clock"
	"maritime-maintenance/internal/config"
	apperrors "maritime-maintenance/internal/errors"
	"maritime-maintenance/internal/logger"
	"maritime-maintenance/internal/notifier"
	"maritime-maintenance/internal/telegram"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// worker bundles the dependencies shared by every subcommand
type worker struct {
	cfg    *config.Config
	pool   *pgxpool.Pool
	client *telegram.Client
	runner *notifier.Runner
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifier",
		Short: "Telegram notifications for components nearing end of service life",
		Long: `Sends each subscribed user one Telegram message a day listing the
operational components of the types they follow that expire within the
notification window.

Components are de-duplicated per message by id (NOTIFIER_DEDUP_KEY=id, the
default), so two distinct components sharing a name and serial number are both
listed. Set NOTIFIER_DEDUP_KEY=name_serial to collapse them into one line.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newOnceCommand())

	return cmd
}

func newRunCommand() *cobra.Command {
	var withoutBot bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the daily scheduler and the /start responder until stopped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w, err := newWorker(ctx)
			if err != nil {
				return err
			}
			defer w.close()

			hour, minute, err := notifier.ParseDailyAt(w.cfg.NotifierDailyAt)
			if err != nil {
				return fmt.Errorf("NOTIFIER_DAILY_AT: %w", err)
			}
			scheduler := notifier.NewScheduler(w.runner.Run, clock.New(), hour, minute,
				w.cfg.NotifierLocation(), w.cfg.NotifierRunOnStart)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error { return scheduler.Start(gctx) })
			if w.cfg.NotifierBotEnabled && !withoutBot {
				bot := notifier.NewBot(w.client, w.client)
				g.Go(func() error { return bot.Run(gctx) })
			}

			return g.Wait()
		},
	}

	cmd.Flags().BoolVar(&withoutBot, "no-bot", false, "do not answer /start messages")

	return cmd
}

func newOnceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "once",
		Short: "Perform a single notification pass and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w, err := newWorker(ctx)
			if err != nil {
				return err
			}
			defer w.close()

			report, err := w.runner.Run(ctx)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"components":  report.Components,
				"subscribers": report.Subscribers,
				"sent":        report.Sent,
				"failed":      report.Failed,
			}).Info("Notification pass complete")
			return nil
		},
	}
}

func newWorker(ctx context.Context) (*worker, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	if cfg.TelegramBotToken == "" {
		return nil, apperrors.ErrTelegramTokenMissing
	}

	dedup, err := notifier.KeyFuncFor(cfg.NotifierDedupKey)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	client := telegram.New(cfg.TelegramBotToken, telegram.Options{
		BaseURL:       cfg.TelegramAPIURL,
		SendTimeout:   cfg.TelegramSendTimeout,
		RatePerSecond: cfg.TelegramRatePerSec,
	})

	runner := notifier.NewRunner(notifier.NewPgStore(pool), client, clock.New(), notifier.RunnerConfig{
		WindowDays: cfg.NotifierWindowDays,
		Dedup:      dedup,
		Location:   cfg.NotifierLocation(),
	})

	return &worker{cfg: cfg, pool: pool, client: client, runner: runner}, nil
}

func (w *worker) close() {
	w.pool.Close()
}
