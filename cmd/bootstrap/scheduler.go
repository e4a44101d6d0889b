package bootstrap

import (
	"context"
	"log/slog"

	"classbook/internal/pkg/config"
	"classbook/internal/usecase/commands"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

// SchedulerModule runs the reminder dispatcher in-process when
// REMINDER_INTERVAL is set. Deployments using a platform cron hit the HTTP
// endpoint instead and leave the interval at zero.
var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartReminderScheduler),
)

func StartReminderScheduler(lc fx.Lifecycle, cfg config.Config, reminders commands.ReminderCommands) error {
	if cfg.Reminder.Interval <= 0 {
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(cfg.Reminder.Interval),
		gocron.NewTask(func() {
			if _, err := reminders.Dispatch(context.Background(), false); err != nil {
				slog.Error("scheduled reminder dispatch failed", "error", err.Error())
			}
		}),
	)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			slog.Info("reminder scheduler started", "interval", cfg.Reminder.Interval.String())
			return nil
		},
		OnStop: func(_ context.Context) error {
			return scheduler.Shutdown()
		},
	})
	return nil
}
