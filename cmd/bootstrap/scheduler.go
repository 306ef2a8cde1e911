package bootstrap

import (
	"context"

	"wayfare/internal/pkg/clock"
	"wayfare/internal/pkg/config"
	"wayfare/internal/scheduler"
	"wayfare/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(RunScheduler),
)

func NewScheduler(source scheduler.SweepSource, bookings commands.BookingCommands, clk clock.Clock, cfg config.Config) *scheduler.Scheduler {
	return scheduler.New(source, bookings, clk, cfg.Scheduler)
}

func RunScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
