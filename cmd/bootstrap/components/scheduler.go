package components

import (
	"context"
	"log/slog"

	"card-drop/internal/infra/scheduler"
	"card-drop/internal/pkg/clock"
	"card-drop/internal/usecase/commands"
	"card-drop/internal/usecase/shared"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
		func(s *scheduler.Scheduler) shared.NotificationScheduler { return s },
	),
)

// NewScheduler fires cooldown notifications through the notifier. Pending
// timers are dropped on stop; they are re-armed from the snapshot on start.
func NewScheduler(lc fx.Lifecycle, notifier *commands.Notifier, clk clock.Clock, logger *slog.Logger) (*scheduler.Scheduler, error) {
	s, err := scheduler.New(notifier, clk, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return s.Shutdown()
		},
	})
	return s, nil
}
