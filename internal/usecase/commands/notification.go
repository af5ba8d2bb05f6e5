package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"card-drop/internal/domain/participant"
	"card-drop/internal/pkg/clock"
	"card-drop/internal/usecase/shared"
)

const defaultDeliveryTimeout = 10 * time.Second

func NotificationText(name string) string {
	return fmt.Sprintf("🎉 %s, the timer is over!\n\nYou can open a new card now: /drop", name)
}

// Notifier delivers the cooldown-over message for a fired timer.
type Notifier struct {
	store    shared.ParticipantReader
	delivery shared.Delivery
	timeout  time.Duration
	logger   *slog.Logger
}

func NewNotifier(store shared.ParticipantReader, delivery shared.Delivery, logger *slog.Logger) *Notifier {
	return &Notifier{store: store, delivery: delivery, timeout: defaultDeliveryTimeout, logger: logger}
}

// Fire makes exactly one delivery attempt. Failures are logged and dropped.
func (n *Notifier) Fire(ctx context.Context, id participant.ID) {
	name := participant.FallbackName(id)
	if p, ok := n.store.GetParticipant(id); ok {
		name = p.DisplayName()
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.delivery.Notify(ctx, id, NotificationText(name)); err != nil {
		n.logger.Warn("failed to deliver cooldown notification",
			"participant_id", int64(id),
			"error", err)
		return
	}
	n.logger.Info("cooldown notification delivered", "participant_id", int64(id))
}

type NotificationCommands interface {
	// RestoreAll re-arms timers for cooldowns still running. Cooldowns that
	// ended while the process was down get no notification.
	RestoreAll(ctx context.Context) int
}

type notificationUseCaseImpl struct {
	store     shared.ParticipantReader
	scheduler shared.NotificationScheduler
	clock     clock.Clock
	logger    *slog.Logger
}

func NewNotificationCommands(store shared.ParticipantReader, scheduler shared.NotificationScheduler, clk clock.Clock, logger *slog.Logger) NotificationCommands {
	return &notificationUseCaseImpl{store: store, scheduler: scheduler, clock: clk, logger: logger}
}

func (uc *notificationUseCaseImpl) RestoreAll(ctx context.Context) int {
	now := uc.clock.Now()
	armed, expired := 0, 0
	for _, p := range uc.store.Participants() {
		if ctx.Err() != nil {
			break
		}
		until := p.CooldownUntil()
		if until == nil {
			continue
		}
		if !until.After(now) {
			expired++
			continue
		}
		uc.scheduler.Arm(p.ID(), *until)
		armed++
	}
	uc.logger.Info("notifications restored",
		"armed", armed,
		"expired_during_downtime", expired)
	return armed
}
