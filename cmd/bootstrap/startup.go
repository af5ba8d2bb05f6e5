package bootstrap

import (
	"context"
	"log/slog"

	"card-drop/internal/infra/scheduler"
	"card-drop/internal/infra/statestore"
	"card-drop/internal/pkg/config"
	"card-drop/internal/usecase/commands"

	"go.uber.org/fx"
)

var StartupModule = fx.Options(
	fx.Invoke(RestoreState),
)

// RestoreState re-arms pending notifications, loads the inventory and
// schedules the periodic jobs. It runs after the scheduler has started and
// before any claim can arrive.
func RestoreState(lc fx.Lifecycle, cfg config.Config, sched *scheduler.Scheduler, store *statestore.Store, notifications commands.NotificationCommands, inventory commands.InventoryCommands, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			notifications.RestoreAll(ctx)

			count, err := inventory.Load(ctx)
			if err != nil {
				logger.Warn("initial inventory load failed", "error", err)
			} else {
				logger.Info("inventory loaded", "items", count)
			}

			if cfg.Inventory.RescanInterval > 0 {
				err := sched.Every(cfg.Inventory.RescanInterval, "inventory-rescan", func(ctx context.Context) {
					if _, err := inventory.Load(ctx); err != nil {
						logger.Warn("inventory rescan failed", "error", err)
					}
				})
				if err != nil {
					return err
				}
			}

			if cfg.Store.RetryInterval > 0 {
				return sched.Every(cfg.Store.RetryInterval, "snapshot-retry", func(ctx context.Context) {
					if !store.Dirty() {
						return
					}
					if err := store.Persist(ctx); err != nil {
						logger.Warn("snapshot retry failed", "error", err)
					}
				})
			}
			return nil
		},
	})
}
