package commands

import (
	"context"
	"log/slog"
	"sync"

	"card-drop/internal/pkg/errs"
	"card-drop/internal/pkg/random"
	"card-drop/internal/usecase/shared"
)

// InventoryCommands keeps the current item list and picks rewards from it.
type InventoryCommands interface {
	// Load lists the item source and assigns point values to unseen items.
	Load(ctx context.Context) (int, error)
	// Pick draws uniformly from the current list.
	Pick() (string, error)
	Items() []string
}

type inventoryUseCaseImpl struct {
	source  shared.ItemSource
	catalog shared.CatalogStore
	rnd     random.Source
	logger  *slog.Logger

	mu    sync.RWMutex
	items []string
}

func NewInventoryCommands(source shared.ItemSource, catalog shared.CatalogStore, rnd random.Source, logger *slog.Logger) InventoryCommands {
	return &inventoryUseCaseImpl{source: source, catalog: catalog, rnd: rnd, logger: logger}
}

// Load keeps the previous list when listing fails. A persistence failure
// while assigning values still replaces the list; the values stand in memory.
func (uc *inventoryUseCaseImpl) Load(ctx context.Context) (int, error) {
	ids, err := uc.source.ListItemIDs(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "failed to list items")
	}

	added, assignErr := uc.catalog.AssignIfAbsent(ctx, ids...)

	uc.mu.Lock()
	uc.items = ids
	uc.mu.Unlock()

	if len(ids) == 0 {
		uc.logger.Warn("no items found in inventory")
	}
	uc.logger.Info("inventory loaded",
		"items", len(ids),
		"newly_valued", added)
	return len(ids), assignErr
}

func (uc *inventoryUseCaseImpl) Pick() (string, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if len(uc.items) == 0 {
		return "", errs.ErrNoItemsAvailable
	}
	return uc.items[uc.rnd.IntN(len(uc.items))], nil
}

func (uc *inventoryUseCaseImpl) Items() []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return append([]string(nil), uc.items...)
}
