package components

import (
	"context"
	"fmt"
	"log/slog"

	"card-drop/internal/handler/bot"
	"card-drop/internal/infra/inventory"
	"card-drop/internal/infra/objectstore"
	"card-drop/internal/pkg/config"
	"card-drop/internal/usecase/shared"

	"go.uber.org/fx"
)

// ItemRepository lists reward items and opens their artwork.
type ItemRepository interface {
	shared.ItemSource
	bot.ItemOpener
}

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewItemRepository,
		func(r ItemRepository) shared.ItemSource { return r },
		func(r ItemRepository) bot.ItemOpener { return r },
	),
)

func NewItemRepository(cfg config.Config, logger *slog.Logger) (ItemRepository, error) {
	switch cfg.Inventory.Source {
	case "dir":
		return inventory.NewDirSource(cfg.Inventory.Dir, cfg.Inventory.Extensions, logger)
	case "s3":
		client, err := objectstore.NewClient(context.Background(), cfg.S3)
		if err != nil {
			return nil, err
		}
		return inventory.NewS3Source(client, cfg.S3.Bucket, cfg.Inventory.S3Prefix, cfg.Inventory.Extensions, logger), nil
	default:
		return nil, fmt.Errorf("unknown INVENTORY_SOURCE %q", cfg.Inventory.Source)
	}
}
