package components

import (
	"context"
	"fmt"
	"log/slog"

	"card-drop/internal/domain/catalog"
	"card-drop/internal/domain/cooldown"
	"card-drop/internal/infra/db"
	"card-drop/internal/infra/objectstore"
	"card-drop/internal/infra/snapshot"
	"card-drop/internal/infra/statestore"
	"card-drop/internal/pkg/clock"
	"card-drop/internal/pkg/config"
	"card-drop/internal/pkg/random"
	"card-drop/internal/usecase/queries"
	"card-drop/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSnapshotBackend,
		fx.Annotate(
			NewStateStore,
			fx.As(fx.Self()),
			fx.As(new(shared.ParticipantStore)),
			fx.As(new(shared.ParticipantReader)),
			fx.As(new(shared.CatalogStore)),
			fx.As(new(queries.CatalogReadStore)),
		),
	),
)

// NewSnapshotBackend picks where the state document is stored. Backends that
// hold connections are closed on stop.
func NewSnapshotBackend(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (snapshot.Backend, error) {
	ctx := context.Background()

	switch cfg.Store.Backend {
	case "file":
		return snapshot.NewFileStore(cfg.Store.Path, logger), nil

	case "postgres":
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		store := snapshot.NewPostgresStore(pool, cfg.Store.Name, logger)
		if err := store.Migrate(ctx); err != nil {
			cleanup()
			return nil, err
		}
		return store, nil

	case "sqlite":
		store, err := snapshot.OpenSQLiteStore(cfg.Store.Path, cfg.Store.Name, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})
		return store, nil

	case "s3":
		client, err := objectstore.NewClient(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return snapshot.NewS3Store(client, cfg.S3.Bucket, cfg.S3.SnapshotKey, logger), nil

	default:
		return nil, fmt.Errorf("unknown SNAPSHOT_BACKEND %q", cfg.Store.Backend)
	}
}

// NewStateStore loads the snapshot and flushes pending state on stop.
func NewStateStore(lc fx.Lifecycle, cfg config.Config, backend snapshot.Backend, clk clock.Clock, rnd random.Source, logger *slog.Logger) (*statestore.Store, error) {
	policy, err := cooldown.NewPolicy(cfg.Game.Cooldown)
	if err != nil {
		return nil, err
	}
	points, err := catalog.NewPointRange(cfg.Game.PointsMin, cfg.Game.PointsMax)
	if err != nil {
		return nil, err
	}

	store, err := statestore.Open(context.Background(), backend, statestore.Options{
		Clock:        clk,
		Random:       rnd,
		Points:       points,
		Cooldown:     policy,
		FlushTimeout: cfg.Store.FlushTimeout,
		Logger:       logger,
	})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close(ctx)
		},
	})
	return store, nil
}
