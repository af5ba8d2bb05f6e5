package snapshot

import (
	"context"
	"errors"
	"log/slog"

	"card-drop/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createSnapshotTable = `
CREATE TABLE IF NOT EXISTS state_snapshots (
    name       TEXT PRIMARY KEY,
    document   JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

	selectSnapshot = `SELECT document FROM state_snapshots WHERE name = $1`

	upsertSnapshot = `
INSERT INTO state_snapshots (name, document, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE
SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`
)

// PostgresStore keeps each named document as one JSONB row.
type PostgresStore struct {
	pool   *pgxpool.Pool
	name   string
	logger *slog.Logger
}

func NewPostgresStore(pool *pgxpool.Pool, name string, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, name: name, logger: logger}
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createSnapshotTable); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to create snapshot table", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*Document, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, selectSnapshot, s.name).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "snapshot row not found", nil)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to load snapshot row", err)
	}
	return Decode(s.logger, raw)
}

func (s *PostgresStore) Save(ctx context.Context, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to encode snapshot", err)
	}
	if _, err := s.pool.Exec(ctx, upsertSnapshot, s.name, string(data)); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to upsert snapshot row", err)
	}
	return nil
}

var _ Backend = (*PostgresStore)(nil)
