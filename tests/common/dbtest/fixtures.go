//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"card-drop/internal/infra/snapshot"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// LoadSnapshot reads the stored document for name as the application wrote it.
func LoadSnapshot(t *testing.T, db DBLike, name string) *snapshot.Document {
	t.Helper()

	var raw []byte
	err := db.QueryRow(context.Background(),
		"SELECT document FROM state_snapshots WHERE name = $1", name).Scan(&raw)
	require.NoError(t, err, "snapshot row %q not found", name)

	var doc snapshot.Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	return &doc
}

// SeedSnapshot stores doc under name, replacing any previous row.
func SeedSnapshot(t *testing.T, db DBLike, name string, doc *snapshot.Document) {
	t.Helper()

	data, err := snapshot.Encode(doc)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), `
		INSERT INTO state_snapshots (name, document) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document`,
		name, string(data))
	require.NoError(t, err)
}

// ResetSnapshots empties the snapshot table.
func ResetSnapshots(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE state_snapshots")
	return err
}
