package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"card-drop/internal/infra"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS state_snapshots (
    name       TEXT PRIMARY KEY,
    document   TEXT NOT NULL,
    updated_at TEXT NOT NULL
)`

// SQLiteStore is the single-file embedded alternative to PostgresStore.
type SQLiteStore struct {
	sqlDB  *sql.DB
	name   string
	logger *slog.Logger
}

func OpenSQLiteStore(path, name string, logger *slog.Logger) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(FULL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// one writer keeps WAL contention out of the flush path
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}
	return &SQLiteStore{sqlDB: sqlDB, name: name, logger: logger}, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *SQLiteStore) Load(ctx context.Context) (*Document, error) {
	var raw string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT document FROM state_snapshots WHERE name = ?`, s.name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "snapshot row not found", nil)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to load snapshot row", err)
	}
	return Decode(s.logger, []byte(raw))
}

func (s *SQLiteStore) Save(ctx context.Context, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to encode snapshot", err)
	}
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO state_snapshots (name, document, updated_at) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		s.name, string(data), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to upsert snapshot row", err)
	}
	return nil
}

var _ Backend = (*SQLiteStore)(nil)
