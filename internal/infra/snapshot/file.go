package snapshot

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"card-drop/internal/infra"
)

// FileStore keeps the document as a JSON file. Writes go to a temp file in
// the same directory and are renamed into place.
type FileStore struct {
	path   string
	logger *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{path: filepath.Clean(path), logger: logger}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "snapshot file not found", nil)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to read snapshot file", err)
	}
	return Decode(s.logger, data)
}

func (s *FileStore) Save(ctx context.Context, doc *Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(doc)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDecodeFailure, "failed to encode snapshot", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to create snapshot dir", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to create temp snapshot", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to write temp snapshot", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to sync temp snapshot", err)
	}
	if err := tmp.Close(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to close temp snapshot", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to replace snapshot file", err)
	}
	return nil
}

var _ Backend = (*FileStore)(nil)
