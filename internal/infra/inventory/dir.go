package inventory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"card-drop/internal/infra"
	"card-drop/internal/usecase/shared"
)

var DefaultExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp"}

// DirSource lists image files in one directory. Item ids are file names.
type DirSource struct {
	dir        string
	extensions map[string]bool
	logger     *slog.Logger
}

// NewDirSource creates dir when it does not exist yet.
func NewDirSource(dir string, extensions []string, logger *slog.Logger) (*DirSource, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create inventory dir: %w", err)
	}
	return &DirSource{dir: dir, extensions: extensionSet(extensions), logger: logger}, nil
}

func (s *DirSource) ListItemIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to list inventory dir", err)
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !s.extensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		ids = append(ids, e.Name())
	}
	sort.Strings(ids)
	return ids, nil
}

// Open returns the item's image bytes. Ids that are not plain file names are
// rejected.
func (s *DirSource) Open(ctx context.Context, itemID string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if itemID == "" || filepath.Base(itemID) != itemID {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "invalid item id", nil)
	}
	f, err := os.Open(filepath.Join(s.dir, itemID))
	if os.IsNotExist(err) {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "item file not found", err)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStorageFailure, "failed to open item file", err)
	}
	return f, nil
}

func extensionSet(exts []string) map[string]bool {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = true
	}
	return set
}

var _ shared.ItemSource = (*DirSource)(nil)
