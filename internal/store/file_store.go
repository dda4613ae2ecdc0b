package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/RenaudDev/PaperPause/internal/domain"
)

// FileStore keeps the queue in one pretty-printed JSON file. Save writes a
// temp file in the same directory and renames it over the target, so a
// killed process leaves either the old document or the new one, never a
// torn write.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*domain.DistributionQueue, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read queue file: %w", err)
	}

	var q domain.DistributionQueue
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrQueueCorrupt, s.path, err)
	}
	return &q, nil
}

func (s *FileStore) Save(q *domain.DistributionQueue) error {
	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal queue: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create queue directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp queue file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write queue file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close queue file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace queue file: %w", err)
	}
	return nil
}

// compile-time check that FileStore implements QueueStore
var _ QueueStore = (*FileStore)(nil)
