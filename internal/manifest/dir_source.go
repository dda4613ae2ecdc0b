package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/RenaudDev/PaperPause/internal/domain"
)

// DirSource reads *.json run manifests from a directory. The generation
// workflow drops one manifest per collection; a missing directory simply
// means nothing was generated.
//
// A manifest that fails to parse is skipped with a warning rather than
// failing the run: one corrupt artifact must not block the collections that
// generated cleanly.
type DirSource struct {
	dir    string
	logger *zap.Logger
}

func NewDirSource(dir string, logger *zap.Logger) *DirSource {
	return &DirSource{dir: dir, logger: logger}
}

func (s *DirSource) Recent() ([]domain.RunManifest, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob manifests: %w", err)
	}

	var manifests []domain.RunManifest
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read manifest %s: %w", path, err)
		}

		var m domain.RunManifest
		if err := json.Unmarshal(data, &m); err != nil {
			s.logger.Warn("skipping unparsable manifest",
				zap.String("path", path), zap.Error(err))
			continue
		}
		if m.Collection == "" {
			s.logger.Warn("skipping manifest without collection",
				zap.String("path", path))
			continue
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}

// compile-time check that DirSource implements Source
var _ Source = (*DirSource)(nil)
