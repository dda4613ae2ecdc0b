package manifest

import "github.com/RenaudDev/PaperPause/internal/domain"

// Source yields the run manifests from the most recent generation cycle.
// Success-gated planning reads these instead of auditing the catalog.
type Source interface {
	Recent() ([]domain.RunManifest, error)
}
