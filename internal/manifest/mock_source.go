package manifest

import "github.com/RenaudDev/PaperPause/internal/domain"

// MockSource serves canned manifests for tests.
type MockSource struct {
	Manifests []domain.RunManifest
	Err       error
}

func (m *MockSource) Recent() ([]domain.RunManifest, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Manifests, nil
}

var _ Source = (*MockSource)(nil)
