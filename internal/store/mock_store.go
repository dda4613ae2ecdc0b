package store

import (
	"sync"

	"github.com/RenaudDev/PaperPause/internal/domain"
)

// MockStore is an in-memory QueueStore for tests. It counts Save calls so
// tests can assert that a run left the stored queue untouched. Guarded by a
// mutex so tests may poll it while a routine runs in the background.
type MockStore struct {
	Queue   *domain.DistributionQueue
	LoadErr error
	SaveErr error

	mu    sync.Mutex
	saves int
}

func NewMockStore() *MockStore { return &MockStore{} }

func (m *MockStore) Load() (*domain.DistributionQueue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Queue == nil {
		return nil, nil
	}
	// Copy so callers mutating the result do not bypass Save.
	cp := *m.Queue
	cp.Queue = append([]domain.QueueItem(nil), m.Queue.Queue...)
	return &cp, nil
}

func (m *MockStore) Save(q *domain.DistributionQueue) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.saves++
	cp := *q
	cp.Queue = append([]domain.QueueItem(nil), q.Queue...)
	m.Queue = &cp
	return nil
}

// Saves reports how many times Save succeeded.
func (m *MockStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

var _ QueueStore = (*MockStore)(nil)
