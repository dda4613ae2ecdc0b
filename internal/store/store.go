package store

import "github.com/RenaudDev/PaperPause/internal/domain"

// QueueStore persists the single DistributionQueue document.
// The file implementation is in file_store.go.
// Tests use a hand-written mock (mock_store.go).
//
// Callers follow a read-entire, compute-in-memory, write-entire-back
// discipline; nothing coordinates concurrent writers, so the scheduler and
// conductor must never run against the same store at the same time.
type QueueStore interface {
	// Load returns the persisted queue, or (nil, nil) when no queue has
	// been written yet. A file that exists but cannot be parsed is an
	// error wrapping domain.ErrQueueCorrupt.
	Load() (*domain.DistributionQueue, error)

	// Save overwrites the persisted queue with the full aggregate.
	Save(q *domain.DistributionQueue) error
}
