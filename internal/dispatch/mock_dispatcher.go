package dispatch

import (
	"context"

	"github.com/RenaudDev/PaperPause/internal/domain"
)

// MockDispatcher records dispatched collections and fails the ones listed
// in Fail. Used by conductor tests.
type MockDispatcher struct {
	Fail       map[string]error
	Dispatched []string
}

func NewMockDispatcher() *MockDispatcher {
	return &MockDispatcher{Fail: map[string]error{}}
}

func (m *MockDispatcher) Dispatch(_ context.Context, item domain.QueueItem) error {
	if err, ok := m.Fail[item.Collection]; ok {
		return err
	}
	m.Dispatched = append(m.Dispatched, item.Collection)
	return nil
}

var _ Dispatcher = (*MockDispatcher)(nil)
