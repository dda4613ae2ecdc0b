package catalog

// MockCatalog serves canned counts for tests.
type MockCatalog struct {
	Counts map[string]int
	Err    error
}

func (m *MockCatalog) Collections() ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	names := make([]string, 0, len(m.Counts))
	for name := range m.Counts {
		names = append(names, name)
	}
	return names, nil
}

func (m *MockCatalog) PublishedCount(collection string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Counts[collection], nil
}

var _ Catalog = (*MockCatalog)(nil)
