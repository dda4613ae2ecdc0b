package catalog

// Catalog exposes the content catalog to the planner's full-audit mode.
// The filesystem implementation is in fs_catalog.go; tests use MockCatalog.
type Catalog interface {
	// Collections lists every known collection identifier.
	Collections() ([]string, error)

	// PublishedCount returns the number of non-draft entries currently in
	// the collection.
	PublishedCount(collection string) (int, error)
}
