package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/RenaudDev/PaperPause/internal/catalog"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFSCatalog_Collections(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"cats", "dogs", ".obsidian"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, filepath.Join(root, "_index.md"), "section index")

	got, err := catalog.NewFSCatalog(root).Collections()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "cats" || got[1] != "dogs" {
		t.Fatalf("expected [cats dogs], got %v", got)
	}
}

func TestFSCatalog_PublishedCount(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "cats")

	writeFile(t, filepath.Join(dir, "tabby.md"), "---\ntitle: Tabby\ndraft: false\n---\nbody")
	writeFile(t, filepath.Join(dir, "siamese.md"), "---\ntitle: Siamese\ndraft: true\n---\nbody")
	writeFile(t, filepath.Join(dir, "plain.md"), "no frontmatter at all")
	writeFile(t, filepath.Join(dir, "_index.md"), "---\ntitle: Cats\n---")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not content")

	count, err := catalog.NewFSCatalog(root).PublishedCount("cats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// tabby (published) + plain (no frontmatter counts as published);
	// the draft, the index file and the txt file are excluded.
	if count != 2 {
		t.Fatalf("expected 2 published entries, got %d", count)
	}
}

func TestFSCatalog_MalformedFrontmatterCountsAsPublished(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "cats", "odd.md"), "---\n: : not yaml : :\n---\nbody")

	count, err := catalog.NewFSCatalog(root).PublishedCount("cats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1, got %d", count)
	}
}

func TestFSCatalog_MissingCollection(t *testing.T) {
	if _, err := catalog.NewFSCatalog(t.TempDir()).PublishedCount("ghosts"); err == nil {
		t.Fatal("expected error for unknown collection")
	}
}
