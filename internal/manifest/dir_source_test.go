package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/RenaudDev/PaperPause/internal/manifest"
)

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDirSource_Recent(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "cats.json", `{"collection":"cats","created":["tabby","siamese"]}`)
	write(t, dir, "dogs.json", `{"collection":"dogs","created":[]}`)
	write(t, dir, "broken.json", `{"collection": nope`)
	write(t, dir, "anonymous.json", `{"created":["x"]}`)
	write(t, dir, "readme.txt", "not a manifest")

	got, err := manifest.NewDirSource(dir, zap.NewNop()).Recent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Corrupt and collection-less manifests are skipped; the empty dogs
	// manifest is still returned (the classifier filters it out later).
	if len(got) != 2 {
		t.Fatalf("expected 2 manifests, got %d: %+v", len(got), got)
	}
	byName := map[string]int{}
	for _, m := range got {
		byName[m.Collection] = m.CreatedCount()
	}
	if byName["cats"] != 2 || byName["dogs"] != 0 {
		t.Fatalf("unexpected manifests: %v", byName)
	}
}

func TestDirSource_MissingDirectory(t *testing.T) {
	got, err := manifest.NewDirSource(filepath.Join(t.TempDir(), "absent"), zap.NewNop()).Recent()
	if err != nil {
		t.Fatalf("missing directory must not error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no manifests, got %v", got)
	}
}
