package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/RenaudDev/PaperPause/internal/domain"
	"github.com/RenaudDev/PaperPause/internal/store"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := store.NewFileStore(filepath.Join(t.TempDir(), "queue.json"))

	q, err := s.Load()
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if q != nil {
		t.Fatalf("expected nil queue, got %+v", q)
	}
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	// Path two levels down: Save must create parent directories.
	path := filepath.Join(t.TempDir(), "config", "distribution-queue.json")
	s := store.NewFileStore(path)

	at := time.Date(2026, 3, 14, 9, 15, 0, 0, time.UTC)
	q := &domain.DistributionQueue{
		GeneratedAt: time.Date(2026, 3, 14, 0, 0, 1, 0, time.UTC),
		Queue: []domain.QueueItem{
			{
				Collection:  "cats",
				BoardName:   "Cats Coloring Pages",
				Mode:        domain.ModeGrowth,
				Priority:    10,
				FeedURL:     "https://paperpause.app/animals/cats/index.xml",
				ScheduledAt: &at,
			},
			{Collection: "dogs", Mode: domain.ModeMaintenance, Priority: 5},
		},
	}

	if err := s.Save(q); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.GeneratedAt.Equal(q.GeneratedAt) || len(got.Queue) != 2 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Queue[0].ScheduledAt == nil || !got.Queue[0].ScheduledAt.Equal(at) {
		t.Fatalf("scheduled_at lost: %v", got.Queue[0].ScheduledAt)
	}
	if got.Queue[1].ScheduledAt != nil {
		t.Fatal("absent scheduled_at must stay absent")
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.json")
	s := store.NewFileStore(path)

	if err := s.Save(&domain.DistributionQueue{Queue: []domain.QueueItem{{Collection: "old"}}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(&domain.DistributionQueue{Queue: []domain.QueueItem{{Collection: "new"}}}); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Queue) != 1 || got.Queue[0].Collection != "new" {
		t.Fatalf("expected full replacement, got %+v", got.Queue)
	}
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := store.NewFileStore(path).Load()
	if !errors.Is(err, domain.ErrQueueCorrupt) {
		t.Fatalf("expected ErrQueueCorrupt, got %v", err)
	}
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(filepath.Join(dir, "queue.json"))
	if err := s.Save(&domain.DistributionQueue{}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "queue.json" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}
