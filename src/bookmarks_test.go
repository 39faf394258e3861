package minase

import (
	"path/filepath"
	"testing"
)

func TestLoadBookmarksMissingFileIsNotError(t *testing.T) {
	b, err := LoadBookmarks(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Entries()) != 0 {
		t.Fatalf("expected no entries, got %v", b.Entries())
	}
}

func TestBookmarksAddPersistsAndDedupes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks")
	b, err := LoadBookmarks(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := b.Add("/a"); err != nil {
		t.Fatal(err)
	}
	if err := b.Add("/a"); err != nil {
		t.Fatal(err)
	}
	if len(b.Entries()) != 1 {
		t.Fatalf("expected dedup, got %v", b.Entries())
	}

	reloaded, err := LoadBookmarks(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded.Entries()) != 1 || reloaded.Entries()[0] != "/a" {
		t.Fatalf("expected persisted entry, got %v", reloaded.Entries())
	}
}

func TestBookmarksRemoveAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks")
	b, _ := LoadBookmarks(path)
	b.Add("/a")
	b.Add("/b")

	if err := b.RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	if len(b.Entries()) != 1 || b.Entries()[0] != "/b" {
		t.Fatalf("unexpected entries: %v", b.Entries())
	}

	if err := b.RemoveAt(5); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestBookmarksAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks")
	b, _ := LoadBookmarks(path)
	b.Add("/a")

	if got := b.At(0); got != "/a" {
		t.Fatalf("expected /a, got %q", got)
	}
	if got := b.At(99); got != "" {
		t.Fatalf("expected empty for out of range, got %q", got)
	}
}
