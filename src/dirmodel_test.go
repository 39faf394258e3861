package minase

import (
	"os"
	"path/filepath"
	"testing"
)

func makeTestTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "b"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestDirectoryModelSortNameAsc(t *testing.T) {
	dir := makeTestTree(t)
	m := NewDirectoryModel()
	if err := m.Open(dir); err != nil {
		t.Fatal(err)
	}
	m.SetSort(SortByName, OrderAsc)
	if m.Count() != 3 {
		t.Fatalf("expected 3 entries, got %d", m.Count())
	}
	got := []string{m.At(0).DisplayName(), m.At(1).DisplayName(), m.At(2).DisplayName()}
	want := []string{"b/", "a", "c.txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestDirectoryModelSortSizeDescKeepsNameTiebreak(t *testing.T) {
	dir := makeTestTree(t)
	m := NewDirectoryModel()
	if err := m.Open(dir); err != nil {
		t.Fatal(err)
	}
	m.SetSort(SortBySize, OrderDesc)
	if m.At(0).Name != "b" {
		t.Errorf("expected directory first, got %s", m.At(0).Name)
	}
	if m.At(1).Name != "a" || m.At(2).Name != "c.txt" {
		t.Errorf("expected equal-size files in ascending name order, got %s, %s", m.At(1).Name, m.At(2).Name)
	}
}

func TestDirectoryModelHiddenFiles(t *testing.T) {
	dir := makeTestTree(t)
	if err := os.WriteFile(filepath.Join(dir, ".secret"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := NewDirectoryModel()
	if err := m.Open(dir); err != nil {
		t.Fatal(err)
	}
	if m.Count() != 3 {
		t.Errorf("expected hidden file excluded by default, got %d entries", m.Count())
	}
	m.SetHidden(true)
	if m.Count() != 4 {
		t.Errorf("expected hidden file included, got %d entries", m.Count())
	}
}

func TestFilterSubstringRequiresEveryToken(t *testing.T) {
	dir := makeTestTree(t)
	m := NewDirectoryModel()
	if err := m.Open(dir); err != nil {
		t.Fatal(err)
	}
	m.SetFilter("tx t", FilterSubstring)
	if m.Count() != 1 || m.At(0).Name != "c.txt" {
		t.Errorf("expected only c.txt to match, got count=%d", m.Count())
	}
}

func TestFilterRegexpInvalidDegradesToAlwaysMatch(t *testing.T) {
	dir := makeTestTree(t)
	m := NewDirectoryModel()
	if err := m.Open(dir); err != nil {
		t.Fatal(err)
	}
	m.SetFilter("(unterminated", FilterRegexp)
	if m.Count() != 3 {
		t.Errorf("expected invalid regexp to always-match, got count=%d", m.Count())
	}
}
