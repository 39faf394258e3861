package minase

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPaneStateSetPathResetsCursorAndFilter(t *testing.T) {
	dir := makeTestTree(t)
	p := NewPaneState()
	if err := p.SetPath(dir); err != nil {
		t.Fatal(err)
	}
	p.Next()
	p.Model().SetFilter("a", FilterSubstring)
	if err := p.SetPath(dir); err != nil {
		t.Fatal(err)
	}
	if p.Cursor() != 0 {
		t.Errorf("expected cursor reset to 0, got %d", p.Cursor())
	}
	text, _ := p.Model().FilterSetting()
	if text != "" {
		t.Errorf("expected filter cleared, got %q", text)
	}
}

func TestPaneStateSelectionPersistsAcrossSetPathAndReload(t *testing.T) {
	selection.Clear()
	dir := makeTestTree(t)
	p := NewPaneState()
	if err := p.SetPath(dir); err != nil {
		t.Fatal(err)
	}
	p.Select() // selects whatever sorts first
	if SelectionCount() != 1 {
		t.Fatalf("expected 1 selected, got %d", SelectionCount())
	}
	other := t.TempDir()
	if err := p.SetPath(other); err != nil {
		t.Fatal(err)
	}
	if SelectionCount() != 1 {
		t.Errorf("expected selection to persist across SetPath, got %d", SelectionCount())
	}
	if err := p.SetPath(dir); err != nil {
		t.Fatal(err)
	}
	if err := p.Reload(); err != nil {
		t.Fatal(err)
	}
	if SelectionCount() != 1 {
		t.Errorf("expected selection to persist across Reload, got %d", SelectionCount())
	}
}

func TestPaneStateUpDirRestoresCursorOnChild(t *testing.T) {
	root := t.TempDir()
	mid := filepath.Join(root, "mid")
	leaf := filepath.Join(mid, "leaf")
	if err := os.MkdirAll(leaf, 0o755); err != nil {
		t.Fatal(err)
	}
	p := NewPaneState()
	if err := p.SetPath(leaf); err != nil {
		t.Fatal(err)
	}
	if err := p.UpDir(); err != nil {
		t.Fatal(err)
	}
	if p.Path() != mid {
		t.Errorf("expected %s, got %s", mid, p.Path())
	}
	if idx := p.Model().IndexOf("leaf"); idx != p.Cursor() {
		t.Errorf("expected cursor restored on leaf, index=%d cursor=%d", idx, p.Cursor())
	}
}

func TestTruncateNamePreservesExtension(t *testing.T) {
	got := TruncateName("verylongfilename.txt", 10)
	if got == "verylongfilename.txt" {
		t.Errorf("expected truncation to occur")
	}
	if len([]rune(got)) > 10 {
		t.Errorf("expected result within width 10, got %q (%d runes)", got, len([]rune(got)))
	}
	if filepathExt(got) != ".txt" {
		t.Errorf("expected extension preserved, got %q", got)
	}
}

func filepathExt(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i:]
		}
	}
	return ""
}
