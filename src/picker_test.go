package minase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPickerStateResolveFileMode(t *testing.T) {
	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "a.txt"))

	pane := NewPaneState()
	if err := pane.SetPath(dir); err != nil {
		t.Fatal(err)
	}

	p := PickerState{Mode: PickerFile}
	got := p.Resolve(pane)
	if len(got) != 1 || !strings.HasSuffix(got[0], "a.txt") {
		t.Fatalf("unexpected resolve: %v", got)
	}
}

func TestPickerStateResolveNoneMode(t *testing.T) {
	pane := NewPaneState()
	p := PickerState{Mode: PickerNone}
	if got := p.Resolve(pane); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestPickerStateCommitWritesNewlineJoinedPaths(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	p := PickerState{Mode: PickerFiles, Output: out}

	if err := p.Commit([]string{"/a", "/b"}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "/a\n/b\n" {
		t.Fatalf("unexpected contents: %q", data)
	}
}

func TestPickerStateCommitNoneModeIsNoop(t *testing.T) {
	p := PickerState{Mode: PickerNone}
	if err := p.Commit([]string{"/a"}); err != nil {
		t.Fatal(err)
	}
}

func mustWriteFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}
