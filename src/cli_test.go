package minase

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseArgsChooseFileFlags(t *testing.T) {
	args := ParseArgs([]string{"--choosefile=/tmp/out"})
	if args.Picker.Mode != PickerFile || args.Picker.Output != "/tmp/out" {
		t.Fatalf("unexpected picker: %+v", args.Picker)
	}

	args = ParseArgs([]string{"--choosefiles=/tmp/out"})
	if args.Picker.Mode != PickerFiles || args.Picker.Output != "/tmp/out" {
		t.Fatalf("unexpected picker: %+v", args.Picker)
	}

	args = ParseArgs([]string{"--choosedir=/tmp/out"})
	if args.Picker.Mode != PickerDir || args.Picker.Output != "/tmp/out" {
		t.Fatalf("unexpected picker: %+v", args.Picker)
	}
}

func TestParseArgsPathFallsBackToCwdWhenMissing(t *testing.T) {
	args := ParseArgs(nil)
	cwd, _ := os.Getwd()
	if args.Path != cwd {
		t.Fatalf("expected cwd fallback %q, got %q", cwd, args.Path)
	}
}

func TestParseArgsPathFallsBackWhenNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notadir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	args := ParseArgs([]string{file})
	cwd, _ := os.Getwd()
	if args.Path != cwd {
		t.Fatalf("expected cwd fallback %q, got %q", cwd, args.Path)
	}
}

func TestParseArgsPathUsesExplicitDirectory(t *testing.T) {
	dir := t.TempDir()
	args := ParseArgs([]string{dir})
	if args.Path != dir {
		t.Fatalf("expected %q, got %q", dir, args.Path)
	}
}
