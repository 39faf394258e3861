package minase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeNanorc(t *testing.T, dir string, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "test.nanorc"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSyntaxHighlighterNormalRule(t *testing.T) {
	dir := t.TempDir()
	writeNanorc(t, dir, `
syntax "go" "\.go$"
color red "TODO"
`)
	h := NewSyntaxHighlighter(dir)
	rule := h.RuleFor("main.go")
	if rule == nil {
		t.Fatal("expected main.go to match the go syntax")
	}
	out := h.Apply(rule, []string{"// TODO: fix this"}, nil)
	if !strings.Contains(out[0], "\x1b[31m") {
		t.Errorf("expected red escape in output, got %q", out[0])
	}
	if !strings.Contains(out[0], ansiReset) {
		t.Errorf("expected reset escape in output, got %q", out[0])
	}
}

func TestSyntaxHighlighterSurroundRule(t *testing.T) {
	dir := t.TempDir()
	writeNanorc(t, dir, `
syntax "quotes" "\.txt$"
color green start="\"" end="\""
`)
	h := NewSyntaxHighlighter(dir)
	rule := h.RuleFor("notes.txt")
	out := h.Apply(rule, []string{`say "hello" now`}, nil)
	if !strings.Contains(out[0], "\x1b[32m") {
		t.Errorf("expected green escape, got %q", out[0])
	}
}

func TestSyntaxHighlighterNoMatchIsPlainText(t *testing.T) {
	h := NewSyntaxHighlighter(t.TempDir())
	rule := h.RuleFor("unknown.xyz")
	if rule.displayName() != "Plain Text" {
		t.Errorf("expected Plain Text, got %s", rule.displayName())
	}
	out := h.Apply(rule, []string{"hello"}, nil)
	if out[0] != "hello" {
		t.Errorf("expected unmodified line, got %q", out[0])
	}
}

func TestSyntaxHighlighterMissingDirDegradesGracefully(t *testing.T) {
	h := NewSyntaxHighlighter(filepath.Join(t.TempDir(), "does-not-exist"))
	if len(h.rules) != 0 {
		t.Errorf("expected no rules for a missing directory")
	}
}
