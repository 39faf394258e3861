package procexec

import (
	"context"
	"strings"
	"testing"
)

func TestLinesStreamsOutput(t *testing.T) {
	cmd, err := Command("printf", "a\\nb\\nc\\n")
	if err != nil {
		t.Skipf("printf not on PATH: %v", err)
	}
	var got []string
	if err := cmd.Lines(context.Background(), func(line string) {
		got = append(got, line)
	}); err != nil {
		t.Fatalf("Lines: %v", err)
	}
	if strings.Join(got, ",") != "a,b,c" {
		t.Errorf("expected a,b,c, got %v", got)
	}
}

func TestLookPathMissing(t *testing.T) {
	if _, err := LookPath("definitely-not-a-real-binary-xyz"); err == nil {
		t.Error("expected error for missing binary")
	} else if !strings.Contains(err.Error(), "install") {
		t.Errorf("expected install hint, got %v", err)
	}
}
