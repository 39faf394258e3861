package minase

import (
	"strings"
	"testing"
)

func TestBuildFileOpCommandCopyFlags(t *testing.T) {
	cmd, err := buildFileOpCommand(OpCopy, []string{"/a", "/b"}, "/dst", false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(cmd.Path, "cp") {
		t.Fatalf("expected cp, got %s", cmd.Path)
	}
	if cmd.Args[1] != "-bfvrp" {
		t.Fatalf("expected -bfvrp flag first, got %v", cmd.Args)
	}
	if cmd.Args[len(cmd.Args)-1] != "/dst" {
		t.Fatalf("expected dst last, got %v", cmd.Args)
	}
}

func TestBuildFileOpCommandMoveFlags(t *testing.T) {
	cmd, err := buildFileOpCommand(OpMove, []string{"/a"}, "/dst", false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(cmd.Path, "mv") {
		t.Fatalf("expected mv, got %s", cmd.Path)
	}
	if cmd.Args[1] != "-bfv" {
		t.Fatalf("expected -bfv flag, got %v", cmd.Args)
	}
}

func TestBuildFileOpCommandDeleteWithoutTrashUsesRm(t *testing.T) {
	cmd, err := buildFileOpCommand(OpDelete, []string{"/a"}, "", false)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(cmd.Path, "rm") {
		t.Fatalf("expected rm, got %s", cmd.Path)
	}
	if cmd.Args[1] != "-vrf" {
		t.Fatalf("expected -vrf flag, got %v", cmd.Args)
	}
}
