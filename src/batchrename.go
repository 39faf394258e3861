package minase

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/sat1226/minase/src/procexec"
)

// RenamePlan is one old-name -> new-name pair produced by diffing a batch
// rename buffer against the names it was seeded from.
type RenamePlan struct {
	Dir     string
	OldName string
	NewName string
}

// BuildBatchRenamePlan writes names (one per line) to a temp file, spawns
// editor on it, and diffs the result line-for-line against names to build a
// rename plan, implementing the Ctrl-R diff step original_source/main.cpp
// performs that spec.md 4.6 only names ("batch-rename (external)") --
// see SPEC_FULL.md's supplemented-features section. Lines are matched
// positionally: reordering is not treated as a rename, only the text of a
// line changing is.
func BuildBatchRenamePlan(editor string, dir string, names []string) ([]RenamePlan, error) {
	if editor == "" {
		return nil, New(KindEnvironment, "BuildBatchRenamePlan", "EDITOR is not set")
	}
	tmp, err := os.CreateTemp("", "minase-rename-*")
	if err != nil {
		return nil, Wrap(KindEnvironment, "BuildBatchRenamePlan", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	w := bufio.NewWriter(tmp)
	for _, n := range names {
		w.WriteString(n)
		w.WriteString("\n")
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return nil, Wrap(KindEnvironment, "BuildBatchRenamePlan", err)
	}
	tmp.Close()

	fields, err := shellwordsSplit(editor)
	if err != nil {
		return nil, Wrap(KindDecode, "BuildBatchRenamePlan", err)
	}
	cmd, err := procexec.Command(fields[0], append(fields[1:], tmpPath)...)
	if err != nil {
		return nil, err
	}
	if _, err := cmd.Output(context.Background()); err != nil {
		return nil, Wrap(KindTransient, "BuildBatchRenamePlan", err)
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, Wrap(KindEnvironment, "BuildBatchRenamePlan", err)
	}
	newNames := strings.Split(strings.TrimRight(string(edited), "\n"), "\n")

	var plan []RenamePlan
	for i, old := range names {
		if i >= len(newNames) {
			break
		}
		nn := strings.TrimSpace(newNames[i])
		if nn == "" || nn == old {
			continue
		}
		plan = append(plan, RenamePlan{Dir: dir, OldName: old, NewName: nn})
	}
	return plan, nil
}
