package minase

import (
	"context"

	"github.com/sat1226/minase/src/procexec"
)

// FileOpKind distinguishes the three external file operations a Task may
// carry (spec.md 4.4).
type FileOpKind int

const (
	OpCopy FileOpKind = iota
	OpMove
	OpDelete
)

// buildFileOpCommand returns the external command for kind, grounded on
// spec.md 4.4's exact flag choices: `cp -bfvrp` (backup, force, verbose,
// recursive, preserve), `mv -bfv`, `rm -vrf` (or a trash helper when
// useTrash is set -- `opencoff-go-fio`'s clone.go informs the "preserve
// permission bits" expectation these flags must uphold, reimplemented here
// as a spawned command rather than an in-process copy).
func buildFileOpCommand(kind FileOpKind, srcs []string, dst string, useTrash bool) (*procexec.Cmd, error) {
	switch kind {
	case OpCopy:
		args := append([]string{"-bfvrp"}, srcs...)
		args = append(args, dst)
		return procexec.Command("cp", args...)
	case OpMove:
		args := append([]string{"-bfv"}, srcs...)
		args = append(args, dst)
		return procexec.Command("mv", args...)
	case OpDelete:
		if useTrash {
			if cmd, err := procexec.Command("trash-put", srcs...); err == nil {
				return cmd, nil
			}
			if cmd, err := procexec.Command("gio", append([]string{"trash"}, srcs...)...); err == nil {
				return cmd, nil
			}
		}
		args := append([]string{"-vrf"}, srcs...)
		return procexec.Command("rm", args...)
	default:
		panic("buildFileOpCommand: unknown kind")
	}
}

// runFileOp executes the command for a file-op task, streaming each combined
// stdout/stderr line into onLine (the task worker appends it to the bounded
// LogDeque). Children are never killed mid-flight (spec.md 4.4: "copy/move
// must not be interrupted"), so ctx here is context.Background, not tied to
// a cancellable queue-shutdown signal.
func runFileOp(kind FileOpKind, srcs []string, dst string, useTrash bool, onLine func(string)) error {
	cmd, err := buildFileOpCommand(kind, srcs, dst, useTrash)
	if err != nil {
		return err
	}
	return cmd.Lines(context.Background(), onLine)
}
