package minase

import (
	"os"
	"strings"
)

// PickerMode selects how Enter behaves in picker mode (spec.md 4.6, 6):
// write the selection (or focused entry) to an output file and exit.
type PickerMode int

const (
	PickerNone PickerMode = iota
	PickerFile
	PickerFiles
	PickerDir
)

// PickerState carries the active picker mode and its output path, decoded
// from the CLI flags.
type PickerState struct {
	Mode   PickerMode
	Output string
}

// Resolve computes the paths picker mode would write for the given pane
// (spec.md 8 "Picker roundtrip": FILES mode writes the full selection set,
// FILE/DIR mode writes exactly the focused entry).
func (p PickerState) Resolve(pane *PaneState) []string {
	switch p.Mode {
	case PickerFiles:
		return SelectedPaths()
	case PickerFile, PickerDir:
		if path, ok := pane.focusedPath(); ok {
			return []string{path}
		}
		return nil
	default:
		return nil
	}
}

// Commit writes paths newline-separated to p.Output and returns any write
// error (Mode == PickerNone is a no-op that returns nil, letting the
// controller's normal Enter handling run instead).
func (p PickerState) Commit(paths []string) error {
	if p.Mode == PickerNone {
		return nil
	}
	f, err := os.Create(p.Output)
	if err != nil {
		return Wrap(KindEnvironment, "PickerState.Commit", err)
	}
	defer f.Close()
	_, err = f.WriteString(strings.Join(paths, "\n") + "\n")
	return err
}
