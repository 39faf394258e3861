package minase

import (
	"fmt"

	"github.com/sat1226/minase/src/util"
)

// renderDirectoryPreview lists target's contents as a bounded set of names,
// each prefixed with its per-kind glyph. The lines carry no per-kind colour:
// drawPreview draws every directory-preview line in the preview colour.
func renderDirectoryPreview(job *PreviewJob, target FileEntry) PreviewPayload {
	m := NewDirectoryModel()
	if err := m.Open(target.Path()); err != nil {
		return PreviewPayload{Kind: PayloadStub, Label: "(unreadable directory)"}
	}
	const bound = 2000
	n := util.Min(m.Count(), bound)
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if job.Cancelled() {
			return PreviewPayload{Kind: PayloadStub, Label: "(cancelled)"}
		}
		e := m.At(i)
		lines = append(lines, e.Glyph()+" "+e.DisplayName())
	}
	if m.Count() == 0 {
		lines = append(lines, "empty")
	}
	return PreviewPayload{
		Kind:  PayloadDirectory,
		Lines: lines,
		Label: fmt.Sprintf("%d entries", m.Count()),
	}
}
