package minase

import "github.com/atotto/clipboard"

// ClipboardOp is the pending paste action a ClipboardBuffer carries.
type ClipboardOp int

const (
	ClipNone ClipboardOp = iota
	ClipCopy
	ClipMove
)

// ClipboardBuffer holds the pending copy/move source set (spec.md 3 "C7"):
// emptied after a MOVE paste, preserved after a COPY paste so the same set
// can be pasted repeatedly. Also mirrored to the OS clipboard so the
// selection is visible/pasteable outside Minase.
type ClipboardBuffer struct {
	Op    ClipboardOp
	Paths []string
}

func NewClipboardBuffer() *ClipboardBuffer {
	return &ClipboardBuffer{Op: ClipNone}
}

// SetCopy snapshots paths for a copy paste and mirrors them to the OS
// clipboard, one path per line.
func (c *ClipboardBuffer) SetCopy(paths []string) {
	c.Op = ClipCopy
	c.Paths = append([]string(nil), paths...)
	c.mirror()
}

// SetMove snapshots paths for a move paste and mirrors them to the OS
// clipboard.
func (c *ClipboardBuffer) SetMove(paths []string) {
	c.Op = ClipMove
	c.Paths = append([]string(nil), paths...)
	c.mirror()
}

func (c *ClipboardBuffer) mirror() {
	joined := ""
	for i, p := range c.Paths {
		if i > 0 {
			joined += "\n"
		}
		joined += p
	}
	// Best-effort: a headless session (no X11/Wayland clipboard provider)
	// must not break the in-process paste, so the error is ignored.
	_ = clipboard.WriteAll(joined)
}

// Consume returns the buffered op and paths; a MOVE clears the buffer
// afterward, a COPY leaves it intact for repeated pastes (spec.md 3).
func (c *ClipboardBuffer) Consume() (ClipboardOp, []string) {
	op, paths := c.Op, c.Paths
	if op == ClipMove {
		c.Op = ClipNone
		c.Paths = nil
	}
	return op, paths
}
