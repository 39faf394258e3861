package minase

import "testing"

func TestClipboardBufferMovePasteClearsBuffer(t *testing.T) {
	c := NewClipboardBuffer()
	c.SetMove([]string{"/a", "/b"})

	op, paths := c.Consume()
	if op != ClipMove || len(paths) != 2 {
		t.Fatalf("unexpected consume: %v %v", op, paths)
	}

	op, paths = c.Consume()
	if op != ClipNone || paths != nil {
		t.Fatalf("expected cleared buffer, got %v %v", op, paths)
	}
}

func TestClipboardBufferCopyPastePreservesBuffer(t *testing.T) {
	c := NewClipboardBuffer()
	c.SetCopy([]string{"/a"})

	op, paths := c.Consume()
	if op != ClipCopy || len(paths) != 1 {
		t.Fatalf("unexpected consume: %v %v", op, paths)
	}

	op, paths = c.Consume()
	if op != ClipCopy || len(paths) != 1 {
		t.Fatalf("expected preserved buffer, got %v %v", op, paths)
	}
}
