package minase

import "testing"

func TestHistoryAppendBounded(t *testing.T) {
	maxHistory := 50
	h := NewHistory(maxHistory)
	for i := 0; i < maxHistory+10; i++ {
		h.Append("foobar")
	}
	if len(h.lines) != maxHistory+1 {
		t.Errorf("expected %d lines, got %d", maxHistory+1, len(h.lines))
	}
	for i := 0; i < maxHistory; i++ {
		if h.lines[i] != "foobar" {
			t.Errorf("expected foobar, got %s", h.lines[i])
		}
	}
}

func TestHistoryEmptyLinesIgnored(t *testing.T) {
	h := NewHistory(50)
	h.Append("barfoo")
	h.Append("")
	h.Append("foobarbaz")
	if got := len(h.lines); got != 3 {
		t.Errorf("expected 3 lines, got %d", got)
	}
	if h.lines[0] != "barfoo" || h.lines[1] != "foobarbaz" || h.lines[2] != "" {
		t.Errorf("unexpected history contents: %v", h.lines)
	}
}

func TestHistoryNavigation(t *testing.T) {
	h := NewHistory(50)
	h.Append("first")
	h.Append("second")
	h.Append("third")

	if got := h.Current(); got != "" {
		t.Errorf("expected cursor to start on blank entry, got %q", got)
	}
	if got := h.Previous(); got != "third" {
		t.Errorf("expected third, got %q", got)
	}
	if got := h.Previous(); got != "second" {
		t.Errorf("expected second, got %q", got)
	}
	h.Override("second-edited")
	if got := h.Current(); got != "second-edited" {
		t.Errorf("expected override to stick, got %q", got)
	}
	if got := h.Next(); got != "third" {
		t.Errorf("expected third after moving forward, got %q", got)
	}
	h.Reset()
	if got := h.Current(); got != "" {
		t.Errorf("expected reset to return to blank entry, got %q", got)
	}
}
