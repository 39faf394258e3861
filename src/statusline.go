package minase

import (
	"sync"
	"time"
)

// StatusLine is the shared two-second info-message mechanism spec.md 7
// describes for user-visible failures, reused (per original_source/
// TermboxUtil.hpp) for success confirmations too (rename done, bookmark
// added) -- see SPEC_FULL.md's supplemented-features section.
type StatusLine struct {
	mu      sync.Mutex
	message string
	isError bool
	expires time.Time
}

func NewStatusLine() *StatusLine { return &StatusLine{} }

// Info shows message for two seconds.
func (s *StatusLine) Info(message string) { s.set(message, false) }

// Error shows message for two seconds, flagged for error styling.
func (s *StatusLine) Error(message string) { s.set(message, true) }

func (s *StatusLine) set(message string, isErr bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
	s.isError = isErr
	s.expires = time.Now().Add(2 * time.Second)
}

// Current returns the active message and whether it is an error, or ""/false
// once it has expired.
func (s *StatusLine) Current() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.message == "" || time.Now().After(s.expires) {
		return "", false
	}
	return s.message, s.isError
}
