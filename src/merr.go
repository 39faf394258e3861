package minase

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrKind classifies a failure the way the controller's status line and
// task log need to react to it: some are worth retrying, some mean a
// dependency is missing, some are programmer mistakes.
type ErrKind int

const (
	// KindTransient is a one-off, retryable failure: permission denied on a
	// single file, a busy device, a timed-out external command.
	KindTransient ErrKind = iota
	// KindMissingDependency means an external helper Minase shells out to
	// (archivemount, an opener, $EDITOR, a sixel-capable viewer) is not on
	// PATH.
	KindMissingDependency
	// KindEnvironment means the runtime environment itself is unusable:
	// no TERM, stdout is not a terminal when one is required, etc.
	KindEnvironment
	// KindDecode means input bytes could not be interpreted: a corrupt
	// archive header, invalid UTF-8 in a text preview, a malformed config
	// file.
	KindDecode
	// KindProgrammer means an invariant Minase itself is supposed to
	// uphold was violated (e.g. PreviewEngine's at-most-one-job rule).
	KindProgrammer
)

func (k ErrKind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindMissingDependency:
		return "missing-dependency"
	case KindEnvironment:
		return "environment"
	case KindDecode:
		return "decode"
	case KindProgrammer:
		return "programmer"
	default:
		return "unknown"
	}
}

// Error is Minase's typed error envelope. Every failure that crosses a
// thread boundary (preview thread to UI, task worker to UI) is wrapped in
// one of these so the receiving side can decide whether to show a status
// message, log a task-queue entry, or abort.
type Error struct {
	Kind ErrKind
	Op   string
	err  error
}

func (e *Error) Error() string {
	if e.err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.err)
}

func (e *Error) Unwrap() error { return e.err }

// Wrap annotates err with op and kind, attaching a stack trace via
// pkg/errors at the boundary where the failure is first reported.
func Wrap(kind ErrKind, op string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, err: pkgerrors.WithStack(err)}
}

// New builds a Error from a plain message, with no wrapped cause.
func New(kind ErrKind, op string, message string) *Error {
	return &Error{Kind: kind, Op: op, err: pkgerrors.New(message)}
}

// IsKind reports whether err is (or wraps) a *Error of the given kind.
func IsKind(err error, kind ErrKind) bool {
	var me *Error
	if errors.As(err, &me) {
		return me.Kind == kind
	}
	return false
}
