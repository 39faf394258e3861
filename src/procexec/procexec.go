// Package procexec spawns external helper processes and streams their
// combined stdout+stderr back line by line, with process-group kill support
// for workers that need to cancel a stuck child (the sixel converter, an
// archive lister) rather than merely wait for os/exec.Cmd.Wait.
package procexec

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// Cmd is one external command invocation. Its zero value is not usable;
// build one with Command.
type Cmd struct {
	Path string
	Args []string
	Dir  string
	Env  []string

	cmd    *exec.Cmd
	mu     sync.Mutex
	pid    int
	killed bool
}

// Command resolves name on PATH (via LookPath) and returns a Cmd ready to
// run with Lines or Output. It does not run anything yet.
func Command(name string, args ...string) (*Cmd, error) {
	path, err := LookPath(name)
	if err != nil {
		return nil, err
	}
	return &Cmd{Path: path, Args: append([]string{path}, args...)}, nil
}

// LookPath resolves name to an absolute path on $PATH, wrapping the result
// in a MissingDependencyError when not found so callers can show the
// "install 'X'" status message spec.md 7 calls for.
func LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &MissingDependencyError{Name: name, cause: err}
	}
	return path, nil
}

// MissingDependencyError reports that an external helper is not on PATH.
type MissingDependencyError struct {
	Name  string
	cause error
}

func (e *MissingDependencyError) Error() string {
	return "install '" + e.Name + "'"
}

func (e *MissingDependencyError) Unwrap() error { return e.cause }

// Lines starts the command with stdout and stderr merged into one pipe and
// invokes onLine for each line read from it, in arrival order, until the
// child exits or ctx is cancelled. It returns the child's exit error, if
// any. onLine must not block for long: the task worker and preview thread
// both poll their own cancellation flags between calls.
func (c *Cmd) Lines(ctx context.Context, onLine func(line string)) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args[1:]...)
	cmd.Dir = c.Dir
	if c.Env != nil {
		cmd.Env = c.Env
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return c.Kill()
	}
	pr, pw, err := os.Pipe()
	if err != nil {
		return err
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		return err
	}
	c.mu.Lock()
	c.cmd = cmd
	c.pid = cmd.Process.Pid
	c.mu.Unlock()

	pw.Close()
	scanner := bufio.NewScanner(pr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		onLine(scanner.Text())
	}
	pr.Close()
	return cmd.Wait()
}

// Output runs the command to completion and returns its combined output as
// a single byte slice; used by the one-shot child runs (archive lister,
// sixel converter, archive mount/extract helpers) that don't need
// line-by-line streaming.
func (c *Cmd) Output(ctx context.Context) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args[1:]...)
	cmd.Dir = c.Dir
	if c.Env != nil {
		cmd.Env = c.Env
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return c.Kill()
	}
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.cmd = cmd
	c.pid = cmd.Process.Pid
	c.mu.Unlock()
	if err := cmd.Wait(); err != nil {
		return buf.Bytes(), err
	}
	return buf.Bytes(), nil
}

// Pid returns the spawned child's process id, or 0 if it hasn't started.
func (c *Cmd) Pid() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pid
}

// Kill sends SIGKILL to the whole process group rooted at the child, so a
// sixel converter or archive extractor that forked helpers of its own is
// torn down completely (spec.md 5 cancellation: "a SIGKILL to the child on
// stuck external converters").
func (c *Cmd) Kill() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pid == 0 || c.killed {
		return nil
	}
	c.killed = true
	if err := unix.Kill(-c.pid, unix.SIGKILL); err != nil {
		return unix.Kill(c.pid, unix.SIGKILL)
	}
	return nil
}
