package minase

import (
	"github.com/fsnotify/fsnotify"
)

// DirWatcher is a best-effort directory-change watcher supplementing
// spec.md 4.4's reload-queue mechanism (SPEC_FULL.md's DOMAIN STACK:
// "best-effort reload" carve-out named in spec.md 1's Non-goals). Events
// are funnelled into the same TaskQueue reload queue the task worker's own
// RELOAD tasks use, so the Controller drains both through one path.
type DirWatcher struct {
	watcher *fsnotify.Watcher
	tasks   *TaskQueue
	current string
}

func NewDirWatcher(tasks *TaskQueue) (*DirWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, Wrap(KindEnvironment, "NewDirWatcher", err)
	}
	return &DirWatcher{watcher: w, tasks: tasks}, nil
}

// Follow replaces the watched directory with path. A failure to watch
// (permission denied, removed mid-race) is swallowed: this is best-effort
// only, the task-driven reload path remains authoritative.
func (d *DirWatcher) Follow(path string) {
	if d.current == path {
		return
	}
	if d.current != "" {
		d.watcher.Remove(d.current)
	}
	if err := d.watcher.Add(path); err == nil {
		d.current = path
	}
}

// Run drains filesystem events into the task queue's reload notification
// channel until the watcher is closed.
func (d *DirWatcher) Run() {
	for {
		select {
		case _, ok := <-d.watcher.Events:
			if !ok {
				return
			}
			d.tasks.EnqueueReload(d.current)
		case _, ok := <-d.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (d *DirWatcher) Close() error { return d.watcher.Close() }
