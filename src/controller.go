package minase

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sat1226/minase/src/tui"
)

const tickInterval = 20 * time.Millisecond

// PaneMode distinguishes a pane's normal directory browsing from the
// log-viewer mode spec.md 4.6's `0` key switches to.
type PaneMode int

const (
	ModeBrowse PaneMode = iota
	ModeLog
)

// Controller is the event loop (C7): it owns four PaneStates, a single
// PreviewEngine, a single TaskQueue, the clipboard, a filter-history ring,
// and the currently focused pane index (spec.md 4.6).
type Controller struct {
	renderer tui.Renderer

	panes      [4]*PaneState
	focused    int
	mode       PaneMode
	preview    *PreviewEngine
	tasks      *TaskQueue
	log        *LogDeque
	clipboard  *ClipboardBuffer
	filterHist *History
	status     *StatusLine
	bookmarks  *Bookmarks
	mounter    *ArchiveMounter
	plugins    []Plugin
	cfg        Config
	watcher    *DirWatcher

	picker PickerState

	lastTaskCount int
	quit          bool

	previewPaintedThisTick bool
	lastPreviewTarget      string
}

// NewController wires the four panes at startDir and the supporting
// components from cfg (spec.md 4.6).
func NewController(renderer tui.Renderer, startDir string, cfg Config, picker PickerState) (*Controller, error) {
	c := &Controller{
		renderer:   renderer,
		cfg:        cfg,
		picker:     picker,
		log:        NewLogDeque(cfg.LogMaxLines),
		clipboard:  NewClipboardBuffer(),
		filterHist: NewHistory(100),
		status:     NewStatusLine(),
		mounter:    NewArchiveMounter(cfg.ArchiveMntDir),
	}
	c.tasks = NewTaskQueue(c.log)
	c.preview = NewPreviewEngine(PreviewConfig{
		MaxLines:     cfg.PreviewMaxLines,
		ImagePreview: true,
		WideCJK:      cfg.WideCJK,
		NanorcPath:   cfg.NanorcPath,
	})

	for i := range c.panes {
		c.panes[i] = NewPaneState()
		c.panes[i].style = cfg.FileViewType
		if err := c.panes[i].SetPath(startDir); err != nil {
			return nil, err
		}
		c.panes[i].Model().SetSort(cfg.SortType, cfg.SortOrder)
		c.panes[i].Model().SetFilter("", cfg.FilterType)
	}

	if bm, err := LoadBookmarks(DefaultBookmarksPath()); err == nil {
		c.bookmarks = bm
	}
	if pl, err := LoadPlugins(DefaultPluginManifestPath()); err == nil {
		c.plugins = pl
	}
	if watcher, err := NewDirWatcher(c.tasks); err == nil {
		c.watcher = watcher
		go watcher.Run()
		watcher.Follow(startDir)
	}
	return c, nil
}

func (c *Controller) focusedPane() *PaneState { return c.panes[c.focused] }

// Run drives the main loop until quit (spec.md 4.6's six-step tick).
func (c *Controller) Run() error {
	c.renderer.Init()
	defer c.renderer.Close()
	defer c.preview.Close()
	defer c.tasks.Close()
	if c.watcher != nil {
		defer c.watcher.Close()
	}

	c.preview.SetLoadFile(c.focusedEntryOrDir())
	c.lastPreviewTarget = c.focusedPane().Path()

	for !c.quit {
		c.tick()
		if c.watcher != nil {
			c.watcher.Follow(c.focusedPane().Path())
		}
	}
	return c.writeLastDir()
}

func (c *Controller) tick() {
	evt := c.renderer.GetChar()

	if target, changed := c.maybeChangedFocus(); changed {
		c.preview.SetLoadFile(target)
	}

	if n := c.tasks.TaskCount(); n != c.lastTaskCount {
		c.lastTaskCount = n
	}

	for _, path := range c.tasks.DrainReloads() {
		for _, p := range c.panes {
			if p.Path() == path {
				p.Reload()
			}
		}
	}

	c.previewPaintedThisTick = false
	c.render()

	switch evt.Type {
	case tui.Resize:
		// geometry is recomputed from renderer.MaxX/MaxY at render time;
		// nothing to cache here.
	case tui.Invalid:
		// an event the backend does not translate, nothing to dispatch
	default:
		c.dispatch(evt)
	}
}

// maybeChangedFocus reports the entry the preview engine should now target,
// if the focused pane's cursor moved to a new entry since the last tick
// (spec.md 4.6 step 2).
func (c *Controller) maybeChangedFocus() (FileEntry, bool) {
	p := c.focusedPane()
	target := c.focusedEntryOrDir()
	key := p.Path() + "\x00" + target.Name
	if key == c.lastPreviewTarget {
		return FileEntry{}, false
	}
	c.lastPreviewTarget = key
	return target, true
}

func (c *Controller) focusedEntryOrDir() FileEntry {
	p := c.focusedPane()
	if path, ok := p.focusedPath(); ok {
		if idx := p.Model().IndexOf(filepath.Base(path)); idx >= 0 {
			return p.Model().At(idx)
		}
	}
	return newSyntheticDirEntry(p.Path())
}

func newSyntheticDirEntry(path string) FileEntry {
	return FileEntry{Dir: filepath.Dir(path), Name: filepath.Base(path), Kind: KindDirectory}
}

func (c *Controller) render() {
	RenderFrame(c)
}

func (c *Controller) writeLastDir() error {
	path := LastDirPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Wrap(KindEnvironment, "Controller.writeLastDir", err)
	}
	return os.WriteFile(path, []byte(c.focusedPane().Path()+"\n"), 0o644)
}

// dispatch routes one input event through the keymap (spec.md 4.6).
func (c *Controller) dispatch(evt tui.Event) {
	if key, ok := pluginShortcut(evt); ok {
		c.dispatchPlugin(key)
		return
	}
	handleKey(c, evt)
}

func (c *Controller) dispatchPlugin(key rune) {
	for _, p := range c.plugins {
		if p.Key != key {
			continue
		}
		name := ""
		if path, ok := c.focusedPane().focusedPath(); ok {
			name = filepath.Base(path)
		}
		userText := ""
		if p.PromptText {
			userText = c.promptLine(p.Name+": ", "")
		}
		result, err := RunPlugin(p, name, SelectedPaths(), userText, c.focusedPane().Path(), c.SuspendForChild)
		if err != nil {
			c.status.Error(err.Error())
			return
		}
		if result.Chdir != "" {
			c.focusedPane().SetPath(result.Chdir)
		}
		if result.FocusedName != "" {
			if idx := c.focusedPane().Model().IndexOf(result.FocusedName); idx >= 0 {
				c.focusedPane().cursor = idx
			}
		}
		return
	}
}

// SuspendForChild tears down the terminal backend before a foreground
// external process runs, and re-initialises it after (spec.md 4.6
// "terminal etiquette").
func (c *Controller) SuspendForChild(run func() error) error {
	c.renderer.Pause()
	defer c.renderer.Resume()
	return run()
}

func (c *Controller) infof(format string, args ...any) {
	c.status.Info(fmt.Sprintf(format, args...))
}
