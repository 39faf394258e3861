package minase

import (
	"os"
	"path/filepath"

	"github.com/sat1226/minase/src/tui"
	"github.com/sat1226/minase/src/util"
)

// handleKey dispatches one key event per the keymap table in spec.md 4.6.
// Line-editor actions (rename, filter, create, open-with) are handled by a
// minimal synchronous prompt read from the renderer, since no separate
// input-mode state machine exists yet beyond what each action needs.
func handleKey(c *Controller, evt tui.Event) {
	p := c.focusedPane()

	switch evt.Type {
	case tui.Rune:
		handleRuneKey(c, p, evt.Char)
	case tui.Left:
		goUp(c, p)
	case tui.Right, tui.CtrlM:
		openFocused(c, p)
	case tui.Up:
		p.Prev()
	case tui.Down:
		p.Next()
	case tui.PgDn, tui.CtrlD:
		p.PageDown(paneHeight(c))
	case tui.PgUp, tui.CtrlU:
		p.PageUp(paneHeight(c))
	case tui.Home:
		p.First()
	case tui.End:
		p.Last()
	case tui.CtrlJ:
		c.preview.Scroll(1)
	case tui.CtrlK:
		c.preview.Scroll(-1)
	case tui.CtrlL:
		c.renderer.Clear()
	case tui.CtrlA:
		jumpToMountDir(c, p)
	case tui.CtrlG:
		c.quit = true
	case tui.CtrlR:
		batchRename(c, p)
	case tui.CtrlO:
		openWith(c, p)
	case tui.CtrlX:
		// plugin menu: left as a status-line hint until a modal list exists
		// to render it through.
		c.infof("plugins: %d loaded (Alt+key to run)", len(c.plugins))
	}
}

func handleRuneKey(c *Controller, p *PaneState, ch rune) {
	switch ch {
	case 'h':
		goUp(c, p)
	case 'l':
		openFocused(c, p)
	case 'j':
		p.Next()
	case 'k':
		p.Prev()
	case 'g':
		p.First()
	case 'G':
		p.Last()
	case 'H':
		p.WindowTop()
	case 'M':
		p.WindowMiddle(paneHeight(c))
	case 'L':
		p.WindowBottom(paneHeight(c))
	case ' ':
		p.Toggle()
	case 'a':
		p.InvertAll()
	case 'u':
		p.ClearSelection()
	case 'c':
		startClipboard(c, p, ClipCopy)
	case 'm':
		startClipboard(c, p, ClipMove)
	case 'p':
		pasteClipboard(c, p)
	case 'd':
		deleteSelection(c, p)
	case 'r':
		renameFocused(c, p)
	case 'n':
		createEntry(c, p)
	case '*':
		toggleExecBits(c, p)
	case '.':
		p.Model().SetHidden(!p.Model().Hidden())
	case ',':
		if p.style == ViewSimple {
			p.style = ViewDetail
		} else {
			p.style = ViewSimple
		}
	case 's':
		cycleSort(p)
	case '/':
		setFilterPrompt(c, p)
	case 'i':
		c.preview.config.ImagePreview = !c.preview.config.ImagePreview
		c.preview.SetLoadFile(c.focusedEntryOrDir())
	case 'b':
		bookmarkMenu(c, p)
	case '@':
		if home, err := os.UserHomeDir(); err == nil {
			p.SetPath(home)
		}
	case '!':
		spawnShell(c, p)
	case 'e':
		invokeEditor(c, p)
	case '0':
		toggleLogMode(c)
	case '1', '2', '3', '4':
		c.focused = int(ch - '1')
	case 'q':
		c.quit = true
	case 'x':
		extractArchive(c, p)
	case 'z':
		createArchivePrompt(c, p)
	case 'U':
		unmountFocused(c, p)
	}
}

func paneHeight(c *Controller) int {
	h := c.renderer.MaxY() - 3
	if h < 1 {
		h = 1
	}
	return h
}

func goUp(c *Controller, p *PaneState) {
	if err := p.UpDir(); err != nil {
		c.status.Error(err.Error())
	}
}

func openFocused(c *Controller, p *PaneState) {
	path, ok := p.focusedPath()
	if !ok {
		return
	}
	entry := p.Model().At(p.Cursor())
	switch {
	case entry.IsDir():
		if c.picker.Mode == PickerDir {
			c.commitPicker(p)
			return
		}
		p.SetPath(path)
	case isArchiveSuffix(path):
		openArchiveSubmenu(c, p, path)
	default:
		if c.picker.Mode != PickerNone {
			c.commitPicker(p)
			return
		}
		openWithOpener(c, path)
	}
}

func (c *Controller) commitPicker(p *PaneState) {
	paths := c.picker.Resolve(p)
	if err := c.picker.Commit(paths); err != nil {
		c.status.Error(err.Error())
		return
	}
	c.quit = true
}

func isArchiveSuffix(path string) bool {
	head, tail, err := readHeadTail(path, 512)
	if err != nil {
		return false
	}
	return isArchiveMagic(head, tail)
}

func openArchiveSubmenu(c *Controller, p *PaneState, path string) {
	mountPoint, err := c.mounter.Mount(path)
	if err != nil {
		c.status.Error(err.Error())
		return
	}
	p.SetPath(mountPoint)
}

func openWithOpener(c *Controller, path string) {
	c.SuspendForChild(func() error {
		argv, err := shellwordsSplit(c.cfg.Opener)
		if err != nil {
			return err
		}
		cmd, err := procexecCommand(argv[0], append(argv[1:], path)...)
		if err != nil {
			return err
		}
		return cmd.run()
	})
}

func startClipboard(c *Controller, p *PaneState, op ClipboardOp) {
	paths := SelectedPaths()
	if len(paths) == 0 {
		if path, ok := p.focusedPath(); ok {
			paths = []string{path}
		}
	}
	if op == ClipCopy {
		c.clipboard.SetCopy(paths)
	} else {
		c.clipboard.SetMove(paths)
	}
	p.ClearSelection()
}

func pasteClipboard(c *Controller, p *PaneState) {
	op, paths := c.clipboard.Consume()
	if op == ClipNone || len(paths) == 0 {
		return
	}
	c.tasks.StartTask()
	dst := p.Path()
	if op == ClipCopy {
		c.tasks.EnqueueCopy(paths, dst)
	} else {
		c.tasks.EnqueueMove(paths, dst)
	}
	c.tasks.EnqueueReload(dst)
}

func deleteSelection(c *Controller, p *PaneState) {
	paths := SelectedPaths()
	if len(paths) == 0 {
		if path, ok := p.focusedPath(); ok {
			paths = []string{path}
		}
	}
	if len(paths) == 0 {
		return
	}
	c.tasks.StartTask()
	c.tasks.EnqueueDelete(paths, c.cfg.UseTrash)
	c.tasks.EnqueueReload(p.Path())
	p.ClearSelection()
}

func renameFocused(c *Controller, p *PaneState) {
	path, ok := p.focusedPath()
	if !ok {
		return
	}
	newName := c.promptLine("rename: ", filepath.Base(path))
	if newName == "" || newName == filepath.Base(path) {
		return
	}
	dst := filepath.Join(filepath.Dir(path), newName)
	if err := os.Rename(path, dst); err != nil {
		c.status.Error(err.Error())
		return
	}
	p.Reload()
	c.infof("renamed to %s", newName)
}

func createEntry(c *Controller, p *PaneState) {
	name := c.promptLine("new (trailing / for dir): ", "")
	if name == "" {
		return
	}
	target := filepath.Join(p.Path(), name)
	var err error
	if name[len(name)-1] == '/' {
		err = os.MkdirAll(target, 0o755)
	} else {
		var f *os.File
		f, err = os.Create(target)
		if f != nil {
			f.Close()
		}
	}
	if err != nil {
		c.status.Error(err.Error())
		return
	}
	p.Reload()
}

func toggleExecBits(c *Controller, p *PaneState) {
	path, ok := p.focusedPath()
	if !ok {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		c.status.Error(err.Error())
		return
	}
	mode := info.Mode()
	mode ^= 0o111
	if err := os.Chmod(path, mode); err != nil {
		c.status.Error(err.Error())
		return
	}
	p.Reload()
}

func cycleSort(p *PaneState) {
	key, order := p.Model().SortSetting()
	key = (key + 1) % 3
	p.Model().SetSort(key, order)
}

func setFilterPrompt(c *Controller, p *PaneState) {
	text := c.promptLine("filter: ", "")
	c.filterHist.Append(text)
	_, kind := p.Model().FilterSetting()
	p.Model().SetFilter(text, kind)
}

func bookmarkMenu(c *Controller, p *PaneState) {
	if c.bookmarks == nil {
		return
	}
	c.bookmarks.Add(p.Path())
	c.infof("bookmarked %s", p.Path())
}

func spawnShell(c *Controller, p *PaneState) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		c.status.Error("SHELL is not set")
		return
	}
	c.SuspendForChild(func() error {
		cmd, err := procexecCommandDir(shell, p.Path())
		if err != nil {
			return err
		}
		return cmd.run()
	})
}

func invokeEditor(c *Controller, p *PaneState) {
	path, ok := p.focusedPath()
	if !ok {
		return
	}
	editor := os.Getenv("EDITOR")
	if editor == "" {
		c.status.Error("EDITOR is not set")
		return
	}
	c.SuspendForChild(func() error {
		argv, err := shellwordsSplit(editor)
		if err != nil {
			return err
		}
		cmd, err := procexecCommand(argv[0], append(argv[1:], path)...)
		if err != nil {
			return err
		}
		return cmd.run()
	})
}

func toggleLogMode(c *Controller) {
	if c.mode == ModeBrowse {
		c.mode = ModeLog
	} else {
		c.mode = ModeBrowse
	}
}

func jumpToMountDir(c *Controller, p *PaneState) {
	p.SetPath(c.mounter.MountRoot)
}

func extractArchive(c *Controller, p *PaneState) {
	path, ok := p.focusedPath()
	if !ok {
		return
	}
	if err := Extract(path, p.Path()); err != nil {
		c.status.Error(err.Error())
		return
	}
	p.Reload()
}

func createArchivePrompt(c *Controller, p *PaneState) {
	name := c.promptLine("archive name: ", "")
	if name == "" {
		return
	}
	srcs := SelectedPaths()
	if len(srcs) == 0 {
		if path, ok := p.focusedPath(); ok {
			srcs = []string{path}
		}
	}
	if err := CreateArchive(filepath.Join(p.Path(), name), srcs); err != nil {
		c.status.Error(err.Error())
		return
	}
	p.Reload()
}

func unmountFocused(c *Controller, p *PaneState) {
	if err := c.mounter.Unmount(p.Path()); err != nil {
		c.status.Error(err.Error())
		return
	}
	goUp(c, p)
}

func batchRename(c *Controller, p *PaneState) {
	editor := os.Getenv("EDITOR")
	names := make([]string, p.Model().Count())
	for i := 0; i < p.Model().Count(); i++ {
		names[i] = p.Model().At(i).Name
	}
	var plan []RenamePlan
	c.SuspendForChild(func() error {
		var err error
		plan, err = BuildBatchRenamePlan(editor, p.Path(), names)
		return err
	})
	for _, r := range plan {
		old := filepath.Join(r.Dir, r.OldName)
		next := filepath.Join(r.Dir, r.NewName)
		c.tasks.StartTask()
		c.tasks.EnqueueMove([]string{old}, next)
	}
	c.tasks.EnqueueReload(p.Path())
}

// openWith runs a user-typed command template against the focused entry,
// in the shell rather than as a pre-tokenized argv, so "{}" placeholders,
// pipes and redirects in the typed command behave the way they would on a
// command line (grounded on the teacher's src/command.go template style).
func openWith(c *Controller, p *PaneState) {
	line := c.promptLine("open with: ", "")
	if line == "" {
		return
	}
	path, ok := p.focusedPath()
	if !ok {
		return
	}
	c.SuspendForChild(func() error {
		cmd := util.ExecCommand(substitutePlaceholder(line, path))
		cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
		return cmd.Run()
	})
}
