package minase

import (
	"path/filepath"

	"github.com/sat1226/minase/src/util"
)

// ViewStyle selects how PaneState.Render lays out one row.
type ViewStyle int

const (
	ViewSimple ViewStyle = iota
	ViewDetail
)

// selection is the process-global selection set shared by every pane, so a
// copy started in pane A is still selected when the user switches to pane B
// and pastes (spec.md 3: "selection persists across chdir (process-wide)").
var selection = util.NewConcurrentSet[string]()

// PaneState is one tab's view onto a directory: current path, cursor,
// scroll offset, view style, and filter/sort settings. Selection itself is
// process-global (see `selection` above); PaneState only asks it questions
// scoped to the entries it currently lists.
type PaneState struct {
	model DirectoryModel

	path     string
	lastPath string

	cursor     int
	top        int
	scrollDirty bool

	style ViewStyle
}

// NewPaneState returns a pane positioned nowhere; call SetPath to open a
// directory.
func NewPaneState() *PaneState {
	return &PaneState{model: *NewDirectoryModel()}
}

// Model exposes the underlying DirectoryModel for read access (rendering,
// filter/sort submenus).
func (p *PaneState) Model() *DirectoryModel { return &p.model }

// Path returns the pane's current directory.
func (p *PaneState) Path() string { return p.path }

// SetPath opens path, remembering the previous path, clearing the filter,
// and resetting the cursor to 0 (spec.md 4.2: "set_path(p): opens the
// directory; on success remembers the old path, clears filter, resets
// cursor to 0").
func (p *PaneState) SetPath(path string) error {
	clean := filepath.Clean(path)
	m := NewDirectoryModel()
	if err := m.Open(clean); err != nil {
		return err
	}
	p.lastPath = p.path
	p.path = clean
	p.model = *m
	p.model.SetFilter("", FilterSubstring)
	p.cursor = 0
	p.top = 0
	p.scrollDirty = true
	return nil
}

// UpDir walks one path component up, retrying further up if an intermediate
// parent fails to open (spec.md 4.2: "up_dir(): walks one component up. If
// the parent open fails, walks further up until one succeeds or root is
// reached. Restores cursor on the child directory name that was left.").
func (p *PaneState) UpDir() error {
	child := filepath.Base(p.path)
	dir := p.path
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return New(KindTransient, "pane.UpDir", "already at root")
		}
		if err := p.SetPath(parent); err == nil {
			if idx := p.model.IndexOf(child); idx >= 0 {
				p.cursor = idx
			}
			return nil
		}
		child = filepath.Base(parent)
		dir = parent
	}
}

// Reload re-reads the current path, trying to keep the cursor on the same
// filename; falls back to cursor 0 if the name disappeared (spec.md 4.2).
// Per the preserved Open Question 9(a), Reload never cancels or waits on
// any in-flight preview job -- it is free to race with PreviewEngine.
func (p *PaneState) Reload() error {
	focused := ""
	if p.model.Count() > 0 && p.cursor < p.model.Count() {
		focused = p.model.At(p.cursor).Name
	}
	m := NewDirectoryModel()
	oldHidden := p.model.Hidden()
	key, order := p.model.SortSetting()
	text, kind := p.model.FilterSetting()
	if err := m.Open(p.path); err != nil {
		return err
	}
	if oldHidden {
		m.SetHidden(true)
	}
	m.SetSort(key, order)
	m.SetFilter(text, kind)
	p.model = *m
	if idx := m.IndexOf(focused); idx >= 0 {
		p.cursor = idx
	} else {
		p.cursor = 0
		p.top = 0
	}
	p.scrollDirty = true
	return nil
}

// Cursor returns the current cursor row within the filtered listing.
func (p *PaneState) Cursor() int { return p.cursor }

// Top returns the top-of-screen scroll offset.
func (p *PaneState) Top() int { return p.top }

// ScrollDirty reports (and clears) whether a cursor motion requires the
// renderer to recompute scroll -- consumed once per frame by Controller.
func (p *PaneState) ScrollDirty() bool {
	dirty := p.scrollDirty
	p.scrollDirty = false
	return dirty
}

func (p *PaneState) setCursor(c int) {
	count := p.model.Count()
	if c < 0 {
		c = 0
	}
	if count > 0 && c >= count {
		c = count - 1
	}
	if count == 0 {
		c = 0
	}
	p.cursor = c
	p.scrollDirty = true
}

// Next/Prev move the cursor by one row.
func (p *PaneState) Next() { p.setCursor(p.cursor + 1) }
func (p *PaneState) Prev() { p.setCursor(p.cursor - 1) }

// PageDown/PageUp move the cursor by half of height, clamped to bounds.
func (p *PaneState) PageDown(height int) { p.setCursor(p.cursor + util.Max(1, height/2)) }
func (p *PaneState) PageUp(height int)   { p.setCursor(p.cursor - util.Max(1, height/2)) }

// First/Last move the cursor to the first/last entry.
func (p *PaneState) First() { p.setCursor(0) }
func (p *PaneState) Last()  { p.setCursor(p.model.Count() - 1) }

// WindowTop/WindowMiddle/WindowBottom move the cursor to the top/middle/
// bottom row of the currently visible window (spec.md 4.2 "H/M/L").
func (p *PaneState) WindowTop()    { p.setCursor(p.top) }
func (p *PaneState) WindowMiddle(height int) { p.setCursor(p.top + height/2) }
func (p *PaneState) WindowBottom(height int) {
	p.setCursor(util.Min(p.top+height-1, p.model.Count()-1))
}

// RecomputeScroll adjusts Top so Cursor stays within [Top, Top+height).
// Called by the renderer once per frame when ScrollDirty is set.
func (p *PaneState) RecomputeScroll(height int) {
	if height <= 0 {
		return
	}
	if p.cursor < p.top {
		p.top = p.cursor
	}
	if p.cursor >= p.top+height {
		p.top = p.cursor - height + 1
	}
	if p.top < 0 {
		p.top = 0
	}
}

// Selection helpers -- all operate on the process-global `selection` set,
// scoped by absolute path so panes on different directories never collide.

func (p *PaneState) focusedPath() (string, bool) {
	if p.model.Count() == 0 || p.cursor >= p.model.Count() {
		return "", false
	}
	return p.model.At(p.cursor).Path(), true
}

// Toggle flips the focused entry's selection and advances the cursor
// (spec.md 4.6 "Space: toggle-select, advance cursor").
func (p *PaneState) Toggle() {
	if path, ok := p.focusedPath(); ok {
		selection.Toggle(path)
	}
	p.Next()
}

// Select marks the focused entry selected without moving the cursor.
func (p *PaneState) Select() {
	if path, ok := p.focusedPath(); ok {
		selection.Add(path)
	}
}

// Unselect clears the focused entry's selection.
func (p *PaneState) Unselect() {
	if path, ok := p.focusedPath(); ok {
		selection.Remove(path)
	}
}

// InvertAll inverts selection across every entry currently listed in this
// pane (spec.md 4.2 "a: invert_all"), leaving entries outside this listing
// untouched.
func (p *PaneState) InvertAll() {
	paths := make([]string, p.model.Count())
	for i := 0; i < p.model.Count(); i++ {
		paths[i] = p.model.At(i).Path()
	}
	selection.InvertWithin(paths)
}

// ClearSelection empties the process-global selection set entirely
// (spec.md 4.2 "u: clear").
func (p *PaneState) ClearSelection() {
	selection.Clear()
}

// IsSelected reports whether path is currently selected.
func IsSelected(path string) bool { return selection.Contains(path) }

// SelectedPaths returns every currently-selected absolute path.
func SelectedPaths() []string {
	var out []string
	selection.ForEach(func(item string) { out = append(out, item) })
	return out
}

// SelectionCount reports how many paths are currently selected.
func SelectionCount() int { return selection.Len() }

// TruncateName truncates name to fit width columns, preserving the file
// extension with a "~.ext"-style ellipsis when it must cut (spec.md 4.2
// DETAIL style: "truncates the name with a ~.ext suffix-preserving
// ellipsis when needed").
func TruncateName(name string, width int) string {
	if width <= 0 || len([]rune(name)) <= width {
		return name
	}
	ext := filepath.Ext(name)
	runes := []rune(name)
	if width <= len(ext)+1 {
		return string(runes[:width])
	}
	keep := width - len(ext) - 1
	return string(runes[:keep]) + "~" + ext
}

// filterKindName narrows FilterKind names for the status line.
func filterKindName(k FilterKind) string {
	switch k {
	case FilterRegexp:
		return "REGEXP"
	case FilterDict:
		return "DICT"
	default:
		return "SUBSTRING"
	}
}
