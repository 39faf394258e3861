package minase

import (
	"os"
	"path/filepath"
	"sort"
)

// DirectoryModel reads one directory, applies hidden/filter/sort policies,
// and exposes an indexed view over the surviving entries. Replaced wholesale
// by PaneState on chdir/reload, never mutated entry-by-entry (spec.md 3).
type DirectoryModel struct {
	path     string
	all      []FileEntry
	filtered []FileEntry

	hidden     bool
	sortKey    SortKey
	sortOrder  SortOrder
	filterText string
	filterKind FilterKind
}

// NewDirectoryModel returns an empty model; call Open to populate it.
func NewDirectoryModel() *DirectoryModel {
	return &DirectoryModel{}
}

// Open re-reads path from disk, applying the current hidden/filter/sort
// policies, and replaces both the full and filtered entry lists. Directory
// open failure is reported to the caller rather than panicking (spec.md
// 4.1: "directory open failure is reported to the caller (does not
// throw)").
func (m *DirectoryModel) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return Wrap(KindTransient, "dirmodel.Open", err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return Wrap(KindTransient, "dirmodel.Open", err)
	}

	entries := make([]FileEntry, 0, len(names))
	for _, name := range names {
		if name == "." || name == ".." {
			continue
		}
		if !m.hidden && len(name) > 0 && name[0] == '.' {
			continue
		}
		lst, err := os.Lstat(filepath.Join(path, name))
		if err != nil {
			// Vanished between readdir and lstat: drop silently, it will
			// simply be absent on the next reload too (spec.md 4.1).
			continue
		}
		entries = append(entries, newFileEntry(path, name, lst))
	}

	m.path = path
	m.all = entries
	m.applyPolicies()
	return nil
}

// Path returns the directory this model currently represents.
func (m *DirectoryModel) Path() string { return m.path }

// SetHidden toggles whether dotfiles are included, re-reading the directory
// with the new setting.
func (m *DirectoryModel) SetHidden(hidden bool) {
	if m.hidden == hidden {
		return
	}
	m.hidden = hidden
	if err := m.Open(m.path); err != nil {
		// Keep the stale listing rather than losing it; the caller surfaces
		// the error via the status line.
		_ = err
	}
}

// SetSort changes the sort key/order and re-sorts the filtered view.
func (m *DirectoryModel) SetSort(key SortKey, order SortOrder) {
	m.sortKey = key
	m.sortOrder = order
	m.applyPolicies()
}

// SetFilter changes the filter text/kind and re-filters+re-sorts.
func (m *DirectoryModel) SetFilter(text string, kind FilterKind) {
	m.filterText = text
	m.filterKind = kind
	m.applyPolicies()
}

// Hidden, SortKey, SortOrder, FilterText, FilterKind report the current
// policy values, consumed by the status line and sort/filter submenus.
func (m *DirectoryModel) Hidden() bool           { return m.hidden }
func (m *DirectoryModel) SortSetting() (SortKey, SortOrder) {
	return m.sortKey, m.sortOrder
}
func (m *DirectoryModel) FilterSetting() (string, FilterKind) {
	return m.filterText, m.filterKind
}

// Count returns the number of entries in the filtered view.
func (m *DirectoryModel) Count() int { return len(m.filtered) }

// At returns the i'th entry of the filtered view.
func (m *DirectoryModel) At(i int) FileEntry { return m.filtered[i] }

// IndexOf returns the filtered-view index of the entry named name, or -1.
func (m *DirectoryModel) IndexOf(name string) int {
	for i, e := range m.filtered {
		if e.Name == name {
			return i
		}
	}
	return -1
}

func (m *DirectoryModel) applyPolicies() {
	matcher := newFilterMatcher(m.filterText, m.filterKind)
	filtered := make([]FileEntry, 0, len(m.all))
	for _, e := range m.all {
		if matcher.Match(e.Name) {
			filtered = append(filtered, e)
		}
	}
	key, order := m.sortKey, m.sortOrder
	sort.SliceStable(filtered, func(i, j int) bool {
		return compareEntries(filtered[i], filtered[j], key, order)
	})
	m.filtered = filtered
}
