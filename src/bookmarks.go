package minase

import (
	"bufio"
	"os"
	"strings"
)

// Bookmarks is the add/remove/jump modal list named in spec.md 4.6's `b`
// keymap entry and detailed in original_source/main.cpp (see SPEC_FULL.md's
// supplemented-features section): one absolute path per line, loaded from
// and written back to the bookmarks file named in spec.md 6.
type Bookmarks struct {
	path    string
	entries []string
}

func LoadBookmarks(path string) (*Bookmarks, error) {
	b := &Bookmarks{path: path}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return b, nil
	}
	if err != nil {
		return nil, Wrap(KindEnvironment, "LoadBookmarks", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.entries = append(b.entries, line)
		}
	}
	return b, nil
}

// Entries returns the current bookmark list, for rendering the modal.
func (b *Bookmarks) Entries() []string { return b.entries }

// Add appends path if not already present and persists the list.
func (b *Bookmarks) Add(path string) error {
	for _, e := range b.entries {
		if e == path {
			return nil
		}
	}
	b.entries = append(b.entries, path)
	return b.save()
}

// RemoveAt deletes the bookmark at index i and persists the list.
func (b *Bookmarks) RemoveAt(i int) error {
	if i < 0 || i >= len(b.entries) {
		return New(KindProgrammer, "Bookmarks.RemoveAt", "index out of range")
	}
	b.entries = append(b.entries[:i], b.entries[i+1:]...)
	return b.save()
}

// At returns the bookmark at index i, or "" if out of range.
func (b *Bookmarks) At(i int) string {
	if i < 0 || i >= len(b.entries) {
		return ""
	}
	return b.entries[i]
}

func (b *Bookmarks) save() error {
	f, err := os.Create(b.path)
	if err != nil {
		return Wrap(KindEnvironment, "Bookmarks.save", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, e := range b.entries {
		w.WriteString(e)
		w.WriteString("\n")
	}
	return w.Flush()
}
