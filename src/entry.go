package minase

import (
	"os"
	"path/filepath"
	"time"
)

// Kind classifies what a directory entry points at.
type Kind int

const (
	KindRegular Kind = iota
	KindDirectory
	KindSymlink
	KindFifo
	KindSocket
	KindOther
)

// FileEntry is an immutable snapshot of one directory entry: parent path,
// base name, kind, permission bits, size, mtime, and whether a symlink
// resolves to a directory. Created once by DirectoryModel's readdir+lstat
// pass; never mutated afterwards. Identified by its full path.
type FileEntry struct {
	Dir           string
	Name          string
	Kind          Kind
	Mode          os.FileMode
	Executable    bool
	Size          int64
	ModTimeSec    int64
	ModTimeNsec   int64
	LinksToDir    bool
}

// Path returns the entry's full, joined path.
func (e FileEntry) Path() string {
	return filepath.Join(e.Dir, e.Name)
}

// IsDir reports whether the entry should be treated as a directory for
// navigation and sorting purposes: a real directory, or a symlink that
// resolves to one.
func (e FileEntry) IsDir() bool {
	return e.Kind == KindDirectory || (e.Kind == KindSymlink && e.LinksToDir)
}

// DisplayName returns the name as shown in a listing: directories (real or
// symlinked-to-directory) carry a trailing slash.
func (e FileEntry) DisplayName() string {
	if e.IsDir() {
		return e.Name + "/"
	}
	return e.Name
}

// ModTime reconstructs the modification timestamp.
func (e FileEntry) ModTime() time.Time {
	return time.Unix(e.ModTimeSec, e.ModTimeNsec)
}

// newFileEntry builds a FileEntry from a Lstat result, resolving a second
// Stat for symlinks to learn whether they point at a directory (spec.md
// 4.1: "if it is a symlink, a second stat decides whether it points at a
// directory").
func newFileEntry(dir string, name string, lst os.FileInfo) FileEntry {
	e := FileEntry{
		Dir:         dir,
		Name:        name,
		Mode:        lst.Mode(),
		Size:        lst.Size(),
		ModTimeSec:  lst.ModTime().Unix(),
		ModTimeNsec: int64(lst.ModTime().Nanosecond()),
	}
	switch {
	case lst.Mode()&os.ModeSymlink != 0:
		e.Kind = KindSymlink
		if st, err := os.Stat(filepath.Join(dir, name)); err == nil {
			e.LinksToDir = st.IsDir()
		}
	case lst.IsDir():
		e.Kind = KindDirectory
	case lst.Mode()&os.ModeNamedPipe != 0:
		e.Kind = KindFifo
	case lst.Mode()&os.ModeSocket != 0:
		e.Kind = KindSocket
	case lst.Mode().IsRegular():
		e.Kind = KindRegular
	default:
		e.Kind = KindOther
	}
	e.Executable = lst.Mode()&0o111 != 0
	return e
}
