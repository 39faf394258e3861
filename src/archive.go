package minase

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/sat1226/minase/src/procexec"
)

// ArchiveMounter drives the `archivemount`-style workflow named in spec.md
// 4.6's `U` (unmount) and Ctrl-A (jump to mount dir) keymap entries but not
// otherwise detailed there; the mount side is supplemented from
// original_source/main.cpp per SPEC_FULL.md. Archives are mounted under
// MountRoot/<archive-name> and unmounted through a fuse helper.
type ArchiveMounter struct {
	MountRoot string
}

func NewArchiveMounter(mountRoot string) *ArchiveMounter {
	return &ArchiveMounter{MountRoot: mountRoot}
}

// MountPointFor returns the directory an archive would be mounted at,
// without mounting it.
func (m *ArchiveMounter) MountPointFor(archivePath string) string {
	name := strings.TrimSuffix(filepath.Base(archivePath), filepath.Ext(archivePath))
	return filepath.Join(m.MountRoot, name)
}

// Mount spawns `archivemount archivePath mountPoint` and returns the mount
// point on success, so the controller can cd the focused pane there
// (original_source/main.cpp's mount handler).
func (m *ArchiveMounter) Mount(archivePath string) (string, error) {
	mountPoint := m.MountPointFor(archivePath)
	if err := os.MkdirAll(mountPoint, 0o755); err != nil {
		return "", Wrap(KindEnvironment, "ArchiveMounter.Mount", err)
	}
	cmd, err := procexec.Command("archivemount", archivePath, mountPoint)
	if err != nil {
		return "", err
	}
	if _, err := cmd.Output(context.Background()); err != nil {
		return "", Wrap(KindTransient, "ArchiveMounter.Mount", err)
	}
	return mountPoint, nil
}

// Unmount spawns `fusermount -u mountPoint` (spec.md 4.6 "U: unmount via
// fuse helper").
func (m *ArchiveMounter) Unmount(mountPoint string) error {
	cmd, err := procexec.Command("fusermount", "-u", mountPoint)
	if err != nil {
		return err
	}
	if _, err := cmd.Output(context.Background()); err != nil {
		return Wrap(KindTransient, "ArchiveMounter.Unmount", err)
	}
	return os.Remove(mountPoint)
}

// Extract spawns `bsdtar -xf archivePath -C destDir` (spec.md 4.6 `x`:
// extract). CreateArchive uses `bsdtar -cf archivePath srcs...` (`z`: create).
func Extract(archivePath, destDir string) error {
	cmd, err := procexec.Command("bsdtar", "-xf", archivePath, "-C", destDir)
	if err != nil {
		return err
	}
	_, err = cmd.Output(context.Background())
	return err
}

func CreateArchive(archivePath string, srcs []string) error {
	args := append([]string{"-cf", archivePath}, srcs...)
	cmd, err := procexec.Command("bsdtar", args...)
	if err != nil {
		return err
	}
	_, err = cmd.Output(context.Background())
	return err
}
