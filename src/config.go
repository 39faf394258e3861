package minase

import (
	"os"
	"path/filepath"
)

// Config is the decoded [Options] section of the INI config file (spec.md
// 6), with every key's documented default.
type Config struct {
	LogMaxLines     int
	PreviewMaxLines int
	UseTrash        bool
	NanorcPath      string
	WideCJK         bool
	Opener          string
	FileViewType    ViewStyle
	SortType        SortKey
	SortOrder       SortOrder
	FilterType      FilterKind
	ArchiveMntDir   string
}

// DefaultConfig returns the documented defaults, before any config file is
// applied.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		LogMaxLines:     100,
		PreviewMaxLines: 50,
		UseTrash:        false,
		NanorcPath:      "/usr/share/nano",
		WideCJK:         false,
		Opener:          "xdg-open",
		FileViewType:    ViewSimple,
		SortType:        SortByName,
		SortOrder:       OrderAsc,
		FilterType:      FilterSubstring,
		ArchiveMntDir:   filepath.Join(home, ".config", "Minase", "mnt"),
	}
}

// LoadConfig reads the [Options] section at path, overlaying DefaultConfig.
// A missing file is not an error -- the defaults stand.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	kv, err := parseIniSection(path, "Options")
	if err != nil {
		return cfg, err
	}
	cfg.LogMaxLines = iniInt(kv, "LogMaxLines", cfg.LogMaxLines)
	cfg.PreviewMaxLines = iniInt(kv, "PreViewMaxLines", cfg.PreviewMaxLines)
	cfg.UseTrash = iniBool(kv, "UseTrash", cfg.UseTrash)
	cfg.NanorcPath = iniString(kv, "NanorcPath", cfg.NanorcPath)
	cfg.WideCJK = iniBool(kv, "wcwidth-cjk", cfg.WideCJK)
	cfg.Opener = iniString(kv, "Opener", cfg.Opener)
	if v := iniInt(kv, "FileViewType", int(cfg.FileViewType)); v == 1 {
		cfg.FileViewType = ViewDetail
	} else {
		cfg.FileViewType = ViewSimple
	}
	cfg.SortType = SortKey(iniInt(kv, "SortType", int(cfg.SortType)))
	cfg.SortOrder = SortOrder(iniInt(kv, "SortOrder", int(cfg.SortOrder)))
	cfg.FilterType = FilterKind(iniInt(kv, "FilterType", int(cfg.FilterType)))
	cfg.ArchiveMntDir = iniString(kv, "ArchiveMntDir", cfg.ArchiveMntDir)
	return cfg, nil
}

// DefaultConfigPath returns $HOME/.config/Minase/options.ini.
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "Minase", "options.ini")
}

// DefaultBookmarksPath returns $HOME/.config/Minase/bookmarks.
func DefaultBookmarksPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "Minase", "bookmarks")
}

// DefaultPluginManifestPath returns $HOME/.config/Minase/plugins.ini.
func DefaultPluginManifestPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "Minase", "plugins.ini")
}

// LastDirPath returns $HOME/.config/Minase/lastdir, written on quit
// (spec.md 6).
func LastDirPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "Minase", "lastdir")
}
