package minase

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseIniSectionMissingFileReturnsEmpty(t *testing.T) {
	kv, err := parseIniSection(filepath.Join(t.TempDir(), "missing.ini"), "Options")
	if err != nil {
		t.Fatal(err)
	}
	if len(kv) != 0 {
		t.Fatalf("expected empty map, got %v", kv)
	}
}

func TestParseIniSectionReadsOnlyNamedSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.ini")
	contents := "[Other]\nFoo=1\n\n[Options]\n; comment\nLogMaxLines=42\nOpener = myopener\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	kv, err := parseIniSection(path, "Options")
	if err != nil {
		t.Fatal(err)
	}
	if kv["LogMaxLines"] != "42" || kv["Opener"] != "myopener" {
		t.Fatalf("unexpected kv: %v", kv)
	}
	if _, ok := kv["Foo"]; ok {
		t.Fatalf("section isolation violated: %v", kv)
	}
}

func TestParseIniSectionsSplitsByHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugins.ini")
	contents := "[open-with-vim]\nfilePath=/x/1_vim.sh\ngui=false\n\n[preview-zip]\nfilePath=/x/2_zip.sh\ngui=true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	sections, err := parseIniSections(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections["open-with-vim"]["gui"] != "false" {
		t.Fatalf("unexpected: %v", sections)
	}
	if sections["preview-zip"]["filePath"] != "/x/2_zip.sh" {
		t.Fatalf("unexpected: %v", sections)
	}
}

func TestIniHelperDefaults(t *testing.T) {
	m := map[string]string{"a": "true", "b": "not-a-bool", "n": "7", "s": ""}
	if !iniBool(m, "a", false) {
		t.Fatal("expected true")
	}
	if !iniBool(m, "b", true) {
		t.Fatal("expected fallback to default on parse failure")
	}
	if iniBool(m, "missing", true) != true {
		t.Fatal("expected default for missing key")
	}
	if iniInt(m, "n", 0) != 7 {
		t.Fatal("expected 7")
	}
	if iniInt(m, "missing", 9) != 9 {
		t.Fatal("expected default 9")
	}
	if iniString(m, "s", "fallback") != "fallback" {
		t.Fatal("expected fallback for empty value")
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.ini")
	contents := "[Options]\nLogMaxLines=5\nFileViewType=1\nUseTrash=true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogMaxLines != 5 {
		t.Fatalf("expected overridden LogMaxLines=5, got %d", cfg.LogMaxLines)
	}
	if cfg.FileViewType != ViewDetail {
		t.Fatalf("expected ViewDetail, got %v", cfg.FileViewType)
	}
	if !cfg.UseTrash {
		t.Fatal("expected UseTrash=true")
	}
	def := DefaultConfig()
	if cfg.PreviewMaxLines != def.PreviewMaxLines {
		t.Fatalf("expected untouched default %d, got %d", def.PreviewMaxLines, cfg.PreviewMaxLines)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}
