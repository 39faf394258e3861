package minase

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/sat1226/minase/src/procexec"
	"github.com/sat1226/minase/src/tui"
)

// PluginOpCode is the operation encoded in a plugin script's basename first
// character (spec.md 4.6).
type PluginOpCode int

const (
	PluginOpNone       PluginOpCode = iota // '0'
	PluginOpChdir                          // '1': read one path from the temp file and chdir there
	PluginOpChdirFocus                     // '2': chdir plus reposition cursor on a named entry
)

// Plugin describes one declared plugin manifest entry (spec.md 6: "one
// section per plugin, keys: filePath, gui, key"). The operation code and
// "silent" bit are both derived from filePath's basename -- first
// character and last character respectively (spec.md 6).
type Plugin struct {
	Name       string
	FilePath   string
	GUI        bool
	Key        rune
	Op         PluginOpCode
	PromptText bool // leading underscore on the basename
	Silent     bool // trailing '%' on the basename
}

// LoadPlugins reads the plugin manifest INI at path.
func LoadPlugins(path string) ([]Plugin, error) {
	sections, err := parseIniSections(path)
	if err != nil {
		return nil, err
	}
	var plugins []Plugin
	for name, kv := range sections {
		filePath := kv["filePath"]
		base := filepath.Base(filePath)
		promptText := strings.HasPrefix(base, "_")
		trimmed := strings.TrimPrefix(base, "_")
		op := PluginOpNone
		if len(trimmed) > 0 {
			switch trimmed[0] {
			case '1':
				op = PluginOpChdir
			case '2':
				op = PluginOpChdirFocus
			}
		}
		silent := strings.HasSuffix(trimmed, "%")
		key := rune(0)
		if k := kv["key"]; k != "" {
			key = []rune(k)[0]
		}
		plugins = append(plugins, Plugin{
			Name:       name,
			FilePath:   filePath,
			GUI:        iniBool(kv, "gui", false),
			Key:        key,
			Op:         op,
			PromptText: promptText,
			Silent:     silent,
		})
	}
	return plugins, nil
}

// PluginResult is what the controller reads back from the shared temp file
// after a non-GUI plugin exits (spec.md 4.6's operation codes 1/2).
type PluginResult struct {
	Chdir       string
	FocusedName string
}

// RunPlugin invokes p's script with the current entry name, a temp file
// listing selected paths, and an optional user-provided text argument
// (spec.md 4.6: "the script receives: current entry name, a temp-file
// listing selected files, and the optional user-provided text"). GUI
// plugins are spawned detached with stdout/stderr discarded, matching the
// original's setsid()+dup2(/dev/null) branch, and this returns immediately
// with a zero PluginResult. Non-GUI plugins inherit the real terminal
// (they may draw their own UI) and block until exit; suspend wraps the
// blocking run in the caller's terminal teardown/rebuild unless p.Silent
// is set, matching the original's "if(!silent) tb_shutdown()/tb_init()"
// around its fork+exec. cwd is the directory the script's process runs in
// (the focused pane's path), independent of any chdir directive it writes
// back.
func RunPlugin(p Plugin, currentName string, selectedPaths []string, userText string, cwd string, suspend func(func() error) error) (PluginResult, error) {
	tmp, err := os.CreateTemp("", "minase-plugin-*")
	if err != nil {
		return PluginResult{}, Wrap(KindEnvironment, "RunPlugin", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	for _, p := range selectedPaths {
		tmp.WriteString(p)
		tmp.WriteString("\n")
	}
	tmp.Close()

	args := []string{currentName, tmpPath}
	if userText != "" {
		args = append(args, userText)
	}

	if p.GUI {
		cmd, err := procexec.Command(p.FilePath, args...)
		if err != nil {
			return PluginResult{}, err
		}
		go cmd.Output(context.Background())
		return PluginResult{}, nil
	}

	cmd, err := procexecCommandArgsDir(p.FilePath, args, cwd)
	if err != nil {
		return PluginResult{}, err
	}
	if suspend == nil {
		suspend = func(run func() error) error { return run() }
	}
	if p.Silent {
		err = cmd.run()
	} else {
		err = suspend(cmd.run)
	}
	if err != nil {
		return PluginResult{}, Wrap(KindTransient, "RunPlugin", err)
	}
	if p.Op == PluginOpNone {
		return PluginResult{}, nil
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return PluginResult{}, nil
	}
	line := strings.SplitN(strings.TrimRight(string(data), "\n"), "\n", 2)[0]
	if line == "" {
		return PluginResult{}, nil
	}

	result := PluginResult{}
	switch p.Op {
	case PluginOpChdir:
		// op '1': the whole line is the directory to chdir to verbatim.
		result.Chdir = line
	case PluginOpChdirFocus:
		// op '2': one path line, split into directory and entry name --
		// "/etc/hosts" chdirs to "/etc" and focuses "hosts"; a bare name
		// with no directory component (filepath.Dir returns ".") stays in
		// the current directory and only repositions the cursor.
		dir, base := filepath.Dir(line), filepath.Base(line)
		if dir != "." {
			result.Chdir = dir
		}
		result.FocusedName = base
	}
	return result, nil
}

// pluginShortcut maps a tui key event to the Alt-prefixed plugin shortcut
// slot it occupies, per spec.md 4.6 "modifier-ALT prefix dispatches plugin
// shortcuts" -- Alt+letter events are reported as AltA..AltZ by the
// terminal backend.
func pluginShortcut(evt tui.Event) (rune, bool) {
	if evt.Type < tui.AltA || evt.Type > tui.AltZ {
		return 0, false
	}
	return rune('a' + (evt.Type - tui.AltA)), true
}
