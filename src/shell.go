package minase

import (
	"strings"

	"github.com/mattn/go-shellwords"
)

// shellwordsSplit tokenizes a command line the way `$SHELL -c` would,
// grounded on the teacher's `src/options.go` use of
// `github.com/mattn/go-shellwords` for splitting `--bind` action strings.
// Used here for the editor and opener command lines (spec.md 4.6, 6).
func shellwordsSplit(line string) ([]string, error) {
	return shellwords.Parse(line)
}

// substitutePlaceholder fills a user-typed "open with" command template the
// way the teacher's src/command.go fills a preview/execute command: a "{}"
// token stands for the target path, and a template with no token gets the
// quoted path appended so a bare command name still receives an argument.
func substitutePlaceholder(template, path string) string {
	quoted := "'" + strings.ReplaceAll(path, "'", `'\''`) + "'"
	if strings.Contains(template, "{}") {
		return strings.ReplaceAll(template, "{}", quoted)
	}
	return template + " " + quoted
}
