package minase

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// colorRule is either a "normal" single-regex rule or a "surround" rule
// bounded by start/end regexes (spec.md 4.5: "A colour rule is either a
// single regex (normal) or a pair start=…/end=… (surround) producing a run
// of coloured characters between the two matches (end-of-input terminates
// an unmatched surround)").
type colorRule struct {
	state      ansiState
	pattern    *regexp.Regexp // normal
	start, end *regexp.Regexp // surround
}

func (r colorRule) isSurround() bool { return r.start != nil }

// syntaxRule is one named nano-style rule set: a name, filename-match
// regexes, and an ordered list of colour rules.
type syntaxRule struct {
	Name    string
	FileRes []*regexp.Regexp
	Rules   []colorRule
}

func (r *syntaxRule) displayName() string {
	if r == nil || r.Name == "" {
		return "Plain Text"
	}
	return r.Name
}

func (r *syntaxRule) matchesFile(name string) bool {
	for _, re := range r.FileRes {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// SyntaxHighlighter applies nano-style colour rules to a text buffer: a
// pure, non-interactive transformation that honours an externally-provided
// cancel flag between rules (spec.md 4.5).
type SyntaxHighlighter struct {
	rules []*syntaxRule
}

// NewSyntaxHighlighter loads every *.nanorc file from dir. A missing or
// unreadable directory yields an empty rule set (every preview then falls
// back to "Plain Text"), matching spec.md 7's policy that preview failures
// silently fall through rather than abort.
func NewSyntaxHighlighter(dir string) *SyntaxHighlighter {
	h := &SyntaxHighlighter{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return h
	}
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".nanorc") {
			continue
		}
		if rules, err := parseNanorcFile(filepath.Join(dir, ent.Name())); err == nil {
			h.rules = append(h.rules, rules...)
		}
	}
	return h
}

// RuleFor returns the first rule set whose file-match regexes accept name,
// or a nil rule (rendered as "Plain Text", no colouring applied).
func (h *SyntaxHighlighter) RuleFor(name string) *syntaxRule {
	for _, r := range h.rules {
		if r.matchesFile(name) {
			return r
		}
	}
	return nil
}

// Apply colours lines according to rule, inserting ANSI SGR escapes so each
// character's foreground/background reflects the last winning rule (spec.md
// 4.5). job's cancel flag is polled between rules. A nil rule (no match, or
// no nanorc directory) returns lines unchanged.
func (h *SyntaxHighlighter) Apply(rule *syntaxRule, lines []string, job *PreviewJob) []string {
	if rule == nil || len(rule.Rules) == 0 {
		return lines
	}
	out := make([]string, len(lines))
	copy(out, lines)
	for _, cr := range rule.Rules {
		if job != nil && job.Cancelled() {
			return out
		}
		for i, line := range out {
			if cr.isSurround() {
				out[i] = applySurroundRule(line, cr)
			} else {
				out[i] = applyNormalRule(line, cr)
			}
		}
	}
	return out
}

func applyNormalRule(line string, cr colorRule) string {
	locs := cr.pattern.FindAllStringIndex(line, -1)
	if locs == nil {
		return line
	}
	var b strings.Builder
	prev := 0
	escape := cr.state.ToString()
	for _, loc := range locs {
		b.WriteString(line[prev:loc[0]])
		b.WriteString(escape)
		b.WriteString(line[loc[0]:loc[1]])
		b.WriteString(ansiReset)
		prev = loc[1]
	}
	b.WriteString(line[prev:])
	return b.String()
}

func applySurroundRule(line string, cr colorRule) string {
	startLoc := cr.start.FindStringIndex(line)
	if startLoc == nil {
		return line
	}
	escape := cr.state.ToString()
	endLoc := cr.end.FindStringIndex(line[startLoc[1]:])
	var b strings.Builder
	b.WriteString(line[:startLoc[0]])
	b.WriteString(escape)
	if endLoc == nil {
		// end-of-input terminates an unmatched surround (spec.md 4.5).
		b.WriteString(line[startLoc[0]:])
		b.WriteString(ansiReset)
		return b.String()
	}
	absEnd := startLoc[1] + endLoc[1]
	b.WriteString(line[startLoc[0]:absEnd])
	b.WriteString(ansiReset)
	b.WriteString(line[absEnd:])
	return b.String()
}

// parseNanorcFile parses a small, practical subset of the nanorc format:
//
//	syntax "name" "file-regex" ["file-regex" ...]
//	color colorname "pattern"
//	color colorname start="pattern" end="pattern"
//
// Each `syntax` line starts a new rule set; `color` lines belong to the
// most recently seen `syntax` line. Unknown directives are ignored.
func parseNanorcFile(path string) ([]*syntaxRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rules []*syntaxRule
	var current *syntaxRule

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := splitQuoted(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "syntax":
			if len(fields) < 2 {
				continue
			}
			current = &syntaxRule{Name: fields[1]}
			for _, pat := range fields[2:] {
				if re, err := regexp.Compile(pat); err == nil {
					current.FileRes = append(current.FileRes, re)
				}
			}
			rules = append(rules, current)
		case "color":
			if current == nil || len(fields) < 3 {
				continue
			}
			fg, bg := splitFgBg(fields[1])
			state := ansiState{fg: fg, bg: bg}
			if strings.HasPrefix(fields[2], "start=") {
				start := strings.TrimPrefix(fields[2], "start=")
				end := ""
				if len(fields) >= 4 && strings.HasPrefix(fields[3], "end=") {
					end = strings.TrimPrefix(fields[3], "end=")
				}
				sre, err1 := regexp.Compile(start)
				ere, err2 := regexp.Compile(end)
				if err1 == nil && err2 == nil {
					current.Rules = append(current.Rules, colorRule{state: state, start: sre, end: ere})
				}
			} else {
				if re, err := regexp.Compile(fields[2]); err == nil {
					current.Rules = append(current.Rules, colorRule{state: state, pattern: re})
				}
			}
		}
	}
	return rules, scanner.Err()
}

// splitFgBg parses nano's "fg,bg" colour spec into palette indices, either
// side optional.
func splitFgBg(spec string) (fg, bg int) {
	parts := strings.SplitN(spec, ",", 2)
	fg, bg = -1, -1
	if len(parts) > 0 && parts[0] != "" {
		fg = parseColorName(parts[0])
	}
	if len(parts) > 1 && parts[1] != "" {
		bg = parseColorName(parts[1])
	}
	return
}

// splitQuoted tokenizes a line on whitespace while keeping double-quoted
// segments intact, the way nanorc's own directive syntax requires. A
// backslash keeps the following character literal (so `\"` stays in the
// pattern instead of closing the quote).
func splitQuoted(line string) []string {
	var fields []string
	var b strings.Builder
	inQuote := false
	escaped := false
	flush := func() {
		if b.Len() > 0 {
			fields = append(fields, b.String())
			b.Reset()
		}
	}
	for _, r := range line {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			b.WriteRune(r)
			escaped = true
		case r == '"':
			inQuote = !inQuote
		case r == ' ' && !inQuote:
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return fields
}
