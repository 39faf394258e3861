package minase

import (
	"regexp"
	"strings"
)

// FilterKind selects how DirectoryModel's filter text is interpreted.
type FilterKind int

const (
	FilterSubstring FilterKind = iota
	FilterRegexp
	FilterDict
)

// filterMatcher is compiled once per set_filter call and reused across
// every entry in the directory (spec.md 4.1).
type filterMatcher struct {
	kind    FilterKind
	tokens  []string // SUBSTRING: space-split, upper-cased
	re      *regexp.Regexp
}

// newFilterMatcher compiles text under kind. A REGEXP compile failure
// degrades to always-match rather than erroring (spec.md 4.1: "On
// compilation failure the filter is treated as always-match").
func newFilterMatcher(text string, kind FilterKind) *filterMatcher {
	m := &filterMatcher{kind: kind}
	switch kind {
	case FilterRegexp, FilterDict:
		if re, err := regexp.Compile("(?is)" + text); err == nil {
			m.re = re
		}
	default:
		fields := strings.Fields(strings.ToUpper(text))
		m.tokens = fields
	}
	return m
}

// Match reports whether name satisfies the compiled filter.
func (m *filterMatcher) Match(name string) bool {
	switch m.kind {
	case FilterRegexp, FilterDict:
		if m.re == nil {
			return true
		}
		return m.re.MatchString(name)
	default:
		upper := strings.ToUpper(name)
		for _, tok := range m.tokens {
			if !strings.Contains(upper, tok) {
				return false
			}
		}
		return true
	}
}
