package minase

import (
	"strconv"
	"strings"
)

// ansiState packs a resolved foreground/background colour pair the way
// SyntaxHighlighter needs to emit it as an SGR escape. Grounded on the
// teacher's ansiState.ToString()/toAnsiString (src/ansi.go): colour names
// map to the standard 30-37 / 90-97 foreground codes, with +10 for
// backgrounds (spec.md 4.5).
type ansiState struct {
	fg int // -1 = unset/default, 0-7 standard, 8-15 bright
	bg int
}

func (s ansiState) colored() bool { return s.fg >= 0 || s.bg >= 0 }

// ToString renders the SGR escape for this colour pair, or "" if neither
// foreground nor background is set.
func (s ansiState) ToString() string {
	if !s.colored() {
		return ""
	}
	var parts []string
	if s.fg >= 0 {
		parts = append(parts, toAnsiCode(s.fg, 30))
	}
	if s.bg >= 0 {
		parts = append(parts, toAnsiCode(s.bg, 40))
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}

// ansiReset restores the terminal to default attributes.
const ansiReset = "\x1b[0m"

func toAnsiCode(color int, offset int) string {
	if color < 8 {
		return strconv.Itoa(offset + color)
	}
	return strconv.Itoa(offset - 30 + 90 + color - 8)
}

// colorNames maps nano-style colour-rule names to the 0-15 palette index
// ToString expects.
var colorNames = map[string]int{
	"black": 0, "red": 1, "green": 2, "yellow": 3,
	"blue": 4, "magenta": 5, "cyan": 6, "white": 7,
	"brightblack": 8, "brightred": 9, "brightgreen": 10, "brightyellow": 11,
	"brightblue": 12, "brightmagenta": 13, "brightcyan": 14, "brightwhite": 15,
}

// parseColorName resolves a name to a palette index, or -1 if unrecognized.
func parseColorName(name string) int {
	if c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return -1
}
