package minase

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// parseIniSection reads an INI-format file and returns the key/value pairs
// under section, with keys and values trimmed (keys keep their case). Grounded on the *shape*
// of the teacher's src/options.go manual token-by-token flag parser
// (switch over recognized keys, typed setters) rather than on a third-party
// INI library -- none of gopkg.in/ini.v1, go-ini/ini, BurntSushi/toml
// appears as a direct dependency anywhere in the retrieved pack (see
// DESIGN.md).
func parseIniSection(path string, section string) (map[string]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, Wrap(KindEnvironment, "parseIniSection", err)
	}
	defer f.Close()

	out := map[string]string{}
	current := ""
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			continue
		}
		if current != section {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out, nil
}

// parseIniSections splits a multi-section INI file (the plugin manifest, which
// has one section per plugin rather than one named section) into
// section-name -> key/value map.
func parseIniSections(path string) (map[string]map[string]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return map[string]map[string]string{}, nil
	}
	if err != nil {
		return nil, Wrap(KindEnvironment, "parseIniSections", err)
	}
	defer f.Close()

	out := map[string]map[string]string{}
	current := ""
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			out[current] = map[string]string{}
			continue
		}
		if current == "" {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		out[current][strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out, nil
}

func iniBool(m map[string]string, key string, def bool) bool {
	v, ok := m[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func iniInt(m map[string]string, key string, def int) int {
	v, ok := m[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func iniString(m map[string]string, key string, def string) string {
	v, ok := m[key]
	if !ok || v == "" {
		return def
	}
	return v
}
