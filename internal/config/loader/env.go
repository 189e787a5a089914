package loader

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultEnvPrefix is the prefix of environment variables read by linedit.
const DefaultEnvPrefix = "LINEDIT_"

// EnvLoader builds a settings map from prefixed environment variables.
// Variables with an alias map to a fixed path; the rest are derived from
// the name, so LINEDIT_EDITOR_INITIAL_CAPACITY sets editor.initialCapacity.
type EnvLoader struct {
	prefix  string
	aliases map[string]string
	environ func() []string
}

// NewEnvLoader returns a loader for variables starting with prefix,
// which includes the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	l := &EnvLoader{prefix: prefix, aliases: map[string]string{}, environ: os.Environ}
	for short, path := range map[string]string{
		"LOG_LEVEL":      "logging.level",
		"LOG_FILE":       "logging.file",
		"STATUS_TIMEOUT": "editor.statusTimeout",
		"WATCH":          "watch.enabled",
		"SAVE_KEYS":      "keys.save",
		"QUIT_KEYS":      "keys.quit",
	} {
		l.aliases[prefix+short] = path
	}
	return l
}

// AddMapping makes the variable envVar set configPath.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.aliases[envVar] = configPath
}

// Load returns the settings found in the environment. A variable set to
// the empty string is kept as an empty string.
func (l *EnvLoader) Load() (map[string]any, error) {
	out := map[string]any{}
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, aliased := l.aliases[name]
		if !aliased {
			path = l.envToPath(name)
		}
		if path != "" {
			insert(out, strings.Split(path, "."), parseValue(value))
		}
	}
	return out, nil
}

// envToPath maps PREFIX_SECTION_SOME_KEY to section.someKey.
func (l *EnvLoader) envToPath(env string) string {
	words := strings.Split(strings.ToLower(strings.TrimPrefix(env, l.prefix)), "_")
	if words[0] == "" {
		return ""
	}
	if len(words) == 1 {
		return words[0]
	}

	var key strings.Builder
	key.WriteString(words[1])
	for _, w := range words[2:] {
		if w != "" {
			key.WriteString(strings.ToUpper(w[:1]))
			key.WriteString(w[1:])
		}
	}
	return words[0] + "." + key.String()
}

// parseValue guesses the type of an environment value. Integers only
// parse as floats when written with a decimal point.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "":
		return s
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	if s[0] == '[' || s[0] == '{' {
		var v any
		if json.Unmarshal([]byte(s), &v) == nil {
			return v
		}
	}
	if strings.Contains(s, ",") {
		var list []any
		for _, item := range strings.Split(s, ",") {
			if item = strings.TrimSpace(item); item != "" {
				list = append(list, item)
			}
		}
		return list
	}
	return s
}

func insert(m map[string]any, keys []string, value any) {
	for _, k := range keys[:len(keys)-1] {
		sub, ok := m[k].(map[string]any)
		if !ok {
			sub = map[string]any{}
			m[k] = sub
		}
		m = sub
	}
	m[keys[len(keys)-1]] = value
}
