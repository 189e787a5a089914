package config

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/dshills/linedit/internal/renderer/backend"
)

// Built-in defaults.
const (
	DefaultInitialCapacity = 256
	DefaultStatusTimeout   = time.Second
	DefaultDebounce        = 100 * time.Millisecond
)

// The section accessors return copies; use Set to change a value.

// EditorConfig provides type-safe access to editor settings.
type EditorConfig struct {
	// InitialCapacity is the number of line slots allocated up front.
	InitialCapacity int

	// StatusTimeout is how long status messages stay visible.
	StatusTimeout time.Duration
}

// LoggingConfig provides type-safe access to logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string

	// File is the log file path. Empty discards logs.
	File string
}

// KeysConfig provides type-safe access to key bindings.
type KeysConfig struct {
	// Save lists the key names that save the document.
	Save []string

	// Quit lists the key names that exit the editor.
	Quit []string
}

// WatchConfig provides type-safe access to file watching settings.
type WatchConfig struct {
	// Enabled turns on detection of external changes to the open file.
	Enabled bool

	// Debounce coalesces bursts of file system events.
	Debounce time.Duration
}

// Editor returns type-safe access to editor settings.
func (c *Config) Editor() EditorConfig {
	return EditorConfig{
		InitialCapacity: setting(c, "editor.initialCapacity", DefaultInitialCapacity, c.GetInt),
		StatusTimeout:   setting(c, "editor.statusTimeout", DefaultStatusTimeout, c.GetDuration),
	}
}

// Logging returns type-safe access to logging settings.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: setting(c, "logging.level", "info", c.GetString),
		File:  setting(c, "logging.file", "", c.GetString),
	}
}

// Keys returns type-safe access to key bindings.
func (c *Config) Keys() KeysConfig {
	return KeysConfig{
		Save: setting(c, "keys.save", []string{"ctrl+s", "ctrl+w"}, c.GetStringSlice),
		Quit: setting(c, "keys.quit", []string{"esc"}, c.GetStringSlice),
	}
}

// Watch returns type-safe access to file watching settings.
func (c *Config) Watch() WatchConfig {
	return WatchConfig{
		Enabled:  setting(c, "watch.enabled", true, c.GetBool),
		Debounce: setting(c, "watch.debounce", DefaultDebounce, c.GetDuration),
	}
}

// setting reads path with get, falling back to def. A value of the wrong
// type also yields def and is remembered for ConfigErrors.
func setting[T any](c *Config, path string, def T, get func(string) (T, error)) T {
	v, err := get(path)
	if err == nil {
		return v
	}
	if !errors.Is(err, ErrSettingNotFound) {
		c.mu.Lock()
		if c.configErrors == nil {
			c.configErrors = map[string]error{}
		}
		if c.configErrors[path] == nil {
			c.configErrors[path] = err
		}
		c.mu.Unlock()
	}
	return def
}

// ConfigErrors returns any configuration errors encountered during access.
func (c *Config) ConfigErrors() map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.configErrors) == 0 {
		return nil
	}
	return maps.Clone(c.configErrors)
}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// validate checks the merged settings map (must hold lock). The first
// problem found is returned.
func (c *Config) validate(m map[string]any) error {
	if v, ok := getPath(m, "editor.initialCapacity"); ok {
		n, err := asInt("editor.initialCapacity", v)
		if err != nil {
			return err
		}
		if n < 1 {
			return &ValidationError{Path: "editor.initialCapacity", Message: "must be at least 1", Value: n}
		}
	}

	for _, path := range []string{"editor.statusTimeout", "watch.debounce"} {
		v, ok := getPath(m, path)
		if !ok {
			continue
		}
		d, err := asDuration(path, v)
		if err != nil {
			return err
		}
		if d < 0 {
			return &ValidationError{Path: path, Message: "must not be negative", Value: d}
		}
	}

	if v, ok := getPath(m, "logging.level"); ok {
		level, err := asString("logging.level", v)
		if err != nil {
			return err
		}
		if !slices.ContainsFunc(logLevels, func(l string) bool { return strings.EqualFold(l, level) }) {
			return &ValidationError{Path: "logging.level", Message: "must be one of " + strings.Join(logLevels, ", "), Value: level}
		}
	}

	if v, ok := getPath(m, "watch.enabled"); ok {
		if _, err := asBool("watch.enabled", v); err != nil {
			return err
		}
	}
	if v, ok := getPath(m, "logging.file"); ok {
		if _, err := asString("logging.file", v); err != nil {
			return err
		}
	}

	return validateKeys(m)
}

// validateKeys checks that every bound key name parses and that no key
// is bound to both save and quit.
func validateKeys(m map[string]any) error {
	bound := make(map[backend.Key]string)
	for _, path := range []string{"keys.save", "keys.quit"} {
		v, ok := getPath(m, path)
		if !ok {
			continue
		}
		names, err := asStringSlice(path, v)
		if err != nil {
			return err
		}
		for _, name := range names {
			k, err := backend.ParseKey(name)
			if err != nil {
				return &ValidationError{Path: path, Message: err.Error(), Value: name}
			}
			if other, dup := bound[k]; dup && other != path {
				return &ValidationError{Path: path, Message: "key also bound in " + other, Value: name}
			}
			bound[k] = path
		}
	}
	return nil
}
