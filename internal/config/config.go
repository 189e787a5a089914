package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dshills/linedit/internal/config/loader"
	"github.com/dshills/linedit/internal/vfs"
)

// layer is one named source of settings.
type layer struct {
	name string
	data map[string]any
}

// Config provides unified access to the linedit configuration.
type Config struct {
	mu sync.RWMutex

	// Ordered lowest to highest priority.
	layers []layer

	// Set by Config.Set; always the top layer.
	overrides map[string]any

	fs            vfs.FS
	configFile    string
	userConfigDir string
	envPrefix     string

	// source is the config file actually loaded, if any.
	source string

	configErrors map[string]error
}

// Option configures a Config instance.
type Option func(*Config)

// WithConfigFile loads settings from path instead of searching the user
// config directory. A missing file is an error.
func WithConfigFile(path string) Option {
	return func(c *Config) {
		c.configFile = path
	}
}

// WithUserConfigDir sets the user configuration directory.
func WithUserConfigDir(dir string) Option {
	return func(c *Config) {
		c.userConfigDir = dir
	}
}

// WithFileSystem sets the file system config files are read from.
func WithFileSystem(fsys vfs.FS) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// WithEnvPrefix sets the environment variable prefix. An empty prefix
// disables the environment layer.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// New creates a new Config holding only the built-in defaults.
// Call Load to read the config file and environment.
func New(opts ...Option) *Config {
	c := &Config{
		fs:        vfs.NewOSFS(),
		envPrefix: loader.DefaultEnvPrefix,
		overrides: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.userConfigDir == "" {
		c.userConfigDir = defaultUserConfigDir()
	}

	c.layers = []layer{{name: "defaults", data: defaultConfig()}}
	return c
}

// Load loads configuration from all sources and validates the result.
func (c *Config) Load(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.layers = c.layers[:1]
	c.source = ""
	c.configErrors = nil

	if err := c.loadFile(); err != nil {
		return err
	}
	if err := c.loadEnvironment(); err != nil {
		return err
	}

	return c.validate(c.merged())
}

// loadFile loads the explicit config file, or the first config file
// found in the user config directory.
func (c *Config) loadFile() error {
	if c.configFile != "" {
		if _, err := c.fs.Stat(c.configFile); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrFileNotFound, c.configFile)
			}
			return err
		}
		return c.loadFileLayer(c.configFile)
	}

	for _, ext := range loader.Extensions {
		path := filepath.Join(c.userConfigDir, "config"+ext)
		if _, err := c.fs.Stat(path); err != nil {
			continue
		}
		return c.loadFileLayer(path)
	}
	return nil
}

func (c *Config) loadFileLayer(path string) error {
	data, err := loader.ForPath(c.fs, path).Load()
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	c.layers = append(c.layers, layer{name: "file", data: data})
	c.source = path
	return nil
}

// loadEnvironment loads configuration from environment variables.
func (c *Config) loadEnvironment() error {
	if c.envPrefix == "" {
		return nil
	}

	data, err := loader.NewEnvLoader(c.envPrefix).Load()
	if err != nil {
		return err
	}
	if len(data) > 0 {
		c.layers = append(c.layers, layer{name: "environment", data: data})
	}
	return nil
}

// merged returns all layers merged into a new map (must hold lock).
func (c *Config) merged() map[string]any {
	all := make([]map[string]any, 0, len(c.layers)+1)
	for _, l := range c.layers {
		all = append(all, l.data)
	}
	return loader.Merge(append(all, c.overrides)...)
}

// Merged returns a copy of the effective configuration.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.merged()
}

// Source returns the config file that was loaded, or "" if none.
func (c *Config) Source() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source
}

// Layers returns the names of the active layers, lowest priority first.
func (c *Config) Layers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.layers)+1)
	for _, l := range c.layers {
		names = append(names, l.name)
	}
	if len(c.overrides) > 0 {
		names = append(names, "overrides")
	}
	return names
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return getPath(c.merged(), path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	return asString(path, v)
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	return asInt(path, v)
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	return asBool(path, v)
}

// GetDuration returns a duration at the given path. Strings are parsed
// with time.ParseDuration; integers are taken as milliseconds.
func (c *Config) GetDuration(path string) (time.Duration, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	return asDuration(path, v)
}

// GetStringSlice returns a string slice at the given path. A single
// string is returned as a one-element slice.
func (c *Config) GetStringSlice(path string) ([]string, error) {
	v, ok := c.Get(path)
	if !ok {
		return nil, ErrSettingNotFound
	}
	return asStringSlice(path, v)
}

// Set overrides the value at path above every other layer.
func (c *Config) Set(path string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return parsePath(path).store(c.overrides, value)
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.validate(c.merged())
}

// defaultUserConfigDir returns the default user configuration directory.
func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "linedit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "linedit")
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"initialCapacity": DefaultInitialCapacity,
			"statusTimeout":   DefaultStatusTimeout.String(),
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
		"keys": map[string]any{
			"save": []string{"ctrl+s", "ctrl+w"},
			"quit": []string{"esc"},
		},
		"watch": map[string]any{
			"enabled":  true,
			"debounce": DefaultDebounce.String(),
		},
	}
}

// keyPath is a dot-separated setting path such as "watch.debounce".
type keyPath []string

func parsePath(path string) keyPath {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '.' })
}

// lookup walks m along the path.
func (p keyPath) lookup(m map[string]any) (any, bool) {
	if len(p) == 0 {
		return nil, false
	}
	table := m
	for _, key := range p[:len(p)-1] {
		sub, ok := table[key].(map[string]any)
		if !ok {
			return nil, false
		}
		table = sub
	}
	v, ok := table[p[len(p)-1]]
	return v, ok
}

// store writes value at the path, creating intermediate tables.
func (p keyPath) store(m map[string]any, value any) error {
	if len(p) == 0 {
		return ErrInvalidPath
	}
	table := m
	for _, key := range p[:len(p)-1] {
		existing, found := table[key]
		if !found {
			sub := map[string]any{}
			table[key] = sub
			table = sub
			continue
		}
		sub, ok := existing.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s is not a table", ErrInvalidPath, key)
		}
		table = sub
	}
	table[p[len(p)-1]] = value
	return nil
}

func getPath(m map[string]any, path string) (any, bool) {
	return parsePath(path).lookup(m)
}
