// Package loader reads configuration sources into nested maps that the
// config package merges and decodes.
//
// Files are read through a vfs.FS and decoded by a Format (TOML or
// YAML). Environment variables are read by EnvLoader.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/dshills/linedit/internal/vfs"
)

// Loader reads one configuration source.
type Loader interface {
	// Load returns the source as a nested map. A source that does not
	// exist yields nil, nil.
	Load() (map[string]any, error)
}

// Format decodes one configuration file syntax.
type Format interface {
	// Name returns the format name, e.g. "toml".
	Name() string

	// Decode parses data read from source. Syntax errors are returned as
	// *ParseError.
	Decode(source string, data []byte) (map[string]any, error)
}

// Extensions lists the config file extensions in lookup order.
var Extensions = []string{".toml", ".yaml", ".yml"}

// FormatFor returns the format matching the extension of path. Unknown
// extensions are read as TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return TOML
	}
}

// FileLoader loads a configuration file.
type FileLoader struct {
	fs     vfs.FS
	path   string
	format Format
}

// NewFileLoader returns a loader for path in the given format.
func NewFileLoader(fsys vfs.FS, path string, format Format) *FileLoader {
	return &FileLoader{fs: fsys, path: path, format: format}
}

// ForPath returns a loader for path with the format picked by FormatFor.
func ForPath(fsys vfs.FS, path string) *FileLoader {
	return NewFileLoader(fsys, path, FormatFor(path))
}

// Path returns the file the loader reads.
func (l *FileLoader) Path() string {
	return l.path
}

// Format returns the format the loader decodes.
func (l *FileLoader) Format() Format {
	return l.format
}

// Load reads and decodes the file. A missing file yields nil, nil.
func (l *FileLoader) Load() (map[string]any, error) {
	f, err := l.fs.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", l.path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", l.path, err)
	}
	return l.format.Decode(l.path, data)
}

// LoadReader decodes configuration from r in the given format.
func LoadReader(r io.Reader, format Format) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return format.Decode("<reader>", data)
}

var _ Loader = (*FileLoader)(nil)
