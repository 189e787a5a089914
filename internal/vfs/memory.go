package vfs

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// Op names a file system operation for fault injection.
type Op string

// Operations that can be made to fail with MemFS.FailOn.
const (
	OpOpen   Op = "open"
	OpCreate Op = "create"
	OpWrite  Op = "write"
	OpClose  Op = "close"
	OpStat   Op = "stat"
)

// MemFS implements FS using an in-memory file system.
// It is primarily used for testing.
//
// MemFS is safe for concurrent use.
type MemFS struct {
	mu       sync.RWMutex
	files    map[string]*memFile
	failures map[Op]error
	clock    time.Time
}

type memFile struct {
	content []byte
	modTime time.Time
}

// NewMemFS creates a new in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{
		files:    make(map[string]*memFile),
		failures: make(map[Op]error),
		clock:    time.Unix(0, 0),
	}
}

// Ensure MemFS implements FS.
var _ FS = (*MemFS)(nil)

// Open opens a file for reading.
func (m *MemFS) Open(filePath string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	if err := m.failures[OpOpen]; err != nil {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: err}
	}

	f, ok := m.files[filePath]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(f.content)), nil
}

// Create creates or truncates a file for writing. Content becomes visible
// when the writer is closed.
func (m *MemFS) Create(filePath string) (io.WriteCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	if err := m.failures[OpCreate]; err != nil {
		return nil, &fs.PathError{Op: "create", Path: filePath, Err: err}
	}
	return &memWriter{fs: m, path: filePath}, nil
}

// Stat returns file information.
func (m *MemFS) Stat(filePath string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	if err := m.failures[OpStat]; err != nil {
		return nil, &fs.PathError{Op: "stat", Path: filePath, Err: err}
	}

	f, ok := m.files[filePath]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
	}
	return memFileInfo{
		name:    path.Base(filePath),
		size:    int64(len(f.content)),
		modTime: f.modTime,
	}, nil
}

// AddFile is a convenience method for adding files during setup.
func (m *MemFS) AddFile(filePath string, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store(cleanPath(filePath), []byte(content))
}

// Content returns the content of a file and whether it exists.
func (m *MemFS) Content(filePath string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[cleanPath(filePath)]
	if !ok {
		return "", false
	}
	return string(f.content), true
}

// Files returns all file paths in the file system.
func (m *MemFS) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]string, 0, len(m.files))
	for f := range m.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// FailOn makes every later op fail with err. A nil err clears the fault.
func (m *MemFS) FailOn(op Op, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err == nil {
		delete(m.failures, op)
		return
	}
	m.failures[op] = err
}

func (m *MemFS) failure(op Op) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.failures[op]
}

// store writes content with a fresh, strictly increasing mod time.
// The caller holds the write lock.
func (m *MemFS) store(filePath string, content []byte) {
	m.clock = m.clock.Add(time.Second)
	data := make([]byte, len(content))
	copy(data, content)
	m.files[filePath] = &memFile{content: data, modTime: m.clock}
}

// cleanPath normalizes a path.
func cleanPath(p string) string {
	p = path.Clean(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// memWriter implements io.WriteCloser for MemFS.Create().
// A failed write poisons the writer so Close does not commit.
type memWriter struct {
	fs   *MemFS
	path string
	buf  bytes.Buffer
	err  error
}

func (w *memWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if err := w.fs.failure(OpWrite); err != nil {
		w.err = &fs.PathError{Op: "write", Path: w.path, Err: err}
		return 0, w.err
	}
	return w.buf.Write(p)
}

func (w *memWriter) Close() error {
	if w.err != nil {
		return w.err
	}
	if err := w.fs.failure(OpClose); err != nil {
		return &fs.PathError{Op: "close", Path: w.path, Err: err}
	}
	w.fs.mu.Lock()
	defer w.fs.mu.Unlock()
	w.fs.store(w.path, w.buf.Bytes())
	return nil
}

// memFileInfo implements fs.FileInfo for MemFS files.
type memFileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (fi memFileInfo) Name() string       { return fi.name }
func (fi memFileInfo) Size() int64        { return fi.size }
func (fi memFileInfo) Mode() fs.FileMode  { return 0644 }
func (fi memFileInfo) ModTime() time.Time { return fi.modTime }
func (fi memFileInfo) IsDir() bool        { return false }
func (fi memFileInfo) Sys() any           { return nil }
