// Package watcher reports external changes to the file being edited.
//
// A FileWatcher watches the directory that contains the file, because
// editors and tools often replace files by rename, and forwards only
// events for that file. Rapid changes are coalesced into one event.
package watcher

import (
	"errors"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrPathNotExist is returned when the file to watch does not exist.
var ErrPathNotExist = errors.New("path does not exist")

// DefaultDebounce is the default coalescing delay.
const DefaultDebounce = 100 * time.Millisecond

// Op is a set of file system operations.
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

var ops = [...]struct {
	op   Op
	fs   fsnotify.Op
	name string
}{
	{OpCreate, fsnotify.Create, "CREATE"},
	{OpWrite, fsnotify.Write, "WRITE"},
	{OpRemove, fsnotify.Remove, "REMOVE"},
	{OpRename, fsnotify.Rename, "RENAME"},
	{OpChmod, fsnotify.Chmod, "CHMOD"},
}

// String joins the names of the operations in op with "|".
func (op Op) String() string {
	var names []string
	for _, o := range ops {
		if op.Has(o.op) {
			names = append(names, o.name)
		}
	}
	if names == nil {
		return "UNKNOWN"
	}
	return strings.Join(names, "|")
}

// Has reports whether op includes every operation in o.
func (op Op) Has(o Op) bool {
	return op&o == o
}

func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	for _, o := range ops {
		if fsOp.Has(o.fs) {
			op |= o.op
		}
	}
	return op
}

// Event is a change to the watched file.
type Event struct {
	Path string

	// Op holds every operation seen during the debounce window.
	Op Op

	// Timestamp is when the last operation was seen.
	Timestamp time.Time
}

// Option configures a FileWatcher.
type Option func(*FileWatcher)

// WithDebounce sets the coalescing delay. Non-positive values keep the default.
func WithDebounce(d time.Duration) Option {
	return func(w *FileWatcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// WithErrorHandler sets a callback for errors reported by fsnotify.
func WithErrorHandler(fn func(error)) Option {
	return func(w *FileWatcher) {
		w.onError = fn
	}
}
