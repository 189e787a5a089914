// Package vfs provides a virtual file system abstraction.
//
// The FS interface allows swapping the underlying file system implementation,
// enabling tests to run against an in-memory file system.
package vfs

import (
	"io"
	"io/fs"
)

// FS is the subset of file system operations the editor needs.
type FS interface {
	// Open opens a file for reading.
	Open(path string) (io.ReadCloser, error)

	// Create creates or truncates a file for writing.
	// Data is durable only after Close returns nil.
	Create(path string) (io.WriteCloser, error)

	// Stat returns file information.
	Stat(path string) (fs.FileInfo, error)
}
