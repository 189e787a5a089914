package vfs

import (
	"io"
	"io/fs"
	"os"
)

// OSFS is the host file system.
type OSFS struct{}

var _ FS = OSFS{}

// NewOSFS returns the host file system.
func NewOSFS() OSFS { return OSFS{} }

func (OSFS) Open(path string) (io.ReadCloser, error) { return os.Open(path) }

func (OSFS) Create(path string) (io.WriteCloser, error) { return os.Create(path) }

func (OSFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }
