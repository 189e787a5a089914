// Package textfile reads and writes documents as sequences of lines.
//
// The format is plain text with every line terminated by '\n', the last
// line included. Only '\n' is treated as a separator; '\r' is kept as
// ordinary content.
package textfile

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/dshills/linedit/internal/vfs"
)

// ReadLines reads path and returns its lines with the '\n' separators
// removed. An empty file yields an empty slice.
func ReadLines(fsys vfs.FS, path string) ([]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	r := bufio.NewReader(f)
	lines := []string{}
	for {
		s, err := r.ReadString('\n')
		if len(s) > 0 {
			lines = append(lines, strings.TrimSuffix(s, "\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
	}
	return lines, nil
}

// WriteLines creates or truncates path and writes each line followed by
// '\n'. The file is durable only when WriteLines returns nil.
func WriteLines(fsys vfs.FS, path string, lines []string) (err error) {
	f, err := fsys.Create(path)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &SaveError{Path: path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return &SaveError{Path: path, Err: err}
		}
		if err := w.WriteByte('\n'); err != nil {
			return &SaveError{Path: path, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}
