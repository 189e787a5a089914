// Package editor holds the state of one editing session and applies
// editing actions to it.
//
// A Session owns the line buffer, the cursor and the text viewport.
// Every call to Dispatch finishes by clamping the cursor, so movement
// actions may push the cursor out of range and rely on that clamp.
package editor

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/linedit/internal/engine/cursor"
	"github.com/dshills/linedit/internal/engine/linebuffer"
	"github.com/dshills/linedit/internal/renderer/viewport"
	"github.com/dshills/linedit/internal/textfile"
	"github.com/dshills/linedit/internal/vfs"
)

// Status messages shown after a save.
const (
	MsgSaved      = "File saved successfully"
	MsgSaveFailed = "ERROR: Failed to save file"
)

// Session is one open document with its cursor and viewport.
// It is not safe for concurrent use.
type Session struct {
	// ID identifies the session in logs.
	ID uuid.UUID

	// Path is the file the session loads from and saves to.
	Path string

	// Name is the display name.
	Name string

	Buffer   *linebuffer.Buffer
	Cursor   cursor.Cursor
	Viewport *viewport.Viewport

	fs              vfs.FS
	initialCapacity int
	modified        bool

	status        string
	statusExpiry  time.Time
	statusTimeout time.Duration
	now           func() time.Time

	diskModTime time.Time
}

func newSession(path string, opts ...Option) *Session {
	s := &Session{
		ID:              uuid.New(),
		Path:            path,
		Name:            filepath.Base(path),
		Viewport:        viewport.NewViewport(80, 24),
		fs:              vfs.NewOSFS(),
		initialCapacity: linebuffer.DefaultInitialCapacity,
		statusTimeout:   DefaultStatusTimeout,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if path == "" {
		s.Name = "[No Name]"
	}
	return s
}

// Open loads path and returns a session positioned at the top of the
// document. Load failures are returned as *textfile.LoadError.
func Open(path string, opts ...Option) (*Session, error) {
	s := newSession(path, opts...)

	lines, err := textfile.ReadLines(s.fs, path)
	if err != nil {
		return nil, err
	}
	s.Buffer = linebuffer.Load(lines, linebuffer.WithInitialCapacity(s.initialCapacity))
	if info, err := s.fs.Stat(path); err == nil {
		s.diskModTime = info.ModTime()
	}
	s.clamp()
	return s, nil
}

// New returns a session over lines without touching the file system.
func New(path string, lines []string, opts ...Option) *Session {
	s := newSession(path, opts...)
	s.Buffer = linebuffer.Load(lines, linebuffer.WithInitialCapacity(s.initialCapacity))
	s.clamp()
	return s
}

// Dispatch applies action to the session and then clamps the cursor.
// ch is only used by ActionInsert; characters outside printable ASCII
// are ignored. ActionQuit returns ErrQuit. A failed save returns a
// *textfile.SaveError and leaves the document untouched.
func (s *Session) Dispatch(action Action, ch byte) error {
	err := s.apply(action, ch)
	s.clamp()
	return err
}

func (s *Session) apply(action Action, ch byte) error {
	c := &s.Cursor

	switch action {
	case ActionNone:
		return nil

	case ActionMoveUp:
		c.MoveUp()
	case ActionMoveDown:
		c.MoveDown()
	case ActionMoveLeft:
		c.MoveLeft()
	case ActionMoveRight:
		c.MoveRight()

	case ActionInsert:
		if !Printable(ch) {
			return nil
		}
		if err := s.Buffer.InsertChar(c.Row, c.Column, ch); err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		c.MoveRight()
		s.modified = true

	case ActionBackspace:
		row, col, err := s.Buffer.DeleteCharBefore(c.Row, c.Column)
		if err != nil {
			return fmt.Errorf("backspace: %w", err)
		}
		if row != c.Row || col != c.Column {
			s.modified = true
		}
		c.MoveTo(row, col)

	case ActionDelete:
		atEnd := c.Row == s.Buffer.LineCount()-1 && c.Column == s.Buffer.LineLen(c.Row)
		if err := s.Buffer.DeleteCharAt(c.Row, c.Column); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		if !atEnd {
			s.modified = true
		}

	case ActionNewline:
		row, err := s.Buffer.SplitLine(c.Row, c.Column)
		if err != nil {
			return fmt.Errorf("newline: %w", err)
		}
		c.MoveTo(row, 0)
		s.modified = true

	case ActionSave:
		return s.Save()

	case ActionQuit:
		return ErrQuit

	default:
		return fmt.Errorf("%w: %d", ErrUnknownAction, action)
	}
	return nil
}

// Save writes the buffer to Path and sets the status message.
func (s *Session) Save() error {
	if err := textfile.WriteLines(s.fs, s.Path, s.Buffer.Serialize()); err != nil {
		s.SetStatus(MsgSaveFailed)
		return err
	}
	s.modified = false
	if info, err := s.fs.Stat(s.Path); err == nil {
		s.diskModTime = info.ModTime()
	}
	s.SetStatus(MsgSaved)
	return nil
}

// Resize sets the text viewport size and re-clamps the cursor.
func (s *Session) Resize(width, height int) {
	s.Viewport.Resize(width, height)
	s.clamp()
}

func (s *Session) clamp() {
	w, h := s.Viewport.Size()
	s.Cursor.Clamp(s.Buffer, h, w)
}

// Frame returns the visible part of the document.
func (s *Session) Frame() viewport.Frame {
	return s.Viewport.Frame(s.Buffer, s.Cursor)
}

// Modified reports whether the buffer has changed since load or the
// last successful save.
func (s *Session) Modified() bool {
	return s.modified
}

// SetStatus shows msg until the status timeout elapses.
func (s *Session) SetStatus(msg string) {
	s.status = msg
	s.statusExpiry = s.now().Add(s.statusTimeout)
}

// Status returns the current status message, if one is still active.
func (s *Session) Status() (string, bool) {
	if s.status == "" || !s.now().Before(s.statusExpiry) {
		return "", false
	}
	return s.status, true
}

// StatusTimeout returns how long status messages stay visible.
func (s *Session) StatusTimeout() time.Duration {
	return s.statusTimeout
}

// CheckDisk reports whether the file on disk is newer than the version
// last loaded or saved. A detected change is remembered so it is only
// reported once.
func (s *Session) CheckDisk() (bool, error) {
	info, err := s.fs.Stat(s.Path)
	if err != nil {
		return false, err
	}
	if !info.ModTime().After(s.diskModTime) {
		return false, nil
	}
	s.diskModTime = info.ModTime()
	return true, nil
}
