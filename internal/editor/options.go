package editor

import (
	"time"

	"github.com/dshills/linedit/internal/vfs"
)

// DefaultStatusTimeout is how long a status message stays visible.
const DefaultStatusTimeout = time.Second

// Option configures a Session.
type Option func(*Session)

// WithFS sets the file system used for load, save and disk checks.
func WithFS(fsys vfs.FS) Option {
	return func(s *Session) {
		s.fs = fsys
	}
}

// WithInitialCapacity sets the initial line capacity of the buffer.
func WithInitialCapacity(n int) Option {
	return func(s *Session) {
		s.initialCapacity = n
	}
}

// WithStatusTimeout sets how long status messages remain visible.
func WithStatusTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.statusTimeout = d
		}
	}
}

// WithViewportSize sets the initial text viewport size.
func WithViewportSize(width, height int) Option {
	return func(s *Session) {
		s.Viewport.Resize(width, height)
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}
