// Package linebuffer provides the line-oriented text buffer used by the
// editor. A document is held as an ordered sequence of mutable byte lines,
// indexed from zero, with no line terminators stored.
//
// The package provides:
//
//   - Line: an owned, growable byte sequence whose capacity doubles on demand
//   - Buffer: an owned, growable sequence of lines whose capacity doubles on demand
//   - Character insert/delete, line split and line merge primitives
//   - Load/Serialize for the persistence collaborator
//
// Invariants:
//
// A Buffer always holds at least one line. An empty document is a single
// empty line, both right after Load of an empty sequence and after every
// line has been merged away.
//
// Every mutating operation validates its indices before touching any state.
// An invalid row or column yields an error wrapping ErrOutOfRange and leaves
// the buffer exactly as it was.
//
// Text is treated as single-byte characters; no Unicode awareness is
// attempted.
//
// Thread Safety:
//
// Buffer is not safe for concurrent use. It is owned by a single editing
// session and mutated only from the event loop.
package linebuffer
