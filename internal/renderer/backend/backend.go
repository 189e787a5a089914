// Package backend provides terminal backend abstraction for the renderer.
//
// A Backend is both the rendering surface the editor draws on and the input
// source it reads key events from.
package backend

import "github.com/dshills/linedit/internal/renderer/core"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventInterrupt carries a value posted from another goroutine.
	EventInterrupt
)

// Event is one input, resize or interrupt notification.
type Event struct {
	Type EventType

	// EventKey: Key, and Rune when Key is KeyRune.
	Key  Key
	Rune rune

	// EventResize: the new screen size.
	Width, Height int

	// EventInterrupt: the posted value.
	Payload any
}

// KeyEvent returns a key event for a special key.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent returns a key event for a printable character.
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// InterruptEvent returns an interrupt event carrying payload.
func InterruptEvent(payload any) Event {
	return Event{Type: EventInterrupt, Payload: payload}
}

// ResizeEvent returns a resize event for a width x height screen.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// Key identifies a key. Printable characters are KeyRune with Event.Rune
// set.
type Key int

// Keys the editor distinguishes. Ctrl+A through Ctrl+Z are contiguous.
const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// Backend is a screen of cells plus the event queue that feeds the editor.
type Backend interface {
	// Init prepares the backend. It must be called before anything else.
	Init() error

	// Shutdown releases the backend and restores the terminal.
	Shutdown()

	// Size returns the screen size in cells.
	Size() (width, height int)

	// SetCell draws one cell. Positions off screen are ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at x, y, or an empty cell off screen.
	GetCell(x, y int) core.Cell

	// Clear blanks the whole screen.
	Clear()

	// Show makes everything drawn since the last Show visible.
	Show()

	ShowCursor(x, y int)
	HideCursor()

	// PollEvent blocks until the next event.
	PollEvent() Event

	// PostEvent queues an event. It is safe to call from any goroutine.
	PostEvent(event Event)
}
