package backend

import "github.com/dshills/linedit/internal/renderer/core"

// nullQueueSize bounds the NullBackend event queue.
const nullQueueSize = 128

// NullBackend keeps the screen in memory. Tests queue events with
// PostEvent before running the editor and inspect the cells afterwards.
// Only PostEvent is safe for concurrent use.
type NullBackend struct {
	w, h  int
	cells []core.Cell // row-major, w*h

	cursorX, cursorY int
	cursorVisible    bool
	shows            int

	events chan Event
}

func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{w: width, h: height, events: make(chan Event, nullQueueSize)}
}

func (b *NullBackend) Init() error {
	b.allocate()
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([]core.Cell, b.w*b.h)
	b.Clear()
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) { return b.w, b.h }

// index returns the offset of (x, y) in cells, or -1 when it is off screen
// or the backend has not been initialized.
func (b *NullBackend) index(x, y int) int {
	if x < 0 || y < 0 || x >= b.w || y >= b.h || len(b.cells) == 0 {
		return -1
	}
	return y*b.w + x
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if i := b.index(x, y); i >= 0 {
		b.cells[i] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	if i := b.index(x, y); i >= 0 {
		return b.cells[i]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Clear() {
	for i := range b.cells {
		b.cells[i] = core.EmptyCell()
	}
}

func (b *NullBackend) Show() { b.shows++ }

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX, b.cursorY = x, y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

// PostEvent queues event, dropping it when the queue is full.
func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
	}
}

// CursorPosition returns the last cursor position and whether it is shown.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Row returns screen row y as a string, or "" when y is off screen.
func (b *NullBackend) Row(y int) string {
	start := b.index(0, y)
	if start < 0 {
		return ""
	}
	runes := make([]rune, b.w)
	for x, c := range b.cells[start : start+b.w] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// Shows returns how many times Show has been called.
func (b *NullBackend) Shows() int { return b.shows }

// Resize changes the screen size and queues the matching resize event.
func (b *NullBackend) Resize(width, height int) {
	b.w, b.h = width, height
	b.allocate()
	b.PostEvent(ResizeEvent(width, height))
}

var _ Backend = (*NullBackend)(nil)
