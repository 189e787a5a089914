package backend

import (
	"testing"

	"github.com/dshills/linedit/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := core.NewStyledCell('X', core.DefaultStyle().Reverse())
	b.SetCell(10, 5, cell)

	got := b.GetCell(10, 5)
	if got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	empty := b.GetCell(-1, 0)
	if empty != core.EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Init()

	b.SetCell(1, 1, core.NewCell('X'))
	b.Clear()

	if got := b.Row(1); got != "          " {
		t.Errorf("expected blank row, got %q", got)
	}
}

func TestNullBackendRow(t *testing.T) {
	b := NewNullBackend(5, 2)
	b.Init()

	for i, r := range "abc" {
		b.SetCell(i, 0, core.NewCell(r))
	}

	if got := b.Row(0); got != "abc  " {
		t.Errorf("expected %q, got %q", "abc  ", got)
	}
	if got := b.Row(7); got != "" {
		t.Errorf("expected empty string for invalid row, got %q", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(15, 10)
	x, y, visible := b.CursorPosition()
	if x != 15 || y != 10 || !visible {
		t.Errorf("cursor position: expected (15, 10, true), got (%d, %d, %v)", x, y, visible)
	}

	b.HideCursor()
	_, _, visible = b.CursorPosition()
	if visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.PostEvent(RuneEvent('a'))
	b.PostEvent(KeyEvent(KeyEnter))
	b.PostEvent(InterruptEvent("wake"))

	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Key != KeyRune || ev.Rune != 'a' {
		t.Errorf("unexpected first event %+v", ev)
	}
	ev = b.PollEvent()
	if ev.Type != EventKey || ev.Key != KeyEnter {
		t.Errorf("unexpected second event %+v", ev)
	}
	ev = b.PollEvent()
	if ev.Type != EventInterrupt || ev.Payload != "wake" {
		t.Errorf("unexpected third event %+v", ev)
	}
}

func TestNullBackendQueueFull(t *testing.T) {
	b := NewNullBackend(4, 4)
	for i := 0; i < nullQueueSize+10; i++ {
		b.PostEvent(InterruptEvent(i))
	}
	if got := len(b.events); got != nullQueueSize {
		t.Errorf("expected %d queued events, got %d", nullQueueSize, got)
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Resize(40, 10)

	w, h := b.Size()
	if w != 40 || h != 10 {
		t.Errorf("expected (40, 10), got (%d, %d)", w, h)
	}
	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 40 || ev.Height != 10 {
		t.Errorf("expected resize event, got %+v", ev)
	}
}
