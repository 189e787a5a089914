package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/linedit/internal/engine/cursor"
	"github.com/dshills/linedit/internal/engine/linebuffer"
	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/renderer/core"
	"github.com/dshills/linedit/internal/renderer/viewport"
)

func setup(t *testing.T, w, h int) (*backend.NullBackend, *Renderer) {
	t.Helper()
	b := backend.NewNullBackend(w, h)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return b, New(b)
}

func TestTextSize(t *testing.T) {
	_, r := setup(t, 80, 24)
	if w, h := r.TextSize(); w != 80 || h != 23 {
		t.Errorf("expected 80x23, got %dx%d", w, h)
	}

	r.Resize(10, 1)
	if w, h := r.TextSize(); w != 10 || h != 1 {
		t.Errorf("expected 10x1, got %dx%d", w, h)
	}
}

func TestRenderFrame(t *testing.T) {
	b, r := setup(t, 10, 4)
	buf := linebuffer.Load([]string{"hello world", "ab"})
	vp := viewport.NewViewport(r.TextSize())

	c := cursor.Cursor{Row: 1, Column: 2}
	w, h := vp.Size()
	c.Clamp(buf, h, w)

	r.Render(vp.Frame(buf, c), Status{Filename: "f.txt", Line: c.Row, Column: c.Column, TotalLines: 2})

	if got := b.Row(0); got != "hello worl" {
		t.Errorf("row 0: expected %q, got %q", "hello worl", got)
	}
	if got := b.Row(1); got != "ab        " {
		t.Errorf("row 1: expected %q, got %q", "ab        ", got)
	}
	if got := b.Row(2); strings.TrimSpace(got) != "" {
		t.Errorf("row 2 should be blank, got %q", got)
	}

	x, y, visible := b.CursorPosition()
	if !visible || x != 2 || y != 1 {
		t.Errorf("expected cursor at (2, 1), got (%d, %d) visible=%v", x, y, visible)
	}
	if b.Shows() != 1 || r.FrameCount() != 1 {
		t.Errorf("expected one frame, got shows=%d frames=%d", b.Shows(), r.FrameCount())
	}
}

func TestRenderStatusBar(t *testing.T) {
	b, r := setup(t, 30, 3)

	r.Render(viewport.Frame{}, Status{Filename: "doc.txt", Modified: true})
	if got := b.Row(2); !strings.HasPrefix(got, " doc.txt [+] ") {
		t.Errorf("unexpected status row %q", got)
	}
	if !b.GetCell(0, 2).Style.Attrs.Has(core.AttrReverse) {
		t.Error("status bar should be reverse video")
	}

	r.Render(viewport.Frame{}, Status{Filename: "doc.txt", Message: "ERROR: Failed to save file"})
	if got := b.Row(2); !strings.HasPrefix(got, " ERROR: Failed to save file ") {
		t.Errorf("unexpected status row %q", got)
	}
}

func TestRenderSingleRowHasNoStatus(t *testing.T) {
	b, r := setup(t, 5, 1)

	r.Render(viewport.Frame{Lines: []string{"abc"}}, Status{Filename: "x"})
	if got := b.Row(0); got != "abc  " {
		t.Errorf("expected %q, got %q", "abc  ", got)
	}
}

func TestRenderScrolledFrame(t *testing.T) {
	b, r := setup(t, 4, 3)
	buf := linebuffer.Load([]string{"0123456789", "x", "y", "z"})
	vp := viewport.NewViewport(r.TextSize())

	c := cursor.Cursor{Row: 3, Column: 1}
	w, h := vp.Size()
	c.Clamp(buf, h, w)

	r.Render(vp.Frame(buf, c), Status{})

	if got := b.Row(0); got != "y   " {
		t.Errorf("row 0: expected %q, got %q", "y   ", got)
	}
	if got := b.Row(1); got != "z   " {
		t.Errorf("row 1: expected %q, got %q", "z   ", got)
	}
	if x, y, _ := b.CursorPosition(); x != 1 || y != 1 {
		t.Errorf("expected cursor (1, 1), got (%d, %d)", x, y)
	}
}
