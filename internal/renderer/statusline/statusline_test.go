package statusline

import (
	"strings"
	"testing"

	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/renderer/core"
)

func newBackend(t *testing.T, w, h int) *backend.NullBackend {
	t.Helper()
	b := backend.NewNullBackend(w, h)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return b
}

func TestRenderFileInfo(t *testing.T) {
	b := newBackend(t, 40, 2)
	s := New()
	s.Resize(40)
	s.SetFilename("notes.txt")
	s.SetModified(true)
	s.SetPosition(3, 7)
	s.SetTotalLines(3)

	s.Render(b, 1)

	row := b.Row(1)
	if !strings.HasPrefix(row, " notes.txt [+] ") {
		t.Errorf("unexpected left side %q", row)
	}
	if !strings.HasSuffix(row, "Ln 3, Col 7 | Bot ") {
		t.Errorf("unexpected right side %q", row)
	}
	for x := 0; x < 40; x++ {
		if !b.GetCell(x, 1).Style.Attrs.Has(core.AttrReverse) {
			t.Fatalf("cell %d not reverse video", x)
		}
	}
}

func TestRenderMessage(t *testing.T) {
	b := newBackend(t, 30, 1)
	s := New()
	s.Resize(30)
	s.SetFilename("x")
	s.SetMessage("File saved successfully")

	s.Render(b, 0)

	want := " File saved successfully      "
	if got := b.Row(0); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	s.ClearMessage()
	s.Render(b, 0)
	if strings.Contains(b.Row(0), "saved") {
		t.Errorf("message still shown after ClearMessage: %q", b.Row(0))
	}
}

func TestRenderNoName(t *testing.T) {
	b := newBackend(t, 30, 1)
	s := New()
	s.Resize(30)
	s.Render(b, 0)

	if !strings.HasPrefix(b.Row(0), " [No Name] ") {
		t.Errorf("unexpected row %q", b.Row(0))
	}
}

func TestRenderNarrowDropsPosition(t *testing.T) {
	b := newBackend(t, 12, 1)
	s := New()
	s.Resize(12)
	s.SetFilename("long-name.txt")
	s.SetPosition(1, 1)

	s.Render(b, 0)
	if got := b.Row(0); got != " long-name.t" {
		t.Errorf("unexpected row %q", got)
	}
}

func TestFormatPosition(t *testing.T) {
	tests := []struct {
		line, col, total int
		want             string
	}{
		{0, 0, 0, "Ln 1, Col 1 "},
		{1, 5, 1, "Ln 1, Col 5 "},
		{1, 1, 10, "Ln 1, Col 1 | Top "},
		{5, 2, 10, "Ln 5, Col 2 | 50% "},
		{10, 1, 10, "Ln 10, Col 1 | Bot "},
	}

	for _, tt := range tests {
		s := New()
		s.SetPosition(tt.line, tt.col)
		s.SetTotalLines(tt.total)
		if got := s.formatPosition(); got != tt.want {
			t.Errorf("formatPosition(%d, %d, %d): expected %q, got %q", tt.line, tt.col, tt.total, tt.want, got)
		}
	}
}
