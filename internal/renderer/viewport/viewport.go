// Package viewport provides viewport management for the renderer.
//
// A Viewport holds the dimensions of the visible text area. Frame projects a
// buffer and a clamped cursor onto it, producing the read-only slice of text
// and the screen-relative cursor position that the renderer draws.
package viewport

import "github.com/dshills/linedit/internal/engine/cursor"

// Source is the read-only view of a buffer that a frame is built from.
type Source interface {
	LineCount() int
	LineText(row int) string
}

// Viewport represents the visible portion of the buffer.
type Viewport struct {
	// Size in screen cells
	width  int
	height int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	return v.height
}

// Size returns the viewport width and height.
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// Resize updates the viewport size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func (v *Viewport) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	v.width = width
	v.height = height
}

// Frame is a read-only projection of the buffer onto the viewport.
type Frame struct {
	// Lines holds the visible text, one entry per screen row, starting at
	// the cursor's RowScroll. Rows past the end of the buffer are omitted.
	// Each entry is already cut to [ColScroll, ColScroll+Width).
	Lines []string

	// CursorRow and CursorCol are the cursor position on screen.
	CursorRow int
	CursorCol int

	Width  int
	Height int
}

// Frame builds the visible slice of src for cursor c. The cursor is
// expected to have been clamped against the same source and dimensions.
func (v *Viewport) Frame(src Source, c cursor.Cursor) Frame {
	f := Frame{Width: v.width, Height: v.height}

	start := c.RowScroll
	if start < 0 {
		start = 0
	}
	end := start + v.height
	if n := src.LineCount(); end > n {
		end = n
	}

	if end > start {
		f.Lines = make([]string, 0, end-start)
	}
	for row := start; row < end; row++ {
		f.Lines = append(f.Lines, cut(src.LineText(row), c.ColScroll, v.width))
	}

	f.CursorRow, f.CursorCol = c.ScreenPosition()
	return f
}

// cut returns s[from:from+width] limited to the bounds of s.
func cut(s string, from, width int) string {
	if from < 0 {
		from = 0
	}
	if from >= len(s) {
		return ""
	}
	to := from + width
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
