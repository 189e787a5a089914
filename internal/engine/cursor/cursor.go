package cursor

import "fmt"

// Lines is the read-only view of a buffer that Clamp needs.
// LineCount must be at least 1.
type Lines interface {
	LineCount() int
	LineLen(row int) int
}

// Cursor is the cursor position plus viewport scroll offsets.
// The zero value is a cursor at the top-left with no scrolling.
type Cursor struct {
	Row       int
	Column    int
	RowScroll int
	ColScroll int
}

// Reset returns the cursor to (0, 0) with no scrolling.
func (c *Cursor) Reset() {
	*c = Cursor{}
}

// MoveUp decrements Row without bounds checking.
func (c *Cursor) MoveUp() { c.Row-- }

// MoveDown increments Row without bounds checking.
func (c *Cursor) MoveDown() { c.Row++ }

// MoveLeft decrements Column without bounds checking.
func (c *Cursor) MoveLeft() { c.Column-- }

// MoveRight increments Column without bounds checking.
func (c *Cursor) MoveRight() { c.Column++ }

// MoveTo sets Row and Column directly. Scroll offsets are left for Clamp.
func (c *Cursor) MoveTo(row, col int) {
	c.Row = row
	c.Column = col
}

// Clamp replaces c with c.Clamped(lines, height, width).
func (c *Cursor) Clamp(lines Lines, height, width int) {
	*c = c.Clamped(lines, height, width)
}

// Clamped returns the cursor moved into the buffer and the viewport
// scrolled so the cursor is visible. It does not modify c.
//
// Row is clamped first, then Column against the clamped row's length. The
// row offset then follows the cursor up or down, and the column offset
// follows it left or right. Viewport dimensions below 1 count as 1.
func (c Cursor) Clamped(lines Lines, height, width int) Cursor {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}

	count := lines.LineCount()
	if c.Row >= count {
		c.Row = count - 1
	}
	if c.Row < 0 {
		c.Row = 0
	}

	if c.Column < 0 {
		c.Column = 0
	}
	if n := lines.LineLen(c.Row); c.Column > n {
		c.Column = n
	}

	if c.Row < c.RowScroll {
		c.RowScroll = c.Row
	} else if c.Row >= c.RowScroll+height {
		c.RowScroll = c.Row - height + 1
	}

	if c.Column < c.ColScroll {
		c.ColScroll = c.Column
	} else if c.Column >= c.ColScroll+width {
		c.ColScroll = c.Column - width + 1
	}

	return c
}

// ScreenPosition returns the cursor position relative to the viewport.
func (c Cursor) ScreenPosition() (row, col int) {
	return c.Row - c.RowScroll, c.Column - c.ColScroll
}

// String returns a human-readable representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d scroll %d:%d)", c.Row, c.Column, c.RowScroll, c.ColScroll)
}
