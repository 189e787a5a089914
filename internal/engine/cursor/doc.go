// Package cursor tracks the editing position and the viewport scroll offsets.
//
// A Cursor holds four values:
//
//   - Row: index of the current line
//   - Column: byte offset within the line; may equal the line length
//   - RowScroll, ColScroll: first visible row and column of the viewport
//
// Movement is unchecked. MoveUp, MoveDown, MoveLeft and MoveRight only
// decrement or increment Row and Column, and may leave them negative or past
// the end of the buffer. Clamp is the single gate that restores validity:
//
//	c.MoveDown()
//	c.Clamp(buf, height, width)
//
// Clamp must run after every state-changing event, movement or edit. Do not
// add bounds checks to the movement methods; doing so changes when the
// viewport scrolls.
//
// After Clamp:
//
//	0 <= Row < lines.LineCount()
//	0 <= Column <= lines.LineLen(Row)
//	0 <= Row-RowScroll < height
//	0 <= Column-ColScroll < width
package cursor
