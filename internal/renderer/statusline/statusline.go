// Package statusline draws the reverse-video status bar on the last screen row.
package statusline

import (
	"strconv"

	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/renderer/core"
)

// StatusLine renders the bottom status bar: either a transient message or
// the file name, modified flag and cursor position.
type StatusLine struct {
	filename   string
	modified   bool
	line       int // 1-indexed
	col        int // 1-indexed
	totalLines int

	message string

	style core.Style
	width int
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		style: core.DefaultStyle().Reverse(),
	}
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition updates the cursor position (1-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetTotalLines updates the total line count.
func (s *StatusLine) SetTotalLines(total int) {
	s.totalLines = total
}

// SetMessage displays a status message in place of the file info.
func (s *StatusLine) SetMessage(msg string) {
	s.message = msg
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
}

// Message returns the message currently shown, if any.
func (s *StatusLine) Message() string {
	return s.message
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Render draws the status line to the backend at the given row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	for x := 0; x < s.width; x++ {
		b.SetCell(x, row, core.NewStyledCell(' ', s.style))
	}

	if s.message != "" {
		s.put(b, 0, row, " "+s.message+" ")
		return
	}

	name := s.filename
	if name == "" {
		name = "[No Name]"
	}
	if s.modified {
		name += " [+]"
	}
	left := " " + name + " "
	col := s.put(b, 0, row, left)

	pos := s.formatPosition()
	if start := s.width - len(pos); start > col {
		s.put(b, start, row, pos)
	}
}

// put writes text from column x and returns the column after it.
func (s *StatusLine) put(b backend.Backend, x, row int, text string) int {
	for i := 0; i < len(text) && x < s.width; i++ {
		b.SetCell(x, row, core.NewStyledCell(rune(text[i]), s.style))
		x++
	}
	return x
}

// formatPosition formats the position info for the right side,
// e.g. "Ln 12, Col 4 | 50% ".
func (s *StatusLine) formatPosition() string {
	line := max(s.line, 1)
	col := max(s.col, 1)

	result := "Ln " + strconv.Itoa(line) + ", Col " + strconv.Itoa(col)

	if s.totalLines > 1 {
		switch {
		case line == 1:
			result += " | Top"
		case line >= s.totalLines:
			result += " | Bot"
		default:
			result += " | " + strconv.Itoa(line*100/s.totalLines) + "%"
		}
	}

	return result + " "
}
