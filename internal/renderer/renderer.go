package renderer

import (
	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/renderer/core"
	"github.com/dshills/linedit/internal/renderer/statusline"
	"github.com/dshills/linedit/internal/renderer/viewport"
)

// Status is the information shown in the status bar.
type Status struct {
	// Filename is the display name of the document.
	Filename string

	// Modified indicates unsaved changes.
	Modified bool

	// Line and Column are the 0-indexed cursor position.
	Line   int
	Column int

	// TotalLines is the number of lines in the document.
	TotalLines int

	// Message replaces the file info when non-empty.
	Message string
}

// Renderer draws frames and the status bar onto a backend.
type Renderer struct {
	backend backend.Backend
	status  *statusline.StatusLine

	width  int
	height int

	frameCount uint64
}

// New creates a new renderer for the given backend.
func New(b backend.Backend) *Renderer {
	width, height := b.Size()
	return &Renderer{
		backend: b,
		status:  statusline.New(),
		width:   width,
		height:  height,
	}
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Size returns the screen dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// TextSize returns the size of the text area: the full screen minus the
// status row, never smaller than 1x1.
func (r *Renderer) TextSize() (width, height int) {
	return max(r.width, 1), max(r.height-1, 1)
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// Render clears the screen, draws the frame and the status bar, then
// places the terminal cursor at the frame's cursor position.
func (r *Renderer) Render(f viewport.Frame, st Status) {
	r.backend.Clear()

	style := core.DefaultStyle()
	for y, line := range f.Lines {
		if y >= r.height {
			break
		}
		for x := 0; x < len(line) && x < r.width; x++ {
			r.backend.SetCell(x, y, core.NewStyledCell(rune(line[x]), style))
		}
	}

	if r.height > 1 {
		r.renderStatus(st)
	}

	if f.CursorRow >= 0 && f.CursorRow < r.height && f.CursorCol >= 0 && f.CursorCol < r.width {
		r.backend.ShowCursor(f.CursorCol, f.CursorRow)
	} else {
		r.backend.HideCursor()
	}

	r.backend.Show()
	r.frameCount++
}

func (r *Renderer) renderStatus(st Status) {
	s := r.status
	s.Resize(r.width)
	s.SetFilename(st.Filename)
	s.SetModified(st.Modified)
	s.SetPosition(st.Line+1, st.Column+1)
	s.SetTotalLines(st.TotalLines)
	if st.Message != "" {
		s.SetMessage(st.Message)
	} else {
		s.ClearMessage()
	}
	s.Render(r.backend, r.height-1)
}
