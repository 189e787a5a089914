// Package renderer provides the display layer for the linedit editor.
//
// The renderer draws a viewport.Frame, the visible slice of the document,
// onto a backend.Backend and reserves the last screen row for the status
// bar:
//
//	┌─────────────────────────────────────────┐
//	│  text rows 0 .. height-2 (Frame.Lines)  │
//	├─────────────────────────────────────────┤
//	│  status bar (reverse video)             │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	term.Init()
//	r := renderer.New(term)
//	w, h := r.TextSize()
//	session.Resize(w, h)
//	r.Render(session.Frame(), status)
//
// The renderer holds no document state. It is driven by the single event
// loop and is not safe for concurrent use.
package renderer
