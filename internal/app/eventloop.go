package app

import (
	"errors"
	"time"

	"github.com/dshills/linedit/internal/editor"
	"github.com/dshills/linedit/internal/renderer"
	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/textfile"
	"github.com/dshills/linedit/internal/watcher"
)

// MsgChangedOnDisk is shown when the open file is modified by another
// program.
const MsgChangedOnDisk = "File changed on disk"

// Interrupt payloads posted to the backend from other goroutines.
type (
	shutdownRequest struct{}
	statusExpired   struct{}
)

// eventLoop reads events until quit or shutdown. Every event is followed
// by a redraw.
func (app *Application) eventLoop() error {
	for {
		ev := app.backend.PollEvent()

		stop, err := app.handleBackendEvent(ev)
		if err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Info("quit")
				return nil
			}
			return err
		}
		if stop {
			app.logger.Info("shutdown requested")
			return nil
		}

		app.render()
	}
}

// handleBackendEvent processes one event. stop is true when the loop
// should end without error.
func (app *Application) handleBackendEvent(ev backend.Event) (stop bool, err error) {
	switch ev.Type {
	case backend.EventKey:
		return false, app.handleKeyEvent(ev)

	case backend.EventResize:
		app.handleResize(ev.Width, ev.Height)

	case backend.EventInterrupt:
		return app.handleInterrupt(ev.Payload), nil

	case backend.EventNone:
		// The terminal reports EventNone once it has been finalized.
		return true, nil
	}
	return false, nil
}

// handleKeyEvent maps a key to an action and dispatches it. Save
// failures are reported in the status bar and the log; they never end
// the session.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	action, ch := app.keymap.Lookup(ev)
	app.logger.Debug("key %s -> %s", ev.Key, action)

	err := app.session.Dispatch(action, ch)

	var saveErr *textfile.SaveError
	switch {
	case err == nil:
	case errors.Is(err, editor.ErrQuit):
		return ErrQuit
	case errors.As(err, &saveErr):
		app.logger.Error("save failed: %v", err)
	default:
		app.logger.Warn("%s: %v", action, err)
		return nil
	}

	if action == editor.ActionSave {
		if err == nil {
			app.logger.Info("saved %s (%d lines)", app.session.Path, app.session.Buffer.LineCount())
		}
		app.scheduleStatusExpiry()
	}
	return nil
}

// handleResize resizes the screen and fits the session to the text area.
func (app *Application) handleResize(width, height int) {
	app.renderer.Resize(width, height)
	tw, th := app.renderer.TextSize()
	app.session.Resize(tw, th)
	app.logger.Debug("resize %dx%d", width, height)
}

// handleInterrupt processes a payload posted from another goroutine and
// reports whether the loop should stop.
func (app *Application) handleInterrupt(payload any) bool {
	switch p := payload.(type) {
	case shutdownRequest:
		return true

	case watcher.Event:
		changed, err := app.session.CheckDisk()
		if err != nil {
			app.logger.Warn("check %s: %v", p.Path, err)
			return false
		}
		if changed {
			app.logger.Info("%s changed on disk (%s)", p.Path, p.Op)
			app.session.SetStatus(MsgChangedOnDisk)
			app.scheduleStatusExpiry()
		}

	case statusExpired:
		// Redraw only.
	}
	return false
}

// scheduleStatusExpiry wakes the loop when the current status message
// expires so the status bar goes back to file info without a key press.
func (app *Application) scheduleStatusExpiry() {
	app.stopStatusTimer()

	b := app.backend
	app.statusTimer = time.AfterFunc(app.session.StatusTimeout(), func() {
		b.PostEvent(backend.InterruptEvent(statusExpired{}))
	})
}

func (app *Application) stopStatusTimer() {
	if app.statusTimer != nil {
		app.statusTimer.Stop()
		app.statusTimer = nil
	}
}

// render draws the session's current frame and status bar.
func (app *Application) render() {
	s := app.session
	msg, _ := s.Status()

	app.renderer.Render(s.Frame(), renderer.Status{
		Filename:   s.Name,
		Modified:   s.Modified(),
		Line:       s.Cursor.Row,
		Column:     s.Cursor.Column,
		TotalLines: s.Buffer.LineCount(),
		Message:    msg,
	})
}
