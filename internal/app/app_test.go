package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/linedit/internal/config"
	"github.com/dshills/linedit/internal/editor"
	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/textfile"
	"github.com/dshills/linedit/internal/vfs"
	"github.com/dshills/linedit/internal/watcher"
)

// isolatedConfig keeps tests away from the user's config and environment.
func isolatedConfig(t *testing.T) []config.Option {
	t.Helper()
	return []config.Option{
		config.WithUserConfigDir(t.TempDir()),
		config.WithEnvPrefix(""),
	}
}

func newTestApp(t *testing.T, content string) (*Application, *vfs.MemFS, *bytes.Buffer) {
	t.Helper()

	fsys := vfs.NewMemFS()
	fsys.AddFile("/doc.txt", content)

	var logs bytes.Buffer
	app, err := New(Options{
		File:          "/doc.txt",
		FS:            fsys,
		ConfigOptions: isolatedConfig(t),
		Logger:        NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &logs, Prefix: "linedit"}),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return app, fsys, &logs
}

// runWith queues events on a null backend, runs the application until
// the events are consumed and returns the backend.
func runWith(t *testing.T, app *Application, width, height int, events ...backend.Event) *backend.NullBackend {
	t.Helper()

	b := backend.NewNullBackend(width, height)
	if err := app.SetBackend(b); err != nil {
		t.Fatalf("SetBackend failed: %v", err)
	}
	for _, ev := range events {
		b.PostEvent(ev)
	}
	if err := app.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return b
}

func key(k backend.Key) backend.Event {
	return backend.KeyEvent(k)
}

func TestNew_NoFile(t *testing.T) {
	_, err := New(Options{ConfigOptions: isolatedConfig(t)})
	if !errors.Is(err, ErrNoFile) {
		t.Errorf("expected ErrNoFile, got %v", err)
	}
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(Options{
		File:          "/missing.txt",
		FS:            vfs.NewMemFS(),
		ConfigOptions: isolatedConfig(t),
		Logger:        NullLogger,
	})

	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *OperationError, got %T: %v", err, err)
	}
	if opErr.Op != "open" || opErr.Target != "/missing.txt" {
		t.Errorf("unexpected operation error: %v", opErr)
	}

	var loadErr *textfile.LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("expected wrapped *textfile.LoadError, got %v", err)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	data := "[keys]\nsave = [\"ctrl+s\"]\nquit = [\"ctrl+s\"]\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	fsys := vfs.NewMemFS()
	fsys.AddFile("/doc.txt", "x\n")

	_, err := New(Options{
		File:          "/doc.txt",
		FS:            fsys,
		ConfigOptions: []config.Option{config.WithUserConfigDir(dir), config.WithEnvPrefix("")},
		Logger:        NullLogger,
	})

	var initErr *InitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected *InitError, got %T: %v", err, err)
	}
	if initErr.Component != "config" {
		t.Errorf("expected component config, got %q", initErr.Component)
	}
	if !errors.Is(err, config.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
}

func TestNew_LogLevelOverride(t *testing.T) {
	fsys := vfs.NewMemFS()
	fsys.AddFile("/doc.txt", "x\n")

	app, err := New(Options{
		File:          "/doc.txt",
		FS:            fsys,
		LogLevel:      "debug",
		ConfigOptions: isolatedConfig(t),
		Logger:        NullLogger,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := app.Config().Logging().Level; got != "debug" {
		t.Errorf("expected level debug, got %q", got)
	}

	_, err = New(Options{
		File:          "/doc.txt",
		FS:            fsys,
		LogLevel:      "loud",
		ConfigOptions: isolatedConfig(t),
		Logger:        NullLogger,
	})
	if !errors.Is(err, config.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed for bad level, got %v", err)
	}
}

func TestRun_NoBackend(t *testing.T) {
	app, _, _ := newTestApp(t, "x\n")

	err := app.Run()
	if !errors.Is(err, ErrNoBackend) {
		t.Errorf("expected ErrNoBackend, got %v", err)
	}
	if app.IsRunning() {
		t.Error("expected application to be stopped")
	}
}

func TestRun_EditSaveQuit(t *testing.T) {
	app, fsys, logs := newTestApp(t, "hello\nworld\n")

	b := runWith(t, app, 40, 6,
		key(backend.KeyDown),
		key(backend.KeyEnd), // unbound; ignored
		backend.RuneEvent('X'),
		key(backend.KeyCtrlS),
		key(backend.KeyEscape),
	)

	got, _ := fsys.Content("/doc.txt")
	if got != "hello\nXworld\n" {
		t.Errorf("expected saved content %q, got %q", "hello\nXworld\n", got)
	}
	if app.Session().Modified() {
		t.Error("expected session to be unmodified after save")
	}
	if row := b.Row(5); !strings.Contains(row, editor.MsgSaved) {
		t.Errorf("expected status %q, got %q", editor.MsgSaved, row)
	}
	if !strings.Contains(logs.String(), "session=") {
		t.Errorf("expected session field in logs, got: %s", logs.String())
	}
	if !strings.Contains(logs.String(), "saved /doc.txt") {
		t.Errorf("expected save logged, got: %s", logs.String())
	}
}

func TestRun_CtrlWSaves(t *testing.T) {
	app, fsys, _ := newTestApp(t, "abc\n")

	runWith(t, app, 40, 6,
		key(backend.KeyRight),
		key(backend.KeyBackspace),
		key(backend.KeyCtrlW),
		key(backend.KeyEscape),
	)

	if got, _ := fsys.Content("/doc.txt"); got != "bc\n" {
		t.Errorf("expected %q, got %q", "bc\n", got)
	}
}

func TestRun_SaveFailureKeepsEditing(t *testing.T) {
	app, fsys, logs := newTestApp(t, "abc\n")
	fsys.FailOn(vfs.OpCreate, errors.New("disk full"))

	b := runWith(t, app, 40, 6,
		backend.RuneEvent('!'),
		key(backend.KeyCtrlS),
		key(backend.KeyEscape),
	)

	if got, _ := fsys.Content("/doc.txt"); got != "abc\n" {
		t.Errorf("expected file untouched, got %q", got)
	}
	if !app.Session().Modified() {
		t.Error("expected session to stay modified")
	}
	if got := app.Session().Buffer.LineText(0); got != "!abc" {
		t.Errorf("expected buffer %q, got %q", "!abc", got)
	}
	if row := b.Row(5); !strings.Contains(row, editor.MsgSaveFailed) {
		t.Errorf("expected status %q, got %q", editor.MsgSaveFailed, row)
	}
	if !strings.Contains(logs.String(), "[ERROR]") {
		t.Errorf("expected error logged, got: %s", logs.String())
	}
}

func TestRun_EnterSplitsLine(t *testing.T) {
	app, _, _ := newTestApp(t, "helloworld\n")

	moves := make([]backend.Event, 0, 7)
	for i := 0; i < 5; i++ {
		moves = append(moves, key(backend.KeyRight))
	}
	moves = append(moves, key(backend.KeyEnter), key(backend.KeyEscape))
	runWith(t, app, 40, 6, moves...)

	s := app.Session()
	if s.Buffer.LineCount() != 2 || s.Buffer.LineText(0) != "hello" || s.Buffer.LineText(1) != "world" {
		t.Errorf("unexpected lines %q", s.Buffer.Serialize())
	}
	if s.Cursor.Row != 1 || s.Cursor.Column != 0 {
		t.Errorf("expected cursor (1, 0), got (%d, %d)", s.Cursor.Row, s.Cursor.Column)
	}
}

func TestRun_DrawsTextAndStatus(t *testing.T) {
	app, _, _ := newTestApp(t, "first\nsecond\n")

	b := runWith(t, app, 30, 4,
		key(backend.KeyDown),
		key(backend.KeyRight),
		key(backend.KeyRight),
		key(backend.KeyEscape),
	)

	if row := b.Row(0); !strings.HasPrefix(row, "first") {
		t.Errorf("expected row 0 to start with %q, got %q", "first", row)
	}
	if row := b.Row(1); !strings.HasPrefix(row, "second") {
		t.Errorf("expected row 1 to start with %q, got %q", "second", row)
	}
	status := b.Row(3)
	if !strings.HasPrefix(status, " doc.txt ") {
		t.Errorf("expected file name in status, got %q", status)
	}
	if !strings.Contains(status, "Ln 2, Col 3") {
		t.Errorf("expected position in status, got %q", status)
	}
	x, y, visible := b.CursorPosition()
	if !visible || x != 2 || y != 1 {
		t.Errorf("expected visible cursor at (2, 1), got (%d, %d) visible=%v", x, y, visible)
	}
}

func TestRun_ResizeScrollsToCursor(t *testing.T) {
	var doc strings.Builder
	for i := 0; i < 10; i++ {
		doc.WriteString("line\n")
	}
	app, _, _ := newTestApp(t, doc.String())

	events := make([]backend.Event, 0, 10)
	for i := 0; i < 8; i++ {
		events = append(events, key(backend.KeyDown))
	}
	events = append(events,
		backend.Event{Type: backend.EventResize, Width: 20, Height: 3},
		key(backend.KeyEscape),
	)
	runWith(t, app, 20, 11, events...)

	s := app.Session()
	if s.Cursor.Row != 8 {
		t.Errorf("expected row 8, got %d", s.Cursor.Row)
	}
	// Two text rows remain after the status bar.
	if s.Cursor.RowScroll != 7 {
		t.Errorf("expected row scroll 7, got %d", s.Cursor.RowScroll)
	}
	if w, h := app.Renderer().Size(); w != 20 || h != 3 {
		t.Errorf("expected renderer size 20x3, got %dx%d", w, h)
	}
}

func TestRun_ExternalChangeShowsStatus(t *testing.T) {
	app, fsys, _ := newTestApp(t, "one\n")
	fsys.AddFile("/doc.txt", "two\n")

	b := runWith(t, app, 40, 5,
		backend.InterruptEvent(watcher.Event{Path: "/doc.txt", Op: watcher.OpWrite}),
		key(backend.KeyEscape),
	)

	if row := b.Row(4); !strings.Contains(row, MsgChangedOnDisk) {
		t.Errorf("expected status %q, got %q", MsgChangedOnDisk, row)
	}
	if got := app.Session().Buffer.LineText(0); got != "one" {
		t.Errorf("expected buffer untouched, got %q", got)
	}
}

func TestRun_ShutdownRequest(t *testing.T) {
	app, _, _ := newTestApp(t, "x\n")

	runWith(t, app, 20, 5, backend.InterruptEvent(shutdownRequest{}))

	if app.IsRunning() {
		t.Error("expected application to be stopped")
	}
	// Closing after Run returns is safe to repeat.
	app.Shutdown()
	app.Shutdown()
}

func TestRun_StatusExpiryRedraws(t *testing.T) {
	app, _, _ := newTestApp(t, "x\n")

	b := runWith(t, app, 20, 5,
		backend.InterruptEvent(statusExpired{}),
		key(backend.KeyEscape),
	)
	// Initial frame plus one redraw for the interrupt.
	if got := b.Shows(); got != 2 {
		t.Errorf("expected 2 frames shown, got %d", got)
	}
}

func TestRun_RealFileWithWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("abc\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := New(Options{
		File:          path,
		ConfigOptions: isolatedConfig(t),
		Logger:        NullLogger,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	runWith(t, app, 40, 5,
		backend.RuneEvent('z'),
		key(backend.KeyCtrlS),
		key(backend.KeyEscape),
	)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "zabc\n" {
		t.Errorf("expected %q, got %q", "zabc\n", data)
	}
	if app.watcher != nil {
		t.Error("expected watcher to be closed after Run")
	}
}

func TestSetBackend_WhileRunning(t *testing.T) {
	app, _, _ := newTestApp(t, "x\n")
	app.running.Store(true)
	defer app.running.Store(false)

	if err := app.SetBackend(backend.NewNullBackend(10, 10)); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}
}

func TestOperationError(t *testing.T) {
	inner := errors.New("boom")
	err := NewOperationError("open", "/a.txt", inner)

	if err.Error() != "open /a.txt: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to find wrapped error")
	}

	var nilErr *OperationError
	if nilErr.Error() != "" || nilErr.Unwrap() != nil {
		t.Error("expected nil receiver to be safe")
	}
}

func TestInitError(t *testing.T) {
	err := &InitError{Component: "backend", Err: ErrNoBackend}
	if err.Error() != "init backend: no backend set" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrNoBackend) {
		t.Error("expected errors.Is to find ErrNoBackend")
	}
}
