package app

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/linedit/internal/config"
	"github.com/dshills/linedit/internal/editor"
	"github.com/dshills/linedit/internal/renderer"
	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/vfs"
	"github.com/dshills/linedit/internal/watcher"
)

// Options configures application startup.
type Options struct {
	// ConfigPath is an explicit configuration file.
	ConfigPath string

	// File is the document to edit.
	File string

	// LogLevel and LogFile override the configured logging settings
	// when non-empty.
	LogLevel string
	LogFile  string

	// FS is the file system the document is loaded from and saved to.
	// Nil uses the operating system.
	FS vfs.FS

	// ConfigOptions are passed to config.New after the ConfigPath option.
	ConfigOptions []config.Option

	// Logger replaces the logger built from the logging settings.
	Logger *Logger
}

// Application is one editor process: a configuration, a session, and
// the terminal it draws on.
type Application struct {
	mu sync.RWMutex

	opts     Options
	config   *config.Config
	logger   *Logger
	logClose io.Closer

	session  *editor.Session
	keymap   *Keymap
	backend  backend.Backend
	renderer *renderer.Renderer
	watcher  *watcher.FileWatcher

	// statusTimer wakes the loop when a status message expires.
	statusTimer *time.Timer

	running   atomic.Bool
	closeOnce sync.Once
}

// New loads the configuration and opens the document. Failures here
// happen before the terminal is touched.
func New(opts Options) (*Application, error) {
	if opts.File == "" {
		return nil, ErrNoFile
	}

	app := &Application{opts: opts}

	cfgOpts := make([]config.Option, 0, len(opts.ConfigOptions)+1)
	if opts.ConfigPath != "" {
		cfgOpts = append(cfgOpts, config.WithConfigFile(opts.ConfigPath))
	}
	cfgOpts = append(cfgOpts, opts.ConfigOptions...)

	app.config = config.New(cfgOpts...)
	if err := app.config.Load(context.Background()); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	if err := app.applyOverrides(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	if opts.Logger != nil {
		app.logger, app.logClose = opts.Logger, nopCloser{}
	} else {
		logger, closer, err := OpenLogger(app.config.Logging())
		if err != nil {
			return nil, &InitError{Component: "logging", Err: err}
		}
		app.logger, app.logClose = logger, closer
	}

	keymap, err := NewKeymap(app.config.Keys())
	if err != nil {
		app.close()
		return nil, &InitError{Component: "keymap", Err: err}
	}
	app.keymap = keymap

	editorCfg := app.config.Editor()
	sessOpts := []editor.Option{
		editor.WithInitialCapacity(editorCfg.InitialCapacity),
		editor.WithStatusTimeout(editorCfg.StatusTimeout),
	}
	if opts.FS != nil {
		sessOpts = append(sessOpts, editor.WithFS(opts.FS))
	}

	session, err := editor.Open(opts.File, sessOpts...)
	if err != nil {
		app.logger.Error("open %s: %v", opts.File, err)
		app.close()
		return nil, NewOperationError("open", opts.File, err)
	}
	app.session = session
	app.logger = app.logger.WithField("session", session.ID)

	if src := app.config.Source(); src != "" {
		app.logger.Debug("config loaded from %s", src)
	}
	app.logger.Info("opened %s (%d lines)", opts.File, session.Buffer.LineCount())

	return app, nil
}

// applyOverrides applies command-line settings on top of the loaded
// configuration.
func (app *Application) applyOverrides() error {
	if app.opts.LogLevel != "" {
		if err := app.config.Set("logging.level", app.opts.LogLevel); err != nil {
			return err
		}
	}
	if app.opts.LogFile != "" {
		if err := app.config.Set("logging.file", app.opts.LogFile); err != nil {
			return err
		}
	}
	return app.config.Validate()
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run initializes the backend and processes events until the user quits
// or Shutdown is called. Quitting returns nil.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return &InitError{Component: "backend", Err: ErrNoBackend}
	}

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	app.mu.Lock()
	app.renderer = renderer.New(b)
	app.mu.Unlock()

	w, h := b.Size()
	app.handleResize(w, h)

	app.startWatcher()
	defer app.stopWatcher()
	defer app.stopStatusTimer()

	app.render()
	return app.eventLoop()
}

// startWatcher reports external changes to the open file. A watcher that
// cannot start is logged and the editor runs without it.
func (app *Application) startWatcher() {
	wc := app.config.Watch()
	if !wc.Enabled || app.opts.FS != nil {
		return
	}

	log := app.logger.WithComponent("watcher")
	b := app.backend
	fw, err := watcher.NewFileWatcher(app.session.Path,
		func(ev watcher.Event) {
			b.PostEvent(backend.InterruptEvent(ev))
		},
		watcher.WithDebounce(wc.Debounce),
		watcher.WithErrorHandler(func(err error) {
			log.Warn("watch error: %v", err)
		}),
	)
	if err != nil {
		log.Warn("not watching %s: %v", app.session.Path, err)
		return
	}
	app.watcher = fw
	log.Debug("watching %s", fw.Path())
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Close(); err != nil {
		app.logger.Warn("close watcher: %v", err)
	}
	app.watcher = nil
}

// Shutdown asks a running event loop to stop. Once the loop has
// returned it releases the log file.
func (app *Application) Shutdown() {
	if app.running.Load() {
		app.mu.RLock()
		b := app.backend
		app.mu.RUnlock()
		if b != nil {
			b.PostEvent(backend.InterruptEvent(shutdownRequest{}))
		}
		return
	}
	app.close()
}

func (app *Application) close() {
	app.closeOnce.Do(func() {
		if app.logClose != nil {
			_ = app.logClose.Close()
		}
	})
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the configuration system.
func (app *Application) Config() *config.Config {
	return app.config
}

// Session returns the editing session.
func (app *Application) Session() *editor.Session {
	return app.session
}

// Keymap returns the active key bindings.
func (app *Application) Keymap() *Keymap {
	return app.keymap
}

// Renderer returns the renderer, or nil before Run.
func (app *Application) Renderer() *renderer.Renderer {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.renderer
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	return app.logger
}
