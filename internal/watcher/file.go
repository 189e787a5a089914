package watcher

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file using fsnotify. All debouncing happens
// on the watcher's own goroutine.
type FileWatcher struct {
	fsw     *fsnotify.Watcher
	path    string
	delay   time.Duration
	notify  func(Event)
	onError func(error)

	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// NewFileWatcher starts watching path. notify is called from a background
// goroutine once per debounce window in which the file changed.
func NewFileWatcher(path string, notify func(Event), opts ...Option) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(abs); errors.Is(err, fs.ErrNotExist) {
		return nil, ErrPathNotExist
	} else if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &FileWatcher{
		fsw:     fsw,
		path:    abs,
		delay:   DefaultDebounce,
		notify:  notify,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *FileWatcher) Path() string {
	return w.path
}

// Close stops the watcher and discards any pending event. It is safe to
// call more than once.
func (w *FileWatcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.fsw.Close()
		<-w.stopped
	})
	return w.closeErr
}

func (w *FileWatcher) run() {
	defer close(w.stopped)

	var (
		pending Event
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			op := convertOp(ev.Op)
			if op == 0 {
				continue
			}
			pending.Op |= op
			pending.Timestamp = time.Now()
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			ev := pending
			ev.Path = w.path
			pending = Event{}
			select {
			case <-w.done:
				return
			default:
			}
			if w.notify != nil {
				w.notify(ev)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}
