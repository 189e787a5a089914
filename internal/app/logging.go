package app

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dshills/linedit/internal/config"
)

// LogLevel orders log messages by severity.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l LogLevel) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel parses a level name, ignoring case. "warning" is accepted
// for warn, and anything unrecognized is info.
func ParseLogLevel(s string) LogLevel {
	s = strings.ToUpper(s)
	if s == "WARNING" {
		return LogLevelWarn
	}
	if i := slices.Index(levelNames[:], s); i >= 0 {
		return LogLevel(i)
	}
	return LogLevelInfo
}

// sink is the output shared by a logger and everything derived from it.
type sink struct {
	mu       sync.Mutex
	w        io.Writer
	level    LogLevel
	disabled bool
	now      func() time.Time
}

func (s *sink) update(fn func(*sink)) {
	s.mu.Lock()
	fn(s)
	s.mu.Unlock()
}

// Logger writes leveled log lines of the form
//
//	2006-01-02T15:04:05.000 [INFO] linedit: message {key=value}
//
// Loggers derived with WithField share their parent's output and level.
type Logger struct {
	sink   *sink
	prefix string

	// suffix is the rendered " {k=v, ...}" for the logger's fields.
	suffix string
	fields map[string]any
}

// LoggerConfig configures NewLogger.
type LoggerConfig struct {
	Level  LogLevel
	Output io.Writer // nil discards
	Prefix string
}

// DefaultLoggerConfig logs at info to io.Discard. The terminal belongs to
// the editor, so logs only appear when a file is configured.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{Level: LogLevelInfo, Output: io.Discard, Prefix: "linedit"}
}

func NewLogger(cfg LoggerConfig) *Logger {
	w := cfg.Output
	if w == nil {
		w = io.Discard
	}
	return &Logger{
		sink:   &sink{w: w, level: cfg.Level, now: time.Now},
		prefix: cfg.Prefix,
	}
}

// OpenLogger builds the application logger from the logging settings,
// appending to the configured file if there is one. The returned closer
// is never nil.
func OpenLogger(cfg config.LoggingConfig) (*Logger, io.Closer, error) {
	lc := DefaultLoggerConfig()
	lc.Level = ParseLogLevel(cfg.Level)
	if cfg.File == "" {
		return NewLogger(lc), nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	lc.Output = f
	return NewLogger(lc), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a logger that appends fields to every line. Fields
// with the same key replace the parent's.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%v", k, merged[k])
	}

	derived := &Logger{sink: l.sink, prefix: l.prefix, fields: merged}
	if len(pairs) > 0 {
		derived.suffix = " {" + strings.Join(pairs, ", ") + "}"
	}
	return derived
}

func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

func (l *Logger) SetLevel(level LogLevel) { l.sink.update(func(s *sink) { s.level = level }) }
func (l *Logger) SetOutput(w io.Writer)   { l.sink.update(func(s *sink) { s.w = w }) }
func (l *Logger) Disable()                { l.sink.update(func(s *sink) { s.disabled = true }) }
func (l *Logger) Enable()                 { l.sink.update(func(s *sink) { s.disabled = false }) }

func (l *Logger) Debug(format string, args ...any) { l.log(LogLevelDebug, format, args) }
func (l *Logger) Info(format string, args ...any)  { l.log(LogLevelInfo, format, args) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LogLevelWarn, format, args) }
func (l *Logger) Error(format string, args ...any) { l.log(LogLevelError, format, args) }

func (l *Logger) log(level LogLevel, format string, args []any) {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disabled || level < s.level || s.w == nil {
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	prefix := ""
	if l.prefix != "" {
		prefix = l.prefix + ": "
	}
	fmt.Fprintf(s.w, "%s [%s] %s%s%s\n",
		s.now().Format("2006-01-02T15:04:05.000"), level, prefix, msg, l.suffix)
}

// NullLogger discards everything.
var NullLogger = &Logger{sink: &sink{disabled: true, now: time.Now}}
