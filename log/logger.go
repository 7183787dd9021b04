package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"go.jacobcolvin.com/placelog/placeholder"
)

// Logger renders message templates and writes them as log records.
//
// A Logger owns its header, time format and level; they change only through
// [Logger.SetHeader], [Logger.SetTimeFormat] and [Logger.SetLevel]. The
// writer stays owned by the caller. Safe for concurrent use.
//
// Create instances with [New] or [Config.NewLogger].
type Logger struct {
	w       io.Writer
	handler slog.Handler
	pub     *Publisher
	opts    loggerOptions
	mu      sync.RWMutex
}

type loggerOptions struct {
	level      Level
	format     Format
	header     string
	timeFormat string
	color      ColorMode
	palette    Palette
}

// Option configures a [Logger].
type Option func(*loggerOptions)

// WithLevel sets the minimum level. The default is [LevelInfo].
func WithLevel(level Level) Option {
	return func(o *loggerOptions) {
		o.level = level
	}
}

// WithFormat sets the output format. The default is [FormatClassic].
func WithFormat(format Format) Option {
	return func(o *loggerOptions) {
		o.format = format
	}
}

// WithLoggerHeader sets the header written with every record.
func WithLoggerHeader(header string) Option {
	return func(o *loggerOptions) {
		o.header = header
	}
}

// WithTimeFormat sets the time format, see [ParseTimeFormat]. The default is
// [DefaultTimeFormat].
func WithTimeFormat(format string) Option {
	return func(o *loggerOptions) {
		o.timeFormat = format
	}
}

// WithColorMode sets the color mode. The default is [ColorAuto].
func WithColorMode(mode ColorMode) Option {
	return func(o *loggerOptions) {
		o.color = mode
	}
}

// WithLoggerPalette sets the level colors.
func WithLoggerPalette(p Palette) Option {
	return func(o *loggerOptions) {
		o.palette = p
	}
}

// New creates a [Logger] writing to w.
func New(w io.Writer, opts ...Option) (*Logger, error) {
	o := loggerOptions{
		level:      LevelInfo,
		format:     FormatClassic,
		timeFormat: DefaultTimeFormat,
		color:      ColorAuto,
		palette:    DefaultPalette(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := ParseTimeFormat(o.timeFormat); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if _, err := ParseFormat(string(o.format)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if _, err := ParseLevel(string(o.level)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	l := &Logger{
		w:    w,
		pub:  NewPublisher(),
		opts: o,
	}
	l.rebuild()

	return l, nil
}

// rebuild replaces the handler from the current options. Callers must hold
// mu for writing, or own l exclusively.
func (l *Logger) rebuild() {
	l.handler = NewHandler(l.w, l.opts.level, l.opts.format,
		WithHeader(l.opts.header),
		WithTimeLayout(mustParseTimeFormat(l.opts.timeFormat)),
		WithColor(l.opts.color),
		WithPalette(l.opts.palette),
	)
}

// Header returns the current header.
func (l *Logger) Header() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.opts.header
}

// SetHeader replaces the header written with every record.
func (l *Logger) SetHeader(header string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.opts.header = header
	l.rebuild()
}

// TimeFormat returns the current time format.
func (l *Logger) TimeFormat() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.opts.timeFormat
}

// SetTimeFormat replaces the time format. An invalid format is reported with
// a warning, replaced by [DefaultTimeFormat], and returned as an error
// wrapping [ErrInvalidTimeFormat].
func (l *Logger) SetTimeFormat(format string) error {
	_, err := ParseTimeFormat(format)

	l.mu.Lock()
	if err != nil {
		l.opts.timeFormat = DefaultTimeFormat
	} else {
		l.opts.timeFormat = format
	}

	l.rebuild()
	l.mu.Unlock()

	if err != nil {
		warnErr := l.log(context.Background(), LevelWarn,
			"{0} is an invalid time formatting. The formatting will default to {1}",
			[]any{format, DefaultTimeFormat})
		if warnErr != nil {
			return fmt.Errorf("%w: %w", err, warnErr)
		}

		return err
	}

	return nil
}

// Level returns the current minimum level.
func (l *Logger) Level() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.opts.level
}

// SetLevel replaces the minimum level.
func (l *Logger) SetLevel(level Level) error {
	lvl, err := ParseLevel(string(level))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.opts.level = lvl
	l.rebuild()

	return nil
}

// Handler returns the handler records are written to.
func (l *Logger) Handler() Handler {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.handler
}

// Log renders template with args and writes it at level.
//
// A template that fails to render is returned as an error wrapping a
// [placeholder] error, and nothing is written. For [LevelFatal] the returned
// error wraps [ErrFatal].
func (l *Logger) Log(ctx context.Context, level Level, template string, args ...any) error {
	return l.log(ctx, level, template, args)
}

// Debug logs at [LevelDebug].
func (l *Logger) Debug(template string, args ...any) error {
	return l.log(context.Background(), LevelDebug, template, args)
}

// Info logs at [LevelInfo].
func (l *Logger) Info(template string, args ...any) error {
	return l.log(context.Background(), LevelInfo, template, args)
}

// Warn logs at [LevelWarn].
func (l *Logger) Warn(template string, args ...any) error {
	return l.log(context.Background(), LevelWarn, template, args)
}

// Error logs at [LevelError].
func (l *Logger) Error(template string, args ...any) error {
	return l.log(context.Background(), LevelError, template, args)
}

// Fatal logs at [LevelFatal] and returns an error wrapping [ErrFatal]. The
// caller decides whether to exit.
func (l *Logger) Fatal(template string, args ...any) error {
	return l.log(context.Background(), LevelFatal, template, args)
}

// log must be called directly by the exported logging methods so the caller
// frame is found at a fixed depth.
func (l *Logger) log(ctx context.Context, level Level, template string, args []any) error {
	msg, err := placeholder.Sprint(template, args...)
	if err != nil {
		return fmt.Errorf("rendering log message: %w", err)
	}

	l.mu.RLock()
	h, header := l.handler, l.opts.header
	l.mu.RUnlock()

	lvl := level.Slog()

	if h.Enabled(ctx, lvl) {
		var pcs [1]uintptr

		// Skip runtime.Callers, log, and the exported method.
		runtime.Callers(3, pcs[:])

		now := time.Now()

		err = h.Handle(ctx, slog.NewRecord(now, lvl, msg, pcs[0]))
		if err != nil {
			return fmt.Errorf("writing log record: %w", err)
		}

		l.pub.Publish(Entry{Time: now, Level: level, Header: header, Message: msg})
	}

	if level == LevelFatal {
		return fmt.Errorf("%w: %s", ErrFatal, msg)
	}

	return nil
}

// Subscribe returns a [Subscription] receiving every message written from now
// on. Close the subscription when done.
func (l *Logger) Subscribe() *Subscription {
	return l.pub.Subscribe()
}

// Close closes all subscriptions and syncs the writer to stable storage when
// it is a regular file. It does not close the writer.
func (l *Logger) Close() error {
	err := l.pub.Close()
	if err != nil {
		return err
	}

	f, ok := l.w.(*os.File)
	if !ok {
		return nil
	}

	fi, err := f.Stat()
	if err != nil || !fi.Mode().IsRegular() {
		return nil //nolint:nilerr // Only regular files are synced.
	}

	err = f.Sync()
	if err != nil {
		return fmt.Errorf("syncing log file: %w", err)
	}

	return nil
}
