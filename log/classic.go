package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-logfmt/logfmt"
)

// ClassicOptions configures a [ClassicHandler].
type ClassicOptions struct {
	// Level is the minimum level written. Nil means [slog.LevelInfo].
	Level slog.Leveler
	// Header is written after the time, if not empty.
	Header string
	// Layout formats record times. Empty means "15:04:05".
	Layout string
	// Palette colors each line by level when Color is set.
	Palette Palette
	Color   bool
}

// ClassicHandler is a [slog.Handler] that writes one line per record:
//
//	[15:04:05]: HEADER: message key=value.
//
// Attributes are encoded as logfmt pairs; an attribute whose key has no valid
// logfmt characters is dropped. When color is enabled the whole line is
// wrapped in the level's 24-bit foreground color. A message starting with a newline has that newline
// written before the line prefix.
//
// Create instances with [NewClassicHandler].
type ClassicHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	opts   ClassicOptions
	attrs  string
	prefix string
}

// NewClassicHandler creates a [ClassicHandler] writing to w. A nil opts uses
// the defaults.
func NewClassicHandler(w io.Writer, opts *ClassicOptions) *ClassicHandler {
	var o ClassicOptions
	if opts != nil {
		o = *opts
	}

	if o.Level == nil {
		o.Level = slog.LevelInfo
	}

	if o.Layout == "" {
		o.Layout = mustParseTimeFormat(DefaultTimeFormat)
	}

	return &ClassicHandler{
		mu:   &sync.Mutex{},
		w:    w,
		opts: o,
	}
}

// Enabled reports whether records at level are written.
func (h *ClassicHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// Handle writes r as a single line.
func (h *ClassicHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 64+len(r.Message))

	msg := r.Message
	if rest, ok := strings.CutPrefix(msg, "\n"); ok {
		buf = append(buf, '\n')
		msg = rest
	}

	if h.opts.Color {
		buf = append(buf, h.opts.Palette.For(r.Level).Escape()...)
	}

	buf = append(buf, '[')
	if !r.Time.IsZero() {
		buf = r.Time.AppendFormat(buf, h.opts.Layout)
	}

	buf = append(buf, "]: "...)

	if h.opts.Header != "" {
		buf = append(buf, h.opts.Header...)
		buf = append(buf, ": "...)
	}

	buf = append(buf, msg...)
	buf = append(buf, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.prefix, a)
		return true
	})

	buf = append(buf, '.')

	if h.opts.Color {
		buf = append(buf, resetEscape...)
	}

	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf)

	return err
}

// WithAttrs returns a handler that writes attrs after every message.
func (h *ClassicHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	h2 := *h

	buf := []byte(h.attrs)
	for _, a := range attrs {
		buf = appendAttr(buf, h.prefix, a)
	}

	h2.attrs = string(buf)

	return &h2
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *ClassicHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := *h
	h2.prefix = h.prefix + name + "."

	return &h2
}

func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if len(group) == 0 {
			return buf
		}

		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range group {
			buf = appendAttr(buf, prefix, ga)
		}

		return buf
	}

	var kv bytes.Buffer

	err := logfmt.NewEncoder(&kv).EncodeKeyval(prefix+a.Key, a.Value.String())
	if err != nil {
		return buf
	}

	buf = append(buf, ' ')

	return append(buf, kv.Bytes()...)
}
