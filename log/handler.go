package log

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	charmlog "charm.land/log/v2"
	"charm.land/lipgloss/v2"
)

// Format represents the log output format.
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs human-readable logs.
	FormatText Format = "text"
	// FormatClassic outputs one "[time]: header: message." line per record.
	FormatClassic Format = "classic"
)

var allFormats = []Format{FormatText, FormatClassic, FormatJSON, FormatLogfmt}

// HeaderKey is the attribute key carrying the logger header in structured
// formats.
const HeaderKey = "header"

// Handler is a [slog.Handler] built by this package.
type Handler = slog.Handler

// HandlerOption configures handlers built by [NewHandler].
type HandlerOption func(*handlerOptions)

type handlerOptions struct {
	header  string
	layout  string
	color   ColorMode
	palette Palette
}

func defaultHandlerOptions() handlerOptions {
	return handlerOptions{
		layout:  mustParseTimeFormat(DefaultTimeFormat),
		color:   ColorAuto,
		palette: DefaultPalette(),
	}
}

// WithHeader sets the header written with every record.
func WithHeader(header string) HandlerOption {
	return func(o *handlerOptions) {
		o.header = header
	}
}

// WithTimeLayout sets the [time.Time.Format] layout for record times. Use
// [ParseTimeFormat] to derive one from a "%H:%M:%S" style format.
func WithTimeLayout(layout string) HandlerOption {
	return func(o *handlerOptions) {
		o.layout = layout
	}
}

// WithColor sets the color mode.
func WithColor(mode ColorMode) HandlerOption {
	return func(o *handlerOptions) {
		o.color = mode
	}
}

// WithPalette sets the level colors.
func WithPalette(p Palette) HandlerOption {
	return func(o *handlerOptions) {
		o.palette = p
	}
}

// NewHandlerFromStrings creates a [Handler] from level and format strings.
func NewHandlerFromStrings(w io.Writer, level, format string, opts ...HandlerOption) (Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	f, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, f, opts...), nil
}

// NewHandler creates a [Handler] with the specified level and format. It
// returns nil for an unknown format.
func NewHandler(w io.Writer, level Level, format Format, opts ...HandlerOption) Handler {
	o := defaultHandlerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lvl := level.Slog()

	switch format {
	case FormatText:
		return newTextHandler(w, lvl, o)

	case FormatClassic:
		return NewClassicHandler(w, &ClassicOptions{
			Level:   lvl,
			Header:  o.header,
			Layout:  o.layout,
			Color:   o.color.Enabled(w),
			Palette: o.palette,
		})

	case FormatJSON, FormatLogfmt:
		hopts := &slog.HandlerOptions{
			AddSource:   true,
			Level:       lvl,
			ReplaceAttr: replaceAttr(o.layout),
		}

		var h slog.Handler
		if format == FormatJSON {
			h = slog.NewJSONHandler(w, hopts)
		} else {
			h = slog.NewTextHandler(w, hopts)
		}

		if o.header != "" {
			h = h.WithAttrs([]slog.Attr{slog.String(HeaderKey, o.header)})
		}

		return h
	}

	return nil
}

// replaceAttr formats record times with layout and names the fatal level.
func replaceAttr(layout string) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) > 0 {
			return a
		}

		switch a.Key {
		case slog.TimeKey:
			if a.Value.Kind() == slog.KindTime {
				return slog.String(slog.TimeKey, a.Value.Time().Format(layout))
			}

		case slog.LevelKey:
			if lvl, ok := a.Value.Any().(slog.Level); ok {
				return slog.String(slog.LevelKey, levelName(lvl))
			}
		}

		return a
	}
}

// newTextHandler builds a charm logger with level styles from the palette.
func newTextHandler(w io.Writer, lvl slog.Level, o handlerOptions) Handler {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(lvl),
		Prefix:          o.header,
		ReportTimestamp: true,
		TimeFormat:      o.layout,
		Formatter:       charmlog.TextFormatter,
	})

	logger.SetStyles(textStyles(o.palette, o.color != ColorNever))

	return logger
}

// textStyles returns the default charm styles with level labels colored from
// p, or left plain when color is false.
func textStyles(p Palette, color bool) *charmlog.Styles {
	styles := charmlog.DefaultStyles()

	levels := map[charmlog.Level]RGB{
		charmlog.DebugLevel: p.Debug,
		charmlog.InfoLevel:  p.Info,
		charmlog.WarnLevel:  p.Warn,
		charmlog.ErrorLevel: p.Error,
		charmlog.FatalLevel: p.Fatal,
	}

	for lvl, rgb := range levels {
		style := lipgloss.NewStyle().
			SetString(strings.ToUpper(lvl.String())).
			Bold(true).
			MaxWidth(4)
		if color {
			style = style.Foreground(lipgloss.Color(rgb.Hex()))
		}

		styles.Levels[lvl] = style
	}

	return styles
}

// ParseFormat parses a log format string and returns the corresponding
// [Format].
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains(allFormats, f) {
		return f, nil
	}

	return "", ErrUnknownLogFormat
}

// GetAllFormatStrings returns all valid format strings.
func GetAllFormatStrings() []string {
	formats := make([]string, 0, len(allFormats))
	for _, f := range allFormats {
		formats = append(formats, string(f))
	}

	return formats
}
