package log

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for log configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Level      string
	Format     string
	Color      string
	Header     string
	TimeFormat string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for log configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewLogger] to create a [Logger], or
// [Config.NewHandler] for a bare [Handler].
type Config struct {
	Level      string
	Format     string
	Color      string
	Header     string
	TimeFormat string
	Flags      Flags
}

// NewConfig returns a new [Config] with default flag names and values.
// Use [Config.RegisterFlags] to add CLI flags, or set values directly.
func NewConfig() *Config {
	f := Flags{
		Level:      "log-level",
		Format:     "log-format",
		Color:      "log-color",
		Header:     "log-header",
		TimeFormat: "log-time-format",
	}

	c := f.NewConfig()
	c.Level = string(LevelInfo)
	c.Format = string(FormatClassic)
	c.Color = string(ColorAuto)
	c.TimeFormat = DefaultTimeFormat

	return c
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, c.Level,
		fmt.Sprintf("log level, one of: %s", GetAllLevelStrings()))
	flags.StringVar(&c.Format, c.Flags.Format, c.Format,
		fmt.Sprintf("log format, one of: %s", GetAllFormatStrings()))
	flags.StringVar(&c.Color, c.Flags.Color, c.Color,
		fmt.Sprintf("log color mode, one of: %s", GetAllColorModeStrings()))
	flags.StringVar(&c.Header, c.Flags.Header, c.Header,
		"header written with every log line")
	flags.StringVar(&c.TimeFormat, c.Flags.TimeFormat, c.TimeFormat,
		"log time format, a permutation of %H, %M and %S joined by colons")
}

// RegisterCompletions registers shell completions for log flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	fixed := map[string][]string{
		c.Flags.Level:  GetAllLevelStrings(),
		c.Flags.Format: GetAllFormatStrings(),
		c.Flags.Color:  GetAllColorModeStrings(),
	}

	for _, flag := range []string{c.Flags.Level, c.Flags.Format, c.Flags.Color} {
		err := cmd.RegisterFlagCompletionFunc(flag,
			cobra.FixedCompletions(fixed[flag], cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Header, c.Flags.TimeFormat} {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// NewHandler creates a new [Handler] that writes to w, using the values
// stored in c. It delegates to [NewHandlerFromStrings].
func (c *Config) NewHandler(w io.Writer) (Handler, error) {
	opts, err := c.handlerOptions()
	if err != nil {
		return nil, err
	}

	return NewHandlerFromStrings(w, c.Level, c.Format, opts...)
}

// NewLogger creates a new [Logger] that writes to w, using the values stored
// in c.
func (c *Config) NewLogger(w io.Writer) (*Logger, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	format, err := ParseFormat(c.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	color, err := ParseColorMode(c.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return New(w,
		WithLevel(level),
		WithFormat(format),
		WithColorMode(color),
		WithLoggerHeader(c.Header),
		WithTimeFormat(c.timeFormat()),
	)
}

func (c *Config) handlerOptions() ([]HandlerOption, error) {
	color, err := ParseColorMode(c.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	layout, err := ParseTimeFormat(c.timeFormat())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return []HandlerOption{
		WithHeader(c.Header),
		WithTimeLayout(layout),
		WithColor(color),
	}, nil
}

func (c *Config) timeFormat() string {
	if c.TimeFormat == "" {
		return DefaultTimeFormat
	}

	return c.TimeFormat
}
