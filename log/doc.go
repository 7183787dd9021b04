// Package log hosts the [placeholder] interpreter as a leveled logger.
//
// A [Logger] renders each message template with [placeholder.Sprint] and
// hands the result to a [Handler] as a [log/slog] record. Four output formats
// are supported: [FormatText] (via [charm.land/log/v2]), [FormatJSON],
// [FormatLogfmt], and [FormatClassic], a single colored line of the form
//
//	[15:04:05]: HEADER: message.
//
// Severity levels are [LevelDebug], [LevelInfo], [LevelWarn], [LevelError],
// and [LevelFatal]. A fatal message is logged and then reported to the caller
// as [ErrFatal]; the logger never exits the process.
//
// Typical usage creates a [Config], registers flags, then builds a [Logger]
// at startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	logger, err := cfg.NewLogger(os.Stderr)
//	defer logger.Close()
//
//	err = logger.Info("{0} of {1:>3} files done", done, total)
//
// The header, time format and level are explicit state of a [Logger] and
// change only through its setters. Time formats are written as a permutation
// of "%H", "%M" and "%S", see [ParseTimeFormat].
//
// Rendered messages can be observed in-process with [Logger.Subscribe], which
// is useful for displaying logs inside a TUI:
//
//	sub := logger.Subscribe()
//	go func() {
//	    for entry := range sub.C() {
//	        // Deliver entry to the TUI.
//	    }
//	}()
package log
