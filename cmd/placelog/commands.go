package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"go.jacobcolvin.com/placelog/log"
	"go.jacobcolvin.com/placelog/placeholder"
	"go.jacobcolvin.com/placelog/profile"
	"go.jacobcolvin.com/placelog/version"
)

// demoTemplate is the template logged by the demo command.
const demoTemplate = "Hello World, {2:=12} - {4:>20} {1:0.2f} {0:0.1f}"

// demoWant is demoTemplate rendered with demoArgs.
const demoWant = "Hello World,     else     -       testing String 6.23 21.6"

var demoArgs = []any{21.56, float32(6.226), "else", false, "testing String"}

var (
	errUnknownArgMode = errors.New("unknown argument mode")
	errDemoMismatch   = errors.New("demo output mismatch")
)

const (
	argModeAuto = "auto"
	argModeText = "text"
)

// parseArgs converts command line arguments to template arguments. In auto
// mode each argument becomes the first of bool, int64, float64 it parses as,
// or text otherwise.
func parseArgs(args []string, mode string) ([]any, error) {
	out := make([]any, 0, len(args))

	switch mode {
	case argModeText:
		for _, arg := range args {
			out = append(out, arg)
		}

	case argModeAuto:
		for _, arg := range args {
			out = append(out, inferArg(arg))
		}

	default:
		return nil, fmt.Errorf("%w: %q", errUnknownArgMode, mode)
	}

	return out, nil
}

func inferArg(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return i
	}

	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return f
	}

	return s
}

func registerArgModeFlag(cmd *cobra.Command, mode *string) {
	cmd.Flags().StringVar(mode, "as", argModeAuto,
		fmt.Sprintf("argument typing, one of: [%s %s]", argModeAuto, argModeText))

	err := cmd.RegisterFlagCompletionFunc("as",
		cobra.FixedCompletions([]string{argModeAuto, argModeText}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		panic(err)
	}
}

func newRenderCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "render TEMPLATE [ARG...]",
		Short: "Render a template to stdout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args[1:], mode)
			if err != nil {
				return err
			}

			out, err := placeholder.Sprint(args[0], values...)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}

	registerArgModeFlag(cmd, &mode)

	return cmd
}

func (a *app) newLogCommand() *cobra.Command {
	var (
		mode  string
		level string
	)

	cmd := &cobra.Command{
		Use:   "log TEMPLATE [ARG...]",
		Short: "Render a template and write it as a log line",
		Long: `Render a template and write it as a log line to stderr. Logging at the fatal
level exits with status 1 after the line is written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("%w: %w", log.ErrInvalidArgument, err)
			}

			values, err := parseArgs(args[1:], mode)
			if err != nil {
				return err
			}

			logger, err := a.logCfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			defer logger.Close() //nolint:errcheck // Close only fails on sync.

			return logger.Log(cmd.Context(), lvl, args[0], values...)
		},
	}

	cmd.Flags().StringVar(&level, "level", string(log.LevelInfo),
		fmt.Sprintf("message level, one of: %s", log.GetAllLevelStrings()))

	err := cmd.RegisterFlagCompletionFunc("level",
		cobra.FixedCompletions(log.GetAllLevelStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		panic(err)
	}

	registerArgModeFlag(cmd, &mode)

	return cmd
}

func (a *app) newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Log a sample message exercising every template spec and check its rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := a.logCfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			defer logger.Close() //nolint:errcheck // Close only fails on sync.

			err = logger.Info(demoTemplate, demoArgs...)
			if err != nil {
				return err
			}

			got, err := placeholder.Sprint(demoTemplate, demoArgs...)
			if err != nil {
				return err
			}

			if got != demoWant {
				return fmt.Errorf("%w: got %q, want %q", errDemoMismatch, got, demoWant)
			}

			color, err := log.ParseColorMode(a.logCfg.Color)
			if err != nil {
				return err
			}

			msg := "demo output matches the reference rendering"
			if color.Enabled(cmd.OutOrStdout()) {
				msg = log.DefaultPalette().Success.Paint(msg)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)

			return err
		},
	}
}

func (a *app) newBenchCommand() *cobra.Command {
	var (
		mode    string
		count   int
		workers int
	)

	profCfg := profile.NewConfig()

	cmd := &cobra.Command{
		Use:   "bench TEMPLATE [ARG...]",
		Short: "Render a template repeatedly and report the time per render",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("%w: count must be positive, got %d", log.ErrInvalidArgument, count)
			}

			if workers < 1 {
				return fmt.Errorf("%w: workers must be positive, got %d", log.ErrInvalidArgument, workers)
			}

			values, err := parseArgs(args[1:], mode)
			if err != nil {
				return err
			}

			// Fail on a bad template before profiling starts.
			_, err = placeholder.Sprint(args[0], values...)
			if err != nil {
				return err
			}

			logger, err := a.logCfg.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			defer logger.Close() //nolint:errcheck // Close only fails on sync.

			session, err := profCfg.Start()
			if err != nil {
				return err
			}

			start := time.Now()

			err = renderConcurrently(count, workers, args[0], values)

			elapsed := time.Since(start)

			written, stopErr := session.Stop()
			err = errors.Join(err, stopErr)
			if err != nil {
				return err
			}

			for _, w := range written {
				err = logger.Debug("wrote {0} profile to {1}", w.Name, w.Path)
				if err != nil {
					return err
				}
			}

			return logger.Info("rendered {0} templates in {1} ({2:0.1f} ns/op)",
				count, elapsed.String(), float64(elapsed.Nanoseconds())/float64(count))
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 100000, "number of renders")
	cmd.Flags().IntVarP(&workers, "workers", "j", 1, "number of goroutines sharing the renders")
	registerArgModeFlag(cmd, &mode)
	profCfg.RegisterFlags(cmd.Flags())

	err := profCfg.RegisterCompletions(cmd)
	if err != nil {
		panic(err)
	}

	return cmd
}

// renderConcurrently renders template count times, split as evenly as
// possible across workers goroutines.
func renderConcurrently(count, workers int, template string, values []any) error {
	var g errgroup.Group

	workers = min(workers, count)
	for w := range workers {
		n := count / workers
		if w < count%workers {
			n++
		}

		g.Go(func() error {
			for range n {
				_, err := placeholder.Sprint(template, values...)
				if err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}

func (a *app) newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective log configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.logCfg.File().YAML()
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := log.Schema()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding schema: %w", err)
			}

			out = append(out, '\n')

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}

func newVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()

			if !asJSON {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info)

				return err
			}

			out, err := json.Marshal(info)
			if err != nil {
				return fmt.Errorf("encoding version: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)

			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
