// Package main provides the CLI entry point for placelog, a tool that renders
// placeholder templates and writes them as leveled log lines.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/placelog/log"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		// Fatal messages have already been logged.
		if !errors.Is(err, log.ErrFatal) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}

		os.Exit(1)
	}
}

type app struct {
	logCfg     *log.Config
	configPath string
}

func newRootCommand() *cobra.Command {
	a := &app{
		logCfg: log.NewConfig(),
	}

	rootCmd := &cobra.Command{
		Use:   "placelog",
		Short: "Render placeholder templates and write them as log lines",
		Long: `placelog renders message templates such as "{0:>8} took {1:0.2f}s" against
positional arguments, and writes the result through a leveled logger with a
configurable header, time format and output format.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}

	a.logCfg.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"YAML file with log settings; flags take precedence")

	err := rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	err = a.logCfg.RegisterCompletions(rootCmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	rootCmd.AddCommand(
		newRenderCommand(),
		a.newLogCommand(),
		a.newDemoCommand(),
		a.newBenchCommand(),
		a.newConfigCommand(),
		newSchemaCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

// loadConfig applies the --config file, if any, under the flags set on the
// command line.
func (a *app) loadConfig(cmd *cobra.Command) error {
	if a.configPath == "" {
		return nil
	}

	data, err := os.ReadFile(a.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", log.ErrReadConfig, err)
	}

	err = a.logCfg.ApplyFile(data, cmd.Flags())
	if err != nil {
		return fmt.Errorf("%s: %w", a.configPath, err)
	}

	return nil
}
