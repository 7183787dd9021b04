package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profile configuration.
type Flags struct {
	CPU       string
	Heap      string
	Allocs    string
	Goroutine string
	Block     string
	Mutex     string

	BlockRate     string
	MutexFraction string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds profile output paths and sampling rates. A zero Config has
// every profile disabled.
type Config struct {
	Flags Flags

	// Output paths, empty when disabled.
	CPU       string
	Heap      string
	Allocs    string
	Goroutine string
	Block     string
	Mutex     string

	// BlockRate is passed to [runtime.SetBlockProfileRate] while a block
	// profile is enabled.
	BlockRate int
	// MutexFraction is passed to [runtime.SetMutexProfileFraction] while a
	// mutex profile is enabled.
	MutexFraction int
}

// NewConfig returns a new [Config] with default flag names and every profile
// disabled.
func NewConfig() *Config {
	f := Flags{
		CPU:           "cpu-profile",
		Heap:          "heap-profile",
		Allocs:        "allocs-profile",
		Goroutine:     "goroutine-profile",
		Block:         "block-profile",
		Mutex:         "mutex-profile",
		BlockRate:     "block-profile-rate",
		MutexFraction: "mutex-profile-fraction",
	}

	return f.NewConfig()
}

// RegisterFlags adds profile flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	paths := []struct {
		dst  *string
		name string
		kind string
	}{
		{&c.CPU, c.Flags.CPU, "CPU"},
		{&c.Heap, c.Flags.Heap, "heap"},
		{&c.Allocs, c.Flags.Allocs, "allocs"},
		{&c.Goroutine, c.Flags.Goroutine, "goroutine"},
		{&c.Block, c.Flags.Block, "block"},
		{&c.Mutex, c.Flags.Mutex, "mutex"},
	}

	for _, p := range paths {
		flags.StringVar(p.dst, p.name, "", fmt.Sprintf("write %s profile to file", p.kind))
	}

	flags.IntVar(&c.BlockRate, c.Flags.BlockRate, 1, "block profile rate in nanoseconds")
	flags.IntVar(&c.MutexFraction, c.Flags.MutexFraction, 1, "mutex profile fraction, 1/N sampling")
}

// RegisterCompletions registers shell completions for profile flags on cmd.
// Path flags keep the default file completion.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.BlockRate, c.Flags.MutexFraction} {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// Enabled reports whether any profile has an output path.
func (c *Config) Enabled() bool {
	return c.CPU != "" || len(c.snapshots()) > 0
}

type snapshot struct {
	name string
	path string
}

// snapshots returns the enabled snapshot profiles in write order.
func (c *Config) snapshots() []snapshot {
	all := []snapshot{
		{"heap", c.Heap},
		{"allocs", c.Allocs},
		{"goroutine", c.Goroutine},
		{"block", c.Block},
		{"mutex", c.Mutex},
	}

	enabled := all[:0]
	for _, s := range all {
		if s.path != "" {
			enabled = append(enabled, s)
		}
	}

	return enabled
}
