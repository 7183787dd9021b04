package log_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/placelog/log"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "classic", cfg.Format)
	assert.Equal(t, "auto", cfg.Color)
	assert.Empty(t, cfg.Header)
	assert.Equal(t, log.DefaultTimeFormat, cfg.TimeFormat)
}

func TestConfigRegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	err := flags.Parse([]string{
		"--log-level=debug",
		"--log-format=json",
		"--log-color=never",
		"--log-header=APP",
		"--log-time-format=%S:%M:%H",
	})
	require.NoError(t, err)

	assert.Equal(t, log.File{
		Level:      "debug",
		Format:     "json",
		Color:      "never",
		Header:     "APP",
		TimeFormat: "%S:%M:%H",
	}, cfg.File())
}

func TestConfigCustomFlagNames(t *testing.T) {
	t.Parallel()

	cfg := log.Flags{
		Level:      "level",
		Format:     "format",
		Color:      "color",
		Header:     "header",
		TimeFormat: "time-format",
	}.NewConfig()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse([]string{"--level=warn", "--header=X"}))
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "X", cfg.Header)
}

func TestConfigNewLogger(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		mutate func(*log.Config)
		err    error
	}{
		"defaults": {
			mutate: func(*log.Config) {},
		},
		"empty time format uses default": {
			mutate: func(c *log.Config) { c.TimeFormat = "" },
		},
		"invalid level": {
			mutate: func(c *log.Config) { c.Level = "loud" },
			err:    log.ErrUnknownLogLevel,
		},
		"invalid format": {
			mutate: func(c *log.Config) { c.Format = "xml" },
			err:    log.ErrUnknownLogFormat,
		},
		"invalid color": {
			mutate: func(c *log.Config) { c.Color = "sometimes" },
			err:    log.ErrUnknownColorMode,
		},
		"invalid time format": {
			mutate: func(c *log.Config) { c.TimeFormat = "%H" },
			err:    log.ErrInvalidTimeFormat,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := log.NewConfig()
			tc.mutate(cfg)

			logger, err := cfg.NewLogger(&bytes.Buffer{})
			if tc.err != nil {
				require.ErrorIs(t, err, log.ErrInvalidArgument)
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			require.NoError(t, logger.Close())
		})
	}
}

func TestConfigNewHandler(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()
	cfg.Format = "json"
	cfg.Header = "CFG"
	cfg.TimeFormat = "%S:%M:%H"

	var buf bytes.Buffer

	h, err := cfg.NewHandler(&buf)
	require.NoError(t, err)
	require.NotNil(t, h)

	cfg.Color = "sometimes"

	_, err = cfg.NewHandler(&buf)
	require.ErrorIs(t, err, log.ErrInvalidArgument)
}

func TestConfigApplyFile(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		data string
		args []string
		want log.File
		err  error
	}{
		"file values applied": {
			data: "level: warn\nformat: json\nheader: APP\ntimeFormat: \"%S:%M:%H\"\n",
			want: log.File{
				Level:      "warn",
				Format:     "json",
				Color:      "auto",
				Header:     "APP",
				TimeFormat: "%S:%M:%H",
			},
		},
		"flags take precedence": {
			data: "level: warn\nheader: FILE\n",
			args: []string{"--log-level=debug"},
			want: log.File{
				Level:      "debug",
				Format:     "classic",
				Color:      "auto",
				Header:     "FILE",
				TimeFormat: log.DefaultTimeFormat,
			},
		},
		"empty file": {
			data: "",
			want: log.File{
				Level:      "info",
				Format:     "classic",
				Color:      "auto",
				TimeFormat: log.DefaultTimeFormat,
			},
		},
		"unknown key": {
			data: "level: warn\nverbose: true\n",
			err:  log.ErrReadConfig,
		},
		"malformed": {
			data: "level: [warn\n",
			err:  log.ErrReadConfig,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := log.NewConfig()

			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			cfg.RegisterFlags(flags)
			require.NoError(t, flags.Parse(tc.args))

			err := cfg.ApplyFile([]byte(tc.data), flags)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.File())
		})
	}
}

func TestConfigApplyFileNilFlags(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()

	require.NoError(t, cfg.ApplyFile([]byte("color: never\n"), nil))
	assert.Equal(t, "never", cfg.Color)
}

func TestFileYAML(t *testing.T) {
	t.Parallel()

	out, err := log.File{Level: "warn", Header: "APP"}.YAML()
	require.NoError(t, err)
	assert.Equal(t, "level: warn\nheader: APP\n", string(out))

	cfg := log.NewConfig()
	require.NoError(t, cfg.ApplyFile(out, nil))
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "APP", cfg.Header)
}

func TestSchema(t *testing.T) {
	t.Parallel()

	schema, err := log.Schema()
	require.NoError(t, err)

	for _, name := range []string{"level", "format", "color", "header", "timeFormat"} {
		assert.Contains(t, schema.Properties, name)
	}

	tcs := map[string]struct {
		want []string
	}{
		"level":  {want: log.GetAllLevelStrings()},
		"format": {want: log.GetAllFormatStrings()},
		"color":  {want: log.GetAllColorModeStrings()},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var got []string
			for _, v := range schema.Properties[name].Enum {
				s, ok := v.(string)
				require.True(t, ok)

				got = append(got, s)
			}

			assert.Equal(t, tc.want, got)
		})
	}

	out, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"header written with every log line"`)
}
