package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/placelog/log"
	"go.jacobcolvin.com/placelog/placeholder"
	"go.jacobcolvin.com/placelog/stringtest"
)

const classicLine = `^\[\d{2}:\d{2}:\d{2}\]: `

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestInferArg(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  any
	}{
		"true":            {input: "true", want: true},
		"false":           {input: "false", want: false},
		"integer":         {input: "42", want: int64(42)},
		"negative":        {input: "-7", want: int64(-7)},
		"one is not bool": {input: "1", want: int64(1)},
		"float":           {input: "6.226", want: 6.226},
		"exponent":        {input: "1e3", want: 1000.0},
		"text":            {input: "else", want: "else"},
		"capital true":    {input: "True", want: "True"},
		"empty":           {input: "", want: ""},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, inferArg(tc.input))
		})
	}
}

func TestParseArgs(t *testing.T) {
	t.Parallel()

	got, err := parseArgs([]string{"1", "x"}, argModeText)
	require.NoError(t, err)
	assert.Equal(t, []any{"1", "x"}, got)

	got, err = parseArgs([]string{"1", "x"}, argModeAuto)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), "x"}, got)

	_, err = parseArgs(nil, "json")
	require.ErrorIs(t, err, errUnknownArgMode)
}

func TestRenderCommand(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args []string
		want string
		err  error
	}{
		"no placeholders": {
			args: []string{"render", "plain text"},
			want: "plain text\n",
		},
		"inferred args": {
			args: []string{"render", "{0:>5}|{1}|{2:0.2f}", "42", "true", "6.226"},
			want: "   42|true|6.23\n",
		},
		"text args": {
			args: []string{"render", "--as", "text", "{0:0.2f}", "6.226"},
			want: "6.226\n",
		},
		"truncate right": {
			args: []string{"render", "{0:3!}", "abcdef"},
			want: "abc\n",
		},
		"out of range": {
			args: []string{"render", "{1}", "only"},
			err:  placeholder.ErrPlaceholderIndexOutOfRange,
		},
		"invalid index": {
			args: []string{"render", "{x}"},
			err:  placeholder.ErrInvalidPlaceholderIndex,
		},
		"unknown mode": {
			args: []string{"render", "--as", "json", "{0}", "1"},
			err:  errUnknownArgMode,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, tc.args...)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestLogCommand(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args    []string
		pattern string
		err     error
	}{
		"info": {
			args:    []string{"log", "value {0:0.2f}", "3.14159"},
			pattern: classicLine + `value 3\.14\.\n$`,
		},
		"header": {
			args:    []string{"log", "--log-header", "CLI", "hi"},
			pattern: classicLine + `CLI: hi\.\n$`,
		},
		"filtered": {
			args:    []string{"log", "--level", "debug", "hidden"},
			pattern: `^$`,
		},
		"json": {
			args:    []string{"log", "--log-format", "json", "--level", "warn", "hi"},
			pattern: `"level":"WARN"`,
		},
		"fatal": {
			args:    []string{"log", "--level", "fatal", "bye {0}", "now"},
			pattern: classicLine + `bye now\.\n$`,
			err:     log.ErrFatal,
		},
		"invalid level": {
			args: []string{"log", "--level", "loud", "hi"},
			err:  log.ErrUnknownLogLevel,
		},
		"invalid time format": {
			args: []string{"log", "--log-time-format", "%H", "hi"},
			err:  log.ErrInvalidTimeFormat,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, stderr, err := execute(t, tc.args...)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
			}

			if tc.pattern != "" {
				assert.Regexp(t, tc.pattern, stderr)
			}
		})
	}
}

func TestDemoCommand(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "demo", "--log-header", "LOGGER")
	require.NoError(t, err)
	assert.Regexp(t,
		classicLine+`LOGGER: Hello World,     else     -       testing String 6\.23 21\.6\.\n$`,
		stderr)
	assert.Equal(t, "demo output matches the reference rendering\n", stdout)

	stdout, _, err = execute(t, "demo", "--log-color", "always")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[38;2;25;207;73mdemo output matches the reference rendering\x1b[0m\n", stdout)
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.yaml")
	require.NoError(t, os.WriteFile(valid, []byte("level: warn\nheader: FILE\nformat: json\n"), 0o600))

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("verbose: true\n"), 0o600))

	t.Run("flags take precedence", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "config", "--config", valid, "--log-header", "FLAG")
		require.NoError(t, err)
		assert.Contains(t, stdout, "level: warn\n")
		assert.Contains(t, stdout, "format: json\n")
		assert.Contains(t, stdout, "header: FLAG\n")
	})

	t.Run("applies to logger", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := execute(t, "log", "--config", valid, "--level", "warn", "hi")
		require.NoError(t, err)

		var entry map[string]any

		require.NoError(t, json.Unmarshal([]byte(stderr), &entry))
		assert.Equal(t, "FILE", entry[log.HeaderKey])
		assert.Equal(t, "hi", entry["msg"])
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "config", "--config", invalid)
		require.ErrorIs(t, err, log.ErrReadConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "config", "--config", filepath.Join(dir, "missing.yaml"))
		require.ErrorIs(t, err, log.ErrReadConfig)
	})
}

func TestSchemaCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "schema")
	require.NoError(t, err)

	var schema struct {
		Properties map[string]struct {
			Enum []string `json:"enum"`
		} `json:"properties"`
	}

	require.NoError(t, json.Unmarshal([]byte(stdout), &schema))
	assert.Equal(t, log.GetAllLevelStrings(), schema.Properties["level"].Enum)
	assert.Contains(t, schema.Properties, "timeFormat")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Regexp(t, `^placelog \S+ \(`, stdout)

	stdout, _, err = execute(t, "version", "--json")
	require.NoError(t, err)

	var info map[string]any

	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Contains(t, info, "goVersion")
}

func TestBenchCommand(t *testing.T) {
	t.Parallel()

	heap := filepath.Join(t.TempDir(), "heap.prof")

	_, stderr, err := execute(t, "bench", "-n", "10", "--log-level", "debug",
		"--heap-profile", heap, "{0:>8}|{1:0.2f}", "x", "6.226")
	require.NoError(t, err)

	lines := stringtest.Lines(stderr)
	require.Len(t, lines, 2)
	assert.Regexp(t, classicLine+`wrote heap profile to .*heap\.prof\.$`, lines[0])
	assert.Regexp(t, classicLine+`rendered 10 templates in \S+ \(\d+\.\d ns/op\)\.$`, lines[1])

	fi, err := os.Stat(heap)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())

	_, stderr, err = execute(t, "bench", "-n", "7", "-j", "3", "{0}", "x")
	require.NoError(t, err)
	assert.Contains(t, stderr, "rendered 7 templates in ")

	_, _, err = execute(t, "bench", "-n", "0", "plain")
	require.ErrorIs(t, err, log.ErrInvalidArgument)

	_, _, err = execute(t, "bench", "-j", "0", "plain")
	require.ErrorIs(t, err, log.ErrInvalidArgument)

	_, _, err = execute(t, "bench", "{3}", "x")
	require.ErrorIs(t, err, placeholder.ErrPlaceholderIndexOutOfRange)
}

func TestRenderConcurrently(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		count    int
		workers  int
		template string
		args     []any
		err      error
	}{
		"single worker": {
			count:    5,
			workers:  1,
			template: "{0:=9}",
			args:     []any{"mid"},
		},
		"more workers than renders": {
			count:    2,
			workers:  8,
			template: "{0}",
			args:     []any{int64(1)},
		},
		"render error": {
			count:    4,
			workers:  2,
			template: "{1}",
			args:     []any{"only"},
			err:      placeholder.ErrPlaceholderIndexOutOfRange,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := renderConcurrently(tc.count, tc.workers, tc.template, tc.args)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
		})
	}
}
