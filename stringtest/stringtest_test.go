package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/placelog/stringtest"
)

func TestJoinLF(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  string
		input []string
	}{
		"empty input": {
			input: nil,
			want:  "",
		},
		"single string": {
			input: []string{"hello"},
			want:  "hello",
		},
		"three strings": {
			input: []string{"line1", "line2", "line3"},
			want:  "line1\nline2\nline3",
		},
		"with empty string": {
			input: []string{"a", "", "c"},
			want:  "a\n\nc",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.JoinLF(tc.input...))
		})
	}
}

func TestPlain(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"no escapes": {
			input: "[12:00:00]: msg.",
			want:  "[12:00:00]: msg.",
		},
		"truecolor foreground": {
			input: "\x1b[38;2;255;165;0m[12:00:00]: msg.\x1b[0m",
			want:  "[12:00:00]: msg.",
		},
		"bold": {
			input: "\x1b[1mINFO\x1b[0m text",
			want:  "INFO text",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.Plain(tc.input))
		})
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	assert.Nil(t, stringtest.Lines(""))
	assert.Nil(t, stringtest.Lines("\n"))
	assert.Equal(t, []string{"a", "b"}, stringtest.Lines("\x1b[1ma\x1b[0m\nb\n"))
	assert.Equal(t, []string{"", "a"}, stringtest.Lines("\na"))
}
