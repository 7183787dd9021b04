// Package stringtest provides helpers for comparing rendered output in tests.
package stringtest

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\nline2\nline3"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// Plain removes ANSI escape sequences from s, leaving the visible text.
func Plain(s string) string {
	return ansi.Strip(s)
}

// Lines splits output into lines, dropping the final line ending. Escape
// sequences are removed first.
//
// Example:
//
//	stringtest.Lines("\x1b[1ma\x1b[0m\nb\n") // -> []string{"a", "b"}
func Lines(output string) []string {
	output = strings.TrimSuffix(Plain(output), "\n")
	if output == "" {
		return nil
	}

	return strings.Split(output, "\n")
}
