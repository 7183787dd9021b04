package log

import (
	"fmt"
	"strings"
)

// DefaultTimeFormat is the time format used when none is configured.
const DefaultTimeFormat = "%H:%M:%S"

var timeVerbs = map[byte]string{
	'H': "15",
	'M': "04",
	'S': "05",
}

// ParseTimeFormat converts a time format to a [time.Time.Format] layout.
//
// The format must be "%H", "%M" and "%S", each exactly once, in any order,
// separated by colons. "%H:%M:%S" returns "15:04:05" and "%S:%M:%H" returns
// "05:04:15".
func ParseTimeFormat(format string) (string, error) {
	parts := strings.Split(format, ":")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, format)
	}

	layout := make([]string, 0, len(parts))
	seen := make(map[byte]bool, len(parts))

	for _, p := range parts {
		if len(p) != 2 || p[0] != '%' {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, format)
		}

		verb, ok := timeVerbs[p[1]]
		if !ok || seen[p[1]] {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, format)
		}

		seen[p[1]] = true

		layout = append(layout, verb)
	}

	return strings.Join(layout, ":"), nil
}

// mustParseTimeFormat parses a format already known to be valid.
func mustParseTimeFormat(format string) string {
	layout, err := ParseTimeFormat(format)
	if err != nil {
		panic(err)
	}

	return layout
}
