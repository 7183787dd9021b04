package placeholder

import "strings"

// ParsePlaceholder splits the text enclosed by a placeholder's braces into an
// index token and a spec token.
//
// Only the first ":" delimits. Anything after it, including further colons,
// is the spec token; a spec containing ":" matches no transform.
func ParsePlaceholder(raw string) (indexToken, specToken string) {
	indexToken, specToken, _ = strings.Cut(raw, ":")

	return indexToken, specToken
}

// ParseIndex parses an index token. It reports false unless token is exactly
// one ASCII digit.
func ParseIndex(token string) (int, bool) {
	if len(token) != 1 || !isDigit(token[0]) {
		return 0, false
	}

	return int(token[0] - '0'), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
