package placeholder

import "strings"

// Align pads text, whose length in characters is n, with spaces up to width.
// It never shortens text: when n >= width the text is returned unchanged.
//
// [SideLeft] pads on the right and [SideRight] pads on the left.
// [SideCenter] splits the padding, giving the odd space to the left.
func Align(text string, n int, side Side, width int) string {
	if n >= width {
		return text
	}

	pad := width - n

	switch side {
	case SideLeft:
		return text + strings.Repeat(" ", pad)

	case SideRight:
		return strings.Repeat(" ", pad) + text

	case SideCenter:
		mid := pad / 2

		return strings.Repeat(" ", mid+pad%2) + text + strings.Repeat(" ", mid)
	}

	return text
}

// Truncate cuts text, whose length in characters is n, according to side and
// width. It acts only when n >= width; shorter text is returned unchanged.
//
//   - [SideLeft] ("-N!") keeps the whole text.
//   - [SideRight] ("N!") drops the trailing width characters.
//   - [SideCenter] ("=N!") keeps width characters, plus one when n is odd,
//     starting (n - width) / 2 characters in.
func Truncate(text string, n int, side Side, width int) string {
	if n < width {
		return text
	}

	switch side {
	case SideRight:
		return substr(text, 0, n-width)

	case SideCenter:
		return substr(text, (n-width)/2, n-(n-width)+n%2)
	}

	return substr(text, 0, n)
}

// substr returns up to length characters of s starting at character offset
// start.
func substr(s string, start, length int) string {
	if length <= 0 {
		return ""
	}

	// Fast path for ASCII.
	if isASCII(s) {
		start = min(start, len(s))

		return s[start:min(start+length, len(s))]
	}

	i, from := 0, len(s)

	for pos := range s {
		if i == start {
			from = pos
		}

		if i == start+length {
			return s[from:pos]
		}

		i++
	}

	return s[from:]
}

func isASCII(s string) bool {
	for i := range len(s) {
		if s[i] >= 0x80 {
			return false
		}
	}

	return true
}
