package placeholder

import (
	"math"
	"strconv"
	"strings"
)

// SpecKind identifies the transform a [Spec] applies.
type SpecKind uint8

const (
	// SpecNone substitutes the argument's canonical text.
	SpecNone SpecKind = iota
	// SpecDecimal renders floats with a fixed number of decimals.
	SpecDecimal
	// SpecAlign pads the argument's text with spaces up to a width.
	SpecAlign
	// SpecTruncate cuts the argument's text down.
	SpecTruncate
)

// Side selects where alignment padding or truncation applies.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
	SideCenter
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideCenter:
		return "center"
	}

	return "unknown"
}

// maxPrecision bounds the decimals rendered for [SpecDecimal]. Every float64
// is exact at 1074 decimals; further digits would all be zero.
const maxPrecision = 1074

// maxWidth bounds alignment and truncation widths. Wider specs compile to
// [SpecNone] so padding never allocates more than maxWidth characters.
const maxWidth = 1 << 20

// Spec is a compiled placeholder format spec.
type Spec struct {
	Kind SpecKind
	Side Side
	// Width is the alignment or truncation width.
	Width int
	// Precision is the number of decimals for [SpecDecimal]. Negative values
	// select the canonical float text.
	Precision int
}

// String returns a spec token that compiles back to s. Decimal precisions
// other than 0 through 9 and multiples of ten have no such token and return
// the empty string.
func (s Spec) String() string {
	switch s.Kind {
	case SpecDecimal:
		switch {
		case s.Precision >= 0 && s.Precision <= 9:
			return "0." + strconv.Itoa(s.Precision) + "f"
		case s.Precision%10 == 0:
			return strconv.Itoa(s.Precision/10) + "f"
		}

		return ""

	case SpecAlign:
		return [...]string{"<", ">", "="}[s.Side] + strconv.Itoa(s.Width)

	case SpecTruncate:
		return [...]string{"-", "", "="}[s.Side] + strconv.Itoa(s.Width) + "!"
	}

	return ""
}

// CompileSpec compiles a spec token. The first matching form wins:
//
//  1. decimal, "0.2f": an optional "0", any one character, optional digits,
//     then "f". The precision is the token's leading number times ten,
//     truncated, so "0.2f" selects two decimals and "0.15f" selects one.
//  2. alignment: "<N" left, ">N" right, "=N" center.
//  3. truncation: "-N!" left, "N!" right, "=N!" center.
//
// Alignment and truncation widths above 1048576 compile to [SpecNone].
//
// Anything else, including the empty token, compiles to [SpecNone].
func CompileSpec(token string) Spec {
	if body, ok := matchDecimal(token); ok {
		prec, ok := decimalPrecision(body)
		if !ok {
			return Spec{}
		}

		return Spec{Kind: SpecDecimal, Precision: prec}
	}

	// Truncation specs end in "!"; alignment specs never do.
	body, trunc := strings.CutSuffix(token, "!")
	if body == "" {
		return Spec{}
	}

	side := SideRight

	switch body[0] {
	case '<':
		if trunc {
			return Spec{}
		}

		side, body = SideLeft, body[1:]

	case '>':
		if trunc {
			return Spec{}
		}

		body = body[1:]

	case '=':
		side, body = SideCenter, body[1:]

	case '-':
		if !trunc {
			return Spec{}
		}

		side, body = SideLeft, body[1:]

	default:
		// Only "N!" may start with a digit.
		if !trunc {
			return Spec{}
		}
	}

	if !allDigits(body) {
		return Spec{}
	}

	width, err := strconv.Atoi(body)
	if err != nil || width > maxWidth {
		return Spec{}
	}

	kind := SpecAlign
	if trunc {
		kind = SpecTruncate
	}

	return Spec{Kind: kind, Side: side, Width: width}
}

// matchDecimal reports whether token has the decimal form and returns it
// without the trailing "f".
func matchDecimal(token string) (string, bool) {
	body, ok := strings.CutSuffix(token, "f")
	if !ok {
		return "", false
	}

	if anyThenDigits(body) {
		return body, true
	}

	if rest, ok := strings.CutPrefix(body, "0"); ok && anyThenDigits(rest) {
		return body, true
	}

	return "", false
}

// anyThenDigits reports whether s is one byte other than a line terminator
// followed by zero or more ASCII digits.
func anyThenDigits(s string) bool {
	if s == "" || s[0] == '\n' || s[0] == '\r' {
		return false
	}

	return len(s) == 1 || allDigits(s[1:])
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		if !isDigit(s[i]) {
			return false
		}
	}

	return true
}

// decimalPrecision derives a precision from the body of a decimal spec. The
// product is computed in single precision and truncated toward zero.
func decimalPrecision(body string) (int, bool) {
	x, ok := leadingFloat(body)
	if !ok {
		return 0, false
	}

	p := float32(x * 10)
	if math.IsNaN(float64(p)) || p >= 1<<31 || p <= -(1<<31) {
		return 0, false
	}

	prec := int(p)
	if prec > maxPrecision {
		prec = maxPrecision
	}

	return prec, true
}

// leadingFloat parses the longest prefix of s that forms a number, after
// leading whitespace, the way the C library's strtof does for the inputs a
// decimal spec admits. Hexadecimal integers ("0x5") are accepted.
func leadingFloat(s string) (float32, bool) {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	sign := s[:i]

	if hex, ok := strings.CutPrefix(s[i:], "0x"); ok || strings.HasPrefix(s[i:], "0X") {
		if !ok {
			hex = s[i+2:]
		}

		n := 0
		for n < len(hex) && isHexDigit(hex[n]) {
			n++
		}

		if n > 0 {
			v, err := strconv.ParseUint(hex[:n], 16, 64)
			if err != nil {
				return 0, false
			}

			f := float32(v)
			if sign == "-" {
				f = -f
			}

			return f, true
		}
		// "0x" with no hex digits parses as "0".
	}

	start := i
	digits := 0

	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		i++

		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}

	if digits == 0 {
		return 0, false
	}

	end := i

	// Exponent, only when followed by at least one digit.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}

		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}

			end = j
		}
	}

	v, err := strconv.ParseFloat(sign+s[start:end], 32)
	if err != nil {
		return 0, false
	}

	return float32(v), true
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
