package placeholder

import (
	"strconv"
	"unicode/utf8"
)

// RenderValue returns the canonical text of v and its length in characters.
//
// Integers render in base 10, floats in their shortest exact form (switching
// to exponent notation for very large or small magnitudes), booleans as
// "true" or "false", and text unchanged.
func RenderValue(v Value) (string, int, error) {
	var s string

	switch v.kind {
	case KindInt16, KindInt32, KindInt64:
		s = strconv.FormatInt(v.Int64(), 10)

	case KindUint16, KindUint32, KindUint64:
		s = strconv.FormatUint(v.Uint64(), 10)

	case KindFloat32:
		s = strconv.FormatFloat(v.Float64(), 'g', -1, 32)

	case KindFloat64:
		s = strconv.FormatFloat(v.Float64(), 'g', -1, 64)

	case KindBool:
		s = strconv.FormatBool(v.Bool())

	case KindText:
		s = v.text

	default:
		return "", 0, ErrUnsupportedArgumentType
	}

	return s, utf8.RuneCountInString(s), nil
}

// RenderDecimal renders a float kind with precision decimals. Other kinds, and
// negative precisions, render as with [RenderValue].
func RenderDecimal(v Value, precision int) (string, int, error) {
	var bits int

	switch v.kind {
	case KindFloat32:
		bits = 32
	case KindFloat64:
		bits = 64
	default:
		return RenderValue(v)
	}

	if precision < 0 {
		return RenderValue(v)
	}

	s := strconv.FormatFloat(v.Float64(), 'f', min(precision, maxPrecision), bits)

	return s, utf8.RuneCountInString(s), nil
}
