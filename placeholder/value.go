package placeholder

import (
	"math"
)

// Kind identifies the type of a [Value].
type Kind uint8

const (
	// KindInvalid is the kind of the zero [Value].
	KindInvalid Kind = iota
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindText
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt16:   "int16",
	KindUint16:  "uint16",
	KindInt32:   "int32",
	KindUint32:  "uint32",
	KindInt64:   "int64",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindBool:    "bool",
	KindText:    "text",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// Value is a single template argument. Exactly one kind is active.
//
// Create instances with the kind-specific constructors such as [Int64Value]
// and [TextValue], or convert native Go values with [AnyValue].
type Value struct {
	text string
	num  uint64
	kind Kind
}

// Int16Value returns a [Value] for an int16.
func Int16Value(v int16) Value {
	return Value{kind: KindInt16, num: uint64(int64(v))}
}

// Uint16Value returns a [Value] for a uint16.
func Uint16Value(v uint16) Value {
	return Value{kind: KindUint16, num: uint64(v)}
}

// Int32Value returns a [Value] for an int32.
func Int32Value(v int32) Value {
	return Value{kind: KindInt32, num: uint64(int64(v))}
}

// Uint32Value returns a [Value] for a uint32.
func Uint32Value(v uint32) Value {
	return Value{kind: KindUint32, num: uint64(v)}
}

// Int64Value returns a [Value] for an int64.
func Int64Value(v int64) Value {
	return Value{kind: KindInt64, num: uint64(v)}
}

// Uint64Value returns a [Value] for a uint64.
func Uint64Value(v uint64) Value {
	return Value{kind: KindUint64, num: v}
}

// Float32Value returns a [Value] for a float32.
func Float32Value(v float32) Value {
	return Value{kind: KindFloat32, num: uint64(math.Float32bits(v))}
}

// Float64Value returns a [Value] for a float64.
func Float64Value(v float64) Value {
	return Value{kind: KindFloat64, num: math.Float64bits(v)}
}

// BoolValue returns a [Value] for a bool.
func BoolValue(v bool) Value {
	var n uint64
	if v {
		n = 1
	}

	return Value{kind: KindBool, num: n}
}

// TextValue returns a [Value] for a string.
func TextValue(v string) Value {
	return Value{kind: KindText, text: v}
}

// AnyValue converts v to a [Value]. It reports false when v's type has no
// corresponding kind.
//
// Narrow integer types widen to the nearest kind: int8 to [KindInt16], uint8
// to [KindUint16], and int, uint and uintptr to their 64-bit kinds.
func AnyValue(v any) (Value, bool) {
	switch x := v.(type) {
	case Value:
		return x, x.kind != KindInvalid
	case int8:
		return Int16Value(int16(x)), true
	case int16:
		return Int16Value(x), true
	case int32:
		return Int32Value(x), true
	case int:
		return Int64Value(int64(x)), true
	case int64:
		return Int64Value(x), true
	case uint8:
		return Uint16Value(uint16(x)), true
	case uint16:
		return Uint16Value(x), true
	case uint32:
		return Uint32Value(x), true
	case uint:
		return Uint64Value(uint64(x)), true
	case uint64:
		return Uint64Value(x), true
	case uintptr:
		return Uint64Value(uint64(x)), true
	case float32:
		return Float32Value(x), true
	case float64:
		return Float64Value(x), true
	case bool:
		return BoolValue(x), true
	case string:
		return TextValue(x), true
	case []byte:
		return TextValue(string(x)), true
	}

	return Value{}, false
}

// Kind returns v's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// Int64 returns the value of a signed integer kind.
func (v Value) Int64() int64 {
	return int64(v.num)
}

// Uint64 returns the value of an unsigned integer kind.
func (v Value) Uint64() uint64 {
	return v.num
}

// Float64 returns the value of a float kind, widened to float64.
func (v Value) Float64() float64 {
	if v.kind == KindFloat32 {
		return float64(math.Float32frombits(uint32(v.num)))
	}

	return math.Float64frombits(v.num)
}

// Bool returns the value of a [KindBool] value.
func (v Value) Bool() bool {
	return v.num == 1
}

// Text returns the value of a [KindText] value.
func (v Value) Text() string {
	return v.text
}

// String returns the canonical text of v, or a marker for the zero Value.
func (v Value) String() string {
	s, _, err := RenderValue(v)
	if err != nil {
		return "!" + v.kind.String()
	}

	return s
}
