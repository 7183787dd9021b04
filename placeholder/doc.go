// Package placeholder renders message templates containing positional
// placeholders.
//
// A placeholder is a brace-delimited index with an optional format spec:
//
//	placeholder   := "{" index [ ":" spec ] "}"
//	index         := DIGIT
//	spec          := decimalSpec | alignSpec | truncSpec | ""
//	decimalSpec   := [ "0" ] ANY DIGIT* "f"
//	alignSpec     := ( "<" | ">" | "=" ) DIGIT+
//	truncSpec     := ( "-" DIGIT+ "!" ) | ( DIGIT+ "!" ) | ( "=" DIGIT+ "!" )
//
// The index selects one of at most ten arguments. A spec applies at most one
// transform, tested in order: decimal precision, then alignment, then
// truncation. Specs that match none of these substitute the argument as is.
//
// Arguments are [Value]s, a closed set of integer, float, boolean and text
// kinds. [Render] takes values directly; [Sprint] converts native Go values
// with [AnyValue] first:
//
//	msg, err := placeholder.Sprint(
//		"Hello World, {2:=12} - {4:>20} {1:0.2f} {0:0.1f}",
//		21.56, 6.226, "else", false, "testing String",
//	)
//	// msg == "Hello World,     else     -       testing String 6.23 21.6"
//
// Rendering holds no state between calls. Every failure aborts the whole call
// with an [*Error] wrapping one of [ErrInvalidPlaceholderIndex],
// [ErrPlaceholderIndexOutOfRange], [ErrUnsupportedArgumentType] or
// [ErrUnterminatedPlaceholder].
package placeholder
