package placeholder

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPlaceholderIndex indicates a placeholder index that is not a
	// single decimal digit.
	ErrInvalidPlaceholderIndex = errors.New("invalid placeholder index")
	// ErrPlaceholderIndexOutOfRange indicates a placeholder index with no
	// corresponding argument.
	ErrPlaceholderIndexOutOfRange = errors.New("placeholder index out of range")
	// ErrUnsupportedArgumentType indicates an argument with no [Kind].
	ErrUnsupportedArgumentType = errors.New("unsupported argument type")
	// ErrUnterminatedPlaceholder indicates a "{" with no closing "}".
	ErrUnterminatedPlaceholder = errors.New("unterminated placeholder")
)

// Error describes a failed render call.
//
// Err is one of the package's sentinel errors; use [errors.Is] to match it.
type Error struct {
	Err      error
	Template string
	// Token is the offending index token, if any.
	Token string
	// Index is the argument index involved, or -1.
	Index int
	// Offset is the byte offset of the placeholder in Template, or -1.
	Offset int
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidPlaceholderIndex):
		return fmt.Sprintf("%v: %q in %q", e.Err, e.Token, e.Template)

	case errors.Is(e.Err, ErrPlaceholderIndexOutOfRange):
		return fmt.Sprintf("%v: %d in %q", e.Err, e.Index, e.Template)

	case errors.Is(e.Err, ErrUnterminatedPlaceholder):
		return fmt.Sprintf("%v: at offset %d in %q", e.Err, e.Offset, e.Template)
	}

	if e.Index >= 0 {
		return fmt.Sprintf("%v: argument %d in %q", e.Err, e.Index, e.Template)
	}

	return fmt.Sprintf("%v: %q", e.Err, e.Template)
}

func (e *Error) Unwrap() error {
	return e.Err
}
