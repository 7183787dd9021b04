package placeholder

import "strings"

// Render substitutes every placeholder in template with the argument it
// names, transformed by its spec. Text outside placeholders is copied
// unchanged.
//
// Render keeps no state between calls. On error it returns an empty string
// and an [*Error]; there is no partial output.
func Render(template string, args ...Value) (string, error) {
	var sb strings.Builder

	sb.Grow(len(template))

	s := NewScanner(template)
	for s.Scan() {
		seg := s.Segment()
		if seg.Kind == SegmentLiteral {
			sb.WriteString(seg.Text)
			continue
		}

		text, err := expand(template, seg, args)
		if err != nil {
			return "", err
		}

		sb.WriteString(text)
	}

	err := s.Err()
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Sprint converts args with [AnyValue] and calls [Render]. An argument with
// no corresponding [Kind] fails with [ErrUnsupportedArgumentType], whether or
// not the template refers to it.
func Sprint(template string, args ...any) (string, error) {
	values := make([]Value, len(args))

	for i, arg := range args {
		v, ok := AnyValue(arg)
		if !ok {
			return "", &Error{
				Err:      ErrUnsupportedArgumentType,
				Template: template,
				Index:    i,
				Offset:   -1,
			}
		}

		values[i] = v
	}

	return Render(template, values...)
}

// expand renders a single placeholder segment.
func expand(template string, seg Segment, args []Value) (string, error) {
	indexToken, specToken := ParsePlaceholder(seg.Text)

	index, ok := ParseIndex(indexToken)
	if !ok {
		return "", &Error{
			Err:      ErrInvalidPlaceholderIndex,
			Template: template,
			Token:    indexToken,
			Index:    -1,
			Offset:   seg.Offset,
		}
	}

	if index >= len(args) {
		return "", &Error{
			Err:      ErrPlaceholderIndexOutOfRange,
			Template: template,
			Token:    indexToken,
			Index:    index,
			Offset:   seg.Offset,
		}
	}

	spec := CompileSpec(specToken)
	arg := args[index]

	var (
		text string
		n    int
		err  error
	)

	if spec.Kind == SpecDecimal {
		text, n, err = RenderDecimal(arg, spec.Precision)
	} else {
		text, n, err = RenderValue(arg)
	}

	if err != nil {
		return "", &Error{
			Err:      err,
			Template: template,
			Token:    indexToken,
			Index:    index,
			Offset:   seg.Offset,
		}
	}

	switch spec.Kind {
	case SpecAlign:
		return Align(text, n, spec.Side, spec.Width), nil
	case SpecTruncate:
		return Truncate(text, n, spec.Side, spec.Width), nil
	}

	return text, nil
}
