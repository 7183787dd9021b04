package placeholder

import "strings"

// SegmentKind identifies the type of a [Segment].
type SegmentKind uint8

const (
	// SegmentLiteral is template text copied to the output unchanged.
	SegmentLiteral SegmentKind = iota
	// SegmentPlaceholder is the text enclosed by a "{" ... "}" pair.
	SegmentPlaceholder
)

// Segment is one piece of a scanned template.
type Segment struct {
	// Text is the literal text, or the placeholder contents without braces.
	Text string
	// Offset is the byte offset of the segment in the template. For
	// placeholders it points at the opening brace.
	Offset int
	Kind   SegmentKind
}

// Scanner splits a template into literal and placeholder segments.
//
// A Scanner makes a single pass and cannot be restarted. Use it like a
// [bufio.Scanner]:
//
//	s := placeholder.NewScanner(tmpl)
//	for s.Scan() {
//		seg := s.Segment()
//		// ...
//	}
//	if err := s.Err(); err != nil {
//		// ...
//	}
type Scanner struct {
	err      error
	template string
	seg      Segment
	pos      int
}

// NewScanner returns a [Scanner] reading template.
func NewScanner(template string) *Scanner {
	return &Scanner{template: template}
}

// Scan advances to the next segment. It returns false at the end of the
// template or on error.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.pos >= len(s.template) {
		return false
	}

	rest := s.template[s.pos:]

	lpos := strings.IndexByte(rest, '{')
	if lpos != 0 {
		// Literal run up to the next brace, or to the end.
		if lpos < 0 {
			lpos = len(rest)
		}

		s.seg = Segment{Kind: SegmentLiteral, Text: rest[:lpos], Offset: s.pos}
		s.pos += lpos

		return true
	}

	rpos := strings.IndexByte(rest, '}')
	if rpos < 0 {
		s.err = &Error{
			Err:      ErrUnterminatedPlaceholder,
			Template: s.template,
			Index:    -1,
			Offset:   s.pos,
		}

		return false
	}

	s.seg = Segment{Kind: SegmentPlaceholder, Text: rest[1:rpos], Offset: s.pos}
	s.pos += rpos + 1

	return true
}

// Segment returns the segment found by the most recent call to
// [Scanner.Scan].
func (s *Scanner) Segment() Segment {
	return s.seg
}

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error {
	return s.err
}
