// Package srcspan defines source positions shared by every later stage of
// the compiler. Spans are carried on core terms purely for diagnostics;
// they are semantically inert to the evaluator, elaborator, and format
// interpreter.
package srcspan

import "fmt"

// Pos is a single point in a source file.
type Pos struct {
	File   string
	Line   int
	Column int
	Offset int // byte offset, used for span arithmetic
}

func (p Pos) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsZero reports whether p is the unset position.
func (p Pos) IsZero() bool {
	return p == Pos{}
}

// Span is a half-open range [Start, End) in a source file.
type Span struct {
	Start Pos
	End   Pos
}

func (s Span) String() string {
	if s.Start.File == s.End.File {
		return fmt.Sprintf("%s:%d:%d-%d:%d", s.Start.File, s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
	}
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// IsZero reports whether s carries no location information.
func (s Span) IsZero() bool {
	return s.Start.IsZero() && s.End.IsZero()
}

// Join returns the smallest span covering both a and b. Either may be zero.
func Join(a, b Span) Span {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	start := a.Start
	if before(b.Start, start) {
		start = b.Start
	}
	end := a.End
	if before(end, b.End) {
		end = b.End
	}
	return Span{Start: start, End: end}
}

func before(a, b Pos) bool {
	if a.Offset != 0 || b.Offset != 0 {
		return a.Offset < b.Offset
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}
