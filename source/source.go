// Package source implements the small position and span types threaded
// through every token and AST node so diagnostics can point at exact
// source ranges.
package source

import "fmt"

// Position is a single point in a source file, one-based in both axes to
// match how editors and compiler diagnostics conventionally report them.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsValid reports whether p names an actual location (the zero Position
// means "no location available").
func (p Position) IsValid() bool { return p.Line > 0 }

// Span is a half-open source range, from Start up to but not including End.
type Span struct {
	Start Position
	End   Position
}

func (s Span) String() string {
	if s.Start.File == s.End.File && s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s:%d:%d-%d", s.Start.File, s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Join returns the smallest span covering both a and b.
func Join(a, b Span) Span {
	start, end := a.Start, b.End
	if !a.Start.IsValid() {
		start = b.Start
	}
	if !b.End.IsValid() {
		end = a.End
	}
	return Span{Start: start, End: end}
}
