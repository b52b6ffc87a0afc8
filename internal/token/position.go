package token

import "fmt"

// Position is a point in a source file.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, in runes
	Offset int // 0-based, in bytes
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes strictly before other in the file.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// Range is a half-open source span [Start, End).
type Range struct {
	Start Position
	End   Position
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Empty reports whether the range covers no characters.
func (r Range) Empty() bool {
	return r.Start.Offset >= r.End.Offset
}

// Union returns the smallest range covering both r and other.
func (r Range) Union(other Range) Range {
	out := r
	if other.Start.Before(out.Start) {
		out.Start = other.Start
	}
	if out.End.Before(other.End) {
		out.End = other.End
	}
	return out
}
