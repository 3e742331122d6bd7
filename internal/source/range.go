package source

import "fmt"

// Position is a 0-based line/column pair; Col counts UTF-16 code units.
type Position struct {
	Line int
	Col  int
}

// Range is a half-open span [Start, End) in a single document.
type Range struct {
	Start Position
	End   Position
}

// PointRange builds a range on one line.
func PointRange(line, startCol, endCol int) Range {
	return Range{
		Start: Position{Line: line, Col: startCol},
		End:   Position{Line: line, Col: endCol},
	}
}

// Empty reports whether the range covers no columns.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Contains reports whether p falls inside r using half-open semantics.
func (r Range) Contains(p Position) bool {
	if p.Line < r.Start.Line || p.Line > r.End.Line {
		return false
	}
	if p.Line == r.Start.Line && p.Col < r.Start.Col {
		return false
	}
	if p.Line == r.End.Line && p.Col >= r.End.Col {
		return false
	}
	return true
}

// Before orders two positions in document order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
