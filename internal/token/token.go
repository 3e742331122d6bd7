package token

import (
	"strings"

	"riddl/internal/source"
)

// Location is the 1-based position of a token or message as reported by the
// service. Offset and EndOffset are UTF-16 offsets into the document;
// EndOffset is optional.
type Location struct {
	Line      int
	Col       int
	Offset    int
	EndOffset *int
}

// Token is one lexical token from the tokenizer service.
type Token struct {
	Text string
	Kind Kind
	Loc  Location
}

// Line returns the 0-based start line.
func (t Token) Line() int { return t.Loc.Line - 1 }

// Col returns the 0-based start column in UTF-16 units.
func (t Token) Col() int { return t.Loc.Col - 1 }

// Len returns the token length in UTF-16 units on its start line.
func (t Token) Len() int {
	text := t.Text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSuffix(text[:i], "\r")
	}
	return source.UTF16Len(text)
}

// Range returns the span the token covers on its start line.
func (t Token) Range() source.Range {
	return source.PointRange(t.Line(), t.Col(), t.Col()+t.Len())
}

// Contains reports whether the 0-based position lies inside the token.
func (t Token) Contains(line, col int) bool {
	return t.Range().Contains(source.Position{Line: line, Col: col})
}

// IsResolvable reports whether the token can participate in name resolution.
func (t Token) IsResolvable() bool { return t.Kind.Resolvable() }
