// Package testkit checks structural invariants shared by the tests of
// several packages.
package testkit

import (
	"fmt"
	"slices"

	"riddl/internal/reconcile"
	"riddl/internal/source"
	"riddl/internal/token"
)

// CheckTokenInvariants verifies a converted token stream against the text
// it was produced from:
// 1) tokens are non-empty and strictly ordered by (line, col)
// 2) the first line of every token fits on its document line
// 3) Offset/EndOffset address exactly the token text in UTF-16 units
func CheckTokenInvariants(tokens []token.Token, text string) error {
	lines := source.NewLines(text)
	units := source.UTF16(text)
	for i, tok := range tokens {
		if tok.Text == "" {
			return fmt.Errorf("token %d is empty", i)
		}
		if i > 0 {
			prev := tokens[i-1].Range().Start
			if !prev.Before(tok.Range().Start) {
				return fmt.Errorf("token %d %q at %s does not follow %s", i, tok.Text, tok.Range().Start, prev)
			}
		}
		if tok.Line() < 0 || tok.Line() >= lines.Count() {
			return fmt.Errorf("token %d %q on line %d outside document of %d lines", i, tok.Text, tok.Loc.Line, lines.Count())
		}
		if end := tok.Col() + tok.Len(); tok.Col() < 0 || end > lines.UTF16Len(tok.Line()) {
			return fmt.Errorf("token %d %q spans columns %d-%d beyond line length %d", i, tok.Text, tok.Col(), end, lines.UTF16Len(tok.Line()))
		}
		want := source.UTF16(tok.Text)
		start, end := tok.Loc.Offset, tok.Loc.Offset+len(want)
		if start < 0 || end > len(units) {
			return fmt.Errorf("token %d %q offsets %d-%d outside text", i, tok.Text, start, end)
		}
		if !slices.Equal(units[start:end], want) {
			return fmt.Errorf("token %d %q does not match text at offset %d", i, tok.Text, start)
		}
		if e := tok.Loc.EndOffset; e != nil && *e != end {
			return fmt.Errorf("token %d %q end offset %d, want %d", i, tok.Text, *e, end)
		}
	}
	return nil
}

// CheckRecordRanges verifies that every record range starts inside the
// document and is a non-inverted single-line span.
func CheckRecordRanges(records []reconcile.Record, text string) error {
	lines := source.NewLines(text)
	for i, rec := range records {
		r := rec.Range
		if r.Start.Line < 0 || r.Start.Line >= lines.Count() {
			return fmt.Errorf("record %d %q on line %d outside document", i, rec.Message, r.Start.Line)
		}
		if r.End.Line != r.Start.Line {
			return fmt.Errorf("record %d %q spans lines %d-%d", i, rec.Message, r.Start.Line, r.End.Line)
		}
		if r.Start.Col < 0 || r.Start.Col > lines.UTF16Len(r.Start.Line) {
			return fmt.Errorf("record %d %q starts at column %d beyond line length %d", i, rec.Message, r.Start.Col, lines.UTF16Len(r.Start.Line))
		}
		if r.End.Col < r.Start.Col {
			return fmt.Errorf("record %d %q has inverted range %s", i, rec.Message, r)
		}
	}
	return nil
}
