package riddl

import (
	"fmt"

	"riddl/internal/compiler"
	"riddl/internal/token"
)

// containerKeywords must always be followed by the name of the container.
var containerKeywords = map[string]struct{}{
	"domain":      {},
	"context":     {},
	"entity":      {},
	"adaptor":     {},
	"projector":   {},
	"repository":  {},
	"saga":        {},
	"epic":        {},
	"streamlet":   {},
	"application": {},
}

var closerFor = map[string]string{"{": "}", "(": ")", "[": "]"}

type opener struct {
	text string
	loc  compiler.Location
}

// checkSyntax verifies bracket structure and container names. eof is the
// location just past the last character of the document.
func checkSyntax(toks []compiler.Token, eof compiler.Location) []compiler.Message {
	var (
		errs  []compiler.Message
		stack []opener
	)
	code := significant(toks)
	for i, t := range code {
		switch t.Text {
		case "{", "(", "[":
			stack = append(stack, opener{text: t.Text, loc: t.Location})
			continue
		case "}", ")", "]":
			if len(stack) == 0 {
				errs = append(errs, syntaxError(t.Location, "Unexpected '%s' with no matching opening bracket", t.Text))
				continue
			}
			top := stack[len(stack)-1]
			if want := closerFor[top.text]; want != t.Text {
				errs = append(errs, syntaxError(t.Location, "Expected '%s' but found '%s'", want, t.Text))
			}
			stack = stack[:len(stack)-1]
			continue
		}
		if t.Kind != token.Keyword.String() {
			continue
		}
		if _, ok := containerKeywords[t.Text]; !ok {
			continue
		}
		if i+1 >= len(code) {
			errs = append(errs, syntaxError(eof, "Expected a name after '%s'", t.Text))
			continue
		}
		if k := token.ParseKind(code[i+1].Kind); k != token.Identifier {
			errs = append(errs, syntaxError(code[i+1].Location, "Expected a name after '%s' but found '%s'", t.Text, code[i+1].Text))
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		o := stack[i]
		errs = append(errs, syntaxError(eof, "Expected '%s' to close the '%s' opened at line %d, column %d",
			closerFor[o.text], o.text, o.loc.Line, o.loc.Col))
	}
	return errs
}

// significant drops comments.
func significant(toks []compiler.Token) []compiler.Token {
	out := make([]compiler.Token, 0, len(toks))
	for _, t := range toks {
		if token.ParseKind(t.Kind) == token.Comment {
			continue
		}
		out = append(out, t)
	}
	return out
}

func syntaxError(loc compiler.Location, format string, args ...any) compiler.Message {
	return compiler.Message{Kind: "Error", Message: fmt.Sprintf(format, args...), Location: loc}
}

// endLocation returns the position just after the last character of src.
func endLocation(src string) compiler.Location {
	c := NewCursor(src)
	for !c.EOF() {
		c.Bump()
	}
	return compiler.Location{Line: c.Line, Col: c.Col, Offset: c.UOff}
}
