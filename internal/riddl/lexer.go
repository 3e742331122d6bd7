package riddl

import (
	"fmt"
	"unicode"

	"riddl/internal/compiler"
	"riddl/internal/token"
)

// Lexer splits RIDDL source into raw token records. It never stops on bad
// input: problems are collected in Errors and scanning continues.
type Lexer struct {
	cur    Cursor
	out    []compiler.Token
	Errors []compiler.Message
}

// NewLexer creates a lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{cur: NewCursor(src)}
}

// Lex scans src and returns tokens and lexical errors.
func Lex(src string) ([]compiler.Token, []compiler.Message) {
	lx := NewLexer(src)
	return lx.All(), lx.Errors
}

// All scans the remaining input.
func (lx *Lexer) All() []compiler.Token {
	for {
		lx.skipSpace()
		if lx.cur.EOF() {
			return lx.out
		}
		lx.out = append(lx.out, lx.next())
	}
}

func (lx *Lexer) next() compiler.Token {
	c := &lx.cur
	ch := c.Peek()
	switch {
	case c.HasPrefix("//"):
		return lx.scanLineComment()
	case c.HasPrefix("/*"):
		return lx.scanBlockComment()
	case ch == '"':
		return lx.scanString()
	case ch == '|' && c.AtLineStart():
		return lx.scanMarkdown()
	case isDigit(ch):
		return lx.scanNumber()
	case isIdentStart(c.PeekRune()):
		return lx.scanIdentOrKeyword()
	default:
		return lx.scanPunct()
	}
}

func (lx *Lexer) skipSpace() {
	for !lx.cur.EOF() {
		switch lx.cur.Peek() {
		case ' ', '\t', '\r', '\n', '\f':
			lx.cur.Bump()
		default:
			return
		}
	}
}

func (lx *Lexer) emit(m Mark, kind token.Kind) compiler.Token {
	end := lx.cur.UOff
	return compiler.Token{
		Text: lx.cur.TextFrom(m),
		Kind: kind.String(),
		Location: compiler.Location{
			Line:      m.Line,
			Col:       m.Col,
			Offset:    m.UOff,
			EndOffset: &end,
		},
	}
}

func (lx *Lexer) errAt(m Mark, format string, args ...any) {
	end := lx.cur.UOff
	lx.Errors = append(lx.Errors, compiler.Message{
		Kind:    "Error",
		Message: fmt.Sprintf(format, args...),
		Location: compiler.Location{
			Line:      m.Line,
			Col:       m.Col,
			Offset:    m.UOff,
			EndOffset: &end,
		},
	})
}

func (lx *Lexer) scanLineComment() compiler.Token {
	m := lx.cur.Mark()
	for !lx.cur.EOF() && lx.cur.Peek() != '\n' && lx.cur.Peek() != '\r' {
		lx.cur.Bump()
	}
	return lx.emit(m, token.Comment)
}

func (lx *Lexer) scanBlockComment() compiler.Token {
	m := lx.cur.Mark()
	lx.cur.BumpN(2)
	for !lx.cur.EOF() {
		if lx.cur.HasPrefix("*/") {
			lx.cur.BumpN(2)
			return lx.emit(m, token.Comment)
		}
		lx.cur.Bump()
	}
	lx.errAt(m, "Unterminated block comment")
	return lx.emit(m, token.Comment)
}

func (lx *Lexer) scanString() compiler.Token {
	m := lx.cur.Mark()
	lx.cur.Bump() // opening '"'
	for !lx.cur.EOF() {
		switch lx.cur.Peek() {
		case '"':
			lx.cur.Bump()
			return lx.emit(m, token.String)
		case '\\':
			lx.cur.Bump()
			if !lx.cur.EOF() && lx.cur.Peek() != '\n' && lx.cur.Peek() != '\r' {
				lx.cur.Bump()
			}
			continue
		case '\n', '\r':
			lx.errAt(m, "Unterminated string literal")
			return lx.emit(m, token.String)
		}
		lx.cur.Bump()
	}
	lx.errAt(m, "Unterminated string literal")
	return lx.emit(m, token.String)
}

// scanMarkdown consumes a '|' line used in description blocks.
func (lx *Lexer) scanMarkdown() compiler.Token {
	m := lx.cur.Mark()
	for !lx.cur.EOF() && lx.cur.Peek() != '\n' && lx.cur.Peek() != '\r' {
		lx.cur.Bump()
	}
	return lx.emit(m, token.String)
}

func (lx *Lexer) scanNumber() compiler.Token {
	m := lx.cur.Mark()
	for isDigit(lx.cur.Peek()) {
		lx.cur.Bump()
	}
	if lx.cur.Peek() == '.' && isDigit(lx.cur.PeekAt(1)) {
		lx.cur.Bump()
		for isDigit(lx.cur.Peek()) {
			lx.cur.Bump()
		}
	}
	return lx.emit(m, token.Number)
}

func (lx *Lexer) scanIdentOrKeyword() compiler.Token {
	m := lx.cur.Mark()
	lx.cur.Bump()
	for !lx.cur.EOF() {
		r, _ := lx.cur.PeekRune()
		if r == '-' && lx.cur.PeekAt(1) == '>' {
			break
		}
		if !isIdentContinue(r) {
			break
		}
		lx.cur.Bump()
	}
	text := lx.cur.TextFrom(m)
	return lx.emit(m, classify(text))
}

var multiPunct = []string{"???", "...", "->", "=>", "<-"}

const singlePunct = "{}()[],:;.=?!+*<>@~#&%^/-|"

func (lx *Lexer) scanPunct() compiler.Token {
	m := lx.cur.Mark()
	for _, p := range multiPunct {
		if lx.cur.HasPrefix(p) {
			lx.cur.BumpN(len(p))
			return lx.emit(m, token.Punctuation)
		}
	}
	ch := lx.cur.Peek()
	for i := 0; i < len(singlePunct); i++ {
		if singlePunct[i] == ch {
			lx.cur.Bump()
			return lx.emit(m, token.Punctuation)
		}
	}
	r := lx.cur.Bump()
	lx.errAt(m, "Unexpected character %q", r)
	return lx.emit(m, token.Other)
}

// classify assigns a vocabulary kind to an identifier-shaped word.
// Keywords and readability words are lower case only.
func classify(text string) token.Kind {
	if _, ok := token.LookupPredefined(text); ok {
		return token.Predefined
	}
	if !isLowerASCII(text) {
		return token.Identifier
	}
	if _, ok := token.LookupReadability(text); ok {
		return token.Readability
	}
	if _, ok := token.LookupKeyword(text); ok {
		return token.Keyword
	}
	return token.Identifier
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(r rune, size int) bool {
	if size == 0 {
		return false
	}
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
