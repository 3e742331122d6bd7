package riddl

import "unicode/utf8"

// Cursor tracks a byte offset together with the 1-based line, the 1-based
// UTF-16 column and the UTF-16 offset of that byte.
type Cursor struct {
	src  string
	Off  int
	Line int
	Col  int
	UOff int
}

// NewCursor starts a cursor at the beginning of src.
func NewCursor(src string) Cursor {
	return Cursor{src: src, Line: 1, Col: 1}
}

// Mark is a saved cursor position.
type Mark struct {
	Off  int
	Line int
	Col  int
	UOff int
}

// EOF reports whether the cursor reached the end of input.
func (c *Cursor) EOF() bool {
	return c.Off >= len(c.src)
}

// Peek returns the current byte or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.Off]
}

// PeekAt returns the byte n positions ahead or 0.
func (c *Cursor) PeekAt(n int) byte {
	if c.Off+n >= len(c.src) {
		return 0
	}
	return c.src[c.Off+n]
}

// PeekRune decodes the current rune.
func (c *Cursor) PeekRune() (rune, int) {
	if c.EOF() {
		return 0, 0
	}
	return utf8.DecodeRuneInString(c.src[c.Off:])
}

// HasPrefix reports whether the remaining input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	return len(c.src)-c.Off >= len(s) && c.src[c.Off:c.Off+len(s)] == s
}

// Bump advances by one rune, updating line and column.
func (c *Cursor) Bump() rune {
	r, size := c.PeekRune()
	if size == 0 {
		return 0
	}
	c.Off += size
	units := 1
	if r >= 0x10000 {
		units = 2
	}
	c.UOff += units
	if r == '\n' {
		c.Line++
		c.Col = 1
	} else {
		c.Col += units
	}
	return r
}

// BumpN advances n runes.
func (c *Cursor) BumpN(n int) {
	for i := 0; i < n && !c.EOF(); i++ {
		c.Bump()
	}
}

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Line: c.Line, Col: c.Col, UOff: c.UOff}
}

// TextFrom returns the source between m and the cursor.
func (c *Cursor) TextFrom(m Mark) string {
	return c.src[m.Off:c.Off]
}

// AtLineStart reports whether only blanks precede the cursor on its line.
func (c *Cursor) AtLineStart() bool {
	for i := c.Off - 1; i >= 0; i-- {
		switch c.src[i] {
		case ' ', '\t', '\r':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}
