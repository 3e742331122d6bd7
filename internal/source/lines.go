package source

import (
	"strings"
	"unicode/utf16"
)

// Lines is a line table over document text. Line terminators ("\n" or
// "\r\n") are not part of the line contents.
type Lines struct {
	lines []string
}

// NewLines splits text into lines.
func NewLines(text string) *Lines {
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return &Lines{lines: parts}
}

// Count returns the number of lines; never less than one.
func (l *Lines) Count() int {
	return len(l.lines)
}

// Text returns the contents of line i, or "" when i is out of range.
func (l *Lines) Text(i int) string {
	if i < 0 || i >= len(l.lines) {
		return ""
	}
	return l.lines[i]
}

// UTF16 returns line i as UTF-16 code units.
func (l *Lines) UTF16(i int) []uint16 {
	return UTF16(l.Text(i))
}

// UTF16Len returns the length of line i in UTF-16 code units.
func (l *Lines) UTF16Len(i int) int {
	return UTF16Len(l.Text(i))
}

// UTF16 encodes s as UTF-16 code units.
func UTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// UTF16Len counts the UTF-16 code units needed to encode s.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// IndexUTF16 returns the first index >= from at which needle occurs in hay,
// or -1.
func IndexUTF16(hay, needle []uint16, from int) int {
	if from < 0 {
		from = 0
	}
	if len(needle) == 0 {
		return -1
	}
	for i := from; i+len(needle) <= len(hay); i++ {
		if equalUnits(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

// LastIndexUTF16 returns the last index < before at which needle starts in
// hay, or -1.
func LastIndexUTF16(hay, needle []uint16, before int) int {
	if len(needle) == 0 {
		return -1
	}
	start := before - 1
	if start+len(needle) > len(hay) {
		start = len(hay) - len(needle)
	}
	for i := start; i >= 0; i-- {
		if equalUnits(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func equalUnits(a, b []uint16) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
