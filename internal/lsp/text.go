package lsp

import (
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// applyChanges folds a didChange batch into text. A change without a range
// replaces the whole document.
func applyChanges(text string, changes []textDocumentContentChangeEvent) string {
	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
			continue
		}
		start := offsetForPosition(text, change.Range.Start)
		end := offsetForPosition(text, change.Range.End)
		if end < start {
			end = start
		}
		text = text[:start] + change.Text + text[end:]
	}
	return text
}

// offsetForPosition maps a UTF-16 LSP position to a byte offset. Positions
// past the end of a line clamp to the line end, positions past the last line
// clamp to the end of text.
func offsetForPosition(text string, pos protocol.Position) int {
	line := uint32(0)
	i := 0
	for i < len(text) && line < pos.Line {
		if text[i] == '\n' {
			line++
		}
		i++
	}
	if line < pos.Line {
		return len(text)
	}
	units := uint32(0)
	for i < len(text) && units < pos.Character {
		if text[i] == '\n' || text[i] == '\r' {
			break
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		need := uint32(1)
		if r > 0xFFFF {
			need = 2
		}
		if units+need > pos.Character {
			break
		}
		units += need
		i += size
	}
	return i
}
