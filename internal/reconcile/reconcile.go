package reconcile

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"riddl/internal/compiler"
	"riddl/internal/source"
	"riddl/internal/token"
)

// searchSlack is how many columns before the reported one the identifier
// search starts.
const searchSlack = 5

// ErrLineOutOfRange is returned for messages pointing past the document.
var ErrLineOutOfRange = errors.New("line out of range")

// extra category words that do not introduce definitions but appear in
// compiler messages.
var extraCategories = []string{
	"record", "enumeration", "alternation", "aggregation", "invariant",
	"application", "group", "organization", "definition", "reference",
	"processor", "plant", "option",
}

var quotedName = func() *regexp.Regexp {
	words := append(token.DefinitionKeywords(), extraCategories...)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(words, "|") + `)\s+'([^'\n]+)'`)
}()

// Reconcile places one raw message. Syntax messages are always errors;
// otherwise fallback is the severity used when the message carries no kind.
func Reconcile(msg compiler.Message, phase Phase, fallback Severity, lines *source.Lines) (Record, error) {
	text := StripFormatting(msg.Message)
	line := msg.Location.Line - 1
	if line < 0 {
		line = 0
	}
	if line >= lines.Count() {
		return Record{}, fmt.Errorf("%w: %d (document has %d lines)", ErrLineOutOfRange, msg.Location.Line, lines.Count())
	}
	col := msg.Location.Col - 1
	if col < 0 {
		col = 0
	}
	sev := fallback
	switch {
	case phase == PhaseSyntax:
		sev = SevError
	case msg.Kind != "":
		sev = ParseSeverity(msg.Kind)
	}
	return Record{
		Severity: sev,
		Kind:     msg.Kind,
		Message:  text,
		Phase:    phase,
		Range:    locate(text, msg.Location, line, col, lines.UTF16(line)),
	}, nil
}

func locate(text string, loc compiler.Location, line, col int, units []uint16) source.Range {
	if m := quotedName.FindStringSubmatch(text); m != nil {
		if start, ok := findIdentifier(units, source.UTF16(m[1]), col-searchSlack); ok {
			return source.PointRange(line, start, start+source.UTF16Len(m[1]))
		}
	}
	if col > len(units) {
		return source.PointRange(line, len(units), len(units))
	}
	if loc.EndOffset != nil {
		width := *loc.EndOffset - loc.Offset
		if width < 1 {
			width = 1
		}
		return source.PointRange(line, col, col+width)
	}
	if col == len(units) {
		return source.PointRange(line, col, col)
	}
	end := col
	for end < len(units) && isWordUnit(units[end]) {
		end++
	}
	if end == col {
		end = col + 1
	}
	return source.PointRange(line, col, end)
}

// findIdentifier searches forward from `from`, then backward, for name on
// identifier boundaries.
func findIdentifier(units, name []uint16, from int) (int, bool) {
	if len(name) == 0 {
		return 0, false
	}
	if from < 0 {
		from = 0
	}
	for i := source.IndexUTF16(units, name, from); i >= 0; i = source.IndexUTF16(units, name, i+1) {
		if onBoundary(units, i, len(name)) {
			return i, true
		}
	}
	for i := source.LastIndexUTF16(units, name, from); i >= 0; i = source.LastIndexUTF16(units, name, i) {
		if onBoundary(units, i, len(name)) {
			return i, true
		}
	}
	return 0, false
}

func onBoundary(units []uint16, start, n int) bool {
	if start > 0 && isWordUnit(units[start-1]) {
		return false
	}
	end := start + n
	return end >= len(units) || !isWordUnit(units[end])
}

func isWordUnit(u uint16) bool {
	return u == '_' || u == '-' ||
		(u >= 'a' && u <= 'z') || (u >= 'A' && u <= 'Z') || (u >= '0' && u <= '9')
}
